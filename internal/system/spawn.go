// internal/system/spawn.go
package system

import (
	"math"
	"time"

	"go-survivor/internal/component"
	"go-survivor/internal/defs"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/types"
	"go-survivor/internal/utils"
	"go-survivor/pkg/geom"
)

// SpawnSystem создаёт врагов вокруг игрока с фиксированным периодом.
type SpawnSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(ecs *entity.ECS, lib *defs.Library, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		lib:             lib,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

func (s *SpawnSystem) Update(deltaTime time.Duration) {
	timer := &s.ecs.Cooldowns.EnemySpawn
	timer.Tick(deltaTime)
	if !timer.Finished() {
		return
	}
	_, playerPos, ok := playerPosition(s.ecs)
	if !ok {
		return
	}
	offset := SpawnOffset(s.rng, s.lib.Spawn.Radius, s.lib.Spawn.MinRadiusFraction)
	s.SpawnEnemy(playerPos.Vec().Add(offset))
}

// SpawnOffset выбирает смещение от игрока: направление равномерно по
// окружности, радиус R*cbrt(U(minFraction, 1)), смещённый к внешнему краю.
func SpawnOffset(rng *utils.PRNGService, radius, minFraction float64) geom.Vec2 {
	angle := rng.Float64() * 2 * math.Pi
	r := radius * math.Cbrt(rng.Range(minFraction, 1.0))
	return geom.FromAngle(angle).Mul(r)
}

// SpawnEnemy создаёт врага из определения в заданной точке.
func (s *SpawnSystem) SpawnEnemy(at geom.Vec2) types.EntityID {
	def := s.lib.Enemy

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	s.ecs.Colliders[id] = &component.Collider{
		HalfWidth:  def.ContactHalfExtent,
		HalfHeight: def.ContactHalfExtent,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Sprite: component.AssetHandle(def.Sprite),
		Scale:  def.Scale,
	}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:         def.ID,
		ContactDamage: def.ContactDamage,
		ExpReward:     def.ExpReward,
	}

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemySpawnedData{ID: id, X: at.X, Y: at.Y},
	})
	return id
}
