// internal/system/fire.go
package system

import (
	"time"

	"go-survivor/internal/component"
	"go-survivor/internal/defs"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/types"
	"go-survivor/internal/utils"
	"go-survivor/pkg/geom"
)

// FireSystem выпускает снаряды игрока в сторону указателя по перезарядке.
type FireSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	eventDispatcher *event.Dispatcher
}

func NewFireSystem(ecs *entity.ECS, lib *defs.Library, eventDispatcher *event.Dispatcher) *FireSystem {
	return &FireSystem{ecs: ecs, lib: lib, eventDispatcher: eventDispatcher}
}

func (s *FireSystem) Update(deltaTime time.Duration, actions component.Actions, pointer component.Pointer) {
	cooldown := &s.ecs.Cooldowns.PlayerFire
	cooldown.Tick(deltaTime)
	if !actions.Fire || !cooldown.Finished() {
		return
	}
	_, playerPos, ok := playerPosition(s.ecs)
	if !ok {
		return
	}
	dir, ok := pointer.Vec().Sub(playerPos.Vec()).Normalize()
	if !ok {
		// Указатель на игроке: направления нет, перезарядку не тратим.
		return
	}
	cooldown.Reset()
	s.SpawnProjectile(playerPos.Vec(), dir)
}

// SpawnProjectile создаёт снаряд игрока в точке from с единичным направлением dir.
func (s *FireSystem) SpawnProjectile(from, dir geom.Vec2) types.EntityID {
	def := s.lib.Projectile

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: from.X, Y: from.Y}
	s.ecs.Velocities[id] = &component.Velocity{X: dir.X, Y: dir.Y, Speed: def.Speed}
	s.ecs.Projectiles[id] = &component.Projectile{Damage: def.Damage, Origin: component.FromPlayer}
	s.ecs.Movables[id] = &component.Movable{AutoDespawn: def.AutoDespawn}
	s.ecs.Colliders[id] = &component.Collider{HalfWidth: def.HalfExtent, HalfHeight: def.HalfExtent}
	s.ecs.Facings[id] = &component.Facing{Rotation: utils.FacingAngle(dir.X, dir.Y)}
	s.ecs.Renderables[id] = &component.Renderable{Sprite: component.AssetHandle(def.Sprite), Scale: 1}

	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: id})
	return id
}
