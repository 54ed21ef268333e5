// internal/entity/ecs.go
package entity

import (
	"sort"
	"time"

	"go-survivor/internal/component"
	"go-survivor/internal/types"
)

type ECS struct {
	GameTime      time.Duration
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Healths       map[types.EntityID]*component.Health
	Colliders     map[types.EntityID]*component.Collider
	Renderables   map[types.EntityID]*component.Renderable
	Enemies       map[types.EntityID]*component.Enemy
	Projectiles   map[types.EntityID]*component.Projectile
	Movables      map[types.EntityID]*component.Movable
	Facings       map[types.EntityID]*component.Facing
	DodgeRolls    map[types.EntityID]*component.DodgeRoll
	DamageFlashes map[types.EntityID]*component.DamageFlash
	PlayerState   map[types.EntityID]*component.PlayerStateComponent
	Cooldowns     *component.Cooldowns
	GameState     *component.GameState

	// Помеченные на удаление; удаляются один раз в конце тика.
	destroyed map[types.EntityID]struct{}
}

func NewECS(cooldowns *component.Cooldowns) *ECS {
	ecs := &ECS{
		NextID:    1,
		Cooldowns: cooldowns,
		GameState: &component.GameState{Current: component.LoadingPhase},
	}
	ecs.resetTables()
	return ecs
}

func (ecs *ECS) resetTables() {
	ecs.Positions = make(map[types.EntityID]*component.Position)
	ecs.Velocities = make(map[types.EntityID]*component.Velocity)
	ecs.Healths = make(map[types.EntityID]*component.Health)
	ecs.Colliders = make(map[types.EntityID]*component.Collider)
	ecs.Renderables = make(map[types.EntityID]*component.Renderable)
	ecs.Enemies = make(map[types.EntityID]*component.Enemy)
	ecs.Projectiles = make(map[types.EntityID]*component.Projectile)
	ecs.Movables = make(map[types.EntityID]*component.Movable)
	ecs.Facings = make(map[types.EntityID]*component.Facing)
	ecs.DodgeRolls = make(map[types.EntityID]*component.DodgeRoll)
	ecs.DamageFlashes = make(map[types.EntityID]*component.DamageFlash)
	ecs.PlayerState = make(map[types.EntityID]*component.PlayerStateComponent)
	ecs.destroyed = make(map[types.EntityID]struct{})
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// MarkDestroyed помечает сущность на удаление. Повторная пометка ничего не меняет.
// С момента пометки сущность невидима для IsAlive.
func (ecs *ECS) MarkDestroyed(id types.EntityID) {
	ecs.destroyed[id] = struct{}{}
}

// IsAlive — сущность не помечена на удаление.
func (ecs *ECS) IsAlive(id types.EntityID) bool {
	_, gone := ecs.destroyed[id]
	return !gone
}

// PendingDestroyed — число сущностей, ожидающих удаления.
func (ecs *ECS) PendingDestroyed() int {
	return len(ecs.destroyed)
}

// FlushDestroyed удаляет все помеченные сущности из всех таблиц.
// Возвращает удалённые ID по возрастанию.
func (ecs *ECS) FlushDestroyed() []types.EntityID {
	if len(ecs.destroyed) == 0 {
		return nil
	}
	ids := make([]types.EntityID, 0, len(ecs.destroyed))
	for id := range ecs.destroyed {
		ecs.remove(id)
		ids = append(ids, id)
	}
	ecs.destroyed = make(map[types.EntityID]struct{})
	sortIDs(ids)
	return ids
}

func (ecs *ECS) remove(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Colliders, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Movables, id)
	delete(ecs.Facings, id)
	delete(ecs.DodgeRolls, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.PlayerState, id)
}

// PlayerID находит живого игрока. Игрок — сущность с PlayerStateComponent.
func (ecs *ECS) PlayerID() (types.EntityID, bool) {
	for id := range ecs.PlayerState {
		if ecs.IsAlive(id) {
			return id, true
		}
	}
	return 0, false
}

// EnemyIDs возвращает живых врагов в порядке создания.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	return aliveSorted(ecs, ecs.Enemies)
}

// ProjectileIDs возвращает живые снаряды в порядке создания.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return aliveSorted(ecs, ecs.Projectiles)
}

// Clear удаляет все сущности сцены. Счётчик ID не сбрасывается.
func (ecs *ECS) Clear() {
	ecs.resetTables()
}

func aliveSorted[T any](ecs *ECS, table map[types.EntityID]*T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(table))
	for id := range table {
		if ecs.IsAlive(id) {
			ids = append(ids, id)
		}
	}
	sortIDs(ids)
	return ids
}

func sortIDs(ids []types.EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
