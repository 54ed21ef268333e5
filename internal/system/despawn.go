// internal/system/despawn.go
package system

import (
	"go-survivor/internal/defs"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/pkg/geom"
)

// DespawnSystem убирает мёртвых врагов (с начислением опыта) и улетевшие снаряды.
// Удаление отложенное: сущности только помечаются.
type DespawnSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	queues          *Queues
	eventDispatcher *event.Dispatcher
}

func NewDespawnSystem(ecs *entity.ECS, lib *defs.Library, queues *Queues, eventDispatcher *event.Dispatcher) *DespawnSystem {
	return &DespawnSystem{ecs: ecs, lib: lib, queues: queues, eventDispatcher: eventDispatcher}
}

func (s *DespawnSystem) Update() {
	s.reapEnemies()
	s.despawnFarProjectiles()
}

func (s *DespawnSystem) reapEnemies() {
	for _, id := range s.ecs.EnemyIDs() {
		health, ok := s.ecs.Healths[id]
		if !ok || !health.IsDead() {
			continue
		}
		reward := s.ecs.Enemies[id].ExpReward
		s.queues.ExpGain.Push(event.ExpGain{Amount: reward})
		s.ecs.MarkDestroyed(id)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyKilled,
			Data: event.EnemyKilledData{ID: id, ExpReward: reward},
		})
	}
}

// despawnFarProjectiles: снаряд удаляется, когда он строго дальше порога от игрока.
// Без игрока правило не действует.
func (s *DespawnSystem) despawnFarProjectiles() {
	_, playerPos, ok := playerPosition(s.ecs)
	if !ok {
		return
	}
	limit := s.lib.Projectile.DespawnDistance
	for _, id := range s.ecs.ProjectileIDs() {
		movable, ok := s.ecs.Movables[id]
		if !ok || !movable.AutoDespawn {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if geom.Distance(pos.Vec(), playerPos.Vec()) > limit {
			s.ecs.MarkDestroyed(id)
		}
	}
}
