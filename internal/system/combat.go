// internal/system/combat.go
package system

import (
	"time"

	"go-survivor/internal/defs"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/types"
	"go-survivor/pkg/geom"
)

// CombatSystem проверяет пересечения: враги с игроком, затем снаряды с врагами.
type CombatSystem struct {
	ecs    *entity.ECS
	lib    *defs.Library
	queues *Queues
}

func NewCombatSystem(ecs *entity.ECS, lib *defs.Library, queues *Queues) *CombatSystem {
	return &CombatSystem{ecs: ecs, lib: lib, queues: queues}
}

func (s *CombatSystem) Update(deltaTime time.Duration) {
	s.ecs.Cooldowns.Invincibility.Tick(deltaTime)
	s.resolveContacts()
	s.resolveProjectileHits()
}

// resolveContacts ставит в очередь не больше одного урона игроку за тик:
// после первого касания окно неуязвимости сбрасывается.
func (s *CombatSystem) resolveContacts() {
	playerID, playerPos, ok := playerPosition(s.ecs)
	if !ok {
		return
	}
	health, ok := s.ecs.Healths[playerID]
	if !ok || health.GodMode {
		return
	}
	invincibility := &s.ecs.Cooldowns.Invincibility
	if !invincibility.Finished() {
		return
	}

	hx, hy := s.lib.Player.HalfExtents()
	playerHalf := geom.Vec2{X: hx, Y: hy}
	for _, id := range s.ecs.EnemyIDs() {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if !geom.Overlaps(playerPos.Vec(), playerHalf, pos.Vec(), halfExtents(s.ecs.Colliders[id])) {
			continue
		}
		s.queues.PlayerDamage.Push(event.PlayerDamage{Amount: s.ecs.Enemies[id].ContactDamage})
		invincibility.Reset()
		return
	}
}

// resolveProjectileHits: каждый снаряд попадает не больше одного раза —
// в первого по порядку создания живого врага, с которым пересёкся.
func (s *CombatSystem) resolveProjectileHits() {
	enemies := s.ecs.EnemyIDs()
	hit := s.lib.Enemy.HitHalfExtent
	enemyHalf := geom.Vec2{X: hit, Y: hit}

	for _, projID := range s.ecs.ProjectileIDs() {
		projPos, ok := s.ecs.Positions[projID]
		if !ok {
			continue
		}
		proj := s.ecs.Projectiles[projID]
		projHalf := halfExtents(s.ecs.Colliders[projID])

		for _, enemyID := range enemies {
			if target, ok := s.firstHit(projPos.Vec(), projHalf, enemyID, enemyHalf); ok {
				ApplyDamage(s.ecs, enemyID, proj.Damage)
				s.queues.Hints.Push(event.DamageHint{Amount: proj.Damage, X: target.X, Y: target.Y})
				s.ecs.MarkDestroyed(projID)
				break
			}
		}
	}
}

// firstHit проверяет одного врага. Враг, добитый раньше в этом тике, ещё в
// реестре и поглощает снаряд так же, как живой.
func (s *CombatSystem) firstHit(projPos, projHalf geom.Vec2, enemyID types.EntityID, enemyHalf geom.Vec2) (geom.Vec2, bool) {
	if _, ok := s.ecs.Healths[enemyID]; !ok {
		return geom.Vec2{}, false
	}
	pos, ok := s.ecs.Positions[enemyID]
	if !ok {
		return geom.Vec2{}, false
	}
	if !geom.Overlaps(projPos, projHalf, pos.Vec(), enemyHalf) {
		return geom.Vec2{}, false
	}
	return pos.Vec(), true
}
