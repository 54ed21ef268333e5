// internal/system/movement.go
package system

import (
	"time"

	"go-survivor/internal/entity"
)

// MovementSystem ведёт врагов к игроку.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

// Update пересчитывает направление каждого врага на игрока и сдвигает его.
// Без игрока враги стоят. Враг, совпавший с игроком, на этом тике не двигается.
func (s *MovementSystem) Update(deltaTime time.Duration) {
	_, playerPos, ok := playerPosition(s.ecs)
	if !ok {
		return
	}
	dt := deltaTime.Seconds()
	target := playerPos.Vec()

	for _, id := range s.ecs.EnemyIDs() {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}
		dir, ok := target.Sub(pos.Vec()).Normalize()
		if !ok {
			vel.X, vel.Y = 0, 0
			continue
		}
		vel.X, vel.Y = dir.X, dir.Y
		pos.X += dir.X * vel.Speed * dt
		pos.Y += dir.Y * vel.Speed * dt
	}
}
