// internal/system/projectile.go
package system

import (
	"time"

	"go-survivor/internal/entity"
)

// ProjectileSystem двигает снаряды по направлению, заданному при выстреле.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(deltaTime time.Duration) {
	dt := deltaTime.Seconds()
	for _, id := range s.ecs.ProjectileIDs() {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}
		pos.X += vel.X * vel.Speed * dt
		pos.Y += vel.Y * vel.Speed * dt
	}
}
