// internal/system/visual_effect.go
package system

import (
	"time"

	"go-survivor/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки урона.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет таймеры вспышек урона и снимает истёкшие.
func (s *VisualEffectSystem) Update(deltaTime time.Duration) {
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer.Tick(deltaTime)
		if flash.Timer.Finished() {
			delete(s.ecs.DamageFlashes, id)
		}
	}
}
