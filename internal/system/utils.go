// internal/system/utils.go
package system

import (
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/entity"
	"go-survivor/internal/types"
	"go-survivor/pkg/geom"
)

// ApplyDamage наносит урон сущности и включает вспышку урона.
// Возвращает false, если у сущности нет здоровья или урон не прошёл (GodMode).
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) bool {
	health, ok := ecs.Healths[entityID]
	if !ok {
		return false
	}
	if !health.Hit(damage) {
		return false
	}

	// Добавляем или сбрасываем компонент "вспышки"
	if flash, ok := ecs.DamageFlashes[entityID]; ok {
		flash.Timer.Reset()
	} else {
		ecs.DamageFlashes[entityID] = &component.DamageFlash{
			Timer: component.NewTimer(config.DamageFlashDuration, component.TimerOnce),
		}
	}
	return true
}

func halfExtents(c *component.Collider) geom.Vec2 {
	if c == nil {
		return geom.Vec2{}
	}
	return geom.Vec2{X: c.HalfWidth, Y: c.HalfHeight}
}

// playerPosition — позиция живого игрока, если он есть.
func playerPosition(ecs *entity.ECS) (types.EntityID, *component.Position, bool) {
	id, ok := ecs.PlayerID()
	if !ok {
		return 0, nil, false
	}
	pos, ok := ecs.Positions[id]
	if !ok {
		return 0, nil, false
	}
	return id, pos, true
}
