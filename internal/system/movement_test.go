package system

import (
	"math"
	"testing"
	"time"

	"go-survivor/pkg/geom"

	"github.com/stretchr/testify/assert"
)

func TestEnemiesChasePlayer(t *testing.T) {
	w := newWorld(t)
	w.addPlayer(geom.Vec2{})
	enemy := w.addEnemy(geom.Vec2{X: 100, Y: 0})

	NewMovementSystem(w.ecs).Update(time.Second)

	pos := w.ecs.Positions[enemy]
	assert.InDelta(t, 100-w.lib.Enemy.Speed, pos.X, 1e-9)
	assert.InDelta(t, 0, pos.Y, 1e-9)
	vel := w.ecs.Velocities[enemy]
	assert.InDelta(t, -1, vel.X, 1e-9)
}

func TestEnemyOnTopOfPlayerDoesNotMove(t *testing.T) {
	w := newWorld(t)
	w.addPlayer(geom.Vec2{X: 5, Y: 5})
	enemy := w.addEnemy(geom.Vec2{X: 5, Y: 5})

	NewMovementSystem(w.ecs).Update(100 * time.Millisecond)

	pos := w.ecs.Positions[enemy]
	assert.Equal(t, 5.0, pos.X)
	assert.Equal(t, 5.0, pos.Y)
	assert.False(t, math.IsNaN(w.ecs.Velocities[enemy].X))
}

func TestEnemiesIdleWithoutPlayer(t *testing.T) {
	w := newWorld(t)
	enemy := w.addEnemy(geom.Vec2{X: 10, Y: 10})
	NewMovementSystem(w.ecs).Update(time.Second)
	assert.Equal(t, 10.0, w.ecs.Positions[enemy].X)
}

func TestProjectilesFlyStraight(t *testing.T) {
	w := newWorld(t)
	proj := w.addProjectile(geom.Vec2{}, geom.Vec2{X: 0, Y: 1})

	s := NewProjectileSystem(w.ecs)
	s.Update(500 * time.Millisecond)
	s.Update(500 * time.Millisecond)

	pos := w.ecs.Positions[proj]
	assert.InDelta(t, 0, pos.X, 1e-9)
	assert.InDelta(t, w.lib.Projectile.Speed, pos.Y, 1e-9)
}
