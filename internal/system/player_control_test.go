package system

import (
	"math"
	"testing"
	"time"

	"go-survivor/internal/component"
	"go-survivor/pkg/geom"

	"github.com/stretchr/testify/assert"
)

func TestPlayerMovesWithInput(t *testing.T) {
	w := newWorld(t)
	player := w.addPlayer(geom.Vec2{})
	s := NewPlayerControlSystem(w.ecs, w.lib)

	s.Update(500*time.Millisecond, component.Actions{Movement: &geom.Vec2{X: 1}}, component.Pointer{})
	assert.True(t, s.IsMoving())
	assert.InDelta(t, 50, w.ecs.Positions[player].X, 1e-9)

	s.Update(500*time.Millisecond, component.Actions{}, component.Pointer{})
	assert.False(t, s.IsMoving())
	assert.InDelta(t, 50, w.ecs.Positions[player].X, 1e-9)
}

func TestPlayerDodgeRoll(t *testing.T) {
	w := newWorld(t)
	player := w.addPlayer(geom.Vec2{})
	s := NewPlayerControlSystem(w.ecs, w.lib)
	up := &geom.Vec2{Y: -1}

	s.Update(100*time.Millisecond, component.Actions{Movement: up, Dodge: true}, component.Pointer{})
	assert.Contains(t, w.ecs.DodgeRolls, player)
	assert.InDelta(t, -50, w.ecs.Positions[player].Y, 1e-9)

	// Перекат продолжается без ввода и заканчивается через 0.3 с.
	s.Update(100*time.Millisecond, component.Actions{}, component.Pointer{})
	s.Update(100*time.Millisecond, component.Actions{}, component.Pointer{})
	assert.InDelta(t, -150, w.ecs.Positions[player].Y, 1e-9)
	assert.NotContains(t, w.ecs.DodgeRolls, player)

	s.Update(100*time.Millisecond, component.Actions{}, component.Pointer{})
	assert.InDelta(t, -150, w.ecs.Positions[player].Y, 1e-9)
}

func TestDodgeNeedsMovement(t *testing.T) {
	w := newWorld(t)
	player := w.addPlayer(geom.Vec2{})
	s := NewPlayerControlSystem(w.ecs, w.lib)

	s.Update(100*time.Millisecond, component.Actions{Dodge: true}, component.Pointer{})
	assert.NotContains(t, w.ecs.DodgeRolls, player)
}

func TestPlayerFacesPointer(t *testing.T) {
	w := newWorld(t)
	player := w.addPlayer(geom.Vec2{})
	s := NewPlayerControlSystem(w.ecs, w.lib)

	s.Update(0, component.Actions{}, component.Pointer{X: 10})
	assert.InDelta(t, -math.Pi/2, w.ecs.Facings[player].Rotation, 1e-9)

	// Указатель на игроке поворот не меняет.
	s.Update(0, component.Actions{}, component.Pointer{})
	assert.InDelta(t, -math.Pi/2, w.ecs.Facings[player].Rotation, 1e-9)
}
