package system

import (
	"testing"

	"go-survivor/internal/component"
	"go-survivor/internal/event"
	"go-survivor/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGainExperience(t *testing.T) {
	state := &component.PlayerStateComponent{Level: 1, XPToNextLevel: 100}
	levels := GainExperience(state, 250)

	assert.Equal(t, 1, levels)
	assert.Equal(t, 2, state.Level)
	assert.Equal(t, 150, state.CurrentXP)
	assert.Equal(t, 200, state.XPToNextLevel)
}

func TestGainExperienceMultipleLevels(t *testing.T) {
	state := &component.PlayerStateComponent{Level: 1, XPToNextLevel: 100}
	levels := GainExperience(state, 100+200+400+5)

	assert.Equal(t, 3, levels)
	assert.Equal(t, 4, state.Level)
	assert.Equal(t, 5, state.CurrentXP)
	assert.Equal(t, 800, state.XPToNextLevel)
}

func TestApplyExperienceQueue(t *testing.T) {
	w := newWorld(t)
	player := w.addPlayer(geom.Vec2{})
	for i := 0; i < 7; i++ {
		w.queues.ExpGain.Push(event.ExpGain{Amount: 15})
	}

	NewPlayerSystem(w.ecs, w.queues, w.dispatcher).ApplyExperienceQueue()

	state := w.ecs.PlayerState[player]
	assert.Equal(t, 2, state.Level)
	assert.Equal(t, 5, state.CurrentXP)
	assert.Equal(t, 1, w.events.count(event.LevelUp))
	assert.Zero(t, w.queues.ExpGain.Len())
}

func TestApplyDamageQueue(t *testing.T) {
	w := newWorld(t)
	player := w.addPlayer(geom.Vec2{})
	w.queues.PlayerDamage.Push(event.PlayerDamage{Amount: 1})

	s := NewPlayerSystem(w.ecs, w.queues, w.dispatcher)
	s.ApplyDamageQueue()

	assert.Equal(t, 9, w.ecs.Healths[player].Value)
	assert.Nil(t, w.ecs.GameState.Next)
	assert.Equal(t, 1, w.events.count(event.PlayerDamaged))

	w.queues.PlayerDamage.Push(event.PlayerDamage{Amount: 20})
	s.ApplyDamageQueue()

	assert.True(t, w.ecs.Healths[player].IsDead())
	assert.Equal(t, 0, w.ecs.Healths[player].Display())
	require.NotNil(t, w.ecs.GameState.Next)
	assert.Equal(t, component.GameoverPhase, *w.ecs.GameState.Next)
	assert.Equal(t, 1, w.events.count(event.GameOver))
}

func TestQueuesWithoutPlayerAreDropped(t *testing.T) {
	w := newWorld(t)
	w.queues.PlayerDamage.Push(event.PlayerDamage{Amount: 1})
	w.queues.ExpGain.Push(event.ExpGain{Amount: 15})

	s := NewPlayerSystem(w.ecs, w.queues, w.dispatcher)
	s.ApplyDamageQueue()
	s.ApplyExperienceQueue()

	assert.Zero(t, w.queues.PlayerDamage.Len())
	assert.Zero(t, w.queues.ExpGain.Len())
	assert.Nil(t, w.ecs.GameState.Next)
}
