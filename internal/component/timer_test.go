package component

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerOnce(t *testing.T) {
	timer := NewTimer(time.Second, TimerOnce)
	assert.False(t, timer.Finished())

	for i := 0; i < 9; i++ {
		timer.Tick(100 * time.Millisecond)
	}
	assert.False(t, timer.Finished())
	assert.Equal(t, 100*time.Millisecond, timer.Remaining())

	timer.Tick(100 * time.Millisecond)
	assert.True(t, timer.Finished())

	// Завершённый таймер остаётся завершённым.
	timer.Tick(time.Hour)
	assert.True(t, timer.Finished())
	assert.Equal(t, time.Second, timer.Elapsed)

	timer.Reset()
	assert.False(t, timer.Finished())
}

func TestTimerRepeating(t *testing.T) {
	timer := NewTimer(500*time.Millisecond, TimerRepeating)

	fired := 0
	for i := 0; i < 30; i++ {
		timer.Tick(100 * time.Millisecond)
		if timer.Finished() {
			fired++
		}
	}
	assert.Equal(t, 6, fired)

	// Период переносит остаток.
	timer = NewTimer(500*time.Millisecond, TimerRepeating)
	timer.Tick(700 * time.Millisecond)
	assert.True(t, timer.Finished())
	assert.Equal(t, 200*time.Millisecond, timer.Elapsed)
	timer.Tick(100 * time.Millisecond)
	assert.False(t, timer.Finished())
}

func TestNewFinishedTimer(t *testing.T) {
	timer := NewFinishedTimer(time.Second, TimerOnce)
	assert.True(t, timer.Finished())
	assert.Zero(t, timer.Remaining())
}

func TestHealthHit(t *testing.T) {
	h := Health{Value: 3, Max: 3}
	assert.True(t, h.Hit(2))
	assert.Equal(t, 1, h.Value)
	assert.False(t, h.IsDead())

	h.Hit(4)
	assert.True(t, h.IsDead())
	assert.Equal(t, -3, h.Value)
	assert.Equal(t, 0, h.Display())

	god := Health{Value: 5, Max: 5, GodMode: true}
	assert.False(t, god.Hit(10))
	assert.Equal(t, 5, god.Value)
}
