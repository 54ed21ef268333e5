package system

import (
	"math"
	"testing"
	"time"

	"go-survivor/internal/utils"
	"go-survivor/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnOffsetStaysInRing(t *testing.T) {
	rng := utils.NewPRNGService(12345)
	inner := 400 * math.Cbrt(0.2)
	require.InDelta(t, 233.9, inner, 0.1)

	for i := 0; i < 10000; i++ {
		d := SpawnOffset(rng, 400, 0.2).Length()
		assert.GreaterOrEqual(t, d, inner-1e-9)
		assert.LessOrEqual(t, d, 400+1e-9)
	}
}

func TestSpawnSystemPeriod(t *testing.T) {
	w := newWorld(t)
	player := w.addPlayer(geom.Vec2{X: 50, Y: -20})
	s := NewSpawnSystem(w.ecs, w.lib, utils.NewPRNGService(1), w.dispatcher)

	for i := 0; i < 4; i++ {
		s.Update(100 * time.Millisecond)
	}
	assert.Empty(t, w.ecs.Enemies)

	s.Update(100 * time.Millisecond)
	ids := w.ecs.EnemyIDs()
	require.Len(t, ids, 1)
	enemy := ids[0]

	assert.Equal(t, 3, w.ecs.Healths[enemy].Value)
	assert.Equal(t, 3, w.ecs.Healths[enemy].Max)
	assert.Equal(t, 1, w.ecs.Enemies[enemy].ContactDamage)
	assert.Equal(t, 15, w.ecs.Enemies[enemy].ExpReward)
	dist := geom.Distance(w.ecs.Positions[enemy].Vec(), w.ecs.Positions[player].Vec())
	assert.LessOrEqual(t, dist, 400+1e-9)
	assert.Equal(t, 1, w.events.count("EnemySpawned"))

	for i := 0; i < 25; i++ {
		s.Update(100 * time.Millisecond)
	}
	assert.Len(t, w.ecs.Enemies, 6)
}

func TestSpawnSystemWithoutPlayer(t *testing.T) {
	w := newWorld(t)
	s := NewSpawnSystem(w.ecs, w.lib, utils.NewPRNGService(1), w.dispatcher)
	for i := 0; i < 20; i++ {
		s.Update(100 * time.Millisecond)
	}
	assert.Empty(t, w.ecs.Enemies)
}
