package entity

import (
	"testing"
	"time"

	"go-survivor/internal/component"
	"go-survivor/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestECS() *ECS {
	return NewECS(component.NewCooldowns(500*time.Millisecond, time.Second, time.Second))
}

func TestNewEntityMonotonic(t *testing.T) {
	ecs := newTestECS()
	a := ecs.NewEntity()
	b := ecs.NewEntity()
	assert.Equal(t, types.EntityID(1), a)
	assert.Greater(t, b, a)
}

func TestMarkDestroyedIsDeduplicated(t *testing.T) {
	ecs := newTestECS()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{}
	ecs.Enemies[id] = &component.Enemy{}

	ecs.MarkDestroyed(id)
	ecs.MarkDestroyed(id)
	assert.False(t, ecs.IsAlive(id))
	assert.Equal(t, 1, ecs.PendingDestroyed())
	assert.Empty(t, ecs.EnemyIDs(), "помеченный враг невидим до удаления")

	removed := ecs.FlushDestroyed()
	assert.Equal(t, []types.EntityID{id}, removed)
	assert.NotContains(t, ecs.Positions, id)
	assert.NotContains(t, ecs.Enemies, id)

	assert.Nil(t, ecs.FlushDestroyed())
	assert.True(t, ecs.IsAlive(id), "после удаления пометка снята")
}

func TestPlayerID(t *testing.T) {
	ecs := newTestECS()
	_, ok := ecs.PlayerID()
	assert.False(t, ok)

	id := ecs.NewEntity()
	ecs.PlayerState[id] = &component.PlayerStateComponent{Level: 1}
	got, ok := ecs.PlayerID()
	require.True(t, ok)
	assert.Equal(t, id, got)

	ecs.MarkDestroyed(id)
	_, ok = ecs.PlayerID()
	assert.False(t, ok)
}

func TestSortedIDsInsertionOrder(t *testing.T) {
	ecs := newTestECS()
	var want []types.EntityID
	for i := 0; i < 50; i++ {
		id := ecs.NewEntity()
		ecs.Projectiles[id] = &component.Projectile{Damage: 1}
		want = append(want, id)
	}
	assert.Equal(t, want, ecs.ProjectileIDs())
}

func TestClear(t *testing.T) {
	ecs := newTestECS()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 1}
	ecs.MarkDestroyed(id)

	ecs.Clear()
	assert.Empty(t, ecs.Positions)
	assert.Zero(t, ecs.PendingDestroyed())
	assert.Greater(t, ecs.NewEntity(), id)
}
