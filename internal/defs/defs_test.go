package defs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	lib := Default()

	assert.Equal(t, 10, lib.Player.Health)
	assert.Equal(t, time.Second, lib.Player.InvincibilityWindow)
	assert.Equal(t, 300*time.Millisecond, lib.Player.DodgeDuration)
	assert.Equal(t, 3, lib.Enemy.Health)
	assert.Equal(t, 1, lib.Enemy.ContactDamage)
	assert.Equal(t, 15, lib.Enemy.ExpReward)
	assert.Equal(t, 50.0, lib.Projectile.Speed)
	assert.Equal(t, 2000.0, lib.Projectile.DespawnDistance)
	assert.Equal(t, 500*time.Millisecond, lib.Spawn.Period)
	assert.Equal(t, 400.0, lib.Spawn.Radius)

	hw, hh := lib.Player.HalfExtents()
	assert.Equal(t, 16.0, hw)
	assert.Equal(t, 16.0, hh)
}

func TestLoadDefinitionsOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemy:\n  exp_reward: 40\nspawn:\n  period: 2s\n"), 0o644))

	lib, err := LoadDefinitions(path)
	require.NoError(t, err)
	assert.Equal(t, 40, lib.Enemy.ExpReward)
	assert.Equal(t, 2*time.Second, lib.Spawn.Period)
	// Не перечисленные поля остаются по умолчанию.
	assert.Equal(t, 3, lib.Enemy.Health)
	assert.Equal(t, 400.0, lib.Spawn.Radius)
}

func TestLoadDefinitionsEmptyPath(t *testing.T) {
	lib, err := LoadDefinitions("")
	require.NoError(t, err)
	assert.Equal(t, Default(), lib)
}

func TestLoadDefinitionsErrors(t *testing.T) {
	_, err := LoadDefinitions(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spawn:\n  radius: -5\n"), 0o644))
	_, err = LoadDefinitions(path)
	assert.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestExpForLevel(t *testing.T) {
	assert.Equal(t, 100, ExpForLevel(1))
	assert.Equal(t, 200, ExpForLevel(2))
	assert.Equal(t, 400, ExpForLevel(3))
	assert.Equal(t, 819200, ExpForLevel(14))
	assert.Equal(t, 1638400, ExpForLevel(15))
	assert.Equal(t, 100, ExpForLevel(16))
	assert.Equal(t, 100, ExpForLevel(0))
}
