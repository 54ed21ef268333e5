package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(ConfigEnvVar, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survivor.yaml")
	data := []byte("sim:\n  seed: 42\n  start_in_game: true\nlog:\n  level: debug\nwindow:\n  scale: 0\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	t.Setenv(ConfigEnvVar, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Sim.Seed)
	assert.True(t, cfg.Sim.StartInGame)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 1, cfg.Window.Scale, "некорректный масштаб заменяется на 1")
	assert.Equal(t, "localhost:6060", cfg.Debug.Addr, "незаданные поля остаются по умолчанию")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sim: [1, 2"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}
