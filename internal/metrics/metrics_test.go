package metrics

import (
	"net/http/httptest"
	"testing"

	"go-survivor/internal/event"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorCountsEvents(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())
	d := event.NewDispatcher()
	c.Subscribe(d)

	d.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemySpawnedData{ID: 1}})
	d.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemySpawnedData{ID: 2}})
	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{ID: 1, ExpReward: 15}})
	d.Dispatch(event.Event{Type: event.ProjectileFired, Data: 5})
	d.Dispatch(event.Event{Type: event.PlayerDamaged, Data: event.PlayerDamagedData{Amount: 3, HealthLeft: 7}})
	d.Dispatch(event.Event{Type: event.LevelUp, Data: event.LevelUpData{Level: 3}})

	assert.Equal(t, 2.0, testutil.ToFloat64(c.enemiesSpawned))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.enemiesKilled))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.projectiles))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.playerDamage))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.levelUps))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.playerLevel))

	d.Dispatch(event.Event{Type: event.StateChanged, Data: event.StateChangedData{From: "Gameover", To: "Menu"}})
	assert.Equal(t, 1.0, testutil.ToFloat64(c.playerLevel))
}

func TestCollectorHandler(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())
	c.OnEvent(event.Event{Type: event.EnemyKilled})

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "survivor_enemies_killed_total 1")
	assert.Contains(t, rec.Body.String(), "survivor_player_level 1")
}

func TestDebugMuxServesMetricsAndPprof(t *testing.T) {
	d := event.NewDispatcher()
	c := NewCollector(prometheus.NewRegistry())
	c.Subscribe(d)
	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{ID: 1, ExpReward: 15}})

	mux := DebugMux(c)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "survivor_enemies_killed_total 1")

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/debug/pprof/", nil))
	assert.Equal(t, 200, rec.Code)
}
