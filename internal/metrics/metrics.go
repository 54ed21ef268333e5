package metrics

import (
	"net/http"

	"go-survivor/internal/event"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector переводит игровые уведомления диспетчера в метрики Prometheus.
type Collector struct {
	registry *prometheus.Registry

	enemiesSpawned prometheus.Counter
	enemiesKilled  prometheus.Counter
	projectiles    prometheus.Counter
	playerDamage   prometheus.Counter
	levelUps       prometheus.Counter
	playerLevel    prometheus.Gauge
}

// NewCollector создаёт метрики и регистрирует их в переданном регистре.
// Регистр не глобальный, чтобы тесты и несколько игр не конфликтовали.
func NewCollector(registry *prometheus.Registry) *Collector {
	c := &Collector{
		registry: registry,
		enemiesSpawned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "survivor",
			Name:      "enemies_spawned_total",
			Help:      "Общее число появившихся врагов.",
		}),
		enemiesKilled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "survivor",
			Name:      "enemies_killed_total",
			Help:      "Общее число убитых врагов.",
		}),
		projectiles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "survivor",
			Name:      "projectiles_fired_total",
			Help:      "Выпущенные игроком снаряды.",
		}),
		playerDamage: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "survivor",
			Name:      "player_damage_total",
			Help:      "Суммарный урон, полученный игроком.",
		}),
		levelUps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "survivor",
			Name:      "level_ups_total",
			Help:      "Число повышений уровня.",
		}),
		playerLevel: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "survivor",
			Name:      "player_level",
			Help:      "Текущий уровень игрока.",
		}),
	}
	registry.MustRegister(c.enemiesSpawned, c.enemiesKilled, c.projectiles,
		c.playerDamage, c.levelUps, c.playerLevel)
	c.playerLevel.Set(1)
	return c
}

// Subscribe подписывает сборщик на нужные события.
func (c *Collector) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(c,
		event.EnemySpawned, event.EnemyKilled, event.ProjectileFired,
		event.PlayerDamaged, event.LevelUp, event.StateChanged,
	)
}

func (c *Collector) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySpawned:
		c.enemiesSpawned.Inc()
	case event.EnemyKilled:
		c.enemiesKilled.Inc()
	case event.ProjectileFired:
		c.projectiles.Inc()
	case event.PlayerDamaged:
		if data, ok := e.Data.(event.PlayerDamagedData); ok {
			c.playerDamage.Add(float64(data.Amount))
		}
	case event.LevelUp:
		c.levelUps.Inc()
		if data, ok := e.Data.(event.LevelUpData); ok {
			c.playerLevel.Set(float64(data.Level))
		}
	case event.StateChanged:
		// Новая игра начинается с первого уровня.
		if data, ok := e.Data.(event.StateChangedData); ok && data.From == "Gameover" {
			c.playerLevel.Set(1)
		}
	}
}

// Handler отдаёт метрики регистра в формате Prometheus.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
