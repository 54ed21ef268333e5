package logging

import "go-survivor/internal/event"

// EventLogger пишет игровые уведомления в лог. Каждое событие — одна строка:
// частые события на DEBUG, редкие на INFO.
type EventLogger struct {
	runID string
}

func NewEventLogger(runID string) *EventLogger {
	return &EventLogger{runID: runID}
}

// Subscribe подписывает логгер на все игровые уведомления.
func (l *EventLogger) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(l,
		event.EnemySpawned, event.ProjectileFired, event.EnemyKilled,
		event.PlayerDamaged, event.LevelUp, event.GameOver, event.StateChanged,
	)
}

func (l *EventLogger) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.EnemySpawnedData:
		Debug("run %s: enemy %d spawned at (%.1f, %.1f)", l.runID, data.ID, data.X, data.Y)
	case event.EnemyKilledData:
		Debug("run %s: enemy %d killed, +%d exp", l.runID, data.ID, data.ExpReward)
	case event.PlayerDamagedData:
		Debug("run %s: player hit for %d, %d hp left", l.runID, data.Amount, data.HealthLeft)
	case event.LevelUpData:
		Info("run %s: level up -> %d", l.runID, data.Level)
	case event.StateChangedData:
		Info("run %s: state %s -> %s", l.runID, data.From, data.To)
	default:
		if e.Type == event.GameOver {
			Info("run %s: game over", l.runID)
			return
		}
		Trace("run %s: %s %v", l.runID, e.Type, e.Data)
	}
}
