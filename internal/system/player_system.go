// internal/system/player_system.go
package system

import (
	"go-survivor/internal/component"
	"go-survivor/internal/defs"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
)

// PlayerSystem отвечает за логику, связанную с игроком: урон от касаний и
// начисление опыта с повышением уровня.
type PlayerSystem struct {
	ecs             *entity.ECS
	queues          *Queues
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(ecs *entity.ECS, queues *Queues, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, queues: queues, eventDispatcher: eventDispatcher}
}

// ApplyDamageQueue применяет накопленный урон к игроку. При здоровье <= 0
// запрашивает переход в Gameover.
func (s *PlayerSystem) ApplyDamageQueue() {
	damage := s.queues.PlayerDamage.Drain()
	id, ok := s.ecs.PlayerID()
	if !ok {
		return
	}
	health, ok := s.ecs.Healths[id]
	if !ok {
		return
	}

	for _, d := range damage {
		if !ApplyDamage(s.ecs, id, d.Amount) {
			continue
		}
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.PlayerDamaged,
			Data: event.PlayerDamagedData{Amount: d.Amount, HealthLeft: health.Display()},
		})
		if health.IsDead() {
			s.ecs.GameState.Request(component.GameoverPhase)
			s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver})
			return
		}
	}
}

// ApplyExperienceQueue начисляет опыт за убитых врагов.
func (s *PlayerSystem) ApplyExperienceQueue() {
	gains := s.queues.ExpGain.Drain()
	id, ok := s.ecs.PlayerID()
	if !ok {
		return
	}
	playerState, ok := s.ecs.PlayerState[id]
	if !ok {
		return
	}

	for _, gain := range gains {
		levels := GainExperience(playerState, gain.Amount)
		for i := levels - 1; i >= 0; i-- {
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.LevelUp,
				Data: event.LevelUpData{Level: playerState.Level - i},
			})
		}
	}
}

// GainExperience добавляет опыт и повышает уровень, пока опыта хватает на порог.
// Возвращает число полученных уровней.
func GainExperience(playerState *component.PlayerStateComponent, amount int) int {
	playerState.CurrentXP += amount
	levels := 0
	for playerState.XPToNextLevel > 0 && playerState.CurrentXP >= playerState.XPToNextLevel {
		playerState.Level++
		playerState.CurrentXP -= playerState.XPToNextLevel
		playerState.XPToNextLevel = defs.ExpForLevel(playerState.Level)
		levels++
	}
	return levels
}
