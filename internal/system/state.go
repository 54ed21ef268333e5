// internal/system/state.go
package system

import (
	"errors"
	"fmt"

	"go-survivor/internal/component"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/interfaces"
)

// ErrInvalidTransition — запрошенный переход не разрешён из текущего состояния.
var ErrInvalidTransition = errors.New("invalid state transition")

// Разрешённые переходы: Loading → Menu ⇄ Playing ⇄ Upgrade; Playing → Gameover → Menu.
var transitions = map[component.Phase][]component.Phase{
	component.LoadingPhase:  {component.MenuPhase},
	component.MenuPhase:     {component.PlayingPhase},
	component.PlayingPhase:  {component.MenuPhase, component.UpgradePhase, component.GameoverPhase},
	component.UpgradePhase:  {component.PlayingPhase},
	component.GameoverPhase: {component.MenuPhase},
}

// CanTransition сообщает, разрешён ли переход from → to.
func CanTransition(from, to component.Phase) bool {
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

type StateSystem struct {
	ecs             *entity.ECS
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
}

// Switch выполняет переход. Выход из Gameover очищает сцену, вход в Playing
// создаёт игрока, если его нет.
func (s *StateSystem) Switch(to component.Phase) error {
	from := s.ecs.GameState.Current
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	if from == component.GameoverPhase {
		s.gameContext.ClearScene()
	}
	s.ecs.GameState.Current = to
	s.ecs.GameState.Next = nil
	if to == component.PlayingPhase && !s.gameContext.HasPlayer() {
		s.gameContext.SpawnPlayer()
	}

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.StateChanged,
		Data: event.StateChangedData{From: from.String(), To: to.String()},
	})
	return nil
}

// ApplyPending применяет переход, запрошенный системами во время тика.
func (s *StateSystem) ApplyPending() error {
	next := s.ecs.GameState.Next
	if next == nil {
		return nil
	}
	s.ecs.GameState.Next = nil
	return s.Switch(*next)
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.GameState.Current
}
