// internal/state/state.go
package state

import (
	"time"

	"go-survivor/internal/component"
	"go-survivor/internal/interfaces"
	"go-survivor/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — интерфейс для всех экранов
type State interface {
	Enter()
	Update(dt time.Duration)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine держит экран, соответствующий фазе симуляции. Экран меняется
// только вслед за фазой, так что переходы проверяет ядро.
type StateMachine struct {
	ctx     *Context
	screens map[component.Phase]State
	current State
	phase   component.Phase
}

// NewStateMachine создаёт машину со всеми экранами и входит в экран текущей фазы.
func NewStateMachine(ctx *Context, startInGame bool) *StateMachine {
	sm := &StateMachine{
		ctx: ctx,
		screens: map[component.Phase]State{
			component.LoadingPhase:  &LoadingState{ctx: ctx, startInGame: startInGame},
			component.MenuPhase:     &MenuState{ctx: ctx},
			component.PlayingPhase:  &GameState{ctx: ctx},
			component.UpgradePhase:  &UpgradeState{ctx: ctx},
			component.GameoverPhase: &GameoverState{ctx: ctx},
		},
	}
	sm.follow(ctx.Game.State())
	return sm
}

// SetState устанавливает новый экран
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update обновляет текущий экран и подхватывает смену фазы
func (sm *StateMachine) Update(dt time.Duration) {
	if sm.current != nil {
		sm.current.Update(dt)
	}
	sm.follow(sm.ctx.Game.State())
}

// Draw отрисовывает текущий экран
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

func (sm *StateMachine) follow(p component.Phase) {
	if sm.current != nil && p == sm.phase {
		return
	}
	sm.phase = p
	sm.SetState(sm.screens[p])
}

// request просит ядро сменить фазу; запрещённый переход только логируется.
func request(g interfaces.Game, to component.Phase) {
	if err := g.SetState(to); err != nil {
		logging.Warn("переход отклонён: %v", err)
	}
}
