package tui

import (
	"go-survivor/internal/component"
	"go-survivor/internal/interfaces"

	"github.com/gdamore/tcell/v2"
)

// Command — что делать фронтенду после управляющей клавиши.
type Command int

const (
	CmdNone    Command = iota // клавиша не управляющая, отдать во ввод
	CmdHandled                // фаза переключена (или переход отклонён)
	CmdQuit
)

// Control обрабатывает клавиши смены фазы. Ошибка перехода возвращается
// вызывающему для логирования.
func Control(g interfaces.Game, ev *tcell.EventKey) (Command, error) {
	if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
		return CmdQuit, nil
	}

	switch g.State() {
	case component.MenuPhase:
		if ev.Key() == tcell.KeyEnter || ev.Key() == tcell.KeyEscape {
			return CmdHandled, g.SetState(component.PlayingPhase)
		}
	case component.PlayingPhase:
		switch {
		case ev.Key() == tcell.KeyEscape:
			return CmdHandled, g.SetState(component.MenuPhase)
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'u' || ev.Rune() == 'U'):
			return CmdHandled, g.SetState(component.UpgradePhase)
		}
	case component.UpgradePhase:
		if ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'u' || ev.Rune() == 'U')) {
			return CmdHandled, g.SetState(component.PlayingPhase)
		}
	case component.GameoverPhase:
		return CmdHandled, g.SetState(component.MenuPhase)
	}
	return CmdNone, nil
}
