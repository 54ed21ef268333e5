package tui

import (
	"time"

	"go-survivor/internal/component"
	"go-survivor/pkg/geom"

	"github.com/gdamore/tcell/v2"
)

// Терминал не сообщает об отпускании клавиш: нажатие держится holdWindow,
// автоповтор клавиатуры продлевает его.
const holdWindow = 200 * time.Millisecond

// aimDistance — как далеко перед игроком ставится указатель без мыши.
const aimDistance = 100.0

// Input собирает намерения игрока из событий tcell.
type Input struct {
	move      geom.Vec2
	moveUntil time.Time
	fireUntil time.Time
	dodge     bool

	mouseSeen      bool
	mouseX, mouseY int
	aim            geom.Vec2
}

func NewInput() *Input {
	return &Input{aim: geom.Vec2{Y: -1}}
}

// HandleKey обрабатывает клавишу. Возвращает false, если клавиша не игровая.
func (in *Input) HandleKey(ev *tcell.EventKey, now time.Time) bool {
	var dir geom.Vec2
	switch ev.Key() {
	case tcell.KeyUp:
		dir = geom.Vec2{Y: -1}
	case tcell.KeyDown:
		dir = geom.Vec2{Y: 1}
	case tcell.KeyLeft:
		dir = geom.Vec2{X: -1}
	case tcell.KeyRight:
		dir = geom.Vec2{X: 1}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			dir = geom.Vec2{Y: -1}
		case 's', 'S':
			dir = geom.Vec2{Y: 1}
		case 'a', 'A':
			dir = geom.Vec2{X: -1}
		case 'd', 'D':
			dir = geom.Vec2{X: 1}
		case ' ':
			in.fireUntil = now.Add(holdWindow)
			return true
		case 'x', 'X':
			in.dodge = true
			return true
		default:
			return false
		}
	default:
		return false
	}
	in.move = dir
	in.moveUntil = now.Add(holdWindow)
	in.aim = dir
	return true
}

// HandleMouse запоминает клетку указателя; левая кнопка — огонь.
func (in *Input) HandleMouse(ev *tcell.EventMouse, now time.Time) {
	in.mouseSeen = true
	in.mouseX, in.mouseY = ev.Position()
	if ev.Buttons()&tcell.Button1 != 0 {
		in.fireUntil = now.Add(holdWindow)
	}
}

// Actions возвращает намерения на текущий тик. Перекат срабатывает один раз.
func (in *Input) Actions(now time.Time) component.Actions {
	var a component.Actions
	if now.Before(in.moveUntil) {
		m := in.move
		a.Movement = &m
	}
	a.Fire = now.Before(in.fireUntil)
	a.Dodge = in.dodge
	in.dodge = false
	return a
}

// Pointer — мировая позиция указателя: клетка мыши или точка по направлению
// последнего движения, если мыши нет.
func (in *Input) Pointer(cam Camera) component.Pointer {
	if in.mouseSeen {
		x, y := cam.CellToWorld(in.mouseX, in.mouseY)
		return component.Pointer{X: x, Y: y}
	}
	return component.Pointer{
		X: cam.CenterX + in.aim.X*aimDistance,
		Y: cam.CenterY + in.aim.Y*aimDistance,
	}
}
