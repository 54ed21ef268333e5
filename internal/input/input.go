// internal/input/input.go
package input

import (
	"go-survivor/internal/component"
	"go-survivor/pkg/geom"
	"go-survivor/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Poll снимает состояние клавиатуры и мыши за кадр и переводит его в
// намерения игрока. Курсор переводится в мировые координаты через камеру.
func Poll(cam *render.Camera) (component.Actions, component.Pointer) {
	var dx, dy float64
	if pressed(ebiten.KeyA, ebiten.KeyArrowLeft) {
		dx--
	}
	if pressed(ebiten.KeyD, ebiten.KeyArrowRight) {
		dx++
	}
	if pressed(ebiten.KeyW, ebiten.KeyArrowUp) {
		dy--
	}
	if pressed(ebiten.KeyS, ebiten.KeyArrowDown) {
		dy++
	}

	actions := component.Actions{
		Movement:   Movement(dx, dy),
		Fire:       ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace),
		SecondFire: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		Dodge:      inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || inpututil.IsKeyJustPressed(ebiten.KeyShiftRight),
	}

	cx, cy := ebiten.CursorPosition()
	wx, wy := cam.ScreenToWorld(float64(cx), float64(cy))
	return actions, component.Pointer{X: wx, Y: wy}
}

// Movement нормализует направление; нулевое направление — отсутствие ввода.
func Movement(dx, dy float64) *geom.Vec2 {
	n, ok := geom.Vec2{X: dx, Y: dy}.Normalize()
	if !ok {
		return nil
	}
	return &n
}

func pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
