// internal/ui/overlay.go
package ui

import (
	"go-survivor/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay затемняет экран и выводит заголовок с подсказкой по центру.
type Overlay struct {
	face text.Face
}

func NewOverlay(face text.Face) *Overlay {
	return &Overlay{face: face}
}

func (o *Overlay) Draw(screen *ebiten.Image, title, hint string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	o.centered(screen, title, config.ScreenHeight/2-16)
	if hint != "" {
		o.centered(screen, hint, config.ScreenHeight/2+8)
	}
}

func (o *Overlay) centered(screen *ebiten.Image, s string, y float64) {
	w, _ := text.Measure(s, o.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((config.ScreenWidth-w)/2, y)
	op.ColorScale.ScaleWithColor(config.TextLightColor)
	text.Draw(screen, s, o.face, op)
}
