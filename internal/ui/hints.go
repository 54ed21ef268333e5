// internal/ui/hints.go
package ui

import (
	"strconv"

	"go-survivor/internal/config"
	"go-survivor/internal/effects"
	"go-survivor/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// HintLayer рисует всплывающие числа урона поверх мира.
type HintLayer struct {
	face text.Face
}

func NewHintLayer(face text.Face) *HintLayer {
	return &HintLayer{face: face}
}

func (l *HintLayer) Draw(screen *ebiten.Image, cam *render.Camera, tracker *effects.HintTracker) {
	for _, h := range tracker.Active() {
		sx, sy := cam.WorldToScreen(h.X, h.Y)
		s := strconv.Itoa(h.Amount)
		w, _ := text.Measure(s, l.face, 0)

		op := &text.DrawOptions{}
		op.GeoM.Translate(sx-w/2, sy-20)
		op.ColorScale.ScaleWithColor(render.FadeColor(config.TextLightColor, tracker.Alpha(h)))
		text.Draw(screen, s, l.face, op)
	}
}
