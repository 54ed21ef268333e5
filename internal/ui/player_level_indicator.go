// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"go-survivor/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlayerLevelIndicator отображает уровень и опыт игрока.
type PlayerLevelIndicator struct {
	X, Y float32
	face text.Face
}

const (
	xpBarWidth  = 200
	xpBarHeight = 12
	borderWidth = 1
)

var borderColor = color.White

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float32, face text.Face) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y, face: face}
}

// Draw отрисовывает полосу опыта и подпись уровня под ней.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level, currentXP, xpToNext int) {
	vector.DrawFilledRect(screen, i.X, i.Y, xpBarWidth, xpBarHeight, config.XPBarColorBack, true)

	fillWidth := float32(xpBarWidth-borderWidth*2) * XPRatio(currentXP, xpToNext)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, xpBarHeight-borderWidth*2, config.XPBarColorFill, true)
	}
	vector.StrokeRect(screen, i.X, i.Y, xpBarWidth, xpBarHeight, borderWidth, borderColor, true)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(i.X), float64(i.Y+xpBarHeight+4))
	op.ColorScale.ScaleWithColor(config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("LV %d  %d/%d", level, currentXP, xpToNext), i.face, op)
}

// XPRatio — доля заполнения полосы опыта в [0, 1].
func XPRatio(current, toNext int) float32 {
	if toNext <= 0 || current <= 0 {
		return 0
	}
	r := float32(current) / float32(toNext)
	if r > 1 {
		return 1
	}
	return r
}
