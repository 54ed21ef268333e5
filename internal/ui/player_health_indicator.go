// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"go-survivor/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthCols          = 5
	HealthCircleRadius  = 7.0
	HealthCircleSpacing = 4.0
)

var (
	healthFullColor  = color.RGBA{200, 40, 40, 255}
	healthExtraColor = color.RGBA{60, 90, 220, 255}
	healthEmptyColor = color.RGBA{0, 0, 0, 255}
)

// PlayerHealthIndicator отображает здоровье игрока.
type PlayerHealthIndicator struct {
	X, Y float32
	face text.Face
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, face text.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, face: face}
}

// Draw рисует текст "hp/max" и под ним сетку кружков.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(i.X), float64(i.Y))
	op.ColorScale.ScaleWithColor(config.TextLightColor)
	text.Draw(screen, strconv.Itoa(health)+"/"+strconv.Itoa(maxHealth), i.face, op)

	top := i.Y + 18
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	half := maxHealth / 2
	for j := 0; j < maxHealth; j++ {
		cx := i.X + float32(j%HealthCols)*step + HealthCircleRadius
		cy := top + float32(j/HealthCols)*step + HealthCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, circleColor(j, health, half), true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, color.White, true)
	}
}

// circleColor: пустые ячейки черные, "избыток" сверх половины синий.
func circleColor(j, health, half int) color.Color {
	switch {
	case j >= health:
		return healthEmptyColor
	case health > half && j < health-half:
		return healthExtraColor
	default:
		return healthFullColor
	}
}

// Height возвращает общую высоту индикатора.
func (i *PlayerHealthIndicator) Height(maxHealth int) float32 {
	rows := (maxHealth + HealthCols - 1) / HealthCols
	return 18 + float32(rows)*(HealthCircleRadius*2+HealthCircleSpacing)
}
