// internal/render/world.go
package render

import (
	"image/color"
	"math"

	"go-survivor/internal/app"
	"go-survivor/internal/assets"
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	prender "go-survivor/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const gridSpacing = 64.0

// WorldRenderer рисует сущности снимка относительно камеры, следующей за игроком.
type WorldRenderer struct {
	sprites *assets.SpriteManager
	Camera  *prender.Camera
}

func NewWorldRenderer(sprites *assets.SpriteManager) *WorldRenderer {
	return &WorldRenderer{
		sprites: sprites,
		Camera:  prender.NewCamera(config.ScreenWidth, config.ScreenHeight),
	}
}

// Draw рисует фон, снаряды, врагов и игрока. Камера сдвигается к игроку.
func (r *WorldRenderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	if snap.Player != nil {
		r.Camera.Follow(snap.Player.X, snap.Player.Y)
	}
	screen.Fill(config.BackgroundColor)
	grid := config.GridColor
	if snap.Phase != component.PlayingPhase {
		grid = prender.DarkenColor(grid)
	}
	r.drawGrid(screen, grid)

	for _, p := range snap.Projectiles {
		r.drawEntity(screen, p, 1, config.EnemyFlashColor)
	}
	for _, e := range snap.Enemies {
		r.drawEntity(screen, e, 1, config.EnemyFlashColor)
	}
	if p := snap.Player; p != nil {
		alpha := float32(1)
		if p.Invincible {
			alpha = 0.6
		}
		r.drawEntity(screen, p.EntityView, alpha, config.DamageFlashColor)
	}
}

func (r *WorldRenderer) drawGrid(screen *ebiten.Image, clr color.RGBA) {
	ox, oy := r.Camera.GridOffset(gridSpacing)
	w, h := float32(config.ScreenWidth), float32(config.ScreenHeight)
	for x := float32(ox); x < w; x += gridSpacing {
		vector.StrokeLine(screen, x, 0, x, h, 1, clr, false)
	}
	for y := float32(oy); y < h; y += gridSpacing {
		vector.StrokeLine(screen, 0, y, w, y, 1, clr, false)
	}
}

func (r *WorldRenderer) drawEntity(screen *ebiten.Image, v app.EntityView, alpha float32, flash color.RGBA) {
	img := r.sprites.Get(v.Sprite)
	if img == nil {
		return
	}
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	scale := v.Scale
	if scale == 0 {
		scale = 1
	}
	if !r.Camera.Visible(v.X, v.Y, max(w, h)*scale) {
		return
	}

	var geo ebiten.GeoM
	geo.Translate(-w/2, -h/2)
	geo.Scale(scale, scale)
	// поворот ядра отсчитывается от +Y, а спрайты нарисованы носом к верху экрана
	geo.Rotate(v.Rotation + math.Pi)
	sx, sy := r.Camera.WorldToScreen(v.X, v.Y)
	geo.Translate(sx, sy)

	if v.Flashing {
		// силуэт цвета вспышки
		var cm colorm.ColorM
		cm.Scale(0, 0, 0, float64(alpha))
		cm.Translate(float64(flash.R)/255, float64(flash.G)/255, float64(flash.B)/255, 0)
		op := &colorm.DrawImageOptions{GeoM: geo, Filter: ebiten.FilterLinear}
		colorm.DrawImage(screen, img, cm, op)
		return
	}

	op := &ebiten.DrawImageOptions{GeoM: geo, Filter: ebiten.FilterLinear}
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(img, op)
}
