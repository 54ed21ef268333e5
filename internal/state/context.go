// internal/state/context.go
package state

import (
	"time"

	"go-survivor/internal/app"
	"go-survivor/internal/audio"
	"go-survivor/internal/config"
	"go-survivor/internal/effects"
	"go-survivor/internal/render"
	"go-survivor/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Context — общее для всех экранов: симуляция и её коллабораторы.
type Context struct {
	Game    *app.Game
	World   *render.WorldRenderer
	Hints   *effects.HintTracker
	Hum     *audio.Hum // nil, если звук недоступен
	Title   string
	health  *ui.PlayerHealthIndicator
	level   *ui.PlayerLevelIndicator
	hints   *ui.HintLayer
	overlay *ui.Overlay
}

func NewContext(title string, game *app.Game, world *render.WorldRenderer, hum *audio.Hum, face text.Face) *Context {
	const off = config.IndicatorOffsetX
	return &Context{
		Game:    game,
		World:   world,
		Hints:   effects.NewHintTracker(config.HintSpeed, time.Duration(config.HintLifetime*float64(time.Second))),
		Hum:     hum,
		Title:   title,
		health:  ui.NewPlayerHealthIndicator(off, off, face),
		level:   ui.NewPlayerLevelIndicator(config.ScreenWidth-200-off, off, face),
		hints:   ui.NewHintLayer(face),
		overlay: ui.NewOverlay(face),
	}
}

// drawScene рисует мир, подсказки урона и HUD игрока.
func (c *Context) drawScene(screen *ebiten.Image) app.Snapshot {
	snap := c.Game.Snapshot()
	c.World.Draw(screen, snap)
	c.hints.Draw(screen, c.World.Camera, c.Hints)
	if p := snap.Player; p != nil {
		c.health.Draw(screen, p.Health, p.MaxHealth)
		c.level.Draw(screen, p.Level, p.XP, p.XPToNext)
	}
	return snap
}

func (c *Context) humUpdate(moving bool) {
	if c.Hum != nil {
		c.Hum.Update(moving)
	}
}
