// internal/state/screens.go
package state

import (
	"fmt"
	"time"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	_ State = (*LoadingState)(nil)
	_ State = (*MenuState)(nil)
	_ State = (*GameState)(nil)
	_ State = (*UpgradeState)(nil)
	_ State = (*GameoverState)(nil)
)

// LoadingState — ресурсы уже загружены в main, экран сразу уходит дальше.
type LoadingState struct {
	ctx         *Context
	startInGame bool
}

func (s *LoadingState) Enter() {}

func (s *LoadingState) Update(time.Duration) {
	request(s.ctx.Game, component.MenuPhase)
	if s.startInGame {
		request(s.ctx.Game, component.PlayingPhase)
	}
}

func (s *LoadingState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.ctx.overlay.Draw(screen, "Loading...", "")
}

func (s *LoadingState) Exit() {}

// MenuState — стартовый экран и пауза.
type MenuState struct {
	ctx *Context
}

func (s *MenuState) Enter() {}

func (s *MenuState) Update(time.Duration) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		request(s.ctx.Game, component.PlayingPhase)
	}
}

func (s *MenuState) Draw(screen *ebiten.Image) {
	s.ctx.drawScene(screen)
	hint := "Enter - play"
	if s.ctx.Game.HasPlayer() {
		hint = "Enter / Esc - continue"
	}
	s.ctx.overlay.Draw(screen, s.ctx.Title, hint)
}

func (s *MenuState) Exit() {}

// GameState — активная симуляция.
type GameState struct {
	ctx *Context
}

func (s *GameState) Enter() {}

func (s *GameState) Update(dt time.Duration) {
	g := s.ctx.Game
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		request(g, component.MenuPhase)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		request(g, component.UpgradePhase)
		return
	}

	actions, pointer := input.Poll(s.ctx.World.Camera)
	g.Update(dt, actions, pointer)
	s.ctx.Hints.Add(g.DrainHints())
	s.ctx.Hints.Update(dt)
	s.ctx.humUpdate(g.IsPlayerMoving())
}

func (s *GameState) Draw(screen *ebiten.Image) {
	s.ctx.drawScene(screen)
}

func (s *GameState) Exit() {
	s.ctx.humUpdate(false)
}

// UpgradeState — симуляция стоит, пока открыт экран улучшений.
type UpgradeState struct {
	ctx *Context
}

func (s *UpgradeState) Enter() {}

func (s *UpgradeState) Update(time.Duration) {
	if inpututil.IsKeyJustPressed(ebiten.KeyU) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		request(s.ctx.Game, component.PlayingPhase)
	}
}

func (s *UpgradeState) Draw(screen *ebiten.Image) {
	s.ctx.drawScene(screen)
	s.ctx.overlay.Draw(screen, "Upgrade", "U - back")
}

func (s *UpgradeState) Exit() {}

// GameoverState — любая клавиша возвращает в меню, сцена очищается ядром.
type GameoverState struct {
	ctx   *Context
	keys  []ebiten.Key
	level int
}

func (s *GameoverState) Enter() {
	s.level = 0
	if p := s.ctx.Game.Snapshot().Player; p != nil {
		s.level = p.Level
	}
	s.ctx.Hints.Clear()
}

func (s *GameoverState) Update(time.Duration) {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	if len(s.keys) > 0 {
		request(s.ctx.Game, component.MenuPhase)
	}
}

func (s *GameoverState) Draw(screen *ebiten.Image) {
	s.ctx.drawScene(screen)
	s.ctx.overlay.Draw(screen, "Game Over", fmt.Sprintf("level %d - press any key", s.level))
}

func (s *GameoverState) Exit() {}
