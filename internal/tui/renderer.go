package tui

import (
	"fmt"

	"go-survivor/internal/app"
	"go-survivor/internal/component"
	"go-survivor/internal/effects"

	"github.com/gdamore/tcell/v2"
)

var (
	styleDefault    = tcell.StyleDefault
	stylePlayer     = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	stylePlayerHurt = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleEnemy      = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleEnemyFlash = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHint       = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHintFaded  = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorAntiqueWhite)
	styleXPFill     = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleXPBack     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

const (
	runePlayer     = '@'
	runeEnemy      = 'e'
	runeProjectile = '*'
	xpBarWidth     = 20
)

// Renderer рисует снимок симуляции на экране tcell.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Camera — камера, следующая за игроком (или за началом координат без игрока).
func (r *Renderer) Camera(snap app.Snapshot) Camera {
	w, h := r.screen.Size()
	cam := Camera{Width: w, Height: h}
	if snap.Player != nil {
		cam.CenterX, cam.CenterY = snap.Player.X, snap.Player.Y
	}
	return cam
}

// Draw рисует кадр: снаряды, враги, игрок, подсказки урона, HUD и баннер состояния.
func (r *Renderer) Draw(snap app.Snapshot, hints *effects.HintTracker) {
	r.screen.Clear()
	cam := r.Camera(snap)

	for _, p := range snap.Projectiles {
		r.put(cam, p.X, p.Y, runeProjectile, styleProjectile)
	}
	for _, e := range snap.Enemies {
		style := styleEnemy
		if e.Flashing {
			style = styleEnemyFlash
		}
		r.put(cam, e.X, e.Y, runeEnemy, style)
	}
	if p := snap.Player; p != nil {
		style := stylePlayer
		if p.Flashing {
			style = stylePlayerHurt
		}
		r.put(cam, p.X, p.Y, runePlayer, style)
	}
	if hints != nil {
		for _, h := range hints.Active() {
			style := styleHint
			if hints.Alpha(h) < 0.5 {
				style = styleHintFaded
			}
			if cx, cy, ok := cam.WorldToCell(h.X, h.Y); ok {
				r.text(cx, cy-1, fmt.Sprintf("%d", h.Amount), style)
			}
		}
	}

	r.drawHUD(snap)
	r.drawBanner(snap.Phase)
	r.screen.Show()
}

func (r *Renderer) drawHUD(snap app.Snapshot) {
	p := snap.Player
	if p == nil {
		return
	}
	r.text(0, 0, fmt.Sprintf("HP %d/%d  LV %d  XP %d/%d", p.Health, p.MaxHealth, p.Level, p.XP, p.XPToNext), styleHUD)

	filled := 0
	if p.XPToNext > 0 {
		filled = p.XP * xpBarWidth / p.XPToNext
	}
	if filled > xpBarWidth {
		filled = xpBarWidth
	}
	for i := 0; i < xpBarWidth; i++ {
		if i < filled {
			r.screen.SetContent(i, 1, '█', nil, styleXPFill)
		} else {
			r.screen.SetContent(i, 1, '░', nil, styleXPBack)
		}
	}
}

func (r *Renderer) drawBanner(phase component.Phase) {
	var msg string
	switch phase {
	case component.LoadingPhase:
		msg = "LOADING"
	case component.MenuPhase:
		msg = "SURVIVOR - press Enter to play, q to quit"
	case component.UpgradePhase:
		msg = "UPGRADE - press u to continue"
	case component.GameoverPhase:
		msg = "GAME OVER - press any key"
	default:
		return
	}
	w, h := r.screen.Size()
	r.text((w-len(msg))/2, h/2, msg, styleHUD.Bold(true))
}

func (r *Renderer) put(cam Camera, x, y float64, ch rune, style tcell.Style) {
	if cx, cy, ok := cam.WorldToCell(x, y); ok {
		r.screen.SetContent(cx, cy, ch, nil, style)
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
