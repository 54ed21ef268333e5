// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"go-survivor/internal/app"
	"go-survivor/internal/assets"
	"go-survivor/internal/audio"
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/event"
	"go-survivor/internal/logging"
	"go-survivor/internal/metrics"
	"go-survivor/internal/render"
	"go-survivor/internal/state"
	"go-survivor/internal/utils"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/image/font/basicfont"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime)
	if limit := time.Duration(config.MaxDeltaTime * float64(time.Second)); deltaTime > limit {
		deltaTime = limit
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "путь к YAML-конфигу")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal(err)
	}
	logging.Init(level, os.Stderr)

	lib, err := defs.LoadDefinitions(cfg.Sim.DefsPath)
	if err != nil {
		log.Fatal(err)
	}

	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(cfg.Sim.Seed)
	logging.NewEventLogger(uuid.NewString()).Subscribe(dispatcher)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)
	collector.Subscribe(dispatcher)

	if cfg.Debug.Enabled {
		metrics.ServeDebug(cfg.Debug.Addr, collector)
	}

	game := app.NewGame(lib, rng, dispatcher)
	logging.Info("seed %d", rng.Seed())

	sprites := assets.NewSpriteManager("assets")
	sprites.Load(
		component.AssetHandle(lib.Player.Sprite),
		component.AssetHandle(lib.Enemy.Sprite),
		component.AssetHandle(lib.Projectile.Sprite),
	)
	defer sprites.Cleanup()

	hum, err := audio.NewHum(eaudio.NewContext(audio.SampleRate))
	if err != nil {
		logging.Warn("audio disabled: %v", err)
		hum = nil
	} else {
		defer hum.Close()
	}

	ctx := state.NewContext(cfg.Window.Title, game, render.NewWorldRenderer(sprites), hum, text.NewGoXFace(basicfont.Face7x13))
	appGame := &AppGame{
		stateMachine:   state.NewStateMachine(ctx, cfg.Sim.StartInGame),
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(config.ScreenWidth*cfg.Window.Scale, config.ScreenHeight*cfg.Window.Scale)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
