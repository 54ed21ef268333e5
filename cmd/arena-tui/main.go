// cmd/arena-tui/main.go
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"go-survivor/internal/app"
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/effects"
	"go-survivor/internal/event"
	"go-survivor/internal/logging"
	"go-survivor/internal/metrics"
	"go-survivor/internal/sfx"
	"go-survivor/internal/tui"
	"go-survivor/internal/utils"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

const frame = 16 * time.Millisecond

func main() {
	configPath := flag.String("config", "", "путь к YAML-конфигу")
	logPath := flag.String("log", "", "файл лога; без него лог отключён, чтобы не портить терминал")
	mute := flag.Bool("mute", false, "без звука")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal(err)
	}
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logOut = f
	}
	logging.Init(level, logOut)

	lib, err := defs.LoadDefinitions(cfg.Sim.DefsPath)
	if err != nil {
		log.Fatal(err)
	}

	dispatcher := event.NewDispatcher()
	logging.NewEventLogger(uuid.NewString()).Subscribe(dispatcher)
	collector := metrics.NewCollector(prometheus.NewRegistry())
	collector.Subscribe(dispatcher)
	if cfg.Debug.Enabled {
		metrics.ServeDebug(cfg.Debug.Addr, collector)
	}
	if !*mute {
		player, err := sfx.NewSpeakerPlayer(0.3)
		if err != nil {
			logging.Warn("sound disabled: %v", err)
		}
		player.Subscribe(dispatcher)
	}

	rng := utils.NewPRNGService(cfg.Sim.Seed)
	game := app.NewGame(lib, rng, dispatcher)
	logging.Info("seed %d", rng.Seed())

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	if err := game.SetState(component.MenuPhase); err != nil {
		logging.Error("%v", err)
	}
	if cfg.Sim.StartInGame {
		if err := game.SetState(component.PlayingPhase); err != nil {
			logging.Error("%v", err)
		}
	}

	run(screen, game)
}

// run крутит кадр раз в frame, события терминала приходят из отдельной горутины.
func run(screen tcell.Screen, game *app.Game) {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	renderer := tui.NewRenderer(screen)
	input := tui.NewInput()
	hints := effects.NewHintTracker(config.HintSpeed, time.Duration(config.HintLifetime*float64(time.Second)))

	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			now := time.Now()
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmd, err := tui.Control(game, ev)
				if err != nil {
					logging.Warn("%v", err)
				}
				switch cmd {
				case tui.CmdQuit:
					return
				case tui.CmdNone:
					input.HandleKey(ev, now)
				}
			case *tcell.EventMouse:
				input.HandleMouse(ev, now)
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			if limit := time.Duration(config.MaxDeltaTime * float64(time.Second)); dt > limit {
				dt = limit
			}
			last = now

			cam := renderer.Camera(game.Snapshot())
			game.Update(dt, input.Actions(now), input.Pointer(cam))
			if game.State() == component.GameoverPhase {
				hints.Clear()
			}
			hints.Add(game.DrainHints())
			hints.Update(dt)
			renderer.Draw(game.Snapshot(), hints)
		}
	}
}
