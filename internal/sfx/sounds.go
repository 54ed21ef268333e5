package sfx

import (
	"sync"
	"time"

	"go-survivor/internal/event"
	"go-survivor/internal/logging"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const SampleRate = beep.SampleRate(44100)

const (
	shotDuration = 60 * time.Millisecond
	hitDuration  = 120 * time.Millisecond
	killDuration = 90 * time.Millisecond
	levelNote    = 110 * time.Millisecond
	fade         = 30 * time.Millisecond
)

// ShotSound — короткий щелчок выстрела.
func ShotSound(volume float64) beep.Streamer {
	osc := NewOscillator(660, shotDuration, WaveSquare, SampleRate)
	return newVolume(NewRelease(osc, shotDuration, fade, SampleRate), volume*0.5)
}

// HurtSound — низкий гул при уроне игроку.
func HurtSound(volume float64) beep.Streamer {
	osc := NewOscillator(110, hitDuration, WaveSaw, SampleRate)
	return newVolume(NewRelease(osc, hitDuration, fade, SampleRate), volume)
}

// KillSound — звонкий тон убийства врага.
func KillSound(volume float64) beep.Streamer {
	osc := NewOscillator(880, killDuration, WaveSine, SampleRate)
	return newVolume(NewRelease(osc, killDuration, fade, SampleRate), volume)
}

// LevelUpSound — две восходящие ноты.
func LevelUpSound(volume float64) beep.Streamer {
	n1 := NewRelease(NewOscillator(987.77, levelNote, WaveSquare, SampleRate), levelNote, fade, SampleRate)
	n2 := NewRelease(NewOscillator(1318.51, levelNote, WaveSquare, SampleRate), levelNote, fade, SampleRate)
	return newVolume(beep.Seq(n1, n2), volume*0.5)
}

// Player озвучивает игровые уведомления. Без инициализированного динамика
// молчит: игра работает и без звука.
type Player struct {
	volume float64
	play   func(beep.Streamer)
}

var speakerOnce sync.Once
var speakerErr error

// NewSpeakerPlayer инициализирует динамик beep. Ошибка не фатальна:
// возвращается немой Player.
func NewSpeakerPlayer(volume float64) (*Player, error) {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond))
	})
	if speakerErr != nil {
		return &Player{volume: volume}, speakerErr
	}
	return &Player{volume: volume, play: func(s beep.Streamer) { speaker.Play(s) }}, nil
}

// NewPlayer создаёт Player с произвольным выходом (тесты, запись).
func NewPlayer(volume float64, play func(beep.Streamer)) *Player {
	return &Player{volume: volume, play: play}
}

// Subscribe подписывает Player на озвучиваемые события.
func (p *Player) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(p,
		event.ProjectileFired, event.PlayerDamaged, event.EnemyKilled, event.LevelUp,
	)
}

func (p *Player) OnEvent(e event.Event) {
	if p.play == nil {
		return
	}
	var s beep.Streamer
	switch e.Type {
	case event.ProjectileFired:
		s = ShotSound(p.volume)
	case event.PlayerDamaged:
		s = HurtSound(p.volume)
	case event.EnemyKilled:
		s = KillSound(p.volume)
	case event.LevelUp:
		s = LevelUpSound(p.volume)
	default:
		return
	}
	logging.Trace("sfx: %s", e.Type)
	p.play(s)
}
