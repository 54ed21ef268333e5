// internal/audio/hum.go
package audio

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	SampleRate = 44100
	humFreq    = 110.0 // целое число периодов в секунде — петля без щелчка
	humVolume  = 0.15
)

// Hum — звук шагов: играет, пока игрок двигается.
type Hum struct {
	player *audio.Player
}

// NewHum создаёт зацикленный тон на переданном аудиоконтексте.
func NewHum(ctx *audio.Context) (*Hum, error) {
	pcm := sineLoop(ctx.SampleRate(), humFreq)
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, err
	}
	player.SetVolume(humVolume)
	return &Hum{player: player}, nil
}

// Update включает или ставит на паузу звук по сигналу движения.
func (h *Hum) Update(moving bool) {
	switch {
	case moving && !h.player.IsPlaying():
		h.player.Play()
	case !moving && h.player.IsPlaying():
		h.player.Pause()
	}
}

// Close останавливает звук.
func (h *Hum) Close() error {
	return h.player.Close()
}

// sineLoop — одна секунда синуса: 16 бит, стерео, little-endian.
func sineLoop(sampleRate int, freq float64) []byte {
	buf := make([]byte, sampleRate*4)
	for i := 0; i < sampleRate; i++ {
		v := int16(math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * 0.3 * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[4*i:], uint16(v))
		binary.LittleEndian.PutUint16(buf[4*i+2:], uint16(v))
	}
	return buf
}
