// internal/effects/hints.go
package effects

import (
	"time"

	"go-survivor/internal/event"
)

// FloatingHint — всплывающее число урона, которое поднимается и гаснет.
type FloatingHint struct {
	Amount int
	X, Y   float64
	Age    time.Duration
}

// HintTracker анимирует подсказки урона: подъём со скоростью Speed (ед/с,
// вверх — к меньшему Y) и затухание за Lifetime.
type HintTracker struct {
	Speed    float64
	Lifetime time.Duration
	hints    []FloatingHint
}

func NewHintTracker(speed float64, lifetime time.Duration) *HintTracker {
	return &HintTracker{Speed: speed, Lifetime: lifetime}
}

// Add принимает новые подсказки из симуляции.
func (t *HintTracker) Add(hints []event.DamageHint) {
	for _, h := range hints {
		t.hints = append(t.hints, FloatingHint{Amount: h.Amount, X: h.X, Y: h.Y})
	}
}

// Update двигает подсказки и выбрасывает отжившие.
func (t *HintTracker) Update(dt time.Duration) {
	kept := t.hints[:0]
	for _, h := range t.hints {
		h.Age += dt
		if h.Age >= t.Lifetime {
			continue
		}
		h.Y -= t.Speed * dt.Seconds()
		kept = append(kept, h)
	}
	t.hints = kept
}

// Active возвращает живые подсказки. Срез принадлежит трекеру до следующего Update.
func (t *HintTracker) Active() []FloatingHint {
	return t.hints
}

// Alpha — непрозрачность подсказки: 1 при появлении, 0 в конце жизни.
func (t *HintTracker) Alpha(h FloatingHint) float64 {
	if t.Lifetime <= 0 {
		return 0
	}
	a := 1 - float64(h.Age)/float64(t.Lifetime)
	if a < 0 {
		return 0
	}
	return a
}

// Clear убирает все подсказки (новая игра).
func (t *HintTracker) Clear() {
	t.hints = nil
}
