// internal/component/timer.go
package component

import "time"

// TimerMode — режим таймера.
type TimerMode int

const (
	TimerOnce      TimerMode = iota // После срабатывания остаётся завершённым до Reset
	TimerRepeating                  // После срабатывания начинает новый период
)

// Timer — обратный отсчёт, который продвигается прошедшим временем тика.
// Каждый таймер принадлежит ровно одной сущности или ресурсу.
type Timer struct {
	Duration time.Duration
	Elapsed  time.Duration
	Mode     TimerMode

	justFinished bool
}

// NewTimer создаёт таймер с нулевым прошедшим временем (не завершён).
func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{Duration: d, Mode: mode}
}

// NewFinishedTimer создаёт уже истёкший таймер.
func NewFinishedTimer(d time.Duration, mode TimerMode) Timer {
	t := NewTimer(d, mode)
	t.Elapsed = d
	return t
}

// Tick продвигает таймер на dt.
func (t *Timer) Tick(dt time.Duration) {
	t.justFinished = false
	if t.Duration <= 0 {
		t.justFinished = true
		return
	}
	if t.Mode == TimerOnce && t.Elapsed >= t.Duration {
		return
	}

	t.Elapsed += dt
	if t.Elapsed < t.Duration {
		return
	}
	t.justFinished = true
	if t.Mode == TimerRepeating {
		t.Elapsed %= t.Duration
	} else {
		t.Elapsed = t.Duration
	}
}

// Finished: для TimerOnce — истёк ли таймер; для TimerRepeating — завершился
// ли период на последнем Tick.
func (t *Timer) Finished() bool {
	if t.Mode == TimerRepeating {
		return t.justFinished
	}
	return t.Elapsed >= t.Duration
}

// Reset начинает отсчёт заново; таймер становится незавершённым.
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.justFinished = false
}

// Remaining возвращает оставшееся до срабатывания время.
func (t *Timer) Remaining() time.Duration {
	if t.Elapsed >= t.Duration {
		return 0
	}
	return t.Duration - t.Elapsed
}

// Cooldowns — все процессные таймеры симуляции в одном месте.
// Передаётся системам по указателю вместо скрытых глобальных переменных.
type Cooldowns struct {
	EnemySpawn    Timer // Период появления врагов (повторяющийся)
	PlayerFire    Timer // Перезарядка выстрела игрока
	Invincibility Timer // Окно неуязвимости после получения урона
}

// NewCooldowns создаёт таймеры в начальном состоянии новой игры:
// ни один из них ещё не истёк.
func NewCooldowns(spawn, fire, invincibility time.Duration) *Cooldowns {
	return &Cooldowns{
		EnemySpawn:    NewTimer(spawn, TimerRepeating),
		PlayerFire:    NewTimer(fire, TimerOnce),
		Invincibility: NewTimer(invincibility, TimerOnce),
	}
}
