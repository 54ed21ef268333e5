// internal/system/queues.go
package system

import "go-survivor/internal/event"

// Queues — сообщения одного тика между системами.
// PlayerDamage и ExpGain очищаются в конце тика, подсказки урона живут
// до тех пор, пока их не заберёт UI.
type Queues struct {
	PlayerDamage event.Queue[event.PlayerDamage]
	ExpGain      event.Queue[event.ExpGain]
	Hints        event.Queue[event.DamageHint]
}

// EndTick очищает очереди, которые не должны переживать тик.
func (q *Queues) EndTick() {
	q.PlayerDamage.Reset()
	q.ExpGain.Reset()
}
