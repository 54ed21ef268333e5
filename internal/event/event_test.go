package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatcher(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(EnemyKilled, a)
	d.Subscribe(EnemyKilled, b)
	d.Subscribe(LevelUp, a)

	d.Dispatch(Event{Type: EnemyKilled, Data: EnemyKilledData{ID: 3, ExpReward: 15}})
	d.Dispatch(Event{Type: LevelUp, Data: LevelUpData{Level: 2}})
	d.Dispatch(Event{Type: GameOver})

	assert.Len(t, a.got, 2)
	assert.Len(t, b.got, 1)
	assert.Equal(t, EnemyKilledData{ID: 3, ExpReward: 15}, b.got[0].Data)

	d.Unsubscribe(EnemyKilled, a)
	d.Dispatch(Event{Type: EnemyKilled})
	assert.Len(t, a.got, 2)
	assert.Len(t, b.got, 2)
}

// selfRemover отписывается прямо из обработчика.
type selfRemover struct {
	d   *Dispatcher
	got int
}

func (r *selfRemover) OnEvent(e Event) {
	r.got++
	r.d.Unsubscribe(e.Type, r)
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	first := &selfRemover{d: d}
	second, third := &recorder{}, &recorder{}
	d.Subscribe(LevelUp, first)
	d.Subscribe(LevelUp, second)
	d.Subscribe(LevelUp, third)

	d.Dispatch(Event{Type: LevelUp})
	assert.Equal(t, 1, first.got)
	assert.Len(t, second.got, 1, "соседи получают текущее уведомление")
	assert.Len(t, third.got, 1)

	d.Dispatch(Event{Type: LevelUp})
	assert.Equal(t, 1, first.got)
	assert.Len(t, second.got, 2)
	assert.Len(t, third.got, 2)
}

func TestSubscribeAllAndLastUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, EnemySpawned, GameOver)

	d.Dispatch(Event{Type: EnemySpawned})
	d.Dispatch(Event{Type: GameOver})
	assert.Len(t, r.got, 2)

	d.Unsubscribe(GameOver, r)
	d.Unsubscribe(GameOver, r)
	d.Dispatch(Event{Type: GameOver})
	assert.Len(t, r.got, 2)
	assert.NotContains(t, d.listeners, GameOver)
}

func TestQueue(t *testing.T) {
	var q Queue[ExpGain]
	assert.Zero(t, q.Len())
	assert.Empty(t, q.Drain())

	q.Push(ExpGain{Amount: 15})
	q.Push(ExpGain{Amount: 30})
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, []ExpGain{{15}, {30}}, q.Drain())
	assert.Zero(t, q.Len())

	q.Push(ExpGain{Amount: 1})
	q.Reset()
	assert.Zero(t, q.Len())
}
