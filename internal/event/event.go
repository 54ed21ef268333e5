// internal/event/event.go
package event

// EventType — тип игрового уведомления
type EventType string

// Event — уведомление. Data несёт одну из структур *Data из types.go
// (для ProjectileFired — EntityID снаряда).
type Event struct {
	Type EventType
	Data interface{}
}

// Listener — подписчик на уведомления
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher рассылает уведомления синхронно, в порядке подписки.
// Подписка и отписка во время рассылки действуют со следующего Dispatch.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на один тип
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll подписывает listener на несколько типов сразу.
func (d *Dispatcher) SubscribeAll(listener Listener, eventTypes ...EventType) {
	for _, t := range eventTypes {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe снимает первую подписку listener на тип. Список пересобирается
// в новый срез: рассылка, идущая по старому, его не видит.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l != listener {
			continue
		}
		if len(listeners) == 1 {
			delete(d.listeners, eventType)
			return
		}
		rest := make([]Listener, 0, len(listeners)-1)
		rest = append(rest, listeners[:i]...)
		d.listeners[eventType] = append(rest, listeners[i+1:]...)
		return
	}
}

// Dispatch отправляет уведомление всем подписчикам типа.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
