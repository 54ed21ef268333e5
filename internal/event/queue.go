package event

// Queue — очередь сообщений одного тика: производитель пушит, потребитель
// забирает всё разом через Drain.
type Queue[T any] struct {
	items []T
}

func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Drain возвращает накопленные сообщения и очищает очередь.
func (q *Queue[T]) Drain() []T {
	items := q.items
	q.items = nil
	return items
}

func (q *Queue[T]) Len() int {
	return len(q.items)
}

func (q *Queue[T]) Reset() {
	q.items = q.items[:0]
}
