package container

// Queue is a first-in-first-out container
type Queue[T any] struct {
	items []T
}

// NewQueue returns a new, empty Queue
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push adds an item to the back of the queue
func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Pop removes and returns the item at the front of the queue, that is
// the least recently pushed item. If the queue is empty, the zero
// value and false are returned.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}

	item := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]

	return item, true
}

// Len returns the number of items in the queue
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// IsEmpty returns whether the queue holds no items
func (q *Queue[T]) IsEmpty() bool {
	return len(q.items) == 0
}
