// Package container implements the frontier containers used by the
// graph search algorithms: a LIFO Stack, a FIFO Queue and a min
// PriorityQueue which supports decreasing the priority of a queued
// item.
package container

// Stack is a last-in-first-out container
type Stack[T any] struct {
	items []T
}

// NewStack returns a new, empty Stack
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places an item on the top of the stack
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the most recently pushed item. If the stack
// is empty, the zero value and false are returned.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}

	last := len(s.items) - 1
	item := s.items[last]
	s.items[last] = zero
	s.items = s.items[:last]

	return item, true
}

// Len returns the number of items on the stack
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// IsEmpty returns whether the stack holds no items
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}
