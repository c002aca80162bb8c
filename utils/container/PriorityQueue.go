package container

import "container/heap"

// entry is a single item stored in a PriorityQueue. The count field
// records insertion order so that items of equal priority are popped
// first-in-first-out.
type entry[T comparable] struct {
	value    T
	priority float64
	count    int
	index    int
}

// entries implements heap.Interface
type entries[T comparable] []*entry[T]

func (e entries[T]) Len() int { return len(e) }

func (e entries[T]) Less(i, j int) bool {
	if e[i].priority == e[j].priority {
		return e[i].count < e[j].count
	}
	return e[i].priority < e[j].priority
}

func (e entries[T]) Swap(i, j int) {
	e[i], e[j] = e[j], e[i]
	e[i].index = i
	e[j].index = j
}

func (e *entries[T]) Push(x interface{}) {
	item := x.(*entry[T])
	item.index = len(*e)
	*e = append(*e, item)
}

func (e *entries[T]) Pop() interface{} {
	old := *e
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*e = old[:n-1]
	return item
}

// PriorityQueue is a min-priority queue. Each distinct value is held
// in the queue at most once, so that the priority of a queued value
// can be lowered with Update.
type PriorityQueue[T comparable] struct {
	heap  entries[T]
	items map[T]*entry[T]
	count int
}

// NewPriorityQueue returns a new, empty PriorityQueue
func NewPriorityQueue[T comparable]() *PriorityQueue[T] {
	return &PriorityQueue[T]{
		items: make(map[T]*entry[T]),
	}
}

// Push adds value to the queue with the given priority. If value is
// already queued, its priority is replaced, whether higher or lower.
func (p *PriorityQueue[T]) Push(value T, priority float64) {
	if item, ok := p.items[value]; ok {
		p.rekey(item, priority)
		return
	}

	item := &entry[T]{value: value, priority: priority, count: p.count}
	p.count++
	p.items[value] = item
	heap.Push(&p.heap, item)
}

// Update lowers the priority of value if it is queued with a higher
// priority, or pushes value if it is not queued. If value is already
// queued with an equal or lower priority, Update does nothing.
func (p *PriorityQueue[T]) Update(value T, priority float64) {
	item, ok := p.items[value]
	if !ok {
		p.Push(value, priority)
		return
	}

	if item.priority <= priority {
		return
	}
	p.rekey(item, priority)
}

// rekey sets the priority of a queued item. The item is treated as
// newly inserted with respect to ties.
func (p *PriorityQueue[T]) rekey(item *entry[T], priority float64) {
	item.priority = priority
	item.count = p.count
	p.count++
	heap.Fix(&p.heap, item.index)
}

// Pop removes and returns the value with the lowest priority along
// with that priority. If the queue is empty, the zero value and false
// are returned.
func (p *PriorityQueue[T]) Pop() (T, float64, bool) {
	if len(p.heap) == 0 {
		var zero T
		return zero, 0, false
	}

	item := heap.Pop(&p.heap).(*entry[T])
	delete(p.items, item.value)

	return item.value, item.priority, true
}

// Contains returns whether value is currently queued
func (p *PriorityQueue[T]) Contains(value T) bool {
	_, ok := p.items[value]
	return ok
}

// Len returns the number of values in the queue
func (p *PriorityQueue[T]) Len() int {
	return len(p.heap)
}

// IsEmpty returns whether the queue holds no values
func (p *PriorityQueue[T]) IsEmpty() bool {
	return len(p.heap) == 0
}
