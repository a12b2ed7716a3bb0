// Package pqueue provides a generic min-priority queue with decrease-key and
// stable (FIFO) tie-breaking, used by the dijkstra package.
//
// Complexity:
//
//   - Enqueue (insert or priority update): O(log n)
//   - Dequeue: O(log n)
//   - Peek, Len, IsEmpty, Contains, Priority: O(1)
//   - Space: O(n), one entry per distinct value
//
// Ordering:
//
//	Entries are ordered by ascending priority. Equal priorities are ordered by
//	insertion sequence; a priority update takes a fresh sequence number, so an
//	updated value behaves exactly like a value enqueued at that moment.
//
// A Queue is not safe for concurrent use.
package pqueue

import "container/heap"

// entry is one value stored in the heap.
type entry[T comparable] struct {
	value    T
	priority float64
	seq      uint64 // insertion order, breaks priority ties
	index    int    // position in the heap slice, maintained by Swap
}

// entryHeap implements heap.Interface over *entry.
type entryHeap[T comparable] []*entry[T]

// Len returns the number of items in the heap.
func (h entryHeap[T]) Len() int { return len(h) }

// Less orders by priority, then by insertion sequence.
func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

// Swap swaps two elements and keeps their index fields current.
func (h entryHeap[T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// Push adds x (an *entry) at the end; called by heap.Push.
func (h *entryHeap[T]) Push(x interface{}) {
	e := x.(*entry[T])
	e.index = len(*h)
	*h = append(*h, e)
}

// Pop removes the last element; called by heap.Pop.
func (h *entryHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]

	return e
}

// Queue is a min-priority queue keyed by value.
// Each distinct value is present at most once.
type Queue[T comparable] struct {
	items entryHeap[T]
	pos   map[T]*entry[T]
	seq   uint64
}

// New returns an empty Queue.
func New[T comparable]() *Queue[T] {
	return &Queue[T]{pos: make(map[T]*entry[T])}
}

// Enqueue inserts v with priority p. If v is already queued its priority is
// replaced (decrease-key or increase-key) and it is re-sequenced as if newly
// enqueued.
func (q *Queue[T]) Enqueue(v T, p float64) {
	q.seq++
	if e, ok := q.pos[v]; ok {
		e.priority = p
		e.seq = q.seq
		heap.Fix(&q.items, e.index)
		return
	}
	e := &entry[T]{value: v, priority: p, seq: q.seq}
	q.pos[v] = e
	heap.Push(&q.items, e)
}

// Dequeue removes and returns the value with the smallest priority.
// ok is false when the queue is empty.
func (q *Queue[T]) Dequeue() (v T, p float64, ok bool) {
	if len(q.items) == 0 {
		return v, 0, false
	}
	e := heap.Pop(&q.items).(*entry[T])
	delete(q.pos, e.value)

	return e.value, e.priority, true
}

// Peek returns the minimum entry without removing it.
func (q *Queue[T]) Peek() (v T, p float64, ok bool) {
	if len(q.items) == 0 {
		return v, 0, false
	}
	e := q.items[0]

	return e.value, e.priority, true
}

// Len returns the number of queued values.
func (q *Queue[T]) Len() int { return len(q.items) }

// IsEmpty reports whether the queue holds no values.
func (q *Queue[T]) IsEmpty() bool { return len(q.items) == 0 }

// Contains reports whether v is queued.
func (q *Queue[T]) Contains(v T) bool {
	_, ok := q.pos[v]
	return ok
}

// Priority returns the current priority of v.
func (q *Queue[T]) Priority(v T) (float64, bool) {
	e, ok := q.pos[v]
	if !ok {
		return 0, false
	}
	return e.priority, true
}
