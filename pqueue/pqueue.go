package pqueue

import "container/heap"

// item is one heap slot. seq orders equal priorities by insertion.
type item[T any] struct {
	value    T
	priority float64
	seq      uint64
}

// itemHeap implements heap.Interface over item, smallest priority first.
type itemHeap[T any] []item[T]

func (h itemHeap[T]) Len() int { return len(h) }

func (h itemHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h itemHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap[T]) Push(x any) { *h = append(*h, x.(item[T])) }

func (h *itemHeap[T]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	var zero item[T]
	old[n-1] = zero // drop the reference so paths can be collected
	*h = old[:n-1]

	return it
}

// Queue is a min-priority queue of T. The zero value is ready to use.
type Queue[T any] struct {
	h   itemHeap[T]
	seq uint64
}

// New returns an empty Queue with room for capacity entries.
func New[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[T]{h: make(itemHeap[T], 0, capacity)}
}

// Enqueue inserts v with the given priority.
func (q *Queue[T]) Enqueue(v T, priority float64) {
	heap.Push(&q.h, item[T]{value: v, priority: priority, seq: q.seq})
	q.seq++
}

// Dequeue removes and returns the value with the smallest priority.
// ok is false when the queue is empty.
func (q *Queue[T]) Dequeue() (v T, ok bool) {
	v, _, ok = q.DequeueWithPriority()

	return v, ok
}

// DequeueWithPriority is Dequeue that also returns the entry's priority.
func (q *Queue[T]) DequeueWithPriority() (v T, priority float64, ok bool) {
	if len(q.h) == 0 {
		return v, 0, false
	}
	it := heap.Pop(&q.h).(item[T])

	return it.value, it.priority, true
}

// Peek returns the minimum entry without removing it.
func (q *Queue[T]) Peek() (v T, priority float64, ok bool) {
	if len(q.h) == 0 {
		return v, 0, false
	}

	return q.h[0].value, q.h[0].priority, true
}

// IsEmpty reports whether no entries remain.
func (q *Queue[T]) IsEmpty() bool { return len(q.h) == 0 }

// Len returns the number of entries.
func (q *Queue[T]) Len() int { return len(q.h) }
