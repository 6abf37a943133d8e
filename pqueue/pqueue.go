// Package pqueue: the filtered min-priority queue implementation.
//
// A container/heap min-heap ordered by a caller-supplied less function,
// paired with the set of already-emitted keys. The first extraction per key
// wins; everything else with that key is dropped on push or skipped on pop.
package pqueue

import "container/heap"

// Queue is a filtered min-priority queue over items of type T with derived
// keys of type K. Construct with New; the zero value is not usable.
type Queue[T any, K comparable] struct {
	h       *itemHeap[T]
	key     func(T) K
	emitted map[K]struct{}
}

// New creates an empty filtered queue. key derives the deduplication key of
// an item; less defines the min-ordering (the item for which less holds
// against all others is popped first). Complexity: O(1).
func New[T any, K comparable](key func(T) K, less func(a, b T) bool) *Queue[T, K] {
	return &Queue[T, K]{
		h:       &itemHeap[T]{less: less},
		key:     key,
		emitted: make(map[K]struct{}),
	}
}

// Push inserts an item unless its key has already been popped, in which case
// the item is silently dropped. Complexity: O(log n).
func (q *Queue[T, K]) Push(item T) {
	if _, done := q.emitted[q.key(item)]; done {
		return
	}
	heap.Push(q.h, item)
}

// Pop removes and returns the minimum item whose key has not been returned
// before, marking its key as emitted. ok is false when no such item remains.
// Complexity: amortized O(log n).
func (q *Queue[T, K]) Pop() (item T, ok bool) {
	for q.h.Len() > 0 {
		item = heap.Pop(q.h).(T)
		k := q.key(item)
		if _, done := q.emitted[k]; done {
			// Stale entry: this key was already emitted with a smaller
			// priority.
			continue
		}
		q.emitted[k] = struct{}{}

		return item, true
	}

	var zero T

	return zero, false
}

// Len returns the number of pending heap entries. Stale duplicates are
// counted until they are skipped by Pop, so Len is an upper bound on the
// number of items Pop will still return. Complexity: O(1).
func (q *Queue[T, K]) Len() int { return q.h.Len() }

// Clear discards all pending entries and forgets the emitted-key set, making
// the queue ready for a fresh search. Complexity: O(1) amortized.
func (q *Queue[T, K]) Clear() {
	q.h.items = q.h.items[:0]
	q.emitted = make(map[K]struct{})
}

// itemHeap adapts a slice of items to container/heap with an external less.
type itemHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

// Len returns the number of items in the heap.
func (h *itemHeap[T]) Len() int { return len(h.items) }

// Less defers to the external min-ordering.
func (h *itemHeap[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }

// Swap swaps two elements in the heap.
func (h *itemHeap[T]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push appends a new element; called by heap.Push.
func (h *itemHeap[T]) Push(x interface{}) { h.items = append(h.items, x.(T)) }

// Pop removes and returns the last element; called by heap.Pop.
func (h *itemHeap[T]) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]

	return item
}
