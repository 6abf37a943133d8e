// Package pqueue_test contains unit tests for the filtered priority queue:
// min-ordering, first-pop-wins key suppression, and Clear semantics.
package pqueue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strandgraph/strandgraph/pqueue"
)

// trav is a minimal Dijkstra-style traversal item for the tests.
type trav struct {
	id   int64
	dist int64
}

func newQueue() *pqueue.Queue[trav, int64] {
	return pqueue.New(
		func(t trav) int64 { return t.id },
		func(a, b trav) bool { return a.dist < b.dist },
	)
}

func TestQueue_MinOrder(t *testing.T) {
	q := newQueue()
	q.Push(trav{id: 1, dist: 5})
	q.Push(trav{id: 2, dist: 1})
	q.Push(trav{id: 3, dist: 3})

	var got []int64
	for item, ok := q.Pop(); ok; item, ok = q.Pop() {
		got = append(got, item.id)
	}
	assert.Equal(t, []int64{2, 3, 1}, got, "pops ascend by distance")
}

func TestQueue_FirstPopPerKeyWins(t *testing.T) {
	q := newQueue()
	// Two entries for key 1; only the closer one may come out.
	q.Push(trav{id: 1, dist: 7})
	q.Push(trav{id: 1, dist: 2})

	item, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, int64(2), item.dist, "minimum entry wins the key")

	_, ok = q.Pop()
	assert.False(t, ok, "stale duplicate for an emitted key is skipped")
}

func TestQueue_PushAfterEmitIsDropped(t *testing.T) {
	q := newQueue()
	q.Push(trav{id: 1, dist: 4})

	item, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, int64(4), item.dist)

	// Re-inserting the emitted key must be a silent no-op.
	q.Push(trav{id: 1, dist: 1})
	assert.Equal(t, 0, q.Len(), "push for an emitted key is dropped on insert")
	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestQueue_DistinctKeysUnaffected(t *testing.T) {
	q := newQueue()
	q.Push(trav{id: 1, dist: 1})
	_, _ = q.Pop()

	q.Push(trav{id: 2, dist: 9})
	item, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, int64(2), item.id, "other keys still flow through")
}

func TestQueue_Clear(t *testing.T) {
	q := newQueue()
	q.Push(trav{id: 1, dist: 1})
	_, _ = q.Pop()
	q.Push(trav{id: 2, dist: 2})

	q.Clear()
	assert.Equal(t, 0, q.Len(), "pending entries discarded")

	// Both the pending entry and the emitted-key memory are gone.
	q.Push(trav{id: 1, dist: 6})
	item, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, int64(1), item.id, "emitted keys are forgotten after Clear")
}

func TestQueue_EmptyPop(t *testing.T) {
	q := newQueue()
	_, ok := q.Pop()
	assert.False(t, ok, "empty queue pops nothing")
}
