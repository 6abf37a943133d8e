package pqueue_test

import (
	"testing"

	"github.com/strandgraph/strandgraph/pqueue"
)

// BenchmarkQueue_PushPop measures the mixed push/pop workload typical of a
// Dijkstra expansion with heavy key duplication.
func BenchmarkQueue_PushPop(b *testing.B) {
	for i := 0; i < b.N; i++ {
		q := pqueue.New(
			func(t trav) int64 { return t.id },
			func(x, y trav) bool { return x.dist < y.dist },
		)
		for j := int64(0); j < 512; j++ {
			q.Push(trav{id: j % 128, dist: 512 - j})
		}
		for {
			if _, ok := q.Pop(); !ok {
				break
			}
		}
	}
}
