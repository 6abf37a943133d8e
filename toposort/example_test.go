// Package toposort_test provides runnable examples for the bidirected
// topological sort and its in-place helpers.
package toposort_test

import (
	"fmt"

	"github.com/strandgraph/strandgraph/bidi"
	"github.com/strandgraph/strandgraph/memgraph"
	"github.com/strandgraph/strandgraph/toposort"
)

// ExampleTopologicalSort demonstrates sorting a small DAG: node 2 waits for
// node 3, which waits for node 1.
func ExampleTopologicalSort() {
	g := memgraph.New()
	_ = g.AddNode(1, []byte("A"))
	_ = g.AddNode(2, []byte("C"))
	_ = g.AddNode(3, []byte("G"))
	_ = g.Connect(bidi.Handle{ID: 1}, bidi.Handle{ID: 2})
	_ = g.Connect(bidi.Handle{ID: 1}, bidi.Handle{ID: 3})
	_ = g.Connect(bidi.Handle{ID: 3}, bidi.Handle{ID: 2})

	order, err := toposort.TopologicalSort(g)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, h := range order {
		fmt.Println(h)
	}

	// Output:
	// 1+
	// 3+
	// 2+
}

// ExampleOrientNodesForward demonstrates flipping a node reached on its
// reverse strand so the whole graph reads forward.
func ExampleOrientNodesForward() {
	g := memgraph.New()
	_ = g.AddNode(1, []byte("AC"))
	_ = g.AddNode(2, []byte("GGT"))
	_ = g.AddNode(3, []byte("T"))
	_ = g.Connect(bidi.Handle{ID: 1}, bidi.Handle{ID: 2, Rev: true})
	_ = g.Connect(bidi.Handle{ID: 2, Rev: true}, bidi.Handle{ID: 3})

	flipped, err := toposort.OrientNodesForward(g)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	_, wasFlipped := flipped[2]
	seq, _ := g.Sequence(2)
	fmt.Println("flipped node 2:", wasFlipped)
	fmt.Println("node 2 now reads:", string(seq))

	// Output:
	// flipped node 2: true
	// node 2 now reads: ACC
}
