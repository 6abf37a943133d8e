// Package extract_test provides runnable examples for the extractor.
// Each example is runnable via “go test -run Example”, showing both code
// and expected output.
package extract_test

import (
	"fmt"

	"github.com/strandgraph/strandgraph/bidi"
	"github.com/strandgraph/strandgraph/extract"
	"github.com/strandgraph/strandgraph/memgraph"
)

// ExampleExtractConnecting demonstrates carving the connecting subgraph out
// of a three-node chain: the endpoint nodes are trimmed past the positions
// and become tips.
func ExampleExtractConnecting() {
	// 1) Build the source graph: ACG → TT → GGA, all forward.
	src := memgraph.New()
	_ = src.AddNode(1, []byte("ACG"))
	_ = src.AddNode(2, []byte("TT"))
	_ = src.AddNode(3, []byte("GGA"))
	_ = src.Connect(bidi.Handle{ID: 1}, bidi.Handle{ID: 2})
	_ = src.Connect(bidi.Handle{ID: 2}, bidi.Handle{ID: 3})

	// 2) Extract between the first base of node 1 and the last base of
	//    node 3, with a generous length bound.
	sink := memgraph.New()
	trans, err := extract.ExtractConnecting(src, sink, 10,
		bidi.Position{ID: 1, Offset: 0},
		bidi.Position{ID: 3, Offset: 2},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	// 3) The endpoints lost the bases at and behind the positions.
	for _, id := range sink.NodeIDs() {
		seq, _ := sink.Sequence(id)
		fmt.Printf("%d %s\n", id, seq)
	}
	fmt.Println("translations:", len(trans))

	// Output:
	// 1 CG
	// 2 TT
	// 3 GG
	// translations: 3
}

// ExampleExtractConnecting_pruned demonstrates tip pruning: a side branch
// that never reaches the second position is peeled away.
func ExampleExtractConnecting_pruned() {
	src := memgraph.New()
	_ = src.AddNode(1, []byte("AA"))
	_ = src.AddNode(2, []byte("CC"))
	_ = src.AddNode(3, []byte("GGGG"))
	_ = src.AddNode(4, []byte("TT"))
	_ = src.Connect(bidi.Handle{ID: 1}, bidi.Handle{ID: 2})
	_ = src.Connect(bidi.Handle{ID: 2}, bidi.Handle{ID: 4})
	_ = src.Connect(bidi.Handle{ID: 2}, bidi.Handle{ID: 3}) // dead end

	sink := memgraph.New()
	_, err := extract.ExtractConnecting(src, sink, 20,
		bidi.Position{ID: 1, Offset: 0},
		bidi.Position{ID: 4, Offset: 1},
		extract.WithNoAdditionalTips(),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("nodes:", sink.NodeCount(), "edges:", sink.EdgeCount())

	// Output:
	// nodes: 3 edges: 2
}
