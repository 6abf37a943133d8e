// Package toposort: in-place helpers over a mutable graph.
package toposort

import (
	"github.com/strandgraph/strandgraph/bidi"
	"github.com/strandgraph/strandgraph/memgraph"
)

// Sort reorders the graph's node sequence so the i-th node is the i-th
// sorted handle's node. Identity and orientation are untouched; only the
// iteration order changes. Graphs with fewer than two nodes have a single
// order and are returned as-is. Complexity: O((V + E) log V).
func Sort(g *memgraph.Graph) error {
	if g.NodeCount() <= 1 {
		return nil
	}

	sorted, err := TopologicalSort(g)
	if err != nil {
		return err
	}

	ids := make([]bidi.NodeID, len(sorted))
	for i, h := range sorted {
		ids[i] = h.ID
	}

	return g.Reorder(ids)
}

// OrientNodesForward flips in place every node whose chosen handle in the
// sorted order is reverse, and returns the set of flipped node ids. After
// the call, traversing the sorted order is locally forward everywhere.
// Complexity: O((V + E) log V) plus the flips.
func OrientNodesForward(g *memgraph.Graph) (map[bidi.NodeID]struct{}, error) {
	sorted, err := TopologicalSort(g)
	if err != nil {
		return nil, err
	}

	flipped := make(map[bidi.NodeID]struct{})
	for _, h := range sorted {
		if h.Rev {
			flipped[h.ID] = struct{}{}
			if err := g.FlipNode(h.ID); err != nil {
				return nil, err
			}
		}
	}

	return flipped, nil
}
