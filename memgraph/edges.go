// Package memgraph: edge insertion and side-wise edge enumeration.
//
// Edges are stored symmetrically: one HalfEdge on a side list of each
// endpoint, with same-side self-loops listed once. Insertion dedupes on the
// canonical edge key.
package memgraph

import (
	"fmt"

	"github.com/strandgraph/strandgraph/bidi"
)

// Connect inserts the edge traversed from handle a to handle b: it leaves
// the outward side of a and arrives on the inward side of b. The edge is
// reversing when the two handles are on opposite strands.
// Returns bidi.ErrUnknownNode if either endpoint is absent and
// bidi.ErrDuplicateEdge if the physical edge is already present.
// Complexity: O(1).
func (g *Graph) Connect(a, b bidi.Handle) error {
	na, exists := g.nodes[a.ID]
	if !exists {
		return fmt.Errorf("%w: %d", bidi.ErrUnknownNode, a.ID)
	}
	nb, exists := g.nodes[b.ID]
	if !exists {
		return fmt.Errorf("%w: %d", bidi.ErrUnknownNode, b.ID)
	}

	key := bidi.CanonicalEdge(a, b)
	if _, seen := g.edges[key]; seen {
		return fmt.Errorf("%w: %s -> %s", bidi.ErrDuplicateEdge, a, b)
	}
	g.edges[key] = struct{}{}

	reversing := a.Rev != b.Rev

	// The edge leaves a on the side the traversal exits.
	if a.Rev {
		na.left = append(na.left, bidi.HalfEdge{Peer: b.ID, Reversing: reversing})
	} else {
		na.right = append(na.right, bidi.HalfEdge{Peer: b.ID, Reversing: reversing})
	}

	// The symmetric record on b, unless this is a same-side self-loop,
	// which is listed once.
	if a.ID == b.ID && reversing {
		return nil
	}
	if b.Rev {
		nb.right = append(nb.right, bidi.HalfEdge{Peer: a.ID, Reversing: reversing})
	} else {
		nb.left = append(nb.left, bidi.HalfEdge{Peer: a.ID, Reversing: reversing})
	}

	return nil
}

// AddEdge inserts one edge in the sink encoding: fromStart means the edge
// leaves the "start" (left) side of from, toEnd means it arrives at the
// "end" (right) side of to. Errors as for Connect. Complexity: O(1).
func (g *Graph) AddEdge(from, to bidi.NodeID, fromStart, toEnd bool) error {
	// Leaving the start side is a reverse-strand departure; arriving at the
	// end side is a reverse-strand arrival.
	return g.Connect(bidi.Handle{ID: from, Rev: fromStart}, bidi.Handle{ID: to, Rev: toEnd})
}

// HasEdge reports whether the physical edge between the two handles exists.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b bidi.Handle) bool {
	_, seen := g.edges[bidi.CanonicalEdge(a, b)]

	return seen
}

// FollowEdges enumerates the neighboring handles on the indicated side of h:
// the handles following h when goLeft is false, the handles preceding h when
// goLeft is true. Enumeration stops early when visit returns false.
// Returns bidi.ErrUnknownNode if h references an absent node.
// Complexity: O(deg).
func (g *Graph) FollowEdges(h bidi.Handle, goLeft bool, visit func(next bidi.Handle) bool) error {
	n, exists := g.nodes[h.ID]
	if !exists {
		return fmt.Errorf("%w: %d", bidi.ErrUnknownNode, h.ID)
	}

	// The side to walk is the node's left list exactly when the traversal
	// direction and the handle strand disagree.
	list := n.right
	if h.Rev != goLeft {
		list = n.left
	}
	for _, e := range list {
		next := bidi.Handle{ID: e.Peer, Rev: h.Rev != e.Reversing}
		if !visit(next) {
			return nil
		}
	}

	return nil
}
