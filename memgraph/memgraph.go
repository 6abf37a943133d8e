// Package memgraph: graph storage, node management, and the read-only view.
//
// This file declares the Graph type, its constructor, and the node-level
// operations shared by the bidi.Graph and bidi.Sink surfaces.
package memgraph

import (
	"errors"
	"fmt"

	"github.com/strandgraph/strandgraph/bidi"
)

// ErrBadNodeID indicates a node id that is zero or negative.
var ErrBadNodeID = errors.New("memgraph: node id must be positive")

// node is the storage record for one graph node: the forward sequence and
// the two side lists.
type node struct {
	seq   []byte
	left  []bidi.HalfEdge
	right []bidi.HalfEdge
}

// Graph is an editable in-memory bidirected sequence graph.
//
// The zero value is not usable; construct with New.
type Graph struct {
	// nodes maps node id → storage record.
	nodes map[bidi.NodeID]*node

	// order is the node iteration order: insertion order until Reorder.
	order []bidi.NodeID

	// edges holds the canonical key of every inserted edge for dedup.
	edges map[bidi.EdgeKey]struct{}
}

// New creates an empty Graph. Complexity: O(1).
func New() *Graph {
	return &Graph{
		nodes: make(map[bidi.NodeID]*node),
		edges: make(map[bidi.EdgeKey]struct{}),
	}
}

// AddNode inserts a node with the given forward sequence. The sequence is
// copied, so the caller keeps ownership of seq.
// Returns ErrBadNodeID for non-positive ids and bidi.ErrDuplicateNode if the
// id is already present. Complexity: O(len(seq)).
func (g *Graph) AddNode(id bidi.NodeID, seq []byte) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrBadNodeID, id)
	}
	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %d", bidi.ErrDuplicateNode, id)
	}
	owned := make([]byte, len(seq))
	copy(owned, seq)
	g.nodes[id] = &node{seq: owned}
	g.order = append(g.order, id)

	return nil
}

// HasNode reports whether a node with the given id exists. Complexity: O(1).
func (g *Graph) HasNode(id bidi.NodeID) bool {
	_, exists := g.nodes[id]

	return exists
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of distinct physical edges. Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Empty reports whether the graph holds no nodes (and hence no edges).
func (g *Graph) Empty() bool { return len(g.nodes) == 0 }

// Sequence returns the forward sequence of the node. The returned slice is
// the graph's internal storage and must not be modified by the caller.
// Returns bidi.ErrUnknownNode if the id is absent. Complexity: O(1).
func (g *Graph) Sequence(id bidi.NodeID) ([]byte, error) {
	n, exists := g.nodes[id]
	if !exists {
		return nil, fmt.Errorf("%w: %d", bidi.ErrUnknownNode, id)
	}

	return n.seq, nil
}

// NodeIDs returns the node ids in the graph's current node order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []bidi.NodeID {
	ids := make([]bidi.NodeID, len(g.order))
	copy(ids, g.order)

	return ids
}

// ForEachHandle enumerates the locally-forward handle of every node in the
// graph's node order, stopping early when visit returns false.
// Complexity: O(V).
func (g *Graph) ForEachHandle(visit func(h bidi.Handle) bool) {
	for _, id := range g.order {
		if !visit(bidi.Handle{ID: id}) {
			return
		}
	}
}

// Degree returns the number of edges on the left and right sides of a node.
// Returns bidi.ErrUnknownNode if the id is absent. Complexity: O(1).
func (g *Graph) Degree(id bidi.NodeID) (left, right int, err error) {
	n, exists := g.nodes[id]
	if !exists {
		return 0, 0, fmt.Errorf("%w: %d", bidi.ErrUnknownNode, id)
	}

	return len(n.left), len(n.right), nil
}
