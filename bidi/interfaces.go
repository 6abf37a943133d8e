// Package bidi: the Graph and Sink capability interfaces.
//
// Graph is the read-only view the algorithm packages traverse; Sink is the
// write surface the extractor emits into. memgraph implements both.
package bidi

// Graph is a read-only view over a bidirected sequence graph.
//
// Implementations must be safe for repeated reads within a single
// goroutine; none of the methods may mutate the graph.
type Graph interface {
	// HasNode reports whether a node with the given id exists.
	HasNode(id NodeID) bool

	// NodeCount returns the number of nodes in the graph.
	NodeCount() int

	// Sequence returns the forward sequence of the node, regardless of
	// strand. The returned slice must not be modified by the caller.
	// Returns ErrUnknownNode if the id is absent.
	Sequence(id NodeID) ([]byte, error)

	// FollowEdges enumerates the neighboring handles reachable from h on
	// the indicated side: the handles following h when goLeft is false, the
	// handles preceding h when goLeft is true. Enumeration stops early when
	// visit returns false. Returns ErrUnknownNode if h references an absent
	// node.
	FollowEdges(h Handle, goLeft bool, visit func(next Handle) bool) error

	// ForEachHandle enumerates the locally-forward handle of every node in
	// the graph's node order. Enumeration stops early when visit returns
	// false.
	ForEachHandle(visit func(h Handle) bool)
}

// Sink accepts the nodes and edges of an emitted subgraph.
//
// Edges arrive in the (from, to, fromStart, toEnd) encoding: fromStart
// indicates the edge leaves the "start" (left) side of from, and toEnd
// indicates it arrives at the "end" (right) side of to.
type Sink interface {
	// AddNode stores a node and its forward sequence.
	// Returns ErrDuplicateNode if the id was already added.
	AddNode(id NodeID, seq []byte) error

	// AddEdge stores one edge in the (from, to, fromStart, toEnd) encoding.
	// Returns ErrUnknownNode if either endpoint is absent and
	// ErrDuplicateEdge if the same physical edge was already added.
	AddEdge(from, to NodeID, fromStart, toEnd bool) error

	// Empty reports whether the sink holds no nodes and no edges.
	Empty() bool
}
