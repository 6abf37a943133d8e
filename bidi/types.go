// Package bidi: core value types for bidirected sequence graphs.
//
// This file declares NodeID, Handle, Position, HalfEdge and EdgeKey, plus
// the canonicalization rule that gives every physical edge a single identity.
package bidi

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by Graph and Sink implementations.
var (
	// ErrUnknownNode indicates an operation referenced a node id that is not
	// present in the graph.
	ErrUnknownNode = errors.New("bidi: unknown node id")

	// ErrDuplicateNode indicates a Sink received a node id it already holds.
	ErrDuplicateNode = errors.New("bidi: duplicate node id")

	// ErrDuplicateEdge indicates a Sink received the same physical edge twice.
	ErrDuplicateEdge = errors.New("bidi: duplicate edge")
)

// NodeID is the opaque, totally ordered identity of a node.
// Valid ids are strictly positive; zero is reserved as a "no node" marker.
type NodeID int64

// Handle is an oriented reference to a node: the node id plus the strand the
// traversal is on. Rev == false is the forward strand.
type Handle struct {
	// ID is the node this handle refers to.
	ID NodeID

	// Rev is true when the handle is on the reverse strand.
	Rev bool
}

// Flip returns the handle for the same node on the opposite strand.
func (h Handle) Flip() Handle { return Handle{ID: h.ID, Rev: !h.Rev} }

// Forward returns the locally-forward handle for the same node.
func (h Handle) Forward() Handle { return Handle{ID: h.ID} }

// String renders the handle as "id+" or "id-".
func (h Handle) String() string {
	if h.Rev {
		return fmt.Sprintf("%d-", h.ID)
	}

	return fmt.Sprintf("%d+", h.ID)
}

// less orders handles by (ID, Rev) with forward before reverse.
func (h Handle) less(other Handle) bool {
	if h.ID != other.ID {
		return h.ID < other.ID
	}

	return !h.Rev && other.Rev
}

// Position is an oriented base position: a handle plus a 0-based offset into
// the node's forward sequence. The offset always indexes the forward
// sequence, regardless of the strand the position is on.
type Position struct {
	// ID is the node the position lies on.
	ID NodeID

	// Rev is true when the position is on the reverse strand.
	Rev bool

	// Offset is the 0-based index into the node's forward sequence.
	Offset int64
}

// Handle returns the oriented handle at the position.
func (p Position) Handle() Handle { return Handle{ID: p.ID, Rev: p.Rev} }

// String renders the position as "id±:offset".
func (p Position) String() string {
	return fmt.Sprintf("%s:%d", p.Handle(), p.Offset)
}

// HalfEdge is one node's record of an incident edge: the peer node id and
// whether traversing the edge flips strand. A bidirected edge appears as one
// HalfEdge in a side list on each of its two endpoints — except that a
// self-loop joining the same side of a node is listed once on that side.
type HalfEdge struct {
	// Peer is the node on the other end of the edge.
	Peer NodeID

	// Reversing is true when traversing the edge flips strand.
	Reversing bool
}

// EdgeKey is the strand-normalized identity of a bidirected edge, suitable
// for use as a set or map key. Construct it with CanonicalEdge.
type EdgeKey struct {
	// A is the canonical first handle of the edge.
	A Handle

	// B is the canonical second handle of the edge.
	B Handle
}

// CanonicalEdge returns the canonical EdgeKey for the edge traversed from a
// to b. The edge (a → b) and its mirror (flip(b) → flip(a)) describe the
// same physical link; the lexicographically smaller of the two orientations
// by (ID, Rev) composite order is chosen, so equivalent edges always map to
// equal keys. Complexity: O(1).
func CanonicalEdge(a, b Handle) EdgeKey {
	// The mirrored orientation of the same physical edge.
	ma, mb := b.Flip(), a.Flip()
	// Pick the smaller orientation; tie-break on the second handle.
	if ma.less(a) || (ma == a && mb.less(b)) {
		return EdgeKey{A: ma, B: mb}
	}

	return EdgeKey{A: a, B: b}
}
