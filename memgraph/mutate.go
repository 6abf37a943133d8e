// Package memgraph: in-place mutations — node flipping and node reordering.
package memgraph

import (
	"fmt"

	"github.com/strandgraph/strandgraph/bidi"
)

// FlipNode reverses the orientation of a node in place: the forward sequence
// becomes its reverse complement, the two side lists swap, and every
// incident edge record (here and on the peers) is rewritten so that the
// graph describes the same physical edges around the flipped node.
// Self-loops keep their reversing bit; all other incident edges toggle it.
// Returns bidi.ErrUnknownNode if the id is absent.
// Complexity: O(len(seq) + deg · max peer degree + E) — the edge-key set is
// rebuilt after the flip.
func (g *Graph) FlipNode(id bidi.NodeID) error {
	n, exists := g.nodes[id]
	if !exists {
		return fmt.Errorf("%w: %d", bidi.ErrUnknownNode, id)
	}

	// Rewrite the peers' symmetric records first, while our own lists still
	// carry the old reversing bits needed to locate them.
	for i := range n.left {
		if err := g.togglePeerRecord(id, n.left[i], true); err != nil {
			return err
		}
	}
	for i := range n.right {
		if err := g.togglePeerRecord(id, n.right[i], false); err != nil {
			return err
		}
	}

	// Now rewrite our own records: non-self edges toggle the reversing bit,
	// self-loops keep it (a same-side loop stays same-side after the swap).
	for i := range n.left {
		if n.left[i].Peer != id {
			n.left[i].Reversing = !n.left[i].Reversing
		}
	}
	for i := range n.right {
		if n.right[i].Peer != id {
			n.right[i].Reversing = !n.right[i].Reversing
		}
	}
	n.left, n.right = n.right, n.left
	n.seq = reverseComplement(n.seq)

	// Re-key the edge dedup set: the canonical keys of incident edges
	// change with the node's orientation.
	g.rekeyEdges()

	return nil
}

// togglePeerRecord flips the reversing bit of the peer-side record matching
// the edge (id, e) seen from our left (onLeft) or right side. Self-loops
// have no separate peer record and are skipped.
func (g *Graph) togglePeerRecord(id bidi.NodeID, e bidi.HalfEdge, onLeft bool) error {
	if e.Peer == id {
		return nil
	}
	peer, exists := g.nodes[e.Peer]
	if !exists {
		return fmt.Errorf("%w: %d", bidi.ErrUnknownNode, e.Peer)
	}

	// A reversing edge joins same-named sides, so the peer record lives on
	// the peer's same side as ours; a non-reversing edge on the opposite.
	list := peer.right
	if onLeft == e.Reversing {
		list = peer.left
	}
	for i := range list {
		if list[i].Peer == id && list[i].Reversing == e.Reversing {
			list[i].Reversing = !list[i].Reversing

			return nil
		}
	}

	return fmt.Errorf("%w: missing symmetric record for edge to %d", bidi.ErrUnknownNode, e.Peer)
}

// rekeyEdges rebuilds the canonical-key set after a node's orientation
// changed; the keys of its incident edges change with it.
func (g *Graph) rekeyEdges() {
	g.edges = make(map[bidi.EdgeKey]struct{}, len(g.edges))
	for nid, n := range g.nodes {
		for _, e := range n.left {
			a := bidi.Handle{ID: nid, Rev: true}
			b := bidi.Handle{ID: e.Peer, Rev: !e.Reversing}
			g.edges[bidi.CanonicalEdge(a, b)] = struct{}{}
		}
		for _, e := range n.right {
			a := bidi.Handle{ID: nid}
			b := bidi.Handle{ID: e.Peer, Rev: e.Reversing}
			g.edges[bidi.CanonicalEdge(a, b)] = struct{}{}
		}
	}
}

// Reorder replaces the node iteration order with the given permutation of
// the current node ids. Returns bidi.ErrUnknownNode if ids is not a
// permutation of the node set. Complexity: O(V).
func (g *Graph) Reorder(ids []bidi.NodeID) error {
	if len(ids) != len(g.nodes) {
		return fmt.Errorf("%w: order has %d ids, graph has %d nodes",
			bidi.ErrUnknownNode, len(ids), len(g.nodes))
	}
	seen := make(map[bidi.NodeID]struct{}, len(ids))
	for _, id := range ids {
		if _, exists := g.nodes[id]; !exists {
			return fmt.Errorf("%w: %d", bidi.ErrUnknownNode, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: id %d repeated in order", bidi.ErrUnknownNode, id)
		}
		seen[id] = struct{}{}
	}
	g.order = append(g.order[:0], ids...)

	return nil
}

// complementTable maps each nucleotide byte to its complement; unknown
// bases map to 'N' (or 'n' for lowercase input).
var complementTable = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = 'N'
	}
	for from, to := range map[byte]byte{
		'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C', 'N': 'N',
		'a': 't', 't': 'a', 'c': 'g', 'g': 'c', 'n': 'n',
	} {
		t[from] = to
	}

	return t
}()

// reverseComplement returns a fresh reverse-complemented copy of seq.
func reverseComplement(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, b := range seq {
		out[len(seq)-1-i] = complementTable[b]
	}

	return out
}
