// Package extract: endpoint duplication for terminal-cycle preservation.
//
// Cutting an endpoint node severs every walk through it. When cycle
// detection is on, an endpoint found to lie on a cycle (both of its side
// lists non-empty) is duplicated first, so the cycle walks continue through
// the duplicate while the original becomes the tip. The wiring differs per
// colocation class; in every case each freshly minted id is recorded in the
// id-translation map.
//
// Self-loops need their own wiring: a reversing self-loop (same side twice)
// moves onto the duplicate with a cross-reference back, while a
// non-reversing self-loop is flagged during iteration and committed after
// it, as original ↔ duplicate links plus a loop on the duplicate.
package extract

import "github.com/strandgraph/strandgraph/bidi"

// duplicate dispatches endpoint duplication by colocation class.
func (e *extractor) duplicate() error {
	// A node with edges on both sides was both entered and exited by the
	// searches, so some cycle passes through it.
	node1 := e.graph[e.p1.ID]
	inCycle1 := len(node1.left) > 0 && len(node1.right) > 0
	node2 := e.graph[e.p2.ID]
	inCycle2 := len(node2.left) > 0 && len(node2.right) > 0

	switch e.colo {
	case separateNodes:
		// Independent endpoints duplicate independently.
		if inCycle1 {
			if err := e.duplicateSeparate(e.p1, true); err != nil {
				return err
			}
		}
		if inCycle2 {
			if err := e.duplicateSeparate(e.p2, false); err != nil {
				return err
			}
		}
	case sharedNodeReachable:
		if inCycle1 {
			return e.duplicateSharedReachable()
		}
	case sharedNodeUnreachable:
		return e.duplicateSharedUnreachable()
	case sharedNodeReverse:
		if inCycle1 {
			return e.duplicateSharedReverse()
		}
	}

	return nil
}

// duplicateSeparate clones one endpoint node that lies on a cycle. Every
// edge of the original is classified: reversing self-loops move onto the
// clone with a backreference, non-reversing self-loops defer to a looping
// connection committed after iteration, and plain edges are copied with a
// backreference on the peer. isSource orients the looping connection: the
// first endpoint feeds the clone, the clone feeds the second endpoint.
func (e *extractor) duplicateSeparate(pos bidi.Position, isSource bool) error {
	origID := pos.ID
	orig := e.graph[origID]
	dupID := e.allocNode(orig.seq)
	dup := e.graph[dupID]

	addLooping := false

	for i := range orig.right {
		edge := &orig.right[i]
		switch {
		case edge.Peer == origID && edge.Reversing:
			// Reversing self-loop: move it onto the clone, keep a
			// backreference on the original, and loop the clone.
			edge.Peer = dupID
			dup.right = append(dup.right, bidi.HalfEdge{Peer: origID, Reversing: edge.Reversing})
			dup.right = append(dup.right, bidi.HalfEdge{Peer: dupID, Reversing: edge.Reversing})
		case edge.Peer == origID:
			// Non-reversing self-loop: flag the looping connection, commit
			// it after iteration; the clone keeps its own copy of the loop.
			addLooping = true
			dup.right = append(dup.right, bidi.HalfEdge{Peer: dupID, Reversing: edge.Reversing})
			dup.left = append(dup.left, bidi.HalfEdge{Peer: dupID, Reversing: edge.Reversing})
		default:
			peer := e.graph[edge.Peer]
			back := backList(peer, false, edge.Reversing)
			*back = append(*back, bidi.HalfEdge{Peer: dupID, Reversing: edge.Reversing})
			dup.right = append(dup.right, bidi.HalfEdge{Peer: edge.Peer, Reversing: edge.Reversing})
		}
	}

	for i := range orig.left {
		edge := &orig.left[i]
		switch {
		case edge.Peer == origID && edge.Reversing:
			edge.Peer = dupID
			dup.left = append(dup.left, bidi.HalfEdge{Peer: origID, Reversing: edge.Reversing})
			dup.left = append(dup.left, bidi.HalfEdge{Peer: dupID, Reversing: edge.Reversing})
		case edge.Peer != origID:
			// Non-reversing self-loops were fully handled off the right
			// list; everything else copies across with a backreference.
			peer := e.graph[edge.Peer]
			back := backList(peer, true, edge.Reversing)
			*back = append(*back, bidi.HalfEdge{Peer: dupID, Reversing: edge.Reversing})
			dup.left = append(dup.left, bidi.HalfEdge{Peer: edge.Peer, Reversing: edge.Reversing})
		}
	}

	if addLooping {
		if isSource {
			newIn := dup.sideIn(pos.Rev)
			oldOut := orig.sideOut(pos.Rev)
			*newIn = append(*newIn, bidi.HalfEdge{Peer: origID})
			*oldOut = append(*oldOut, bidi.HalfEdge{Peer: dupID})
		} else {
			newOut := dup.sideOut(pos.Rev)
			oldIn := orig.sideIn(pos.Rev)
			*newOut = append(*newOut, bidi.HalfEdge{Peer: origID})
			*oldIn = append(*oldIn, bidi.HalfEdge{Peer: dupID})
		}
	}

	e.idTrans[dupID] = origID

	return nil
}

// duplicateSharedReachable handles both positions on one node in reachable
// order. The node will later be trimmed to its middle slice, so three nodes
// are minted: a righthand fragment owning the edges past the first
// position, a lefthand fragment owning the edges before the second, and a
// central clone carrying the through-cycles, wired to both fragments.
func (e *extractor) duplicateSharedReachable() error {
	origID := e.p1.ID
	node := e.graph[origID]
	rev := e.p1.Rev

	// Righthand fragment: the sequence past the first position, taking over
	// the edges on the side the traversal leaves through.
	rhID := e.allocNode(trimSeqRight(node.seq, e.p1.Offset, rev, e.itp))
	rh := e.graph[rhID]
	rhEdges := rh.sideOut(rev)
	*rhEdges = *node.sideOut(rev)
	*node.sideOut(rev) = nil

	for i := range *rhEdges {
		edge := &(*rhEdges)[i]
		if edge.Peer == origID && edge.Reversing {
			// Reversing self-loop: retarget to the fragment; the entry on
			// the other side is retargeted by the lefthand pass below.
			edge.Peer = rhID
		} else {
			peer := e.graph[edge.Peer]
			back := backList(peer, rev, edge.Reversing)
			idx := findHalfEdge(*back, bidi.HalfEdge{Peer: origID, Reversing: edge.Reversing})
			if idx < 0 {
				return invariantf("missing backreference %d on peer %d", origID, edge.Peer)
			}
			(*back)[idx].Peer = rhID
		}
	}
	e.idTrans[rhID] = origID

	// Lefthand fragment: the sequence before the second position, taking
	// over the edges on the side the traversal enters through.
	lhID := e.allocNode(trimSeqLeft(node.seq, e.p2.Offset, e.p2.Rev, e.itp))
	lh := e.graph[lhID]
	lhEdges := lh.sideIn(rev)
	*lhEdges = *node.sideIn(rev)
	*node.sideIn(rev) = nil

	for i := range *lhEdges {
		edge := &(*lhEdges)[i]
		if edge.Peer == origID {
			// A reversing self-loop on this side (non-reversing loops were
			// already retargeted to the righthand fragment).
			edge.Peer = lhID
		}
		if !(edge.Peer == lhID && edge.Reversing) {
			peer := e.graph[edge.Peer]
			back := backList(peer, !rev, edge.Reversing)
			idx := findHalfEdge(*back, bidi.HalfEdge{Peer: origID, Reversing: edge.Reversing})
			if idx < 0 {
				return invariantf("missing backreference %d on peer %d", origID, edge.Peer)
			}
			(*back)[idx].Peer = lhID
		}
	}
	e.idTrans[lhID] = origID

	// Central clone: the full sequence, carrying cycles through the node.
	cID := e.allocNode(node.seq)
	c := e.graph[cID]
	cOut := c.sideOut(rev)
	cIn := c.sideIn(rev)

	addLooping := false

	for i := range *rhEdges {
		edge := &(*rhEdges)[i]
		switch {
		case edge.Peer == rhID:
			// Must be a reversing self-loop; move it onto the clone.
			edge.Peer = cID
			*cOut = append(*cOut, bidi.HalfEdge{Peer: rhID, Reversing: edge.Reversing})
			*cOut = append(*cOut, bidi.HalfEdge{Peer: cID, Reversing: edge.Reversing})
		case edge.Peer == lhID:
			// The remnant of a non-reversing self-loop; commit after the
			// iteration.
			addLooping = true
		default:
			peer := e.graph[edge.Peer]
			back := backList(peer, rev, edge.Reversing)
			*back = append(*back, bidi.HalfEdge{Peer: cID, Reversing: edge.Reversing})
			*cOut = append(*cOut, bidi.HalfEdge{Peer: edge.Peer, Reversing: edge.Reversing})
		}
	}

	for i := range *lhEdges {
		edge := &(*lhEdges)[i]
		switch {
		case edge.Peer == lhID:
			edge.Peer = cID
			*cIn = append(*cIn, bidi.HalfEdge{Peer: lhID, Reversing: edge.Reversing})
			*cIn = append(*cIn, bidi.HalfEdge{Peer: cID, Reversing: edge.Reversing})
		case edge.Peer != rhID:
			peer := e.graph[edge.Peer]
			back := backList(peer, !rev, edge.Reversing)
			*back = append(*back, bidi.HalfEdge{Peer: cID, Reversing: edge.Reversing})
			*cIn = append(*cIn, bidi.HalfEdge{Peer: edge.Peer, Reversing: edge.Reversing})
		}
	}

	if addLooping {
		// Righthand feeds the clone, the clone feeds the lefthand, and the
		// clone loops on itself.
		*rhEdges = append(*rhEdges, bidi.HalfEdge{Peer: cID})
		*cIn = append(*cIn, bidi.HalfEdge{Peer: rhID})

		*lhEdges = append(*lhEdges, bidi.HalfEdge{Peer: cID})
		*cOut = append(*cOut, bidi.HalfEdge{Peer: lhID})

		*cOut = append(*cOut, bidi.HalfEdge{Peer: cID})
		*cIn = append(*cIn, bidi.HalfEdge{Peer: cID})
	}

	e.idTrans[cID] = origID

	e.dup1 = rhID
	e.dup2 = lhID

	return nil
}

// duplicateSharedUnreachable handles both positions on one node with the
// second not reachable inside it: every connecting walk is cyclic, so the
// node is cloned once and the clone carries all through-cycles for the
// distance filters to accept or reject.
func (e *extractor) duplicateSharedUnreachable() error {
	origID := e.p1.ID
	node := e.graph[origID]
	rev := e.p1.Rev

	cID := e.allocNode(node.seq)
	c := e.graph[cID]

	newOut := c.sideOut(rev)
	newIn := c.sideIn(rev)
	oldOut := node.sideOut(rev)
	oldIn := node.sideIn(rev)

	addLooping := false

	for i := range *oldOut {
		edge := &(*oldOut)[i]
		switch {
		case edge.Peer == origID && edge.Reversing:
			edge.Peer = cID
			*newOut = append(*newOut, bidi.HalfEdge{Peer: origID, Reversing: edge.Reversing})
			*newOut = append(*newOut, bidi.HalfEdge{Peer: cID, Reversing: edge.Reversing})
		case edge.Peer == origID:
			addLooping = true
		default:
			peer := e.graph[edge.Peer]
			back := backList(peer, rev, edge.Reversing)
			*back = append(*back, bidi.HalfEdge{Peer: cID, Reversing: edge.Reversing})
			*newOut = append(*newOut, bidi.HalfEdge{Peer: edge.Peer, Reversing: edge.Reversing})
		}
	}

	for i := range *oldIn {
		edge := &(*oldIn)[i]
		switch {
		case edge.Peer == origID && edge.Reversing:
			edge.Peer = cID
			*newIn = append(*newIn, bidi.HalfEdge{Peer: origID, Reversing: edge.Reversing})
			*newIn = append(*newIn, bidi.HalfEdge{Peer: cID, Reversing: edge.Reversing})
		case edge.Peer != origID:
			peer := e.graph[edge.Peer]
			back := backList(peer, !rev, edge.Reversing)
			*back = append(*back, bidi.HalfEdge{Peer: cID, Reversing: edge.Reversing})
			*newIn = append(*newIn, bidi.HalfEdge{Peer: edge.Peer, Reversing: edge.Reversing})
		}
	}

	if addLooping {
		// Original feeds the clone and vice versa, and the clone loops.
		*oldOut = append(*oldOut, bidi.HalfEdge{Peer: cID})
		*newIn = append(*newIn, bidi.HalfEdge{Peer: origID})

		*oldIn = append(*oldIn, bidi.HalfEdge{Peer: cID})
		*newOut = append(*newOut, bidi.HalfEdge{Peer: origID})

		*newOut = append(*newOut, bidi.HalfEdge{Peer: cID})
		*newIn = append(*newIn, bidi.HalfEdge{Peer: cID})
	}

	e.idTrans[cID] = origID

	return nil
}

// duplicateSharedReverse handles both positions on one node on opposite
// strands. A single clone takes copies of the outgoing edges; self-loops of
// either kind become cross-links between the original and the clone,
// committed after iteration.
func (e *extractor) duplicateSharedReverse() error {
	origID := e.p1.ID
	node := e.graph[origID]
	rev := e.p1.Rev

	cID := e.allocNode(node.seq)
	c := e.graph[cID]

	newOut := c.sideOut(rev)
	newIn := c.sideIn(rev)
	oldOut := node.sideOut(rev)
	oldIn := node.sideIn(rev)

	addReversing := false
	addLooping := false

	for i := range *oldOut {
		edge := &(*oldOut)[i]
		switch {
		case edge.Peer == origID && edge.Reversing:
			addReversing = true
		case edge.Peer == origID:
			addLooping = true
		default:
			peer := e.graph[edge.Peer]
			back := backList(peer, rev, edge.Reversing)
			*back = append(*back, bidi.HalfEdge{Peer: cID, Reversing: edge.Reversing})
			*newOut = append(*newOut, bidi.HalfEdge{Peer: edge.Peer, Reversing: edge.Reversing})
		}
	}

	for i := range *oldIn {
		edge := &(*oldIn)[i]
		switch {
		case edge.Peer == origID && edge.Reversing:
			// The clone keeps its own copy of the reversing loop on the
			// inbound side.
			*newIn = append(*newIn, bidi.HalfEdge{Peer: cID, Reversing: edge.Reversing})
		case edge.Peer != origID:
			peer := e.graph[edge.Peer]
			back := backList(peer, !rev, edge.Reversing)
			*back = append(*back, bidi.HalfEdge{Peer: cID, Reversing: edge.Reversing})
			*newIn = append(*newIn, bidi.HalfEdge{Peer: edge.Peer, Reversing: edge.Reversing})
		}
	}

	if addReversing {
		// Cycles through a reversing self-loop: original and clone link
		// reversingly, and the clone keeps a reversing loop.
		*oldOut = append(*oldOut, bidi.HalfEdge{Peer: cID, Reversing: true})
		*newOut = append(*newOut, bidi.HalfEdge{Peer: origID, Reversing: true})
		*newOut = append(*newOut, bidi.HalfEdge{Peer: cID, Reversing: true})
	}

	if addLooping {
		// Cycles through a non-reversing self-loop: original feeds the
		// clone, and the clone loops on itself.
		*oldOut = append(*oldOut, bidi.HalfEdge{Peer: cID})
		*newIn = append(*newIn, bidi.HalfEdge{Peer: origID})

		*newOut = append(*newOut, bidi.HalfEdge{Peer: cID})
		*newIn = append(*newIn, bidi.HalfEdge{Peer: cID})
	}

	e.idTrans[cID] = origID

	return nil
}
