// Package extract: cutting the endpoint nodes into tips.
//
// After discovery (and duplication, when enabled), the endpoint handles are
// made into tips: the side the walks must not continue through loses its
// edges, the matching backreferences are erased from every peer, and the
// endpoint sequences are trimmed at the positions, honoring the
// terminal-base inclusion flag. Shared-node colocations additionally split
// or clone the node and retarget the affected position onto the fresh id.
package extract

import "github.com/strandgraph/strandgraph/bidi"

// cut dispatches endpoint cutting by colocation class.
func (e *extractor) cut() error {
	switch e.colo {
	case separateNodes:
		return e.cutSeparate()
	case sharedNodeReachable:
		return e.cutSharedReachable()
	case sharedNodeUnreachable:
		return e.cutSharedUnreachable()
	case sharedNodeReverse:
		return e.cutSharedReverse()
	}

	return invariantf("unhandled colocation %v", e.colo)
}

// clearSide erases the backreference of every edge on the given side list
// (same-side self-loops have none) and then empties the list.
// fromLeft states which side of the owner the list is.
func (e *extractor) clearSide(ownerID bidi.NodeID, list *[]bidi.HalfEdge, fromLeft bool) error {
	for _, edge := range *list {
		if edge.Peer == ownerID && edge.Reversing {
			continue
		}
		peer := e.graph[edge.Peer]
		if peer == nil {
			return invariantf("edge to missing node %d", edge.Peer)
		}
		back := backList(peer, fromLeft, edge.Reversing)
		if !removeHalfEdge(back, bidi.HalfEdge{Peer: ownerID, Reversing: edge.Reversing}) {
			return invariantf("missing backreference %d on peer %d", ownerID, edge.Peer)
		}
	}
	*list = nil

	return nil
}

// cutSeparate trims both endpoint nodes: each loses the edges on its
// outward-facing side and keeps the sequence on its retained side.
func (e *extractor) cutSeparate() error {
	node1 := e.graph[e.p1.ID]
	node2 := e.graph[e.p2.ID]

	// The first endpoint keeps the sequence to its right, so the side
	// behind it is severed; the second keeps the sequence to its left.
	out1 := node1.sideIn(e.p1.Rev)
	if err := e.clearSide(e.p1.ID, out1, !e.p1.Rev); err != nil {
		return err
	}
	out2 := node2.sideOut(e.p2.Rev)
	if err := e.clearSide(e.p2.ID, out2, e.p2.Rev); err != nil {
		return err
	}

	node1.seq = trimSeqRight(node1.seq, e.p1.Offset, e.p1.Rev, e.itp)
	node2.seq = trimSeqLeft(node2.seq, e.p2.Offset, e.p2.Rev, e.itp)

	return nil
}

// cutSharedReachable trims the single shared node to the middle slice
// between the two positions and severs both sides.
func (e *extractor) cutSharedReachable() error {
	node := e.graph[e.p1.ID]

	if err := e.clearSide(e.p1.ID, &node.right, false); err != nil {
		return err
	}
	if err := e.clearSide(e.p1.ID, &node.left, true); err != nil {
		return err
	}

	// The slice between the offsets, with the terminal bases included on
	// both ends exactly when requested.
	length := e.p2.Offset - e.p1.Offset - 1 + 2*e.itp
	if e.p1.Rev {
		start := int64(len(node.seq)) - e.p2.Offset - e.itp
		node.seq = node.seq[start : start+length]
	} else {
		start := e.p1.Offset + 1 - e.itp
		node.seq = node.seq[start : start+length]
	}

	return nil
}

// cutSharedUnreachable splits the shared node in two: a fresh node takes
// the right-side edges and one of the two fragments, the peers are
// retargeted, and whichever position faces the fresh fragment moves onto
// the new id.
func (e *extractor) cutSharedUnreachable() error {
	node := e.graph[e.p1.ID]
	newID := e.allocNode(node.seq)
	newNode := e.graph[newID]

	// Move the right-side edges onto the fresh node.
	newNode.right = node.right
	node.right = nil

	// Retarget the peers' records from the original id to the fresh one.
	// A reversing self-loop's counterpart lived on the moved list itself,
	// so finding no record to rewrite is fine here.
	for i := range newNode.right {
		edge := &newNode.right[i]
		peer := e.graph[edge.Peer]
		if peer == nil {
			return invariantf("edge to missing node %d", edge.Peer)
		}
		back := backList(peer, false, edge.Reversing)
		idx := findHalfEdge(*back, bidi.HalfEdge{Peer: e.p1.ID, Reversing: edge.Reversing})
		if idx >= 0 {
			(*back)[idx].Peer = newID
		}
	}

	// Trim both fragments and move the right-facing position onto the
	// fresh node.
	if e.p1.Rev {
		e.idTrans[newID] = e.p2.ID
		e.p2.ID = newID
		node.seq = trimSeqRight(node.seq, e.p1.Offset, e.p1.Rev, e.itp)
		newNode.seq = trimSeqLeft(newNode.seq, e.p2.Offset, e.p2.Rev, e.itp)
	} else {
		e.idTrans[newID] = e.p1.ID
		e.p1.ID = newID
		newNode.seq = trimSeqRight(newNode.seq, e.p1.Offset, e.p1.Rev, e.itp)
		node.seq = trimSeqLeft(node.seq, e.p2.Offset, e.p2.Rev, e.itp)
	}

	return nil
}

// cutSharedReverse severs the inward side of the shared node and mints a
// fresh node to act as the sink for the second position, migrating the
// outward edges onto it; a reversing self-loop becomes the connecting edge
// between the pair.
func (e *extractor) cutSharedReverse() error {
	node := e.graph[e.p1.ID]

	in := node.sideIn(e.p1.Rev)
	if err := e.clearSide(e.p1.ID, in, !e.p1.Rev); err != nil {
		return err
	}

	newID := e.allocNode(node.seq)
	newNode := e.graph[newID]

	oldOut := node.sideOut(e.p1.Rev)
	newOut := newNode.sideOut(e.p1.Rev)

	for i := range *oldOut {
		edge := &(*oldOut)[i]
		if edge.Peer == e.p1.ID {
			// With the other side severed this must be a reversing
			// self-loop; turn it into the edge connecting the pair.
			edge.Peer = newID
			*newOut = append(*newOut, bidi.HalfEdge{Peer: e.p1.ID, Reversing: edge.Reversing})
		} else {
			peer := e.graph[edge.Peer]
			if peer == nil {
				return invariantf("edge to missing node %d", edge.Peer)
			}
			back := backList(peer, e.p1.Rev, edge.Reversing)
			*newOut = append(*newOut, bidi.HalfEdge{Peer: edge.Peer, Reversing: edge.Reversing})
			*back = append(*back, bidi.HalfEdge{Peer: newID, Reversing: edge.Reversing})
		}
	}

	e.idTrans[newID] = e.p1.ID
	// The fresh node is the retargeted sink for the second position.
	e.p2.ID = newID

	node.seq = trimSeqRight(node.seq, e.p1.Offset, e.p1.Rev, e.itp)
	newNode.seq = trimSeqLeft(newNode.seq, e.p2.Offset, e.p2.Rev, e.itp)

	return nil
}
