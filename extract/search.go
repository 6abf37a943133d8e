// Package extract: the bounded forward and backward searches.
//
// Both searches are Dijkstra expansions over the source view using the
// filtered priority queue: each oriented node is finalized once, at its
// minimum distance. The forward search discovers the connecting region from
// the first position; the backward search, run only for terminal-cycle
// detection, discovers walks re-entering the second position from its far
// side.
package extract

import (
	"fmt"

	"github.com/strandgraph/strandgraph/bidi"
	"github.com/strandgraph/strandgraph/pqueue"
)

// traversal pairs an oriented node with its distance from the seeding
// position to the far end of the node.
type traversal struct {
	h    bidi.Handle
	dist int64
}

// newTraversalQueue builds a filtered min-queue over traversals keyed by
// handle, so each oriented node is expanded at most once.
func newTraversalQueue() *pqueue.Queue[traversal, bidi.Handle] {
	return pqueue.New(
		func(t traversal) bidi.Handle { return t.h },
		func(a, b traversal) bool { return a.dist < b.dist },
	)
}

// forwardSearch populates the scratch graph with every node whose arriving
// distance from the first position fits the forward bound, recording every
// edge seen and noting whether the second position's handle was reached.
func (e *extractor) forwardSearch() error {
	// The positions sharing a node in reachable order need no search at
	// all: the one potential walk stays inside the node.
	if e.colo == sharedNodeReachable {
		e.foundTarget = e.p2.Offset-e.p1.Offset <= e.maxLen

		return nil
	}

	skip := map[bidi.Handle]struct{}{e.p1.Handle(): {}}
	// Skip the second position's handle so the search does not continue
	// through the target — unless re-entering it from its far side is the
	// only way to enumerate terminal cycles.
	if !(e.colo == sharedNodeReverse && e.opts.DetectTerminalCycles) {
		skip[e.p2.Handle()] = struct{}{}
	}

	queue := newTraversalQueue()
	if e.firstTravLen <= e.forwardMaxLen {
		queue.Push(traversal{h: e.p1.Handle(), dist: e.firstTravLen})
	}

	return e.expand(TraceForwardSearch, queue, skip, e.forwardMaxLen, true)
}

// backwardSearch mirrors the forward search from the second position's far
// side, with both endpoints' inward handles skipped. It applies the
// backward bound: the walk budget remaining after the first traversal.
func (e *extractor) backwardSearch() error {
	skip := map[bidi.Handle]struct{}{
		e.p2.Handle().Flip(): {},
		e.p1.Handle().Flip(): {},
	}

	queue := newTraversalQueue()
	if e.lastTravLen <= e.backwardMaxLen {
		queue.Push(traversal{h: e.p2.Handle().Flip(), dist: e.lastTravLen})
	}

	return e.expand(TraceBackwardSearch, queue, skip, e.backwardMaxLen, false)
}

// expand runs one Dijkstra expansion: pop the closest oriented node, visit
// its outgoing neighbors, ensure each neighbor node exists in the scratch
// graph, enqueue it when the distance through it fits the bound, and record
// each new edge symmetrically.
func (e *extractor) expand(phase string, queue *pqueue.Queue[traversal, bidi.Handle],
	skip map[bidi.Handle]struct{}, bound int64, trackTarget bool) error {
	for {
		trav, ok := queue.Pop()
		if !ok {
			return nil
		}
		e.trace(phase, trav.h, trav.dist)

		// The side list this traversal exits through; edges discovered here
		// are appended to it.
		out := e.graph[trav.h.ID].sideOut(trav.h.Rev)

		var visitErr error
		err := e.src.FollowEdges(trav.h, false, func(next bidi.Handle) bool {
			if trackTarget {
				e.foundTarget = e.foundTarget || next == e.p2.Handle()
			}
			if next.ID > e.maxID {
				e.maxID = next.ID
			}

			// Materialize the neighbor with its forward sequence.
			node, exists := e.graph[next.ID]
			if !exists {
				seq, err := e.src.Sequence(next.ID)
				if err != nil {
					visitErr = fmt.Errorf("extract: source access: %w", err)

					return false
				}
				node = &localNode{seq: seq}
				e.graph[next.ID] = node
			}

			// Walks may continue past the neighbor only within the bound,
			// and never through a skip handle.
			distThru := trav.dist + int64(len(node.seq))
			if _, skipped := skip[next]; !skipped && distThru <= bound {
				queue.Push(traversal{h: next, dist: distThru})
			}

			// Record the edge once, symmetrically on both side lists — a
			// same-side self-loop is listed once.
			reversing := trav.h.Rev != next.Rev
			key := bidi.CanonicalEdge(trav.h, next)
			if _, seen := e.observed[key]; !seen {
				in := node.sideIn(next.Rev)
				*out = append(*out, bidi.HalfEdge{Peer: next.ID, Reversing: reversing})
				if !(trav.h.ID == next.ID && reversing) {
					*in = append(*in, bidi.HalfEdge{Peer: trav.h.ID, Reversing: reversing})
				}
				e.observed[key] = struct{}{}
			}

			return true
		})
		if visitErr != nil {
			return visitErr
		}
		if err != nil {
			return fmt.Errorf("extract: source access: %w", err)
		}
	}
}
