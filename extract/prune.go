// Package extract: the three pruning modes.
//
// After cutting, the scratch graph contains every walk the searches could
// reach, which may include dead ends and over-length detours. The modes are
// mutually exclusive and considered in this priority order: strict
// max-length, only-paths, no-additional-tips. All three traverse the
// scratch graph only; the source view is no longer consulted.
package extract

import (
	"sort"

	"github.com/strandgraph/strandgraph/bidi"
)

// sortedNodeIDs returns the scratch graph's node ids in ascending order,
// for deterministic sweeps.
func (e *extractor) sortedNodeIDs() []bidi.NodeID {
	ids := make([]bidi.NodeID, 0, len(e.graph))
	for id := range e.graph {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// eraseNode drops a node and, if it was a duplicate, its translation entry.
func (e *extractor) eraseNode(id bidi.NodeID) {
	delete(e.idTrans, id)
	delete(e.graph, id)
}

// pruneStrictMaxLen keeps only the nodes and edges lying on some connecting
// walk of length at most maxLen. Two Dijkstra passes over the scratch graph
// compute, per oriented node, the shortest forward distance from the first
// position (and its duplicate) and the shortest reverse distance from the
// second (and its duplicate); a node survives iff some orientation's sum
// fits the bound, an edge iff the shortest walk using it does.
func (e *extractor) pruneStrictMaxLen() {
	forwardDist := make(map[bidi.Handle]int64)
	reverseDist := make(map[bidi.Handle]int64)

	queue := newTraversalQueue()

	// Forward pass: distances to the far side of each oriented node.
	queue.Push(traversal{h: e.p1.Handle(), dist: int64(len(e.graph[e.p1.ID].seq))})
	if e.dup1 != 0 {
		queue.Push(traversal{
			h:    bidi.Handle{ID: e.dup1, Rev: e.p1.Rev},
			dist: int64(len(e.graph[e.dup1].seq)),
		})
	}
	for {
		trav, ok := queue.Pop()
		if !ok {
			break
		}
		e.trace(TracePruneForward, trav.h, trav.dist)
		forwardDist[trav.h] = trav.dist

		out := e.graph[trav.h.ID].sideOut(trav.h.Rev)
		for _, edge := range *out {
			distThru := trav.dist + int64(len(e.graph[edge.Peer].seq))
			queue.Push(traversal{
				h:    bidi.Handle{ID: edge.Peer, Rev: edge.Reversing != trav.h.Rev},
				dist: distThru,
			})
		}
	}

	// Reverse pass: distances from the near side of each oriented node,
	// walking against the target orientation.
	queue.Clear()
	queue.Push(traversal{h: e.p2.Handle().Flip()})
	if e.dup2 != 0 {
		queue.Push(traversal{h: bidi.Handle{ID: e.dup2, Rev: !e.p2.Rev}})
	}
	for {
		trav, ok := queue.Pop()
		if !ok {
			break
		}
		e.trace(TracePruneBackward, trav.h, trav.dist)
		reverseDist[trav.h] = trav.dist

		distThru := trav.dist + int64(len(e.graph[trav.h.ID].seq))
		out := e.graph[trav.h.ID].sideOut(trav.h.Rev)
		for _, edge := range *out {
			queue.Push(traversal{
				h:    bidi.Handle{ID: edge.Peer, Rev: edge.Reversing != trav.h.Rev},
				dist: distThru,
			})
		}
	}

	// A short-enough walk crosses a node in one orientation or the other;
	// note the forward distance is to the far side and the reverse distance
	// from the near side, so their sum counts the node once.
	shortEnough := func(fwd, rev bidi.Handle, extra int64) bool {
		df, okF := forwardDist[fwd]
		dr, okR := reverseDist[rev]

		return okF && okR && df+dr+extra <= e.maxLen
	}

	var toErase []bidi.NodeID
	for _, id := range e.sortedNodeIDs() {
		node := e.graph[id]
		if !shortEnough(bidi.Handle{ID: id, Rev: true}, bidi.Handle{ID: id}, 0) &&
			!shortEnough(bidi.Handle{ID: id}, bidi.Handle{ID: id, Rev: true}, 0) {
			toErase = append(toErase, id)

			continue
		}

		// Keep an edge iff the shortest walk using it fits, in either
		// orientation; crossing the edge adds the far node's length.
		node.right = filterHalfEdges(node.right, func(edge bidi.HalfEdge) bool {
			peerLen := int64(len(e.graph[edge.Peer].seq))

			return shortEnough(bidi.Handle{ID: id}, bidi.Handle{ID: edge.Peer, Rev: !edge.Reversing}, peerLen) ||
				shortEnough(bidi.Handle{ID: edge.Peer, Rev: !edge.Reversing}, bidi.Handle{ID: id}, int64(len(node.seq)))
		})
		node.left = filterHalfEdges(node.left, func(edge bidi.HalfEdge) bool {
			peerLen := int64(len(e.graph[edge.Peer].seq))

			return shortEnough(bidi.Handle{ID: id, Rev: true}, bidi.Handle{ID: edge.Peer, Rev: edge.Reversing}, peerLen) ||
				shortEnough(bidi.Handle{ID: edge.Peer, Rev: edge.Reversing}, bidi.Handle{ID: id, Rev: true}, int64(len(node.seq)))
		})
	}

	for _, id := range toErase {
		e.eraseNode(id)
	}
}

// pruneOnlyPaths keeps only the nodes and edges lying on some connecting
// walk, with no length bound: two depth-first reachability passes replace
// the distance computation.
func (e *extractor) pruneOnlyPaths() {
	forwardReachable := make(map[bidi.Handle]struct{})
	reverseReachable := make(map[bidi.Handle]struct{})

	flood := func(reached map[bidi.Handle]struct{}, seeds ...bidi.Handle) {
		stack := make([]bidi.Handle, 0, len(seeds))
		for _, s := range seeds {
			stack = append(stack, s)
			reached[s] = struct{}{}
		}
		for len(stack) > 0 {
			h := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			out := e.graph[h.ID].sideOut(h.Rev)
			for _, edge := range *out {
				next := bidi.Handle{ID: edge.Peer, Rev: edge.Reversing != h.Rev}
				if _, seen := reached[next]; !seen {
					reached[next] = struct{}{}
					stack = append(stack, next)
				}
			}
		}
	}

	fwdSeeds := []bidi.Handle{e.p1.Handle()}
	if e.dup1 != 0 {
		fwdSeeds = append(fwdSeeds, bidi.Handle{ID: e.dup1, Rev: e.p1.Rev})
	}
	flood(forwardReachable, fwdSeeds...)

	revSeeds := []bidi.Handle{e.p2.Handle().Flip()}
	if e.dup2 != 0 {
		revSeeds = append(revSeeds, bidi.Handle{ID: e.dup2, Rev: !e.p2.Rev})
	}
	flood(reverseReachable, revSeeds...)

	onPath := func(fwd, rev bidi.Handle) bool {
		_, okF := forwardReachable[fwd]
		_, okR := reverseReachable[rev]

		return okF && okR
	}

	var toErase []bidi.NodeID
	for _, id := range e.sortedNodeIDs() {
		node := e.graph[id]
		if !onPath(bidi.Handle{ID: id, Rev: true}, bidi.Handle{ID: id}) &&
			!onPath(bidi.Handle{ID: id}, bidi.Handle{ID: id, Rev: true}) {
			toErase = append(toErase, id)

			continue
		}

		node.right = filterHalfEdges(node.right, func(edge bidi.HalfEdge) bool {
			return onPath(bidi.Handle{ID: id}, bidi.Handle{ID: edge.Peer, Rev: !edge.Reversing}) ||
				onPath(bidi.Handle{ID: edge.Peer, Rev: !edge.Reversing}, bidi.Handle{ID: id})
		})
		node.left = filterHalfEdges(node.left, func(edge bidi.HalfEdge) bool {
			return onPath(bidi.Handle{ID: id, Rev: true}, bidi.Handle{ID: edge.Peer, Rev: edge.Reversing}) ||
				onPath(bidi.Handle{ID: edge.Peer, Rev: edge.Reversing}, bidi.Handle{ID: id, Rev: true})
		})
	}

	for _, id := range toErase {
		e.eraseNode(id)
	}
}

// pruneAdditionalTips iteratively peels every node with an empty side,
// except the endpoints and their duplicates, propagating side-degree
// decrements as it goes; a final sweep drops edges whose peer is gone.
func (e *extractor) pruneAdditionalTips() {
	leftDegree := make(map[bidi.NodeID]int, len(e.graph))
	rightDegree := make(map[bidi.NodeID]int, len(e.graph))
	for id, node := range e.graph {
		leftDegree[id] = len(node.left)
		rightDegree[id] = len(node.right)
	}

	protected := func(id bidi.NodeID) bool {
		return id == e.p1.ID || id == e.p2.ID || id == e.dup1 || id == e.dup2
	}

	var toCheck []bidi.NodeID
	for _, seed := range e.sortedNodeIDs() {
		toCheck = append(toCheck, seed)
		for len(toCheck) > 0 {
			id := toCheck[len(toCheck)-1]
			toCheck = toCheck[:len(toCheck)-1]

			node, alive := e.graph[id]
			if !alive || protected(id) {
				// The endpoints get a free pass on being tips, and peeled
				// nodes may be queued more than once.
				continue
			}
			switch {
			case leftDegree[id] == 0:
				// A left tip: every right-side edge loses its far record.
				for _, edge := range node.right {
					if edge.Reversing {
						rightDegree[edge.Peer]--
					} else {
						leftDegree[edge.Peer]--
					}
					toCheck = append(toCheck, edge.Peer)
				}
				e.eraseNode(id)
			case rightDegree[id] == 0:
				for _, edge := range node.left {
					if edge.Reversing {
						leftDegree[edge.Peer]--
					} else {
						rightDegree[edge.Peer]--
					}
					toCheck = append(toCheck, edge.Peer)
				}
				e.eraseNode(id)
			}
		}
	}

	// Drop the dangling records pointing at peeled nodes.
	for _, node := range e.graph {
		alive := func(edge bidi.HalfEdge) bool {
			_, ok := e.graph[edge.Peer]

			return ok
		}
		node.left = filterHalfEdges(node.left, alive)
		node.right = filterHalfEdges(node.right, alive)
	}
}
