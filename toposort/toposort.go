// Package toposort: the orientation-choosing topological sort.
package toposort

import (
	"github.com/tidwall/btree"

	"github.com/strandgraph/strandgraph/bidi"
)

// HeadHandles returns the locally-forward handle of every node with no
// left-side edges, in the graph's node order. Complexity: O(V + E).
func HeadHandles(g bidi.Graph) ([]bidi.Handle, error) {
	return endpointHandles(g, true)
}

// TailHandles returns the locally-forward handle of every node with no
// right-side edges, in the graph's node order. Complexity: O(V + E).
func TailHandles(g bidi.Graph) ([]bidi.Handle, error) {
	return endpointHandles(g, false)
}

// endpointHandles scans for nodes with an empty side: the left side for
// heads, the right side for tails.
func endpointHandles(g bidi.Graph, goLeft bool) ([]bidi.Handle, error) {
	var (
		out     []bidi.Handle
		scanErr error
	)
	g.ForEachHandle(func(h bidi.Handle) bool {
		bare := true
		err := g.FollowEdges(h, goLeft, func(bidi.Handle) bool {
			// One neighbor is enough to disqualify.
			bare = false

			return false
		})
		if err != nil {
			scanErr = err

			return false
		}
		if bare {
			out = append(out, h)
		}

		return true
	})

	return out, scanErr
}

// TopologicalSort returns an order of handles — each node once, with a
// chosen strand — that is topological on the DAG obtained by masking a
// feedback set of edges. The feedback set is fixed by seed and visit order,
// which the ordered-by-id working sets make deterministic across platforms.
//
// Complexity: O((V + E) log V).
func TopologicalSort(g bidi.Graph) ([]bidi.Handle, error) {
	sorted := make([]bidi.Handle, 0, g.NodeCount())

	// Edges are never removed from g; masking an edge treats it as gone.
	masked := make(map[bidi.EdgeKey]struct{})

	// ready holds oriented nodes whose remaining incoming edges are all
	// masked; unvisited holds nodes not yet emitted nor readied; seeds
	// holds the first orientation suggested for each node during traversal,
	// the fallback entry points into cycles. All three iterate by node id.
	var ready btree.Map[bidi.NodeID, bidi.Handle]
	var unvisited btree.Map[bidi.NodeID, bidi.Handle]
	var seeds btree.Map[bidi.NodeID, bidi.Handle]

	// Heads go straight into the ready set, so a DAG sorts as a DAG; seeds
	// are consulted only once the heads run out.
	heads, err := HeadHandles(g)
	if err != nil {
		return nil, err
	}
	for _, h := range heads {
		ready.Set(h.ID, h)
	}
	g.ForEachHandle(func(h bidi.Handle) bool {
		if _, isHead := ready.Get(h.ID); !isHead {
			unvisited.Set(h.ID, h)
		}

		return true
	})

	for unvisited.Len() > 0 || ready.Len() > 0 {
		// Refill from the seeds: the smallest-id suggestion whose node is
		// still unvisited wins; used or not, a consulted seed is dropped.
		for ready.Len() == 0 && seeds.Len() > 0 {
			id, h, _ := seeds.Min()
			if _, still := unvisited.Get(id); still {
				ready.Set(id, h)
				unvisited.Delete(id)
			}
			seeds.Delete(id)
		}

		// No seed fit: enter the smallest unvisited node locally forward.
		if ready.Len() == 0 {
			id, h, _ := unvisited.Min()
			ready.Set(id, h)
			unvisited.Delete(id)
		}

		for ready.Len() > 0 {
			// Emit the smallest-id ready handle.
			_, n, _ := ready.Min()
			ready.Delete(n.ID)
			sorted = append(sorted, n)

			// An edge from our start to a node already emitted or readied is an edge
			// between two cycle entry points (a reversing self-loop on one
			// is the special case); mask it so it is never traversed.
			err = g.FollowEdges(n, true, func(prev bidi.Handle) bool {
				if _, still := unvisited.Get(prev.ID); !still {
					masked[bidi.CanonicalEdge(prev, n)] = struct{}{}
				}

				return true
			})
			if err != nil {
				return nil, err
			}

			// Everything else hangs off our end side.
			var innerErr error
			err = g.FollowEdges(n, false, func(next bidi.Handle) bool {
				key := bidi.CanonicalEdge(n, next)
				if _, gone := masked[key]; gone {
					return true
				}
				masked[key] = struct{}{}

				if _, still := unvisited.Get(next.ID); !still {
					// Already emitted or readied: the edge just masked was
					// a feedback edge.
					return true
				}

				// Ready the successor once its last incoming edge is
				// masked; otherwise remember this orientation as a cycle
				// entry candidate, first suggestion per node wins.
				unmaskedIncoming := false
				innerErr = g.FollowEdges(next, true, func(prev bidi.Handle) bool {
					if _, gone := masked[bidi.CanonicalEdge(prev, next)]; !gone {
						unmaskedIncoming = true

						return false
					}

					return true
				})
				if innerErr != nil {
					return false
				}

				if !unmaskedIncoming {
					ready.Set(next.ID, next)
					unvisited.Delete(next.ID)
				} else if _, known := seeds.Get(next.ID); !known {
					seeds.Set(next.ID, next)
				}

				return true
			})
			if innerErr != nil {
				return nil, innerErr
			}
			if err != nil {
				return nil, err
			}
		}
	}

	return sorted, nil
}
