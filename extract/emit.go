// Package extract: streaming the surviving subgraph into the sink.
//
// Nodes stream in ascending id order, all of them before the first edge;
// edges then follow in the same node order. Each physical edge is emitted exactly
// once by breaking the symmetry of its two side-list records: a left-side
// record is emitted when the peer id is larger, or equal with the reversing
// bit set (the once-listed same-side self-loop); a right-side record when
// the peer id is larger or equal.
package extract

import (
	"fmt"
)

// emit registers identity translations for surviving original nodes and
// writes every node and edge to the sink in canonical form.
func (e *extractor) emit() error {
	ids := e.sortedNodeIDs()

	for _, id := range ids {
		if _, translated := e.idTrans[id]; !translated {
			e.idTrans[id] = id
		}
	}

	// Every node goes in before any edge, so both endpoints of each edge are
	// already present in the sink when the edge arrives.
	for _, id := range ids {
		if err := e.sink.AddNode(id, e.graph[id].seq); err != nil {
			return fmt.Errorf("extract: sink: %w", err)
		}
	}

	for _, id := range ids {
		node := e.graph[id]
		for _, edge := range node.left {
			if edge.Peer > id || (edge.Peer == id && edge.Reversing) {
				// A left-side edge leaves our start; it arrives at the
				// peer's end exactly when it is non-reversing.
				if err := e.sink.AddEdge(id, edge.Peer, true, !edge.Reversing); err != nil {
					return fmt.Errorf("extract: sink: %w", err)
				}
			}
		}
		for _, edge := range node.right {
			if edge.Peer >= id {
				// A right-side edge leaves our end; it arrives at the
				// peer's end exactly when it is reversing.
				if err := e.sink.AddEdge(id, edge.Peer, false, edge.Reversing); err != nil {
					return fmt.Errorf("extract: sink: %w", err)
				}
			}
		}
	}

	return nil
}
