// Package memgraph provides an in-memory, editable bidirected sequence
// graph. It implements both bidi.Graph (the read-only traversal view) and
// bidi.Sink (the emission target), and adds the mutations the surgery
// algorithms need: symmetric edge insertion, in-place node flipping, and
// stable node reordering.
//
// Overview:
//
//   - Each node stores its forward sequence plus two side lists of
//     bidi.HalfEdge records (left/start side and right/end side). Every
//     edge appears once in a side list on each endpoint, except same-side
//     self-loops, which are listed once.
//   - The graph keeps an explicit node order (insertion order until
//     Reorder is called). ForEachHandle and NodeIDs follow that order, so
//     iteration is deterministic and toposort.Sort can rearrange it.
//   - Duplicate physical edges are rejected using canonical edge keys, so
//     the graph doubles as a well-formed sink for the extractor.
//
// Key operations:
//
//   - AddNode / AddEdge — bidi.Sink surface; AddEdge takes the
//     (from, to, fromStart, toEnd) encoding.
//   - Connect — handle-oriented edge insertion for direct construction.
//   - FollowEdges / ForEachHandle / Sequence — bidi.Graph surface.
//   - FlipNode — reverse-complement a node in place and rewire both sides.
//   - Reorder — replace the node order with a permutation (used by Sort).
//
// Errors (sentinel):
//
//   - ErrBadNodeID          if a node id is zero or negative.
//   - bidi.ErrUnknownNode   if an operation references an absent node.
//   - bidi.ErrDuplicateNode if AddNode sees an id twice.
//   - bidi.ErrDuplicateEdge if the same physical edge is inserted twice.
//
// Thread safety: a Graph is owned by one goroutine; synchronize externally
// if you must share it.
package memgraph
