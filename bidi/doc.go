// Package bidi defines the core data model for bidirected sequence graphs:
// node identities, oriented handles, positions, canonical edge keys, and the
// narrow Graph / Sink interfaces that the algorithm packages consume.
//
// Overview:
//
//   - A node carries a forward sequence and has two sides: a "start" (left)
//     and an "end" (right). A Handle is an oriented reference to a node —
//     (NodeID, Rev). Every node has exactly two handles, one per strand.
//   - An edge is an unordered link between two node sides; traversal
//     direction is inferred from the side entered. A reversing edge flips
//     strand when traversed (equivalently, it joins two start sides or two
//     end sides).
//   - Graph is the read-only capability set: sequence lookup and side-wise
//     edge enumeration by handle. Sink is the write surface: nodes plus
//     edges in the (from, to, fromStart, toEnd) encoding.
//
// Determinism:
//
//   - EdgeKey is a strand-normalized edge identity: of the two equivalent
//     orientations of an edge, the lexicographically smaller by
//     (ID, Rev, ID, Rev) composite order is canonical. Using EdgeKey as a
//     set key counts each physical edge exactly once on every platform.
//   - Graph.ForEachHandle must enumerate locally-forward handles in a
//     deterministic order; implementations in this module use the graph's
//     node order.
//
// Errors (sentinel):
//
//   - ErrUnknownNode   if a Graph or Sink operation references an absent id.
//   - ErrDuplicateNode if a Sink receives the same node id twice.
//   - ErrDuplicateEdge if a Sink receives the same physical edge twice.
//
// See extract for the connecting-subgraph extractor and toposort for the
// stable bidirected topological sort built on these types.
package bidi
