// Package toposort provides a stable topological sort for bidirected
// sequence graphs — possibly cyclic, possibly reversing — that
// simultaneously chooses an orientation for every node.
//
// Overview:
//
//   - The output lists every node exactly once, as an oriented handle. On a
//     DAG of forward edges the order is a plain topological order; on
//     cyclic or reversing graphs the order is topological on the DAG
//     obtained by masking a feedback set of edges, chosen deterministically
//     by seed and visit order.
//   - The traversal starts from the head handles (locally-forward handles
//     with no left-side edges). When the ready set drains inside a cycle,
//     the smallest-id seed handle collected during traversal re-enters it;
//     when no seed fits, the smallest unvisited id enters locally forward.
//
// Determinism:
//
//   - The ready, unvisited, and seed sets are ordered maps keyed by node
//     id (tidwall/btree), so the order — and therefore the masked feedback
//     set — is byte-identical across platforms for the same input. The
//     masked-edge set itself is membership-only and unordered.
//
// Helpers over a mutable graph:
//
//   - Sort reorders a memgraph.Graph in place so node i of the graph is
//     node i of the sorted order (orientation is not applied).
//   - OrientNodesForward flips every node whose chosen handle is reverse,
//     in place, and reports the flipped ids.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
//
// API reference:
//
//	order, err := toposort.TopologicalSort(g)       // g is any bidi.Graph
//	heads, err := toposort.HeadHandles(g)
//	tails, err := toposort.TailHandles(g)
//	err = toposort.Sort(mg)                          // mg is a *memgraph.Graph
//	flipped, err := toposort.OrientNodesForward(mg)
package toposort
