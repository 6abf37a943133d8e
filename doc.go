// Package strandgraph is a toolkit for surgery on bidirected sequence
// graphs — the graphs where every node carries a DNA sequence with two
// sides, edges join sides, and traversals carry strand.
//
// 🚀 What is strandgraph?
//
//	A focused, dependency-light library that brings together:
//		• Core primitives: node handles, oriented positions, canonical edges
//		• memgraph: an editable in-memory bidirected graph with flip & reorder
//		• pqueue: a key-filtered min-priority queue for Dijkstra-style searches
//		• extract: the connecting-subgraph extractor (search, duplicate, cut, prune, emit)
//		• toposort: a stable, orientation-choosing topological sort for cyclic
//		  and reversing graphs
//
// ✨ Why choose strandgraph?
//
//   - Exact semantics – extraction and pruning are exact, never approximate
//   - Deterministic – byte-identical output across platforms, ordered-by-id everywhere it shows
//   - Pure Go – no cgo, a minimal dependency surface
//   - Extensible – optional trace hooks for observing every traversal
//
// Under the hood, everything is organized under five subpackages:
//
//	bidi/     — fundamental Handle, Position, EdgeKey types & graph interfaces
//	memgraph/ — mutable bidirected graph: build, flip, reorder, ingest
//	pqueue/   — filtered min-priority queue (first extraction per key wins)
//	extract/  — the connecting-subgraph extractor
//	toposort/ — bidirected topological sort + in-place Sort / OrientNodesForward
//
// Quick ASCII example:
//
//	    >──[ACG]──>──[TT]──>──[GGA]──>
//	        A          B         C
//
//	extract.ExtractConnecting carves out the subgraph of all walks between
//	two oriented positions, under a length bound, with the endpoints cut
//	into tips.
//
//	go get github.com/strandgraph/strandgraph
package strandgraph
