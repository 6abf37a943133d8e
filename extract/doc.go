// Package extract implements the connecting-subgraph extractor: given a
// bidirected sequence graph and two oriented positions in it, it carves out
// the self-contained subgraph of walks connecting the two positions under a
// length bound, optionally preserving cycles through the endpoints, and
// optionally pruning the result under one of three semantic modes.
//
// Overview:
//
//   - The two endpoint nodes are cut mid-sequence so the endpoints become
//     tips of the emitted subgraph while every edge keeps its symmetric
//     side-list representation.
//   - When cycle detection is on, endpoint nodes lying on cycles are
//     duplicated first, so that cycle walks through an endpoint survive the
//     cut; fresh node ids are minted above the largest id seen and reported
//     through the returned id-translation map (fresh id → original id).
//   - Discovery is a Dijkstra-style expansion over the source view using a
//     filtered priority queue (pqueue), bounded by the maximum walk length
//     in the direction of each search.
//
// Phases, in order: forward search → backward search (cycles) → duplicate →
// cut → prune → emit. "Target not reachable within the bound" is not an
// error: the call succeeds with an empty sink and an empty translation.
//
// Pruning modes (at most one applies, in this priority order):
//
//  1. StrictMaxLen     – keep only nodes/edges on connecting walks ≤ maxLen,
//     via forward and reverse distance passes.
//  2. OnlyPaths        – keep only nodes/edges on some connecting walk, via
//     forward and reverse reachability passes.
//  3. NoAdditionalTips – iteratively peel every tip except the endpoints
//     and their duplicates.
//
// Errors (sentinel):
//
//   - ErrNilGraph / ErrNilSink  – missing collaborator.
//   - ErrNonEmptyOutput         – the sink already held data; nothing is written.
//   - ErrBadMaxLen              – negative maximum walk length.
//   - ErrBadPosition            – endpoint offset outside its node.
//   - ErrInvariant              – internal invariant violation (a bug).
//   - bidi.ErrUnknownNode       – the source view rejected an id (wrapped).
//
// Determinism: emission streams nodes in ascending id order and edges in
// canonical orientation, so the sink content is byte-identical across
// platforms for the same input.
//
// API reference:
//
//	trans, err := extract.ExtractConnecting(src, sink, maxLen, pos1, pos2,
//	    extract.WithDetectTerminalCycles(),
//	    extract.WithStrictMaxLen(),
//	)
//
// The extractor is single-threaded and owns all of its scratch state; source
// and sink are only read and written respectively.
package extract
