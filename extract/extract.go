// Package extract: the ExtractConnecting entry point and phase pipeline.
package extract

import (
	"fmt"

	"github.com/strandgraph/strandgraph/bidi"
)

// colocation classifies how the two endpoint positions relate when they
// share a node.
type colocation int

const (
	// separateNodes: the positions lie on different nodes.
	separateNodes colocation = iota

	// sharedNodeReachable: same node, same strand, and the second position
	// lies at or past the first (subject to terminal-base inclusion).
	sharedNodeReachable

	// sharedNodeUnreachable: same node, same strand, but the first position
	// does not precede the second.
	sharedNodeUnreachable

	// sharedNodeReverse: same node, opposite strands.
	sharedNodeReverse
)

// String renders the colocation class for diagnostics.
func (c colocation) String() string {
	switch c {
	case separateNodes:
		return "separate nodes"
	case sharedNodeReachable:
		return "shared node, reachable"
	case sharedNodeUnreachable:
		return "shared node, unreachable"
	case sharedNodeReverse:
		return "shared node, reverse"
	}

	return "unknown colocation"
}

// extractor holds the mutable state of one ExtractConnecting invocation.
type extractor struct {
	src    bidi.Graph
	sink   bidi.Sink
	maxLen int64
	p1, p2 bidi.Position
	opts   Options

	colo colocation
	itp  int64 // 1 when the endpoint bases are included, 0 otherwise

	// graph is the scratch subgraph under construction.
	graph map[bidi.NodeID]*localNode

	// idTrans maps freshly minted ids back to source ids; identity entries
	// for surviving originals are registered at emission.
	idTrans map[bidi.NodeID]bidi.NodeID

	// observed dedupes edges recorded by the searches.
	observed map[bidi.EdgeKey]struct{}

	// maxID tracks the largest id seen; fresh ids are minted above it.
	maxID  bidi.NodeID
	nextID bidi.NodeID

	// dup1/dup2 are the duplicates standing in for the endpoints during
	// pruning; zero means none.
	dup1, dup2 bidi.NodeID

	// Traversal lengths fixed by the endpoint offsets, and the per-direction
	// search bounds derived from them.
	firstTravLen   int64
	lastTravLen    int64
	forwardMaxLen  int64
	backwardMaxLen int64

	foundTarget bool
}

// ExtractConnecting extracts into sink the subgraph of walks connecting
// pos1 to pos2 in src with length at most maxLen, cutting the endpoint
// nodes into tips. It returns the id-translation map relating the emitted
// node ids back to src.
//
// A target unreachable within maxLen is not an error: the call succeeds
// with an empty sink and an empty translation. See the package
// documentation for the option set and the error contract.
//
// Complexity: O((V' + E') log V') over the extracted region plus the cost
// of the selected pruning mode.
func ExtractConnecting(src bidi.Graph, sink bidi.Sink, maxLen int64,
	pos1, pos2 bidi.Position, opts ...Option) (map[bidi.NodeID]bidi.NodeID, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate collaborators and bounds.
	if src == nil {
		return nil, ErrNilGraph
	}
	if sink == nil {
		return nil, ErrNilSink
	}
	if !sink.Empty() {
		return nil, ErrNonEmptyOutput
	}
	if maxLen < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadMaxLen, maxLen)
	}

	e := &extractor{
		src:      src,
		sink:     sink,
		maxLen:   maxLen,
		p1:       pos1,
		p2:       pos2,
		opts:     cfg,
		graph:    make(map[bidi.NodeID]*localNode),
		idTrans:  make(map[bidi.NodeID]bidi.NodeID),
		observed: make(map[bidi.EdgeKey]struct{}),
	}
	if cfg.IncludeTerminalPositions {
		e.itp = 1
	}

	// 3) Fetch the endpoint sequences, validating both positions, and seed
	// the scratch graph with the endpoint nodes.
	seq1, err := src.Sequence(pos1.ID)
	if err != nil {
		return nil, fmt.Errorf("extract: source access: %w", err)
	}
	if pos1.Offset < 0 || pos1.Offset >= int64(len(seq1)) {
		return nil, fmt.Errorf("%w: %s in node of length %d", ErrBadPosition, pos1, len(seq1))
	}
	e.graph[pos1.ID] = &localNode{seq: seq1}
	seq2 := seq1
	if pos2.ID != pos1.ID {
		if seq2, err = src.Sequence(pos2.ID); err != nil {
			return nil, fmt.Errorf("extract: source access: %w", err)
		}
		e.graph[pos2.ID] = &localNode{seq: seq2}
	}
	if pos2.Offset < 0 || pos2.Offset >= int64(len(seq2)) {
		return nil, fmt.Errorf("%w: %s in node of length %d", ErrBadPosition, pos2, len(seq2))
	}
	// The phases below count offsets along each position's own strand.
	if pos1.Rev {
		e.p1.Offset = int64(len(seq1)) - 1 - pos1.Offset
	}
	if pos2.Rev {
		e.p2.Offset = int64(len(seq2)) - 1 - pos2.Offset
	}

	// 4) Classify the endpoint colocation; the inclusive-offset rule makes
	// equal offsets reachable exactly when the terminal bases are included.
	switch {
	case pos1.ID != pos2.ID:
		e.colo = separateNodes
	case pos1.Rev != pos2.Rev:
		e.colo = sharedNodeReverse
	case e.p1.Offset < e.p2.Offset+e.itp:
		e.colo = sharedNodeReachable
	default:
		e.colo = sharedNodeUnreachable
	}

	// 5) Fixed traversal lengths and per-direction search bounds.
	e.maxID = pos1.ID
	if pos2.ID > e.maxID {
		e.maxID = pos2.ID
	}
	e.firstTravLen = int64(len(seq1)) - e.p1.Offset
	e.lastTravLen = e.p2.Offset
	e.forwardMaxLen = maxLen - e.lastTravLen
	e.backwardMaxLen = maxLen - e.firstTravLen

	return e.run()
}

// run drives the phase pipeline over the seeded extractor.
func (e *extractor) run() (map[bidi.NodeID]bidi.NodeID, error) {
	// STEP 1: forward search to discover the connecting region.
	if err := e.forwardSearch(); err != nil {
		return nil, err
	}

	// No walk within the bound: succeed with an empty subgraph.
	if !e.foundTarget {
		return map[bidi.NodeID]bidi.NodeID{}, nil
	}

	// STEP 2: backward search for cycles terminating at the second
	// position. When the positions share a node unreachably, or oppose in
	// strand, every connecting walk is already cyclic and the forward
	// search saw everything the distance filters could keep.
	if e.opts.DetectTerminalCycles &&
		(e.colo == separateNodes || e.colo == sharedNodeReachable) {
		if err := e.backwardSearch(); err != nil {
			return nil, err
		}
	}

	// Fresh ids mint strictly above everything seen.
	e.nextID = e.maxID + 1

	// STEP 3: duplicate endpoint nodes so cycles survive the cut.
	if e.opts.DetectTerminalCycles {
		if err := e.duplicate(); err != nil {
			return nil, err
		}
	}

	// STEP 4: cut the endpoint nodes into tips.
	if err := e.cut(); err != nil {
		return nil, err
	}

	// STEP 5: prune under the selected mode, if any.
	switch {
	case e.opts.StrictMaxLen:
		e.pruneStrictMaxLen()
	case e.opts.OnlyPaths:
		e.pruneOnlyPaths()
	case e.opts.NoAdditionalTips:
		e.pruneAdditionalTips()
	}

	// STEP 6: stream the surviving subgraph into the sink.
	if err := e.emit(); err != nil {
		return nil, err
	}

	return e.idTrans, nil
}

// allocNode mints a fresh node id holding the given sequence and returns it.
func (e *extractor) allocNode(seq []byte) bidi.NodeID {
	id := e.nextID
	e.nextID++
	e.graph[id] = &localNode{seq: seq}

	return id
}

// trace invokes the optional traversal hook.
func (e *extractor) trace(phase string, h bidi.Handle, dist int64) {
	if e.opts.Trace != nil {
		e.opts.Trace(phase, h, dist)
	}
}
