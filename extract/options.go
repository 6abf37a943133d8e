// Package extract: configuration options for the extractor.
//
// Options follow the functional-options pattern: start from
// DefaultOptions and override with With... constructors.
package extract

import "github.com/strandgraph/strandgraph/bidi"

// Trace phase labels passed to the TraceFunc hook.
const (
	// TraceForwardSearch labels pops of the bounded forward search.
	TraceForwardSearch = "forward search"

	// TraceBackwardSearch labels pops of the terminal-cycle backward search.
	TraceBackwardSearch = "backward search"

	// TracePruneForward labels pops of the forward distance pass of
	// strict-max-length pruning.
	TracePruneForward = "prune forward"

	// TracePruneBackward labels pops of the reverse distance pass of
	// strict-max-length pruning.
	TracePruneBackward = "prune backward"
)

// TraceFunc observes every traversal popped during the search and pruning
// phases: the phase label, the oriented node, and its distance from the
// seeding endpoint. Hooks must not mutate the graphs involved.
type TraceFunc func(phase string, h bidi.Handle, dist int64)

// Options configures the behavior of ExtractConnecting.
//
// IncludeTerminalPositions – keep the bases at the two endpoint positions in
// the trimmed endpoint sequences (default: excluded).
// DetectTerminalCycles     – run the backward search and duplicate endpoint
// nodes so cycles through the endpoints survive the cut.
// StrictMaxLen / OnlyPaths / NoAdditionalTips – the three pruning modes;
// at most one applies per call, considered in that priority order.
// Trace – optional traversal hook; nil disables tracing.
type Options struct {
	// IncludeTerminalPositions keeps the endpoint bases in the cut
	// sequences when true.
	IncludeTerminalPositions bool

	// DetectTerminalCycles preserves cycles through the endpoint nodes.
	DetectTerminalCycles bool

	// StrictMaxLen prunes to nodes and edges on connecting walks of length
	// at most the maximum.
	StrictMaxLen bool

	// OnlyPaths prunes to nodes and edges on some connecting walk of any
	// length.
	OnlyPaths bool

	// NoAdditionalTips iteratively peels tips other than the endpoints and
	// their duplicates.
	NoAdditionalTips bool

	// Trace observes popped traversals; nil disables tracing.
	Trace TraceFunc
}

// Option is a functional option for configuring ExtractConnecting.
type Option func(*Options)

// WithIncludeTerminalPositions keeps the bases at both endpoint positions in
// the trimmed endpoint sequences.
func WithIncludeTerminalPositions() Option {
	return func(o *Options) { o.IncludeTerminalPositions = true }
}

// WithDetectTerminalCycles enables the backward search and the endpoint
// duplication that preserve cycles terminating at the endpoints.
func WithDetectTerminalCycles() Option {
	return func(o *Options) { o.DetectTerminalCycles = true }
}

// WithStrictMaxLen enables length-bounded pruning: only nodes and edges on
// connecting walks of length ≤ maxLen survive. Takes priority over the
// other pruning modes.
func WithStrictMaxLen() Option {
	return func(o *Options) { o.StrictMaxLen = true }
}

// WithOnlyPaths enables reachability pruning: only nodes and edges on some
// connecting walk survive, with no length bound.
func WithOnlyPaths() Option {
	return func(o *Options) { o.OnlyPaths = true }
}

// WithNoAdditionalTips enables tip peeling: nodes with an empty side are
// removed iteratively, except the endpoints and their duplicates.
func WithNoAdditionalTips() Option {
	return func(o *Options) { o.NoAdditionalTips = true }
}

// WithTrace installs a hook observing every popped traversal during the
// search and pruning phases.
func WithTrace(hook TraceFunc) Option {
	return func(o *Options) { o.Trace = hook }
}

// DefaultOptions returns the zero configuration: endpoint bases excluded, no
// cycle detection, no pruning, no tracing.
func DefaultOptions() Options { return Options{} }
