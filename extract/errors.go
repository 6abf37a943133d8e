// Package extract: sentinel errors for the connecting-subgraph extractor.
package extract

import "errors"

// Sentinel errors returned by ExtractConnecting.
var (
	// ErrNilGraph indicates a nil source graph view.
	ErrNilGraph = errors.New("extract: source graph is nil")

	// ErrNilSink indicates a nil output sink.
	ErrNilSink = errors.New("extract: output sink is nil")

	// ErrNonEmptyOutput indicates the output sink already held nodes or
	// edges on entry. The call is rejected before any write.
	ErrNonEmptyOutput = errors.New("extract: output sink must be empty")

	// ErrBadMaxLen indicates a negative maximum walk length.
	ErrBadMaxLen = errors.New("extract: max length must be non-negative")

	// ErrBadPosition indicates an endpoint position whose offset lies
	// outside its node's sequence.
	ErrBadPosition = errors.New("extract: position offset out of range")

	// ErrInvariant indicates an internal invariant of the local graph was
	// violated. It should not occur; it signals a bug, and the wrapped
	// message carries diagnostic context.
	ErrInvariant = errors.New("extract: internal invariant violated")
)
