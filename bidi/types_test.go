// Package bidi_test contains unit tests for the core value types:
// handle flipping, position rendering, and edge canonicalization.
package bidi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strandgraph/strandgraph/bidi"
)

// TestHandle_Flip verifies that Flip toggles strand and is an involution.
func TestHandle_Flip(t *testing.T) {
	h := bidi.Handle{ID: 7}
	assert.Equal(t, bidi.Handle{ID: 7, Rev: true}, h.Flip(), "flip of forward is reverse")
	assert.Equal(t, h, h.Flip().Flip(), "double flip must be identity")
}

// TestHandle_Forward verifies that Forward drops the strand.
func TestHandle_Forward(t *testing.T) {
	h := bidi.Handle{ID: 3, Rev: true}
	assert.Equal(t, bidi.Handle{ID: 3}, h.Forward(), "forward handle keeps id, clears strand")
}

// TestHandle_String checks the "id±" rendering used in diagnostics.
func TestHandle_String(t *testing.T) {
	assert.Equal(t, "5+", bidi.Handle{ID: 5}.String())
	assert.Equal(t, "5-", bidi.Handle{ID: 5, Rev: true}.String())
}

// TestPosition_Handle verifies the handle projection of a position.
func TestPosition_Handle(t *testing.T) {
	p := bidi.Position{ID: 9, Rev: true, Offset: 4}
	assert.Equal(t, bidi.Handle{ID: 9, Rev: true}, p.Handle())
	assert.Equal(t, "9-:4", p.String())
}

// TestCanonicalEdge_MirrorEquality is the core property: an edge and its
// mirror orientation must canonicalize to the same key.
func TestCanonicalEdge_MirrorEquality(t *testing.T) {
	cases := []struct {
		name string
		a, b bidi.Handle
	}{
		{"forward-forward", bidi.Handle{ID: 1}, bidi.Handle{ID: 2}},
		{"forward-reverse", bidi.Handle{ID: 1}, bidi.Handle{ID: 2, Rev: true}},
		{"reverse-forward", bidi.Handle{ID: 4, Rev: true}, bidi.Handle{ID: 2}},
		{"self-loop", bidi.Handle{ID: 3}, bidi.Handle{ID: 3}},
		{"reversing-self-loop", bidi.Handle{ID: 3}, bidi.Handle{ID: 3, Rev: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			direct := bidi.CanonicalEdge(tc.a, tc.b)
			mirror := bidi.CanonicalEdge(tc.b.Flip(), tc.a.Flip())
			assert.Equal(t, direct, mirror, "edge and mirror must share one key")
		})
	}
}

// TestCanonicalEdge_Distinct verifies that different physical edges keep
// distinct keys.
func TestCanonicalEdge_Distinct(t *testing.T) {
	plain := bidi.CanonicalEdge(bidi.Handle{ID: 1}, bidi.Handle{ID: 2})
	reversing := bidi.CanonicalEdge(bidi.Handle{ID: 1}, bidi.Handle{ID: 2, Rev: true})
	assert.NotEqual(t, plain, reversing, "reversing and non-reversing edges differ")
}

// TestCanonicalEdge_SmallerFirst verifies the normalization picks the
// lexicographically smaller orientation.
func TestCanonicalEdge_SmallerFirst(t *testing.T) {
	// 5+ → 2+ mirrors to 2- → 5-; the mirror starts at the smaller id.
	key := bidi.CanonicalEdge(bidi.Handle{ID: 5}, bidi.Handle{ID: 2})
	assert.Equal(t, bidi.NodeID(2), key.A.ID, "canonical edge leads with the smaller id")
}
