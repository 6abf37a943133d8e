// Package extract: the scratch graph the extractor builds and mutates.
//
// localNode mirrors the side-list edge representation of bidi/memgraph but
// stays private to the extractor: it is populated by the searches, rewritten
// by duplication and cutting, thinned by pruning, and finally streamed to
// the sink.
package extract

import (
	"fmt"

	"github.com/strandgraph/strandgraph/bidi"
)

// localNode is one scratch-graph node: the (possibly trimmed) sequence plus
// the two side lists. Edges are symmetric across the two endpoints' lists,
// except same-side self-loops, which are listed once.
type localNode struct {
	seq   []byte
	left  []bidi.HalfEdge
	right []bidi.HalfEdge
}

// sideOut returns the side list a traversal on the given strand exits
// through: the left list on the reverse strand, the right list otherwise.
func (n *localNode) sideOut(rev bool) *[]bidi.HalfEdge {
	if rev {
		return &n.left
	}

	return &n.right
}

// sideIn returns the side list a traversal on the given strand enters
// through: the opposite of sideOut.
func (n *localNode) sideIn(rev bool) *[]bidi.HalfEdge {
	if rev {
		return &n.right
	}

	return &n.left
}

// backList returns the peer-side list holding the symmetric record of an
// edge listed on our left (fromLeft) or right side: a reversing edge joins
// same-named sides, a plain edge joins opposite sides.
func backList(peer *localNode, fromLeft, reversing bool) *[]bidi.HalfEdge {
	if fromLeft == reversing {
		return &peer.left
	}

	return &peer.right
}

// findHalfEdge returns the index of the first record equal to target, or -1.
func findHalfEdge(list []bidi.HalfEdge, target bidi.HalfEdge) int {
	for i, e := range list {
		if e == target {
			return i
		}
	}

	return -1
}

// removeHalfEdge deletes the first record equal to target, reporting whether
// one was found.
func removeHalfEdge(list *[]bidi.HalfEdge, target bidi.HalfEdge) bool {
	idx := findHalfEdge(*list, target)
	if idx < 0 {
		return false
	}
	*list = append((*list)[:idx], (*list)[idx+1:]...)

	return true
}

// filterHalfEdges keeps only the records satisfying keep, in place.
func filterHalfEdges(list []bidi.HalfEdge, keep func(bidi.HalfEdge) bool) []bidi.HalfEdge {
	out := list[:0]
	for _, e := range list {
		if keep(e) {
			out = append(out, e)
		}
	}

	return out
}

// trimSeqRight returns the part of a node's forward sequence past the given
// position, walking right along the position's strand. itp is 1 when the
// base at the position itself is included, 0 otherwise.
func trimSeqRight(seq []byte, offset int64, rev bool, itp int64) []byte {
	n := int64(len(seq))
	if rev {
		return seq[:n-offset-1+itp]
	}

	return seq[offset+1-itp:]
}

// trimSeqLeft returns the part of a node's forward sequence before the given
// position, walking left along the position's strand. itp is as above.
func trimSeqLeft(seq []byte, offset int64, rev bool, itp int64) []byte {
	n := int64(len(seq))
	if rev {
		return seq[n-offset-itp:]
	}

	return seq[:offset+itp]
}

// invariantf wraps ErrInvariant with diagnostic context.
func invariantf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}
