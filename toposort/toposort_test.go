// Package toposort_test contains unit tests for the bidirected topological
// sort: DAG ordering, cycle breaking, reversing edges, orientation helpers,
// and determinism.
package toposort_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strandgraph/strandgraph/bidi"
	"github.com/strandgraph/strandgraph/memgraph"
	"github.com/strandgraph/strandgraph/toposort"
)

// connect wires a forward edge a+ → b+.
func connect(t *testing.T, g *memgraph.Graph, a, b bidi.NodeID) {
	t.Helper()
	require.NoError(t, g.Connect(bidi.Handle{ID: a}, bidi.Handle{ID: b}))
}

// addNodes inserts single-base nodes with the given ids.
func addNodes(t *testing.T, g *memgraph.Graph, ids ...bidi.NodeID) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, g.AddNode(id, []byte("A")))
	}
}

func TestTopologicalSort_Empty(t *testing.T) {
	order, err := toposort.TopologicalSort(memgraph.New())
	require.NoError(t, err)
	assert.Empty(t, order)
}

func TestTopologicalSort_DAG(t *testing.T) {
	// 1→2, 1→3, 3→2: node 2 must wait for node 3.
	g := memgraph.New()
	addNodes(t, g, 1, 2, 3)
	connect(t, g, 1, 2)
	connect(t, g, 1, 3)
	connect(t, g, 3, 2)

	order, err := toposort.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []bidi.Handle{{ID: 1}, {ID: 3}, {ID: 2}}, order,
		"forward strands, topological order")
}

func TestTopologicalSort_Cycle(t *testing.T) {
	// 1→2→3→1: no heads; the smallest id seeds the cycle and the edge
	// re-entering it is the feedback edge.
	g := memgraph.New()
	addNodes(t, g, 1, 2, 3)
	connect(t, g, 1, 2)
	connect(t, g, 2, 3)
	connect(t, g, 3, 1)

	order, err := toposort.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []bidi.Handle{{ID: 1}, {ID: 2}, {ID: 3}}, order)
}

func TestTopologicalSort_ReversingEdge(t *testing.T) {
	// 1 reaches 2 on its reverse strand, and 2 continues reversed to 3;
	// node 2 is emitted reversed.
	g := memgraph.New()
	addNodes(t, g, 1, 2, 3)
	require.NoError(t, g.Connect(bidi.Handle{ID: 1}, bidi.Handle{ID: 2, Rev: true}))
	require.NoError(t, g.Connect(bidi.Handle{ID: 2, Rev: true}, bidi.Handle{ID: 3}))

	order, err := toposort.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []bidi.Handle{{ID: 1}, {ID: 2, Rev: true}, {ID: 3}}, order)
}

func TestTopologicalSort_EveryNodeOnce(t *testing.T) {
	// A denser graph with a cycle and a reversing edge: regardless of the
	// feedback choice, each node appears exactly once.
	g := memgraph.New()
	addNodes(t, g, 1, 2, 3, 4, 5)
	connect(t, g, 1, 2)
	connect(t, g, 2, 3)
	connect(t, g, 3, 2) // cycle 2⇄3
	require.NoError(t, g.Connect(bidi.Handle{ID: 3}, bidi.Handle{ID: 4, Rev: true}))
	connect(t, g, 1, 5)

	order, err := toposort.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 5)
	seen := make(map[bidi.NodeID]int)
	for _, h := range order {
		seen[h.ID]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "node %d must appear exactly once", id)
	}
}

func TestTopologicalSort_Idempotent(t *testing.T) {
	g := memgraph.New()
	addNodes(t, g, 1, 2, 3)
	connect(t, g, 1, 2)
	connect(t, g, 2, 3)
	connect(t, g, 3, 1)

	first, err := toposort.TopologicalSort(g)
	require.NoError(t, err)
	second, err := toposort.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, first, second, "sorting twice yields the same order")
}

func TestHeadAndTailHandles(t *testing.T) {
	g := memgraph.New()
	addNodes(t, g, 1, 2, 3)
	connect(t, g, 1, 2)
	connect(t, g, 2, 3)

	heads, err := toposort.HeadHandles(g)
	require.NoError(t, err)
	assert.Equal(t, []bidi.Handle{{ID: 1}}, heads)

	tails, err := toposort.TailHandles(g)
	require.NoError(t, err)
	assert.Equal(t, []bidi.Handle{{ID: 3}}, tails)
}

func TestSort_ReordersInPlace(t *testing.T) {
	// Insert out of topological order; Sort must rearrange the node
	// sequence without touching identity.
	g := memgraph.New()
	addNodes(t, g, 2, 3, 1)
	connect(t, g, 1, 3)
	connect(t, g, 3, 2)

	require.NoError(t, toposort.Sort(g))
	assert.Equal(t, []bidi.NodeID{1, 3, 2}, g.NodeIDs())
}

func TestSort_TinyGraphsUntouched(t *testing.T) {
	g := memgraph.New()
	addNodes(t, g, 7)
	require.NoError(t, toposort.Sort(g))
	assert.Equal(t, []bidi.NodeID{7}, g.NodeIDs())
}

func TestOrientNodesForward(t *testing.T) {
	g := memgraph.New()
	require.NoError(t, g.AddNode(1, []byte("AC")))
	require.NoError(t, g.AddNode(2, []byte("GGT")))
	require.NoError(t, g.AddNode(3, []byte("T")))
	require.NoError(t, g.Connect(bidi.Handle{ID: 1}, bidi.Handle{ID: 2, Rev: true}))
	require.NoError(t, g.Connect(bidi.Handle{ID: 2, Rev: true}, bidi.Handle{ID: 3}))

	flipped, err := toposort.OrientNodesForward(g)
	require.NoError(t, err)
	assert.Equal(t, map[bidi.NodeID]struct{}{2: {}}, flipped)

	// Node 2 now carries its reverse complement and the walk is forward.
	seq, err := g.Sequence(2)
	require.NoError(t, err)
	assert.Equal(t, []byte("ACC"), seq)

	order, err := toposort.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []bidi.Handle{{ID: 1}, {ID: 2}, {ID: 3}}, order,
		"after orienting, every chosen strand is forward")
}
