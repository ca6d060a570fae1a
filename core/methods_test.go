package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twocolor/core"
)

// mustGraph builds a graph with v vertices and the given edges, failing t on error.
func mustGraph(t *testing.T, v int, edges [][2]int, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(v, opts...)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

func TestNewGraph_Defaults(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.Looped())
	assert.False(t, g.Multigraph())
	assert.Empty(t, g.Neighbors(0))
}

func TestNewGraph_Negative(t *testing.T) {
	g, err := core.NewGraph(-1)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, core.ErrNegativeVertexCount)
}

func TestNewGraph_Empty(t *testing.T) {
	g, err := core.NewGraph(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
	assert.Empty(t, g.Edges())
	assert.Nil(t, g.Neighbors(0))
}

func TestAddVertex(t *testing.T) {
	g := mustGraph(t, 2, nil)
	assert.Equal(t, 2, g.AddVertex())
	assert.Equal(t, 3, g.VertexCount())

	first, err := g.AddVertices(4)
	require.NoError(t, err)
	assert.Equal(t, 3, first)
	assert.Equal(t, 7, g.VertexCount())

	first, err = g.AddVertices(0)
	require.NoError(t, err)
	assert.Equal(t, 7, first)

	_, err = g.AddVertices(-2)
	assert.ErrorIs(t, err, core.ErrNegativeVertexCount)
}

func TestAddEdge_Mirrors(t *testing.T) {
	g := mustGraph(t, 4, [][2]int{{0, 1}, {0, 2}, {3, 0}})

	assert.Equal(t, []int{1, 2, 3}, g.Neighbors(0))
	assert.Equal(t, []int{0}, g.Neighbors(1))
	assert.Equal(t, []int{0}, g.Neighbors(3))
	assert.True(t, g.HasEdge(1, 0))
	assert.False(t, g.HasEdge(1, 2))
	assert.Equal(t, 3, g.EdgeCount())

	d, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 3, d)
}

func TestAddEdge_Errors(t *testing.T) {
	g := mustGraph(t, 3, [][2]int{{0, 1}})

	tests := []struct {
		name string
		v, w int
		want error
	}{
		{"negative endpoint", -1, 0, core.ErrVertexNotFound},
		{"endpoint past V", 0, 3, core.ErrVertexNotFound},
		{"self-loop", 2, 2, core.ErrLoopNotAllowed},
		{"parallel", 1, 0, core.ErrMultiEdgeNotAllowed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, g.AddEdge(tc.v, tc.w), tc.want)
		})
	}
	// Rejected edges leave no trace.
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_LoopsAndMulti(t *testing.T) {
	g := mustGraph(t, 2, [][2]int{{0, 0}, {0, 1}, {1, 0}}, core.WithLoops(), core.WithMultiEdges())

	assert.Equal(t, 3, g.EdgeCount())
	// The loop is stored once; the parallel edge twice on each side.
	assert.Equal(t, []int{0, 1, 1}, g.Neighbors(0))
	assert.Equal(t, []int{0, 0}, g.Neighbors(1))

	want := []core.Edge{{V: 0, W: 0}, {V: 0, W: 1}, {V: 0, W: 1}}
	if diff := cmp.Diff(want, g.Edges()); diff != "" {
		t.Errorf("Edges() mismatch (-want +got):\n%s", diff)
	}
}

func TestDegree_OutOfRange(t *testing.T) {
	g := mustGraph(t, 1, nil)
	_, err := g.Degree(1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.False(t, g.HasEdge(0, 5))
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := mustGraph(t, 2, [][2]int{{0, 1}})
	nbrs := g.Neighbors(0)
	nbrs[0] = 42
	assert.Equal(t, []int{1}, g.Neighbors(0))
}

func TestClone_Independent(t *testing.T) {
	g := mustGraph(t, 3, [][2]int{{0, 1}, {1, 2}}, core.WithLoops())
	c := g.Clone()

	require.NoError(t, c.AddEdge(2, 2))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 3, c.EdgeCount())
	assert.True(t, c.Looped())
	assert.Equal(t, g.Neighbors(1), c.Neighbors(1))
}

func TestConcurrentAddEdge(t *testing.T) {
	const n = 200
	g := mustGraph(t, n+1, nil)

	errs := make(chan error, n)
	for i := 1; i <= n; i++ {
		go func(w int) { errs <- g.AddEdge(0, w) }(i)
	}
	for i := 0; i < n; i++ {
		require.NoError(t, <-errs)
	}

	assert.Len(t, g.Neighbors(0), n)
	assert.Equal(t, n, g.EdgeCount())
}
