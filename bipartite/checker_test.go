package bipartite_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twocolor/bipartite"
	"github.com/katalvlaran/twocolor/builder"
	"github.com/katalvlaran/twocolor/core"
)

// build is a test helper around builder.BuildGraph.
func build(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)

	return g
}

// TestNew_EmptyGraph: V=0 is bipartite and every Color query is out of range.
func TestNew_EmptyGraph(t *testing.T) {
	c, err := bipartite.New(bipartite.Adjacency{})
	require.NoError(t, err)

	assert.True(t, c.IsBipartite())
	assert.Nil(t, c.OddCycle())
	assert.Equal(t, 0, c.VertexCount())

	_, err = c.Color(0)
	assert.ErrorIs(t, err, bipartite.ErrVertexOutOfRange)
	assert.EqualError(t, err, "bipartite: vertex 0 is out of range: graph has no vertices")
}

// TestNew_SingleVertex: a lone root gets colour false.
func TestNew_SingleVertex(t *testing.T) {
	c, err := bipartite.New(bipartite.Adjacency{{}})
	require.NoError(t, err)

	assert.True(t, c.IsBipartite())
	side, err := c.Color(0)
	assert.NoError(t, err)
	assert.False(t, side)
}

// TestNew_EvenCycle: C_4 alternates colours around the cycle.
func TestNew_EvenCycle(t *testing.T) {
	c, err := bipartite.New(build(t, builder.Cycle(4)))
	require.NoError(t, err)
	require.True(t, c.IsBipartite())

	want := []bool{false, true, false, true}
	for v, w := range want {
		got, err := c.Color(v)
		require.NoError(t, err)
		assert.Equal(t, w, got, "colour of %d", v)
	}
	assert.Nil(t, c.OddCycle())
}

// TestNew_Triangle: the witness of K_3 is 0 1 2 0.
func TestNew_Triangle(t *testing.T) {
	g := build(t, builder.Complete(3))
	c, err := bipartite.New(g)
	require.NoError(t, err)

	assert.False(t, c.IsBipartite())
	assert.Equal(t, []int{0, 1, 2, 0}, c.OddCycle())
	assert.NoError(t, bipartite.Verify(g, c))
}

// TestNew_OddCycleWitnessLength: C_n for odd n yields the whole cycle.
func TestNew_OddCycleWitnessLength(t *testing.T) {
	for _, n := range []int{3, 5, 7, 101} {
		g := build(t, builder.Cycle(n))
		c, err := bipartite.New(g)
		require.NoError(t, err)

		cycle := c.OddCycle()
		require.Len(t, cycle, n+1, "C_%d", n)
		assert.Equal(t, cycle[0], cycle[n])
		assert.NoError(t, bipartite.Verify(g, c))
	}
}

// TestNew_DisconnectedMixed: a bipartite component does not rescue the graph.
func TestNew_DisconnectedMixed(t *testing.T) {
	g := build(t, builder.Path(2), builder.Cycle(3))
	c, err := bipartite.New(g)
	require.NoError(t, err)

	assert.False(t, c.IsBipartite())
	assert.Equal(t, []int{2, 3, 4, 2}, c.OddCycle())
	for v := 0; v < g.VertexCount(); v++ {
		_, err = c.Color(v)
		assert.ErrorIs(t, err, bipartite.ErrNotBipartite, "vertex %d", v)
	}

	_, _, err = c.Partition()
	assert.ErrorIs(t, err, bipartite.ErrNotBipartite)
}

// TestNew_DisconnectedBipartite: every component is rooted at colour false.
func TestNew_DisconnectedBipartite(t *testing.T) {
	g := build(t, builder.Path(3), builder.Star(3))
	c, err := bipartite.New(g)
	require.NoError(t, err)
	require.True(t, c.IsBipartite())

	left, right, err := c.Partition()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, left)
	assert.Equal(t, []int{1, 4, 5}, right)
}

// TestNew_SelfLoop: a loop is an odd cycle of one edge.
func TestNew_SelfLoop(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithLoops()}, nil, builder.Path(3))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 1))

	c, err := bipartite.New(g)
	require.NoError(t, err)
	assert.False(t, c.IsBipartite())
	assert.Equal(t, []int{1, 1}, c.OddCycle())
	assert.NoError(t, bipartite.Verify(g, c))
}

// TestNew_ParallelEdges: a doubled edge is an even cycle and keeps the graph bipartite.
func TestNew_ParallelEdges(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithMultiEdges()}, nil, builder.Path(2))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	c, err := bipartite.New(g)
	require.NoError(t, err)
	assert.True(t, c.IsBipartite())
}

func TestColor_RangeError(t *testing.T) {
	c, err := bipartite.New(build(t, builder.Path(3)))
	require.NoError(t, err)

	for _, v := range []int{-1, 3, 100} {
		_, err = c.Color(v)
		require.Error(t, err)
		assert.ErrorIs(t, err, bipartite.ErrVertexOutOfRange)

		var rangeErr *bipartite.VertexRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, v, rangeErr.Vertex)
		assert.Equal(t, 3, rangeErr.VertexCount)
	}

	_, err = c.Color(3)
	assert.EqualError(t, err, "bipartite: vertex 3 is not between 0 and 2")
}

// TestColor_RangeCheckedFirst: an out-of-range vertex on a non-bipartite graph
// reports the range error, not ErrNotBipartite.
func TestColor_RangeCheckedFirst(t *testing.T) {
	c, err := bipartite.New(build(t, builder.Complete(3)))
	require.NoError(t, err)

	_, err = c.Color(3)
	assert.ErrorIs(t, err, bipartite.ErrVertexOutOfRange)
	assert.NotErrorIs(t, err, bipartite.ErrNotBipartite)
}

func TestOddCycle_ReturnsCopy(t *testing.T) {
	c, err := bipartite.New(build(t, builder.Complete(3)))
	require.NoError(t, err)

	first := c.OddCycle()
	first[0] = 99
	assert.Equal(t, []int{0, 1, 2, 0}, c.OddCycle())
}

// TestNew_Deterministic: the same graph always yields the same witness.
func TestNew_Deterministic(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithLoops(), core.WithMultiEdges()},
		[]builder.BuilderOption{builder.WithSeed(11)},
		builder.RandomBipartite(10, 10, 20),
		builder.RandomEdges(15),
	)
	require.NoError(t, err)

	a, err := bipartite.New(g)
	require.NoError(t, err)
	b, err := bipartite.New(g)
	require.NoError(t, err)

	assert.Equal(t, a.IsBipartite(), b.IsBipartite())
	if diff := cmp.Diff(a.OddCycle(), b.OddCycle()); diff != "" {
		t.Errorf("OddCycle mismatch (-first +second):\n%s", diff)
	}
	assert.NoError(t, bipartite.Verify(g, a))
}

func TestNew_Errors(t *testing.T) {
	var typedNil *core.Graph

	tests := []struct {
		name string
		g    bipartite.Graph
		want error
	}{
		{"nil interface", nil, bipartite.ErrGraphNil},
		{"typed nil", typedNil, bipartite.ErrGraphNil},
		{"negative count", negativeGraph{}, bipartite.ErrInvalidGraph},
		{"neighbour out of range", bipartite.Adjacency{{5}}, bipartite.ErrInvalidGraph},
		{"negative neighbour", bipartite.Adjacency{{1}, {-1}}, bipartite.ErrInvalidGraph},
		// 1 lists 0 but 0 does not list 1: the conflict has no tree path.
		{"asymmetric", bipartite.Adjacency{{}, {0}}, bipartite.ErrInvalidGraph},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := bipartite.New(tc.g)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// negativeGraph reports an impossible vertex count.
type negativeGraph struct{}

func (negativeGraph) VertexCount() int { return -1 }
func (negativeGraph) Neighbors(int) []int { return nil }

// TestNew_DeepPath: a path far deeper than any sane recursion limit.
func TestNew_DeepPath(t *testing.T) {
	const n = 1 << 20
	adj := make(bipartite.Adjacency, n)
	for v := 0; v+1 < n; v++ {
		adj[v] = append(adj[v], v+1)
		adj[v+1] = append(adj[v+1], v)
	}

	c, err := bipartite.New(adj)
	require.NoError(t, err)
	assert.True(t, c.IsBipartite())

	last, err := c.Color(n - 1)
	require.NoError(t, err)
	assert.True(t, last) // n-1 is odd

	// Close the path into an odd cycle: the witness spans all n vertices.
	adj = append(adj, []int{n - 1, 0})
	adj[0] = append(adj[0], n)
	adj[n-1] = append(adj[n-1], n)
	c, err = bipartite.New(adj)
	require.NoError(t, err)
	assert.False(t, c.IsBipartite())
	assert.Len(t, c.OddCycle(), n+2)
	assert.NoError(t, bipartite.Verify(adj, c))
}

// TestChecker_ConcurrentReads: queries are safe from many goroutines.
func TestChecker_ConcurrentReads(t *testing.T) {
	c, err := bipartite.New(build(t, builder.Grid(8, 8)))
	require.NoError(t, err)

	done := make(chan error, 16)
	for i := 0; i < 16; i++ {
		go func() {
			for v := 0; v < c.VertexCount(); v++ {
				if _, err := c.Color(v); err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 16; i++ {
		assert.NoError(t, <-done)
	}
}
