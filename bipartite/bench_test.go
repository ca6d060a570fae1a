package bipartite_test

import (
	"testing"

	"github.com/katalvlaran/twocolor/bipartite"
	"github.com/katalvlaran/twocolor/builder"
	"github.com/katalvlaran/twocolor/core"
)

// BenchmarkNew_Grid100 runs the checker on a 100×100 grid (bipartite, full traversal).
func BenchmarkNew_Grid100(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bipartite.New(g)
	}
}

// BenchmarkNew_RandomWithExtraEdges runs the checker on the harness-shaped input.
func BenchmarkNew_RandomWithExtraEdges(b *testing.B) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithLoops(), core.WithMultiEdges()},
		[]builder.BuilderOption{builder.WithSeed(1)},
		builder.RandomBipartite(500, 500, 2000),
		builder.RandomEdges(150),
	)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bipartite.New(g)
	}
}

// BenchmarkNew_Chain measures the explicit-stack traversal on a long path.
func BenchmarkNew_Chain(b *testing.B) {
	const n = 100000
	adj := make(bipartite.Adjacency, n)
	for v := 0; v+1 < n; v++ {
		adj[v] = append(adj[v], v+1)
		adj[v+1] = append(adj[v+1], v)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bipartite.New(adj)
	}
}
