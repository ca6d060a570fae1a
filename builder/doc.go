// Package builder generates core.Graph fixtures for the twocolor algorithms:
// classic deterministic topologies and seeded random graphs.
//
// Every generator is a Constructor closure applied by BuildGraph in order.
// Topology constructors append a fresh block of vertices to the graph, so
// composing several of them yields their disjoint union:
//
//	g, err := builder.BuildGraph(nil, nil,
//		builder.Cycle(4),            // vertices 0..3, bipartite
//		builder.Cycle(3),            // vertices 4..6, an odd cycle
//	)
//
// RandomEdges is the exception: it perturbs the vertices already present.
//
// Deterministic topologies:
//
//   - Path(n)                 P_n, n ≥ 2
//   - Cycle(n)                C_n, n ≥ 3 (bipartite iff n is even)
//   - Star(n)                 hub + n-1 leaves, n ≥ 2
//   - Wheel(n)                C_{n-1} + hub, n ≥ 4 (never bipartite)
//   - Complete(n)             K_n, n ≥ 1 (bipartite iff n ≤ 2)
//   - CompleteBipartite(a,b)  K_{a,b}, a,b ≥ 1
//   - Grid(rows, cols)        4-neighbourhood lattice, rows,cols ≥ 1
//
// Random generators (need WithSeed or WithRand):
//
//   - RandomSimple(n, e)         e distinct edges, no loops
//   - RandomBipartite(a, b, e)   e distinct cross edges over a shuffled split
//   - RandomEdges(f)             f extra uniform edges over existing vertices
//
// Options:
//
//   - WithSeed(seed)   reproducible math/rand source
//   - WithRand(r)      caller-owned *rand.Rand (panics on nil)
//
// Errors:
//
//   - ErrTooFewVertices   size parameter below the constructor minimum
//   - ErrTooManyEdges     more distinct edges requested than exist
//   - ErrNeedRandSource   random constructor without an RNG
//   - ErrConstructFailed  nil constructor, or RandomEdges exhausted its redraws
//
// Same options, seed and constructor order always produce the same graph.
package builder
