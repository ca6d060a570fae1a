// Package twocolor decides whether undirected graphs are bipartite and, when
// they are not, proves it with an odd cycle.
//
// What is twocolor?
//
//	A small, thread-safe library built around one algorithm:
//		• core:      integer-indexed undirected graph (loops / parallel edges opt-in)
//		• builder:   deterministic and seeded random graph constructors
//		• bipartite: DFS two-colouring with odd-cycle witness + certificate check
//		• harness:   concurrent randomized self-checks with structured logging
//
// Layout:
//
//	core/      — Graph, Edge, text / YAML / msgpack codecs
//	builder/   — Constructor, BuildGraph, Path, Cycle, Grid, RandomBipartite, …
//	bipartite/ — New, Checker, Color, OddCycle, Partition, Verify
//	harness/   — Run, Report, Describe
//	examples/  — runnable demo programs
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╲ │
//	    3   2
//
// 0-1-2 is a triangle, so the graph is not bipartite; the checker reports the
// closed walk [0 1 2 0]. Remove the diagonal 0-2 and the colouring
// 0:false 1:true 2:false 3:true is returned instead.
//
//	go get github.com/katalvlaran/twocolor
package twocolor
