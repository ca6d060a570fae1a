// Package bipartite decides whether an undirected graph is two-colourable and,
// when it is not, returns an odd cycle proving it.
//
// What:
//
//   - New(g) runs one depth-first traversal over every connected component of
//     g (roots in increasing vertex order), two-colouring vertices as it goes.
//     The first edge joining two equally coloured vertices disproves
//     bipartiteness; the odd cycle is rebuilt from the DFS parent pointers and
//     the traversal stops.
//   - The result is computed once, inside New, and is immutable afterwards.
//
// Input:
//
//	type Graph interface {
//		VertexCount() int
//		Neighbors(v int) []int
//	}
//
// *core.Graph satisfies it; Adjacency adapts a plain [][]int.
//
// Queries:
//
//   - IsBipartite() bool
//   - Color(v) (bool, error)          VertexRangeError / ErrNotBipartite
//   - OddCycle() []int                closed walk w … v w, nil when bipartite
//   - Partition() (left, right, error)
//   - Verify(g, c) error              independent certificate check
//
// Witness shape:
//
//	For a conflict found on edge v–w, where w is a DFS ancestor of v (or v
//	itself for a self-loop), OddCycle returns
//
//	    [w, child-of-w, …, parent-of-v, v, w]
//
//	so the first and last entries coincide and the walk spans an odd number
//	of edges. The triangle 0-1-2 yields a 4-element witness such as [0 1 2 0].
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for marks, colours, parents and the explicit frame stack.
//
// The traversal keeps its own stack of frames instead of recursing, so very
// deep components (long paths) do not grow the goroutine stack.
//
// Errors:
//
//   - ErrGraphNil          New(nil) or a typed-nil pointer
//   - ErrInvalidGraph      negative vertex count, neighbour outside [0,V),
//     asymmetric adjacency discovered during cycle reconstruction
//   - ErrVertexOutOfRange  matched by *VertexRangeError
//   - ErrNotBipartite      colour or partition requested for a non-bipartite graph
//   - ErrCertificate       Verify found an inconsistent result
package bipartite
