// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/EdgeCount/Edges, plus Clone.
// Determinism:
//   - Edges() is ordered by the lower endpoint, then by adjacency insertion order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import "fmt"

// AddEdge adds the undirected edge v–w.
//
// Steps:
//  1. Validate both indices (ErrVertexNotFound).
//  2. Reject v == w unless WithLoops (ErrLoopNotAllowed).
//  3. Reject an existing v–w unless WithMultiEdges (ErrMultiEdgeNotAllowed).
//  4. Append w to adj[v] and, for v != w, v to adj[w].
//
// Complexity: O(deg(v)) for the parallel-edge scan, O(1) otherwise.
func (g *Graph) AddEdge(v, w int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Input validation
	if err := g.validateVertex(v); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", v, w, err)
	}
	if err := g.validateVertex(w); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", v, w, err)
	}
	if v == w && !g.allowLoops { // loop constraint
		return fmt.Errorf("AddEdge(%d,%d): %w", v, w, ErrLoopNotAllowed)
	}
	if !g.allowMulti && g.hasEdge(v, w) { // multi-edge constraint
		return fmt.Errorf("AddEdge(%d,%d): %w", v, w, ErrMultiEdgeNotAllowed)
	}

	// 2) Link adjacency, mirrored unless it is a loop
	g.adj[v] = append(g.adj[v], w)
	if v != w {
		g.adj[w] = append(g.adj[w], v)
	}
	g.edgeCount++

	return nil
}

// HasEdge reports whether at least one edge v–w exists.
// Out-of-range indices report false.
func (g *Graph) HasEdge(v, w int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.adj) || w < 0 || w >= len(g.adj) {
		return false
	}

	return g.hasEdge(v, w)
}

// hasEdge scans adj[v] for w. Caller must hold g.mu.
func (g *Graph) hasEdge(v, w int) bool {
	for _, x := range g.adj[v] {
		if x == w {
			return true
		}
	}

	return false
}

// EdgeCount returns E; a self-loop counts as one edge.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every edge once, with V <= W.
// Complexity: O(V+E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for v, nbrs := range g.adj {
		for _, w := range nbrs {
			// The mirror entry of v–w lives in adj[w]; report from the lower side only.
			if v <= w {
				out = append(out, Edge{V: v, W: w})
			}
		}
	}

	return out
}

// Clone returns a deep copy of g with identical flags, vertices and adjacency order.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		edgeCount:  g.edgeCount,
		adj:        make([][]int, len(g.adj)),
	}
	for v, nbrs := range g.adj {
		if len(nbrs) > 0 {
			clone.adj[v] = append([]int(nil), nbrs...)
		}
	}

	return clone
}
