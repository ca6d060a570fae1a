// File: methods_vertices.go
// Role: Vertex lifecycle & per-vertex queries: AddVertex/AddVertices/VertexCount/Degree/Neighbors.
// Determinism:
//   - New vertices always receive the next free index.
//   - Neighbors() preserves edge insertion order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import "fmt"

// AddVertex appends one isolated vertex and returns its index.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj = append(g.adj, nil)

	return len(g.adj) - 1
}

// AddVertices appends n isolated vertices and returns the index of the first one.
// With n == 0 it returns VertexCount() and changes nothing.
// Complexity: O(n).
func (g *Graph) AddVertices(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("AddVertices: n=%d: %w", n, ErrNegativeVertexCount)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	first := len(g.adj)
	g.adj = append(g.adj, make([][]int, n)...)

	return first, nil
}

// VertexCount returns V.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// Degree returns the number of adjacency entries of v.
// A self-loop contributes one, a parallel edge contributes once per copy.
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.validateVertex(v); err != nil {
		return 0, err
	}

	return len(g.adj[v]), nil
}

// Neighbors returns a copy of the adjacency list of v in insertion order.
// An index outside [0,V) yields nil; use Degree to distinguish that case.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.adj) {
		return nil
	}

	// Copy so callers cannot reach into the adjacency storage.
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])

	return out
}

// validateVertex checks v against [0,V). Caller must hold g.mu.
func (g *Graph) validateVertex(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("vertex %d not in [0,%d): %w", v, len(g.adj), ErrVertexNotFound)
	}

	return nil
}
