// SPDX-License-Identifier: MIT
// Package: twocolor/bipartite
//
// checker.go — Checker construction (DFS two-colouring) and read-only queries.
//
// Contract:
//   • New runs the whole analysis; queries never traverse the graph again.
//   • Roots are taken in increasing vertex order; within a component the
//     order of Neighbors(v) decides the traversal and therefore the witness.
//   • The first colour conflict ends the traversal; its witness is kept.
//   • Root vertices get colour false.
//
// Complexity:
//   • Time: O(V + E). Each vertex is pushed once, each adjacency entry read once.
//   • Space: O(V) (marked, color, edgeTo, frame stack).

package bipartite

import "fmt"

// noParent marks roots in edgeTo.
const noParent = -1

// Checker holds the outcome of a bipartiteness check.
// A Checker is immutable after New and safe for concurrent reads.
type Checker struct {
	bipartite bool
	marked    []bool // marked[v]: v was reached by the traversal
	color     []bool // meaningful only when marked[v]
	edgeTo    []int  // DFS tree parent of v, noParent for roots
	cycle     []int  // odd-cycle witness, nil while bipartite
}

// frame is one suspended visit: vertex v with its neighbours, resuming at next.
type frame struct {
	v    int
	nbrs []int
	next int
}

// walker carries traversal state that does not outlive New.
type walker struct {
	g     Graph
	c     *Checker
	stack []frame
}

// New analyses g and returns the immutable result.
//
// Errors:
//   - ErrGraphNil if g is nil or a typed-nil pointer.
//   - ErrInvalidGraph if g reports a negative vertex count, a neighbour outside
//     [0,V), or an asymmetric adjacency that prevents cycle reconstruction.
func New(g Graph) (*Checker, error) {
	if isNilGraph(g) {
		return nil, ErrGraphNil
	}

	n := g.VertexCount()
	if n < 0 {
		return nil, fmt.Errorf("%w: vertex count %d", ErrInvalidGraph, n)
	}

	c := &Checker{
		bipartite: true,
		marked:    make([]bool, n),
		color:     make([]bool, n),
		edgeTo:    make([]int, n),
	}
	for v := range c.edgeTo {
		c.edgeTo[v] = noParent
	}

	w := &walker{g: g, c: c}
	// One traversal per component; stop scheduling roots after the first conflict.
	for v := 0; v < n && c.bipartite; v++ {
		if !c.marked[v] {
			if err := w.traverse(v); err != nil {
				return nil, err
			}
		}
	}

	return c, nil
}

// traverse explores the component of root with an explicit frame stack.
// It is the iterative form of:
//
//	visit(v): mark v; for each w in Neighbors(v):
//	    if a witness exists: return
//	    if !marked[w]: edgeTo[w]=v; color[w]=!color[v]; visit(w)
//	    else if color[w]==color[v]: record witness from (v,w)
func (w *walker) traverse(root int) error {
	c := w.c
	n := len(c.marked)

	c.marked[root] = true
	w.stack = append(w.stack[:0], frame{v: root, nbrs: w.g.Neighbors(root)})

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]

		// A recorded witness unwinds every pending frame without more work.
		if c.cycle != nil || top.next == len(top.nbrs) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		v := top.v
		x := top.nbrs[top.next]
		top.next++ // top must not be used after the append below

		if x < 0 || x >= n {
			return fmt.Errorf("%w: vertex %d lists neighbour %d outside [0,%d)", ErrInvalidGraph, v, x, n)
		}

		switch {
		case !c.marked[x]:
			// Tree edge: x takes the opposite colour and is visited next.
			c.edgeTo[x] = v
			c.color[x] = !c.color[v]
			c.marked[x] = true
			w.stack = append(w.stack, frame{v: x, nbrs: w.g.Neighbors(x)})
		case c.color[x] == c.color[v]:
			cycle, err := c.witness(v, x)
			if err != nil {
				return err
			}
			c.bipartite = false
			c.cycle = cycle
		}
	}

	return nil
}

// witness rebuilds the odd cycle closed by the conflicting edge v–w, where w is
// a DFS ancestor of v (or v itself). The result reads w, …, v, w.
func (c *Checker) witness(v, w int) ([]int, error) {
	// Collect w, v, parent(v), …, child-of-w, w (the order a stack would be pushed in).
	cycle := []int{w}
	for x := v; x != w; x = c.edgeTo[x] {
		if x == noParent {
			// Only reachable when Neighbors is not symmetric.
			return nil, fmt.Errorf("%w: vertex %d is not an ancestor of %d; adjacency is not symmetric",
				ErrInvalidGraph, w, v)
		}
		cycle = append(cycle, x)
	}
	cycle = append(cycle, w)

	// Present it in pop order: w, child-of-w, …, v, w.
	for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	}

	return cycle, nil
}

// IsBipartite reports whether the graph is two-colourable.
func (c *Checker) IsBipartite() bool {
	return c.bipartite
}

// VertexCount returns the V the checker was built for.
func (c *Checker) VertexCount() int {
	return len(c.marked)
}

// Color returns the side of v in the two-colouring.
//
// Errors:
//   - *VertexRangeError (errors.Is ErrVertexOutOfRange) if v is outside [0,V).
//   - ErrNotBipartite if the graph has an odd cycle.
func (c *Checker) Color(v int) (bool, error) {
	if err := c.validateVertex(v); err != nil {
		return false, err
	}
	if !c.bipartite {
		return false, fmt.Errorf("Color(%d): %w", v, ErrNotBipartite)
	}

	return c.color[v], nil
}

// OddCycle returns a copy of the odd-cycle witness, or nil when the graph is bipartite.
func (c *Checker) OddCycle() []int {
	if c.cycle == nil {
		return nil
	}

	return append([]int(nil), c.cycle...)
}

// Partition splits the vertices by colour: left holds colour false, right colour true,
// each in ascending order. Returns ErrNotBipartite for a non-bipartite graph.
func (c *Checker) Partition() (left, right []int, err error) {
	if !c.bipartite {
		return nil, nil, fmt.Errorf("Partition: %w", ErrNotBipartite)
	}

	left = make([]int, 0, len(c.color))
	right = make([]int, 0, len(c.color))
	for v, side := range c.color {
		if side {
			right = append(right, v)
		} else {
			left = append(left, v)
		}
	}

	return left, right, nil
}

// validateVertex checks v against [0,V).
func (c *Checker) validateVertex(v int) error {
	if v < 0 || v >= len(c.marked) {
		return &VertexRangeError{Vertex: v, VertexCount: len(c.marked)}
	}

	return nil
}
