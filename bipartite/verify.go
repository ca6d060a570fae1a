// SPDX-License-Identifier: MIT
// Package: twocolor/bipartite
//
// verify.go — independent certificate check of a Checker against its graph.
//
// Contract:
//   • Bipartite result: every adjacency entry v→w satisfies Color(v) != Color(w).
//   • Non-bipartite result: OddCycle is closed (first == last), spans an odd
//     number of edges, and every consecutive pair is adjacent in g.
//   • Never panics; every failure wraps ErrCertificate.
//
// Complexity: O(V + E) for the colouring, O(L·deg) for a witness of length L.

package bipartite

import "fmt"

// Verify certifies that c is a correct result for g.
func Verify(g Graph, c *Checker) error {
	if isNilGraph(g) {
		return ErrGraphNil
	}
	if c == nil {
		return fmt.Errorf("%w: checker is nil", ErrCertificate)
	}

	n := g.VertexCount()
	if n != c.VertexCount() {
		return fmt.Errorf("%w: graph has %d vertices, checker %d", ErrCertificate, n, c.VertexCount())
	}

	if c.IsBipartite() {
		return verifyColoring(g, c)
	}

	return verifyOddCycle(g, c.OddCycle())
}

// verifyColoring checks every edge of g joins vertices of different colours.
func verifyColoring(g Graph, c *Checker) error {
	for v := 0; v < c.VertexCount(); v++ {
		if !c.marked[v] {
			return fmt.Errorf("%w: vertex %d was never coloured", ErrCertificate, v)
		}
		for _, w := range g.Neighbors(v) {
			if w < 0 || w >= c.VertexCount() {
				return fmt.Errorf("%w: vertex %d lists neighbour %d", ErrCertificate, v, w)
			}
			if c.color[v] == c.color[w] {
				return fmt.Errorf("%w: edge %d-%d joins equal colours", ErrCertificate, v, w)
			}
		}
	}

	return nil
}

// verifyOddCycle checks the witness is a closed walk of odd length over edges of g.
func verifyOddCycle(g Graph, cycle []int) error {
	if len(cycle) < 2 {
		return fmt.Errorf("%w: witness %v is too short", ErrCertificate, cycle)
	}
	if cycle[0] != cycle[len(cycle)-1] {
		return fmt.Errorf("%w: witness %v is not closed", ErrCertificate, cycle)
	}
	if edges := len(cycle) - 1; edges%2 == 0 {
		return fmt.Errorf("%w: witness %v spans %d edges", ErrCertificate, cycle, edges)
	}

	n := g.VertexCount()
	for i := 0; i+1 < len(cycle); i++ {
		u, w := cycle[i], cycle[i+1]
		if u < 0 || u >= n {
			return fmt.Errorf("%w: witness vertex %d out of range", ErrCertificate, u)
		}
		if !contains(g.Neighbors(u), w) {
			return fmt.Errorf("%w: witness step %d-%d is not an edge", ErrCertificate, u, w)
		}
	}

	return nil
}

// contains reports whether x occurs in s.
func contains(s []int, x int) bool {
	for _, y := range s {
		if y == x {
			return true
		}
	}

	return false
}
