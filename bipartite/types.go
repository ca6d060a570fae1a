// SPDX-License-Identifier: MIT
// Package: twocolor/bipartite
//
// types.go — Graph capability, Adjacency adapter, sentinel and typed errors.

package bipartite

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrGraphNil is returned when New or Verify receive a nil graph.
	ErrGraphNil = errors.New("bipartite: graph is nil")

	// ErrInvalidGraph indicates the graph violates the Graph contract
	// (negative vertex count, neighbour outside [0,V), asymmetric adjacency).
	ErrInvalidGraph = errors.New("bipartite: invalid graph")

	// ErrVertexOutOfRange is matched by every *VertexRangeError.
	ErrVertexOutOfRange = errors.New("bipartite: vertex out of range")

	// ErrNotBipartite is returned by colour queries on a non-bipartite graph.
	ErrNotBipartite = errors.New("bipartite: graph is not bipartite")

	// ErrCertificate is returned by Verify when a result contradicts the graph.
	ErrCertificate = errors.New("bipartite: certificate check failed")
)

// Graph is the read-only capability the checker needs.
// Neighbors must be symmetric: w appears in Neighbors(v) iff v appears in Neighbors(w).
type Graph interface {
	// VertexCount returns V; vertices are the indices 0..V-1.
	VertexCount() int
	// Neighbors returns the vertices adjacent to v, for v in [0,V).
	Neighbors(v int) []int
}

// Adjacency adapts a plain adjacency slice to Graph: a[v] lists the neighbours of v.
type Adjacency [][]int

// VertexCount returns len(a).
func (a Adjacency) VertexCount() int { return len(a) }

// Neighbors returns a[v] without copying; nil when v is out of range.
func (a Adjacency) Neighbors(v int) []int {
	if v < 0 || v >= len(a) {
		return nil
	}

	return a[v]
}

// VertexRangeError reports a vertex index outside [0, VertexCount).
type VertexRangeError struct {
	Vertex      int
	VertexCount int
}

// Error returns the error string.
func (e *VertexRangeError) Error() string {
	if e.VertexCount == 0 {
		return fmt.Sprintf("bipartite: vertex %d is out of range: graph has no vertices", e.Vertex)
	}

	return fmt.Sprintf("bipartite: vertex %d is not between 0 and %d", e.Vertex, e.VertexCount-1)
}

// Is makes errors.Is(err, ErrVertexOutOfRange) report true.
func (e *VertexRangeError) Is(target error) bool {
	return target == ErrVertexOutOfRange
}

// isNilGraph reports whether g is nil or wraps a nil pointer.
func isNilGraph(g Graph) bool {
	if g == nil {
		return true
	}
	rv := reflect.ValueOf(g)

	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
