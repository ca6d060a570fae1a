// SPDX-License-Identifier: MIT
// Package: twocolor/core
//
// types.go — Graph, Edge, GraphOption, sentinel errors and the NewGraph constructor.
//
// Design:
//   • Vertices are dense indices [0,V); no string IDs, no metadata.
//   • Undirected only: every edge v–w is mirrored in adj[v] and adj[w]
//     (a self-loop is stored once in adj[v]).
//   • Unweighted only.
//   • One sync.RWMutex guards adjacency and counters.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates a negative vertex count was requested.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrVertexNotFound indicates an operation referenced an index outside [0,V).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMalformedInput indicates a serialized graph could not be parsed.
	ErrMalformedInput = errors.New("core: malformed graph input")
)

// Edge is an undirected connection between vertices V and W.
// Edges() reports each edge once with V <= W.
type Edge struct {
	V int
	W int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is an undirected graph over the vertex indices 0..V-1.
type Graph struct {
	mu sync.RWMutex // guards everything below

	// Configuration flags (immutable after NewGraph)
	allowLoops bool
	allowMulti bool

	// Storage
	edgeCount int     // number of undirected edges (a loop counts once)
	adj       [][]int // adj[v] lists the neighbours of v in insertion order
}

// NewGraph creates a Graph with v isolated vertices and the given options.
// By default the graph is simple: no loops, no multi-edges.
// Complexity: O(V).
func NewGraph(v int, opts ...GraphOption) (*Graph, error) {
	if v < 0 {
		return nil, fmt.Errorf("NewGraph: v=%d: %w", v, ErrNegativeVertexCount)
	}

	g := &Graph{adj: make([][]int, v)}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}
