// Package core provides a thread-safe, integer-indexed undirected Graph used as
// the input representation for the twocolor algorithms.
//
// Vertices are dense indices 0..V-1; edges are stored as symmetric adjacency
// lists, so the neighbours of v are returned in the order the edges were added.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (v == w); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithMultiEdges()
//	    Allows several parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(v,w) → ErrMultiEdgeNotAllowed.
//
// Core Methods:
//
//	NewGraph(v int, opts ...GraphOption) (*Graph, error) // O(V)
//	AddVertex() int                                       // O(1) amortized
//	AddVertices(n int) (first int, err error)             // O(n)
//	AddEdge(v, w int) error                               // O(deg(v)) with the multi-edge check
//	HasEdge(v, w int) bool                                // O(deg(v))
//	Neighbors(v int) []int                                // O(deg(v)), copy
//	Degree(v int) (int, error)                            // O(1)
//	VertexCount(), EdgeCount()                            // O(1)
//	Edges() []Edge                                        // O(V+E)
//	Clone() *Graph                                        // O(V+E)
//
// Text formats:
//
//	String()        "<V> vertices, <E> edges" header followed by "v: w1 w2 …" lines
//	ReadGraph(r)    classic whitespace format: V, E, then E pairs "v w"
//	DecodeYAML(b)   {vertices: 3, loops: false, multi: false, edges: [[0,1],[1,2]]}
//	EncodeMsgpack / DecodeMsgpack   the same document as compact msgpack
//
// Errors:
//
//	ErrNegativeVertexCount - NewGraph/AddVertices with a negative count.
//	ErrVertexNotFound      - index outside [0,V).
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrMalformedInput      - ReadGraph/DecodeYAML/DecodeMsgpack could not parse the document.
//
// All methods guard state with a single sync.RWMutex; reads may run concurrently.
package core
