// File: format.go
// Role: Plain-text rendering (String) and parsing (ReadGraph) of graphs.
//
// Text format read by ReadGraph (whitespace separated, newlines irrelevant):
//
//	V
//	E
//	v0 w0
//	v1 w1
//	...
//
// String renders the adjacency view:
//
//	3 vertices, 2 edges
//	0: 1
//	1: 0 2
//	2: 1

package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String renders the header line followed by one "v: neighbours" line per vertex.
// Complexity: O(V+E).
func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d vertices, %d edges\n", len(g.adj), g.edgeCount)
	for v, nbrs := range g.adj {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte(':')
		for _, w := range nbrs {
			sb.WriteByte(' ')
			sb.WriteString(strconv.Itoa(w))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// ReadGraph parses the "V E pairs…" text format into a new Graph built with opts.
// Tokens after the E-th pair are ignored.
//
// Errors:
//   - ErrMalformedInput: missing or non-integer token, negative E.
//   - ErrNegativeVertexCount: negative V.
//   - any AddEdge error (ErrVertexNotFound, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed).
func ReadGraph(r io.Reader, opts ...GraphOption) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	// next reads one integer token; what names it in error messages.
	next := func(what string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("ReadGraph: %s: %w", what, err)
			}
			return 0, fmt.Errorf("ReadGraph: %s: unexpected end of input: %w", what, ErrMalformedInput)
		}
		n, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("ReadGraph: %s: %q is not an integer: %w", what, sc.Text(), ErrMalformedInput)
		}

		return n, nil
	}

	v, err := next("vertex count")
	if err != nil {
		return nil, err
	}
	e, err := next("edge count")
	if err != nil {
		return nil, err
	}
	if e < 0 {
		return nil, fmt.Errorf("ReadGraph: edge count %d: %w", e, ErrMalformedInput)
	}

	g, err := NewGraph(v, opts...)
	if err != nil {
		return nil, fmt.Errorf("ReadGraph: %w", err)
	}

	var a, b int
	for i := 0; i < e; i++ {
		if a, err = next(fmt.Sprintf("edge %d", i)); err != nil {
			return nil, err
		}
		if b, err = next(fmt.Sprintf("edge %d", i)); err != nil {
			return nil, err
		}
		if err = g.AddEdge(a, b); err != nil {
			return nil, fmt.Errorf("ReadGraph: edge %d: %w", i, err)
		}
	}

	return g, nil
}
