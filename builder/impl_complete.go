// SPDX-License-Identifier: MIT
// Package: twocolor/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Appends n vertices b..b+n-1.
//   • Emits every unordered pair {i,j}, i<j, in lexicographic order.
//   • K_n is bipartite iff n ≤ 2.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges; the multi-edge check in core makes
//     each insertion O(deg), so O(n³) overall on simple graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/twocolor/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		// K_n is defined for n≥1.
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		base, err := addBlock(g, methodComplete, n)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ { // outer endpoint index
			for j := i + 1; j < n; j++ { // right endpoint index (strictly greater)
				if err = addEdge(g, methodComplete, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
