// SPDX-License-Identifier: MIT
// Package: twocolor/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Appends n vertices b..b+n-1 (b = VertexCount() before the call).
//   - Emits edges (b+i-1)–(b+i) for i=1..n-1 in increasing order.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/twocolor/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		// Validate parameter domain early.
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		base, err := addBlock(g, methodPath, n)
		if err != nil {
			return err
		}

		// Emit path edges from base→base+1→…→base+n-1 in stable order.
		for i := 1; i < n; i++ {
			if err = addEdge(g, methodPath, base+i-1, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}
