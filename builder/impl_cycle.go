// SPDX-License-Identifier: MIT
// Package: twocolor/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Appends n vertices b..b+n-1 (b = VertexCount() before the call).
//   • Emits edges in stable order (b+i)–(b+(i+1)%n) for i=0..n-1.
//   • C_n is bipartite iff n is even.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/twocolor/core"
)

// File-local constants (stable method tags).
const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		base, err := addBlock(g, methodCycle, n)
		if err != nil {
			return err
		}

		// Emit edges in ascending i; for i==n-1, connect back to base to close the ring.
		for i := 0; i < n; i++ {
			if err = addEdge(g, methodCycle, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
