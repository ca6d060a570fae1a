// SPDX-License-Identifier: MIT
// Package: twocolor/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices); the rim C_{n-1} needs at least 3 vertices.
//   • Appends the rim b..b+n-2 (via Cycle) and then the hub b+n-1.
//   • Emits spokes hub–(b+i) for i=0..n-2 in increasing order.
//   • Every wheel contains triangles, so it is never bipartite.
//
// Complexity:
//   • Time: O(n) vertices + O(2n-2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/twocolor/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // outer cycle has size (n-1) which must be ≥ 3
)

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		// The rim starts at the current vertex count.
		rim := g.VertexCount()
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}

		hub, err := addBlock(g, methodWheel, 1)
		if err != nil {
			return err
		}

		// Connect spokes between the hub and each rim vertex in stable order.
		for i := 0; i < n-1; i++ {
			if err = addEdge(g, methodWheel, hub, rim+i); err != nil {
				return err
			}
		}

		return nil
	}
}
