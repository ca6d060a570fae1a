// SPDX-License-Identifier: MIT
// Package: twocolor/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Appends the hub b followed by leaves b+1..b+n-1.
//   • Emits spokes b–(b+i) for i=1..n-1 in increasing order.
//
// Complexity:
//   • Time: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/twocolor/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hub, err := addBlock(g, methodStar, n)
		if err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			if err = addEdge(g, methodStar, hub, hub+i); err != nil {
				return err
			}
		}

		return nil
	}
}
