// SPDX-License-Identifier: MIT
// Package: twocolor/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Appends the left side b..b+n1-1, then the right side b+n1..b+n1+n2-1.
//   • Emits every cross pair L_i–R_j, i asc over L, inner j asc over R.
//
// Complexity:
//   • Time: O(n1 + n2) vertices + O(n1·n2) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/twocolor/core"
)

// File-local constants for method tag and minima (no magic numbers).
const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		// Early validation: both partitions must be non-empty.
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		left, err := addBlock(g, methodCompleteBipartite, n1+n2)
		if err != nil {
			return err
		}
		right := left + n1

		// Emit all cross edges in stable (i over left, j over right) order.
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err = addEdge(g, methodCompleteBipartite, left+i, right+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
