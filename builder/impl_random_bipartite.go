// SPDX-License-Identifier: MIT
// Package: twocolor/builder
//
// impl_random_bipartite.go - RandomBipartite(n1, n2, e) constructor.
//
// Model:
//   - Append n1+n2 vertices and shuffle them; the first n1 of the permutation
//     form the left side, the rest the right side, so sides are not contiguous.
//   - Draw (i,j) uniformly from left×right and keep each pair the first time.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (ErrTooFewVertices).
//   - 0 ≤ e ≤ n1·n2 (ErrTooManyEdges).
//   - rng is always required (the shuffle is random) (ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n1+n2) + expected O(e·log e) draws when e ≪ n1·n2.

package builder

import (
	"fmt"

	"github.com/katalvlaran/twocolor/core"
)

const methodRandomBipartite = "RandomBipartite"

// RandomBipartite returns a Constructor that samples a bipartite graph with
// sides of n1 and n2 vertices and exactly e distinct cross edges.
func RandomBipartite(n1, n2, e int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodRandomBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		if maxEdges := n1 * n2; e < 0 || e > maxEdges {
			return fmt.Errorf("%s: e=%d not in [0,%d]: %w", methodRandomBipartite, e, maxEdges, ErrTooManyEdges)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomBipartite, ErrNeedRandSource)
		}

		base, err := addBlock(g, methodRandomBipartite, n1+n2)
		if err != nil {
			return err
		}

		// perm[0:n1] is the left side, perm[n1:] the right side (offsets from base).
		perm := cfg.rng.Perm(n1 + n2)

		seen := make(map[pairKey]struct{}, e)
		for len(seen) < e {
			i := cfg.rng.Intn(n1)
			j := cfg.rng.Intn(n2)
			key := newPairKey(i, n1+j)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			if err = addEdge(g, methodRandomBipartite, base+perm[i], base+perm[n1+j]); err != nil {
				return err
			}
		}

		return nil
	}
}
