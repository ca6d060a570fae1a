// SPDX-License-Identifier: MIT
// Package: twocolor/builder
//
// impl_random_simple.go - RandomSimple(n, e) and RandomEdges(f) constructors.
//
// RandomSimple model:
//   - Uniform over simple graphs with exactly e edges: draw pairs (v,w), v≠w,
//     uniformly and keep each unordered pair the first time it is drawn.
//
// RandomEdges model:
//   - Draw f pairs (v,w) uniformly over the vertices already in g and add them.
//   - Pairs the graph policy rejects (self-loop / parallel edge) are redrawn,
//     at most maxRandomEdgeDraws times per edge.
//
// Contract:
//   - RandomSimple: n ≥ 1 (ErrTooFewVertices); 0 ≤ e ≤ n(n-1)/2 (ErrTooManyEdges);
//     rng required when e > 0 (ErrNeedRandSource).
//   - RandomEdges: f ≥ 0 (ErrTooManyEdges); g must have vertices when f > 0
//     (ErrTooFewVertices); rng required when f > 0 (ErrNeedRandSource).
//
// Determinism:
//   - Edge order equals draw order; the draw sequence is fixed by the seed.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/twocolor/core"
)

const (
	methodRandomSimple      = "RandomSimple"
	methodRandomEdges       = "RandomEdges"
	minRandomSimpleVertices = 1
	maxRandomEdgeDraws      = 1024
)

// pairKey is an unordered vertex pair normalized to lo <= hi.
type pairKey struct{ lo, hi int }

func newPairKey(v, w int) pairKey {
	if v > w {
		v, w = w, v
	}

	return pairKey{lo: v, hi: w}
}

// RandomSimple returns a Constructor that samples a simple graph with n
// vertices and exactly e distinct edges.
func RandomSimple(n, e int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (zero side-effects on invalid input).
		if n < minRandomSimpleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSimple, n, minRandomSimpleVertices, ErrTooFewVertices)
		}
		if maxEdges := n * (n - 1) / 2; e < 0 || e > maxEdges {
			return fmt.Errorf("%s: e=%d not in [0,%d]: %w", methodRandomSimple, e, maxEdges, ErrTooManyEdges)
		}
		if cfg.rng == nil && e > 0 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSimple, ErrNeedRandSource)
		}

		base, err := addBlock(g, methodRandomSimple, n)
		if err != nil {
			return err
		}

		// 2) Rejection-sample distinct unordered pairs.
		seen := make(map[pairKey]struct{}, e)
		for len(seen) < e {
			v := cfg.rng.Intn(n)
			w := cfg.rng.Intn(n)
			if v == w {
				continue
			}
			key := newPairKey(v, w)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			if err = addEdge(g, methodRandomSimple, base+v, base+w); err != nil {
				return err
			}
		}

		return nil
	}
}

// RandomEdges returns a Constructor that adds f uniformly random edges between
// vertices already present in g. On graphs built WithLoops/WithMultiEdges every
// draw is accepted; on simple graphs rejected draws are repeated.
func RandomEdges(f int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if f < 0 {
			return fmt.Errorf("%s: f=%d < 0: %w", methodRandomEdges, f, ErrTooManyEdges)
		}
		if f == 0 {
			return nil
		}

		n := g.VertexCount()
		if n == 0 {
			return fmt.Errorf("%s: graph has no vertices: %w", methodRandomEdges, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomEdges, ErrNeedRandSource)
		}

		for k := 0; k < f; k++ {
			if err := addRandomEdge(g, cfg, n); err != nil {
				return fmt.Errorf("%s: edge %d: %w", methodRandomEdges, k, err)
			}
		}

		return nil
	}
}

// addRandomEdge draws pairs over [0,n) until g accepts one.
func addRandomEdge(g *core.Graph, cfg builderConfig, n int) error {
	for attempt := 0; attempt < maxRandomEdgeDraws; attempt++ {
		v := cfg.rng.Intn(n)
		w := cfg.rng.Intn(n)

		err := g.AddEdge(v, w)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, core.ErrLoopNotAllowed), errors.Is(err, core.ErrMultiEdgeNotAllowed):
			continue // policy rejected the pair; draw again
		default:
			return err
		}
	}

	return fmt.Errorf("no admissible pair after %d draws: %w", maxRandomEdgeDraws, ErrConstructFailed)
}
