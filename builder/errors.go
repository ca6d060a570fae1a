// SPDX-License-Identifier: MIT
// Package: twocolor/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with `%w`:
//       fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
//   • Validation order when several checks fail: sizes, then edge budget, then RNG.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, n1, rows, ...) is
// smaller than the allowed minimum for the requested constructor, or that
// RandomEdges was applied to a graph without vertices.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooManyEdges indicates a random constructor was asked for more distinct
// edges than the vertex set admits (or a negative count).
var ErrTooManyEdges = errors.New("builder: edge count out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder could not complete a
// construction: a nil constructor was passed, or RandomEdges ran out of
// redraws because the graph policy rejected every candidate pair.
var ErrConstructFailed = errors.New("builder: construction failed")
