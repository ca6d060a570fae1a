// SPDX-License-Identifier: MIT
// Package: twocolor/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbours per cell).
//   • Cell (r,c) is vertex b + r*cols + c (row-major).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each cell in row-major order emit Right then Bottom if present.
//   • Grids are always bipartite (colour = (r+c) mod 2).
//
// Complexity:
//   • Time: O(rows*cols) vertices + O(rows*cols) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/twocolor/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		base, err := addBlock(g, methodGrid, rows*cols)
		if err != nil {
			return err
		}

		// 2) Add right and bottom edges in row-major order.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := base + r*cols + c
				if c+1 < cols {
					if err = addEdge(g, methodGrid, id, id+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = addEdge(g, methodGrid, id, id+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
