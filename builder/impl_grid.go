// SPDX-License-Identifier: MIT
// Package: trafficpath/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal street grid with 4-neighbourhood.
//   • Junction names use the fixed scheme "r,c" (row-major order); this is a
//     deliberate exception to cfg.idFn to keep coordinates explicit.
//   • Junction (r,c) gets Lat = r*GridSpacing, Lon = c*GridSpacing so map
//     exports draw the grid as a grid.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) emit Right then Bottom road if the neighbour exists.
//   • Lights come from cfg.lightFn with the row-major index.
//
// Complexity:
//   • Time: O(rows*cols) junctions + O(2*rows*cols) roads.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/trafficpath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridSpacing is the coordinate distance between neighbouring grid junctions.
const GridSpacing = 0.01

// Grid returns a Constructor that builds a rows×cols street grid.
func Grid(rows, cols int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := ensureRoom(b, methodGrid, rows*cols); err != nil {
			return err
		}

		base := b.VertexCount()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				name := fmt.Sprintf(gridIDFmt, r, c)
				lc := cfg.lightFn(r*cols+c, cfg.rng)
				if _, err := b.AddVertexAt(name, lc, float64(r)*GridSpacing, float64(c)*GridSpacing); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, name, err)
				}
			}
		}

		at := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addRoad(b, cfg, methodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addRoad(b, cfg, methodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
