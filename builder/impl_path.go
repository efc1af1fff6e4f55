// SPDX-License-Identifier: MIT
// Package: trafficpath/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds junctions via cfg.idFn/cfg.lightFn in ascending index order.
//   - Emits roads i–(i+1) for i = 0..n-2 in that order.
//
// Complexity:
//   - Time: O(n) junctions + O(n-1) roads.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/trafficpath/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path of n junctions.
func Path(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := ensureRoom(b, methodPath, n); err != nil {
			return err
		}
		base, err := addJunctions(b, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addRoad(b, cfg, methodPath, base+i, base+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
