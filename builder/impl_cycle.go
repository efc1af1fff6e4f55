// SPDX-License-Identifier: MIT
// Package: trafficpath/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Roads i–(i+1) for i = 0..n-2, then the closing road (n-1)–0.
//
// Complexity:
//   - Time: O(n) junctions + O(n) roads.

package builder

import (
	"fmt"

	"github.com/katalvlaran/trafficpath/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a ring road of n junctions.
func Cycle(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := ensureRoom(b, methodCycle, n); err != nil {
			return err
		}
		base, err := addJunctions(b, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addRoad(b, cfg, methodCycle, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
