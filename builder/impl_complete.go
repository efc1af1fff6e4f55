// SPDX-License-Identifier: MIT
// Package: trafficpath/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits every unordered pair i<j, i ascending then j ascending.
//
// Complexity:
//   - Time: O(n) junctions + O(n²) roads.

package builder

import (
	"fmt"

	"github.com/katalvlaran/trafficpath/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that connects every pair of n junctions.
func Complete(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := ensureRoom(b, methodComplete, n); err != nil {
			return err
		}
		base, err := addJunctions(b, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addRoad(b, cfg, methodComplete, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
