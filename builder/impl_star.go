// SPDX-License-Identifier: MIT
// Package: trafficpath/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Junction index 0 is the hub; leaves are indices 1..n-1.
//   - Spokes are emitted hub–leaf[i] in increasing leaf index.
//
// Complexity:
//   - Time: O(n) junctions + O(n-1) roads.

package builder

import (
	"fmt"

	"github.com/katalvlaran/trafficpath/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a hub with n-1 spokes.
func Star(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := ensureRoom(b, methodStar, n); err != nil {
			return err
		}
		hub, err := addJunctions(b, cfg, methodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addRoad(b, cfg, methodStar, hub, hub+i); err != nil {
				return err
			}
		}

		return nil
	}
}
