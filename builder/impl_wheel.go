// SPDX-License-Identifier: MIT
// Package: trafficpath/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - Junction index 0 is the hub; indices 1..n-1 form the rim ring.
//   - Rim roads are emitted first (1–2, ..., (n-1)–1), then spokes 0–i.
//
// Complexity:
//   - Time: O(n) junctions + O(2n-2) roads.

package builder

import (
	"fmt"

	"github.com/katalvlaran/trafficpath/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a ring of n-1 junctions around a hub.
func Wheel(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := ensureRoom(b, methodWheel, n); err != nil {
			return err
		}
		hub, err := addJunctions(b, cfg, methodWheel, n)
		if err != nil {
			return err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err = addRoad(b, cfg, methodWheel, hub+1+i, hub+1+(i+1)%rim); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err = addRoad(b, cfg, methodWheel, hub, hub+i); err != nil {
				return err
			}
		}

		return nil
	}
}
