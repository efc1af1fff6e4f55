// Package builder provides internal helper functions used by Constructor
// implementations to add junctions and roads.
package builder

import (
	"fmt"

	"github.com/katalvlaran/trafficpath/core"
)

// addJunctions appends n junctions named cfg.idFn(0..n-1) with lights from
// cfg.lightFn and returns the id of the first one.
// Complexity: O(n).
func addJunctions(b *core.Builder, cfg builderConfig, method string, n int) (int, error) {
	base := b.VertexCount()
	for i := 0; i < n; i++ {
		name := cfg.idFn(i)
		if _, err := b.AddVertex(name, cfg.lightFn(i, cfg.rng)); err != nil {
			return base, fmt.Errorf("%s: AddVertex(%s): %w", method, name, err)
		}
	}

	return base, nil
}

// addRoad draws a weight from cfg.weightFn and inserts the road u–v.
func addRoad(b *core.Builder, cfg builderConfig, method string, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if err := b.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// ensureRoom reports core.ErrCapacityExceeded before any junction is added,
// so a too-large request leaves the builder untouched.
func ensureRoom(b *core.Builder, method string, n int) error {
	if free := b.Capacity() - b.VertexCount(); n > free {
		return fmt.Errorf("%s: need %d junctions, %d free: %w", method, n, free, core.ErrCapacityExceeded)
	}

	return nil
}
