// SPDX-License-Identifier: MIT
// Package: trafficpath/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates a
//     core.Builder, resolves cfg, runs cons in order, returns the snapshot.
//   - Constructors append junctions after whatever earlier constructors
//     added, so several topologies can share one network.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/trafficpath/core"
)

// Constructor applies a deterministic mutation to b using the resolved
// builderConfig. Constructors validate parameters before adding anything,
// emit junctions and roads in a documented order, and return sentinel errors.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildGraph creates a core.Builder with gopts, resolves the builder
// configuration from bopts, applies all constructors in order and returns
// the built snapshot. Any constructor error is wrapped with "BuildGraph: %w".
//
// The junction count must fit the builder capacity (core.WithCapacity);
// otherwise the wrapped core.ErrCapacityExceeded is returned.
//
// Complexity: O(len(bopts)) + Σ cost of constructors + O(V+E) for Build.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	b := core.NewBuilder(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return b.Build(), nil
}

// Apply runs constructors against an existing builder, e.g. one derived from
// a loaded network via Graph.Builder().
func Apply(b *core.Builder, bopts []BuilderOption, cons ...Constructor) error {
	if b == nil {
		return fmt.Errorf("Apply: nil builder: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
//	Path(n)             n ≥ 2   junctions 0..n-1, roads i–(i+1)
//	Cycle(n)            n ≥ 3   Path plus (n-1)–0
//	Star(n)             n ≥ 2   hub 0, leaves 1..n-1
//	Wheel(n)            n ≥ 4   rim Cycle(n-1) on 1..n-1 plus hub 0 spokes
//	Complete(n)         n ≥ 1   every unordered pair
//	Grid(rows, cols)    ≥ 1×1   names "r,c", right then bottom neighbour
//	RandomSparse(n, p)  n ≥ 1   each unordered pair with probability p
