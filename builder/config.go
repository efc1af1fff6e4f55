// SPDX-License-Identifier: MIT
// Package: trafficpath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn     = JunctionIDFn        ("J0","J1",...)
//   • rng      = nil                 (pure unless seeded)
//   • weightFn = constant DefaultEdgeWeight
//   • lightFn  = DefaultLightFn      (10,5,2 at every junction)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand // nil means "no randomness"
	weightFn WeightFn
	lightFn  LightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     JunctionIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
		lightFn:  DefaultLightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
