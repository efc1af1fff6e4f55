// SPDX-License-Identifier: MIT
// Package: trafficpath/builder
//
// light_fn.go - traffic light generators for synthetic junctions.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/trafficpath/light"
)

// LightFn produces the light cycle of junction idx given an optional RNG.
// It must be deterministic for a given (idx, RNG state).
type LightFn func(idx int, rng *rand.Rand) light.Cycle

// DefaultLightFn gives every junction light.Default().
func DefaultLightFn(_ int, _ *rand.Rand) light.Cycle {
	return light.Default()
}

// NoLightFn gives every junction the degenerate, always passable cycle.
func NoLightFn(_ int, _ *rand.Rand) light.Cycle {
	return light.Cycle{}
}

// FixedLightFn returns a LightFn yielding c for every junction.
// Panics if any phase is negative.
func FixedLightFn(c light.Cycle) LightFn {
	if c.Red < 0 || c.Green < 0 || c.Yellow < 0 {
		panic(fmt.Sprintf("FixedLightFn: phases must be ≥ 0, got %+v", c))
	}
	return func(_ int, _ *rand.Rand) light.Cycle {
		return c
	}
}

// UniformLightFn returns a LightFn drawing each phase uniformly from
// [0, maxPhase] inclusive. Panics if any bound is negative.
// A nil rng yields light.Default().
func UniformLightFn(maxRed, maxGreen, maxYellow int64) LightFn {
	if maxRed < 0 || maxGreen < 0 || maxYellow < 0 {
		panic(fmt.Sprintf("UniformLightFn: bounds must be ≥ 0, got (%d,%d,%d)", maxRed, maxGreen, maxYellow))
	}
	return func(_ int, rng *rand.Rand) light.Cycle {
		if rng == nil {
			return light.Default()
		}

		return light.New(rng.Int63n(maxRed+1), rng.Int63n(maxGreen+1), rng.Int63n(maxYellow+1))
	}
}
