// SPDX-License-Identifier: MIT
// Package: trafficpath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w: "<Method>: <detail>: %w".
//   • Constructors never panic; validation panics are confined to WithX
//     option constructors.
//
// Validation order when several checks fail:
//   ErrTooFewVertices → ErrInvalidProbability → ErrNeedRandSource.
// Errors raised by core.Builder (e.g. core.ErrCapacityExceeded) are wrapped
// and passed through unchanged.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
