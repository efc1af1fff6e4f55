// SPDX-License-Identifier: MIT
// Package: trafficpath/light
//
// light.go - traffic light cycle and the arrival wait function.
//
// Model:
//   • A junction repeats a cycle of Red+Green+Yellow time units forever.
//   • Every cycle opens with its green window [0, Green).
//   • Arriving outside the green window waits until the cycle restarts.
//
// Only Total() and Green influence the delay; the Red/Yellow split is kept for
// display and persistence.

package light

// Default timings used when a stored junction carries no readable light.
const (
	DefaultRed    int64 = 10
	DefaultGreen  int64 = 5
	DefaultYellow int64 = 2
)

// Cycle is the repeating (red, green, yellow) duration triple of a junction.
// A cycle with Total() ≤ 0 is legal and means "always passable".
type Cycle struct {
	Red    int64 `yaml:"red" json:"red"`
	Green  int64 `yaml:"green" json:"green"`
	Yellow int64 `yaml:"yellow" json:"yellow"`
}

// New returns a Cycle with the given phase durations.
func New(red, green, yellow int64) Cycle {
	return Cycle{Red: red, Green: green, Yellow: yellow}
}

// Default returns the fallback cycle (10, 5, 2).
func Default() Cycle {
	return Cycle{Red: DefaultRed, Green: DefaultGreen, Yellow: DefaultYellow}
}

// Total returns the full cycle length Red+Green+Yellow.
// Complexity: O(1).
func (c Cycle) Total() int64 {
	return c.Red + c.Green + c.Yellow
}

// Degenerate reports whether the cycle never blocks (Total() ≤ 0).
func (c Cycle) Degenerate() bool {
	return c.Total() <= 0
}

// phase maps an absolute time onto [0, Total()). Callers guarantee Total() > 0.
func (c Cycle) phase(t int64) int64 {
	total := c.Total()
	p := t % total
	if p < 0 {
		p += total
	}

	return p
}

// IsGreen reports whether arriving at time t passes without waiting.
func (c Cycle) IsGreen(t int64) bool {
	return Wait(c, t) == 0
}

// NextGreen returns the earliest time ≥ t at which the junction can be entered.
func (c Cycle) NextGreen(t int64) int64 {
	return t + Wait(c, t)
}

// Wait returns the delay incurred when arriving at a junction governed by c at
// time arrival.
//
//   - Total() ≤ 0            → 0 (degenerate, always passable).
//   - phase < Green          → 0 (inside the green window).
//   - otherwise              → Total() - phase (until the cycle restarts).
//
// phase is arrival mod Total(), normalized into [0, Total()) so that negative
// clocks (possible only with negative road costs) stay well defined.
//
// Complexity: O(1).
func Wait(c Cycle, arrival int64) int64 {
	if c.Degenerate() {
		return 0
	}
	p := c.phase(arrival)
	if p < c.Green {
		return 0
	}

	return c.Total() - p
}
