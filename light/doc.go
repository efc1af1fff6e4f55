// Package light models the traffic light standing at every junction of a road
// network and the delay it imposes on an arriving vehicle.
//
// A Cycle is the repeating triple (Red, Green, Yellow). The wait function
// treats the first Green units of every cycle as the green window:
//
//	phase := arrival mod (Red+Green+Yellow)
//	wait  := 0                  if phase < Green
//	wait  := total - phase      otherwise
//
// Degenerate cycles (total ≤ 0) never delay anybody; they are not an error.
//
// Note on naming: the field order reads red-green-yellow but the wait formula
// places green at the start of each cycle. The formula is authoritative.
package light
