// SPDX-License-Identifier: MIT
// Package: trafficpath/dijkstra
//
// explain.go - replay a route leg by leg, independently of the engine state.
//
// Each leg uses the cheapest road between its endpoints. Since t + Wait(t)
// never decreases in t, the cheapest road also yields the earliest leave time.

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/trafficpath/core"
	"github.com/katalvlaran/trafficpath/light"
)

// Explain recomputes travel, arrival and wait for every hop of path, starting
// at clock departure. The returned legs' final Leave equals the Distance that
// ComputeShortestPath reports for the same route.
//
// A single-vertex path yields no legs.
// Returns ErrNilGraph, ErrEmptyPath, ErrInvalidIndex or ErrNotAdjacent.
// Complexity: O(Σ deg(path[i])).
func Explain(g *core.Graph, path []int, departure int64) ([]Leg, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	for i, v := range path {
		if !g.Valid(v) {
			return nil, fmt.Errorf("%w: path[%d]=%d with %d vertices", ErrInvalidIndex, i, v, g.VertexCount())
		}
	}

	legs := make([]Leg, 0, len(path)-1)
	var clock int64
	for i := 1; i < len(path); i++ {
		u, v := path[i-1], path[i]
		w, ok := cheapestRoad(g, u, v)
		if !ok {
			return nil, fmt.Errorf("%w: %d-%d at position %d", ErrNotAdjacent, u, v, i)
		}
		arrival := clock + w
		wait := light.Wait(g.Light(v), departure+arrival)
		clock = arrival + wait
		legs = append(legs, Leg{From: u, To: v, Travel: w, Arrival: arrival, Wait: wait, Leave: clock})
	}

	return legs, nil
}

// cheapestRoad returns the minimum weight among all arcs u→v.
func cheapestRoad(g *core.Graph, u, v int) (int64, bool) {
	best, found := Infinity, false
	for to, w := range g.Neighbors(u) {
		if to == v && (!found || w < best) {
			best, found = w, true
		}
	}

	return best, found
}
