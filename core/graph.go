// SPDX-License-Identifier: MIT
// Package: trafficpath/core
//
// graph.go - read-only queries on an immutable Graph snapshot.
//
// Policy:
//   • No method mutates the Graph; no locks are taken.
//   • Out-of-range ids never panic: queries return zero values, empty
//     sequences or ErrInvalidIndex.

package core

import (
	"fmt"
	"iter"

	"github.com/google/uuid"

	"github.com/katalvlaran/trafficpath/light"
)

// GraphStats is a read-only summary of a Graph.
type GraphStats struct {
	Vertices         int
	Roads            int
	Arcs             int
	SelfLoops        int
	DegenerateLights int
}

// ID returns the snapshot identifier assigned by Build.
func (g *Graph) ID() uuid.UUID { return g.id }

// Capacity returns the vertex bound the snapshot was built with.
func (g *Graph) Capacity() int { return g.capacity }

// VertexCount returns N; valid ids are [0, N).
func (g *Graph) VertexCount() int { return len(g.vertices) }

// RoadCount returns the number of undirected roads, parallels and loops included.
func (g *Graph) RoadCount() int { return len(g.roads) }

// Valid reports whether id lies in [0, N).
func (g *Graph) Valid(id int) bool { return id >= 0 && id < len(g.vertices) }

// Vertex returns the junction with the given id.
// Returns ErrInvalidIndex for ids outside [0, N).
func (g *Graph) Vertex(id int) (Vertex, error) {
	if !g.Valid(id) {
		return Vertex{}, fmt.Errorf("%w: vertex %d with %d vertices", ErrInvalidIndex, id, len(g.vertices))
	}

	return g.vertices[id], nil
}

// Name returns the junction name, or "" for an invalid id.
func (g *Graph) Name(id int) string {
	if !g.Valid(id) {
		return ""
	}

	return g.vertices[id].Name
}

// Light returns the traffic light of junction id, or the zero (always
// passable) cycle for an invalid id.
func (g *Graph) Light(id int) light.Cycle {
	if !g.Valid(id) {
		return light.Cycle{}
	}

	return g.vertices[id].Light
}

// Vertices returns a copy of all junctions ordered by id.
// Complexity: O(V).
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Neighbors returns a lazy, restartable sequence of (neighbor, weight) pairs
// for every arc leaving u. Parallel roads and self-loops appear once per arc.
// The order is an implementation detail. An invalid u yields nothing.
//
// Complexity: O(deg(u)) per full iteration, no allocation.
func (g *Graph) Neighbors(u int) iter.Seq2[int, int64] {
	return func(yield func(int, int64) bool) {
		if !g.Valid(u) {
			return
		}
		for _, a := range g.adj[u] {
			if !yield(a.To, a.Weight) {
				return
			}
		}
	}
}

// Degree returns the number of arcs leaving u (0 for an invalid id).
func (g *Graph) Degree(u int) int {
	if !g.Valid(u) {
		return 0
	}

	return len(g.adj[u])
}

// Roads returns every undirected road once, in insertion order, with From ≤ To.
// Complexity: O(E).
func (g *Graph) Roads() []Road {
	out := make([]Road, len(g.roads))
	copy(out, g.roads)

	return out
}

// Stats summarises the snapshot.
// Complexity: O(V+E).
func (g *Graph) Stats() GraphStats {
	s := GraphStats{Vertices: len(g.vertices), Roads: len(g.roads)}
	for _, arcs := range g.adj {
		s.Arcs += len(arcs)
	}
	for _, r := range g.roads {
		if r.From == r.To {
			s.SelfLoops++
		}
	}
	for _, v := range g.vertices {
		if v.Light.Degenerate() {
			s.DegenerateLights++
		}
	}

	return s
}
