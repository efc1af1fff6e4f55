// SPDX-License-Identifier: MIT
// Package: trafficpath/core
//
// builder.go - vertex and road insertion on the mutable Builder.
//
// Policy:
//   • Ids are dense and assigned in insertion order (0,1,2,...).
//   • A rejected call leaves the builder exactly as it was.
//   • Self-loops and parallel roads are accepted; nothing is deduplicated.

package core

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/trafficpath/light"
)

// AddVertex appends a junction and returns its id.
// Returns ErrCapacityExceeded when the builder is full.
// Complexity: O(1) amortized.
func (b *Builder) AddVertex(name string, c light.Cycle) (int, error) {
	return b.AddVertexAt(name, c, 0, 0)
}

// AddVertexAt is AddVertex with geographic coordinates for map exports.
func (b *Builder) AddVertexAt(name string, c light.Cycle, lat, lon float64) (int, error) {
	if len(b.vertices) >= b.capacity {
		return -1, fmt.Errorf("%w: cannot add %q, capacity is %d", ErrCapacityExceeded, name, b.capacity)
	}
	id := len(b.vertices)
	b.vertices = append(b.vertices, Vertex{ID: id, Name: name, Light: c, Lat: lat, Lon: lon})
	b.adj = append(b.adj, nil)

	return id, nil
}

// AddEdge inserts the undirected road u–v with weight w as the two arcs
// (u→v,w) and (v→u,w).
// Returns ErrInvalidIndex if u or v is outside [0, N), ErrNegativeWeight for
// w < 0 when WithNonNegativeWeights is set.
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(u, v int, w int64) error {
	n := len(b.vertices)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("%w: road %d-%d with %d vertices", ErrInvalidIndex, u, v, n)
	}
	if b.nonNegative && w < 0 {
		return fmt.Errorf("%w: road %d-%d weight=%d", ErrNegativeWeight, u, v, w)
	}

	b.adj[u] = append(b.adj[u], Arc{To: v, Weight: w})
	b.adj[v] = append(b.adj[v], Arc{To: u, Weight: w})
	if u > v {
		u, v = v, u
	}
	b.roads = append(b.roads, Road{From: u, To: v, Weight: w})

	return nil
}

// SetLight replaces the traffic light of junction id.
func (b *Builder) SetLight(id int, c light.Cycle) error {
	if id < 0 || id >= len(b.vertices) {
		return fmt.Errorf("%w: SetLight(%d) with %d vertices", ErrInvalidIndex, id, len(b.vertices))
	}
	b.vertices[id].Light = c

	return nil
}

// VertexCount returns the number of junctions added so far.
func (b *Builder) VertexCount() int { return len(b.vertices) }

// Capacity returns the configured vertex bound.
func (b *Builder) Capacity() int { return b.capacity }

// Build returns an immutable snapshot of the current contents with a fresh
// snapshot id. Later builder mutations do not affect the returned Graph.
// Complexity: O(V+E).
func (b *Builder) Build() *Graph {
	g := &Graph{
		id:       uuid.New(),
		capacity: b.capacity,
		vertices: make([]Vertex, len(b.vertices)),
		adj:      make([][]Arc, len(b.adj)),
		roads:    make([]Road, len(b.roads)),
	}
	copy(g.vertices, b.vertices)
	copy(g.roads, b.roads)
	for u, arcs := range b.adj {
		if len(arcs) == 0 {
			continue
		}
		g.adj[u] = make([]Arc, len(arcs))
		copy(g.adj[u], arcs)
	}

	return g
}

// Builder returns a new Builder seeded with a copy of g, keeping g's capacity.
// Use it to derive a modified network from an existing snapshot.
// Complexity: O(V+E).
func (g *Graph) Builder(opts ...GraphOption) *Builder {
	b := NewBuilder(append([]GraphOption{WithCapacity(max(g.capacity, 1))}, opts...)...)
	b.vertices = make([]Vertex, len(g.vertices))
	copy(b.vertices, g.vertices)
	b.roads = make([]Road, len(g.roads))
	copy(b.roads, g.roads)
	b.adj = make([][]Arc, len(g.adj))
	for u, arcs := range g.adj {
		if len(arcs) == 0 {
			continue
		}
		b.adj[u] = make([]Arc, len(arcs))
		copy(b.adj[u], arcs)
	}

	return b
}
