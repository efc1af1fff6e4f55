// Package core defines the road network model: junctions (vertices) with
// traffic lights, symmetric weighted roads, the mutable Builder that collects
// them and the immutable Graph snapshot that queries run against.
//
// This file declares Vertex, Arc, Road, Graph, Builder, GraphOption,
// sentinel errors and NewBuilder.
//
// Errors:
//
//	ErrInvalidIndex      - vertex id outside [0, N).
//	ErrCapacityExceeded  - AddVertex beyond the configured capacity.
//	ErrNegativeWeight    - negative road weight while WithNonNegativeWeights is set.
package core

import (
	"errors"

	"github.com/google/uuid"

	"github.com/katalvlaran/trafficpath/light"
)

// DefaultCapacity bounds the number of junctions when no WithCapacity option
// is given.
const DefaultCapacity = 50

// Sentinel errors for core graph operations.
var (
	// ErrInvalidIndex indicates a vertex id outside [0, N).
	ErrInvalidIndex = errors.New("core: vertex index out of range")

	// ErrCapacityExceeded indicates AddVertex was called on a full builder.
	ErrCapacityExceeded = errors.New("core: vertex capacity exceeded")

	// ErrNegativeWeight indicates a negative road weight was rejected.
	ErrNegativeWeight = errors.New("core: negative road weight")
)

// Vertex is a junction of the road network.
//
// ID is dense in [0, N) and assigned in insertion order.
// Lat/Lon are carried for map exporters only; routing never reads them.
type Vertex struct {
	ID    int
	Name  string
	Light light.Cycle
	Lat   float64
	Lon   float64
}

// Arc is one direction of a road as seen from its tail vertex.
type Arc struct {
	To     int
	Weight int64
}

// Road is an undirected road listed once, with From ≤ To.
type Road struct {
	From   int
	To     int
	Weight int64
}

// GraphOption configures a Builder before any vertex is added.
type GraphOption func(b *Builder)

// WithCapacity bounds the number of vertices the builder accepts.
// Panics if n ≤ 0.
func WithCapacity(n int) GraphOption {
	if n <= 0 {
		panic("core: WithCapacity(n<=0)")
	}
	return func(b *Builder) { b.capacity = n }
}

// WithNonNegativeWeights makes AddEdge reject negative weights with
// ErrNegativeWeight. Without it negative weights are stored as given.
func WithNonNegativeWeights() GraphOption {
	return func(b *Builder) { b.nonNegative = true }
}

// Builder accumulates junctions and roads and produces immutable Graph
// snapshots. A Builder is not safe for concurrent mutation.
type Builder struct {
	capacity    int
	nonNegative bool

	vertices []Vertex
	adj      [][]Arc // adj[u] lists every arc leaving u, in insertion order
	roads    []Road  // every AddEdge call, once
}

// Graph is an immutable road network snapshot produced by Builder.Build.
//
// Every road u–v of weight w is stored as the arcs (u→v,w) and (v→u,w);
// self-loops contribute two arcs u→u. Parallel roads accumulate.
// A Graph is never mutated after Build, so concurrent readers need no locks.
type Graph struct {
	id       uuid.UUID
	capacity int

	vertices []Vertex
	adj      [][]Arc
	roads    []Road
}

// NewBuilder returns an empty Builder with DefaultCapacity, then applies opts
// in order.
// Complexity: O(len(opts)).
func NewBuilder(opts ...GraphOption) *Builder {
	b := &Builder{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(b)
	}

	return b
}
