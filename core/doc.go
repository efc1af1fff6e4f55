// Package core provides the road network model used by the route engine: a
// mutable Builder and the immutable Graph snapshot it produces.
//
// The network G = (V, E):
//
//   - V: junctions with dense ids 0..N-1, a display name, a traffic light
//     cycle and optional coordinates.
//   - E: symmetric weighted roads. Each road u–v (weight w) is stored as two
//     arcs (u→v,w) and (v→u,w); a road is never kept as a single arc.
//
// Why a Builder and a Graph?
//
//   - All mutation happens on Builder before any query runs.
//   - Build() copies the contents into a Graph that exposes read-only methods
//     only, so the "no mutation during a computation" rule is structural.
//   - Every snapshot carries a UUID (Graph.ID) to tell snapshots apart in logs
//     and stores.
//
// Configuration Options (GraphOption):
//
//	– WithCapacity(n)            bound on vertices (default DefaultCapacity=50).
//	– WithNonNegativeWeights()   reject w < 0 with ErrNegativeWeight.
//
// Core Methods:
//
//	// Builder
//	AddVertex(name, cycle) (id int, err error)          // O(1)
//	AddVertexAt(name, cycle, lat, lon) (int, error)     // O(1)
//	AddEdge(u, v int, w int64) error                    // O(1)
//	SetLight(id, cycle) error                           // O(1)
//	Build() *Graph                                      // O(V+E)
//
//	// Graph
//	Neighbors(u) iter.Seq2[int, int64]                  // lazy, restartable
//	Vertex(id) (Vertex, error)                          // O(1)
//	Light(id) light.Cycle                               // O(1)
//	Roads() []Road                                      // O(E), each road once
//	Stats() GraphStats                                  // O(V+E)
//	Builder() *Builder                                  // O(V+E) copy for edits
//
// Self-loops and parallel roads are accepted and kept; the route engine
// considers all of them.
//
// Errors:
//
//	ErrInvalidIndex     – vertex id outside [0, N)
//	ErrCapacityExceeded – AddVertex on a full builder
//	ErrNegativeWeight   – w < 0 under WithNonNegativeWeights
package core
