// Package bfs provides breadth-first search over a core.Graph, returning
// road-count distances, parent links, and visit order, plus connected
// component labelling.
//
// What
//
//   - Explore junctions in non-decreasing number of roads from a start.
//   - Returns a BFSResult containing:
//   - Order:  visit sequence
//   - Depth:  roads from the start per junction (Unreached otherwise)
//   - Parent: predecessor in the BFS tree
//   - OnVisit hook (may abort with an error).
//   - Road filtering via WithFilterRoad; MaxDepth limit (d>0) or explicit
//     “no limit” (d==0).
//   - Components / Connected for reachability questions that ignore time.
//
// Why
//
//   - Answer "can I get there at all?" in O(V + E) before paying for a
//     time-dependent search; lights never block a road forever, so BFS
//     reachability equals ComputeShortestPath reachability.
//   - Hop-limited neighbourhoods ("everything within 2 roads of Pune").
//
// Determinism
//
//	Neighbors are enqueued in ascending id order, so the visit sequence is
//	fully reproducible regardless of road insertion order.
//
// Complexity (V = junctions, E = roads)
//
//   - Time:   O(V + E log Δ)   (Δ = max degree, from sorting neighbors)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrStartOutOfRange  if the start id is outside [0, N).
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - ctx.Err() on cancellation; wrapped OnVisit errors.
package bfs
