// Package dijkstra computes least-cost routes on a road network whose
// junctions delay entry according to repeating traffic-light cycles.
//
// Overview:
//
//   - Roads are symmetric with integer travel costs; see package core.
//   - Entering junction v at elapsed time t adds light.Wait(light(v), departure+t).
//   - The source junction is never waited at; the destination is.
//   - Lifecycle of one call: initialized → relaxing → found | unreachable.
//
// When to use:
//
//   - Point-to-point routing on a static snapshot, one synchronous call at a time.
//   - Any number of goroutines may route on the same *core.Graph concurrently;
//     each call owns its dist, parent and heap.
//
// Key features:
//
//   - Indexed min-heap (package pq) with DecreaseKey, no lazy duplicates.
//   - Deterministic tie-break: equal distances settle the lower vertex id.
//   - Early exit once dest is settled.
//   - Explain replays a route hop by hop for summaries and verification.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:      nil graph.
//   - ErrInvalidIndex:  src, dest or path element outside [0, N); matches
//     core.ErrInvalidIndex as well.
//   - ErrEmptyPath:     Explain on an empty path.
//   - ErrNotAdjacent:   Explain on a path using a missing road.
//
// An unreachable destination is a normal Result with Reachable == false.
//
// API reference:
//
//	func ComputeShortestPath(g *core.Graph, src, dest int, opts ...Option) (Result, error)
//	func Explain(g *core.Graph, path []int, departure int64) ([]Leg, error)
//
// Example:
//
//	res, err := dijkstra.ComputeShortestPath(g, 0, 2, dijkstra.WithDeparture(30))
//	if err != nil {
//	    return err
//	}
//	if !res.Reachable {
//	    fmt.Println("No path")
//	}
//	fmt.Println(res.Distance, res.Path)
package dijkstra
