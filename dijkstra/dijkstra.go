// Package dijkstra implements the time-dependent shortest-path engine.
//
// Every junction v holds a traffic light; entering v at elapsed time t costs
// an extra light.Wait(light(v), departure+t). Because t + Wait(t) never
// decreases as t grows, settling vertices in increasing order of
// (arrival + wait) stays exact for non-negative road weights.
//
// Complexity:
//
//   - Time:  O((V + E) log V), one ExtractMin per vertex and one DecreaseKey
//     per relaxed arc on an indexed heap.
//   - Space: O(V) for dist, parent and the heap.
//
// Notes on implementation choices:
//
//   - The heap is created with every vertex at Infinity and the source is
//     lowered to 0, so no lazy duplicates exist.
//   - Equal distances settle the lower vertex id first.
//   - The loop stops as soon as dest is settled or the minimum is Infinity.
package dijkstra

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/trafficpath/core"
	"github.com/katalvlaran/trafficpath/light"
	"github.com/katalvlaran/trafficpath/pq"
)

// ComputeShortestPath returns the least-cost route from src to dest on g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. src and dest must lie in [0, N) (ErrInvalidIndex).
//
// An unreachable dest is not an error: the Result has Reachable == false.
// src == dest yields distance 0 and path [src].
//
// Negative road weights are traversed as given; the result is then not
// guaranteed to be optimal.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func ComputeShortestPath(g *core.Graph, src, dest int, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result{}, ErrNilGraph
	}
	n := g.VertexCount()
	if !g.Valid(src) {
		return Result{}, fmt.Errorf("%w: src=%d with %d vertices", ErrInvalidIndex, src, n)
	}
	if !g.Valid(dest) {
		return Result{}, fmt.Errorf("%w: dest=%d with %d vertices", ErrInvalidIndex, dest, n)
	}

	r := &runner{
		g:      g,
		opts:   cfg,
		log:    cfg.Logger.With(zap.Stringer("graph", g.ID()), zap.Int("src", src), zap.Int("dest", dest)),
		src:    src,
		dest:   dest,
		dist:   make([]int64, n),
		parent: make([]int, n),
	}
	r.init()
	r.process()

	return r.result(), nil
}

// runner holds the mutable state for a single engine execution.
type runner struct {
	g    *core.Graph
	opts Options
	log  *zap.Logger

	src, dest int
	dist      []int64
	parent    []int
	heap      *pq.IndexedMinHeap[int64]
	settled   int
	state     state
}

// init sets dist = Infinity, parent = NoParent, dist[src] = 0 and queues
// every vertex.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Infinity
		r.parent[v] = NoParent
	}
	r.dist[r.src] = 0
	r.heap = pq.New[int64](len(r.dist), Infinity)
	r.heap.DecreaseKey(r.src, 0)
	r.transition(stateInitialized)
}

// process settles vertices in (distance, id) order until dest is settled,
// the heap is exhausted, or only unreachable vertices remain.
func (r *runner) process() {
	r.transition(stateRelaxing)
	for {
		u, du, err := r.heap.ExtractMin()
		if err != nil {
			// Only reachable when the heap drained without meeting dest.
			r.transition(stateUnreachable)
			return
		}
		if du == Infinity {
			r.transition(stateUnreachable)
			return
		}

		r.settled++
		if r.opts.OnSettle != nil {
			r.opts.OnSettle(u, du)
		}
		if u == r.dest {
			r.transition(stateFound)
			return
		}
		r.relax(u)
	}
}

// relax offers every arc u→v with v still queued:
// arrival = dist[u] + w, nd = arrival + Wait(light(v), departure + arrival).
func (r *runner) relax(u int) {
	du := r.dist[u]
	for v, w := range r.g.Neighbors(u) {
		if !r.heap.Contains(v) {
			continue
		}
		arrival, ok := addChecked(du, w)
		if !ok {
			continue
		}
		clock, ok := addChecked(r.opts.Departure, arrival)
		if !ok {
			continue
		}
		nd, ok := addChecked(arrival, light.Wait(r.g.Light(v), clock))
		if !ok {
			continue
		}
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.parent[v] = u
		r.heap.DecreaseKey(v, nd)
	}
}

// result packages dist/parent into a Result.
func (r *runner) result() Result {
	res := Result{
		Source:    r.src,
		Dest:      r.dest,
		Departure: r.opts.Departure,
		Distance:  Infinity,
		Settled:   r.settled,
	}
	if r.dist[r.dest] == Infinity || r.state != stateFound {
		return res
	}

	res.Reachable = true
	res.Distance = r.dist[r.dest]
	res.Path = r.path()

	return res
}

// path follows parent pointers from dest back to src and reverses them.
func (r *runner) path() []int {
	var rev []int
	for v := r.dest; v != NoParent; v = r.parent[v] {
		rev = append(rev, v)
		if v == r.src {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

func (r *runner) transition(s state) {
	r.state = s
	r.log.Debug("dijkstra: state",
		zap.Stringer("state", s),
		zap.Int("settled", r.settled),
	)
}

// addChecked returns a+b, reporting false when the sum would reach Infinity
// or leave the int64 range.
func addChecked(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) || s == Infinity {
		return 0, false
	}

	return s, true
}
