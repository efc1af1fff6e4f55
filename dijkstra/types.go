// Package dijkstra defines core types and configuration options for the
// time-dependent shortest-path engine.
//
// Options:
//
//	– Departure: clock value at which the trip starts; light phases are read
//	             at Departure + elapsed time. Default 0.
//	– Logger:    *zap.Logger receiving Debug state transitions. Default no-op.
//	– OnSettle:  hook called once per settled vertex with its final distance.
//
// Errors (sentinel):
//
//	– ErrNilGraph      if the provided graph pointer is nil.
//	– ErrInvalidIndex  if src, dest or a path element is outside [0, N);
//	                   also matches core.ErrInvalidIndex.
//	– ErrEmptyPath     if Explain receives an empty path.
//	– ErrNotAdjacent   if Explain finds two consecutive path vertices with no road.
//	– ErrBadDeparture  (panic) if WithDeparture receives a negative clock.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/trafficpath/core"
)

// Infinity is the distance of a vertex that has not been reached.
const Infinity int64 = math.MaxInt64

// NoParent marks a vertex without a predecessor (the source, or unreached).
const NoParent = -1

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidIndex indicates a vertex id outside [0, N). It wraps
	// core.ErrInvalidIndex so callers may test for either.
	ErrInvalidIndex = fmt.Errorf("dijkstra: %w", core.ErrInvalidIndex)

	// ErrEmptyPath indicates Explain was given no vertices.
	ErrEmptyPath = errors.New("dijkstra: path is empty")

	// ErrNotAdjacent indicates two consecutive path vertices share no road.
	ErrNotAdjacent = errors.New("dijkstra: consecutive path vertices are not adjacent")

	// ErrBadDeparture indicates a negative departure clock.
	ErrBadDeparture = errors.New("dijkstra: departure must be non-negative")
)

// Result is the outcome of one ComputeShortestPath call.
//
// Reachable == false is the NoPath outcome: Distance is Infinity and Path is nil.
// Otherwise Distance is the elapsed time from departure to entering Dest
// (travel plus every light wait, the wait at Dest included) and Path lists
// vertex ids from Source to Dest inclusive.
type Result struct {
	Source    int
	Dest      int
	Departure int64
	Reachable bool
	Distance  int64
	Path      []int
	Settled   int // vertices extracted from the heap before the loop stopped
}

// Arrival returns the absolute clock at which Dest is entered, or Infinity
// for an unreachable destination.
func (r Result) Arrival() int64 {
	if !r.Reachable {
		return Infinity
	}

	return r.Departure + r.Distance
}

// Leg is one hop of a route as replayed by Explain.
// Times are elapsed since departure.
type Leg struct {
	From    int
	To      int
	Travel  int64 // weight of the cheapest road From–To
	Arrival int64 // elapsed time on reaching To
	Wait    int64 // light delay at To
	Leave   int64 // Arrival + Wait
}

// Options configures one ComputeShortestPath call.
type Options struct {
	Departure int64
	Logger    *zap.Logger
	OnSettle  func(v int, dist int64)
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithDeparture sets the clock value at which the trip starts.
// Panics with ErrBadDeparture if t < 0.
func WithDeparture(t int64) Option {
	if t < 0 {
		panic(ErrBadDeparture.Error())
	}
	return func(o *Options) {
		o.Departure = t
	}
}

// WithLogger routes engine Debug logs to l. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnSettle registers fn to be called once per settled vertex, in
// settlement order, with its final distance.
func WithOnSettle(fn func(v int, dist int64)) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// DefaultOptions returns departure 0, a no-op logger and no settle hook.
func DefaultOptions() Options {
	return Options{
		Departure: 0,
		Logger:    zap.NewNop(),
	}
}

// state tracks the engine lifecycle; it only feeds Debug logs.
type state int

const (
	stateInitialized state = iota
	stateRelaxing
	stateFound
	stateUnreachable
)

func (s state) String() string {
	switch s {
	case stateInitialized:
		return "initialized"
	case stateRelaxing:
		return "relaxing"
	case stateFound:
		return "found"
	case stateUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}
