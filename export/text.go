// SPDX-License-Identifier: MIT
// Package: trafficpath/export
//
// text.go - human readable listings for terminals.

package export

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/katalvlaran/trafficpath/core"
	"github.com/katalvlaran/trafficpath/dijkstra"
)

// WriteAdjacency lists every junction with its [neighbor,weight] pairs,
// sorted by neighbor then weight:
//
//	City Map (Adjacency List):
//	0 (Mumbai) -> [1,7] [2,3]
func WriteAdjacency(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "City Map (Adjacency List):")
	for _, v := range g.Vertices() {
		arcs := make([]core.Arc, 0, g.Degree(v.ID))
		for to, weight := range g.Neighbors(v.ID) {
			arcs = append(arcs, core.Arc{To: to, Weight: weight})
		}
		slices.SortFunc(arcs, func(a, b core.Arc) int {
			return cmp.Or(cmp.Compare(a.To, b.To), cmp.Compare(a.Weight, b.Weight))
		})

		fmt.Fprintf(bw, "%d (%s) ->", v.ID, v.Name)
		for _, a := range arcs {
			fmt.Fprintf(bw, " [%d,%d]", a.To, a.Weight)
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// WriteRouteSummary prints the outcome of a route query. legs, typically
// from dijkstra.Explain, add one line per hop and may be nil.
func WriteRouteSummary(w io.Writer, g *core.Graph, res dijkstra.Result, legs []dijkstra.Leg) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.Valid(res.Source) || !g.Valid(res.Dest) {
		return fmt.Errorf("WriteRouteSummary: %d->%d: %w", res.Source, res.Dest, core.ErrInvalidIndex)
	}
	bw := bufio.NewWriter(w)
	from, to := g.Name(res.Source), g.Name(res.Dest)

	if !res.Reachable {
		fmt.Fprintf(bw, "No path found from %s to %s\n", from, to)
		return bw.Flush()
	}

	fmt.Fprintf(bw, "Shortest Time from %s to %s = %d units\n", from, to, res.Distance)
	if res.Departure != 0 {
		fmt.Fprintf(bw, "Departure at %d, arrival at %d\n", res.Departure, res.Arrival())
	}
	fmt.Fprintln(bw, "Path Travel Summary:")
	names := make([]string, len(res.Path))
	for i, id := range res.Path {
		names[i] = g.Name(id)
	}
	fmt.Fprintln(bw, strings.Join(names, " -> "))
	for _, l := range legs {
		fmt.Fprintf(bw, "  %s -> %s: travel %d, arrive %d, wait %d, leave %d\n",
			g.Name(l.From), g.Name(l.To), l.Travel, l.Arrival, l.Wait, l.Leave)
	}
	fmt.Fprintf(bw, "Total Time Taken: %d units\n", res.Distance)

	return bw.Flush()
}
