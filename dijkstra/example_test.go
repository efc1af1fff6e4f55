// Package dijkstra_test provides examples demonstrating the time-dependent engine.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/trafficpath/core"
	"github.com/katalvlaran/trafficpath/dijkstra"
	"github.com/katalvlaran/trafficpath/light"
)

// ExampleComputeShortestPath routes through a junction whose light is green on arrival.
func ExampleComputeShortestPath() {
	// A–B–C in a line, roads of 10; B and C cycle (red=5, green=5, yellow=0).
	b := core.NewBuilder()
	a, _ := b.AddVertex("A", light.Cycle{})
	bb, _ := b.AddVertex("B", light.New(5, 5, 0))
	c, _ := b.AddVertex("C", light.New(5, 5, 0))
	_ = b.AddEdge(a, bb, 10)
	_ = b.AddEdge(bb, c, 10)
	g := b.Build()

	res, err := dijkstra.ComputeShortestPath(g, a, c)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Reachable, res.Distance, res.Path)

	// Output:
	// true 20 [0 1 2]
}

// ExampleComputeShortestPath_noPath shows the NoPath outcome.
func ExampleComputeShortestPath_noPath() {
	b := core.NewBuilder()
	_, _ = b.AddVertex("island-1", light.Default())
	_, _ = b.AddVertex("island-2", light.Default())
	g := b.Build()

	res, _ := dijkstra.ComputeShortestPath(g, 0, 1)
	if !res.Reachable {
		fmt.Println("No path")
	}

	// Output:
	// No path
}

// ExampleExplain replays a route whose middle junction forces a wait.
func ExampleExplain() {
	b := core.NewBuilder()
	_, _ = b.AddVertex("A", light.Cycle{})
	_, _ = b.AddVertex("B", light.New(0, 5, 5))
	_, _ = b.AddVertex("C", light.Cycle{})
	_ = b.AddEdge(0, 1, 16)
	_ = b.AddEdge(1, 2, 10)
	g := b.Build()

	res, _ := dijkstra.ComputeShortestPath(g, 0, 2)
	legs, _ := dijkstra.Explain(g, res.Path, res.Departure)
	for _, l := range legs {
		fmt.Printf("%s->%s travel=%d arrive=%d wait=%d\n", g.Name(l.From), g.Name(l.To), l.Travel, l.Arrival, l.Wait)
	}
	fmt.Println("total", res.Distance)

	// Output:
	// A->B travel=16 arrive=16 wait=4
	// B->C travel=10 arrive=30 wait=0
	// total 30
}
