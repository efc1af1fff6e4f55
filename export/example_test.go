package export_test

import (
	"os"

	"github.com/katalvlaran/trafficpath/core"
	"github.com/katalvlaran/trafficpath/dijkstra"
	"github.com/katalvlaran/trafficpath/export"
	"github.com/katalvlaran/trafficpath/light"
)

// ExampleWriteAdjacency prints the listing shown by "trafficpath show".
func ExampleWriteAdjacency() {
	b := core.NewBuilder()
	_, _ = b.AddVertex("Mumbai", light.Default())
	_, _ = b.AddVertex("Pune", light.Default())
	_, _ = b.AddVertex("Goa", light.Default())
	_, _ = b.AddVertex("Nagpur", light.Default())
	_ = b.AddEdge(0, 2, 9)
	_ = b.AddEdge(0, 1, 3)
	_ = b.AddEdge(1, 2, 6)

	_ = export.WriteAdjacency(os.Stdout, b.Build())

	// Output:
	// City Map (Adjacency List):
	// 0 (Mumbai) -> [1,3] [2,9]
	// 1 (Pune) -> [0,3] [2,6]
	// 2 (Goa) -> [0,9] [1,6]
	// 3 (Nagpur) ->
}

// ExampleWriteRouteSummary replays a route whose middle junction is red on arrival.
func ExampleWriteRouteSummary() {
	b := core.NewBuilder()
	_, _ = b.AddVertex("A", light.Cycle{})
	_, _ = b.AddVertex("B", light.New(0, 5, 5))
	_, _ = b.AddVertex("C", light.Cycle{})
	_ = b.AddEdge(0, 1, 16)
	_ = b.AddEdge(1, 2, 10)
	g := b.Build()

	res, _ := dijkstra.ComputeShortestPath(g, 0, 2)
	legs, _ := dijkstra.Explain(g, res.Path, res.Departure)
	_ = export.WriteRouteSummary(os.Stdout, g, res, legs)

	// Output:
	// Shortest Time from A to C = 30 units
	// Path Travel Summary:
	// A -> B -> C
	//   A -> B: travel 16, arrive 16, wait 4, leave 20
	//   B -> C: travel 10, arrive 30, wait 0, leave 30
	// Total Time Taken: 30 units
}

// ExampleWriteRouteSummary_noPath shows the line printed for unreachable junctions.
func ExampleWriteRouteSummary_noPath() {
	b := core.NewBuilder()
	_, _ = b.AddVertex("Island", light.Default())
	_, _ = b.AddVertex("Mainland", light.Default())
	g := b.Build()

	res, _ := dijkstra.ComputeShortestPath(g, 0, 1)
	_ = export.WriteRouteSummary(os.Stdout, g, res, nil)

	// Output:
	// No path found from Island to Mainland
}
