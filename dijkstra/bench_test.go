package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/trafficpath/dijkstra"
)

// BenchmarkComputeShortestPath_Sparse routes corner to corner on a seeded sparse network.
func BenchmarkComputeShortestPath_Sparse(b *testing.B) {
	g := randomNetwork(b, 99, 500, 0.01)
	dest := g.VertexCount() - 1
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ComputeShortestPath(g, 0, dest)
	}
}

// BenchmarkExplain replays a fixed route.
func BenchmarkExplain(b *testing.B) {
	g := randomNetwork(b, 99, 500, 0.01)
	res, err := dijkstra.ComputeShortestPath(g, 0, g.VertexCount()-1)
	if err != nil || !res.Reachable {
		b.Skip("no route in benchmark network")
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Explain(g, res.Path, 0)
	}
}
