package bfs_test

import (
	"testing"

	"github.com/katalvlaran/trafficpath/bfs"
	"github.com/katalvlaran/trafficpath/builder"
	"github.com/katalvlaran/trafficpath/core"
)

// BenchmarkBFS_Grid measures BFS from the corner of a 30×30 grid.
func BenchmarkBFS_Grid(b *testing.B) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithCapacity(900)}, nil, builder.Grid(30, 30))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkComponents measures component labelling on the same grid.
func BenchmarkComponents(b *testing.B) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithCapacity(900)}, nil, builder.Grid(30, 30))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Components(g)
	}
}
