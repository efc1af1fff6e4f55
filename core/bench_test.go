// Package core_test provides benchmarks for Builder and Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/trafficpath/core"
	"github.com/katalvlaran/trafficpath/light"
)

// BenchmarkAddEdge measures road insertion between a fixed set of junctions.
func BenchmarkAddEdge(b *testing.B) {
	bld := core.NewBuilder(core.WithCapacity(100))
	for i := 0; i < 100; i++ {
		_, _ = bld.AddVertex(fmt.Sprintf("N%d", i), light.Default())
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bld.AddEdge(i%100, (i*7)%100, int64(i))
	}
}

// BenchmarkBuild measures snapshot cost on a 1000-junction ring.
func BenchmarkBuild(b *testing.B) {
	const n = 1000
	bld := core.NewBuilder(core.WithCapacity(n))
	for i := 0; i < n; i++ {
		_, _ = bld.AddVertex(fmt.Sprintf("N%d", i), light.Default())
	}
	for i := 0; i < n; i++ {
		_ = bld.AddEdge(i, (i+1)%n, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bld.Build()
	}
}

// BenchmarkNeighbors measures iterating the arcs of a 1000-leaf star hub.
func BenchmarkNeighbors(b *testing.B) {
	const leaves = 1000
	bld := core.NewBuilder(core.WithCapacity(leaves + 1))
	_, _ = bld.AddVertex("hub", light.Cycle{})
	for i := 1; i <= leaves; i++ {
		_, _ = bld.AddVertex(fmt.Sprintf("L%d", i), light.Cycle{})
		_ = bld.AddEdge(0, i, int64(i))
	}
	g := bld.Build()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum int64
		for _, w := range g.Neighbors(0) {
			sum += w
		}
		_ = sum
	}
}
