package core_test

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/trafficpath/core"
	"github.com/katalvlaran/trafficpath/light"
)

// ExampleBuilder demonstrates building a small network and querying the snapshot.
func ExampleBuilder() {
	b := core.NewBuilder(core.WithCapacity(4))

	// 1) Junctions get dense ids in insertion order.
	a, _ := b.AddVertex("A", light.New(5, 5, 0))
	bb, _ := b.AddVertex("B", light.Default())
	c, _ := b.AddVertex("C", light.Cycle{})

	// 2) Each road is stored in both directions.
	_ = b.AddEdge(a, bb, 10)
	_ = b.AddEdge(bb, c, 3)

	g := b.Build()
	fmt.Println(g.VertexCount(), g.RoadCount())
	for v, w := range g.Neighbors(bb) {
		fmt.Printf("B -> %s (%d)\n", g.Name(v), w)
	}

	// Output:
	// 3 2
	// B -> A (10)
	// B -> C (3)
}

// ExampleBuilder_errors shows the sentinel errors returned by a builder.
func ExampleBuilder_errors() {
	b := core.NewBuilder(core.WithCapacity(1), core.WithNonNegativeWeights())
	_, _ = b.AddVertex("only", light.Cycle{})

	_, err := b.AddVertex("extra", light.Cycle{})
	fmt.Println(errors.Is(err, core.ErrCapacityExceeded))

	err = b.AddEdge(0, 3, 1)
	fmt.Println(errors.Is(err, core.ErrInvalidIndex))

	err = b.AddEdge(0, 0, -1)
	fmt.Println(errors.Is(err, core.ErrNegativeWeight))

	// Output:
	// true
	// true
	// true
}

// ExampleGraph_Roads lists each undirected road once.
func ExampleGraph_Roads() {
	b := core.NewBuilder()
	for _, name := range []string{"X", "Y", "Z"} {
		_, _ = b.AddVertex(name, light.Cycle{})
	}
	_ = b.AddEdge(2, 0, 4)
	_ = b.AddEdge(1, 1, 1)
	g := b.Build()

	roads := g.Roads()
	sort.Slice(roads, func(i, j int) bool { return roads[i].From < roads[j].From })
	for _, r := range roads {
		fmt.Printf("%s-%s %d\n", g.Name(r.From), g.Name(r.To), r.Weight)
	}
	fmt.Printf("%+v\n", g.Stats())

	// Output:
	// X-Z 4
	// Y-Y 1
	// {Vertices:3 Roads:2 Arcs:4 SelfLoops:1 DegenerateLights:3}
}
