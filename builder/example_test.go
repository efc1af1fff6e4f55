package builder_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/trafficpath/builder"
	"github.com/katalvlaran/trafficpath/core"
	"github.com/katalvlaran/trafficpath/light"
)

// ExampleBuildGraph builds a small ring road with fixed lights.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithCapacity(4)},
		[]builder.BuilderOption{
			builder.WithIDScheme(builder.SymbolIDFn),
			builder.WithConstantWeight(7),
			builder.WithLightFn(builder.FixedLightFn(light.New(3, 2, 1))),
		},
		builder.Cycle(4),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	var parts []string
	for _, r := range g.Roads() {
		parts = append(parts, fmt.Sprintf("%s-%s:%d", g.Name(r.From), g.Name(r.To), r.Weight))
	}
	fmt.Println(strings.Join(parts, " "))
	fmt.Println(g.Light(2))

	// Output:
	// A-B:7 B-C:7 C-D:7 A-D:7
	// {3 2 1}
}
