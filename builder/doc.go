// Package builder generates deterministic synthetic road networks as
// *core.Graph snapshots: fixtures for tests, benchmarks and the CLI
// "generate" command.
//
// Topologies:
//
//	Path(n), Cycle(n), Star(n), Wheel(n), Complete(n), Grid(rows, cols),
//	RandomSparse(n, p)
//
// Every constructor names junctions with an IDFn (default "J0","J1",...;
// Grid uses "r,c"), assigns lights with a LightFn (default light.Default())
// and weighs roads with a WeightFn (default 1).
//
// Usage:
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithCapacity(100)},
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 20),
//	        builder.WithRandomLights(20, 10, 3)},
//	    builder.Grid(10, 10),
//	)
//
// Determinism: identical constructors, options and seed produce identical
// networks, road order included.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed, plus wrapped core errors such as core.ErrCapacityExceeded.
package builder
