// Package trafficpath finds the fastest route through a road network whose
// junctions are governed by repeating traffic light cycles.
//
// 🚦 What is trafficpath?
//
//	A small routing toolkit where time matters twice:
//		• Roads cost their travel time
//		• Junctions cost the wait until their light turns green again
//		• The departure clock shifts every light phase, so the same trip can
//		  take different routes at different times
//
// ✨ Why trafficpath?
//
//   - Immutable graphs – build once, query from as many goroutines as you like
//   - Honest waits – the destination's light counts, the source's does not
//   - Explainable – every route can be replayed leg by leg
//   - Portable networks – legacy text files, YAML, Neo4j, DOT and Leaflet maps
//
// Packages:
//
//	light/     - traffic light cycle and the arrival wait function
//	core/      - junctions, two-way roads, Builder and immutable Graph
//	pq/        - generic indexed min-heap with decrease-key
//	dijkstra/  - time-dependent shortest path engine and route replay
//	bfs/       - road-count reachability and connected components
//	builder/   - deterministic synthetic networks (path, grid, random, ...)
//	store/     - legacy text and YAML files, Neo4j repository
//	export/    - Graphviz DOT, Leaflet HTML map, adjacency and route listings
//	cmd/trafficpath - command line front end
//
// Quick ASCII example:
//
//	    A──10──B──10──C
//	           🚦      🚦   red 5, green 5
//
//	leaving A at 0 reaches B at 10, the start of a green window, and C at 20.
//
//	go install github.com/katalvlaran/trafficpath/cmd/trafficpath@latest
package trafficpath
