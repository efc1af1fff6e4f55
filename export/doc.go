// SPDX-License-Identifier: MIT
// Package: trafficpath/export

// Package export renders road networks and routes for people and tools.
//
//   - WriteDOT:          Graphviz document built through gonum's DOT encoder.
//   - WriteLeafletMap:   standalone HTML page drawing the network on OpenStreetMap
//     tiles with the route highlighted.
//   - WriteAdjacency:    plain-text adjacency listing.
//   - WriteRouteSummary: distance, visited junctions and per-leg timings of a route.
//
// Writers never close w and report the first write error.
package export

import "errors"

// ErrNilGraph indicates a nil *core.Graph was passed to a writer.
var ErrNilGraph = errors.New("export: graph is nil")
