// SPDX-License-Identifier: MIT
// Package: trafficpath/store

// Package store persists road networks.
//
// Three encodings are supported:
//
//   - the legacy whitespace text format (ReadLegacy / WriteLegacy);
//   - a YAML document (ReadYAML / WriteYAML);
//   - a Neo4j graph, through Repository and the graphdb.Client abstraction.
//
// LoadFile and SaveFile choose between the two file encodings by extension:
// ".yaml" and ".yml" select YAML, anything else the legacy format.
//
// Legacy format:
//
//	V
//	name R G Y lat lon      (V lines)
//	E
//	u v w                   (E lines, each road once with u < v)
//
// Readers are forgiving in the same way the format always was: a junction
// line with only "name R G Y" keeps zero coordinates, an unreadable junction
// line becomes "J<i>" with light.Default(), a missing road count means no
// roads and a truncated road list stops reading. Roads the graph rejects are
// skipped with a warning on the configured logger.
package store
