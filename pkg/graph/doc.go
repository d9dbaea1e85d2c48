// Package graph provides a compact directed graph over dense integer
// vertices, together with the two structural analyses the layout
// pipeline needs: topological ordering with cycle detection, and
// weakly-connected (disjoint) subgraph discovery.
//
// # Representation
//
// A [Graph] is nothing but out-adjacency stored in a [ramp.Table]:
// vertex v's out-neighbors are the values under key v. Vertices are
// indices in [0, NumVerts) and carry no payload; per-vertex data lives
// in parallel slices indexed the same way. This keeps every traversal
// an array walk and makes transposition a two-pass counting sort.
//
// # Building
//
// Graphs are built vertex by vertex with [Graph.PushTo] and
// [Graph.FinishFrom], mirroring the ramp-table primitives, or from
// edges in arbitrary order with a [Builder]:
//
//	var b graph.Builder
//	b.Path(1, 2, 3)
//	b.Edge(1, 3)
//	g := b.Build()
//
// # Validation
//
// The algorithms in this package and in package layout index adjacency
// slices without bounds checks of their own, so a malformed graph (an
// edge pointing at a vertex >= NumVerts) is undefined behavior. Callers
// must run [Graph.Validate] at every ingestion boundary - wherever a
// graph enters from parsed or deserialized data - and never hand an
// invalid graph to the analyses.
//
// # Errors
//
// The only recoverable error in this package is [ErrCycleDetected],
// returned by [TopoSort] and [TopoSortReverse]. It is a definitive
// statement about the input, not a transient condition; there is no
// partial result and nothing to retry.
package graph
