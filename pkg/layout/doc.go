// Package layout assigns the vertices of a directed acyclic graph to
// horizontal layers and orders each layer to reduce edge crossings.
//
// # Pipeline
//
// Layout runs in three phases, each consuming the previous one's
// output:
//
//  1. [AssignLayers] computes a [LayerMap] by longest-path layering:
//     every vertex sits exactly one layer above its deepest
//     out-neighbor, so every edge points strictly downward.
//  2. [BuildProperGraph] inserts virtual vertices so that every edge
//     spans exactly one layer, producing a [ProperGraph] with
//     per-layer vertex lists, per-boundary edge lists, and an initial
//     horizontal position for every vertex.
//  3. [MinCrossings] sweeps the layer boundaries with the barycenter
//     heuristic, repositioning one side of each boundary while the
//     other stays fixed.
//
// Layer 0 is at the bottom; layer numbers increase upward. An edge
// f -> t always has layer(f) > layer(t): arrows point down the page.
//
// # Positions
//
// [ProperGraph.VPos] maps every proper vertex (original or virtual) to
// its column within its layer and is the only state the crossing
// sweeps mutate. A renderer draws vertex v at
// (columnX(VPos[v]), layerY(layer(v))); producing actual coordinates
// is the renderer's concern, not this package's.
//
// # Heuristic, Not Solver
//
// Crossing minimization is NP-hard. [MinCrossings] runs a fixed number
// of barycenter sweeps (one down, one up per iteration, a single
// iteration by default) and makes no optimality claim.
// [CountAllCrossings] reports the crossing count for diagnostics and
// tests; it is never used as a stopping criterion.
//
// # Errors
//
// The only recoverable failure is [graph.ErrCycleDetected], propagated
// unchanged from the topological sort that layering depends on.
// Everything else - negative spans, out-of-bounds layers - panics,
// because it indicates a bug in a producer, not a runtime condition.
package layout
