package graph

import (
	"errors"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// ErrCycleDetected is returned by [TopoSort] and [TopoSortReverse] when
// the graph contains a directed cycle (including a self-loop). The
// error identifies no particular vertices; callers needing diagnostics
// must re-scan the graph themselves.
var ErrCycleDetected = errors.New("graph contains a cycle")

// frame is one level of the explicit DFS stack: a vertex and a cursor
// into its adjacency slice marking the next edge to follow.
type frame struct {
	v    Vertex
	next int
}

// TopoSortReverse returns a sinks-to-sources ordering of the graph's
// non-isolated vertices: for every edge f -> t, t appears before f.
// Vertices with no edges at all are excluded; true sinks are emitted
// when reached through some other vertex's edge. Components may be
// interleaved arbitrarily - no cross-component order is guaranteed.
//
// The walk is an explicit-stack depth-first search, so adversarially
// long chains cannot overflow the call stack. A vertex moves through
// three states: unvisited, on the current search path, and visited.
// Reaching a vertex already on the current path means a cycle, and the
// whole call fails with [ErrCycleDetected] - no partial result is
// usable.
func TopoSortReverse(g *Graph) ([]Vertex, error) {
	nv := g.NumVerts()

	// Vertices fully explored and already written to the output.
	visited := bitset.New(uint(nv))
	// Vertices on the current search path, i.e. ancestors of the
	// vertex being expanded.
	inWork := bitset.New(uint(nv))

	order := make([]Vertex, 0, nv)
	var stack []frame

	for source := Vertex(0); source < Vertex(nv); source++ {
		if visited.Test(uint(source)) {
			continue
		}
		if len(g.EdgesFrom(source)) == 0 {
			// Isolated vertices are never reported. A true sink (in-edges
			// but no out-edges) is discovered through another vertex.
			continue
		}

		inWork.Set(uint(source))
		stack = append(stack, frame{v: source})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			edges := g.EdgesFrom(top.v)

			if top.next == len(edges) {
				// All forward edges of v explored; v is done.
				inWork.Clear(uint(top.v))
				visited.Set(uint(top.v))
				order = append(order, top.v)
				stack = stack[:len(stack)-1]
				continue
			}

			next := edges[top.next]
			top.next++
			if inWork.Test(uint(next)) {
				return nil, ErrCycleDetected
			}
			if visited.Test(uint(next)) {
				continue
			}
			inWork.Set(uint(next))
			stack = append(stack, frame{v: next})
		}
	}

	return order, nil
}

// TopoSort returns a sources-to-sinks ordering; it is [TopoSortReverse]
// with the result reversed.
func TopoSort(g *Graph) ([]Vertex, error) {
	order, err := TopoSortReverse(g)
	if err != nil {
		return nil, err
	}
	slices.Reverse(order)
	return order, nil
}
