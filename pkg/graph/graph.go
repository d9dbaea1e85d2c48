package graph

import (
	"errors"
	"fmt"
	"iter"

	"github.com/strata-dev/strata/pkg/ramp"
)

// ErrVertexOutOfRange is returned by [Graph.Validate] when an edge
// points at a vertex outside [0, NumVerts). A graph that fails
// validation must not be passed to any analysis in this module.
var ErrVertexOutOfRange = errors.New("edge destination out of range")

// Vertex is a dense, zero-based vertex index.
type Vertex = uint32

// Graph is a directed graph stored as out-adjacency in a ramp table.
// Key v holds vertex v's out-neighbor list; there is no per-vertex or
// per-edge payload.
//
// The zero value is not usable; create graphs with [NewGraph] or a
// [Builder]. Graph is not safe for concurrent mutation.
type Graph struct {
	edges *ramp.Table[Vertex]
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{edges: ramp.New[Vertex]()}
}

// FromTable wraps an existing out-adjacency table as a Graph. The table
// is used directly, not copied.
func FromTable(edges *ramp.Table[Vertex]) *Graph {
	return &Graph{edges: edges}
}

// PushTo appends an out-edge from the vertex currently under
// construction to the given destination.
func (g *Graph) PushTo(to Vertex) { g.edges.PushValue(to) }

// FinishFrom closes out the current source vertex and returns its
// index. Every vertex must be finished, including edge-less ones -
// NumVerts is the number of finished vertices.
func (g *Graph) FinishFrom() Vertex {
	return Vertex(g.edges.FinishKey())
}

// NumVerts returns the number of vertices.
func (g *Graph) NumVerts() int { return g.edges.NumKeys() }

// NumEdges returns the number of edges.
func (g *Graph) NumEdges() int { return g.edges.NumValues() }

// EdgesFrom returns vertex from's out-neighbors in insertion order.
// The slice is a view into the graph; do not append to it.
func (g *Graph) EdgesFrom(from Vertex) []Vertex {
	return g.edges.EntryValues(int(from))
}

// EdgeList yields every (from, to) pair, in ascending from order and
// insertion order within a source.
func (g *Graph) EdgeList() iter.Seq2[Vertex, Vertex] {
	return func(yield func(Vertex, Vertex) bool) {
		for from, to := range g.edges.Pairs() {
			if !yield(Vertex(from), to) {
				return
			}
		}
	}
}

// FromEdges yields (from, neighbors) for every vertex, including
// edge-less ones.
func (g *Graph) FromEdges() iter.Seq2[Vertex, []Vertex] {
	return func(yield func(Vertex, []Vertex) bool) {
		for from, tos := range g.edges.Entries() {
			if !yield(Vertex(from), tos) {
				return
			}
		}
	}
}

// Validate checks that every edge destination is a valid vertex index.
// Run this at ingestion boundaries; the analyses assume a valid graph
// and index adjacency without further checks.
func (g *Graph) Validate() error {
	nv := Vertex(g.NumVerts())
	for from, to := range g.EdgeList() {
		if to >= nv {
			return fmt.Errorf("edge %d->%d with %d vertices: %w", from, to, nv, ErrVertexOutOfRange)
		}
	}
	return nil
}

// Transpose returns a new graph with every edge reversed. It runs in
// O(V+E) with two passes: an in-degree count builds the offset slice,
// then a scatter pass places each reversed edge using a per-vertex
// write cursor. No comparison sort is involved, so edges from a given
// source keep the relative order of their appearance in the input.
func (g *Graph) Transpose() *Graph {
	nv := g.NumVerts()

	index := make([]uint32, nv+1)
	for _, to := range g.edges.AllValues() {
		index[to+1]++
	}
	var sum uint32
	for i := range index {
		sum += index[i]
		index[i] = sum
	}

	values := make([]Vertex, g.NumEdges())
	cursor := make([]uint32, nv)
	for from, to := range g.EdgeList() {
		values[index[to]+cursor[to]] = from
		cursor[to]++
	}

	return FromTable(ramp.FromRaw(index, values))
}
