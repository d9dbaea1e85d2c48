package graph

import (
	"math"

	"github.com/strata-dev/strata/pkg/optvec"
	"github.com/strata-dev/strata/pkg/ramp"
)

// noSubgraph marks a vertex not yet assigned to any subgraph. Vertices
// still carrying it after the edge scan are isolated.
const noSubgraph = Vertex(math.MaxUint32)

// Subgraphs partitions a graph's non-isolated vertices into weakly
// connected components. Key s of the table holds the vertices of
// subgraph s; isolated vertices (no edges in either direction) appear
// in no subgraph. Numbering is deterministic: subgraphs are numbered by
// their lowest provisional id, which follows edge-scan order.
type Subgraphs struct {
	Verts *ramp.Table[Vertex]
}

// NumSubgraphs returns the number of disjoint subgraphs.
func (s Subgraphs) NumSubgraphs() int { return s.Verts.NumKeys() }

// FindDisjointSubgraphs partitions the graph's vertices into weakly
// connected components, treating every edge as undirected.
//
// The pass over the edge list is a simplified union-find. Each edge
// either assigns a fresh provisional id to both endpoints, propagates
// an existing id to the unassigned endpoint, or records a union by
// aliasing the numerically larger id to the smaller. Pointing larger at
// smaller keeps every alias chain non-increasing, so the later leader
// resolution always terminates. Path compression is deferred to that
// second pass to keep the edge scan a single straight-line loop.
func FindDisjointSubgraphs(g *Graph) Subgraphs {
	// Provisional subgraph of each vertex.
	vGraph := make([]Vertex, g.NumVerts())
	for i := range vGraph {
		vGraph[i] = noSubgraph
	}
	// alias[i] <= i always holds; alias[i] == i marks a leader.
	var alias []Vertex

	for from, to := range g.EdgeList() {
		gFrom, gTo := vGraph[from], vGraph[to]
		switch {
		case gFrom == noSubgraph && gTo == noSubgraph:
			id := Vertex(len(alias))
			alias = append(alias, id)
			vGraph[from] = id
			vGraph[to] = id
		case gFrom == noSubgraph:
			vGraph[from] = gTo
		case gTo == noSubgraph:
			vGraph[to] = gFrom
		case gFrom != gTo:
			alias[max(gFrom, gTo)] = min(gFrom, gTo)
		}
	}

	// Resolve every provisional id to its leader, and hand leaders
	// their final subgraph numbers in first-resolution order.
	numSubgraphs := 0
	remap := make([]Vertex, len(alias))
	for i := range alias {
		leader := Vertex(i)
		for alias[leader] != leader {
			leader = alias[leader]
		}
		alias[i] = leader
		if leader == Vertex(i) {
			remap[i] = Vertex(numSubgraphs)
			numSubgraphs++
		} else {
			remap[i] = noSubgraph
		}
	}

	// Rewrite each vertex's provisional id as its final number.
	for v, id := range vGraph {
		if id == noSubgraph {
			continue
		}
		vGraph[v] = remap[alias[id]]
	}

	// Counting sort: per-subgraph sizes, prefix-sum offsets, then a
	// scatter pass with per-subgraph write cursors.
	counts := make([]uint32, numSubgraphs)
	for _, id := range vGraph {
		if id != noSubgraph {
			counts[id]++
		}
	}

	index := make([]uint32, numSubgraphs+1)
	var sum uint32
	for i, c := range counts {
		index[i] = sum
		sum += c
	}
	index[numSubgraphs] = sum

	cursor := make([]uint32, numSubgraphs)
	values := optvec.NewWithLen[Vertex](int(sum))
	for v, id := range vGraph {
		if id == noSubgraph {
			continue
		}
		values.Set(int(index[id]+cursor[id]), Vertex(v))
		cursor[id]++
	}

	verts := values.TakeCompacted()
	if len(verts) != int(sum) {
		panic("graph: subgraph scatter left unfilled slots")
	}

	return Subgraphs{Verts: ramp.FromRaw(index, verts)}
}
