package layout

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/strata-dev/strata/pkg/graph"
	"github.com/strata-dev/strata/pkg/ramp"
)

// noPos is the position sentinel for vertices that belong to no layer
// (isolated vertices). They take no part in crossing minimization.
const noPos = uint32(math.MaxUint32)

// LayerEdge is one edge of a proper graph, crossing a single layer
// boundary downward: From sits one layer above To.
type LayerEdge struct {
	From graph.Vertex
	To   graph.Vertex
}

// ProperGraph is a layered graph in which every edge spans exactly one
// layer. Original edges spanning s > 1 layers are replaced by chains
// through s-1 virtual vertices, one per intermediate layer. Virtual
// vertex ids are disjoint from original ids, allocated upward from
// NumOrigVerts.
type ProperGraph struct {
	// NumOrigVerts is the vertex count of the input graph.
	NumOrigVerts int

	// NumVerts counts all proper vertices, original plus virtual.
	NumVerts int

	// LayerVerts maps layer -> vertices present at that layer (original
	// and virtual, non-isolated only). When the input has at least one
	// edge it holds exactly NumLayers keys.
	LayerVerts *ramp.Table[graph.Vertex]

	// LayerEdges maps layer L -> edges from layer L+1 down into L.
	LayerEdges *ramp.Table[LayerEdge]

	// VPos[v] is vertex v's column within its layer, the only state
	// mutated by crossing minimization. Isolated vertices hold a
	// sentinel and are skipped.
	VPos []uint32
}

// IsVirtual reports whether v was introduced during proper-graph
// construction rather than present in the input.
func (pg *ProperGraph) IsVirtual(v graph.Vertex) bool {
	return int(v) >= pg.NumOrigVerts
}

// BuildProperGraph derives a proper graph from g and its layer map.
//
// Every edge is scanned in (from-ascending, then insertion) order. An
// edge of span 1 is emitted unchanged; a span-s edge allocates s-1
// virtual vertices from a counter that starts at g.NumVerts and only
// ever increases, producing the chain from -> virt -> ... -> to with
// one link per boundary. Per-layer vertex and edge lists are discovered
// out of layer order during that scan, so they are accumulated through
// ramp builders.
//
// Initial positions number each layer's vertices 0..n-1: original
// vertices first in ascending id order, then virtuals in allocation
// order. Arbitrary, but deterministic.
//
// The layer map must come from [AssignLayers] for this graph: an edge
// whose span is not positive makes BuildProperGraph panic.
func BuildProperGraph(g *graph.Graph, lm LayerMap) *ProperGraph {
	nv := g.NumVerts()
	vLayer := lm.VLayer

	// Register original, non-isolated vertices with their layers.
	inLayer := bitset.New(uint(nv))
	for from, to := range g.EdgeList() {
		inLayer.Set(uint(from))
		inLayer.Set(uint(to))
	}
	layerVerts := ramp.NewBuilder[graph.Vertex](nv)
	for v := uint(0); v < uint(nv); v++ {
		if inLayer.Test(v) {
			layerVerts.Push(vLayer[v], graph.Vertex(v))
		}
	}

	layerEdges := ramp.NewBuilder[LayerEdge](g.NumEdges())
	nextVirt := graph.Vertex(nv)
	for from, to := range g.EdgeList() {
		fromLayer, toLayer := vLayer[from], vLayer[to]
		if fromLayer <= toLayer {
			panic(fmt.Sprintf("layout: edge %d->%d has span %d, layering is broken",
				from, to, int(fromLayer)-int(toLayer)))
		}

		// Walk down from the layer just below 'from', allocating one
		// virtual vertex per intermediate layer.
		prev := from
		for layer := fromLayer - 1; layer > toLayer; layer-- {
			virt := nextVirt
			nextVirt++
			layerVerts.Push(layer, virt)
			layerEdges.Push(layer, LayerEdge{From: prev, To: virt})
			prev = virt
		}
		layerEdges.Push(toLayer, LayerEdge{From: prev, To: to})
	}

	pg := &ProperGraph{
		NumOrigVerts: nv,
		NumVerts:     int(nextVirt),
		LayerVerts:   layerVerts.Finish(),
		LayerEdges:   layerEdges.Finish(),
	}
	if pg.LayerVerts.NumValues() > 0 && pg.LayerVerts.NumKeys() != lm.NumLayers {
		panic(fmt.Sprintf("layout: %d populated layers, layer map says %d",
			pg.LayerVerts.NumKeys(), lm.NumLayers))
	}

	pg.VPos = make([]uint32, pg.NumVerts)
	for i := range pg.VPos {
		pg.VPos[i] = noPos
	}
	for _, verts := range pg.LayerVerts.Entries() {
		for x, v := range verts {
			pg.VPos[v] = uint32(x)
		}
	}
	return pg
}
