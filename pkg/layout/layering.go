package layout

import (
	"github.com/strata-dev/strata/pkg/graph"
)

// LayerMap records which layer each vertex has been assigned to.
type LayerMap struct {
	// NumLayers is the number of layers, always >= 1.
	NumLayers int

	// VLayer[v] is the layer of vertex v. Layer 0 is the bottom.
	VLayer []uint32
}

// AssignLayers assigns every vertex of g to a layer such that for every
// edge f -> t, VLayer[f] > VLayer[t].
//
// The assignment is longest-path layering: vertices are processed in
// reverse topological (sinks-to-sources) order, and each vertex lands
// one layer above the deepest of its out-neighbors, or at layer 0 if it
// has none. This pushes every vertex as low as its dependencies allow
// and minimizes the layer count for the given topological order.
// Isolated vertices stay at layer 0.
//
// AssignLayers is undefined on cyclic input and propagates
// [graph.ErrCycleDetected] from the topological sort unchanged.
func AssignLayers(g *graph.Graph) (LayerMap, error) {
	topoOrder, err := graph.TopoSortReverse(g)
	if err != nil {
		return LayerMap{}, err
	}

	vLayer := make([]uint32, g.NumVerts())
	var maxLayer uint32
	for _, from := range topoOrder {
		// Out-neighbors are already assigned: the order is sinks first.
		var layer uint32
		for _, to := range g.EdgesFrom(from) {
			layer = max(layer, vLayer[to]+1)
		}
		vLayer[from] = layer
		maxLayer = max(maxLayer, layer)
	}

	return LayerMap{
		NumLayers: int(maxLayer) + 1,
		VLayer:    vLayer,
	}, nil
}
