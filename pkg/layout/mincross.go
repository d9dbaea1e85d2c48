package layout

import (
	"math"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/strata-dev/strata/pkg/graph"
)

// DefaultSweeps is the number of sweep iterations [MinCrossings] runs
// when [Options.Sweeps] is zero. One iteration is one full down sweep
// followed by one full up sweep.
const DefaultSweeps = 1

// Options configures [MinCrossings].
type Options struct {
	// Sweeps is the number of down-then-up sweep iterations. Zero or
	// negative means DefaultSweeps. There is no convergence check; the
	// work is bounded and deterministic.
	Sweeps int

	// Logger, when non-nil, receives per-sweep crossing counts at
	// debug level.
	Logger *log.Logger
}

// MinCrossings reorders each layer of the proper graph to reduce edge
// crossings, mutating pg.VPos in place.
//
// Each iteration performs one down sweep (top boundary to bottom, the
// upper layer of each boundary held fixed while the lower layer is
// repositioned) and then one up sweep (bottom to top, mirrored). Each
// boundary pass repositions the moving layer by the barycenter
// heuristic: a vertex moves to the average position of its neighbors in
// the fixed layer. This reduces crossings in practice but guarantees
// nothing - the problem is NP-hard and no optimality is claimed.
func MinCrossings(pg *ProperGraph, opts Options) {
	sweeps := opts.Sweeps
	if sweeps <= 0 {
		sweeps = DefaultSweeps
	}
	for i := 0; i < sweeps; i++ {
		sweepDown(pg, opts.Logger)
		sweepUp(pg, opts.Logger)
	}
}

// sweepDown walks boundaries from the top of the graph toward layer 0.
// At boundary L the upper layer L+1 is stable and layer L moves.
func sweepDown(pg *ProperGraph, logger *log.Logger) {
	before := countForLog(pg, logger)
	for l := pg.LayerEdges.NumKeys() - 1; l >= 0; l-- {
		edges := pg.LayerEdges.EntryValues(l)
		pairs := make([]stableMoving, len(edges))
		for i, e := range edges {
			pairs[i] = stableMoving{stable: e.From, moving: e.To}
		}
		reorderByBarycenter(pg.VPos, pairs, pg.LayerVerts.EntryValues(l))
	}
	logSweep(pg, logger, "down sweep", before)
}

// sweepUp walks boundaries from layer 0 toward the top. At boundary L
// the lower layer L is stable and layer L+1 moves.
func sweepUp(pg *ProperGraph, logger *log.Logger) {
	before := countForLog(pg, logger)
	for l := 0; l < pg.LayerEdges.NumKeys(); l++ {
		edges := pg.LayerEdges.EntryValues(l)
		pairs := make([]stableMoving, len(edges))
		for i, e := range edges {
			pairs[i] = stableMoving{stable: e.To, moving: e.From}
		}
		reorderByBarycenter(pg.VPos, pairs, pg.LayerVerts.EntryValues(l+1))
	}
	logSweep(pg, logger, "up sweep", before)
}

// stableMoving is one boundary edge viewed from a sweep direction: the
// stable endpoint keeps its position, the moving endpoint is assigned a
// new one.
type stableMoving struct {
	stable graph.Vertex
	moving graph.Vertex
}

// reorderByBarycenter assigns new positions to the moving layer of one
// boundary. Edge-bearing vertices are sorted by the quantized mean
// position of their stable neighbors and take columns 0..k-1; vertices
// of the moving layer with no edges at this boundary then take columns
// k..n-1 in their previous relative order. The layer's positions stay
// a permutation of 0..n-1, so repeated passes never collide.
func reorderByBarycenter(vpos []uint32, pairs []stableMoving, layerVerts []graph.Vertex) {
	if len(pairs) == 0 {
		return
	}

	slices.SortStableFunc(pairs, func(a, b stableMoving) int {
		return int(a.moving) - int(b.moving)
	})

	type bary struct {
		moving graph.Vertex
		scaled uint32
	}
	barys := make([]bary, 0, len(pairs))
	for start := 0; start < len(pairs); {
		end := start
		for end < len(pairs) && pairs[end].moving == pairs[start].moving {
			end++
		}
		var sum float64
		for _, p := range pairs[start:end] {
			sum += float64(vpos[p.stable])
		}
		avg := sum / float64(end-start)
		// Quantizing to integer thousandths keeps ties possible, which
		// the stable sort then breaks by vertex order.
		barys = append(barys, bary{
			moving: pairs[start].moving,
			scaled: uint32(math.Round(avg * 1000)),
		})
		start = end
	}

	slices.SortStableFunc(barys, func(a, b bary) int {
		return int(a.scaled) - int(b.scaled)
	})
	moved := make(map[graph.Vertex]bool, len(barys))
	for i, b := range barys {
		vpos[b.moving] = uint32(i)
		moved[b.moving] = true
	}

	// Vertices of this layer untouched by this boundary's edges slot in
	// after the reordered ones, keeping their old relative order.
	free := make([]graph.Vertex, 0, len(layerVerts)-len(barys))
	for _, v := range layerVerts {
		if !moved[v] {
			free = append(free, v)
		}
	}
	slices.SortStableFunc(free, func(a, b graph.Vertex) int {
		return int(vpos[a]) - int(vpos[b])
	})
	for i, v := range free {
		vpos[v] = uint32(len(barys) + i)
	}
}

func countForLog(pg *ProperGraph, logger *log.Logger) int {
	if logger == nil {
		return 0
	}
	return CountAllCrossings(pg)
}

func logSweep(pg *ProperGraph, logger *log.Logger, name string, before int) {
	if logger == nil {
		return
	}
	logger.Debugf("%s: crossings %d -> %d", name, before, CountAllCrossings(pg))
}
