package layout

import (
	"slices"
)

// Workspace provides reusable buffers for crossing counting, so that
// repeated counts (one per boundary per sweep) avoid reallocations.
// Create with [NewWorkspace] sized to the widest layer that will be
// counted; a smaller workspace produces wrong answers. Not safe for
// concurrent use.
type Workspace struct {
	ft    []int       // Fenwick tree over lower-layer columns
	edges []LayerEdge // scratch for the sorted edge copy
}

// NewWorkspace creates a workspace able to count boundaries whose lower
// layer holds up to maxWidth vertices.
func NewWorkspace(maxWidth int) *Workspace {
	return &Workspace{ft: make([]int, maxWidth+2)}
}

// workspaceFor sizes a workspace to a proper graph's widest layer.
func workspaceFor(pg *ProperGraph) *Workspace {
	maxWidth := 0
	for _, verts := range pg.LayerVerts.Entries() {
		maxWidth = max(maxWidth, len(verts))
	}
	return NewWorkspace(maxWidth)
}

// CountCrossings counts edge crossings across one layer boundary, given
// the current positions. Two edges cross iff their endpoint orders
// disagree: (pos(f1) > pos(f2)) != (pos(t1) > pos(t2)); pairs sharing
// either endpoint never count.
//
// The count is computed as the number of inversions among lower-layer
// positions once edges are sorted by upper-layer position, using a
// Fenwick tree in O(E log V) instead of comparing all pairs. Used for
// diagnostics and tests only - the sweeps never consult it.
func CountCrossings(vpos []uint32, edges []LayerEdge, ws *Workspace) int {
	if len(edges) < 2 {
		return 0
	}

	ws.edges = append(ws.edges[:0], edges...)
	sorted := ws.edges
	slices.SortFunc(sorted, func(a, b LayerEdge) int {
		if vpos[a.From] != vpos[b.From] {
			return int(vpos[a.From]) - int(vpos[b.From])
		}
		return int(vpos[a.To]) - int(vpos[b.To])
	})

	limit := 0
	for _, e := range sorted {
		limit = max(limit, int(vpos[e.To])+2)
	}
	ft := ws.ft[:limit]
	clear(ft)

	crossings, total := 0, 0
	for _, e := range sorted {
		pos := int(vpos[e.To])
		// Edges seen so far whose lower endpoint is right of ours cross us.
		lessOrEqual := 0
		for q := pos + 1; q > 0; q -= q & (-q) {
			lessOrEqual += ft[q]
		}
		crossings += total - lessOrEqual

		total++
		for idx := pos + 1; idx < limit; idx += idx & (-idx) {
			ft[idx]++
		}
	}
	return crossings
}

// CountAllCrossings sums the crossings over every layer boundary of the
// proper graph.
func CountAllCrossings(pg *ProperGraph) int {
	ws := workspaceFor(pg)
	total := 0
	for _, edges := range pg.LayerEdges.Entries() {
		total += CountCrossings(pg.VPos, edges, ws)
	}
	return total
}
