package graph

import "slices"

// Builder assembles a [Graph] from edges given in any order. The vertex
// space is sized to cover the largest vertex mentioned by any edge, so
// front ends can add edges as they discover them without tracking the
// vertex count separately.
//
// The zero value is ready to use.
type Builder struct {
	edges [][2]Vertex
}

// Edge records the edge from -> to.
func (b *Builder) Edge(from, to Vertex) {
	b.edges = append(b.edges, [2]Vertex{from, to})
}

// Path records an edge between each consecutive pair of verts, so
// Path(1, 2, 3) records 1->2 and 2->3.
func (b *Builder) Path(verts ...Vertex) {
	for i := 0; i+1 < len(verts); i++ {
		b.Edge(verts[i], verts[i+1])
	}
}

// Build assembles the graph. Edges from the same source keep the order
// they were recorded in; vertices never mentioned as a source get empty
// out-neighbor lists. The result always passes [Graph.Validate].
func (b *Builder) Build() *Graph {
	edges := b.edges
	b.edges = nil
	slices.SortStableFunc(edges, func(a, c [2]Vertex) int {
		return int(a[0]) - int(c[0])
	})

	var numVerts Vertex
	for _, e := range edges {
		numVerts = max(numVerts, e[0]+1, e[1]+1)
	}

	g := NewGraph()
	for _, e := range edges {
		for Vertex(g.NumVerts()) < e[0] {
			g.FinishFrom()
		}
		g.PushTo(e[1])
	}
	for Vertex(g.NumVerts()) < numVerts {
		g.FinishFrom()
	}
	return g
}
