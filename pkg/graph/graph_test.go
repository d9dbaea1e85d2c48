package graph

import (
	"errors"
	"slices"
	"testing"
)

func TestBuilderBuild(t *testing.T) {
	var b Builder
	b.Path(1, 2, 3)
	b.Edge(1, 3)
	b.Edge(5, 0)
	g := b.Build()

	if got := g.NumVerts(); got != 6 {
		t.Errorf("NumVerts() = %d, want 6", got)
	}
	if got := g.NumEdges(); got != 4 {
		t.Errorf("NumEdges() = %d, want 4", got)
	}
	if got := g.EdgesFrom(1); !slices.Equal(got, []Vertex{2, 3}) {
		t.Errorf("EdgesFrom(1) = %v, want [2 3]", got)
	}
	if got := g.EdgesFrom(0); len(got) != 0 {
		t.Errorf("EdgesFrom(0) = %v, want empty", got)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestEdgeList(t *testing.T) {
	var b Builder
	b.Edge(2, 0)
	b.Edge(0, 1)
	b.Edge(0, 2)
	g := b.Build()

	var got [][2]Vertex
	for from, to := range g.EdgeList() {
		got = append(got, [2]Vertex{from, to})
	}
	want := [][2]Vertex{{0, 1}, {0, 2}, {2, 0}}
	if !slices.Equal(got, want) {
		t.Errorf("EdgeList() = %v, want %v", got, want)
	}
}

func TestFromEdges(t *testing.T) {
	var b Builder
	b.Edge(1, 2)
	b.Edge(1, 0)
	g := b.Build()

	var froms []Vertex
	var lens []int
	for from, tos := range g.FromEdges() {
		froms = append(froms, from)
		lens = append(lens, len(tos))
	}
	if !slices.Equal(froms, []Vertex{0, 1, 2}) {
		t.Errorf("FromEdges() froms = %v, want [0 1 2]", froms)
	}
	if !slices.Equal(lens, []int{0, 2, 0}) {
		t.Errorf("FromEdges() neighbor counts = %v, want [0 2 0]", lens)
	}
}

func TestValidateOutOfRange(t *testing.T) {
	g := NewGraph()
	g.PushTo(5) // vertex 0 -> 5, but only 1 vertex exists
	g.FinishFrom()

	err := g.Validate()
	if !errors.Is(err, ErrVertexOutOfRange) {
		t.Errorf("Validate() = %v, want ErrVertexOutOfRange", err)
	}
}

func TestTranspose(t *testing.T) {
	var b Builder
	b.Path(0, 1, 2)
	b.Edge(0, 2)
	g := b.Build()

	tr := g.Transpose()
	if got := tr.NumVerts(); got != g.NumVerts() {
		t.Errorf("Transpose NumVerts() = %d, want %d", got, g.NumVerts())
	}
	if got := tr.NumEdges(); got != g.NumEdges() {
		t.Errorf("Transpose NumEdges() = %d, want %d", got, g.NumEdges())
	}
	if got := tr.EdgesFrom(2); !slices.Equal(got, []Vertex{1, 0}) && !slices.Equal(got, []Vertex{0, 1}) {
		t.Errorf("Transpose EdgesFrom(2) = %v, want {0,1} in some order", got)
	}
	if got := tr.EdgesFrom(0); len(got) != 0 {
		t.Errorf("Transpose EdgesFrom(0) = %v, want empty", got)
	}
	if err := tr.Validate(); err != nil {
		t.Errorf("Transpose().Validate() = %v, want nil", err)
	}
}

func TestTransposeInvolution(t *testing.T) {
	var b Builder
	b.Path(1, 10, 11, 12, 13, 14)
	b.Path(1, 20, 21, 22, 23, 24)
	b.Edge(1, 14)
	b.Edge(1, 24)
	b.Edge(10, 23)
	g := b.Build()

	back := g.Transpose().Transpose()
	if back.NumVerts() != g.NumVerts() {
		t.Fatalf("double transpose NumVerts() = %d, want %d", back.NumVerts(), g.NumVerts())
	}
	for v := Vertex(0); v < Vertex(g.NumVerts()); v++ {
		want := slices.Sorted(slices.Values(g.EdgesFrom(v)))
		got := slices.Sorted(slices.Values(back.EdgesFrom(v)))
		if !slices.Equal(got, want) {
			t.Errorf("vertex %d: neighbor set %v, want %v", v, got, want)
		}
	}
}
