package graphio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bits-and-blooms/bitset"

	"github.com/strata-dev/strata/pkg/graph"
	"github.com/strata-dev/strata/pkg/layout"
)

// Validation errors returned by [ToGraph].
var (
	// ErrEmptyNodeID indicates a node with an empty ID.
	ErrEmptyNodeID = errors.New("node with empty id")

	// ErrDuplicateNode indicates two nodes sharing an ID.
	ErrDuplicateNode = errors.New("duplicate node id")

	// ErrUnknownNode indicates an edge endpoint naming no declared node.
	ErrUnknownNode = errors.New("edge references unknown node")
)

// =============================================================================
// Document → Dense Graph
// =============================================================================

// ToGraph converts a document to a dense graph plus the ID table that
// maps each vertex back to its node ID. Vertices are numbered in
// document order. Edges from the same source keep document order.
//
// This is the validation boundary: every malformed input the core
// packages would panic on is rejected here with a wrapped sentinel
// error.
func ToGraph(doc Document) (*graph.Graph, []string, error) {
	index := make(map[string]graph.Vertex, len(doc.Nodes))
	ids := make([]string, len(doc.Nodes))
	for i, n := range doc.Nodes {
		if n.ID == "" {
			return nil, nil, fmt.Errorf("node %d: %w", i, ErrEmptyNodeID)
		}
		if _, ok := index[n.ID]; ok {
			return nil, nil, fmt.Errorf("node %d: %w: %q", i, ErrDuplicateNode, n.ID)
		}
		index[n.ID] = graph.Vertex(i)
		ids[i] = n.ID
	}

	var b graph.Builder
	for i, e := range doc.Edges {
		from, ok := index[e.From]
		if !ok {
			return nil, nil, fmt.Errorf("edge %d: %w: %q", i, ErrUnknownNode, e.From)
		}
		to, ok := index[e.To]
		if !ok {
			return nil, nil, fmt.Errorf("edge %d: %w: %q", i, ErrUnknownNode, e.To)
		}
		b.Edge(from, to)
	}
	g := b.Build()

	// The builder can undercount vertices when trailing nodes have no
	// edges; pad so vertex numbering covers every document node.
	for g.NumVerts() < len(doc.Nodes) {
		g.FinishFrom()
	}
	if err := g.Validate(); err != nil {
		return nil, nil, err
	}
	return g, ids, nil
}

// FromGraph converts a dense graph back to a document using the given
// ID table. The inverse of [ToGraph] up to edge ordering.
func FromGraph(g *graph.Graph, ids []string) Document {
	doc := Document{Nodes: make([]Node, len(ids))}
	for i, id := range ids {
		doc.Nodes[i] = Node{ID: id}
	}
	for from, to := range g.EdgeList() {
		doc.Edges = append(doc.Edges, Edge{From: ids[from], To: ids[to]})
	}
	return doc
}

// =============================================================================
// Proper Graph → Layout
// =============================================================================

// BuildLayout exports the computed ordering of a proper graph. Virtual
// vertices are dropped; each layer lists the IDs of its real nodes in
// column order. Original nodes on no layer (nodes without edges) are
// reported as isolated.
func BuildLayout(pg *layout.ProperGraph, ids []string) *Layout {
	out := &Layout{
		Layers:    make([][]string, pg.LayerVerts.NumKeys()),
		Crossings: layout.CountAllCrossings(pg),
	}

	placed := bitset.New(uint(pg.NumOrigVerts))
	for l, verts := range pg.LayerVerts.Entries() {
		ordered := make([]graph.Vertex, len(verts))
		for _, v := range verts {
			ordered[pg.VPos[v]] = v
		}
		row := make([]string, 0, len(verts))
		for _, v := range ordered {
			if pg.IsVirtual(v) {
				continue
			}
			placed.Set(uint(v))
			row = append(row, ids[v])
		}
		out.Layers[l] = row
	}

	for v := range pg.NumOrigVerts {
		if !placed.Test(uint(v)) {
			out.Isolated = append(out.Isolated, ids[v])
		}
	}
	return out
}

// =============================================================================
// Serialization API
// =============================================================================

// MarshalDocument converts a document to indented JSON bytes.
func MarshalDocument(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(doc, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadDocument decodes a JSON document from an io.Reader.
func ReadDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode: %w", err)
	}
	return doc, nil
}

// ReadDocumentFile reads a JSON file and returns the decoded document.
func ReadDocumentFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadDocument(f)
}

// MarshalLayout converts a layout to indented JSON bytes.
func MarshalLayout(l *Layout) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(l, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteLayout writes a layout as JSON to an io.Writer.
func WriteLayout(l *Layout, w io.Writer) error {
	return writeJSON(l, w)
}

// WriteLayoutFile writes a layout to a JSON file.
// The file is created with 0644 permissions.
func WriteLayoutFile(l *Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeJSON(l, f)
}

func writeJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
