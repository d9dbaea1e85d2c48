package graphio

// =============================================================================
// Document - Graph Input Format
// =============================================================================

// Document is the canonical input format for graphs. Used for files,
// API payloads, and cache storage.
//
// Node order is significant: it fixes the dense vertex numbering, so
// the same document always produces the same layout.
type Document struct {
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// Node is one named vertex of a document.
type Node struct {
	ID    string `json:"id" bson:"id"`
	Label string `json:"label,omitempty" bson:"label,omitempty"` // Display label (defaults to ID)
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge represents a directed edge between two named nodes.
type Edge struct {
	From string `json:"from" bson:"from"`
	To   string `json:"to" bson:"to"`
}

// =============================================================================
// Layout - Computed Output Format
// =============================================================================

// Layout is the output format of the layout pipeline.
//
// Layers[0] is the bottom layer (the sinks); within a layer, node IDs
// appear in column order left to right. Nodes without edges are listed
// separately: they belong to no layer.
type Layout struct {
	Layers    [][]string `json:"layers" bson:"layers"`
	Isolated  []string   `json:"isolated,omitempty" bson:"isolated,omitempty"`
	Crossings int        `json:"crossings" bson:"crossings"`
}

// NumLayers returns the number of layers in the layout.
func (l *Layout) NumLayers() int { return len(l.Layers) }
