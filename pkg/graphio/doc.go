// Package graphio is the serialization boundary of the layout core.
//
// The layout packages work on dense integer vertices for speed; callers
// work with named nodes. This package converts between the two:
//
//   - [Document] is the JSON input format, nodes with string IDs plus
//     directed edges between them.
//   - [ToGraph] converts a Document to a dense [graph.Graph] and a
//     label table, validating references as it goes. This is the one
//     place malformed input is checked; past it, the core packages
//     assume well-formed graphs and panic otherwise.
//   - [Layout] is the JSON output format: node IDs per layer in
//     left-to-right column order, plus the residual crossing count.
//
// # Formats
//
// A document:
//
//	{
//	  "nodes": [{"id": "app"}, {"id": "lib", "label": "library"}],
//	  "edges": [{"from": "app", "to": "lib"}]
//	}
//
// Node order in the document fixes the dense vertex numbering, so a
// document round-trips deterministically.
package graphio
