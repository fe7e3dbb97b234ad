package graphio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/trellisgraph/trellis/pkg/graph"
)

// Edge is one serialized edge.
type Edge struct {
	From graph.NodeID `json:"from" toml:"from"`
	To   graph.NodeID `json:"to" toml:"to"`
}

// Document is a decoded graph file: an optional name plus an edge list.
type Document struct {
	Name  string `json:"name,omitempty" toml:"name"`
	Edges []Edge `json:"edges" toml:"edge"`
}

// Graph builds a mutable graph from the document's edges.
// The returned graph is independent of the document.
func (d Document) Graph() *graph.DirectedGraph {
	g := graph.New()
	for _, e := range d.Edges {
		g.AddEdge(e.From, e.To)
	}
	return g
}

// FromDirected captures g's current edge set as a document.
// Edges appear in Nodes() x Successors() enumeration order.
func FromDirected(g graph.Directed, name string) Document {
	doc := Document{Name: name}
	for from := range g.Nodes() {
		for to := range g.Successors(from) {
			doc.Edges = append(doc.Edges, Edge{From: from, To: to})
		}
	}
	return doc
}

// Import reads a graph document, dispatching on the file extension:
// .json for [ImportJSON], .toml for [ImportTOML].
func Import(path string) (Document, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ImportJSON(path)
	case ".toml":
		return ImportTOML(path)
	default:
		return Document{}, fmt.Errorf("unsupported graph file extension %q (want .json or .toml)", ext)
	}
}
