package dot

import (
	"bytes"
	"fmt"
	"io"

	"github.com/trellisgraph/trellis/pkg/graph"
)

// DefaultName is used when Write or Marshal receive an empty graph name.
const DefaultName = "G"

// Write writes g to w in DOT form:
//
//	digraph <name> {
//	    <node>;
//	    <from> -> <to>;
//	}
//
// Node lines appear in the graph's Nodes() enumeration order and edge lines
// in Nodes() x Successors() order; the writer applies no sorting of its own.
// The output ends with a newline after the closing brace.
func Write(w io.Writer, g graph.Directed, name string) error {
	if name == "" {
		name = DefaultName
	}
	if _, err := fmt.Fprintf(w, "digraph %s {\n", name); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for node := range g.Nodes() {
		if _, err := fmt.Fprintf(w, "    %d;\n", node); err != nil {
			return fmt.Errorf("write node %d: %w", node, err)
		}
	}
	for from := range g.Nodes() {
		for to := range g.Successors(from) {
			if _, err := fmt.Fprintf(w, "    %d -> %d;\n", from, to); err != nil {
				return fmt.Errorf("write edge (%d,%d): %w", from, to, err)
			}
		}
	}

	if _, err := io.WriteString(w, "}\n"); err != nil {
		return fmt.Errorf("write footer: %w", err)
	}
	return nil
}

// Marshal returns the DOT text for g. See [Write] for the format.
func Marshal(g graph.Directed, name string) string {
	var buf bytes.Buffer
	// bytes.Buffer writes cannot fail.
	_ = Write(&buf, g, name)
	return buf.String()
}
