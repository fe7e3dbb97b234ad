package dot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/trellisgraph/trellis/pkg/graph"
)

func buildSample() *graph.DirectedGraph {
	g := graph.New()
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(0, 2)
	g.AddEdge(3, 3)
	return g
}

func TestMarshalCompiled(t *testing.T) {
	// Compiled enumeration is ascending, so the output is fully determined.
	want := `digraph G {
    0;
    1;
    2;
    3;
    0 -> 1;
    0 -> 2;
    1 -> 2;
    3 -> 3;
}
`
	got := Marshal(buildSample().Compile(), "")
	if got != want {
		t.Errorf("Marshal() = %q, want %q", got, want)
	}
}

func TestMarshalName(t *testing.T) {
	g := graph.New()
	g.AddEdge(0, 1)

	got := Marshal(g.Compile(), "deps")
	if !strings.HasPrefix(got, "digraph deps {\n") {
		t.Errorf("Marshal() header = %q, want digraph deps", got[:min(len(got), 20)])
	}
}

func TestMarshalMutable(t *testing.T) {
	// Mutable enumeration order is unspecified; check line structure only.
	got := Marshal(buildSample(), "G")

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if lines[0] != "digraph G {" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[len(lines)-1] != "}" {
		t.Errorf("last line = %q", lines[len(lines)-1])
	}

	var nodeLines, edgeLines int
	for _, l := range lines[1 : len(lines)-1] {
		if !strings.HasPrefix(l, "    ") {
			t.Errorf("body line %q not indented", l)
		}
		if strings.Contains(l, "->") {
			edgeLines++
		} else {
			nodeLines++
		}
	}
	if nodeLines != 4 {
		t.Errorf("node lines = %d, want 4", nodeLines)
	}
	if edgeLines != 4 {
		t.Errorf("edge lines = %d, want 4", edgeLines)
	}
}

func TestMarshalEmpty(t *testing.T) {
	got := Marshal(graph.New().Compile(), "empty")
	want := "digraph empty {\n}\n"
	if got != want {
		t.Errorf("Marshal() = %q, want %q", got, want)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, buildSample().Compile(), "G"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "}\n") {
		t.Errorf("output missing trailing newline after closing brace: %q", buf.String())
	}
}
