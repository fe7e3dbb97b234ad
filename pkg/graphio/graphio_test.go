package graphio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantName  string
		wantEdges int
		wantErr   bool
	}{
		{
			name:      "Valid",
			input:     `{"name": "deps", "edges": [{"from": 0, "to": 1}, {"from": 1, "to": 2}]}`,
			wantName:  "deps",
			wantEdges: 2,
		},
		{
			name:      "Empty",
			input:     `{"edges": []}`,
			wantEdges: 0,
		},
		{
			name:    "Malformed",
			input:   `{edges}`,
			wantErr: true,
		},
		{
			name:    "IDOutOfRange",
			input:   `{"edges": [{"from": 70000, "to": 1}]}`,
			wantErr: true,
		},
		{
			name:    "NegativeID",
			input:   `{"edges": [{"from": -1, "to": 1}]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ReadJSON(strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadJSON: %v", err)
			}
			if doc.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", doc.Name, tt.wantName)
			}
			if len(doc.Edges) != tt.wantEdges {
				t.Errorf("edges = %d, want %d", len(doc.Edges), tt.wantEdges)
			}
		})
	}
}

func TestReadTOML(t *testing.T) {
	input := `name = "deps"

[[edge]]
from = 0
to = 1

[[edge]]
from = 3
to = 3
`
	doc, err := ReadTOML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}
	if doc.Name != "deps" {
		t.Errorf("Name = %q, want deps", doc.Name)
	}
	if len(doc.Edges) != 2 {
		t.Fatalf("edges = %d, want 2", len(doc.Edges))
	}
	if doc.Edges[1].From != 3 || doc.Edges[1].To != 3 {
		t.Errorf("edge[1] = %+v, want {3 3}", doc.Edges[1])
	}
}

func TestReadTOMLOutOfRange(t *testing.T) {
	input := "[[edge]]\nfrom = 100000\nto = 1\n"
	if _, err := ReadTOML(strings.NewReader(input)); err == nil {
		t.Fatal("expected error for out-of-range ID")
	}
}

func TestDocumentGraph(t *testing.T) {
	doc := Document{Edges: []Edge{{0, 1}, {1, 2}, {0, 2}, {3, 3}, {0, 1}}}
	g := doc.Graph()

	if got := g.NodeCount(); got != 4 {
		t.Errorf("NodeCount() = %d, want 4", got)
	}
	// The duplicate (0,1) collapses into the edge set.
	if got := g.EdgeCount(); got != 4 {
		t.Errorf("EdgeCount() = %d, want 4", got)
	}
	if !g.HasEdge(3, 3) {
		t.Error("HasEdge(3, 3) = false")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	doc := Document{Name: "rt", Edges: []Edge{{0, 1}, {1, 2}}}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, doc); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if back.Name != doc.Name || len(back.Edges) != len(doc.Edges) {
		t.Errorf("round trip = %+v, want %+v", back, doc)
	}
}

func TestFromDirected(t *testing.T) {
	doc := Document{Edges: []Edge{{0, 1}, {1, 2}, {0, 2}}}
	out := FromDirected(doc.Graph().Compile(), "snap")

	if out.Name != "snap" {
		t.Errorf("Name = %q, want snap", out.Name)
	}
	// Compiled enumeration order is ascending.
	want := []Edge{{0, 1}, {0, 2}, {1, 2}}
	if len(out.Edges) != len(want) {
		t.Fatalf("edges = %v, want %v", out.Edges, want)
	}
	for i, e := range want {
		if out.Edges[i] != e {
			t.Errorf("edge[%d] = %+v, want %+v", i, out.Edges[i], e)
		}
	}
}

func TestImportDispatch(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "g.json")
	if err := os.WriteFile(jsonPath, []byte(`{"edges": [{"from": 0, "to": 1}]}`), 0644); err != nil {
		t.Fatal(err)
	}
	tomlPath := filepath.Join(dir, "g.toml")
	if err := os.WriteFile(tomlPath, []byte("[[edge]]\nfrom = 0\nto = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{jsonPath, tomlPath} {
		doc, err := Import(path)
		if err != nil {
			t.Fatalf("Import(%s): %v", path, err)
		}
		if len(doc.Edges) != 1 {
			t.Errorf("Import(%s) edges = %d, want 1", path, len(doc.Edges))
		}
	}

	if _, err := Import(filepath.Join(dir, "g.yaml")); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if _, err := Import(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
