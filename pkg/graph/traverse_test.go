package graph

import (
	"slices"
	"testing"
)

func buildDiamond() *DirectedGraph {
	g := New()
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 3)
	return g
}

func TestDFSCompiledDeterministic(t *testing.T) {
	// Compiled successors are ascending, and the LIFO frontier pops the
	// highest-pushed sibling first.
	tests := []struct {
		name  string
		build func() *DirectedGraph
		start NodeID
		want  []NodeID
	}{
		{"Sample", buildSample, 0, []NodeID{0, 2, 1}},
		{"Diamond", buildDiamond, 0, []NodeID{0, 2, 3, 1}},
		{"SelfLoop", buildSample, 3, []NodeID{3}},
		{"Sink", buildSample, 2, []NodeID{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.build().Compile()
			got := collect(t, DFS(c, tt.start))
			if !slices.Equal(got, tt.want) {
				t.Errorf("DFS(%d) = %v, want %v", tt.start, got, tt.want)
			}
		})
	}
}

func TestBFSCompiledDeterministic(t *testing.T) {
	tests := []struct {
		name  string
		build func() *DirectedGraph
		start NodeID
		want  []NodeID
	}{
		{"Sample", buildSample, 0, []NodeID{0, 1, 2}},
		{"Diamond", buildDiamond, 0, []NodeID{0, 1, 2, 3}},
		{"SelfLoop", buildSample, 3, []NodeID{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.build().Compile()
			got := collect(t, BFS(c, tt.start))
			if !slices.Equal(got, tt.want) {
				t.Errorf("BFS(%d) = %v, want %v", tt.start, got, tt.want)
			}
		})
	}
}

func TestTraversalMutableCoverage(t *testing.T) {
	// Successor order on the mutable graph is map order, so only membership
	// and the leading element are guaranteed.
	g := buildSample()

	for name, seq := range map[string]func(Directed, NodeID) func(func(NodeID) bool){
		"DFS": func(d Directed, s NodeID) func(func(NodeID) bool) { return DFS(d, s) },
		"BFS": func(d Directed, s NodeID) func(func(NodeID) bool) { return BFS(d, s) },
	} {
		t.Run(name, func(t *testing.T) {
			got := collect(t, seq(g, 0))
			if len(got) == 0 || got[0] != 0 {
				t.Fatalf("%s(0) = %v, want start node first", name, got)
			}
			slices.Sort(got)
			if !slices.Equal(got, []NodeID{0, 1, 2}) {
				t.Errorf("%s(0) visited %v, want exactly {0 1 2}", name, got)
			}
		})
	}
}

func TestTraversalVisitsOnce(t *testing.T) {
	// Dense graph with converging paths; every reachable node must appear
	// exactly once despite duplicate frontier pushes.
	g := New()
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)
	g.AddEdge(1, 0)
	c := g.Compile()

	for name, got := range map[string][]NodeID{
		"DFS": collect(t, DFS(c, 0)),
		"BFS": collect(t, BFS(c, 0)),
	} {
		seen := make(map[NodeID]int)
		for _, n := range got {
			seen[n]++
		}
		for n, count := range seen {
			if count != 1 {
				t.Errorf("%s visited %d %d times", name, n, count)
			}
		}
		if len(seen) != 3 {
			t.Errorf("%s visited %d nodes, want 3", name, len(seen))
		}
	}
}

func TestBFSLayerOrder(t *testing.T) {
	// 0 -> {1,2}, 1 -> 3, 2 -> 4: distance layers {0}, {1,2}, {3,4}.
	g := New()
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 4)
	c := g.Compile()

	dist := map[NodeID]int{0: 0, 1: 1, 2: 1, 3: 2, 4: 2}
	prev := -1
	for n := range BFS(c, 0) {
		if dist[n] < prev {
			t.Fatalf("BFS yielded %d (distance %d) after distance %d", n, dist[n], prev)
		}
		prev = dist[n]
	}
}

func TestTraversalEarlyStop(t *testing.T) {
	c := buildDiamond().Compile()

	var got []NodeID
	for n := range DFS(c, 0) {
		got = append(got, n)
		if len(got) == 2 {
			break
		}
	}
	if len(got) != 2 {
		t.Fatalf("early stop yielded %v", got)
	}

	// A new range restarts from scratch.
	restarted := collect(t, DFS(c, 0))
	if len(restarted) != 4 {
		t.Errorf("restarted DFS visited %v, want all 4 nodes", restarted)
	}
}

func TestTopologicalDAG(t *testing.T) {
	g := New()
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(0, 2)
	c := g.Compile()

	topo := Topological(c)
	if !topo.Valid() {
		t.Fatal("Valid() = false for a DAG")
	}
	if topo.HasCycle() {
		t.Fatal("HasCycle() = true for a DAG")
	}
	if got := topo.Order(); !slices.Equal(got, []NodeID{0, 1, 2}) {
		t.Errorf("Order() = %v, want [0 1 2]", got)
	}
}

func TestTopologicalRespectsEdges(t *testing.T) {
	c := buildDiamond().Compile()

	topo := Topological(c)
	if !topo.Valid() {
		t.Fatal("Valid() = false for diamond DAG")
	}

	pos := make(map[NodeID]int)
	for i, n := range topo.Order() {
		pos[n] = i
	}
	for e := range c.Edges() {
		if pos[e.From] >= pos[e.To] {
			t.Errorf("edge (%d,%d) violated: positions %d >= %d", e.From, e.To, pos[e.From], pos[e.To])
		}
	}
}

func TestTopologicalSelfLoop(t *testing.T) {
	// Node 3 feeds its own in-degree, so it never reaches the queue; the
	// rest of the graph is still ordered.
	topo := Topological(buildSample().Compile())

	if topo.Valid() {
		t.Error("Valid() = true despite self-loop")
	}
	if !topo.HasCycle() {
		t.Error("HasCycle() = false despite self-loop")
	}
	if got := topo.Order(); !slices.Equal(got, []NodeID{0, 1, 2}) {
		t.Errorf("Order() = %v, want [0 1 2]", got)
	}
}

func TestTopologicalCycle(t *testing.T) {
	g := New()
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)
	topo := Topological(g.Compile())

	if topo.Len() != 0 {
		t.Errorf("Order() = %v, want empty for a pure cycle", topo.Order())
	}
	if !topo.HasCycle() {
		t.Error("HasCycle() = false for a pure cycle")
	}
}

func TestTopologicalPartialCycle(t *testing.T) {
	// A zero-in-degree node exists, but the 1<->2 cycle keeps the order
	// incomplete. The non-empty result must still be reported as cyclic.
	g := New()
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)
	topo := Topological(g.Compile())

	if got := topo.Order(); !slices.Equal(got, []NodeID{0}) {
		t.Errorf("Order() = %v, want [0]", got)
	}
	if topo.Valid() {
		t.Error("Valid() = true for a graph with an unreachable cycle")
	}
}

func TestTopologicalEmpty(t *testing.T) {
	topo := Topological(New().Compile())

	if !topo.Valid() {
		t.Error("Valid() = false for an empty graph")
	}
	if topo.Len() != 0 {
		t.Errorf("Len() = %d, want 0", topo.Len())
	}
}
