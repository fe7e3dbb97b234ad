package graph_test

import (
	"fmt"

	"github.com/trellisgraph/trellis/pkg/graph"
)

func ExampleDirectedGraph_Compile() {
	g := graph.New()
	g.AddEdge(0, 2)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	c := g.Compile()
	for e := range c.Edges() {
		fmt.Printf("%d -> %d\n", e.From, e.To)
	}
	// Output:
	// 0 -> 1
	// 0 -> 2
	// 1 -> 2
}

func ExampleBFS() {
	g := graph.New()
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 3)

	// Traverse the compiled form for deterministic sibling order.
	for n := range graph.BFS(g.Compile(), 0) {
		fmt.Println(n)
	}
	// Output:
	// 0
	// 1
	// 2
	// 3
}

func ExampleTopological() {
	g := graph.New()
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(0, 2)

	topo := graph.Topological(g.Compile())
	fmt.Println(topo.Order(), topo.Valid())
	// Output:
	// [0 1 2] true
}
