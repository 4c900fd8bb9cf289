package core_test

import (
	"fmt"

	"github.com/katalvlaran/algonotes/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()

	// AddEdge creates missing vertices.
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "A", 0)

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))

	_ = g.RemoveVertex("B")
	fmt.Println("After removing B:", g.Vertices(), g.EdgeCount())

	// Output:
	// Vertices: [A B C]
	// Edge B→A exists? true
	// After removing B: [A C] 1
}

// ExampleGraph_Neighbors shows the edge-ID order of Neighbors on a weighted digraph.
func ExampleGraph_Neighbors() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("S", "B", 4)
	_, _ = g.AddEdge("S", "A", 1)

	nbs, _ := g.Neighbors("S")
	for _, e := range nbs {
		fmt.Printf("%s %s→%s w=%d\n", e.ID, e.From, e.To, e.Weight)
	}

	// Output:
	// e1 S→B w=4
	// e2 S→A w=1
}
