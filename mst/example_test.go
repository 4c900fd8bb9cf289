package mst_test

import (
	"fmt"

	"github.com/katalvlaran/algonotes/core"
	"github.com/katalvlaran/algonotes/mst"
)

func printTree(edges []core.Edge, total int64) {
	fmt.Printf("Total: %d, Edges:", total)
	for _, e := range edges {
		fmt.Printf(" %s-%s", e.From, e.To)
	}
	fmt.Println()
}

// ExampleKruskal keeps the two cheap sides of a triangle.
func ExampleKruskal() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 4)

	edges, total, err := mst.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	printTree(edges, total)
	// Output: Total: 3, Edges: A-B B-C
}

// ExamplePrim grows the tree from A around a pentagon, skipping the heavy A-E side.
func ExamplePrim() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "E", 12)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("C", "D", 3)
	_, _ = g.AddEdge("D", "E", 5)

	edges, total, err := mst.Prim(g, mst.WithRoot("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	printTree(edges, total)
	// Output: Total: 11, Edges: A-B B-C C-D D-E
}

// ExampleCompute runs both methods on a seven-vertex graph. The trees have
// the same weight but list their edges in different orders.
func ExampleCompute() {
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    int64
	}{
		{"A", "B", 2}, {"B", "C", 1}, {"D", "E", 1}, {"E", "G", 2}, {"F", "G", 3},
		{"A", "C", 3}, {"B", "D", 4}, {"C", "E", 5}, {"E", "F", 6}, {"D", "F", 7},
	} {
		_, _ = g.AddEdge(e.u, e.v, e.w)
	}

	for _, m := range []string{mst.MethodKruskal, mst.MethodPrim} {
		edges, total, err := mst.Compute(g, mst.WithMethod(m), mst.WithRoot("A"))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		printTree(edges, total)
	}
	// Output:
	// Total: 13, Edges: B-C D-E A-B E-G F-G B-D
	// Total: 13, Edges: A-B B-C B-D D-E E-G G-F
}

func ExampleKruskal_disconnected() {
	g := core.NewGraph(core.WithWeighted())
	_, _, err := mst.Kruskal(g)
	fmt.Println(err)
	// Output: mst: graph is disconnected
}
