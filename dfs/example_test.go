package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/algonotes/core"
	"github.com/katalvlaran/algonotes/dfs"
)

// ExampleDFS prints discovery and finish order on a small tree.
func ExampleDFS() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("A", "C", 0)
	_, _ = g.AddEdge("B", "D", 0)

	res, _ := dfs.DFS(g, "A")
	fmt.Println("pre: ", res.PreOrder)
	fmt.Println("post:", res.Order)
	// Output:
	// pre:  [A B D C]
	// post: [D B C A]
}

// ExampleTopologicalSort orders build steps so each runs after its prerequisites.
func ExampleTopologicalSort() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("fetch", "compile", 0)
	_, _ = g.AddEdge("compile", "test", 0)
	_, _ = g.AddEdge("compile", "package", 0)
	_, _ = g.AddEdge("test", "release", 0)
	_, _ = g.AddEdge("package", "release", 0)

	order, err := dfs.TopologicalSort(g)
	fmt.Println(order, err)

	_, _ = g.AddEdge("release", "fetch", 0)
	_, err = dfs.TopologicalSort(g)
	fmt.Println(err)
	// Output:
	// [fetch compile test package release] <nil>
	// dfs: cycle detected: compile → package → release → fetch → compile
}

// ExampleHasCycle shows the witness returned for an undirected triangle.
func ExampleHasCycle() {
	g := core.NewGraph()
	_, _ = g.AddEdge("x", "y", 0)
	_, _ = g.AddEdge("y", "z", 0)
	fmt.Println(dfs.HasCycle(g))

	_, _ = g.AddEdge("z", "x", 0)
	fmt.Println(dfs.HasCycle(g))
	// Output:
	// false []
	// true [x y z x]
}
