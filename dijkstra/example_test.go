package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/algonotes/core"
	"github.com/katalvlaran/algonotes/dijkstra"
)

// ExampleDijkstra prefers the cheaper two-hop route over the direct edge.
func ExampleDijkstra() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 5)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("C")
	fmt.Println(res.Dist["C"], path)
	// Output:
	// 3 [A B C]
}

// ExampleWithInfEdgeThreshold routes around an expensive bridge.
func ExampleWithInfEdgeThreshold() {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	_, _ = g.AddEdge("home", "bridge", 50)
	_, _ = g.AddEdge("bridge", "work", 1)
	_, _ = g.AddEdge("home", "ferry", 30)
	_, _ = g.AddEdge("ferry", "work", 30)

	res, _ := dijkstra.Dijkstra(g, dijkstra.Source("home"))
	path, _ := res.PathTo("work")
	fmt.Println(res.Dist["work"], path)

	res, _ = dijkstra.Dijkstra(g, dijkstra.Source("home"), dijkstra.WithInfEdgeThreshold(40))
	path, _ = res.PathTo("work")
	fmt.Println(res.Dist["work"], path)
	// Output:
	// 51 [home bridge work]
	// 60 [home ferry work]
}
