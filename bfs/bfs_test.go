package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/algonotes/bfs"
	"github.com/katalvlaran/algonotes/builder"
	"github.com/katalvlaran/algonotes/complexity"
	"github.com/katalvlaran/algonotes/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grid builds an m×m undirected grid with vertices "i_j".
func grid(tb testing.TB, m int) *core.Graph {
	tb.Helper()
	rc := func(i int) string { return fmt.Sprintf("%d_%d", i/m, i%m) }
	g, err := builder.BuildGraph(nil, []builder.Option{builder.WithIDScheme(rc)}, builder.Grid(m, m))
	require.NoError(tb, err)

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	gw := core.NewGraph(core.WithWeighted())
	require.NoError(t, gw.AddVertex("A"))
	_, err = bfs.BFS(gw, "A")
	assert.ErrorIs(t, err, bfs.ErrWeightedGraph)

	require.NoError(t, g.AddVertex("A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0}, res.Depth)
	assert.Empty(t, res.Parent)

	path, err := res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
}

func TestBFS_CycleDepths(t *testing.T) {
	// A–B–C–D–A
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
	assert.Equal(t, [][]string{{"A"}, {"B", "D"}, {"C"}}, res.Layers())
}

func TestBFS_DirectedReachability(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("C", "A", 0)

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)

	_, err = res.PathTo("C")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := grid(t, 4)

	res, err := bfs.BFS(g, "0_0", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"0_0", "0_1", "1_0"}, res.Order)

	block := func(_, nbr string) bool { return nbr != "0_1" }
	res, err = bfs.BFS(g, "0_0", bfs.WithFilterNeighbor(block))
	require.NoError(t, err)
	assert.Len(t, res.Order, 15)
	assert.NotContains(t, res.Order, "0_1")
	assert.Equal(t, 6, res.Depth["3_3"])
}

func TestBFS_ShortestPathIsMinimal(t *testing.T) {
	g := grid(t, 5)
	res, err := bfs.BFS(g, "0_0")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			id := fmt.Sprintf("%d_%d", i, j)
			path, err := res.PathTo(id)
			require.NoError(t, err)
			assert.Len(t, path, i+j+1, "Manhattan distance to %s", id)
			assert.Equal(t, "0_0", path[0])
			assert.Equal(t, id, path[len(path)-1])
		}
	}
}

func TestBFS_CounterIsLinear(t *testing.T) {
	// Each undirected edge is examined once from each endpoint.
	for _, m := range []int{3, 6, 10} {
		g := grid(t, m)
		var c complexity.Counter
		_, err := bfs.BFS(g, "0_0", bfs.WithCounter(&c))
		require.NoError(t, err)
		assert.Equal(t, int64(2*g.EdgeCount()), c.Load(), "m=%d", m)
	}
}

func TestBFS_HookErrorAndCancel(t *testing.T) {
	g := grid(t, 3)
	boom := errors.New("boom")
	res, err := bfs.BFS(g, "0_0", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "1_0" {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"0_0", "0_1", "1_0"}, res.Order)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "0_0", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
