package dfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/algonotes/complexity"
	"github.com/katalvlaran/algonotes/core"
	"github.com/katalvlaran/algonotes/dfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(tb testing.TB, directed bool, edges ...[2]string) *core.Graph {
	tb.Helper()
	g := core.NewGraph(core.WithDirected(directed), core.WithLoops(), core.WithMultiEdges())
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(tb, err)
	}

	return g
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := build(t, false, [2]string{"A", "B"})
	_, err = dfs.DFS(g, "Z")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	_, err = dfs.DFS(g, "A", dfs.WithMaxDepth(-2))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

func TestDFS_Orders(t *testing.T) {
	//   A
	//  / \
	// B   C
	// |
	// D
	g := build(t, false, [2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "D"})

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.PreOrder)
	assert.Equal(t, []string{"D", "B", "C", "A"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 2, "C": 1}, res.Depth)
	assert.Equal(t, map[string]string{"B": "A", "D": "B", "C": "A"}, res.Parent)
}

func TestDFS_DirectedOnlyFollowsOutEdges(t *testing.T) {
	g := build(t, true, [2]string{"A", "B"}, [2]string{"C", "A"})
	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)
	assert.False(t, res.Visited("C"))
}

func TestDFS_MaxDepthAndFilter(t *testing.T) {
	g := build(t, false, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"})

	res, err := dfs.DFS(g, "A", dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)

	res, err = dfs.DFS(g, "A", dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.PreOrder)

	res, err = dfs.DFS(g, "A", dfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "C" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.PreOrder)
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := build(t, false, [2]string{"A", "B"}, [2]string{"X", "Y"})
	require.NoError(t, g.AddVertex("M"))

	res, err := dfs.DFS(g, "X", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y", "A", "B", "M"}, res.PreOrder)
	assert.Len(t, res.Order, 5)

	res, err = dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "M", "X", "Y"}, res.PreOrder)
}

func TestDFS_HooksAndCancel(t *testing.T) {
	g := build(t, false, [2]string{"A", "B"}, [2]string{"B", "C"})

	var trace []string
	_, err := dfs.DFS(g, "A",
		dfs.WithOnVisit(func(id string, d int) error {
			trace = append(trace, fmt.Sprintf("in:%s@%d", id, d))
			return nil
		}),
		dfs.WithOnExit(func(id string, _ int) error {
			trace = append(trace, "out:"+id)
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"in:A@0", "in:B@1", "in:C@2", "out:C", "out:B", "out:A"}, trace)

	boom := errors.New("boom")
	res, err := dfs.DFS(g, "A", dfs.WithOnExit(func(id string, _ int) error {
		if id == "B" {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"C"}, res.Order)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(g, "A", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_CounterIsLinear(t *testing.T) {
	g := build(t, false)
	for i := 0; i < 50; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%02d", i), fmt.Sprintf("v%02d", i+1), 0)
	}
	var c complexity.Counter
	_, err := dfs.DFS(g, "v00", dfs.WithCounter(&c))
	require.NoError(t, err)
	assert.Equal(t, int64(2*g.EdgeCount()), c.Load())
}

func TestTopologicalSort(t *testing.T) {
	// shirt → tie → jacket, trousers → shoes, trousers → belt → jacket
	g := build(t, true,
		[2]string{"shirt", "tie"}, [2]string{"tie", "jacket"},
		[2]string{"trousers", "shoes"}, [2]string{"trousers", "belt"},
		[2]string{"belt", "jacket"}, [2]string{"shirt", "belt"},
	)
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, g.VertexCount())

	pos := make(map[string]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.From], pos[e.To], "%s → %s", e.From, e.To)
	}
	assert.Equal(t, []string{"trousers", "shoes", "shirt", "tie", "belt", "jacket"}, order)
}

func TestTopologicalSort_Errors(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.TopologicalSort(build(t, false, [2]string{"A", "B"}))
	assert.ErrorIs(t, err, dfs.ErrUndirectedGraph)

	cyclic := build(t, true, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"})
	_, err = dfs.TopologicalSort(cyclic)
	require.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.Contains(t, err.Error(), "A → B → C → A")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.TopologicalSort(build(t, true, [2]string{"A", "B"}), dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHasCycle(t *testing.T) {
	tests := []struct {
		name  string
		g     *core.Graph
		want  bool
		cycle []string
	}{
		{"nil", nil, false, nil},
		{"undirected path", build(t, false, [2]string{"A", "B"}, [2]string{"B", "C"}), false, nil},
		{"undirected triangle", build(t, false, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"}), true, []string{"A", "B", "C", "A"}},
		{"undirected parallel", build(t, false, [2]string{"A", "B"}, [2]string{"A", "B"}), true, []string{"A", "B", "A"}},
		{"self-loop", build(t, false, [2]string{"A", "A"}), true, []string{"A", "A"}},
		{"directed dag", build(t, true, [2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "C"}), false, nil},
		{"directed two-cycle", build(t, true, [2]string{"A", "B"}, [2]string{"B", "A"}), true, []string{"A", "B", "A"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, cycle := dfs.HasCycle(tc.g)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.cycle, cycle)
		})
	}
}
