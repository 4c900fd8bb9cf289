package mst_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algonotes/builder"
	"github.com/katalvlaran/algonotes/complexity"
	"github.com/katalvlaran/algonotes/core"
	"github.com/katalvlaran/algonotes/mst"
)

// connected builds a path 0..n-1 plus m random extra edges, so every vertex
// is reachable.
func connected(tb testing.TB, n, m int, seed uint64) *core.Graph {
	tb.Helper()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.Option{builder.WithSeed(seed), builder.WithWeightRange(1, 50)},
		builder.Path(n), builder.RandomSparse(n, m))
	require.NoError(tb, err)

	return g
}

func TestValidation(t *testing.T) {
	directed := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	_, _ = directed.AddEdge("A", "B", 1)
	unweighted := core.NewGraph()
	_, _ = unweighted.AddEdge("A", "B", 0)

	for name, g := range map[string]*core.Graph{"nil": nil, "directed": directed, "unweighted": unweighted} {
		_, _, err := mst.Kruskal(g)
		assert.ErrorIs(t, err, mst.ErrInvalidGraph, name)
		_, _, err = mst.Prim(g, mst.WithRoot("A"))
		assert.ErrorIs(t, err, mst.ErrInvalidGraph, name)
	}

	empty := core.NewGraph(core.WithWeighted())
	_, _, err := mst.Kruskal(empty)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
	_, _, err = mst.Prim(empty, mst.WithRoot("A"))
	assert.ErrorIs(t, err, mst.ErrDisconnected)

	two := core.NewGraph(core.WithWeighted())
	require.NoError(t, two.AddVertex("A"))
	require.NoError(t, two.AddVertex("B"))
	_, _, err = mst.Kruskal(two)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
	_, _, err = mst.Prim(two, mst.WithRoot("A"))
	assert.ErrorIs(t, err, mst.ErrDisconnected)
	_, _, err = mst.Prim(two)
	assert.ErrorIs(t, err, mst.ErrEmptyRoot)
	_, _, err = mst.Prim(two, mst.WithRoot("Z"))
	assert.ErrorIs(t, err, mst.ErrVertexNotFound)
	_, _, err = mst.Compute(two, mst.WithMethod("boruvka"))
	assert.ErrorIs(t, err, mst.ErrOptionViolation)
}

func TestSingleVertex(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("A"))

	edges, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)

	edges, total, err = mst.Prim(g, mst.WithRoot("A"))
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)
}

func TestLoopsAndParallelEdges(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	_, _ = g.AddEdge("A", "A", 0)
	_, _ = g.AddEdge("A", "B", 9)
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("B", "C", 3)

	for _, m := range []string{mst.MethodKruskal, mst.MethodPrim} {
		edges, total, err := mst.Compute(g, mst.WithMethod(m), mst.WithRoot("A"))
		require.NoError(t, err, m)
		assert.Len(t, edges, 2, m)
		assert.Equal(t, int64(5), total, "%s takes the cheaper parallel edge and ignores the loop", m)
	}
}

func TestTieBreakByEdgeID(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("A", "C", 1)

	edges, _, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"e1", "e2"}, []string{edges[0].ID, edges[1].ID})

	edges, _, err = mst.Prim(g, mst.WithRoot("C"))
	require.NoError(t, err)
	assert.Equal(t, []string{"e2", "e1"}, []string{edges[0].ID, edges[1].ID})
	assert.Equal(t, "C", edges[0].From, "Prim orients edges away from the tree")
}

func TestCounter(t *testing.T) {
	g := connected(t, 200, 400, 5)

	var kc, pc complexity.Counter
	_, kt, err := mst.Kruskal(g, mst.WithCounter(&kc))
	require.NoError(t, err)
	_, pt, err := mst.Prim(g, mst.WithRoot("0"), mst.WithCounter(&pc))
	require.NoError(t, err)
	assert.Equal(t, kt, pt)
	assert.Greater(t, kc.Load(), int64(g.EdgeCount()), "comparisons plus one per examined edge")
	assert.GreaterOrEqual(t, pc.Load(), int64(2*(g.VertexCount()-1)), "one push and one pop per tree edge at least")
}

func TestCanceled(t *testing.T) {
	g := connected(t, 20, 20, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := mst.Kruskal(g, mst.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	_, _, err = mst.Prim(g, mst.WithRoot("0"), mst.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestProperties checks that both methods agree on the tree weight, span the
// graph with V-1 edges, and never beat a brute-force lower bound on tiny graphs.
func TestProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("kruskal and prim agree", prop.ForAll(
		func(n, m int, seed uint64) bool {
			g := connected(t, n, m, seed)
			ke, kt, err := mst.Kruskal(g)
			if err != nil {
				return false
			}
			pe, pt, err := mst.Prim(g, mst.WithRoot(fmt.Sprint(n-1)))
			if err != nil {
				return false
			}

			return kt == pt && kt == mst.Total(ke) && len(ke) == n-1 && len(pe) == n-1 && spans(pe, n)
		},
		gen.IntRange(2, 40),
		gen.IntRange(0, 120),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// spans reports whether edges connect vertices "0".."n-1".
func spans(edges []core.Edge, n int) bool {
	adj := make(map[string][]string, n)
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}
	seen := map[string]bool{"0": true}
	stack := []string{"0"}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range adj[u] {
			if !seen[v] {
				seen[v] = true
				stack = append(stack, v)
			}
		}
	}

	return len(seen) == n
}
