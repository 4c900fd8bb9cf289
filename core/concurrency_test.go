package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/algonotes/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge fans AddEdge out over goroutines; every edge must land.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id), 0)
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReadWrite mixes mutations with Clone and Neighbors under -race.
func TestConcurrentReadWrite(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
	require.NoError(t, g.AddVertex("Base"))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(3 * rounds)
	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = g.AddEdge("Base", fmt.Sprintf("V%d", id), int64(id))
		}(i)
		go func() {
			defer wg.Done()
			for _, e := range g.Edges() {
				_ = g.RemoveEdge(e.ID)
			}
		}()
		go func() {
			defer wg.Done()
			_ = g.Clone()
			_, _ = g.Neighbors("Base")
		}()
	}
	wg.Wait()
	require.True(t, g.HasVertex("Base"))
}
