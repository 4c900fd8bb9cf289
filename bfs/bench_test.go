package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/algonotes/bfs"
	"github.com/katalvlaran/algonotes/builder"
)

// BenchmarkBFS_Grid runs BFS on M×M grids of growing size; ns/op should grow
// roughly with M², the vertex count.
func BenchmarkBFS_Grid(b *testing.B) {
	for _, m := range []int{10, 30, 100} {
		g := grid(b, m)
		b.Run(fmt.Sprintf("M=%d", m), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(g.VertexCount() + g.EdgeCount()))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = bfs.BFS(g, "0_0")
			}
		})
	}
}

// BenchmarkBFS_RandomSparse measures BFS on a sparse random graph.
func BenchmarkBFS_RandomSparse(b *testing.B) {
	const V, E = 5000, 10000

	id := func(i int) string { return fmt.Sprintf("n%d", i) }
	g, err := builder.BuildGraph(nil,
		[]builder.Option{builder.WithSeed(42), builder.WithIDScheme(id)},
		builder.RandomSparse(V, E)) // duplicates and loops are skipped
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "n0")
	}
}
