package mst_test

import (
	"testing"

	"github.com/katalvlaran/algonotes/mst"
)

func BenchmarkKruskal(b *testing.B) {
	g := connected(b, 500, 2000, 42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = mst.Kruskal(g)
	}
}

func BenchmarkPrim(b *testing.B) {
	g := connected(b, 500, 2000, 42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = mst.Prim(g, mst.WithRoot("0"))
	}
}
