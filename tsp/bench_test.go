package tsp_test

import (
	"testing"

	"github.com/katalvlaran/algonotes/tsp"
)

func BenchmarkHeldKarp12(b *testing.B) {
	dist := randomDist(12, 42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.HeldKarp(dist)
	}
}

func BenchmarkBruteForce9(b *testing.B) {
	dist := randomDist(9, 42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.BruteForce(dist)
	}
}
