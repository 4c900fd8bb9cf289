package complexity_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/algonotes/complexity"
)

// TestFitProperties checks that constant factors never change the fitted class.
func TestFitProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)
	sizes := []int{64, 128, 256, 512, 1024}

	properties.Property("scaled growth is recovered", prop.ForAll(
		func(idx int, k float64) bool {
			want := []complexity.Class{
				complexity.Logarithmic,
				complexity.Linear,
				complexity.Linearithmic,
				complexity.Quadratic,
				complexity.Cubic,
			}[idx]
			samples := make([]complexity.Sample, 0, len(sizes))
			for _, n := range sizes {
				samples = append(samples, complexity.Sample{N: n, Ops: int64(math.Round(k * want.Growth(n)))})
			}
			est, err := complexity.Fit(samples)

			return err == nil && est.Class == want
		},
		gen.IntRange(0, 4),
		gen.Float64Range(1, 1000),
	))

	properties.Property("dominant is commutative", prop.ForAll(
		func(a, b int) bool {
			ca, cb := complexity.Class(a), complexity.Class(b)
			return complexity.Dominant(ca, cb) == complexity.Dominant(cb, ca)
		},
		gen.IntRange(0, 7),
		gen.IntRange(0, 7),
	))

	properties.TestingRun(t)
}
