package complexity

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// MinSamples is the number of distinct input sizes Fit requires.
const MinSamples = 3

var (
	// ErrTooFewSamples indicates fewer than MinSamples distinct sizes.
	ErrTooFewSamples = errors.New("complexity: too few samples")

	// ErrBadSample indicates a sample with N < 2 or a non-positive operation count.
	ErrBadSample = errors.New("complexity: bad sample")
)

// Sample is one measurement: Ops basic operations at input size N.
type Sample struct {
	N   int   `yaml:"n"`
	Ops int64 `yaml:"ops"`
}

// Score is the residual spread of one candidate class.
type Score struct {
	Class  Class   `yaml:"class"`
	Spread float64 `yaml:"spread"`
}

// Estimate is the outcome of Fit.
type Estimate struct {
	// Class is the best-fitting class.
	Class Class `yaml:"class"`

	// Spread is the standard deviation of ln(ops) - ln f(n) for Class. Zero means
	// the counts are an exact constant multiple of f(n).
	Spread float64 `yaml:"spread"`

	// Ranking holds every candidate ordered by Spread ascending.
	Ranking []Score `yaml:"ranking"`
}

// Fit picks the class whose growth best explains the samples.
//
// Ties are broken toward the slower-growing class so that exact data like
// ops = n is reported as O(n) rather than something steeper.
//
// Complexity: O(k·m) for k samples and m classes.
func Fit(samples []Sample) (Estimate, error) {
	clean, err := normalizeSamples(samples)
	if err != nil {
		return Estimate{}, err
	}

	ranking := make([]Score, 0, len(Classes()))
	for _, c := range Classes() {
		ranking = append(ranking, Score{Class: c, Spread: residualSpread(c, clean)})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		if !nearlyEqual(ranking[i].Spread, ranking[j].Spread) {
			return ranking[i].Spread < ranking[j].Spread
		}
		return ranking[i].Class < ranking[j].Class
	})

	return Estimate{Class: ranking[0].Class, Spread: ranking[0].Spread, Ranking: ranking}, nil
}

// normalizeSamples validates samples, merges duplicate sizes by averaging, and sorts by N.
func normalizeSamples(samples []Sample) ([]Sample, error) {
	bySize := make(map[int][]int64, len(samples))
	for _, s := range samples {
		if s.N < 2 || s.Ops <= 0 {
			return nil, fmt.Errorf("%w: n=%d ops=%d", ErrBadSample, s.N, s.Ops)
		}
		bySize[s.N] = append(bySize[s.N], s.Ops)
	}
	if len(bySize) < MinSamples {
		return nil, fmt.Errorf("%w: have %d distinct sizes, need %d", ErrTooFewSamples, len(bySize), MinSamples)
	}

	out := make([]Sample, 0, len(bySize))
	for n, ops := range bySize {
		var sum int64
		for _, o := range ops {
			sum += o
		}
		out = append(out, Sample{N: n, Ops: sum / int64(len(ops))})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].N < out[j].N })

	return out, nil
}

// residualSpread is the population standard deviation of ln(ops) - ln f(n).
func residualSpread(c Class, samples []Sample) float64 {
	residuals := make([]float64, len(samples))
	var sum float64
	for i, s := range samples {
		residuals[i] = math.Log(float64(s.Ops)) - c.LogGrowth(s.N)
		sum += residuals[i]
	}
	mean := sum / float64(len(samples))

	var variance float64
	for _, r := range residuals {
		variance += (r - mean) * (r - mean)
	}

	return math.Sqrt(variance / float64(len(samples)))
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
