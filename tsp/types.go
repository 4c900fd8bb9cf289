package tsp

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/algonotes/complexity"
)

// Size limits beyond which the solvers refuse to run.
const (
	// MaxHeldKarp bounds n for HeldKarp; the tables hold n·2ⁿ entries.
	MaxHeldKarp = 16

	// MaxBruteForce bounds n for BruteForce; it walks (n-1)! tours.
	MaxBruteForce = 11
)

// Sentinel errors returned by HeldKarp and BruteForce.
var (
	// ErrEmptyMatrix indicates a matrix with no rows.
	ErrEmptyMatrix = errors.New("tsp: empty matrix")

	// ErrNonSquare indicates a row whose length is not n.
	ErrNonSquare = errors.New("tsp: matrix is not square")

	// ErrBadDiagonal indicates a non-zero self-distance.
	ErrBadDiagonal = errors.New("tsp: self-distance must be 0")

	// ErrBadWeight indicates a negative or NaN distance.
	ErrBadWeight = errors.New("tsp: distance must be non-negative")

	// ErrTooLarge indicates more cities than the solver accepts.
	ErrTooLarge = errors.New("tsp: too many cities")

	// ErrIncompleteGraph indicates that no tour uses only finite edges.
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")
)

// Result holds the outcome of a solver.
type Result struct {
	// Tour is the sequence of city indices, starting and ending at 0.
	// For n cities, len(Tour) == n+1 and Tour[0] == Tour[n] == 0.
	Tour []int

	// Cost is the total distance of the cycle.
	Cost float64
}

// Options configures a solver run.
type Options struct {
	// Ctx allows cancellation; HeldKarp checks it once per subset, BruteForce
	// once every cancelEvery tours.
	Ctx context.Context

	// Counter, if non-nil, receives the basic operation counts.
	Counter *complexity.Counter
}

// Option is a functional option for HeldKarp and BruteForce.
type Option func(*Options)

// DefaultOptions returns a background context and no counter.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCounter counts basic operations into c.
func WithCounter(c *complexity.Counter) Option {
	return func(o *Options) { o.Counter = c }
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// validate checks shape, diagonal and weights, and returns n.
// +Inf is a missing edge; -Inf and NaN are rejected.
func validate(dist [][]float64, limit int) (int, error) {
	n := len(dist)
	if n == 0 {
		return 0, ErrEmptyMatrix
	}
	if n > limit {
		return 0, fmt.Errorf("%w: n=%d, limit %d", ErrTooLarge, n, limit)
	}
	for i, row := range dist {
		if len(row) != n {
			return 0, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonSquare, i, len(row), n)
		}
		for j, d := range row {
			if math.IsNaN(d) || d < 0 {
				return 0, fmt.Errorf("%w: dist[%d][%d]=%v", ErrBadWeight, i, j, d)
			}
		}
		if row[i] != 0 {
			return 0, fmt.Errorf("%w: dist[%d][%d]=%v", ErrBadDiagonal, i, i, row[i])
		}
	}

	return n, nil
}

// trivial is the tour of a single city.
func trivial() Result {
	return Result{Tour: []int{0, 0}, Cost: 0}
}
