// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/katalvlaran/algonotes/core"
)

var (
	// ErrTooFewVertices indicates a size parameter below its minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrBadParameter indicates a negative count or an inverted range.
	ErrBadParameter = errors.New("builder: invalid parameter")

	// ErrConstructFailed indicates a nil Constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// pcgStream is the fixed second PCG word; WithSeed supplies the first.
const pcgStream = 0x9e3779b97f4a7c15

// Constructor applies one deterministic mutation to g.
type Constructor func(g *core.Graph, cfg config) error

// Option configures BuildGraph.
type Option func(*config)

type config struct {
	idFn     func(int) string
	rng      *rand.Rand
	minW     int64
	maxW     int64
	randomW  bool
	rangeErr error
}

func newConfig(opts ...Option) config {
	cfg := config{
		idFn: strconv.Itoa,
		rng:  rand.New(rand.NewPCG(0, pcgStream)),
		minW: 1,
		maxW: 1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme names vertex i fn(i). nil is ignored.
func WithIDScheme(fn func(int) string) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithSeed seeds the PCG generator used for random edges and weights.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewPCG(seed, pcgStream)) }
}

// WithWeightRange draws weights uniformly from [lo, hi] on weighted graphs.
// lo > hi or lo < 0 is reported by BuildGraph as ErrBadParameter.
func WithWeightRange(lo, hi int64) Option {
	return func(c *config) {
		if lo > hi || lo < 0 {
			c.rangeErr = fmt.Errorf("%w: weight range [%d, %d]", ErrBadParameter, lo, hi)
			return
		}
		c.minW, c.maxW, c.randomW = lo, hi, true
	}
}

func (c config) weight(g *core.Graph) int64 {
	switch {
	case !g.Weighted():
		return 0
	case !c.randomW || c.minW == c.maxW:
		return c.minW
	default:
		return c.minW + c.rng.Int64N(c.maxW-c.minW+1)
	}
}

// link adds the edge u-v with the configured weight.
func (c config) link(g *core.Graph, method string, u, v int) error {
	if _, err := g.AddEdge(c.idFn(u), c.idFn(v), c.weight(g)); err != nil {
		return fmt.Errorf("%s: AddEdge(%s, %s): %w", method, c.idFn(u), c.idFn(v), err)
	}

	return nil
}

// vertices adds vertices 0..n-1 in index order.
func (c config) vertices(g *core.Graph, method string, n int) error {
	for i := range n {
		if err := g.AddVertex(c.idFn(i)); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, c.idFn(i), err)
		}
	}

	return nil
}

// BuildGraph creates a graph with gopts and applies cons in order. The first
// constructor error is returned wrapped as "BuildGraph: ...".
//
// Complexity: the sum of the constructors' costs.
func BuildGraph(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	cfg := newConfig(bopts...)
	if cfg.rangeErr != nil {
		return nil, fmt.Errorf("BuildGraph: %w", cfg.rangeErr)
	}
	g := core.NewGraph(gopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
