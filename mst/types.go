package mst

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/algonotes/complexity"
	"github.com/katalvlaran/algonotes/core"
)

// Sentinel errors returned by Kruskal, Prim and Compute.
var (
	// ErrInvalidGraph indicates a nil, directed, or unweighted graph.
	ErrInvalidGraph = errors.New("mst: MST requires an undirected, weighted graph")

	// ErrEmptyRoot indicates that Prim was called without a root vertex.
	ErrEmptyRoot = errors.New("mst: empty root vertex")

	// ErrVertexNotFound indicates that the Prim root is not in the graph.
	ErrVertexNotFound = errors.New("mst: root vertex not found")

	// ErrDisconnected indicates that no spanning tree covers every vertex.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("mst: invalid option supplied")
)

// Method names accepted by WithMethod.
const (
	MethodKruskal = "kruskal"
	MethodPrim    = "prim"
)

// Options configures an MST computation.
type Options struct {
	// Ctx allows cancellation; checked once per accepted tree edge.
	Ctx context.Context

	// Method selects the algorithm for Compute. Default MethodKruskal.
	Method string

	// Root is the start vertex for Prim; ignored by Kruskal.
	Root string

	// Counter, if non-nil, receives the basic operation counts.
	Counter *complexity.Counter

	err error
}

// Option is a functional option for Kruskal, Prim and Compute.
type Option func(*Options)

// DefaultOptions selects Kruskal with no root and no counter.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Method: MethodKruskal}
}

// WithMethod selects the algorithm Compute runs. Unknown names are an ErrOptionViolation.
func WithMethod(m string) Option {
	return func(o *Options) {
		if m != MethodKruskal && m != MethodPrim {
			o.err = fmt.Errorf("%w: method %q", ErrOptionViolation, m)
			return
		}
		o.Method = m
	}
}

// WithRoot sets the vertex Prim grows its tree from.
func WithRoot(id string) Option {
	return func(o *Options) { o.Root = id }
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

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}

// validate checks the graph shape shared by both algorithms and returns its
// sorted vertices.
func validate(g *core.Graph) ([]string, error) {
	if g == nil || g.Directed() || !g.Weighted() {
		return nil, ErrInvalidGraph
	}
	verts := g.Vertices()
	if len(verts) == 0 {
		return nil, ErrDisconnected
	}

	return verts, nil
}

// Total sums the weights of edges.
func Total(edges []core.Edge) int64 {
	var sum int64
	for _, e := range edges {
		sum += e.Weight
	}

	return sum
}

// Compute runs the algorithm chosen by WithMethod and returns the tree edges
// and their total weight.
func Compute(g *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, 0, err
	}
	if cfg.Method == MethodPrim {
		return Prim(g, opts...)
	}

	return Kruskal(g, opts...)
}
