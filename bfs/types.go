package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/algonotes/complexity"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrWeightedGraph is returned when BFS is run on a weighted graph;
	// use dijkstra for those.
	ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a vertex the search never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior. Invalid options are recorded and surfaced
// as ErrOptionViolation when BFS runs.
type Option func(*Options)

// Options holds parameters and callbacks for one BFS run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is discovered and queued.
	OnEnqueue func(id string, depth int)

	// OnVisit is called when a vertex leaves the queue. A non-nil error aborts BFS.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops discovery beyond this depth. 0 means no limit.
	MaxDepth int

	// FilterNeighbor skips the step curr → neighbor when it returns false.
	FilterNeighbor func(curr, neighbor string) bool

	// Counter, if non-nil, receives one increment per edge examined, which
	// makes the O(V + E) bound observable.
	Counter *complexity.Counter

	err error
}

// DefaultOptions returns background context, no hooks, no depth limit and no filter.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a discovery callback.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a visit callback; returning an error stops the BFS.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits discovery to depth d (d > 0), or removes the limit (d == 0).
// Negative values are an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithCounter counts examined edges into c.
func WithCounter(c *complexity.Counter) Option {
	return func(o *Options) { o.Counter = c }
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	// Start is the source vertex.
	Start string

	// Order lists vertices in visit sequence.
	Order []string

	// Depth maps each reached vertex to its distance (in edges) from Start.
	Depth map[string]int

	// Parent maps each reached vertex except Start to its BFS-tree predecessor.
	Parent map[string]string
}

// PathTo reconstructs the fewest-edge path Start → dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: to %q", ErrNoPath, dest)
	}
	path := make([]string, 0, r.Depth[dest]+1)
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}

// Layers groups the reached vertices by depth; Layers()[d] is sorted.
func (r *Result) Layers() [][]string {
	maxD := -1
	for _, d := range r.Depth {
		maxD = max(maxD, d)
	}
	out := make([][]string, maxD+1)
	for id, d := range r.Depth {
		out[d] = append(out[d], id)
	}
	for _, layer := range out {
		slices.Sort(layer)
	}

	return out
}
