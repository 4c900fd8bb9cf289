package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/algonotes/complexity"
)

// Vertex colours used by the traversals in this package.
const (
	White = iota // not yet discovered
	Gray         // on the current recursion stack
	Black        // finished: all descendants explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected is returned by TopologicalSort when the graph has a cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirectedGraph is returned by TopologicalSort on undirected graphs.
	ErrUndirectedGraph = errors.New("dfs: topological sort requires a directed graph")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures a DFS run.
type Option func(*Options)

// Options holds hooks, limits and diagnostics for DFS.
// Complexity stays O(V+E) when hooks and filters are O(1).
type Options struct {
	// Ctx allows cancellation; checked on every vertex discovery.
	Ctx context.Context

	// OnVisit is the pre-order hook, called when a vertex is discovered.
	OnVisit func(id string, depth int) error

	// OnExit is the post-order hook, called after all descendants finish
	// and before the vertex is appended to Result.Order.
	OnExit func(id string, depth int) error

	// MaxDepth, if >= 0, stops recursion below that depth; 0 visits only the
	// start vertex. -1 (default) means no limit.
	MaxDepth int

	// FilterNeighbor skips the step curr → neighbor when it returns false.
	FilterNeighbor func(curr, neighbor string) bool

	// FullTraversal restarts from every undiscovered vertex (in sorted order),
	// covering disconnected components.
	FullTraversal bool

	// Counter, if non-nil, receives one increment per edge examined.
	Counter *complexity.Counter

	err error
}

// DefaultOptions returns background context, no hooks, no depth limit,
// no filter and single-source mode.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit(fn func(id string, depth int) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth. Values below -1 are an ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < -1 {
			o.err = fmt.Errorf("%w: MaxDepth %d (use -1 for no limit)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips neighbors for which fn returns false; skipped
// steps are counted in Result.SkippedNeighbors.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest traversal over all components.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// WithCounter counts examined edges into c.
func WithCounter(c *complexity.Counter) Option {
	return func(o *Options) { o.Counter = c }
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []string

	// PreOrder records vertices in discovery order.
	PreOrder []string

	// Depth maps each discovered vertex to its depth in its DFS tree.
	Depth map[string]int

	// Parent maps each discovered vertex to the vertex it was reached from.
	// Tree roots do not appear.
	Parent map[string]string

	// SkippedNeighbors counts steps rejected by FilterNeighbor.
	SkippedNeighbors int
}

// Visited reports whether id was discovered.
func (r *Result) Visited(id string) bool {
	_, ok := r.Depth[id]
	return ok
}
