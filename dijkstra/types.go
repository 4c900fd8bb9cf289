package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/algonotes/complexity"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrEmptySource indicates that no source vertex was given.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates the graph was not built WithWeighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates the source vertex is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates a negative edge weight; Dijkstra's greedy
	// settling is only correct for non-negative weights.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrNoPath is returned by PathTo for an unreachable vertex.
	ErrNoPath = errors.New("dijkstra: no path")
)

// Unreachable is the distance reported for vertices the search did not reach.
const Unreachable int64 = math.MaxInt64

// Options configures a Dijkstra run.
type Options struct {
	// Ctx allows cancellation; checked once per settled vertex.
	Ctx context.Context

	// Source is the start vertex; required.
	Source string

	// MaxDistance stops the search once the closest unsettled vertex is
	// farther than this. Default Unreachable (no cap).
	MaxDistance int64

	// InfEdgeThreshold marks edges with weight >= threshold as impassable.
	// Default Unreachable (no walls).
	InfEdgeThreshold int64

	// Counter, if non-nil, receives one increment per edge relaxation attempt.
	Counter *complexity.Counter

	err error
}

// Option is a functional option for Dijkstra.
type Option func(*Options)

// DefaultOptions returns options for source with no distance cap and no walls.
func DefaultOptions(source string) Options {
	return Options{
		Ctx:              context.Background(),
		Source:           source,
		MaxDistance:      Unreachable,
		InfEdgeThreshold: Unreachable,
	}
}

// Source sets the start vertex.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance caps exploration at d. Negative d is an ErrOptionViolation.
func WithMaxDistance(d int64) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative, got %d", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithInfEdgeThreshold treats edges with weight >= t as walls. t <= 0 is an ErrOptionViolation.
func WithInfEdgeThreshold(t int64) Option {
	return func(o *Options) {
		if t <= 0 {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive, got %d", ErrOptionViolation, t)
			return
		}
		o.InfEdgeThreshold = t
	}
}

// WithCounter counts edge relaxation attempts into c.
func WithCounter(c *complexity.Counter) Option {
	return func(o *Options) { o.Counter = c }
}

// Result holds shortest-path distances and predecessors from Source.
type Result struct {
	Source string

	// Dist maps every vertex to its distance from Source, or Unreachable.
	Dist map[string]int64

	// Prev maps each reached vertex except Source to its predecessor on a
	// shortest path.
	Prev map[string]string
}

// PathTo reconstructs a shortest path Source → dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Dist[dest]
	if !ok || d == Unreachable {
		return nil, fmt.Errorf("%w: to %q", ErrNoPath, dest)
	}
	var path []string
	for cur := dest; ; cur = r.Prev[cur] {
		path = append(path, cur)
		if cur == r.Source {
			break
		}
	}
	slices.Reverse(path)

	return path, nil
}
