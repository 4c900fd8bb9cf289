package sorting

import (
	"cmp"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/algonotes/complexity"
)

// ErrUnknownAlgorithm is returned by ByName for names that are not registered.
var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

// Option configures a sort call.
type Option func(*Options)

// Options holds per-call settings.
type Options struct {
	// Counter, if non-nil, receives one increment per element comparison.
	Counter *complexity.Counter
}

// WithCounter counts comparisons into c.
func WithCounter(c *complexity.Counter) Option {
	return func(o *Options) { o.Counter = c }
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// cmpr wraps cmp.Less with comparison counting.
type cmpr[E cmp.Ordered] struct {
	c *complexity.Counter
}

func (p cmpr[E]) less(a, b E) bool {
	p.c.Inc()
	return cmp.Less(a, b)
}

// IsSorted reports whether s is in non-decreasing order.
func IsSorted[S ~[]E, E cmp.Ordered](s S) bool {
	for i := 1; i < len(s); i++ {
		if cmp.Less(s[i], s[i-1]) {
			return false
		}
	}

	return true
}

// Func is a sort over int slices, the shape stored in the registry.
type Func func(s []int, opts ...Option)

var registry = map[string]Func{
	"bubble":    Bubble[[]int],
	"selection": Selection[[]int],
	"insertion": Insertion[[]int],
	"merge":     Merge[[]int],
	"quick":     Quick[[]int],
	"heap":      Heap[[]int],
}

// Algorithms returns the registered algorithm names in lexicographic order.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// ByName returns the int sort registered under name.
func ByName(name string) (Func, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return fn, nil
}
