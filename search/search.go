package search

import (
	"cmp"

	"github.com/katalvlaran/algonotes/complexity"
)

// Option configures a search call.
type Option func(*Options)

// Options holds per-call settings.
type Options struct {
	Counter *complexity.Counter
}

// WithCounter counts comparisons into c.
func WithCounter(c *complexity.Counter) Option {
	return func(o *Options) { o.Counter = c }
}

func counterOf(opts []Option) *complexity.Counter {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o.Counter
}

// Linear returns the index of the first element equal to x, or -1.
func Linear[S ~[]E, E comparable](s S, x E, opts ...Option) int {
	c := counterOf(opts)
	for i, v := range s {
		c.Inc()
		if v == x {
			return i
		}
	}

	return -1
}

// Binary searches sorted s for x. It returns the index of an element equal to
// x and true, or the insertion point and false.
func Binary[S ~[]E, E cmp.Ordered](s S, x E, opts ...Option) (int, bool) {
	i := LowerBound(s, x, opts...)

	return i, i < len(s) && cmp.Compare(s[i], x) == 0
}

// LowerBound returns the smallest index i such that s[i] >= x, or len(s) if
// every element is smaller.
func LowerBound[S ~[]E, E cmp.Ordered](s S, x E, opts ...Option) int {
	c := counterOf(opts)
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		c.Inc()
		if cmp.Less(s[mid], x) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// UpperBound returns the smallest index i such that s[i] > x, or len(s).
func UpperBound[S ~[]E, E cmp.Ordered](s S, x E, opts ...Option) int {
	c := counterOf(opts)
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		c.Inc()
		if cmp.Less(x, s[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo
}
