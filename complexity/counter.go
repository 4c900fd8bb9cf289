package complexity

import "sync/atomic"

// Counter counts basic operations (comparisons, lookups, node visits).
// The zero value is ready to use and a nil *Counter silently discards counts,
// so algorithms can call Inc unconditionally.
type Counter struct {
	n atomic.Int64
}

// Inc adds one operation.
func (c *Counter) Inc() {
	if c != nil {
		c.n.Add(1)
	}
}

// Add adds d operations.
func (c *Counter) Add(d int64) {
	if c != nil {
		c.n.Add(d)
	}
}

// Load returns the current count; nil counters report 0.
func (c *Counter) Load() int64 {
	if c == nil {
		return 0
	}

	return c.n.Load()
}

// Reset sets the count back to zero and returns the previous value.
func (c *Counter) Reset() int64 {
	if c == nil {
		return 0
	}

	return c.n.Swap(0)
}
