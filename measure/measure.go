package measure

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/algonotes/complexity"
	"github.com/katalvlaran/algonotes/internal/logging"
)

var (
	// ErrBadSizes indicates unusable input sizes.
	ErrBadSizes = errors.New("measure: bad sizes")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("measure: invalid option supplied")
)

// Option configures Run.
type Option func(*Options)

// Options holds Run settings.
type Options struct {
	// Workers bounds how many sizes run at once.
	Workers int

	// Logger receives one debug record per finished size.
	Logger logging.Logger

	err error
}

// DefaultOptions returns 4 workers and a discarding logger.
func DefaultOptions() Options {
	return Options{Workers: 4, Logger: logging.Nop()}
}

// WithWorkers sets the worker-pool size; n < 1 is an ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be positive, got %d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger sets the progress logger. nil is ignored.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Report is the outcome of one Run.
type Report struct {
	Workload string              `yaml:"workload"`
	Samples  []complexity.Sample `yaml:"samples"`
	Estimate complexity.Estimate `yaml:"estimate"`
	Expected complexity.Class    `yaml:"expected"`
	Match    bool                `yaml:"match"`
}

// Run measures w at every size, fits the counts and compares the fit with
// w.Expected. A workload with its own Sizes ignores sizes. Samples in the
// Report are ordered by size.
//
// Complexity: dominated by the workload itself; the fit is O(len(sizes)).
func Run(ctx context.Context, w Workload, sizes []int, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if w.Run == nil {
		return nil, fmt.Errorf("%w: %q has no Run func", ErrUnknownWorkload, w.Name)
	}
	if len(w.Sizes) > 0 {
		sizes = w.Sizes
	}
	sizes, err := checkSizes(sizes)
	if err != nil {
		return nil, err
	}

	log := o.Logger.WithComponent("measure").With("workload", w.Name)
	samples := make([]complexity.Sample, len(sizes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, n := range sizes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var c complexity.Counter
			if err := w.Run(gctx, n, &c); err != nil {
				return fmt.Errorf("measure: %s at n=%d: %w", w.Name, n, err)
			}
			samples[i] = complexity.Sample{N: n, Ops: c.Load()}
			log.Debug(gctx, "sample", "n", n, "ops", samples[i].Ops)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	est, err := complexity.Fit(samples)
	if err != nil {
		return nil, fmt.Errorf("measure: %s: %w", w.Name, err)
	}
	rep := &Report{
		Workload: w.Name,
		Samples:  samples,
		Estimate: est,
		Expected: w.Expected,
		Match:    est.Class == w.Expected,
	}
	log.Info(ctx, "fitted", "class", est.Class.String(), "expected", w.Expected.String(), "match", rep.Match)

	return rep, nil
}

// checkSizes returns the distinct sizes in ascending order.
func checkSizes(sizes []int) ([]int, error) {
	out := slices.Clone(sizes)
	slices.Sort(out)
	out = slices.Compact(out)
	if len(out) < complexity.MinSamples {
		return nil, fmt.Errorf("%w: need %d distinct sizes, got %d", ErrBadSizes, complexity.MinSamples, len(out))
	}
	if out[0] < 2 {
		return nil, fmt.Errorf("%w: size %d is below 2", ErrBadSizes, out[0])
	}

	return out, nil
}
