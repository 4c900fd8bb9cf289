package notes

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch checks path once, then again every time the file is written or
// re-created, calling fn with each result. Bursts of events within the
// debounce period (WithDebounce) trigger a single check. Watch blocks until
// ctx ends, which it reports as a nil error.
func (c *Checker) Watch(ctx context.Context, path string, fn func([]Problem, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("notes: watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("notes: watch: %w", err)
	}
	defer w.Close()

	// The directory is watched, not the file: editors that save by
	// rename would otherwise detach the watch.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("notes: watch %s: %w", filepath.Dir(abs), err)
	}

	fn(c.Check(ctx, abs))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			c.opts.Logger.Debug(ctx, "change", "path", abs, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(c.opts.Debounce)
			} else {
				timer.Reset(c.opts.Debounce)
			}
			fire = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			c.opts.Logger.Warn(ctx, err, "watcher error", "path", abs)

		case <-fire:
			fire = nil
			if ctx.Err() != nil {
				return nil
			}
			fn(c.Check(ctx, abs))
		}
	}
}
