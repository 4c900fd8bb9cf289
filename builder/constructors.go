// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algonotes/core"
)

func tooFew(method, param string, got, least int) error {
	return fmt.Errorf("%s: %s=%d (must be ≥ %d): %w", method, param, got, least, ErrTooFewVertices)
}

// Path links vertices 0-1-2-...-(n-1). n ≥ 1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return tooFew("Path", "n", n, 1)
		}
		if err := cfg.vertices(g, "Path", n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := cfg.link(g, "Path", i, i+1); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle is Path(n) closed by the edge (n-1)-0. n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 3 {
			return tooFew("Cycle", "n", n, 3)
		}
		if err := Path(n)(g, cfg); err != nil {
			return err
		}
		return cfg.link(g, "Cycle", n-1, 0)
	}
}

// Star links vertex 0 to each of 1..n-1. n ≥ 2.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return tooFew("Star", "n", n, 2)
		}
		if err := cfg.vertices(g, "Star", n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := cfg.link(g, "Star", 0, i); err != nil {
				return err
			}
		}
		return nil
	}
}

// Complete links every pair i < j. n ≥ 1.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return tooFew("Complete", "n", n, 1)
		}
		if err := cfg.vertices(g, "Complete", n); err != nil {
			return err
		}
		for i := range n {
			for j := i + 1; j < n; j++ {
				if err := cfg.link(g, "Complete", i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Lattice lays n vertices out row-major in rows of the given width and links
// each vertex to its right and lower neighbor. The last row may be short.
// n ≥ 1, width ≥ 1.
func Lattice(n, width int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return tooFew("Lattice", "n", n, 1)
		}
		if width < 1 {
			return tooFew("Lattice", "width", width, 1)
		}
		if err := cfg.vertices(g, "Lattice", n); err != nil {
			return err
		}
		for i := range n {
			if (i+1)%width != 0 && i+1 < n {
				if err := cfg.link(g, "Lattice", i, i+1); err != nil {
					return err
				}
			}
			if i+width < n {
				if err := cfg.link(g, "Lattice", i, i+width); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Grid is a full rows×cols Lattice; vertex r*cols+c sits at row r, column c.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ 1): %w", rows, cols, ErrTooFewVertices)
		}
		return Lattice(rows*cols, cols)(g, cfg)
	}
}

// RandomSparse adds n vertices and m random edge attempts drawn from the
// seeded PRNG. Attempts the graph mode rejects (self-loops, parallel edges)
// are skipped, so the graph may end up with fewer than m edges.
// n ≥ 1, m ≥ 0.
func RandomSparse(n, m int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return tooFew("RandomSparse", "n", n, 1)
		}
		if m < 0 {
			return fmt.Errorf("RandomSparse: m=%d: %w", m, ErrBadParameter)
		}
		if err := cfg.vertices(g, "RandomSparse", n); err != nil {
			return err
		}
		for range m {
			u, v := cfg.rng.IntN(n), cfg.rng.IntN(n)
			err := cfg.link(g, "RandomSparse", u, v)
			if errors.Is(err, core.ErrLoopNotAllowed) || errors.Is(err, core.ErrMultiEdgeNotAllowed) {
				continue
			}
			if err != nil {
				return err
			}
		}
		return nil
	}
}
