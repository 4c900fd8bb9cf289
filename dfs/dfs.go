package dfs

import (
	"fmt"

	"github.com/katalvlaran/algonotes/core"
)

// walker holds the mutable state of one DFS run.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on g from start. With WithFullTraversal it
// covers every component, starting each tree at the smallest undiscovered
// vertex, and start may be "".
//
// Neighbors are explored in core.Graph.NeighborIDs order, so Order and
// PreOrder are deterministic.
//
// On a hook error or cancellation DFS returns the partial Result together with
// the error.
//
// Complexity: O(V + E) time, O(V) memory (recursion depth up to V).
func DFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		res: &Result{
			Order:    make([]string, 0, n),
			PreOrder: make([]string, 0, n),
			Depth:    make(map[string]int, n),
			Parent:   make(map[string]string, n),
		},
	}

	if !o.FullTraversal {
		return w.res, w.traverse(start, 0)
	}
	if start != "" && g.HasVertex(start) {
		if err := w.traverse(start, 0); err != nil {
			return w.res, err
		}
	}
	for _, v := range g.Vertices() {
		if w.res.Visited(v) {
			continue
		}
		if err := w.traverse(v, 0); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// traverse discovers id at depth and recurses into its unseen neighbors.
func (w *walker) traverse(id string, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}

	w.res.Depth[id] = depth
	w.res.PreOrder = append(w.res.PreOrder, id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		nbrs, err := w.graph.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
		}
		for _, nbr := range nbrs {
			w.opts.Counter.Inc()
			if w.res.Visited(nbr) {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(id, nbr) {
				w.res.SkippedNeighbors++
				continue
			}
			w.res.Parent[nbr] = id
			if err = w.traverse(nbr, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id, depth); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
