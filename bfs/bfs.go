package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/algonotes/core"
)

type item struct {
	id    string
	depth int
}

// walker holds the mutable state of one BFS run.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []item
	head  int
	res   *Result
}

// BFS runs breadth-first search on g from start.
//
// Vertices are visited in non-decreasing distance; ties follow the sorted
// order of core.Graph.NeighborIDs, so the result is deterministic.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrWeightedGraph,
// ErrOptionViolation, ctx.Err() on cancellation, or a wrapped OnVisit error.
// On error the partial Result is still returned.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
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
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]item, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.discover(start, 0, "")

	return w.res, w.loop()
}

// discover records id at depth d and queues it.
func (w *walker) discover(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, item{id: id, depth: d})
}

func (w *walker) loop() error {
	for w.head < len(w.queue) {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		cur := w.queue[w.head]
		w.head++

		w.res.Order = append(w.res.Order, cur.id)
		if err := w.opts.OnVisit(cur.id, cur.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", cur.id, err)
		}
		if err := w.expand(cur); err != nil {
			return err
		}
	}

	return nil
}

// expand discovers the unseen neighbors of cur that pass the filter and depth limit.
func (w *walker) expand(cur item) error {
	next := cur.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	nbrs, err := w.graph.NeighborIDs(cur.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", cur.id, err)
	}
	for _, nbr := range nbrs {
		w.opts.Counter.Inc()
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		if !w.opts.FilterNeighbor(cur.id, nbr) {
			continue
		}
		w.discover(nbr, next, cur.id)
	}

	return nil
}
