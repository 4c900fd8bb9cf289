package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/algonotes/core"
)

// Dijkstra computes shortest distances from the Source option to every vertex
// of the weighted graph g.
//
// Validation order: ErrOptionViolation, ErrEmptySource, ErrNilGraph,
// ErrUnweightedGraph, ErrVertexNotFound, ErrNegativeWeight (after an O(E)
// scan of all edges). Cancellation returns ctx.Err() with the partial Result.
//
// Equal-distance ties are settled in vertex-ID order, so Prev is deterministic.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	verts := g.Vertices()
	r := &runner{
		g:    g,
		opts: cfg,
		res: &Result{
			Source: cfg.Source,
			Dist:   make(map[string]int64, len(verts)),
			Prev:   make(map[string]string, len(verts)),
		},
		settled: make(map[string]bool, len(verts)),
		pq:      make(nodePQ, 0, len(verts)),
	}
	for _, v := range verts {
		r.res.Dist[v] = Unreachable
	}
	r.res.Dist[cfg.Source] = 0
	heap.Push(&r.pq, &pqItem{id: cfg.Source, dist: 0})

	return r.res, r.run()
}

// runner holds the state of one run.
type runner struct {
	g       *core.Graph
	opts    Options
	res     *Result
	settled map[string]bool
	pq      nodePQ
}

func (r *runner) run() error {
	for r.pq.Len() > 0 {
		if err := r.opts.Ctx.Err(); err != nil {
			return err
		}
		it := heap.Pop(&r.pq).(*pqItem)
		// Lazy decrease-key: skip entries superseded by a shorter push.
		if r.settled[it.id] || it.dist > r.res.Dist[it.id] {
			continue
		}
		if it.dist > r.opts.MaxDistance {
			break
		}
		r.settled[it.id] = true
		if err := r.relax(it.id, it.dist); err != nil {
			return err
		}
	}
	r.dropBeyondCap()

	return nil
}

// relax tries to improve every neighbor of u through u.
func (r *runner) relax(u string, du int64) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}
	for _, e := range edges {
		r.opts.Counter.Inc()
		if e.Weight >= r.opts.InfEdgeThreshold {
			continue
		}
		v := e.To
		if !e.Directed {
			v = e.Other(u)
		}
		if r.settled[v] {
			continue
		}
		nd := du + e.Weight
		if nd < du { // overflow
			continue
		}
		if nd < r.res.Dist[v] {
			r.res.Dist[v] = nd
			r.res.Prev[v] = u
			heap.Push(&r.pq, &pqItem{id: v, dist: nd})
		}
	}

	return nil
}

// dropBeyondCap resets tentative distances the MaxDistance cap left unsettled.
func (r *runner) dropBeyondCap() {
	if r.opts.MaxDistance == Unreachable {
		return
	}
	for v, d := range r.res.Dist {
		if d != Unreachable && !r.settled[v] {
			r.res.Dist[v] = Unreachable
			delete(r.res.Prev, v)
		}
	}
}

type pqItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap on (dist, id).
type nodePQ []*pqItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*pqItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}
