package mst

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/algonotes/core"
)

// Prim computes a minimum spanning tree by growing a single tree from the
// WithRoot vertex, always taking the cheapest edge that leaves it.
//
// Returned edges are in discovery order, oriented From the tree vertex To the
// vertex it adds. Ties are broken by edge ID.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(g *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, 0, err
	}
	verts, err := validate(g)
	if err != nil {
		return nil, 0, err
	}
	if cfg.Root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !g.HasVertex(cfg.Root) {
		return nil, 0, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Root)
	}

	p := &primRun{
		g:       g,
		cfg:     cfg,
		inTree:  make(map[string]bool, len(verts)),
		tree:    make([]core.Edge, 0, len(verts)-1),
		ordByID: make(map[string]int),
	}
	for i, e := range g.Edges() {
		p.ordByID[e.ID] = i
	}
	if err := p.add(cfg.Root); err != nil {
		return nil, 0, err
	}
	for p.pq.Len() > 0 && len(p.tree) < len(verts)-1 {
		cfg.Counter.Inc()
		it := heap.Pop(&p.pq).(primItem)
		if p.inTree[it.to] {
			continue
		}
		if err := cfg.Ctx.Err(); err != nil {
			return nil, 0, err
		}
		e := it.e
		e.From, e.To = it.from, it.to
		p.tree = append(p.tree, e)
		p.total += e.Weight
		if err := p.add(it.to); err != nil {
			return nil, 0, err
		}
	}
	if len(p.tree) < len(verts)-1 {
		return nil, 0, ErrDisconnected
	}

	return p.tree, p.total, nil
}

type primRun struct {
	g       *core.Graph
	cfg     Options
	inTree  map[string]bool
	tree    []core.Edge
	total   int64
	pq      edgePQ
	ordByID map[string]int
}

// add puts u in the tree and pushes every edge to a vertex outside it.
func (p *primRun) add(u string) error {
	p.inTree[u] = true
	edges, err := p.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("mst: neighbors of %q: %w", u, err)
	}
	for _, e := range edges {
		v := e.Other(u)
		if v == u || p.inTree[v] {
			continue
		}
		p.cfg.Counter.Inc()
		heap.Push(&p.pq, primItem{e: e, from: u, to: v, ord: p.ordByID[e.ID]})
	}

	return nil
}

type primItem struct {
	e        core.Edge
	from, to string
	ord      int
}

// edgePQ is a min-heap on (weight, edge order).
type edgePQ []primItem

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].e.Weight != pq[j].e.Weight {
		return pq[i].e.Weight < pq[j].e.Weight
	}

	return pq[i].ord < pq[j].ord
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(primItem)) }

func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
