package mst

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/algonotes/core"
)

// Kruskal computes a minimum spanning tree by scanning edges in ascending
// weight order and keeping those that join two components.
//
// Self-loops are never tree edges and are skipped. Ties are broken by edge ID.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
func Kruskal(g *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, 0, err
	}
	verts, err := validate(g)
	if err != nil {
		return nil, 0, err
	}
	if len(verts) == 1 {
		return []core.Edge{}, 0, nil
	}

	// Edges come back in edge-ID order; ord keeps that as the tie-break.
	type ranked struct {
		e   core.Edge
		ord int
	}
	all := g.Edges()
	edges := make([]ranked, 0, len(all))
	for i, e := range all {
		if e.From != e.To {
			edges = append(edges, ranked{e: e, ord: i})
		}
	}
	c := cfg.Counter
	slices.SortFunc(edges, func(a, b ranked) int {
		c.Inc()
		if d := cmp.Compare(a.e.Weight, b.e.Weight); d != 0 {
			return d
		}
		return cmp.Compare(a.ord, b.ord)
	})

	ds := newDisjointSet(verts)
	tree := make([]core.Edge, 0, len(verts)-1)
	var total int64
	for _, r := range edges {
		c.Inc()
		if !ds.union(r.e.From, r.e.To) {
			continue
		}
		if err := cfg.Ctx.Err(); err != nil {
			return nil, 0, err
		}
		tree = append(tree, r.e)
		total += r.e.Weight
		if len(tree) == len(verts)-1 {
			break
		}
	}
	if len(tree) < len(verts)-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// disjointSet is a union-find forest with path halving and union by rank.
type disjointSet struct {
	parent map[string]string
	rank   map[string]int
}

func newDisjointSet(ids []string) *disjointSet {
	ds := &disjointSet{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		ds.parent[id] = id
	}

	return ds
}

func (ds *disjointSet) find(u string) string {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were distinct.
func (ds *disjointSet) union(u, v string) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
