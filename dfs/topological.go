package dfs

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/algonotes/core"
)

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context for TopologicalSort. nil is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter runs the three-colour DFS behind TopologicalSort.
type topoSorter struct {
	graph *core.Graph
	ctx   context.Context
	state map[string]int
	stack []string // current Gray path, used to report the cycle
	order []string
}

// TopologicalSort orders the vertices of a directed graph so that every edge
// u→v has u before v. Roots are tried in sorted order and the result is the
// reversed post-order, so the output is deterministic.
//
// Errors: ErrGraphNil, ErrUndirectedGraph, ctx.Err(), or ErrCycleDetected
// wrapped with the cycle, e.g. "dfs: cycle detected: A → B → A".
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	o := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&o)
	}

	verts := g.Vertices()
	s := &topoSorter{
		graph: g,
		ctx:   o.ctx,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if s.state[v] != White {
			continue
		}
		if err := s.visit(v); err != nil {
			return nil, err
		}
	}
	slices.Reverse(s.order)

	return s.order, nil
}

func (s *topoSorter) visit(id string) error {
	if err := s.ctx.Err(); err != nil {
		return err
	}
	s.state[id] = Gray
	s.stack = append(s.stack, id)

	nbrs, err := s.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, nbr := range nbrs {
		switch s.state[nbr] {
		case Gray:
			cycle := append(slices.Clone(s.stack[slices.Index(s.stack, nbr):]), nbr)
			return fmt.Errorf("%w: %s", ErrCycleDetected, strings.Join(cycle, " → "))
		case White:
			if err = s.visit(nbr); err != nil {
				return err
			}
		}
	}

	s.stack = s.stack[:len(s.stack)-1]
	s.state[id] = Black
	s.order = append(s.order, id)

	return nil
}
