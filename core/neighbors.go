// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"slices"
)

// Neighbors returns copies of the edges leaving id, sorted by edge ID.
// On undirected graphs every incident edge is included once; use Edge.Other
// to find the far endpoint.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	targets, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]Edge, 0, len(targets))
	for _, ids := range targets {
		for _, eid := range ids {
			out = append(out, *g.edges[eid])
		}
	}
	slices.SortFunc(out, func(a, b Edge) int { return compareEdgeIDs(a.ID, b.ID) })

	return out, nil
}

// NeighborIDs returns the distinct vertices reachable from id in one step,
// in ascending order.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	targets, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]string, 0, len(targets))
	for to := range targets {
		out = append(out, to)
	}
	slices.Sort(out)

	return out, nil
}
