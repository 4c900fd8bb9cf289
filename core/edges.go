// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"slices"
)

// AddEdge connects from and to with the given weight and returns the new edge ID.
// Missing endpoints are created.
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is "".
//   - ErrBadWeight if weight != 0 on an unweighted graph.
//   - ErrLoopNotAllowed if from == to without WithLoops.
//   - ErrMultiEdgeNotAllowed if the pair is already connected without WithMultiEdges.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", fmt.Errorf("%w: %d", ErrBadWeight, weight)
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti {
		if ids, ok := g.adjacency[from][to]; ok && len(ids) > 0 {
			return "", fmt.Errorf("%w: %q → %q", ErrMultiEdgeNotAllowed, from, to)
		}
	}
	g.ensureVertex(from)
	g.ensureVertex(to)

	g.nextEdgeID++
	id := formatEdgeID(g.nextEdgeID)
	g.edges[id] = &Edge{ID: id, From: from, To: to, Weight: weight, Directed: g.directed}
	g.adjacency[from][to] = append(g.adjacency[from][to], id)
	if !g.directed && from != to {
		g.adjacency[to][from] = append(g.adjacency[to][from], id)
	}

	return id, nil
}

// HasEdge reports whether at least one edge leads from → to.
// On undirected graphs the direction is ignored.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// RemoveEdge deletes the edge with the given ID.
func (g *Graph) RemoveEdge(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrEdgeNotFound, id)
	}
	g.unlink(e.From, e.To, id)
	if !e.Directed && e.From != e.To {
		g.unlink(e.To, e.From, id)
	}
	delete(g.edges, id)

	return nil
}

// unlink drops id from adjacency[from][to]. Caller holds the write lock.
func (g *Graph) unlink(from, to, id string) {
	ids := slices.DeleteFunc(g.adjacency[from][to], func(s string) bool { return s == id })
	if len(ids) == 0 {
		delete(g.adjacency[from], to)
		return
	}
	g.adjacency[from][to] = ids
}

// Edge returns a copy of the edge with the given ID.
func (g *Graph) Edge(id string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %q", ErrEdgeNotFound, id)
	}

	return *e, nil
}

// Edges returns copies of all edges sorted by ID.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	slices.SortFunc(out, func(a, b Edge) int { return compareEdgeIDs(a.ID, b.ID) })

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

func compareEdgeIDs(a, b string) int {
	switch {
	case a == b:
		return 0
	case edgeIDLess(a, b):
		return -1
	default:
		return 1
	}
}
