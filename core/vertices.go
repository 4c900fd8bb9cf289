// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"slices"
)

// AddVertex inserts a vertex with the given ID. Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID if id is "".
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// ensureVertex creates id's adjacency entry. Caller holds the write lock.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string][]string)
	}
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// RemoveVertex deletes id and every edge incident to it.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	out, ok := g.adjacency[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	for to, ids := range out {
		for _, eid := range ids {
			delete(g.edges, eid)
		}
		if to != id {
			delete(g.adjacency[to], id)
		}
	}
	// Directed edges pointing at id are only stored on the source side.
	for from, targets := range g.adjacency {
		ids, hit := targets[id]
		if !hit {
			continue
		}
		for _, eid := range ids {
			delete(g.edges, eid)
		}
		delete(g.adjacency[from], id)
	}
	delete(g.adjacency, id)

	return nil
}

// Vertices returns all vertex IDs in ascending order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}
