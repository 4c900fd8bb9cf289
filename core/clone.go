// SPDX-License-Identifier: MIT

package core

// CloneEmpty returns a graph with the same flags and vertices but no edges.
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := g.emptyLike()
	for id := range g.adjacency {
		c.adjacency[id] = make(map[string][]string)
	}

	return c
}

// Clone returns a deep copy: flags, vertices, edges and the edge-ID counter,
// so edges added to the clone continue the original numbering.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := g.emptyLike()
	c.nextEdgeID = g.nextEdgeID
	for id, e := range g.edges {
		cp := *e
		c.edges[id] = &cp
	}
	for from, targets := range g.adjacency {
		m := make(map[string][]string, len(targets))
		for to, ids := range targets {
			m[to] = append([]string(nil), ids...)
		}
		c.adjacency[from] = m
	}

	return c
}

func (g *Graph) emptyLike() *Graph {
	return &Graph{
		directed:   g.directed,
		weighted:   g.weighted,
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string]map[string][]string, len(g.adjacency)),
	}
}
