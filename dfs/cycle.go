package dfs

import (
	"slices"

	"github.com/katalvlaran/algonotes/core"
)

// HasCycle reports whether g contains a cycle and returns one, closed by
// repeating its first vertex (e.g. [A B C A]).
//
// Directed graphs look for a back edge to a Gray vertex. Undirected graphs
// look for an edge to an already discovered vertex other than the tree
// parent; parallel edges between two vertices count as a cycle of length 2
// and a self-loop as a cycle of length 1.
//
// A nil graph has no cycles. Complexity: O(V + E).
func HasCycle(g *core.Graph) (bool, []string) {
	if g == nil {
		return false, nil
	}
	d := &cycleFinder{
		graph: g,
		state: make(map[string]int, g.VertexCount()),
	}
	for _, v := range g.Vertices() {
		if d.state[v] != White {
			continue
		}
		if cycle := d.visit(v, ""); cycle != nil {
			return true, cycle
		}
	}

	return false, nil
}

type cycleFinder struct {
	graph *core.Graph
	state map[string]int
	stack []string
}

// visit returns the first cycle found below id, or nil.
func (d *cycleFinder) visit(id, parent string) []string {
	d.state[id] = Gray
	d.stack = append(d.stack, id)

	edges, _ := d.graph.Neighbors(id) // id exists: it came from Vertices or NeighborIDs
	skippedParent := false
	for _, e := range edges {
		nbr := e.To
		if !e.Directed {
			nbr = e.Other(id)
		}
		// Walking back along the single tree edge is not a cycle; a second
		// parallel edge to the parent is.
		if !e.Directed && nbr == parent && !skippedParent {
			skippedParent = true
			continue
		}
		switch d.state[nbr] {
		case Gray:
			return append(slices.Clone(d.stack[slices.Index(d.stack, nbr):]), nbr)
		case White:
			if cycle := d.visit(nbr, id); cycle != nil {
				return cycle
			}
		}
	}

	d.stack = d.stack[:len(d.stack)-1]
	d.state[id] = Black

	return nil
}
