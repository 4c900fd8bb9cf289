// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Visit vertices in non-decreasing distance (edge count) from a start vertex.
//   - Result holds Order (visit sequence), Depth (vertex → distance) and
//     Parent (vertex → predecessor in the BFS tree); PathTo rebuilds a path
//     and Layers groups vertices by distance.
//   - Hooks: OnEnqueue on discovery, OnVisit when a vertex leaves the queue
//     (an error aborts the search).
//   - WithFilterNeighbor prunes individual steps, WithMaxDepth bounds the
//     search radius, WithCounter counts examined edges.
//
// Why
//
//	BFS is the O(V + E) row of the complexity cheat sheet: each vertex is
//	queued once and each adjacency is examined once per endpoint. Counting
//	the examined edges on growing grids (measure workload "bfs/grid") shows
//	the linear curve directly.
//
// Determinism
//
//	core.Graph.NeighborIDs is sorted, and BFS discovers neighbors in that
//	order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue and the Depth/Parent maps.
//
// Usage
//
//	res, err := bfs.BFS(g, "start",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return nbr != "blocked" }),
//	)
//	path, err := res.PathTo("goal")
//
// Errors
//
//   - ErrGraphNil             the graph pointer is nil.
//   - ErrStartVertexNotFound  the start vertex does not exist.
//   - ErrWeightedGraph        the graph carries weights.
//   - ErrOptionViolation      an Option was invalid (negative MaxDepth).
//   - ErrNoPath               PathTo on an unreached vertex.
//   - ctx.Err() and wrapped OnVisit errors.
package bfs
