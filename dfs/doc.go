// Package dfs implements depth-first search on core.Graph, plus the two
// classic applications: topological sorting and cycle detection.
//
// Key features:
//   - DFS(g, start, opts...): single-source or forest traversal (WithFullTraversal).
//   - Hooks: OnVisit (pre-order) and OnExit (post-order); an error aborts.
//   - Limits: WithMaxDepth, WithFilterNeighbor (skips are counted).
//   - WithCounter counts examined edges for complexity measurements.
//   - TopologicalSort(g): reversed post-order of a directed acyclic graph;
//     the error for a cyclic graph names the cycle.
//   - HasCycle(g): directed and undirected cycle detection returning a witness.
//
// Complexity:
//
//   - Time:   O(V + E) for all three, plus the cost of hooks and filters.
//   - Memory: O(V) for the recursion stack and state maps.
//
// Recursion depth equals the longest discovered path, so a chain of a few
// million vertices needs a correspondingly large goroutine stack; Go grows
// stacks on demand, so this is a memory cost rather than a crash.
//
// Errors:
//
//   - ErrGraphNil               g is nil.
//   - ErrStartVertexNotFound    start is missing (single-source mode).
//   - ErrOptionViolation        MaxDepth below -1.
//   - ErrUndirectedGraph        TopologicalSort on an undirected graph.
//   - ErrCycleDetected          TopologicalSort on a cyclic graph.
//   - ctx.Err() and wrapped hook errors.
package dfs
