// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// on core.Graph values with non-negative integer weights.
//
// Overview:
//
//   - Repeatedly settle the closest unsettled vertex and relax its edges.
//   - The frontier is a binary min-heap with lazy decrease-key: an improved
//     distance is pushed as a new entry and stale entries are skipped on pop.
//   - Result carries Dist (Unreachable for vertices never reached) and Prev,
//     from which PathTo rebuilds a shortest path.
//
// Options:
//
//   - Source(id)              start vertex (required).
//   - WithMaxDistance(d)      stop once the frontier is farther than d.
//   - WithInfEdgeThreshold(t) treat edges with weight >= t as walls.
//   - WithContext(ctx)        cancellation, checked per settled vertex.
//   - WithCounter(c)          count relaxation attempts.
//
// Complexity:
//
//   - Time:  O((V + E) log V). Each vertex is settled once and each edge can
//     push one heap entry; heap operations cost O(log(V + E)) = O(log V).
//   - Space: O(V + E) worst case for the heap under lazy decrease-key.
//
// The negative-weight check is an upfront O(E) scan, because a single
// negative edge silently breaks the greedy invariant rather than failing.
//
// Errors:
//
//   - ErrOptionViolation   negative MaxDistance or non-positive threshold.
//   - ErrEmptySource       no Source option.
//   - ErrNilGraph          g is nil.
//   - ErrUnweightedGraph   g was not built WithWeighted.
//   - ErrVertexNotFound    Source is not in g.
//   - ErrNegativeWeight    some edge weight is negative.
//   - ErrNoPath            PathTo on an unreachable vertex.
package dijkstra
