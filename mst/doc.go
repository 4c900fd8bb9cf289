// Package mst computes minimum spanning trees of undirected, weighted
// core.Graph values with Kruskal's and Prim's algorithms.
//
// What
//
//	A spanning tree of a connected graph G = (V, E) is a subset T ⊆ E of
//	|V|-1 edges that connects every vertex. A minimum spanning tree has the
//	smallest total weight among all of them.
//
// Algorithms
//
//   - Kruskal(g, opts...) sorts all edges by weight and keeps each edge whose
//     endpoints lie in different components of a disjoint-set forest (path
//     compression plus union by rank).
//     Time: O(E log E) for the sort, plus O(E·α(V)) for the unions.
//
//   - Prim(g, opts...) grows one tree from WithRoot, repeatedly taking the
//     cheapest edge that leaves the tree from a binary min-heap.
//     Time: O(E log V). Memory: O(V + E) for the heap under lazy deletion.
//
//   - Compute(g, opts...) dispatches on WithMethod (Kruskal by default).
//
// Determinism
//
//	Equal weights are ordered by edge ID, so both algorithms return the same
//	tree on every run. Kruskal returns edges in ascending weight order with
//	their stored orientation. Prim returns edges in discovery order, oriented
//	from the tree vertex to the vertex it adds.
//
// Counting
//
//	WithCounter counts basic operations: Kruskal counts sort comparisons plus
//	one per edge examined, Prim counts heap pushes and pops. The measure
//	package fits Kruskal's counts against O(n log n).
//
// Errors
//
//   - ErrInvalidGraph      g is nil, directed, or unweighted.
//   - ErrDisconnected      g is empty or has more than one component.
//   - ErrEmptyRoot         Prim without WithRoot.
//   - ErrVertexNotFound    the Prim root is not in g.
//   - ErrOptionViolation   an unknown method.
package mst
