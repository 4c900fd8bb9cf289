// SPDX-License-Identifier: MIT

// Package core provides the small, thread-safe in-memory Graph that the
// traversal packages (bfs, dfs, dijkstra) run on.
//
// The Graph G = (V, E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges (WithMultiEdges)
//   - Self-loops (WithLoops)
//
// Storage is an adjacency list keyed by vertex ID:
//
//	adjacency[from][to] = []edgeID
//
// so AddEdge, HasEdge and RemoveEdge are O(1) expected for simple graphs and
// Neighbors is O(deg(v) log deg(v)) including the sort that makes it
// deterministic. Undirected edges are mirrored in adjacency[to][from].
//
// Determinism
//
//	Vertices() is sorted lexicographically, Edges() and Neighbors() by edge ID,
//	NeighborIDs() lexicographically. Edge IDs are "e1", "e2", … in insertion
//	order, compared numerically. Every algorithm built on core therefore
//	produces the same output for the same construction sequence.
//
// Concurrency
//
//	A single sync.RWMutex guards all state. Queries take the read lock, so many
//	traversals can share one graph; mutations take the write lock.
//
// Complexity summary (V vertices, E edges, d = deg(v)):
//
//	AddVertex, HasVertex      O(1)
//	AddEdge, HasEdge          O(1) expected
//	RemoveEdge                O(d)
//	RemoveVertex              O(d + Σ deg(neighbor))
//	Vertices                  O(V log V)
//	Edges                     O(E log E)
//	Neighbors, NeighborIDs    O(d log d)
//	Clone                     O(V + E)
//
// Errors:
//
//	ErrEmptyVertexID        vertex ID is "".
//	ErrVertexNotFound       vertex does not exist.
//	ErrEdgeNotFound         edge does not exist.
//	ErrBadWeight            non-zero weight on an unweighted graph.
//	ErrLoopNotAllowed       self-loop without WithLoops.
//	ErrMultiEdgeNotAllowed  parallel edge without WithMultiEdges.
package core
