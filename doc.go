// Package algonotes is a runnable companion to the Big O learning notes in
// docs/big-o.md: every section of the notes that talks about an algorithm
// points at a package here that implements it, counts its work and can be
// measured.
//
// 🚀 What's inside?
//
//	complexity/   complexity classes, the heuristics that combine them, the
//	              cheat-sheet reference tables, P/NP facts and a growth fitter
//	measure/      workloads that count operations at several sizes and check
//	              the fitted class against the expected one
//	sorting/      bubble, insertion, selection, merge, quick and heap sort
//	search/       linear and binary search
//	bst/          an unbalanced binary search tree
//	rbtree/       a red-black tree
//	core/         a thread-safe graph used by the traversals
//	bfs/ dfs/     breadth- and depth-first search, topological sort, cycles
//	dijkstra/     weighted shortest paths
//	mst/          Kruskal and Prim minimum spanning trees
//	tsp/          Held-Karp and brute-force travelling salesman tours
//	builder/      deterministic graph fixtures for tests and workloads
//	notes/        the checker that keeps the notes' anchors, images and links valid
//
// ✨ Why?
//
//	Big O is easiest to learn when the claim "this is O(n log n)" can be run
//	and checked. Every algorithm accepts a *complexity.Counter, and
//	measure.Run turns counts at growing n into a fitted class.
//
// Quick tour:
//
//	go run ./cmd/algonotes classes
//	go run ./cmd/algonotes catalog --kind sorting
//	go run ./cmd/algonotes measure bst/insert-sorted rbtree/insert-sorted
//	go run ./cmd/algonotes check docs/big-o.md
package algonotes
