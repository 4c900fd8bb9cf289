// SPDX-License-Identifier: MIT

// Package builder assembles deterministic core.Graph fixtures for tests,
// benchmarks and measure workloads.
//
// What
//
//   - BuildGraph(gopts, bopts, cons...) creates a graph with the given core
//     options and applies each Constructor in order.
//   - Constructors: Path, Cycle, Star, Complete, Grid, Lattice and
//     RandomSparse.
//   - Options: WithIDScheme names vertices by index, WithSeed fixes the PRNG
//     used by RandomSparse and by random weights, WithWeightRange draws
//     weights for weighted graphs.
//
// Why
//
//	Growth measurements are only comparable when the input at size n is the
//	same on every run. Every constructor adds vertices in index order and
//	edges in a fixed order, and the PRNG is a seeded PCG, so equal inputs
//	always yield equal graphs.
//
// Weights
//
//	On an unweighted graph every edge gets weight 0. On a weighted graph the
//	weight is 1 unless WithWeightRange is set, in which case it is drawn
//	uniformly from [min, max].
//
// Complexity
//
//	Each constructor is linear in the vertices plus edges it adds:
//	Complete(n) adds n(n-1)/2 edges, so it is O(n^2).
//
// Errors
//
//   - ErrTooFewVertices    a size parameter is below its minimum.
//   - ErrBadParameter      a negative edge count or an empty weight range.
//   - ErrConstructFailed   a nil Constructor was passed.
//   - core errors (wrapped) when the graph mode rejects an edge.
package builder
