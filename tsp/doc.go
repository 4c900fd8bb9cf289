// Package tsp solves the travelling salesman problem exactly on a dense
// distance matrix, with two algorithms whose running times sit at the top
// of the Big O ladder.
//
// What
//
//	Given an n×n matrix dist where dist[i][j] is the cost of travelling
//	from city i to city j, find a cycle that visits every city exactly once
//	and has the smallest total cost. The matrix may be asymmetric. +Inf marks
//	a missing edge.
//
// Algorithms
//
//   - HeldKarp(dist, opts...) is the Held-Karp dynamic program over subsets:
//     dp[S][j] is the cheapest path that starts at 0, visits exactly S and
//     ends at j.
//     Time: O(n²·2ⁿ). Memory: O(n·2ⁿ).
//
//   - BruteForce(dist, opts...) fixes city 0 and tries every ordering of the
//     other n-1 cities in lexicographic order, summing each full tour.
//     Time: O(n·(n-1)!) = O(n!). Memory: O(n).
//
// Both return a Result whose Tour starts and ends at 0 (len n+1).
//
// Counting
//
//	WithCounter counts basic operations. HeldKarp counts one per (S, j, k)
//	transition tried, (n-1)·n·2ⁿ⁻³ in total, which the measure package fits
//	as O(2^n). BruteForce counts one per edge cost added, exactly n! for
//	n ≥ 2, which fits as O(n!).
//
// Errors
//
//   - ErrEmptyMatrix       dist has no rows.
//   - ErrNonSquare         some row length differs from n.
//   - ErrBadDiagonal       dist[i][i] != 0.
//   - ErrBadWeight         an entry is negative, NaN, or -Inf.
//   - ErrTooLarge          n exceeds MaxHeldKarp or MaxBruteForce.
//   - ErrIncompleteGraph   no Hamiltonian cycle uses only finite edges.
package tsp
