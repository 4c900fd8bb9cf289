// Package measure checks complexity claims empirically.
//
// A Workload runs one algorithm at input size n and counts its basic
// operations into a complexity.Counter. Run evaluates a workload at several
// sizes, fits the counts with complexity.Fit and reports whether the
// best-fitting class matches the class the notes predict.
//
// Counting operations instead of timing them keeps the measurements
// deterministic: every workload builds its input from a PRNG seeded with n,
// so the same sizes always produce the same Report.
//
// Workloads
//
//	sort/<algorithm>     sort a random permutation (package sorting)
//	search/linear        look up an absent key (package search)
//	search/binary        64 lower-bound lookups over a sorted slice
//	bst/insert           insert a random permutation into a bst.Tree
//	bst/insert-sorted    insert 0..n-1 in order: the degenerate O(n^2) case
//	rbtree/insert        insert a random permutation into an rbtree.Tree
//	rbtree/insert-sorted insert 0..n-1 in order: still O(n log n)
//	bfs/grid, dfs/grid   traverse a grid of exactly n vertices
//	mst/kruskal          spanning tree of a randomly weighted grid: O(n log n)
//	tsp/held-karp        exact tour of n random points: O(2^n), n = 4..12
//	tsp/brute-force      every tour of n random points: O(n!), n = 4..9
//
// The tsp workloads carry their own Workload.Sizes, which replace the sizes
// given to Run.
//
// Concurrency
//
//	Sizes run on a bounded errgroup pool (WithWorkers). The first failing
//	size cancels the rest.
//
// Errors
//
//   - ErrBadSizes           fewer than complexity.MinSamples distinct sizes, or a size below 2.
//   - ErrUnknownWorkload    Lookup of an unregistered name.
//   - ErrOptionViolation    WithWorkers(n) with n < 1.
package measure
