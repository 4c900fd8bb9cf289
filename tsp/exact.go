package tsp

import "math"

// HeldKarp returns an optimal tour by dynamic programming over subsets of
// cities that contain city 0.
//
// dp[mask][j] is the minimum cost of a path that starts at 0, visits exactly
// the cities in mask and ends at j. For each mask and each j ≠ 0 in it,
//
//	dp[mask][j] = min over k in mask∖{j} of dp[mask∖{j}][k] + dist[k][j]
//
// and the tour closes with the cheapest dp[all][j] + dist[j][0].
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
func HeldKarp(dist [][]float64, opts ...Option) (Result, error) {
	n, err := validate(dist, MaxHeldKarp)
	if err != nil {
		return Result{}, err
	}
	if n == 1 {
		return trivial(), nil
	}
	cfg := buildOptions(opts)

	allMask := 1<<n - 1
	dp := make([][]float64, 1<<n)
	parent := make([][]int, 1<<n)
	for mask := range dp {
		dp[mask] = make([]float64, n)
		parent[mask] = make([]int, n)
		for j := range n {
			dp[mask][j] = math.Inf(1)
			parent[mask][j] = -1
		}
	}
	dp[1][0] = 0

	for mask := 1; mask <= allMask; mask += 2 { // odd masks contain city 0
		if err := cfg.Ctx.Err(); err != nil {
			return Result{}, err
		}
		for j := 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev := mask ^ (1 << j)
			for k := range n {
				if prev&(1<<k) == 0 {
					continue
				}
				cfg.Counter.Inc()
				cand := dp[prev][k] + dist[k][j]
				if cand < dp[mask][j] {
					dp[mask][j] = cand
					parent[mask][j] = k
				}
			}
		}
	}

	best, last := math.Inf(1), -1
	for j := 1; j < n; j++ {
		if total := dp[allMask][j] + dist[j][0]; total < best {
			best, last = total, j
		}
	}
	if last < 0 {
		return Result{}, ErrIncompleteGraph
	}

	tour := make([]int, n+1)
	mask, j := allMask, last
	for i := n - 1; i >= 1; i-- {
		tour[i] = j
		j, mask = parent[mask][j], mask^(1<<j)
	}

	return Result{Tour: tour, Cost: best}, nil
}
