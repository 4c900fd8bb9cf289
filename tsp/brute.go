package tsp

import (
	"math"
	"slices"
)

// cancelEvery is how many tours BruteForce evaluates between context checks.
const cancelEvery = 1 << 12

// BruteForce returns an optimal tour by evaluating every ordering of cities
// 1..n-1 after a fixed start at 0. Orderings are visited in lexicographic
// order and only a strictly cheaper tour replaces the best so far, so among
// equal-cost tours the lexicographically smallest wins.
//
// Each tour is summed in full, n edge costs per tour.
//
// Complexity: O(n·(n-1)!) = O(n!) time, O(n) memory.
func BruteForce(dist [][]float64, opts ...Option) (Result, error) {
	n, err := validate(dist, MaxBruteForce)
	if err != nil {
		return Result{}, err
	}
	if n == 1 {
		return trivial(), nil
	}
	cfg := buildOptions(opts)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	best := math.Inf(1)
	var bestOrder []int

	for tours := 0; ; tours++ {
		if tours%cancelEvery == 0 {
			if err := cfg.Ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		if cost := tourCost(dist, order, cfg); cost < best {
			best = cost
			bestOrder = slices.Clone(order)
		}
		if !nextPermutation(order[1:]) {
			break
		}
	}
	if bestOrder == nil {
		return Result{}, ErrIncompleteGraph
	}

	return Result{Tour: append(bestOrder, 0), Cost: best}, nil
}

// tourCost sums the closed cycle order[0] → … → order[n-1] → order[0].
func tourCost(dist [][]float64, order []int, cfg Options) float64 {
	n := len(order)
	var sum float64
	for i, from := range order {
		sum += dist[from][order[(i+1)%n]]
	}
	cfg.Counter.Add(int64(n))

	return sum
}

// nextPermutation rearranges s into its lexicographic successor and reports
// false once s is the last (descending) permutation.
func nextPermutation(s []int) bool {
	i := len(s) - 2
	for i >= 0 && s[i] >= s[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(s) - 1
	for s[j] <= s[i] {
		j--
	}
	s[i], s[j] = s[j], s[i]
	slices.Reverse(s[i+1:])

	return true
}
