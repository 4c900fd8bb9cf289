package sorting

import "cmp"

// Bubble sorts s by repeatedly swapping adjacent out-of-order pairs.
// Each pass bubbles the largest remaining element to the end; a pass with no
// swaps ends the sort early.
func Bubble[S ~[]E, E cmp.Ordered](s S, opts ...Option) {
	p := cmpr[E]{c: buildOptions(opts).Counter}
	for end := len(s) - 1; end > 0; end-- {
		swapped := false
		for i := 0; i < end; i++ {
			if p.less(s[i+1], s[i]) {
				s[i], s[i+1] = s[i+1], s[i]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// Selection sorts s by selecting the minimum of the unsorted suffix and
// swapping it into place. It always performs n(n-1)/2 comparisons.
func Selection[S ~[]E, E cmp.Ordered](s S, opts ...Option) {
	p := cmpr[E]{c: buildOptions(opts).Counter}
	for i := 0; i < len(s)-1; i++ {
		minIdx := i
		for j := i + 1; j < len(s); j++ {
			if p.less(s[j], s[minIdx]) {
				minIdx = j
			}
		}
		s[i], s[minIdx] = s[minIdx], s[i]
	}
}

// Insertion sorts s by growing a sorted prefix one element at a time.
func Insertion[S ~[]E, E cmp.Ordered](s S, opts ...Option) {
	insertionRange(s, 0, len(s), cmpr[E]{c: buildOptions(opts).Counter})
}

// insertionRange sorts s[lo:hi].
func insertionRange[S ~[]E, E cmp.Ordered](s S, lo, hi int, p cmpr[E]) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && p.less(s[j], s[j-1]); j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
