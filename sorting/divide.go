package sorting

import "cmp"

// quickCutoff is the partition size below which Quick hands over to insertion sort.
const quickCutoff = 12

// Merge sorts s with top-down merge sort. It is stable and allocates one
// buffer of len(s) elements for the whole run.
func Merge[S ~[]E, E cmp.Ordered](s S, opts ...Option) {
	if len(s) < 2 {
		return
	}
	p := cmpr[E]{c: buildOptions(opts).Counter}
	buf := make(S, len(s))
	mergeSort(s, buf, p)
}

func mergeSort[S ~[]E, E cmp.Ordered](s, buf S, p cmpr[E]) {
	if len(s) < 2 {
		return
	}
	mid := len(s) / 2
	mergeSort(s[:mid], buf[:mid], p)
	mergeSort(s[mid:], buf[mid:], p)

	// Already ordered halves need no merge.
	if !p.less(s[mid], s[mid-1]) {
		return
	}

	copy(buf, s)
	i, j, k := 0, mid, 0
	for i < mid && j < len(s) {
		// Taking from the left on ties keeps the sort stable.
		if p.less(buf[j], buf[i]) {
			s[k] = buf[j]
			j++
		} else {
			s[k] = buf[i]
			i++
		}
		k++
	}
	k += copy(s[k:], buf[i:mid])
	copy(s[k:], buf[j:len(s)])
}

// Quick sorts s with quicksort: median-of-three pivot, Lomuto partition,
// recursion on the smaller side to bound stack depth by O(log n).
func Quick[S ~[]E, E cmp.Ordered](s S, opts ...Option) {
	p := cmpr[E]{c: buildOptions(opts).Counter}
	quickSort(s, 0, len(s), p)
}

func quickSort[S ~[]E, E cmp.Ordered](s S, lo, hi int, p cmpr[E]) {
	for hi-lo > quickCutoff {
		m := partition(s, lo, hi, p)
		if m-lo < hi-m-1 {
			quickSort(s, lo, m, p)
			lo = m + 1
		} else {
			quickSort(s, m+1, hi, p)
			hi = m
		}
	}
	insertionRange(s, lo, hi, p)
}

// partition places the pivot at its final index and returns that index.
// Elements of s[lo:idx] are < pivot, elements of s[idx+1:hi] are >= pivot.
func partition[S ~[]E, E cmp.Ordered](s S, lo, hi int, p cmpr[E]) int {
	last := hi - 1
	mid := lo + (hi-lo)/2
	// Order s[lo], s[mid], s[last] so the median lands on mid.
	if p.less(s[mid], s[lo]) {
		s[mid], s[lo] = s[lo], s[mid]
	}
	if p.less(s[last], s[lo]) {
		s[last], s[lo] = s[lo], s[last]
	}
	if p.less(s[last], s[mid]) {
		s[last], s[mid] = s[mid], s[last]
	}
	s[mid], s[last] = s[last], s[mid]
	pivot := s[last]

	idx := lo
	for i := lo; i < last; i++ {
		if p.less(s[i], pivot) {
			s[i], s[idx] = s[idx], s[i]
			idx++
		}
	}
	s[idx], s[last] = s[last], s[idx]

	return idx
}

// Heap sorts s with heapsort: build a max-heap in O(n), then repeatedly move
// the root behind the shrinking heap.
func Heap[S ~[]E, E cmp.Ordered](s S, opts ...Option) {
	p := cmpr[E]{c: buildOptions(opts).Counter}
	n := len(s)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, i, n, p)
	}
	for end := n - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		siftDown(s, 0, end, p)
	}
}

func siftDown[S ~[]E, E cmp.Ordered](s S, root, n int, p cmpr[E]) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && p.less(s[child], s[child+1]) {
			child++
		}
		if !p.less(s[root], s[child]) {
			return
		}
		s[root], s[child] = s[child], s[root]
		root = child
	}
}
