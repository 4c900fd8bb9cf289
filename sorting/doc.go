// Package sorting implements the canonical comparison sorts from the Big O
// notes: bubble, selection, insertion, merge, quick and heap sort.
//
// Every function sorts a slice of cmp.Ordered values in place in
// non-decreasing order. Pass WithCounter to count comparisons; the counts are
// what measure feeds into complexity.Fit to recover each algorithm's class.
//
// Complexity (comparisons):
//
//	algorithm   best        average     worst       extra space  stable
//	Bubble      O(n)        O(n^2)      O(n^2)      O(1)         yes
//	Selection   O(n^2)      O(n^2)      O(n^2)      O(1)         no
//	Insertion   O(n)        O(n^2)      O(n^2)      O(1)         yes
//	Merge       O(n log n)  O(n log n)  O(n log n)  O(n)         yes
//	Quick       O(n log n)  O(n log n)  O(n^2)      O(log n)     no
//	Heap        O(n log n)  O(n log n)  O(n log n)  O(1)         no
//
// Bubble stops after the first pass without swaps, which is why it is linear
// on already-sorted input. Quick uses a median-of-three pivot and switches to
// insertion sort below a small cutoff, so sorted and reverse-sorted inputs do
// not hit the quadratic case.
package sorting
