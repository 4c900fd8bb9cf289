// Package search implements linear and binary search over slices.
//
// Linear scans every element and works on any slice: O(n) time, O(1) space.
// Binary and LowerBound require a slice sorted in non-decreasing order and
// halve the candidate range on every step: O(log n) time, O(1) space.
// On unsorted input the binary variants return an unspecified index but never
// panic.
//
// WithCounter counts element comparisons, one per step.
package search
