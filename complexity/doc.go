// Package complexity is the executable half of the Big O notes: a closed set of
// complexity classes, the heuristics used to combine them, reference tables for
// data structures, sorting algorithms and decision-problem classes, and an
// estimator that recovers a growth class from measured operation counts.
//
// What
//
//   - Class: O(1), O(log n), O(n), O(n log n), O(n^2), O(n^3), O(2^n), O(n!).
//   - Heuristics: Dominant / Sequence drop non-dominant terms, Nest multiplies
//     the class of an outer loop with the class of its body.
//   - Catalog: best/average/worst time and worst-case space for common
//     data-structure operations and array sorting algorithms.
//   - ProblemClass: P, NP, NP-Complete and NP-Hard with the two comparison
//     tables (P vs NP, NP-Complete vs NP-Hard).
//   - Counter and Fit: count basic operations while running an algorithm at
//     several input sizes, then pick the class whose shape explains the counts.
//
// Why
//
//	Big O describes how the cost of an algorithm grows with its input, not how
//	fast it runs on one machine. Constants and lower-order terms are dropped
//	because for large n only the dominant term matters. Counting operations
//	instead of wall-clock time keeps estimates deterministic and testable.
//
// Fitting
//
//	For each candidate class c, Fit computes r_i = ln(ops_i) - ln f_c(n_i) for
//	every sample. If the counts really follow c·k for some constant k, every r_i
//	equals ln k and their variance is zero. The class with the smallest variance
//	wins; Estimate.Ranking keeps the full ordering for diagnostics.
//
// Errors
//
//   - ErrUnknownClass    ParseClass could not recognise the notation.
//   - ErrNoClosedForm    Nest produced a class outside the closed set.
//   - ErrUnknownEntry    Catalog lookup failed.
//   - ErrTooFewSamples   Fit needs at least MinSamples distinct sizes.
//   - ErrBadSample       a sample has N < 2 or Ops <= 0.
package complexity
