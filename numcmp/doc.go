// Package numcmp provides tolerance-based comparison of float64 values.
//
// The numcmp package is the leaf every other jam package shares: vector
// and matrix equality, symmetry checks, promotion triggers and the
// normalize/unitize zero guards all funnel through the same epsilon
// policy defined here.
//
// Semantics:
//
//   - Two values are equal when |a-b| ≤ eps, with two deliberate
//     exceptions: NaN equals nothing (itself included), and each
//     infinity equals only itself.
//   - Ordering (Compare) collapses tolerance-equal values to 0, so a
//     chain of arithmetic that accumulates rounding error still sorts
//     stably.
//
// DefaultEpsilon (1e-9) is tuned for double-precision data; callers
// with noisy inputs pass an explicit eps via the *Within variants.
//
// Complexity: every function is O(1), allocation-free.
package numcmp
