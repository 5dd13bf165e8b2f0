// SPDX-License-Identifier: MIT
// Package vector: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// vector package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package vector

import "errors"

// Every message is prefixed with "vector: ..." for consistency and to
// allow easy grepping across logs. If context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the detection site — callers still
// match via errors.Is.

var (
	// ErrOutOfRange indicates an element index outside [0, Len()).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrBadLength is returned when a requested length is invalid (n <= 0).
	// Factories must validate before allocation.
	ErrBadLength = errors.New("vector: invalid length")

	// ErrDimensionMismatch indicates incompatible operand lengths,
	// e.g. Daxpy/Plus/Dot over views of different Len().
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrZeroSum signals Normalize on a vector whose element sum is
	// within tolerance of zero (division-by-near-zero guard).
	ErrZeroSum = errors.New("vector: sum is zero within eps")

	// ErrZeroNorm signals Unitize on a vector whose 2-norm is within
	// tolerance of zero.
	ErrZeroNorm = errors.New("vector: norm is zero within eps")

	// ErrParse marks a malformed numeric token during delimited-string
	// parsing. The wrapping error carries the offending token.
	ErrParse = errors.New("vector: malformed numeric token")

	// ErrNilView indicates that a nil View (receiver or argument) was used.
	ErrNilView = errors.New("vector: nil view")
)
