// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to
// allow easy grepping across logs. If context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the detection site — callers still
// match via errors.Is.

var (
	// ErrOutOfRange indicates that an index (row or column) is outside
	// valid bounds. Public indexers (At/Set) and eager view constructors
	// MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadShape is returned when a requested shape is invalid
	// (r <= 0 or c <= 0, or an empty diagonal). Factories must validate
	// before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Times where a.Cols != b.Rows, or TimesVec where
	// x.Len != Cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required (Trace,
	// DiagView) but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRagged indicates that a [][]float64 handed to CopyOf/Wrap has
	// rows of unequal length.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrNilView indicates that a nil View (receiver or argument) was used.
	ErrNilView = errors.New("matrix: nil view")
)
