// SPDX-License-Identifier: MIT

// Package matrix: domain-facing types. The View contract lives here;
// errors and options live in dedicated files per the global conventions.

package matrix

// View is the read-only capability over two-dimensional float64 data,
// independent of physical storage.
//
// Contract:
//   - Rows() and Cols() are fixed for the lifetime of a given view.
//   - At(i, j) is defined for all 0 ≤ i < Rows(), 0 ≤ j < Cols() and
//     returns ErrOutOfRange otherwise. It never panics.
type View interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1) for all jam-provided implementations.
	At(i, j int) (float64, error)
}

// Element is an immutable (row, col, value) tuple produced when
// streaming a container's contents; used for sparse iteration via
// DoNonZero.
type Element struct {
	Row, Col int
	Value    float64
}
