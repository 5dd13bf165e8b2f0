// SPDX-License-Identifier: MIT

// Package vector: domain-facing types. The View contract lives here;
// errors and options live in dedicated files per the global conventions.

package vector

// View is the read-only capability over one-dimensional float64 data,
// independent of physical storage. Every consumer in jam (statistics,
// matrix multiply, decompositions) accepts a View and never mutates
// through it.
//
// Contract:
//   - Len() is fixed for the lifetime of a given view.
//   - At(i) is defined for all 0 ≤ i < Len() and returns ErrOutOfRange
//     otherwise. It never panics.
type View interface {
	// Len returns the number of elements.
	// Complexity: O(1).
	Len() int

	// At retrieves the element at index i.
	// Returns ErrOutOfRange if i < 0 or i >= Len().
	// Complexity: O(1) for all jam-provided implementations.
	At(i int) (float64, error)
}

// Element is an immutable (index, value) pair produced when streaming a
// container's contents; used for sparse iteration via DoNonZero.
type Element struct {
	Index int
	Value float64
}
