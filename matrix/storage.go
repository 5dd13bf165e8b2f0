// SPDX-License-Identifier: MIT

// Package matrix - the storage strategy boundary.
//
// Purpose:
//   - All shape/get/set operations of the Matrix container dispatch
//     through this single abstraction; callers cannot distinguish
//     representations through At/Set (representation transparency).
//   - set returns a possibly different strategy instance: the diagonal
//     strategy answers an off-diagonal non-zero write by building its
//     sparse successor and returning it, and the container replaces its
//     held handle. This avoids mutating an incompatible representation
//     in place. Every other strategy returns itself.

package matrix

// storageKind tags the concrete strategy; exposed to tests only (see
// export_privates_for_test.go) so the promotion state machine is
// directly observable.
type storageKind int

const (
	kindDense storageKind = iota
	kindDiagonal
	kindSparse
	kindWrap
)

// storage is the strategy interface held by Matrix. Indices are
// validated by the container; strategies may assume they are in range.
type storage interface {
	// rows / cols return the shape. O(1).
	rows() int
	cols() int

	// at reads element (i, j) (pre-validated). O(1).
	at(i, j int) float64

	// set writes element (i, j) (pre-validated) and returns the strategy
	// that now owns the data — the receiver in every case except a
	// diagonal promotion. O(1) amortized.
	set(i, j int, v float64) storage

	// clone returns an independent copy with the same representation
	// (a wrap clone detaches into dense). O(size).
	clone() storage

	// doNonZero visits stored non-zero elements; dense/diagonal/wrap
	// iterate in row-major (resp. diagonal) order, sparse iterates its
	// map in unspecified order. Stops early when f returns false.
	doNonZero(f func(i, j int, v float64) bool)

	// kind tags the concrete representation for white-box tests.
	kind() storageKind
}
