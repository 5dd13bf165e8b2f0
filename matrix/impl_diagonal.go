// SPDX-License-Identifier: MIT

// Package matrix - diagonal storage strategy with sparse promotion.
//
// Purpose:
//   - Physically store only the diagonal of an n×n matrix; off-diagonal
//     reads are 0 without storage.
//   - The one genuine state machine in this package: states are
//     {Diagonal, Promoted-Sparse}. set(r, c, v) with r != c and v
//     non-zero within tolerance triggers the one-way transition:
//     (a) allocate a sparse store sized n×n,
//     (b) copy every non-zero diagonal entry to its matching position,
//     (c) apply the triggering off-diagonal write,
//     (d) hand the new store back to the container, which replaces its
//     storage handle.
//   - Writing a zero off-diagonal while still Diagonal is a no-op (not
//     a promotion trigger), so benign zero-writes never densify.
//     Diagonal writes never promote. There is no reverse transition.

package matrix

import "github.com/jamkit/jam/numcmp"

// diagStorage holds the diagonal entries of an n×n matrix.
type diagStorage struct {
	n    int
	diag []float64
}

var _ storage = (*diagStorage)(nil)

// newDiagStorage copies the supplied diagonal. Complexity: O(n).
func newDiagStorage(diag []float64) *diagStorage {
	cp := make([]float64, len(diag))
	copy(cp, diag)

	return &diagStorage{n: len(diag), diag: cp}
}

func (s *diagStorage) rows() int         { return s.n }
func (s *diagStorage) cols() int         { return s.n }
func (s *diagStorage) kind() storageKind { return kindDiagonal }

// at reads diag[i] on the diagonal, 0 elsewhere. Complexity: O(1).
func (s *diagStorage) at(i, j int) float64 {
	if i == j {
		return s.diag[i]
	}

	return 0
}

// set either writes the diagonal in place or promotes.
//
// Implementation:
//   - Stage 1: diagonal cell — plain write, no transition, regardless
//     of value.
//   - Stage 2: off-diagonal zero (within tolerance) — no-op; the cell
//     already reads as 0 and the representation stays Diagonal.
//   - Stage 3: off-diagonal non-zero — build the sparse successor,
//     seed it from the current diagonal, apply the triggering write,
//     return the successor.
//
// Complexity: O(1) for stages 1-2, O(n) for the promotion.
func (s *diagStorage) set(i, j int, v float64) storage {
	if i == j {
		s.diag[i] = v

		return s
	}
	if numcmp.IsZero(v) {
		return s // benign zero-write; avoid needless densification
	}

	return s.promote(i, j, v)
}

// promote builds the Promoted-Sparse successor seeded from the current
// diagonal, then applies the triggering write. Exact-zero diagonal
// entries are not materialized (they read as 0 either way).
// Complexity: O(n).
func (s *diagStorage) promote(i, j int, v float64) storage {
	succ := newDOKStorage(s.n, s.n)
	for k, d := range s.diag {
		if d != 0 {
			succ.data[cell{k, k}] = d
		}
	}
	succ.data[cell{i, j}] = v

	return succ
}

// clone returns an independent diagonal copy (still Diagonal state).
// Complexity: O(n).
func (s *diagStorage) clone() storage {
	return newDiagStorage(s.diag)
}

// doNonZero visits non-zero diagonal entries in index order.
// Complexity: O(n).
func (s *diagStorage) doNonZero(f func(i, j int, v float64) bool) {
	for k, d := range s.diag {
		if d == 0 {
			continue
		}
		if !f(k, k, d) {
			return
		}
	}
}
