// SPDX-License-Identifier: MIT

// Package matrix - zero-copy row/column/diagonal projections.
//
// Purpose:
//   - Project a matrix into the vector.View contract without copying:
//     each projection is purely relational — a back-reference to the
//     matrix plus an index, never owning data. Writes to the matrix are
//     visible through live projections.
//   - Validate eagerly: an invalid row/column index, or a diagonal view
//     of a non-square matrix, fails at construction, not at first use.
//
// Lifetime: nothing in the type system ties a projection to its matrix;
// the matrix must outlive every projection taken from it.

package matrix

import (
	"fmt"

	"github.com/jamkit/jam/vector"
)

// rowView projects row i of m as a vector.View of length m.Cols().
type rowView struct {
	m View
	i int
}

// colView projects column j of m as a vector.View of length m.Rows().
type colView struct {
	m View
	j int
}

// diagView projects the main diagonal of a square m as a vector.View.
type diagView struct {
	m View
}

var (
	_ vector.View = rowView{}
	_ vector.View = colView{}
	_ vector.View = diagView{}
)

// RowView returns a zero-copy view of row i.
// Errors (eagerly, at construction): ErrNilView, ErrOutOfRange.
// Complexity: O(1).
func RowView(m View, i int) (vector.View, error) {
	if m == nil {
		return nil, fmt.Errorf("matrix.RowView: %w", ErrNilView)
	}
	if i < 0 || i >= m.Rows() {
		return nil, fmt.Errorf("matrix.RowView(%d): %w", i, ErrOutOfRange)
	}

	return rowView{m: m, i: i}, nil
}

// ColView returns a zero-copy view of column j.
// Errors (eagerly, at construction): ErrNilView, ErrOutOfRange.
// Complexity: O(1).
func ColView(m View, j int) (vector.View, error) {
	if m == nil {
		return nil, fmt.Errorf("matrix.ColView: %w", ErrNilView)
	}
	if j < 0 || j >= m.Cols() {
		return nil, fmt.Errorf("matrix.ColView(%d): %w", j, ErrOutOfRange)
	}

	return colView{m: m, j: j}, nil
}

// DiagView returns a zero-copy view of the main diagonal.
// Errors (eagerly, at construction): ErrNilView; ErrNonSquare when
// Rows() != Cols().
// Complexity: O(1).
func DiagView(m View) (vector.View, error) {
	if m == nil {
		return nil, fmt.Errorf("matrix.DiagView: %w", ErrNilView)
	}
	if m.Rows() != m.Cols() {
		return nil, fmt.Errorf("matrix.DiagView: %dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare)
	}

	return diagView{m: m}, nil
}

// Len returns the projected length. Complexity: O(1).
func (v rowView) Len() int { return v.m.Cols() }

// At reads row element k through the matrix. The projection's own
// bounds map to vector.ErrOutOfRange, honoring the vector.View contract.
// Complexity: O(1).
func (v rowView) At(k int) (float64, error) {
	if k < 0 || k >= v.m.Cols() {
		return 0, fmt.Errorf("matrix.rowView.At(%d): %w", k, vector.ErrOutOfRange)
	}

	return v.m.At(v.i, k)
}

// Len returns the projected length. Complexity: O(1).
func (v colView) Len() int { return v.m.Rows() }

// At reads column element k through the matrix. Complexity: O(1).
func (v colView) At(k int) (float64, error) {
	if k < 0 || k >= v.m.Rows() {
		return 0, fmt.Errorf("matrix.colView.At(%d): %w", k, vector.ErrOutOfRange)
	}

	return v.m.At(k, v.j)
}

// Len returns the diagonal length. Complexity: O(1).
func (v diagView) Len() int { return v.m.Rows() }

// At reads diagonal element k through the matrix. Complexity: O(1).
func (v diagView) At(k int) (float64, error) {
	if k < 0 || k >= v.m.Rows() {
		return 0, fmt.Errorf("matrix.diagView.At(%d): %w", k, vector.ErrOutOfRange)
	}

	return v.m.At(k, k)
}
