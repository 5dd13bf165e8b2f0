// SPDX-License-Identifier: MIT

// Package matrix - derived operations over the read-only View contract.
//
// Purpose:
//   - Multiply, trace, transpose, symmetry and equality as pure
//     functions over View: operands are read, never mutated, and shape
//     checks run before any work (fail before partial results).
//   - Fast paths exploit the container's non-zero iteration when the
//     operand is a *Matrix (a promoted-sparse or diagonal operand
//     multiplies in O(nnz) instead of O(r*c)).

package matrix

import (
	"fmt"

	"github.com/jamkit/jam/numcmp"
	"github.com/jamkit/jam/vector"
)

// TimesVec computes m·x, producing a new vector of length m.Rows().
//
// Implementation:
//   - Stage 1: nil/shape checks (x.Len() must equal m.Cols()).
//   - Stage 2: fast path for *Matrix — accumulate over stored non-zeros
//     (dst[i] += v·x[j]); correct in any visit order.
//   - Stage 3: generic path — row·column dot products through At.
//
// Errors: ErrDimensionMismatch, ErrNilView.
// Complexity: O(nnz) fast path, O(r*c) generic.
func TimesVec(m View, x vector.View) (*vector.Vector, error) {
	if m == nil || x == nil {
		return nil, fmt.Errorf("matrix.TimesVec: %w", ErrNilView)
	}
	r, c := m.Rows(), m.Cols()
	if x.Len() != c {
		return nil, fmt.Errorf("matrix.TimesVec: vec len %d vs %d cols: %w", x.Len(), c, ErrDimensionMismatch)
	}
	xs, err := vector.Materialize(x)
	if err != nil {
		return nil, err
	}

	dst := make([]float64, r)
	if mm, ok := m.(*Matrix); ok {
		mm.s.doNonZero(func(i, j int, v float64) bool {
			dst[i] += v * xs[j]

			return true
		})

		return vector.Wrap(dst) // dst is freshly owned; wrapping avoids a copy
	}

	for i := 0; i < r; i++ {
		var sum float64
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			sum += v * xs[j]
		}
		dst[i] = sum
	}

	return vector.Wrap(dst)
}

// Times computes a·b with the standard row·column dot-product
// definition, producing a new dense (a.Rows() × b.Cols()) matrix.
//
// Errors: ErrDimensionMismatch unless a.Cols() == b.Rows(); ErrNilView.
// Complexity: O(r·k·c) generic, O(nnz(a)·c) when a is a *Matrix.
func Times(a, b View) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("matrix.Times: %w", ErrNilView)
	}
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("matrix.Times: %dx%d by %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}
	r, k, c := a.Rows(), a.Cols(), b.Cols()

	bm, err := CopyOfView(b) // one materialization beats r*k At calls per cell
	if err != nil {
		return nil, err
	}
	bd := bm.s.(*denseStorage)

	out := newDenseStorage(r, c)
	if am, ok := a.(*Matrix); ok {
		// Sparse-aware accumulation: each stored a[i,j] contributes a
		// scaled row of b to row i of the result.
		am.s.doNonZero(func(i, j int, v float64) bool {
			bRow := bd.data[j*c : (j+1)*c]
			oRow := out.data[i*c : (i+1)*c]
			for t, bv := range bRow {
				oRow[t] += v * bv
			}

			return true
		})

		return &Matrix{s: out}, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < k; j++ {
			v, err := a.At(i, j)
			if err != nil {
				return nil, err
			}
			if v == 0 {
				continue
			}
			bRow := bd.data[j*c : (j+1)*c]
			oRow := out.data[i*c : (i+1)*c]
			for t, bv := range bRow {
				oRow[t] += v * bv
			}
		}
	}

	return &Matrix{s: out}, nil
}

// Trace returns the sum of diagonal entries.
// Errors: ErrNonSquare unless Rows() == Cols(); ErrNilView.
// Complexity: O(n).
func Trace(m View) (float64, error) {
	if m == nil {
		return 0, fmt.Errorf("matrix.Trace: %w", ErrNilView)
	}
	if m.Rows() != m.Cols() {
		return 0, fmt.Errorf("matrix.Trace: %dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare)
	}
	var sum float64
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return 0, err
		}
		sum += v
	}

	return sum, nil
}

// IsSymmetric reports whether m equals its transpose within the
// tolerance policy. Non-square matrices are never symmetric (false, no
// error). Compares (r,c) against (c,r) for r < c only.
// Complexity: O(n²/2).
func IsSymmetric(m View, opts ...Option) (bool, error) {
	if m == nil {
		return false, fmt.Errorf("matrix.IsSymmetric: %w", ErrNilView)
	}
	n := m.Rows()
	if n != m.Cols() {
		return false, nil
	}
	o := gatherOptions(opts...)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, err := m.At(i, j)
			if err != nil {
				return false, err
			}
			b, err := m.At(j, i)
			if err != nil {
				return false, err
			}
			if !numcmp.EqWithin(a, b, o.eps) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal reports whether a and b have identical shape and elementwise
// equality within the tolerance policy. Shape mismatch is inequality,
// not an error.
// Complexity: O(r*c).
func Equal(a, b View, opts ...Option) (bool, error) {
	if a == nil || b == nil {
		return false, fmt.Errorf("matrix.Equal: %w", ErrNilView)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}
	o := gatherOptions(opts...)
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, err := a.At(i, j)
			if err != nil {
				return false, err
			}
			bv, err := b.At(i, j)
			if err != nil {
				return false, err
			}
			if !numcmp.EqWithin(av, bv, o.eps) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Transpose returns a new dense matrix with rows and columns swapped.
// Complexity: O(r*c).
func Transpose(m View) (*Matrix, error) {
	if m == nil {
		return nil, fmt.Errorf("matrix.Transpose: %w", ErrNilView)
	}
	r, c := m.Rows(), m.Cols()
	out := newDenseStorage(c, r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out.data[j*r+i] = v
		}
	}

	return &Matrix{s: out}, nil
}
