// SPDX-License-Identifier: MIT

// Package vector - derived operations over the read-only View contract.
//
// Purpose:
//   - Everything here reads its operands and produces new values or new
//     Vectors; no function in this file mutates an argument.
//   - Equality is shape-then-elementwise under the tolerance policy —
//     NOT exact floating-point equality. Arithmetic chains accumulate
//     rounding error, so "equal within eps" is the primary equivalence
//     relation for numeric containers in jam.
//   - Fast paths operate on flat buffers when the operand is a *Vector;
//     the slow path honors the View contract element by element.

package vector

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/jamkit/jam/numcmp"
)

// materialize returns a flat read view of a. Fast path: the *Vector
// backing slice (no copy, MUST be treated as read-only). Slow path:
// an owned copy read through At.
// Complexity: O(1) fast path, O(n) slow path.
func materialize(a View) ([]float64, error) {
	if a == nil {
		return nil, ErrNilView
	}
	if av, ok := a.(*Vector); ok {
		return av.s.slice(), nil
	}
	n := a.Len()
	buf := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := a.At(i)
		if err != nil {
			return nil, err
		}
		buf[i] = v
	}

	return buf, nil
}

// Materialize copies any View into a fresh []float64 the caller owns.
// Complexity: O(n).
func Materialize(a View) ([]float64, error) {
	buf, err := materialize(a)
	if err != nil {
		return nil, err
	}
	cp := make([]float64, len(buf))
	copy(cp, buf)

	return cp, nil
}

// Equal reports whether a and b have identical shape and elementwise
// equality within the tolerance policy.
//
// Implementation:
//   - Stage 1: nil checks, then shape check (false, no error, on mismatch).
//   - Stage 2: elementwise numcmp.EqWithin under the effective eps.
//
// Complexity: O(n).
func Equal(a, b View, opts ...Option) (bool, error) {
	if a == nil || b == nil {
		return false, fmt.Errorf("vector.Equal: %w", ErrNilView)
	}
	if a.Len() != b.Len() {
		return false, nil
	}
	o := gatherOptions(opts...)

	as, err := materialize(a)
	if err != nil {
		return false, err
	}
	bs, err := materialize(b)
	if err != nil {
		return false, err
	}
	for i := range as {
		if !numcmp.EqWithin(as[i], bs[i], o.eps) {
			return false, nil
		}
	}

	return true, nil
}

// binary runs the shared prologue of two-operand ops: nil checks, shape
// check, materialization. opTag feeds the error context.
func binary(a, b View, opTag string) ([]float64, []float64, error) {
	if a == nil || b == nil {
		return nil, nil, fmt.Errorf("vector.%s: %w", opTag, ErrNilView)
	}
	if a.Len() != b.Len() {
		return nil, nil, fmt.Errorf("vector.%s: len %d vs %d: %w", opTag, a.Len(), b.Len(), ErrDimensionMismatch)
	}
	as, err := materialize(a)
	if err != nil {
		return nil, nil, err
	}
	bs, err := materialize(b)
	if err != nil {
		return nil, nil, err
	}

	return as, bs, nil
}

// Plus returns a new vector a + b.
// Errors: ErrDimensionMismatch on length mismatch; ErrNilView.
// Complexity: O(n).
func Plus(a, b View) (*Vector, error) {
	as, bs, err := binary(a, b, "Plus")
	if err != nil {
		return nil, err
	}
	dst := make([]float64, len(as))
	floats.AddTo(dst, as, bs)

	return &Vector{s: &denseStorage{buf: dst}}, nil
}

// Minus returns a new vector a - b.
// Errors: ErrDimensionMismatch on length mismatch; ErrNilView.
// Complexity: O(n).
func Minus(a, b View) (*Vector, error) {
	as, bs, err := binary(a, b, "Minus")
	if err != nil {
		return nil, err
	}
	dst := make([]float64, len(as))
	floats.SubTo(dst, as, bs)

	return &Vector{s: &denseStorage{buf: dst}}, nil
}

// Scaled returns a new vector alpha * a. The operand is untouched.
// Complexity: O(n).
func Scaled(a View, alpha float64) (*Vector, error) {
	as, err := materialize(a)
	if err != nil {
		return nil, fmt.Errorf("vector.Scaled: %w", err)
	}
	dst := make([]float64, len(as))
	floats.ScaleTo(dst, alpha, as)

	return &Vector{s: &denseStorage{buf: dst}}, nil
}

// Dot returns the inner product of a and b.
// Errors: ErrDimensionMismatch on length mismatch; ErrNilView.
// Complexity: O(n).
func Dot(a, b View) (float64, error) {
	as, bs, err := binary(a, b, "Dot")
	if err != nil {
		return 0, err
	}

	return floats.Dot(as, bs), nil
}

// Sum returns the plain element sum of a (no finite-value filtering;
// that data-cleaning policy belongs to the stat package).
// Complexity: O(n).
func Sum(a View) (float64, error) {
	as, err := materialize(a)
	if err != nil {
		return 0, fmt.Errorf("vector.Sum: %w", err)
	}

	return floats.Sum(as), nil
}

// Norm1 returns the 1-norm (sum of absolute values) of a.
// Complexity: O(n).
func Norm1(a View) (float64, error) {
	as, err := materialize(a)
	if err != nil {
		return 0, fmt.Errorf("vector.Norm1: %w", err)
	}

	return floats.Norm(as, 1), nil
}

// Norm2 returns the Euclidean norm of a.
// Complexity: O(n).
func Norm2(a View) (float64, error) {
	as, err := materialize(a)
	if err != nil {
		return 0, fmt.Errorf("vector.Norm2: %w", err)
	}

	return floats.Norm(as, 2), nil
}
