// SPDX-License-Identifier: MIT

// Package decomp - thin singular value decomposition.
//
// Purpose:
//   - Factor an arbitrary M×N matrix as A = U·Σ·Vᵀ with column-orthogonal
//     U, orthogonal V and non-increasing singular values.
//   - Drive the pseudo inverse: singular values at or below
//     SigmaThreshold are treated as exact zeros, which makes Invert a
//     true inverse for square full-rank input and a least-squares pseudo
//     inverse everywhere else.
//
// Factor accessors are memoized: the gonum factorization is held once,
// the jam-typed factors are built on first access and cached.

package decomp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/jamkit/jam/matrix"
)

// machineEpsilon is the float64 unit roundoff step, 2^-52.
const machineEpsilon = 0x1p-52

// SVD holds the thin singular value decomposition of an M×N matrix,
// captured at construction. The zero value is not usable; build with
// NewSVD.
type SVD struct {
	rows, cols int
	svd        mat.SVD

	// Lazily materialized factors. Nil until first accessed.
	vals []float64
	u, v *matrix.Matrix
}

// NewSVD factorizes src. The source contents are copied up front;
// mutating src afterwards does not affect the decomposition.
//
// Errors: ErrNilView on nil input, ErrFactorization when the backend
// fails to converge.
//
// Complexity: O(min(M,N)·M·N).
func NewSVD(src matrix.View) (*SVD, error) {
	d, err := toDense(src)
	if err != nil {
		return nil, err
	}
	r, c := d.Dims()

	s := &SVD{rows: r, cols: c}
	if ok := s.svd.Factorize(d, mat.SVDThin); !ok {
		return nil, fmt.Errorf("decomp.NewSVD(%dx%d): %w", r, c, ErrFactorization)
	}

	return s, nil
}

// Values returns the singular values in non-increasing order as a fresh
// slice. Complexity: O(min(M,N)) after the first call.
func (s *SVD) Values() []float64 {
	if s.vals == nil {
		s.vals = s.svd.Values(nil)
	}
	out := make([]float64, len(s.vals))
	copy(out, s.vals)

	return out
}

// U returns the left-singular factor (M×min(M,N), column-orthogonal).
// The returned matrix is cached and shared across calls; treat it as
// read-only. Complexity: O(M·min(M,N)) on the first call, O(1) after.
func (s *SVD) U() *matrix.Matrix {
	if s.u == nil {
		var u mat.Dense
		s.svd.UTo(&u)
		s.u = fromDense(&u)
	}

	return s.u
}

// V returns the right-singular factor (N×min(M,N), column-orthogonal).
// Cached and shared like U. Complexity: O(N·min(M,N)) on the first
// call, O(1) after.
func (s *SVD) V() *matrix.Matrix {
	if s.v == nil {
		var v mat.Dense
		s.svd.VTo(&v)
		s.v = fromDense(&v)
	}

	return s.v
}

// SigmaThreshold returns the rank-deficiency cutoff
//
//	0.5 · sqrt(M + N + 1) · max(σ) · machine-epsilon.
//
// Singular values at or below the threshold are indistinguishable from
// zero at float64 precision given the matrix shape.
// Complexity: O(1) (σ_max is the first singular value).
func (s *SVD) SigmaThreshold() float64 {
	sig := s.singular()
	if len(sig) == 0 {
		return 0
	}

	return 0.5 * math.Sqrt(float64(s.rows+s.cols+1)) * sig[0] * machineEpsilon
}

// Rank counts the singular values strictly above SigmaThreshold.
// Complexity: O(min(M,N)).
func (s *SVD) Rank() int {
	thr := s.SigmaThreshold()
	n := 0
	for _, sv := range s.singular() {
		if sv > thr {
			n++
		}
	}

	return n
}

// Invert returns the (pseudo) inverse V·Σ⁺·Uᵀ as a fresh N×M matrix.
// Singular values at or below SigmaThreshold contribute zero, so
// rank-deficient input yields the minimum-norm least-squares inverse
// rather than blowing up.
//
// Implementation:
//   - Stage 1: scale the columns of V by 1/σ_j (zero below threshold).
//   - Stage 2: multiply the scaled V by Uᵀ in the gonum backend.
//
// Complexity: O(N·min(M,N)·M).
func (s *SVD) Invert() *matrix.Matrix {
	sig := s.singular()
	thr := s.SigmaThreshold()

	var u, v mat.Dense
	s.svd.UTo(&u)
	s.svd.VTo(&v)

	n, k := v.Dims()
	w := mat.NewDense(n, k, nil)
	for j := 0; j < k; j++ {
		var inv float64
		if sig[j] > thr {
			inv = 1 / sig[j]
		}
		for i := 0; i < n; i++ {
			w.Set(i, j, v.At(i, j)*inv)
		}
	}

	var res mat.Dense
	res.Mul(w, u.T())

	return fromDense(&res)
}

// singular returns the memoized singular values without copying.
func (s *SVD) singular() []float64 {
	if s.vals == nil {
		s.vals = s.svd.Values(nil)
	}

	return s.vals
}
