// SPDX-License-Identifier: MIT

// Package decomp - eigendecomposition restricted to real spectra.
//
// Purpose:
//   - Factor a square matrix into real eigenvalues and right
//     eigenvectors; inputs with genuinely complex eigenvalues are
//     rejected with ErrComplexEigen rather than silently truncated.
//   - Symmetric inputs (tolerance test) take the symmetric backend,
//     which guarantees a real spectrum, non-increasing eigenvalue order
//     and orthonormal eigenvector columns.
//   - Every eigenpair is validated against A·v ≈ λ·v at construction;
//     a failing pair means the backend produced garbage and the
//     constructor returns ErrInconsistent instead of an object.
//
// Determinant helpers (Det, LogDet, SgnDet) derive from the eigenvalue
// product; UnitEigenvector selects the eigenvector of a unique
// eigenvalue equal to one.

package decomp

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/jamkit/jam/matrix"
	"github.com/jamkit/jam/numcmp"
	"github.com/jamkit/jam/vector"
)

// Eigen holds the real eigendecomposition of a square matrix, captured
// at construction. The zero value is not usable; build with NewEigen.
type Eigen struct {
	n   int
	sym bool
	eps float64

	vals []float64      // backend order: non-increasing when sym
	vecs *matrix.Matrix // eigenvectors as columns, aligned with vals
}

// NewEigen factorizes src, which must be square with an all-real
// spectrum. Symmetric matrices (within the tolerance policy) route to
// the symmetric backend and come out with eigenvalues in non-increasing
// order and orthonormal eigenvector columns; general matrices keep the
// backend's pairing order.
//
// Implementation:
//   - Stage 1: nil/shape validation, symmetry probe.
//   - Stage 2: backend factorization (EigenSym or Eigen); imaginary
//     parts beyond eps·max(1,|λ|) reject the matrix.
//   - Stage 3: per-pair A·v ≈ λ·v consistency check.
//
// Errors: ErrNilView, ErrNonSquare, ErrFactorization, ErrComplexEigen,
// ErrInconsistent.
// Complexity: O(n³).
func NewEigen(src matrix.View, opts ...Option) (*Eigen, error) {
	if src == nil {
		return nil, fmt.Errorf("decomp.NewEigen: %w", ErrNilView)
	}
	if src.Rows() != src.Cols() {
		return nil, fmt.Errorf("decomp.NewEigen: %dx%d: %w", src.Rows(), src.Cols(), ErrNonSquare)
	}
	o := gatherOptions(opts...)

	d, err := toDense(src)
	if err != nil {
		return nil, err
	}
	n, _ := d.Dims()

	sym, err := matrix.IsSymmetric(src, matrix.WithEpsilon(o.eps))
	if err != nil {
		return nil, err
	}

	e := &Eigen{n: n, sym: sym, eps: o.eps}
	if sym {
		err = e.factorizeSym(d)
	} else {
		err = e.factorizeGeneral(d)
	}
	if err != nil {
		return nil, err
	}

	if err := e.checkPairs(d); err != nil {
		return nil, err
	}

	return e, nil
}

// factorizeSym runs the symmetric backend and reverses its ascending
// output into non-increasing order, permuting the eigenvector columns
// in lock step.
func (e *Eigen) factorizeSym(d *mat.Dense) error {
	n := e.n
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = d.At(i, j)
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(mat.NewSymDense(n, data), true); !ok {
		return fmt.Errorf("decomp.NewEigen(%dx%d): %w", n, n, ErrFactorization)
	}

	asc := es.Values(nil)
	var vd mat.Dense
	es.VectorsTo(&vd)

	e.vals = make([]float64, n)
	rws := make([][]float64, n)
	for i := range rws {
		rws[i] = make([]float64, n)
	}
	for k := 0; k < n; k++ {
		rk := n - 1 - k // reversed column index
		e.vals[k] = asc[rk]
		for i := 0; i < n; i++ {
			rws[i][k] = vd.At(i, rk)
		}
	}
	vecs, err := matrix.CopyOf(rws)
	if err != nil {
		panic(err) // unreachable: rws is rectangular and non-empty
	}
	e.vecs = vecs

	return nil
}

// factorizeGeneral runs the general backend and rejects any eigenvalue
// whose imaginary part exceeds eps·max(1,|λ|).
func (e *Eigen) factorizeGeneral(d *mat.Dense) error {
	n := e.n

	var eig mat.Eigen
	if ok := eig.Factorize(d, mat.EigenRight); !ok {
		return fmt.Errorf("decomp.NewEigen(%dx%d): %w", n, n, ErrFactorization)
	}

	cvals := eig.Values(nil)
	for k, cv := range cvals {
		if math.Abs(imag(cv)) > e.eps*math.Max(1, cmplx.Abs(cv)) {
			return fmt.Errorf("decomp.NewEigen: eigenvalue %d = %v: %w", k, cv, ErrComplexEigen)
		}
	}

	var cv mat.CDense
	eig.VectorsTo(&cv)

	e.vals = make([]float64, n)
	rws := make([][]float64, n)
	for i := range rws {
		rws[i] = make([]float64, n)
	}
	for k := 0; k < n; k++ {
		e.vals[k] = real(cvals[k])
		for i := 0; i < n; i++ {
			rws[i][k] = real(cv.At(i, k))
		}
	}
	vecs, err := matrix.CopyOf(rws)
	if err != nil {
		panic(err) // unreachable: rws is rectangular and non-empty
	}
	e.vecs = vecs

	return nil
}

// checkPairs verifies A·v_k ≈ λ_k·v_k for every k within consistencyTol
// scaled by the eigenvalue magnitude. Symmetric decompositions
// additionally must come out ordered non-increasing with unit-norm
// columns.
func (e *Eigen) checkPairs(d *mat.Dense) error {
	n := e.n
	for k := 0; k < n; k++ {
		lam := e.vals[k]
		tol := consistencyTol * math.Max(1, math.Abs(lam))
		if e.sym {
			if k > 0 && e.vals[k-1] < lam {
				return fmt.Errorf("decomp.NewEigen: eigenvalue order at %d: %w", k, ErrInconsistent)
			}
			var norm float64
			for i := 0; i < n; i++ {
				vi, err := e.vecs.At(i, k)
				if err != nil {
					return err
				}
				norm += vi * vi
			}
			if math.Abs(math.Sqrt(norm)-1) > consistencyTol {
				return fmt.Errorf("decomp.NewEigen: eigenvector %d norm %g: %w",
					k, math.Sqrt(norm), ErrInconsistent)
			}
		}
		for i := 0; i < n; i++ {
			var av float64
			for j := 0; j < n; j++ {
				vj, err := e.vecs.At(j, k)
				if err != nil {
					return err
				}
				av += d.At(i, j) * vj
			}
			vi, err := e.vecs.At(i, k)
			if err != nil {
				return err
			}
			if math.Abs(av-lam*vi) > tol {
				return fmt.Errorf("decomp.NewEigen: pair %d residual %g: %w",
					k, math.Abs(av-lam*vi), ErrInconsistent)
			}
		}
	}

	return nil
}

// ---------- Accessors ----------

// N returns the matrix dimension. Complexity: O(1).
func (e *Eigen) N() int { return e.n }

// Symmetric reports whether the symmetric backend was used. When true,
// Values are non-increasing and Vectors' columns are orthonormal.
// Complexity: O(1).
func (e *Eigen) Symmetric() bool { return e.sym }

// Values returns the eigenvalues as a fresh slice, aligned with the
// eigenvector columns. Complexity: O(n).
func (e *Eigen) Values() []float64 {
	out := make([]float64, len(e.vals))
	copy(out, e.vals)

	return out
}

// Vectors returns the eigenvector matrix (eigenvectors as columns).
// The returned matrix is cached and shared across calls; treat it as
// read-only. Complexity: O(1).
func (e *Eigen) Vectors() *matrix.Matrix { return e.vecs }

// Vector returns an independent copy of the k-th eigenvector.
// Errors: matrix.ErrOutOfRange when k is out of bounds.
// Complexity: O(n).
func (e *Eigen) Vector(k int) (*vector.Vector, error) {
	col, err := matrix.ColView(e.vecs, k)
	if err != nil {
		return nil, err
	}

	return vector.CopyOfView(col)
}

// ---------- Determinant family ----------

// Det returns the determinant as the product of eigenvalues.
// Prone to overflow/underflow on large matrices; prefer LogDet there.
// Complexity: O(n).
func (e *Eigen) Det() float64 {
	det := 1.0
	for _, v := range e.vals {
		det *= v
	}

	return det
}

// LogDet returns the natural log of the absolute determinant,
// Σ log|λ_k|. A zero eigenvalue yields -Inf. Complexity: O(n).
func (e *Eigen) LogDet() float64 {
	var sum float64
	for _, v := range e.vals {
		sum += math.Log(math.Abs(v))
	}

	return sum
}

// SgnDet returns the sign of the determinant: +1, -1, or 0 when any
// eigenvalue is zero within the tolerance policy. Complexity: O(n).
func (e *Eigen) SgnDet() float64 {
	sgn := 1.0
	for _, v := range e.vals {
		if numcmp.IsZeroWithin(v, e.eps) {
			return 0
		}
		if v < 0 {
			sgn = -sgn
		}
	}

	return sgn
}

// UnitEigenvector returns a copy of the eigenvector whose eigenvalue
// equals one within the tolerance policy — for a column-stochastic
// matrix this is the stationary direction.
//
// Errors: ErrNoUnitEigenvalue when no eigenvalue matches,
// ErrAmbiguousUnitEigenvalue when more than one does.
// Complexity: O(n).
func (e *Eigen) UnitEigenvector() (*vector.Vector, error) {
	at := -1
	for k, v := range e.vals {
		if !numcmp.EqWithin(v, 1, e.eps) {
			continue
		}
		if at >= 0 {
			return nil, fmt.Errorf("decomp.UnitEigenvector: %w", ErrAmbiguousUnitEigenvalue)
		}
		at = k
	}
	if at < 0 {
		return nil, fmt.Errorf("decomp.UnitEigenvector: %w", ErrNoUnitEigenvalue)
	}

	return e.Vector(at)
}
