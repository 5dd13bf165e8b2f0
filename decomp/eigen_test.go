// SPDX-License-Identifier: MIT

package decomp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jamkit/jam/decomp"
	"github.com/jamkit/jam/matrix"
	"github.com/jamkit/jam/vector"
)

func TestEigen_NilAndNonSquare(t *testing.T) {
	t.Parallel()

	_, err := decomp.NewEigen(nil)
	require.ErrorIs(t, err, decomp.ErrNilView)

	rect := mustMatrix(t, randomRows(2, 3, 5))
	_, err = decomp.NewEigen(rect)
	require.ErrorIs(t, err, decomp.ErrNonSquare)
}

func TestEigen_Symmetric(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, [][]float64{
		{2, 1},
		{1, 2},
	})
	e, err := decomp.NewEigen(m)
	require.NoError(t, err)
	require.True(t, e.Symmetric())
	require.Equal(t, 2, e.N())

	vals := e.Values()
	require.InDelta(t, 3.0, vals[0], 1e-12)
	require.InDelta(t, 1.0, vals[1], 1e-12)

	// Orthonormal columns: unit norm, zero dot product.
	v0, err := e.Vector(0)
	require.NoError(t, err)
	v1, err := e.Vector(1)
	require.NoError(t, err)
	n0, err := vector.Norm2(v0)
	require.NoError(t, err)
	n1, err := vector.Norm2(v1)
	require.NoError(t, err)
	require.InDelta(t, 1.0, n0, 1e-12)
	require.InDelta(t, 1.0, n1, 1e-12)
	dot, err := vector.Dot(v0, v1)
	require.NoError(t, err)
	require.InDelta(t, 0.0, dot, 1e-12)

	require.InDelta(t, 3.0, e.Det(), 1e-12)
	require.InDelta(t, math.Log(3), e.LogDet(), 1e-12)
	require.Equal(t, 1.0, e.SgnDet())
}

func TestEigen_SymmetricOrdering(t *testing.T) {
	t.Parallel()

	m, err := matrix.Diagonal([]float64{-2, 3, 0.5})
	require.NoError(t, err)

	e, err := decomp.NewEigen(m)
	require.NoError(t, err)
	require.True(t, e.Symmetric())

	vals := e.Values()
	for k := 1; k < len(vals); k++ {
		require.GreaterOrEqual(t, vals[k-1], vals[k])
	}
	require.InDelta(t, 3.0, vals[0], 1e-12)
	require.InDelta(t, 0.5, vals[1], 1e-12)
	require.InDelta(t, -2.0, vals[2], 1e-12)

	require.InDelta(t, -3.0, e.Det(), 1e-12)
	require.Equal(t, -1.0, e.SgnDet())
	require.InDelta(t, math.Log(3.0), e.LogDet(), 1e-12)
}

func TestEigen_GeneralRealSpectrum(t *testing.T) {
	t.Parallel()

	// Upper triangular, not symmetric: eigenvalues sit on the diagonal.
	m := mustMatrix(t, [][]float64{
		{2, 1},
		{0, 3},
	})
	e, err := decomp.NewEigen(m)
	require.NoError(t, err)
	require.False(t, e.Symmetric())

	vals := e.Values()
	require.Len(t, vals, 2)
	require.InDelta(t, 6.0, vals[0]*vals[1], 1e-12)
	require.InDelta(t, 5.0, vals[0]+vals[1], 1e-12)

	// Each pair satisfies A·v ≈ λ·v.
	for k := 0; k < 2; k++ {
		v, err := e.Vector(k)
		require.NoError(t, err)
		av, err := matrix.TimesVec(m, v)
		require.NoError(t, err)
		lv, err := vector.Scaled(v, vals[k])
		require.NoError(t, err)
		ok, err := vector.Equal(av, lv, vector.WithEpsilon(1e-9))
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestEigen_ComplexSpectrumRejected(t *testing.T) {
	t.Parallel()

	// Plane rotation: eigenvalues ±i.
	m := mustMatrix(t, [][]float64{
		{0, -1},
		{1, 0},
	})
	_, err := decomp.NewEigen(m)
	require.ErrorIs(t, err, decomp.ErrComplexEigen)
}

func TestEigen_UnitEigenvector(t *testing.T) {
	t.Parallel()

	// Column-stochastic transition matrix: eigenvalues 1 and 0.7; the
	// unit eigenvector is the stationary direction.
	m := mustMatrix(t, [][]float64{
		{0.9, 0.2},
		{0.1, 0.8},
	})
	e, err := decomp.NewEigen(m)
	require.NoError(t, err)

	v, err := e.UnitEigenvector()
	require.NoError(t, err)

	av, err := matrix.TimesVec(m, v)
	require.NoError(t, err)
	ok, err := vector.Equal(av, v, vector.WithEpsilon(1e-9))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestEigen_UnitEigenvector_None(t *testing.T) {
	t.Parallel()

	m, err := matrix.Diagonal([]float64{2, 3})
	require.NoError(t, err)
	e, err := decomp.NewEigen(m)
	require.NoError(t, err)

	_, err = e.UnitEigenvector()
	require.ErrorIs(t, err, decomp.ErrNoUnitEigenvalue)
}

func TestEigen_UnitEigenvector_Ambiguous(t *testing.T) {
	t.Parallel()

	m, err := matrix.Identity(2)
	require.NoError(t, err)
	e, err := decomp.NewEigen(m)
	require.NoError(t, err)

	_, err = e.UnitEigenvector()
	require.ErrorIs(t, err, decomp.ErrAmbiguousUnitEigenvalue)
}

func TestEigen_VectorCopyIsIndependent(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, [][]float64{
		{2, 1},
		{1, 2},
	})
	e, err := decomp.NewEigen(m)
	require.NoError(t, err)

	v, err := e.Vector(0)
	require.NoError(t, err)
	before, err := e.Vectors().At(0, 0)
	require.NoError(t, err)

	require.NoError(t, v.Set(0, 99))
	after, err := e.Vectors().At(0, 0)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestEigen_VectorOutOfRange(t *testing.T) {
	t.Parallel()

	m, err := matrix.Identity(2)
	require.NoError(t, err)
	e, err := decomp.NewEigen(m)
	require.NoError(t, err)

	_, err = e.Vector(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, decomp.PanicEpsilonInvalid_TestOnly, func() {
		decomp.WithEpsilon(math.NaN())
	})
	require.PanicsWithValue(t, decomp.PanicEpsilonInvalid_TestOnly, func() {
		decomp.WithEpsilon(-1)
	})
}
