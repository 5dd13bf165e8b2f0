// SPDX-License-Identifier: MIT

package decomp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/jamkit/jam/decomp"
	"github.com/jamkit/jam/matrix"
)

// randomRows fills an r×c grid with deterministic pseudo-random entries
// in (-1, 1). Square grids get a diagonal boost so they stay far from
// singular.
func randomRows(r, c int, seed uint64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rws := make([][]float64, r)
	for i := range rws {
		rws[i] = make([]float64, c)
		for j := range rws[i] {
			rws[i][j] = 2*rng.Float64() - 1
		}
		if r == c {
			rws[i][i] += float64(c)
		}
	}

	return rws
}

func mustMatrix(t *testing.T, rws [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.CopyOf(rws)
	require.NoError(t, err)

	return m
}

func TestSVD_NilView(t *testing.T) {
	t.Parallel()

	_, err := decomp.NewSVD(nil)
	require.ErrorIs(t, err, decomp.ErrNilView)
}

func TestSVD_ThinShapes(t *testing.T) {
	t.Parallel()

	tall, err := decomp.NewSVD(mustMatrix(t, randomRows(5, 3, 7)))
	require.NoError(t, err)
	require.Equal(t, 5, tall.U().Rows())
	require.Equal(t, 3, tall.U().Cols())
	require.Equal(t, 3, tall.V().Rows())
	require.Equal(t, 3, tall.V().Cols())
	require.Len(t, tall.Values(), 3)

	wide, err := decomp.NewSVD(mustMatrix(t, randomRows(3, 5, 7)))
	require.NoError(t, err)
	require.Equal(t, 3, wide.U().Rows())
	require.Equal(t, 3, wide.U().Cols())
	require.Equal(t, 5, wide.V().Rows())
	require.Equal(t, 3, wide.V().Cols())
}

func TestSVD_ValuesNonIncreasing(t *testing.T) {
	t.Parallel()

	s, err := decomp.NewSVD(mustMatrix(t, randomRows(6, 4, 11)))
	require.NoError(t, err)

	vals := s.Values()
	for k := 1; k < len(vals); k++ {
		require.GreaterOrEqual(t, vals[k-1], vals[k])
	}

	// Returned slice is a snapshot; scribbling on it must not leak back.
	vals[0] = -1
	require.Positive(t, s.Values()[0])
}

func TestSVD_SigmaThresholdFormula(t *testing.T) {
	t.Parallel()

	s, err := decomp.NewSVD(mustMatrix(t, randomRows(4, 3, 3)))
	require.NoError(t, err)

	want := 0.5 * math.Sqrt(4+3+1) * s.Values()[0] * decomp.MachineEpsilon_TestOnly
	require.InDelta(t, want, s.SigmaThreshold(), 1e-30)
}

func TestSVD_SquareInverse(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, randomRows(4, 4, 1))
	s, err := decomp.NewSVD(m)
	require.NoError(t, err)
	require.Equal(t, 4, s.Rank())

	inv := s.Invert()
	require.Equal(t, 4, inv.Rows())
	require.Equal(t, 4, inv.Cols())

	prod, err := matrix.Times(m, inv)
	require.NoError(t, err)
	eye, err := matrix.Identity(4)
	require.NoError(t, err)

	ok, err := matrix.Equal(prod, eye, matrix.WithEpsilon(1e-9))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSVD_WidePseudoInverse(t *testing.T) {
	t.Parallel()

	// Full-row-rank wide matrix: A·A⁺ recovers the small identity.
	m := mustMatrix(t, [][]float64{
		{1, 0, 2},
		{0, 1, -1},
	})
	s, err := decomp.NewSVD(m)
	require.NoError(t, err)
	require.Equal(t, 2, s.Rank())

	pinv := s.Invert()
	require.Equal(t, 3, pinv.Rows())
	require.Equal(t, 2, pinv.Cols())

	prod, err := matrix.Times(m, pinv)
	require.NoError(t, err)
	eye, err := matrix.Identity(2)
	require.NoError(t, err)

	ok, err := matrix.Equal(prod, eye, matrix.WithEpsilon(1e-9))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSVD_RankDeficient(t *testing.T) {
	t.Parallel()

	// Rank-one matrix: the tiny second singular value must be cut, and
	// the pseudo inverse must still satisfy A·A⁺·A ≈ A.
	m := mustMatrix(t, [][]float64{
		{1, 2},
		{2, 4},
	})
	s, err := decomp.NewSVD(m)
	require.NoError(t, err)
	require.Equal(t, 1, s.Rank())

	pinv := s.Invert()
	half, err := matrix.Times(m, pinv)
	require.NoError(t, err)
	back, err := matrix.Times(half, m)
	require.NoError(t, err)

	ok, err := matrix.Equal(back, m, matrix.WithEpsilon(1e-9))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSVD_FactorsReconstruct(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, randomRows(4, 4, 42))
	s, err := decomp.NewSVD(m)
	require.NoError(t, err)

	// U·Σ·Vᵀ must give back the original matrix.
	u, v, sig := s.U(), s.V(), s.Values()
	us := u.Clone()
	for j := 0; j < us.Cols(); j++ {
		for i := 0; i < us.Rows(); i++ {
			cur, err := us.At(i, j)
			require.NoError(t, err)
			require.NoError(t, us.Set(i, j, cur*sig[j]))
		}
	}
	vt, err := matrix.Transpose(v)
	require.NoError(t, err)
	rec, err := matrix.Times(us, vt)
	require.NoError(t, err)

	ok, err := matrix.Equal(rec, m, matrix.WithEpsilon(1e-9))
	require.NoError(t, err)
	require.True(t, ok)
}
