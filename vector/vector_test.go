// SPDX-License-Identifier: MIT

package vector_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jamkit/jam/vector"
)

func TestNew_ZeroFilled(t *testing.T) {
	t.Parallel()

	v, err := vector.New(4)
	require.NoError(t, err)
	require.Equal(t, 4, v.Len())
	for i := 0; i < 4; i++ {
		x, err := v.At(i)
		require.NoError(t, err)
		require.Equal(t, 0.0, x)
	}
}

func TestNew_BadLength(t *testing.T) {
	t.Parallel()

	_, err := vector.New(0)
	require.ErrorIs(t, err, vector.ErrBadLength)
	_, err = vector.New(-3)
	require.ErrorIs(t, err, vector.ErrBadLength)
}

func TestAt_OutOfRange(t *testing.T) {
	t.Parallel()

	v, _ := vector.New(2)
	_, err := v.At(-1)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = v.At(2)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	require.ErrorIs(t, v.Set(5, 1.0), vector.ErrOutOfRange)
}

func TestConstant(t *testing.T) {
	t.Parallel()

	v, err := vector.Constant(2.5, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{2.5, 2.5, 2.5}, v.ToSlice())
}

func TestCopyOf_Independent(t *testing.T) {
	t.Parallel()

	src := []float64{1, 2, 3}
	v, err := vector.CopyOf(src)
	require.NoError(t, err)

	// Writes through the vector never affect the source array.
	require.NoError(t, v.Set(0, 99))
	require.Equal(t, 1.0, src[0])

	// And writes to the source never show through the vector.
	src[1] = -7
	x, _ := v.At(1)
	require.Equal(t, 2.0, x)
}

func TestWrap_Aliasing(t *testing.T) {
	t.Parallel()

	src := []float64{1, 2, 3}
	v, err := vector.Wrap(src)
	require.NoError(t, err)

	// Mutations are bidirectionally visible.
	require.NoError(t, v.Set(0, 99))
	require.Equal(t, 99.0, src[0])

	src[2] = -5
	x, _ := v.At(2)
	require.Equal(t, -5.0, x)

	// Clone always detaches from the caller's array.
	cl := v.Clone()
	require.NoError(t, cl.Set(1, 1000))
	require.Equal(t, 2.0, src[1])
}

func TestCopyOfView(t *testing.T) {
	t.Parallel()

	src, _ := vector.Of(1, 2, 3)
	dst, err := vector.CopyOfView(src)
	require.NoError(t, err)
	require.NoError(t, dst.Set(0, -1))

	x, _ := src.At(0)
	require.Equal(t, 1.0, x, "copy-of-view must be independent")

	_, err = vector.CopyOfView(nil)
	require.ErrorIs(t, err, vector.ErrNilView)
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	v, err := vector.Generate(4, func(i int) float64 { return float64(i * i) })
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 4, 9}, v.ToSlice())

	_, err = vector.Generate(0, func(int) float64 { return 0 })
	require.ErrorIs(t, err, vector.ErrBadLength)
}

func TestParse(t *testing.T) {
	t.Parallel()

	v, err := vector.Parse("1.0, 2, 3e-1", ",")
	require.NoError(t, err)
	require.Equal(t, []float64{1.0, 2.0, 0.3}, v.ToSlice())
}

func TestParse_MalformedToken(t *testing.T) {
	t.Parallel()

	_, err := vector.Parse("1.0, two, 3", ",")
	require.ErrorIs(t, err, vector.ErrParse)

	_, err = vector.Parse("", ",")
	require.ErrorIs(t, err, vector.ErrParse)

	_, err = vector.Parse("1.0,,3", ",")
	require.ErrorIs(t, err, vector.ErrParse)
}

func TestDaxpy(t *testing.T) {
	t.Parallel()

	v, _ := vector.Of(1, 2, 3)
	that, _ := vector.Of(10, 20, 30)

	require.NoError(t, v.Daxpy(2, that))
	require.Equal(t, []float64{21, 42, 63}, v.ToSlice())
}

func TestDaxpy_InverseRestores(t *testing.T) {
	t.Parallel()

	v, _ := vector.Of(0.1, 0.2, 0.3)
	orig := v.Clone()
	that, _ := vector.Of(7.5, -2.25, 11.0)

	require.NoError(t, v.Daxpy(3.5, that))
	require.NoError(t, v.Daxpy(-3.5, that))

	eq, err := vector.Equal(v, orig)
	require.NoError(t, err)
	require.True(t, eq, "daxpy then inverse daxpy must restore within tolerance")
}

func TestDaxpy_DimensionMismatch(t *testing.T) {
	t.Parallel()

	v, _ := vector.Of(1, 2, 3)
	that, _ := vector.Of(1, 2)
	require.ErrorIs(t, v.Daxpy(1, that), vector.ErrDimensionMismatch)

	// The receiver must be untouched after a failed daxpy.
	require.Equal(t, []float64{1, 2, 3}, v.ToSlice())

	require.ErrorIs(t, v.Daxpy(1, nil), vector.ErrNilView)
}

func TestAddScalarAndScale(t *testing.T) {
	t.Parallel()

	v, _ := vector.Of(1, 2, 3)
	v.AddScalar(1)
	require.Equal(t, []float64{2, 3, 4}, v.ToSlice())
	v.Scale(0.5)
	require.Equal(t, []float64{1, 1.5, 2}, v.ToSlice())
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	v, _ := vector.Of(1, 3)
	require.NoError(t, v.Normalize())
	require.Equal(t, []float64{0.25, 0.75}, v.ToSlice())
}

func TestNormalize_ZeroSum(t *testing.T) {
	t.Parallel()

	v, _ := vector.Of(1, -1)
	require.ErrorIs(t, v.Normalize(), vector.ErrZeroSum)

	tiny, _ := vector.Of(1e-12, -1e-12)
	require.ErrorIs(t, tiny.Normalize(), vector.ErrZeroSum)
}

func TestUnitize(t *testing.T) {
	t.Parallel()

	v, _ := vector.Of(3, 4)
	require.NoError(t, v.Unitize())
	require.InDelta(t, 0.6, mustAt(t, v, 0), 1e-12)
	require.InDelta(t, 0.8, mustAt(t, v, 1), 1e-12)
}

func TestUnitize_ZeroNorm(t *testing.T) {
	t.Parallel()

	v, _ := vector.New(3)
	require.ErrorIs(t, v.Unitize(), vector.ErrZeroNorm)
}

func TestDoAndDoNonZero(t *testing.T) {
	t.Parallel()

	v, _ := vector.Of(0, 5, 0, 7)

	var visited []float64
	v.Do(func(i int, val float64) bool {
		visited = append(visited, val)
		return true
	})
	require.Equal(t, []float64{0, 5, 0, 7}, visited)

	var nz []vector.Element
	v.DoNonZero(func(e vector.Element) bool {
		nz = append(nz, e)
		return true
	})
	require.Equal(t, []vector.Element{{Index: 1, Value: 5}, {Index: 3, Value: 7}}, nz)

	// Early stop.
	count := 0
	v.Do(func(int, float64) bool {
		count++
		return false
	})
	require.Equal(t, 1, count)
}

func TestString(t *testing.T) {
	t.Parallel()

	v, _ := vector.Of(1, 2.5, -3)
	require.Equal(t, "[1, 2.5, -3]", v.String())
}

// Vector must never be usable as a hash key: the type is intentionally
// non-comparable, which Go enforces at compile time for map keys. We
// assert the property itself via reflection.
func TestVector_NotComparable(t *testing.T) {
	t.Parallel()

	require.False(t, reflect.TypeOf(vector.Vector{}).Comparable(),
		"mutable numeric containers must not be hashable")
}

func TestSet_AcceptsNonFinite(t *testing.T) {
	t.Parallel()

	// The vector layer stores what it is given; finite-value filtering
	// is the stat package's policy, not a storage concern.
	v, _ := vector.New(2)
	require.NoError(t, v.Set(0, math.NaN()))
	require.NoError(t, v.Set(1, math.Inf(1)))
	x, _ := v.At(0)
	require.True(t, math.IsNaN(x))
}

func mustAt(t *testing.T, v vector.View, i int) float64 {
	t.Helper()
	x, err := v.At(i)
	require.NoError(t, err)

	return x
}
