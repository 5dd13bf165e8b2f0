// SPDX-License-Identifier: MIT

package stat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jamkit/jam/stat"
	"github.com/jamkit/jam/vector"
)

func TestCompute_FiveNumberSummary(t *testing.T) {
	t.Parallel()

	v, _ := vector.Of(2, 4, 4, 4, 5, 5, 7, 9)
	s, err := stat.Compute(v)
	require.NoError(t, err)

	require.Equal(t, 8, s.Count)
	require.Equal(t, 2.0, s.Min)
	require.Equal(t, 9.0, s.Max)
	require.Equal(t, 5.0, s.Mean)
	require.Equal(t, 4.0, s.Median)
	require.Equal(t, 4.0, s.Q1)
	require.Equal(t, 5.0, s.Q3)
	// Sample standard deviation: sqrt(32/7).
	require.InDelta(t, math.Sqrt(32.0/7.0), s.StdDev, 1e-12)
	require.False(t, s.IsEmpty())
}

func TestCompute_FiltersNonFinite(t *testing.T) {
	t.Parallel()

	v, _ := vector.Of(0, 1, 2, math.NaN(), -4, math.Inf(1), 8)
	s, err := stat.Compute(v)
	require.NoError(t, err)

	require.Equal(t, 5, s.Count, "only finite values are accumulated")
	require.Equal(t, -4.0, s.Min)
	require.Equal(t, 8.0, s.Max, "max must track the largest finite value")
	require.Equal(t, 1.4, s.Mean)
}

func TestCompute_NoFiniteValuesIsEmpty(t *testing.T) {
	t.Parallel()

	v, _ := vector.Of(math.NaN(), math.Inf(1), math.Inf(-1))
	s, err := stat.Compute(v)
	require.NoError(t, err)

	require.True(t, s.IsEmpty())
	require.Equal(t, 0, s.Count)
	require.True(t, math.IsNaN(s.Min))
	require.True(t, math.IsNaN(s.Max))
	require.True(t, math.IsNaN(s.Mean))
	require.True(t, math.IsNaN(s.StdDev))
}

func TestCompute_SingleObservation(t *testing.T) {
	t.Parallel()

	v, _ := vector.Of(42.0)
	s, err := stat.Compute(v)
	require.NoError(t, err)

	require.Equal(t, 1, s.Count)
	require.Equal(t, 42.0, s.Min)
	require.Equal(t, 42.0, s.Max)
	require.Equal(t, 42.0, s.Mean)
	require.Equal(t, 42.0, s.Median)
	require.True(t, math.IsNaN(s.StdDev), "sample stddev needs count > 1")
}

func TestCompute_NilVector(t *testing.T) {
	t.Parallel()

	_, err := stat.Compute(nil)
	require.ErrorIs(t, err, stat.ErrNilVector)
}
