// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jamkit/jam/matrix"
	"github.com/jamkit/jam/vector"
)

func TestRowView(t *testing.T) {
	t.Parallel()

	m, _ := matrix.CopyOf([][]float64{{1, 2, 3}, {4, 5, 6}})
	row, err := matrix.RowView(m, 1)
	require.NoError(t, err)
	require.Equal(t, 3, row.Len())

	got, err := vector.Materialize(row)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, got)
}

func TestColView(t *testing.T) {
	t.Parallel()

	m, _ := matrix.CopyOf([][]float64{{1, 2, 3}, {4, 5, 6}})
	col, err := matrix.ColView(m, 2)
	require.NoError(t, err)
	require.Equal(t, 2, col.Len())

	got, err := vector.Materialize(col)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, got)
}

func TestDiagView(t *testing.T) {
	t.Parallel()

	m, _ := matrix.CopyOf([][]float64{{1, 2}, {3, 4}})
	diag, err := matrix.DiagView(m)
	require.NoError(t, err)

	got, err := vector.Materialize(diag)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 4}, got)
}

// Views validate eagerly: an invalid index fails at creation, not at
// first use.
func TestViews_EagerValidation(t *testing.T) {
	t.Parallel()

	m, _ := matrix.New(2, 3)

	_, err := matrix.RowView(m, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.RowView(m, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.ColView(m, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.DiagView(m)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.RowView(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilView)
}

// Projections are zero-copy back-references: writes to the matrix are
// visible through live views.
func TestViews_ObserveMatrixMutation(t *testing.T) {
	t.Parallel()

	m, _ := matrix.CopyOf([][]float64{{1, 2}, {3, 4}})
	row, _ := matrix.RowView(m, 0)
	col, _ := matrix.ColView(m, 0)
	diag, _ := matrix.DiagView(m)

	require.NoError(t, m.Set(0, 0, 99))

	v, err := row.At(0)
	require.NoError(t, err)
	require.Equal(t, 99.0, v)
	v, _ = col.At(0)
	require.Equal(t, 99.0, v)
	v, _ = diag.At(0)
	require.Equal(t, 99.0, v)
}

// A projection's own bounds honor the vector.View contract.
func TestViews_AtBounds(t *testing.T) {
	t.Parallel()

	m, _ := matrix.New(2, 3)
	row, _ := matrix.RowView(m, 0)
	_, err := row.At(3)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = row.At(-1)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
}

// Projections feed every View consumer, e.g. vector arithmetic.
func TestViews_ComposeWithVectorOps(t *testing.T) {
	t.Parallel()

	m, _ := matrix.CopyOf([][]float64{{1, 2}, {3, 4}})
	r0, _ := matrix.RowView(m, 0)
	r1, _ := matrix.RowView(m, 1)

	sum, err := vector.Plus(r0, r1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 6}, sum.ToSlice())

	dot, err := vector.Dot(r0, r1)
	require.NoError(t, err)
	require.Equal(t, 11.0, dot)
}
