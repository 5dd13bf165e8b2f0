// SPDX-License-Identifier: MIT

// Package decomp: bridge between matrix.View and the gonum/mat backend.
// Conversions always copy; decomposition results never alias the source
// matrix, so later mutation of the source cannot corrupt them.

package decomp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/jamkit/jam/matrix"
)

// toDense copies src into a freshly allocated gonum dense matrix.
// Complexity: O(r*c) At calls.
func toDense(src matrix.View) (*mat.Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("decomp: %w", ErrNilView)
	}
	r, c := src.Rows(), src.Cols()
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := src.At(i, j)
			if err != nil {
				return nil, err
			}
			data[i*c+j] = v
		}
	}

	return mat.NewDense(r, c, data), nil
}

// fromDense copies a gonum dense matrix back into a jam matrix.
// Complexity: O(r*c).
func fromDense(d *mat.Dense) *matrix.Matrix {
	r, c := d.Dims()
	rws := make([][]float64, r)
	for i := 0; i < r; i++ {
		rws[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			rws[i][j] = d.At(i, j)
		}
	}
	m, err := matrix.CopyOf(rws)
	if err != nil {
		// Unreachable: d carries positive rectangular dimensions.
		panic(err)
	}

	return m
}
