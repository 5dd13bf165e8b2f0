// SPDX-License-Identifier: MIT

// Package matrix - dense storage (row-major) strategy.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - newDenseStorage: O(r*c) zero-init; at/set: O(1); clone: O(r*c);
//     doNonZero: O(r*c).

package matrix

// denseStorage is a concrete row-major strategy.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order
//     (offset = i*c + j).
type denseStorage struct {
	r, c int
	data []float64
}

var _ storage = (*denseStorage)(nil)

// newDenseStorage allocates a zero-filled r×c buffer. Shape is
// validated by the container factories. Complexity: O(r*c).
func newDenseStorage(r, c int) *denseStorage {
	return &denseStorage{r: r, c: c, data: make([]float64, r*c)}
}

func (s *denseStorage) rows() int         { return s.r }
func (s *denseStorage) cols() int         { return s.c }
func (s *denseStorage) kind() storageKind { return kindDense }

// at loads via the row-major offset. Complexity: O(1).
func (s *denseStorage) at(i, j int) float64 { return s.data[i*s.c+j] }

// set writes via the row-major offset; a dense matrix never changes
// representation, so the receiver is always the successor.
// Complexity: O(1).
func (s *denseStorage) set(i, j int, v float64) storage {
	s.data[i*s.c+j] = v

	return s
}

// clone returns an independent deep copy. Complexity: O(r*c).
func (s *denseStorage) clone() storage {
	cp := make([]float64, len(s.data))
	copy(cp, s.data)

	return &denseStorage{r: s.r, c: s.c, data: cp}
}

// doNonZero visits non-zero cells in deterministic row-major order.
// Complexity: O(r*c).
func (s *denseStorage) doNonZero(f func(i, j int, v float64) bool) {
	var i, j, base int
	var v float64
	for i = 0; i < s.r; i++ {
		base = i * s.c
		for j = 0; j < s.c; j++ {
			v = s.data[base+j]
			if v == 0 {
				continue
			}
			if !f(i, j, v) {
				return
			}
		}
	}
}
