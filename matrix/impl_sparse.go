// SPDX-License-Identifier: MIT

// Package matrix - sparse (dictionary-of-keys) storage strategy.
//
// Purpose:
//   - General sparse representation keyed by (row, col); the promotion
//     target for diagonal storage and a standalone choice for matrices
//     with few non-zeros.
//   - Absent keys read as 0; writing an exact 0 deletes the key so
//     doNonZero stays honest.
//
// Iteration order over the map is unspecified; consumers needing a
// deterministic order materialize through the container's Do.

package matrix

// cell is an ordered (row, col) key. Using ints keeps the key compact
// and hash-friendly.
type cell struct {
	row, col int
}

// dokStorage stores only the explicitly non-zero cells of an r×c matrix.
type dokStorage struct {
	r, c int
	data map[cell]float64
}

var _ storage = (*dokStorage)(nil)

// newDOKStorage allocates an empty r×c sparse store. Complexity: O(1).
func newDOKStorage(r, c int) *dokStorage {
	return &dokStorage{r: r, c: c, data: make(map[cell]float64)}
}

func (s *dokStorage) rows() int         { return s.r }
func (s *dokStorage) cols() int         { return s.c }
func (s *dokStorage) kind() storageKind { return kindSparse }

// at reads a cell; absent keys are 0. Complexity: O(1) expected.
func (s *dokStorage) at(i, j int) float64 { return s.data[cell{i, j}] }

// set writes a cell; exact zeros are deleted rather than stored, so the
// map holds only non-zeros. The sparse strategy never migrates —
// storage only grows richer, never reverts. Complexity: O(1) expected.
func (s *dokStorage) set(i, j int, v float64) storage {
	k := cell{i, j}
	if v == 0 {
		delete(s.data, k)

		return s
	}
	s.data[k] = v

	return s
}

// clone returns an independent sparse copy. Complexity: O(nnz).
func (s *dokStorage) clone() storage {
	cp := make(map[cell]float64, len(s.data))
	for k, v := range s.data {
		cp[k] = v
	}

	return &dokStorage{r: s.r, c: s.c, data: cp}
}

// doNonZero visits stored cells in map order (unspecified).
// Complexity: O(nnz).
func (s *dokStorage) doNonZero(f func(i, j int, v float64) bool) {
	for k, v := range s.data {
		if !f(k.row, k.col, v) {
			return
		}
	}
}
