// SPDX-License-Identifier: MIT

// Package matrix - wrap storage strategy (shallow view over caller rows).
//
// Purpose:
//   - Alias a caller-owned [][]float64 without copying: reads observe
//     the caller's current data and writes go through to the caller's
//     rows (bidirectional visibility, same policy as vector.Wrap).
//   - The caller keeps the lifetime of the backing arrays; a wrapped
//     matrix must not outlive them.
//
// clone() detaches into dense — an independent copy has no reason to
// stay coupled to someone else's rows.

package matrix

// wrapStorage aliases caller-owned row slices. Ragged input is rejected
// by the container factory before this type is constructed.
type wrapStorage struct {
	r, c int
	rws  [][]float64 // shared with the caller, never reallocated
}

var _ storage = (*wrapStorage)(nil)

func (s *wrapStorage) rows() int         { return s.r }
func (s *wrapStorage) cols() int         { return s.c }
func (s *wrapStorage) kind() storageKind { return kindWrap }

// at reads through to the caller's row. Complexity: O(1).
func (s *wrapStorage) at(i, j int) float64 { return s.rws[i][j] }

// set writes through to the caller's row; wrapped storage never changes
// representation. Complexity: O(1).
func (s *wrapStorage) set(i, j int, v float64) storage {
	s.rws[i][j] = v

	return s
}

// clone detaches into an independent dense copy. Complexity: O(r*c).
func (s *wrapStorage) clone() storage {
	d := newDenseStorage(s.r, s.c)
	for i := 0; i < s.r; i++ {
		copy(d.data[i*s.c:(i+1)*s.c], s.rws[i])
	}

	return d
}

// doNonZero visits non-zero cells in row-major order. Complexity: O(r*c).
func (s *wrapStorage) doNonZero(f func(i, j int, v float64) bool) {
	for i := 0; i < s.r; i++ {
		for j, v := range s.rws[i] {
			if v == 0 {
				continue
			}
			if !f(i, j, v) {
				return
			}
		}
	}
}
