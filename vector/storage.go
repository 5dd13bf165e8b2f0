// SPDX-License-Identifier: MIT

// Package vector - storage strategies behind the mutable Vector.
//
// Purpose:
//   - Keep the copy-vs-wrap ownership distinction out of the container's
//     arithmetic: Vector dispatches through one small interface and the
//     strategy decides what the backing slice means.
//   - A dense vector never changes representation, but the design admits
//     storage-swapping mutation (the matrix side exercises it; see
//     matrix/impl_diagonal.go for the promotion case).
//
// Strategies:
//   - denseStorage — owns its buffer; created by the copying factories.
//   - wrapStorage  — aliases a caller-owned slice; writes through either
//     handle are visible through the other. clone() always detaches.

package vector

// storage is the single abstraction boundary all Vector operations
// dispatch through. Indices are validated by the container; strategies
// may assume 0 <= i < length().
type storage interface {
	// length returns the element count. O(1).
	length() int

	// at reads element i (pre-validated). O(1).
	at(i int) float64

	// set writes element i (pre-validated). O(1).
	set(i int, v float64)

	// clone returns an independent dense copy of the contents. O(n).
	clone() storage

	// slice exposes the backing buffer for hot loops and materialized
	// reads. Mutating the returned slice mutates the vector; callers
	// inside this package only.
	slice() []float64
}

// denseStorage owns its backing buffer outright.
type denseStorage struct {
	buf []float64
}

func (s *denseStorage) length() int          { return len(s.buf) }
func (s *denseStorage) at(i int) float64     { return s.buf[i] }
func (s *denseStorage) set(i int, v float64) { s.buf[i] = v }
func (s *denseStorage) slice() []float64     { return s.buf }

func (s *denseStorage) clone() storage {
	cp := make([]float64, len(s.buf))
	copy(cp, s.buf)

	return &denseStorage{buf: cp}
}

// wrapStorage aliases a caller-owned slice. The caller keeps the
// lifetime; mutations are bidirectionally visible. Cloning detaches
// into an owned dense buffer.
type wrapStorage struct {
	buf []float64 // shared with the caller, never reallocated
}

func (s *wrapStorage) length() int          { return len(s.buf) }
func (s *wrapStorage) at(i int) float64     { return s.buf[i] }
func (s *wrapStorage) set(i int, v float64) { s.buf[i] = v }
func (s *wrapStorage) slice() []float64     { return s.buf }

func (s *wrapStorage) clone() storage {
	cp := make([]float64, len(s.buf))
	copy(cp, s.buf)

	return &denseStorage{buf: cp}
}
