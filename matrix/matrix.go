// SPDX-License-Identifier: MIT

// Package matrix - mutable Matrix container & construction factories.
//
// Purpose:
//   - One mutable container owning exactly one storage strategy at a
//     time; Set dispatches through the strategy and replaces the held
//     handle when the strategy returns a successor (promotion).
//   - Safety at the public surface: At/Set return errors instead of
//     panicking; factories validate shape before allocation.
//
// Complexity quicksheet:
//   - New/Constant/CopyOf: O(r*c); Diagonal: O(n); Wrap: O(r) ragged
//     check; At/Set: O(1) (+O(n) on the single promotion); Clone: O(size).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// matErrorf wraps a sentinel with a uniform Matrix context and callsite
// indices. Keep tags in constants for grep-ability and consistency.
// Complexity: O(1).
func matErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, i, j, err)
}

// Matrix is a mutable two-dimensional numeric container. It owns
// exactly one storage strategy at a time; ownership is exclusive and
// the handle is replaced wholesale when a mutation requires a richer
// representation (diagonal → sparse promotion).
//
// Matrix is intentionally non-comparable (a zero-size func-typed field
// disables ==): it cannot be used as a map key. This is the deliberate
// analog of forbidding hashing of a mutable numeric value.
type Matrix struct {
	_ [0]func() // non-comparable marker
	s storage
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ View         = (*Matrix)(nil)
	_ fmt.Stringer = (*Matrix)(nil)
)

// ---------- Factories ----------

// New creates an r×c zero matrix over dense row-major storage.
// Returns ErrBadShape when r <= 0 or c <= 0.
// Complexity: O(r*c).
func New(r, c int) (*Matrix, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("matrix.New(%d,%d): %w", r, c, ErrBadShape)
	}

	return &Matrix{s: newDenseStorage(r, c)}, nil
}

// Identity creates the n×n identity over diagonal storage — the
// cheapest representation that can hold it. Writing any off-diagonal
// non-zero later promotes transparently.
// Complexity: O(n).
func Identity(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("matrix.Identity(%d): %w", n, ErrBadShape)
	}
	diag := make([]float64, n)
	for i := range diag {
		diag[i] = 1
	}

	return &Matrix{s: &diagStorage{n: n, diag: diag}}, nil
}

// Constant creates an r×c matrix with every cell set to v.
// Complexity: O(r*c).
func Constant(v float64, r, c int) (*Matrix, error) {
	m, err := New(r, c)
	if err != nil {
		return nil, err
	}
	d := m.s.(*denseStorage)
	for i := range d.data {
		d.data[i] = v
	}

	return m, nil
}

// Diagonal creates an n×n matrix over diagonal storage, copying the
// supplied diagonal. Returns ErrBadShape on an empty diagonal.
// Complexity: O(n).
func Diagonal(diag []float64) (*Matrix, error) {
	if len(diag) == 0 {
		return nil, fmt.Errorf("matrix.Diagonal: %w", ErrBadShape)
	}

	return &Matrix{s: newDiagStorage(diag)}, nil
}

// Sparse creates an r×c matrix over an empty dictionary-of-keys store.
// Intended for matrices with few non-zeros; semantics are identical to
// dense through At/Set.
// Complexity: O(1).
func Sparse(r, c int) (*Matrix, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("matrix.Sparse(%d,%d): %w", r, c, ErrBadShape)
	}

	return &Matrix{s: newDOKStorage(r, c)}, nil
}

// checkRect validates a [][]float64: non-empty, rectangular, rows of
// positive length. Returns (rows, cols) on success.
func checkRect(rws [][]float64, ctx string) (int, int, error) {
	if len(rws) == 0 || len(rws[0]) == 0 {
		return 0, 0, fmt.Errorf("matrix.%s: %w", ctx, ErrBadShape)
	}
	c := len(rws[0])
	for i, row := range rws {
		if len(row) != c {
			return 0, 0, fmt.Errorf("matrix.%s: row %d has %d cols, want %d: %w",
				ctx, i, len(row), c, ErrRagged)
		}
	}

	return len(rws), c, nil
}

// CopyOf creates a matrix with an independent dense backing store
// copied from the caller's rows. Later writes through either side are
// invisible to the other.
// Errors: ErrBadShape on empty input, ErrRagged on unequal row lengths.
// Complexity: O(r*c).
func CopyOf(rws [][]float64) (*Matrix, error) {
	r, c, err := checkRect(rws, "CopyOf")
	if err != nil {
		return nil, err
	}
	d := newDenseStorage(r, c)
	for i, row := range rws {
		copy(d.data[i*c:(i+1)*c], row)
	}

	return &Matrix{s: d}, nil
}

// CopyOfView materializes any View into an independent dense matrix.
// Complexity: O(r*c) At calls.
func CopyOfView(src View) (*Matrix, error) {
	if src == nil {
		return nil, fmt.Errorf("matrix.CopyOfView: %w", ErrNilView)
	}
	r, c := src.Rows(), src.Cols()
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("matrix.CopyOfView: %w", ErrBadShape)
	}
	d := newDenseStorage(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := src.At(i, j)
			if err != nil {
				return nil, err
			}
			d.data[i*c+j] = v
		}
	}

	return &Matrix{s: d}, nil
}

// Wrap creates a matrix that aliases the caller-owned rows. Reads
// observe the caller's current data; writes go through to the caller's
// rows. The caller keeps the lifetime of the backing arrays.
// Errors: ErrBadShape on empty input, ErrRagged on unequal row lengths.
// Complexity: O(r) for the ragged check.
func Wrap(rws [][]float64) (*Matrix, error) {
	r, c, err := checkRect(rws, "Wrap")
	if err != nil {
		return nil, err
	}

	return &Matrix{s: &wrapStorage{r: r, c: c, rws: rws}}, nil
}

// ---------- View contract ----------

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.s.rows() }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.s.cols() }

// At returns the value at (i, j) or ErrOutOfRange. Never panics.
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.s.rows() || j < 0 || j >= m.s.cols() {
		return 0, matErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.s.at(i, j), nil
}

// ---------- Mutation ----------

// Set stores v at (i, j) or returns ErrOutOfRange.
//
// Implementation:
//   - Stage 1: bounds check; fail before any mutation.
//   - Stage 2: dispatch to the storage strategy and adopt whatever
//     strategy it hands back — this is where a diagonal promotes.
//
// Complexity: O(1), plus O(n) once on the promotion write.
func (m *Matrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.s.rows() || j < 0 || j >= m.s.cols() {
		return matErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.s = m.s.set(i, j, v)

	return nil
}

// ---------- Derived ----------

// Clone returns an independent deep copy preserving the current
// representation (diagonal stays diagonal, sparse stays sparse; wrap
// detaches into dense). Complexity: O(size).
func (m *Matrix) Clone() *Matrix {
	return &Matrix{s: m.s.clone()}
}

// ToRows materializes the contents into a fresh [][]float64.
// Complexity: O(r*c).
func (m *Matrix) ToRows() [][]float64 {
	r, c := m.s.rows(), m.s.cols()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			out[i][j] = m.s.at(i, j)
		}
	}

	return out
}

// Do visits every cell in deterministic row-major order and calls
// f(i, j, v); stops early when f returns false. Read-only with respect
// to the callback. Complexity: O(r*c), Space O(1).
func (m *Matrix) Do(f func(i, j int, v float64) bool) {
	r, c := m.s.rows(), m.s.cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if !f(i, j, m.s.at(i, j)) {
				return
			}
		}
	}
}

// DoNonZero visits only stored non-zero cells. Order is row-major for
// dense/diagonal/wrap storage and unspecified for sparse storage.
// Complexity: O(size) worst case, O(nnz) for sparse.
func (m *Matrix) DoNonZero(f func(e Element) bool) {
	m.s.doNonZero(func(i, j int, v float64) bool {
		return f(Element{Row: i, Col: j, Value: v})
	})
}

// String renders rows as "[a, b]\n[c, d]\n" for diagnostics.
// Not for hot paths. Complexity: O(r*c).
func (m *Matrix) String() string {
	var b strings.Builder
	r, c := m.s.rows(), m.s.cols()
	for i := 0; i < r; i++ {
		b.WriteString("[")
		for j := 0; j < c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatFloat(m.s.at(i, j), 'g', -1, 64))
		}
		b.WriteString("]\n")
	}

	return b.String()
}
