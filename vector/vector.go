// SPDX-License-Identifier: MIT

// Package vector - mutable Vector container & construction factories.
//
// Purpose:
//   - One mutable container owning exactly one storage strategy at a time.
//   - Safety at the public surface: At/Set return errors instead of panicking.
//   - Copy factories allocate independent buffers; Wrap aliases the caller's.
//   - In-place arithmetic (AddScalar, Scale, Daxpy, Normalize, Unitize)
//     mutates through the strategy; shape checks run before any mutation.
//
// Complexity quicksheet:
//   - New/Constant/CopyOf: O(n); Wrap: O(1); At/Set: O(1);
//     Daxpy/Normalize/Unitize: O(n); Parse: O(tokens).

package vector

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/jamkit/jam/numcmp"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxDaxpy     = "Daxpy"     // method tag used in error wrappers
	ctxNormalize = "Normalize" // method tag used in error wrappers
	ctxUnitize   = "Unitize"   // method tag used in error wrappers
)

// vecErrorf wraps a sentinel with a uniform Vector context and index.
// Keep tags in constants for grep-ability and consistency.
// Complexity: O(1).
func vecErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// Vector is a mutable numeric container. It owns exactly one storage
// strategy at a time; ownership is exclusive and the handle may be
// replaced wholesale by future storage-swapping mutations.
//
// Vector is intentionally non-comparable (a zero-size func-typed field
// disables ==): it cannot be used as a map key. This is the deliberate
// analog of forbidding hashing of a mutable numeric value.
type Vector struct {
	_ [0]func() // non-comparable marker
	s storage
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ View         = (*Vector)(nil)
	_ fmt.Stringer = (*Vector)(nil)
)

// ---------- Factories ----------

// New creates a zero-filled vector of length n.
//
// Implementation:
//   - Stage 1: validate n > 0; else ErrBadLength.
//   - Stage 2: allocate zero-filled dense storage.
//
// Complexity: O(n).
func New(n int) (*Vector, error) {
	if n <= 0 {
		return nil, fmt.Errorf("vector.New(%d): %w", n, ErrBadLength)
	}

	return &Vector{s: &denseStorage{buf: make([]float64, n)}}, nil
}

// Constant creates a vector of length n with every element set to v.
// Returns ErrBadLength when n <= 0.
// Complexity: O(n).
func Constant(v float64, n int) (*Vector, error) {
	vec, err := New(n)
	if err != nil {
		return nil, err
	}
	buf := vec.s.slice()
	for i := range buf {
		buf[i] = v
	}

	return vec, nil
}

// Of creates an independent vector from the listed values.
// Zero values are rejected with ErrBadLength (no empty vectors).
// Complexity: O(n).
func Of(values ...float64) (*Vector, error) { return CopyOf(values) }

// CopyOf creates a vector with an independent backing store copied from
// src. Later writes through either side are invisible to the other.
// Complexity: O(n).
func CopyOf(src []float64) (*Vector, error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("vector.CopyOf: %w", ErrBadLength)
	}
	cp := make([]float64, len(src))
	copy(cp, src)

	return &Vector{s: &denseStorage{buf: cp}}, nil
}

// CopyOfView materializes any View into an independent dense vector.
//
// Implementation:
//   - Stage 1: validate src is non-nil and non-empty.
//   - Stage 2: read every element through the View contract.
//
// Complexity: O(n) At calls.
func CopyOfView(src View) (*Vector, error) {
	if src == nil {
		return nil, fmt.Errorf("vector.CopyOfView: %w", ErrNilView)
	}
	n := src.Len()
	if n <= 0 {
		return nil, fmt.Errorf("vector.CopyOfView: %w", ErrBadLength)
	}
	buf := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := src.At(i)
		if err != nil {
			return nil, err
		}
		buf[i] = v
	}

	return &Vector{s: &denseStorage{buf: buf}}, nil
}

// Wrap creates a vector that aliases the caller-owned slice. Mutations
// through either handle are visible through the other; the caller keeps
// the lifetime of the backing array.
// Complexity: O(1).
func Wrap(src []float64) (*Vector, error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("vector.Wrap: %w", ErrBadLength)
	}

	return &Vector{s: &wrapStorage{buf: src}}, nil
}

// Generate captures a stream of values f(0), f(1), ..., f(n-1) into an
// owned dense vector. This is the stream-construction mode: the source
// is consumed once at build time and never referenced again.
// Returns ErrBadLength when n <= 0.
// Complexity: O(n) calls to f.
func Generate(n int, f func(i int) float64) (*Vector, error) {
	vec, err := New(n)
	if err != nil {
		return nil, fmt.Errorf("vector.Generate(%d): %w", n, ErrBadLength)
	}
	buf := vec.s.slice()
	for i := range buf {
		buf[i] = f(i)
	}

	return vec, nil
}

// Parse builds a vector from delimited numeric text, e.g.
// Parse("1.0, 2, 3e-1", ","). Tokens are trimmed of surrounding space.
//
// Implementation:
//   - Stage 1: split on sep; an input with no usable tokens is ErrParse.
//   - Stage 2: strconv.ParseFloat each token; any failure wraps ErrParse
//     with the offending token.
//
// Complexity: O(len(s)).
func Parse(s, sep string) (*Vector, error) {
	tokens := strings.Split(s, sep)
	buf := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		trimmed := strings.TrimSpace(tok)
		if trimmed == "" {
			return nil, fmt.Errorf("vector.Parse: empty token %q: %w", tok, ErrParse)
		}
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("vector.Parse: token %q: %w", trimmed, ErrParse)
		}
		buf = append(buf, v)
	}
	if len(buf) == 0 {
		return nil, fmt.Errorf("vector.Parse: no tokens: %w", ErrParse)
	}

	return &Vector{s: &denseStorage{buf: buf}}, nil
}

// ---------- View contract ----------

// Len returns the element count. Complexity: O(1).
func (v *Vector) Len() int { return v.s.length() }

// At returns the element at index i or ErrOutOfRange.
// Never panics on out-of-range; returns the sentinel wrapped with context.
// Complexity: O(1).
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= v.s.length() {
		return 0, vecErrorf(ctxAt, i, ErrOutOfRange)
	}

	return v.s.at(i), nil
}

// ---------- Mutation ----------

// Set stores val at index i or returns ErrOutOfRange.
// Complexity: O(1).
func (v *Vector) Set(i int, val float64) error {
	if i < 0 || i >= v.s.length() {
		return vecErrorf(ctxSet, i, ErrOutOfRange)
	}
	v.s.set(i, val)

	return nil
}

// AddScalar adds s to every element in place.
// Complexity: O(n).
func (v *Vector) AddScalar(s float64) {
	floats.AddConst(s, v.s.slice())
}

// Scale multiplies every element by alpha in place.
// Complexity: O(n).
func (v *Vector) Scale(alpha float64) {
	floats.Scale(alpha, v.s.slice())
}

// Daxpy performs this[i] += alpha*that[i] for all i, in place.
//
// Implementation:
//   - Stage 1: validate operand length; no partial mutation on mismatch.
//   - Stage 2: fast path when that exposes a backing slice; otherwise
//     read through the View contract.
//
// Errors:
//   - ErrDimensionMismatch when that.Len() != Len().
//   - ErrNilView when that is nil.
//
// Complexity: O(n).
func (v *Vector) Daxpy(alpha float64, that View) error {
	if that == nil {
		return fmt.Errorf("Vector.%s: %w", ctxDaxpy, ErrNilView)
	}
	n := v.s.length()
	if that.Len() != n {
		return fmt.Errorf("Vector.%s: len %d vs %d: %w", ctxDaxpy, n, that.Len(), ErrDimensionMismatch)
	}

	dst := v.s.slice()
	if tv, ok := that.(*Vector); ok { // fast path: operate on flat buffers
		floats.AddScaled(dst, alpha, tv.s.slice())

		return nil
	}
	for i := 0; i < n; i++ { // slow path through the View contract
		x, err := that.At(i)
		if err != nil {
			return err
		}
		dst[i] += alpha * x
	}

	return nil
}

// Normalize rescales the vector in place to unit element sum.
//
// Errors:
//   - ErrZeroSum when |sum| is within eps of zero (division guard).
//
// Complexity: O(n).
func (v *Vector) Normalize(opts ...Option) error {
	o := gatherOptions(opts...)
	buf := v.s.slice()
	sum := floats.Sum(buf)
	if numcmp.IsZeroWithin(sum, o.eps) {
		return fmt.Errorf("Vector.%s: sum=%g: %w", ctxNormalize, sum, ErrZeroSum)
	}
	floats.Scale(1/sum, buf)

	return nil
}

// Unitize rescales the vector in place to unit 2-norm.
//
// Errors:
//   - ErrZeroNorm when the 2-norm is within eps of zero.
//
// Complexity: O(n).
func (v *Vector) Unitize(opts ...Option) error {
	o := gatherOptions(opts...)
	buf := v.s.slice()
	norm := floats.Norm(buf, 2)
	if numcmp.IsZeroWithin(norm, o.eps) {
		return fmt.Errorf("Vector.%s: norm=%g: %w", ctxUnitize, norm, ErrZeroNorm)
	}
	floats.Scale(1/norm, buf)

	return nil
}

// ---------- Derived, allocation-producing ----------

// Clone returns an independent deep copy (always dense, regardless of
// the receiver's strategy). Complexity: O(n).
func (v *Vector) Clone() *Vector {
	return &Vector{s: v.s.clone()}
}

// ToSlice materializes the contents into a fresh []float64.
// Complexity: O(n).
func (v *Vector) ToSlice() []float64 {
	src := v.s.slice()
	cp := make([]float64, len(src))
	copy(cp, src)

	return cp
}

// Do visits each element in index order and calls f(i, val); stops
// early when f returns false. Read-only with respect to the callback.
// Complexity: O(n), Space O(1).
func (v *Vector) Do(f func(i int, val float64) bool) {
	buf := v.s.slice()
	for i, val := range buf {
		if !f(i, val) {
			return
		}
	}
}

// DoNonZero visits only elements that are exactly non-zero, in index
// order. Useful for sparse-style consumers.
// Complexity: O(n), Space O(1).
func (v *Vector) DoNonZero(f func(e Element) bool) {
	buf := v.s.slice()
	for i, val := range buf {
		if val == 0 {
			continue
		}
		if !f(Element{Index: i, Value: val}) {
			return
		}
	}
}

// String renders the vector as "[v0, v1, ...]" for diagnostics.
// Not for hot paths. Complexity: O(n).
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString("[")
	buf := v.s.slice()
	for i, val := range buf {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(val, 'g', -1, 64))
	}
	b.WriteString("]")

	return b.String()
}
