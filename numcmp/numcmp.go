// SPDX-License-Identifier: MIT

// Package numcmp - scalar tolerance comparators.
//
// Purpose:
//   - One epsilon policy for the whole library (single source of truth).
//   - Never panic on data; panic only on nonsensical eps (programmer error).

package numcmp

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultEpsilon is the non-negative tolerance used by all non-*Within
// comparators. Matches the structural-check default used across jam.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "numcmp: eps must be finite, non-negative"

// validEps guards the *Within entry points. Invalid eps is a programmer
// error, not a data condition, so it panics with a stable message.
// Complexity: O(1).
func validEps(eps float64) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}
}

// EqWithin reports whether a and b are equal within eps.
//
// Behavior highlights:
//   - NaN operands are never equal, not even to themselves.
//   - ±Inf equals only the same infinity (the a == b fast path).
//   - Otherwise delegates to gonum's scalar.EqualWithinAbs.
//
// Complexity: O(1).
func EqWithin(a, b, eps float64) bool {
	validEps(eps)
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if a == b { // covers equal infinities and exact hits
		return true
	}

	return scalar.EqualWithinAbs(a, b, eps)
}

// Eq reports whether a and b are equal within DefaultEpsilon.
// Complexity: O(1).
func Eq(a, b float64) bool { return EqWithin(a, b, DefaultEpsilon) }

// IsZeroWithin reports whether a is indistinguishable from zero at eps.
// Complexity: O(1).
func IsZeroWithin(a, eps float64) bool { return EqWithin(a, 0, eps) }

// IsZero reports whether a is indistinguishable from zero at DefaultEpsilon.
// Complexity: O(1).
func IsZero(a float64) bool { return IsZeroWithin(a, DefaultEpsilon) }

// CompareWithin is a tolerance-based three-way ordering:
// -1 when a < b beyond eps, +1 when a > b beyond eps, 0 when equal within eps.
//
// Notes:
//   - NaN operands order as incomparable-greatest: NaN vs NaN is 0,
//     NaN vs anything else is +1 / -1 so sorts push NaN to the end.
//
// Complexity: O(1).
func CompareWithin(a, b, eps float64) int {
	validEps(eps)
	switch {
	case math.IsNaN(a) && math.IsNaN(b):
		return 0
	case math.IsNaN(a):
		return 1
	case math.IsNaN(b):
		return -1
	case EqWithin(a, b, eps):
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}

// Compare orders a and b within DefaultEpsilon.
// Complexity: O(1).
func Compare(a, b float64) int { return CompareWithin(a, b, DefaultEpsilon) }
