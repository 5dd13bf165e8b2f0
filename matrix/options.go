// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// Mirrors the vector package: Option/Options, documented defaults,
// WithX constructors that panic only on nonsensical values, and a
// gatherOptions resolver with last-writer-wins semantics.

package matrix

import (
	"math"

	"github.com/jamkit/jam/numcmp"
)

// DefaultEpsilon is the tolerance used by Equal and IsSymmetric when no
// WithEpsilon option is supplied. Single source of truth with numcmp.
const DefaultEpsilon = numcmp.DefaultEpsilon

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the numeric tolerance used by structural checks
// (equality, symmetry). Panics on non-finite or negative eps —
// programmer error, not a data condition.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies setters on top of defaults; last-writer-wins.
// Complexity: O(k).
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		set(&o)
	}

	return o
}
