// SPDX-License-Identifier: MIT

// Package vector: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package vector

import (
	"math"

	"github.com/jamkit/jam/numcmp"
)

// DefaultEpsilon is the tolerance used by Equal, Normalize and Unitize
// when no WithEpsilon option is supplied. Single source of truth with
// numcmp.
const DefaultEpsilon = numcmp.DefaultEpsilon

const panicEpsilonInvalid = "vector: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Fields are unexported to prevent external mutation; public
// entry points accept ...Option and resolve via gatherOptions.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the numeric tolerance eps used by equality and the
// zero guards of Normalize/Unitize.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins semantics; stable for a given sequence of setters.
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		set(&o)
	}

	return o
}
