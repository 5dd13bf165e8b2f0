// SPDX-License-Identifier: MIT

// Package decomp: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.

package decomp

import (
	"math"

	"github.com/jamkit/jam/numcmp"
)

// DefaultEpsilon is the tolerance used for the symmetry test, the
// complex-eigenvalue rejection and the unit-eigenvalue match when no
// WithEpsilon option is supplied. Single source of truth with numcmp.
const DefaultEpsilon = numcmp.DefaultEpsilon

// consistencyTol bounds the residual of the A·v ≈ λ·v check. It is
// deliberately looser than DefaultEpsilon: the residual accumulates one
// rounding error per multiply-add and must not reject healthy
// factorizations.
const consistencyTol = 1e-6

const panicEpsilonInvalid = "decomp: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Fields are unexported; public entry points accept ...Option
// and resolve via gatherOptions.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the numeric tolerance eps used by the symmetry
// detection, the imaginary-part rejection and the eigenvalue matching
// of UnitEigenvector.
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins semantics.
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		set(&o)
	}

	return o
}
