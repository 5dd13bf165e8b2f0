// SPDX-License-Identifier: MIT
// Package stat: sentinel error set. Callers match via errors.Is.

package stat

import "errors"

var (
	// ErrBadQuantile indicates a probability outside the valid range
	// (0, 1] — zero, negatives, values above one, and NaN all fail.
	ErrBadQuantile = errors.New("stat: quantile probability outside (0, 1]")

	// ErrNilVector indicates that a nil vector.View was supplied.
	ErrNilVector = errors.New("stat: nil vector")
)
