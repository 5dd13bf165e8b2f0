// SPDX-License-Identifier: MIT

// Package stat - quantile computation over vector.View.
//
// Purpose:
//   - Delegate the percentile arithmetic to gonum's empirical quantile
//     engine; this package owns only validation and the finite filter.
//   - Quantiles is an immutable snapshot: probabilities and values are
//     fixed at construction and copied out on access.

package stat

import (
	"fmt"
	"math"
	"sort"

	gstat "gonum.org/v1/gonum/stat"

	"github.com/jamkit/jam/vector"
)

// ValidateQuantile checks that p lies in the valid range (0, 1].
// Zero and negative probabilities fail; 1.0 (the maximum) is permitted.
// Errors: ErrBadQuantile.
// Complexity: O(1).
func ValidateQuantile(p float64) error {
	if math.IsNaN(p) || p <= 0 || p > 1 {
		return fmt.Errorf("stat.ValidateQuantile(%g): %w", p, ErrBadQuantile)
	}

	return nil
}

// Quantiles is an immutable (probability, value) snapshot derived once
// from a data vector and never mutated afterwards.
type Quantiles struct {
	probs  []float64
	values []float64
}

// NewQuantiles computes the requested quantiles of v's finite values.
//
// Implementation:
//   - Stage 1: validate every probability (fail before any work).
//   - Stage 2: filter non-finite values and sort ascending (the
//     backend requires sorted input).
//   - Stage 3: evaluate each probability through gonum's empirical
//     quantile; zero finite values yield NaN for every probability.
//
// Errors: ErrBadQuantile, ErrNilVector.
// Complexity: O(n log n + k).
func NewQuantiles(v vector.View, probs []float64) (*Quantiles, error) {
	for _, p := range probs {
		if err := ValidateQuantile(p); err != nil {
			return nil, err
		}
	}
	xs, err := finiteValues(v)
	if err != nil {
		return nil, fmt.Errorf("stat.NewQuantiles: %w", err)
	}
	sort.Float64s(xs)

	ps := make([]float64, len(probs))
	copy(ps, probs)
	vals := make([]float64, len(probs))
	for i, p := range ps {
		if len(xs) == 0 {
			vals[i] = math.NaN()

			continue
		}
		vals[i] = gstat.Quantile(p, gstat.Empirical, xs, nil)
	}

	return &Quantiles{probs: ps, values: vals}, nil
}

// Probs returns a copy of the probabilities, in construction order.
// Complexity: O(k).
func (q *Quantiles) Probs() []float64 {
	cp := make([]float64, len(q.probs))
	copy(cp, q.probs)

	return cp
}

// Values returns a copy of the quantile values, aligned with Probs.
// Complexity: O(k).
func (q *Quantiles) Values() []float64 {
	cp := make([]float64, len(q.values))
	copy(cp, q.values)

	return cp
}

// Len returns the number of (probability, value) pairs. Complexity: O(1).
func (q *Quantiles) Len() int { return len(q.probs) }
