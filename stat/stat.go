// SPDX-License-Identifier: MIT

// Package stat - the Stat capability and its concrete calculators.
//
// Purpose:
//   - All statistics are polymorphic over one interface; each concrete
//     calculator is a stateless value, exported as a package singleton.
//   - Stream statistics filter out non-finite values (NaN, ±Inf) before
//     aggregating; Median alone keeps infinities and excludes only NaN.
//     The filtering policy is part of the contract, preserved exactly.

package stat

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/jamkit/jam/vector"
)

// Stat is the shared capability of every concrete statistic.
type Stat interface {
	// Name identifies the statistic for diagnostics ("max", "mean", ...).
	Name() string

	// Compute evaluates the statistic over v without mutating it.
	Compute(v vector.View) (float64, error)
}

// Package singletons — the concrete calculators. Each is stateless; a
// single shared value serves every caller.
var (
	Max    Stat = maxStat{}
	Min    Stat = minStat{}
	Mean   Stat = meanStat{}
	Sum    Stat = sumStat{}
	Norm1  Stat = norm1Stat{}
	Norm2  Stat = norm2Stat{}
	Median Stat = medianStat{}
)

// finiteValues materializes v and drops NaN and ±Inf. The silent filter
// shared by every stream statistic.
// Complexity: O(n).
func finiteValues(v vector.View) ([]float64, error) {
	if v == nil {
		return nil, ErrNilVector
	}
	raw, err := vector.Materialize(v)
	if err != nil {
		return nil, err
	}
	out := raw[:0] // reuse the materialized copy in place
	for _, x := range raw {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		out = append(out, x)
	}

	return out, nil
}

type maxStat struct{}

func (maxStat) Name() string { return "max" }

// Compute returns the largest finite value; NaN when none exist.
// Complexity: O(n).
func (maxStat) Compute(v vector.View) (float64, error) {
	xs, err := finiteValues(v)
	if err != nil {
		return 0, fmt.Errorf("stat.Max: %w", err)
	}
	if len(xs) == 0 {
		return math.NaN(), nil
	}

	return floats.Max(xs), nil
}

type minStat struct{}

func (minStat) Name() string { return "min" }

// Compute returns the smallest finite value; NaN when none exist.
// Complexity: O(n).
func (minStat) Compute(v vector.View) (float64, error) {
	xs, err := finiteValues(v)
	if err != nil {
		return 0, fmt.Errorf("stat.Min: %w", err)
	}
	if len(xs) == 0 {
		return math.NaN(), nil
	}

	return floats.Min(xs), nil
}

type sumStat struct{}

func (sumStat) Name() string { return "sum" }

// Compute returns the sum of finite values; 0 when none exist.
// Complexity: O(n).
func (sumStat) Compute(v vector.View) (float64, error) {
	xs, err := finiteValues(v)
	if err != nil {
		return 0, fmt.Errorf("stat.Sum: %w", err)
	}

	return floats.Sum(xs), nil
}

type meanStat struct{}

func (meanStat) Name() string { return "mean" }

// Compute returns the arithmetic mean of finite values; NaN when none
// exist. Complexity: O(n).
func (meanStat) Compute(v vector.View) (float64, error) {
	xs, err := finiteValues(v)
	if err != nil {
		return 0, fmt.Errorf("stat.Mean: %w", err)
	}
	if len(xs) == 0 {
		return math.NaN(), nil
	}

	return floats.Sum(xs) / float64(len(xs)), nil
}

type norm1Stat struct{}

func (norm1Stat) Name() string { return "norm1" }

// Compute returns the 1-norm over finite values; 0 when none exist.
// Complexity: O(n).
func (norm1Stat) Compute(v vector.View) (float64, error) {
	xs, err := finiteValues(v)
	if err != nil {
		return 0, fmt.Errorf("stat.Norm1: %w", err)
	}

	return floats.Norm(xs, 1), nil
}

type norm2Stat struct{}

func (norm2Stat) Name() string { return "norm2" }

// Compute returns the 2-norm over finite values; 0 when none exist.
// Complexity: O(n).
func (norm2Stat) Compute(v vector.View) (float64, error) {
	xs, err := finiteValues(v)
	if err != nil {
		return 0, fmt.Errorf("stat.Norm2: %w", err)
	}

	return floats.Norm(xs, 2), nil
}

type medianStat struct{}

func (medianStat) Name() string { return "median" }

// Compute returns the median under the total order where NaN compares
// greatest: the raw values are sorted with NaN pushed to the end, only
// NaN is excluded from the midpoint (infinities participate), and an
// even count averages the two middles.
//
// Implementation:
//   - Stage 1: sort a copy under NaN-greatest ordering.
//   - Stage 2: count non-NaN entries k; k == 0 yields NaN.
//   - Stage 3: odd k picks the single middle, even k averages the two.
//
// Complexity: O(n log n).
func (medianStat) Compute(v vector.View) (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("stat.Median: %w", ErrNilVector)
	}
	cp, err := vector.Materialize(v)
	if err != nil {
		return 0, fmt.Errorf("stat.Median: %w", err)
	}
	sort.Slice(cp, func(i, j int) bool {
		a, b := cp[i], cp[j]
		if math.IsNaN(a) {
			return false // NaN sorts greatest
		}
		if math.IsNaN(b) {
			return true
		}

		return a < b
	})

	k := len(cp)
	for k > 0 && math.IsNaN(cp[k-1]) {
		k--
	}
	if k == 0 {
		return math.NaN(), nil
	}
	if k%2 == 1 {
		return cp[k/2], nil
	}

	return (cp[k/2-1] + cp[k/2]) / 2, nil
}
