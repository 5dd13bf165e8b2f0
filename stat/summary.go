// SPDX-License-Identifier: MIT

// Package stat - one-pass summary of a data vector.
//
// Purpose:
//   - Accumulate count/sum/min/max over finite values in a single pass,
//     then derive mean, sample standard deviation and quartiles.
//   - Zero finite values produce the Empty summary: every field NaN,
//     Count zero. Callers test for it with IsEmpty, never by comparing
//     NaN fields.

package stat

import (
	"fmt"
	"math"
	"sort"

	gstat "gonum.org/v1/gonum/stat"

	"github.com/jamkit/jam/vector"
)

// Summary is an immutable computed snapshot of a data vector: the
// five-number summary plus mean and sample standard deviation.
type Summary struct {
	Count  int
	Min    float64
	Q1     float64
	Median float64
	Mean   float64
	StdDev float64
	Q3     float64
	Max    float64
}

// Empty is the summary of an input with no finite values: Count 0 and
// every statistic NaN.
var Empty = Summary{
	Count:  0,
	Min:    math.NaN(),
	Q1:     math.NaN(),
	Median: math.NaN(),
	Mean:   math.NaN(),
	StdDev: math.NaN(),
	Q3:     math.NaN(),
	Max:    math.NaN(),
}

// IsEmpty reports whether the summary came from zero finite values.
// Complexity: O(1).
func (s Summary) IsEmpty() bool { return s.Count == 0 }

// Compute derives the summary of v's finite values.
//
// Implementation:
//   - Stage 1: single pass accumulating count, sum, min and max over
//     finite values only (NaN and ±Inf silently dropped).
//   - Stage 2: zero finite values short-circuit to Empty.
//   - Stage 3: mean = sum/count; standard deviation only when count > 1,
//     as the 2-norm of the centered data divided by sqrt(count-1)
//     (sample, not population); a single observation yields NaN.
//   - Stage 4: quartiles via the empirical quantile engine over the
//     sorted finite data.
//
// Errors: ErrNilVector.
// Complexity: O(n log n) (dominated by the quartile sort).
func Compute(v vector.View) (Summary, error) {
	xs, err := finiteValues(v)
	if err != nil {
		return Empty, fmt.Errorf("stat.Compute: %w", err)
	}
	if len(xs) == 0 {
		return Empty, nil
	}

	count := 0
	sum := 0.0
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, x := range xs {
		count++
		sum += x
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}

	mean := sum / float64(count)
	stddev := math.NaN()
	if count > 1 {
		var ss float64 // squared 2-norm of the centered data
		for _, x := range xs {
			d := x - mean
			ss += d * d
		}
		stddev = math.Sqrt(ss) / math.Sqrt(float64(count-1))
	}

	sort.Float64s(xs)

	return Summary{
		Count:  count,
		Min:    lo,
		Q1:     gstat.Quantile(0.25, gstat.Empirical, xs, nil),
		Median: gstat.Quantile(0.5, gstat.Empirical, xs, nil),
		Mean:   mean,
		StdDev: stddev,
		Q3:     gstat.Quantile(0.75, gstat.Empirical, xs, nil),
		Max:    hi,
	}, nil
}
