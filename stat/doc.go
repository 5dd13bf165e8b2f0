// Package stat provides stateless statistics calculators over
// vector.View: max, min, mean, sum, norms, median, quantiles and a
// one-pass summary.
//
// The stat package provides:
//
//   - Stat: one shared capability (Name + Compute) all concrete
//     statistics implement, so callers can treat "which statistic" as a
//     value.
//   - Silent non-finite filtering: every stream statistic (everything
//     except Median) drops NaN and ±Inf before aggregating. This is a
//     documented data-cleaning policy, not error suppression:
//     Sum{0,1,2,NaN,-4,+Inf,8} = 7 and Mean of the same = 1.4.
//   - Median is the deliberate exception: it sorts a copy under a total
//     order where NaN compares greatest, excludes only NaN from the
//     midpoint, and lets infinities participate.
//   - Quantiles: an immutable snapshot computed once through gonum's
//     empirical quantile engine; valid probabilities are (0, 1] — zero
//     fails validation, 1.0 (the maximum) is permitted.
//   - Summary: count/min/max/mean/stddev/quartiles computed in a single
//     pass over finite values; zero finite values yield the Empty
//     summary (all fields NaN). Standard deviation is the sample form
//     (divides by sqrt(count-1)) and is NaN for a single observation.
//
// Calculators read their input through the View contract and never
// mutate it.
package stat
