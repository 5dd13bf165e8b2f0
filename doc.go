// Package jam is a compact numeric toolkit: storage-polymorphic vectors
// and matrices with value semantics, tolerance-based comparison, summary
// statistics, and SVD/eigen decompositions on top of gonum.
//
// 🚀 What is jam?
//
//	A small, single-threaded library that brings together:
//		• Vector views: read-only contracts + mutable containers over pluggable storage
//		• Matrix views: dense, diagonal (with transparent sparse promotion) and
//		  wrapped storage behind one get/set surface
//		• Projections: zero-copy row / column / diagonal views
//		• Statistics: max, min, mean, sum, norms, median, quantiles, summaries
//		• Decompositions: SVD (with pseudo-inverse) and eigendecomposition
//
// ✨ Why choose jam?
//
//   - Explicit ownership – copy vs. wrap construction is visible at every call site
//   - Safe by default – bounds and shape checks return sentinel errors, never panic
//   - Tolerance-first – floating-point equality is epsilon-based throughout
//   - Pure Go – gonum as the only numeric backend, no cgo
//
// Under the hood, everything is organized under five subpackages:
//
//	numcmp/ — tolerance-based float64 comparison (the leaf everything shares)
//	vector/ — VectorView contract, mutable Vector, copy/wrap factories
//	matrix/ — MatrixView contract, mutable Matrix, storage strategies, projections
//	stat/   — stateless statistics calculators, quantiles, summaries
//	decomp/ — SVD and eigendecomposition consuming MatrixView
//
// Quick example:
//
//	v, _ := vector.Parse("1.0, 2.0, 3.0", ",")
//	m, _ := matrix.Diagonal([]float64{1, 2, 3})
//	_ = m.Set(0, 1, 5) // diagonal storage promotes to sparse, transparently
//	w, _ := matrix.TimesVec(m, v)
//
// The library is deliberately single-threaded: callers needing concurrent
// access must serialize externally. See each subpackage's doc.go for the
// full contract.
//
//	go get github.com/jamkit/jam
package jam
