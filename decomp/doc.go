// Package decomp provides matrix decompositions — SVD and
// eigendecomposition — over matrix.View, wrapping gonum as the numeric
// backend and adding jam's domain validation on top.
//
// The decomp package provides:
//
//   - SVD: thin singular value decomposition of any M×N matrix. The
//     factorization is captured at construction; U, V and the singular
//     values are derived views computed on first access and cached for
//     the object's lifetime (explicit nil-checked memoization — the
//     library is single-threaded, so no synchronization is involved).
//     Invert applies the rank-deficiency threshold
//     0.5·sqrt(M+N+1)·max(σ)·machine-epsilon and yields a true inverse
//     for square full-rank matrices, a Moore–Penrose-style pseudo
//     inverse otherwise.
//   - Eigen: accepts only matrices with all-real eigenvalues and fails
//     with ErrComplexEigen otherwise. Symmetric inputs (tolerance
//     check) take the symmetric backend: eigenvalues come out
//     non-increasing and eigenvectors are orthonormal columns. Every
//     extraction is validated against A·v ≈ λ·v before the value is
//     returned. Determinant helpers (Det, LogDet, SgnDet) derive from
//     the eigenvalues; UnitEigenvector retrieves the eigenvector of a
//     unique eigenvalue equal to 1 — the stationary-distribution hook
//     for stochastic-matrix-like inputs.
//
// Decomposition results are tied to the matrix they were computed from:
// they hold copies of the factor data, so later mutation of the source
// matrix does not invalidate them, but they describe the matrix as it
// was at construction time.
package decomp
