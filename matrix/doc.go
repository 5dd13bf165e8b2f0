// Package matrix provides the read-only MatrixView contract, a mutable
// storage-polymorphic Matrix container, and zero-copy row/column/
// diagonal projections into vector views.
//
// The matrix package provides:
//
//   - View: the two-dimensional read-only capability (Rows, Cols, At)
//     that multiply, symmetry checks and decompositions consume.
//   - Matrix: a mutable container dispatching get/set through exactly
//     one storage strategy — dense (row-major flat buffer), diagonal
//     (diagonal entries only), sparse (dictionary-of-keys), or wrap
//     (shallow view over a caller's [][]float64).
//   - Transparent promotion: writing a non-zero value to an
//     off-diagonal cell of diagonal storage migrates the matrix to a
//     sparse store seeded from the current diagonal, then applies the
//     write. The transition is one-way and invisible through At/Set —
//     callers cannot distinguish representations except by performance.
//   - Projections: RowView, ColView and DiagView produce vector.View
//     adapters that hold a back-reference to the matrix plus an index.
//     They never own data; bounds are validated eagerly at construction
//     ("fail at creation, not at first use"), and the matrix must
//     outlive the projection.
//
// Copy vs. wrap construction mirrors the vector package: CopyOf
// allocates, Wrap aliases, and the choice is explicit at the call site.
// Matrix is non-comparable by design (no hashing of mutable numeric
// containers). Single-threaded by contract.
package matrix
