// Package vector provides the read-only VectorView contract and a
// mutable, storage-polymorphic Vector container.
//
// The vector package provides:
//
//   - View: the minimal read-only capability (Len + At) every consumer
//     in jam accepts — statistics, matrix multiply and projections all
//     read through it and never mutate.
//   - Vector: a mutable container owning exactly one storage strategy,
//     with in-place arithmetic (AddScalar, Scale, Daxpy), Normalize
//     (unit sum) and Unitize (unit 2-norm).
//   - Copy vs. wrap construction: CopyOf allocates an independent
//     backing store; Wrap aliases the caller's slice so mutations are
//     bidirectionally visible. Ownership intent is visible at the call
//     site, never a boolean flag.
//   - Derived package-level operations over View (Equal, Plus, Minus,
//     Scaled, Dot, norms, Sum) that produce new values and leave their
//     operands untouched.
//
// Equality is tolerance-based (see numcmp): shape first, then
// elementwise within eps. Exact float64 comparison is intentionally not
// the equivalence relation of this package. Vector is deliberately a
// non-comparable type — it cannot be used as a map key, the Go analog
// of forbidding hashing of a mutable numeric container.
//
// Lifetimes are ordinary Go lifetimes; a wrapped Vector must not
// outlive the meaning of the slice it aliases. Single-threaded by
// contract: no internal locking.
package vector
