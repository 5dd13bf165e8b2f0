// SPDX-License-Identifier: MIT
// Package decomp: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// decomp package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package decomp

import "errors"

// Every message is prefixed with "decomp: ..." for consistency and to
// allow easy grepping across logs. If context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the detection site — callers still
// match via errors.Is.

var (
	// ErrNilView is returned when a constructor receives a nil matrix.View.
	ErrNilView = errors.New("decomp: nil matrix view")

	// ErrNonSquare is returned by Eigen when the input matrix is not square.
	ErrNonSquare = errors.New("decomp: matrix is not square")

	// ErrFactorization is returned when the numeric backend fails to
	// converge on a factorization.
	ErrFactorization = errors.New("decomp: factorization failed to converge")

	// ErrComplexEigen is returned by Eigen when the input has eigenvalues
	// with a non-negligible imaginary part.
	ErrComplexEigen = errors.New("decomp: matrix has complex eigenvalues")

	// ErrInconsistent is returned when an extracted eigenpair fails the
	// A·v ≈ λ·v consistency check.
	ErrInconsistent = errors.New("decomp: eigenpair failed consistency check")

	// ErrNoUnitEigenvalue is returned by UnitEigenvector when no
	// eigenvalue equals one.
	ErrNoUnitEigenvalue = errors.New("decomp: no unit eigenvalue")

	// ErrAmbiguousUnitEigenvalue is returned by UnitEigenvector when more
	// than one eigenvalue equals one.
	ErrAmbiguousUnitEigenvalue = errors.New("decomp: multiple unit eigenvalues")
)
