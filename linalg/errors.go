// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// Decomposers return these sentinels wrapped with the decomposer name; callers
// match with errors.Is. Nothing in this package panics on user input; option
// constructors panic on nonsensical values (programmer error), as documented.

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrNilOperator indicates a nil Operator was passed to a decomposer.
	ErrNilOperator = errors.New("linalg: nil operator")

	// ErrInvalidRank indicates a requested rank k outside the range the
	// decomposer supports for the operator's shape.
	ErrInvalidRank = errors.New("linalg: invalid rank")

	// ErrNoConvergence indicates an iterative solver exhausted its step budget
	// before every requested triplet met the tolerance.
	ErrNoConvergence = errors.New("linalg: no convergence")

	// ErrFactorization indicates a dense factorization of a projected matrix failed.
	ErrFactorization = errors.New("linalg: factorization failed")

	// ErrUnknownNormalizer indicates a normalizer name outside {auto, QR, LU, none}.
	ErrUnknownNormalizer = errors.New("linalg: unknown normalizer")

	// ErrDimensionMismatch indicates an operator returned a product of the wrong shape.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")
)

// linalgErrorf wraps err with an operation tag, preserving it for errors.Is/As.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
