// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap sentinels with an operation tag via
// matrixErrorf; callers still use errors.Is to match.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> structure (indptr/indices) -> numeric (NaN/Inf, sign).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. MulMat where a.Cols != x.Rows, or a data slice of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeWeight signals a strictly negative entry in a matrix that is
	// required to be a non-negative weight matrix (adjacency).
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrBadIndptr signals a CSR row-pointer array that is not of length rows+1,
	// does not start at 0, is not monotone, or does not end at nnz.
	ErrBadIndptr = errors.New("matrix: malformed CSR row pointers")

	// ErrBadIndices signals CSR column indices that are out of range or not
	// strictly increasing within a row.
	ErrBadIndices = errors.New("matrix: malformed CSR column indices")
)

// Operation name constants for unified error wrapping.
const (
	opNewCSR        = "NewCSR"
	opFromDense     = "CSRFromDense"
	opFromMat       = "CSRFromMat"
	opFromTriplets  = "CSRFromTriplets"
	opScaleRowsCols = "ScaleRowsCols"
	opMulVec        = "MulVec"
	opTMulVec       = "TMulVec"
	opMulMat        = "MulMat"
	opTMulMat       = "TMulMat"
	opDegrees       = "Degrees"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
