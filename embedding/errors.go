// SPDX-License-Identifier: MIT
// Package embedding: sentinel error set.
// Fit returns these sentinels (wrapped with the operation tag) or the
// decomposer's own error wrapped with %w; callers match with errors.Is.

package embedding

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInputType indicates the adjacency is neither a dense numeric
	// matrix (*matrix.Dense, *mat.Dense) nor a *matrix.CSR. No coercion is attempted.
	ErrInvalidInputType = errors.New("embedding: adjacency must be a dense matrix or a CSR matrix")

	// ErrInvalidDimension indicates a non-positive embedding dimension.
	ErrInvalidDimension = errors.New("embedding: embedding dimension must be > 0")

	// ErrNotFitted indicates a result accessor was called before a successful Fit.
	ErrNotFitted = errors.New("embedding: estimator is not fitted")

	// ErrZeroWeight indicates an adjacency whose entries sum to zero; the
	// center-of-mass shift divides by the total weight.
	ErrZeroWeight = errors.New("embedding: adjacency has zero total weight")

	// ErrDecomposerOutput indicates a decomposer returned triplets whose shapes
	// do not match the operator and the requested dimension.
	ErrDecomposerOutput = errors.New("embedding: decomposer output has unexpected shape")
)

const (
	opFit       = "GSVD.Fit"
	opNewGSVD   = "NewGSVD"
	opAdjacency = "NewAdjacency"
)

// embeddingErrorf wraps err with an operation tag, preserving it for errors.Is/As.
func embeddingErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
