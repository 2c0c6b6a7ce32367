// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/length/sign checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including typed nil
// pointers hidden behind the interface.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	switch v := m.(type) {
	case nil:
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	case *Dense:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	case *CSR:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has length n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateNonNegative ensures every stored entry of m is >= 0 (weight matrices).
//
// Errors: ErrNilMatrix, ErrNegativeWeight.
// Complexity: O(nnz).
func ValidateNonNegative(m *CSR) error {
	if m == nil {
		return validatorErrorf("ValidateNonNegative", ErrNilMatrix)
	}
	if m.HasNegative() {
		return validatorErrorf("ValidateNonNegative", ErrNegativeWeight)
	}

	return nil
}

// validateIndptr checks a CSR row-pointer array: len == rows+1, starts at 0,
// never decreases and ends at nnz.
//
// Errors: ErrBadIndptr.
// Complexity: O(rows).
func validateIndptr(rows, nnz int, indptr []int) error {
	if len(indptr) != rows+1 || indptr[0] != 0 || indptr[rows] != nnz {
		return validatorErrorf("validateIndptr", ErrBadIndptr)
	}
	for i := 0; i < rows; i++ {
		if indptr[i+1] < indptr[i] {
			return validatorErrorf("validateIndptr", fmt.Errorf("row %d: %w", i, ErrBadIndptr))
		}
	}

	return nil
}

// validateIndices checks that every row's column indices lie in [0, cols) and
// are strictly increasing. indptr must already be valid.
//
// Errors: ErrBadIndices.
// Complexity: O(rows + nnz).
func validateIndices(rows, cols int, indptr, indices []int) error {
	var i, p int
	for i = 0; i < rows; i++ {
		for p = indptr[i]; p < indptr[i+1]; p++ {
			if indices[p] < 0 || indices[p] >= cols {
				return validatorErrorf("validateIndices", fmt.Errorf("row %d col %d: %w", i, indices[p], ErrBadIndices))
			}
			if p > indptr[i] && indices[p] <= indices[p-1] {
				return validatorErrorf("validateIndices", fmt.Errorf("row %d: %w", i, ErrBadIndices))
			}
		}
	}

	return nil
}
