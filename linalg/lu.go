// SPDX-License-Identifier: MIT

// Package linalg - partial-pivot LU of a tall matrix, returning P·L.
//
// permutedLU factors a tall m×n matrix (m >= n) as A = (P·L)·U with L unit
// lower-trapezoidal (m×n), U upper-triangular (n×n) and P the row permutation
// chosen by partial pivoting. The power-iteration normalizer only needs P·L:
// its columns span the same space as A's and are bounded (|L| <= 1), which is
// what keeps repeated products from overflowing.
//
// The factorization itself is lapack64.Getrf (mat.LU is square-only). A column
// that is exactly zero at and below the diagonal is left unscaled; Getrf
// reports it as singular but still completes, and the result is used as is.
//
// Complexity: O(m·n²) time, O(m·n) space.

package linalg

import (
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

// permutedLU returns (P·L, U).
//
// Implementation:
//   - Stage 1: Getrf on a copy packs L (strictly below the diagonal) and U
//     (on and above it) and records the row swaps in ipiv.
//   - Stage 2: replay the swaps to learn which original row every packed row
//     came from, then scatter L's rows back to those positions.
//
// Errors:
//   - ErrDimensionMismatch when m < n.
func permutedLU(a mat.Matrix) (pl, u *mat.Dense, err error) {
	m, n := a.Dims()
	if m < n {
		return nil, nil, linalgErrorf("permutedLU", ErrDimensionMismatch)
	}

	w := mat.DenseCopyOf(a)
	raw := w.RawMatrix()
	ipiv := make([]int, n)
	_ = lapack64.Getrf(raw, ipiv) // singular input still yields a valid P·L·U

	// perm[i] = original row now stored at position i.
	perm := make([]int, m)
	var i, j int
	for i = range perm {
		perm[i] = i
	}
	for i = 0; i < n; i++ {
		perm[i], perm[ipiv[i]] = perm[ipiv[i]], perm[i]
	}

	pl = mat.NewDense(m, n, nil)
	u = mat.NewDense(n, n, nil)
	var val float64
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			val = raw.Data[i*raw.Stride+j]
			switch {
			case j < i:
				pl.Set(perm[i], j, val)
			case j == i:
				pl.Set(perm[i], j, 1)
				u.Set(i, j, val)
			default:
				u.Set(i, j, val)
			}
		}
	}

	return pl, u, nil
}
