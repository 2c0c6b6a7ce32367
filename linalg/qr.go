// SPDX-License-Identifier: MIT

// Package linalg - thin QR of a tall sketch through LAPACK.
//
// thinQR returns the m×n factor Q with orthonormal columns such that A = Q·R
// for a tall m×n input (m >= n). Only Q is materialized: the range finder
// never needs R, and mat.QR would build the full m×m Q, O(m²) memory on large
// graphs. Dgeqrf/Dorgqr from lapack64 produce the thin factor in place.
//
// Determinism: the gonum native LAPACK is deterministic for a given input.
// Zero columns get an identity reflector (tau = 0), so Q keeps orthonormal
// columns even for rank-deficient input.
//
// Complexity: O(m·n²) time, O(m·n) space.

package linalg

import (
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

// thinQR computes the orthonormal factor of a tall matrix.
//
// Implementation:
//   - Stage 1: copy A into a contiguous buffer and run Geqrf, which leaves the
//     Householder vectors below the diagonal and their scales in tau.
//   - Stage 2: Orgqr expands the reflectors into the m×n Q in the same buffer.
//
// Both stages use a workspace query (lwork = -1) before the real call.
//
// Errors:
//   - ErrDimensionMismatch when m < n.
func thinQR(a mat.Matrix) (*mat.Dense, error) {
	m, n := a.Dims()
	if m < n {
		return nil, linalgErrorf("thinQR", ErrDimensionMismatch)
	}

	q := mat.DenseCopyOf(a)
	raw := q.RawMatrix()
	tau := make([]float64, n)

	// Stage 1: A = H_0 … H_{n-1} · R.
	work := make([]float64, 1)
	lapack64.Geqrf(raw, tau, work, -1)
	work = make([]float64, max(int(work[0]), n, 1))
	lapack64.Geqrf(raw, tau, work, len(work))

	// Stage 2: Q = H_0 … H_{n-1} · I[:, :n].
	lapack64.Orgqr(raw, tau, work[:1], -1)
	if need := max(int(work[0]), n, 1); need > len(work) {
		work = make([]float64, need)
	}
	lapack64.Orgqr(raw, tau, work, len(work))

	return q, nil
}
