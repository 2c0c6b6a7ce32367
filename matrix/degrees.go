// SPDX-License-Identifier: MIT

// Package matrix - degree vectors and the pseudo-inverse square-root policy.
//
// Purpose:
//   - Out-degree = row sums, in-degree = column sums of a weighted adjacency.
//   - InvSqrtDegrees builds the diagonal of D^{-1/2}, taking the reciprocal only of
//     non-zero degrees: isolated rows/columns stay structural zeros instead of
//     producing Inf.

package matrix

import "math"

// Degrees returns (out, in) degree vectors of an adjacency: out = A·1, in = Aᵀ·1.
//
// Errors: ErrNilMatrix.
// Complexity: O(r + c + nnz).
func Degrees(m *CSR) (out, in []float64, err error) {
	if m == nil {
		return nil, nil, matrixErrorf(opDegrees, ErrNilMatrix)
	}

	return m.RowSums(), m.ColSums(), nil
}

// InvSqrtDegrees returns d' with d'[i] = 1/sqrt(d[i]) for d[i] != 0 and 0 otherwise.
// Complexity: O(len(d)).
func InvSqrtDegrees(d []float64) []float64 {
	out := make([]float64, len(d))
	for i, v := range d {
		if v != 0 {
			out[i] = 1 / math.Sqrt(v)
		}
	}

	return out
}

// CountZero returns how many entries of d are exactly zero (isolated nodes).
func CountZero(d []float64) int {
	var n int
	for _, v := range d {
		if v == 0 {
			n++
		}
	}

	return n
}

// Normalized bundles the degree-normalized operator L = Dout^{-1/2} · A · Din^{-1/2}
// with the vectors used to build it.
type Normalized struct {
	L          *CSR      // normalized operator, same sparsity pattern as A
	Out, In    []float64 // out-degree (len r) and in-degree (len c)
	InvSqrtOut []float64 // diagonal of Dout^{-1/2} (zeros kept)
	InvSqrtIn  []float64 // diagonal of Din^{-1/2} (zeros kept)
}

// NormalizeDegrees left-scales m by Dout^{-1/2} and right-scales it by Din^{-1/2}.
//
// Implementation:
//   - Stage 1: out/in degrees via RowSums/ColSums.
//   - Stage 2: pseudo-inverse square roots (zero degrees stay zero).
//   - Stage 3: one ScaleRowsCols pass over the stored entries.
//
// Errors: ErrNilMatrix.
// Complexity: O(r + c + nnz).
func NormalizeDegrees(m *CSR) (*Normalized, error) {
	out, in, err := Degrees(m)
	if err != nil {
		return nil, err
	}
	n := &Normalized{
		Out:        out,
		In:         in,
		InvSqrtOut: InvSqrtDegrees(out),
		InvSqrtIn:  InvSqrtDegrees(in),
	}
	if n.L, err = m.ScaleRowsCols(n.InvSqrtOut, n.InvSqrtIn); err != nil {
		return nil, err
	}

	return n, nil
}
