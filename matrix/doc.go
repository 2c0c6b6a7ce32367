// Package matrix offers the numeric containers used by the embedding pipeline.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with error-returning accessors and a
//     zero-copy bridge to gonum (Dense.Mat).
//   - CSR, an immutable compressed-sparse-row matrix for weighted adjacency,
//     with row/column sums, two-sided diagonal scaling and sparse×dense kernels.
//   - Degree helpers (Degrees, InvSqrtDegrees) implementing the
//     "skip zero degrees" pseudo-inverse policy.
//
// CSR is the single internal representation: dense inputs are compressed once
// at the boundary and every kernel afterwards runs in O(nnz).
//
// See the examples in this package for usage patterns.
package matrix
