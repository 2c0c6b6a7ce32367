// Package linalg provides truncated singular value decompositions of large,
// usually sparse, operators.
//
// 🚀 What is inside?
//
//	Two interchangeable LowRankDecomposer strategies over the Operator
//	interface (shape + products with A and Aᵀ):
//	  • HalkoSVD   - randomized range finder with power iterations
//	                 (normalizers: auto, QR, LU, none); fast, approximate.
//	  • LanczosSVD - Golub–Kahan–Lanczos bidiagonalization with full
//	                 reorthogonalization; exact to solver tolerance.
//	  • AutoSVD    - picks one of the two from the number of stored entries.
//
// ⚙️ Usage:
//
//	op := csr // *matrix.CSR satisfies Operator
//	t, err := linalg.NewHalkoSVD(linalg.WithSeed(42)).Decompose(op, 16)
//	if err != nil {
//		// ErrInvalidRank, ErrNoConvergence, ...
//	}
//	// t.U (r×k), t.S (k), t.Vt (k×c)
//
// Conventions:
//   - HalkoSVD returns singular values in descending order, LanczosSVD in
//     ascending order; both keep U columns and Vt rows aligned with S.
//   - Valid ranks are decomposer-defined: 1 ≤ k ≤ min(r, c) for Halko,
//     1 ≤ k < min(r, c) for Lanczos.
//   - Dense kernels (SVD of the small projected matrices, products) are gonum.
package linalg
