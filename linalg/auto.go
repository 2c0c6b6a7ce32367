// SPDX-License-Identifier: MIT

// Package linalg - automatic solver selection.
//
// Policy: the randomized solver pays off on large operators, the exact one is
// preferable on small ones. The switch is made on the number of stored entries:
// Halko when nnz > AutoSolverThreshold, Lanczos otherwise.

package linalg

// AutoSolverThreshold is the nnz above which AutoSVD selects HalkoSVD.
const AutoSolverThreshold = 1_000_000

// AutoSVD returns HalkoSVD for nnz > AutoSolverThreshold and LanczosSVD otherwise.
// randomized is forwarded to HalkoSVD and exact to LanczosSVD; either may be nil.
func AutoSVD(nnz int, randomized, exact []Option) LowRankDecomposer {
	if nnz > AutoSolverThreshold {
		return NewHalkoSVD(randomized...)
	}

	return NewLanczosSVD(exact...)
}
