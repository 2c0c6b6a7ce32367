// Package linalg - RNG utilities shared by the decomposers.
//
// This file centralizes random generation for the randomized solvers.
//
// Goals:
//   - Determinism: a seeded Options value ⇒ identical sketches across runs.
//   - Encapsulation: a single RNG factory, built fresh per Decompose call, so a
//     decomposer value can be reused across sequential fits without hidden state.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; each call owns its own stream.
package linalg

import (
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// rngFromOptions returns the stream for one decomposition.
// Policy: seeded ⇒ the seed verbatim; otherwise the wall clock, which is the
// only non-deterministic path in the package and is reached only when the
// caller did not ask for a seed.
func rngFromOptions(o Options, fallback int64, useClock bool) *rand.Rand {
	var s int64
	switch {
	case o.seeded:
		s = o.seed
	case useClock:
		s = time.Now().UnixNano()
	default:
		s = fallback
	}

	return rand.New(rand.NewSource(s))
}

// gaussianMatrix returns a rows×cols matrix of standard normal draws in row-major order.
// Complexity: O(rows*cols).
func gaussianMatrix(rows, cols int, rng *rand.Rand) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.NormFloat64()
	}

	return mat.NewDense(rows, cols, data)
}

// gaussianVector returns n standard normal draws.
func gaussianVector(n int, rng *rand.Rand) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.NormFloat64()
	}

	return v
}

// orthogonalize removes from w its components along every (unit) vector of basis.
// Two Gram–Schmidt sweeps keep orthogonality at working precision.
func orthogonalize(w []float64, basis [][]float64) {
	var pass int
	for pass = 0; pass < 2; pass++ {
		for _, b := range basis {
			floats.AddScaled(w, -floats.Dot(w, b), b)
		}
	}
}

// randomOrthogonalUnit returns a unit vector of length n orthogonal to basis
// (len(basis) < n). Random draws are tried first; canonical vectors are the fallback.
func randomOrthogonalUnit(n int, basis [][]float64, rng *rand.Rand) []float64 {
	const attempts = 3
	var (
		i   int
		w   []float64
		nrm float64
	)
	for i = 0; i < attempts; i++ {
		w = gaussianVector(n, rng)
		orthogonalize(w, basis)
		if nrm = floats.Norm(w, 2); nrm > restartFloor {
			floats.Scale(1/nrm, w)
			return w
		}
	}
	// Some e_i keeps a residual of at least sqrt((n-len(basis))/n) after projection.
	best, bestNorm := []float64(nil), 0.0
	for i = 0; i < n; i++ {
		w = make([]float64, n)
		w[i] = 1
		orthogonalize(w, basis)
		if nrm = floats.Norm(w, 2); nrm > bestNorm {
			best, bestNorm = w, nrm
		}
	}
	floats.Scale(1/bestNorm, best)

	return best
}
