// SPDX-License-Identifier: MIT

// Package linalg - exact truncated SVD by Golub–Kahan–Lanczos bidiagonalization.
//
// Algorithm Outline:
//  1. Start from a seeded random unit vector v₁ (length c).
//  2. Step j: u_j = A·v_j − β_{j-1}·u_{j-1},  α_j = ||u_j||;
//     v_{j+1} = Aᵀ·u_j − α_j·v_j,             β_j = ||v_{j+1}||,
//     with full reorthogonalization of u_j against U and v_{j+1} against V.
//  3. After p steps, A·V_p = U_p·B_p with B_p upper bidiagonal (α on the diagonal,
//     β on the superdiagonal). The SVD B_p = X·Σ·Yᵀ gives Ritz triplets
//     (U_p·X_i, σ_i, V_p·Y_i) with residual β_p·|X[p-1, i]|.
//  4. Accept when every top-k residual is ≤ tol·σmax; otherwise double p
//     (starting at max(2k+1, 20), capped at min(r, c)) and keep extending.
//
// Breakdown: when α_j or β_j vanishes the Krylov space is invariant; the next
// vector is drawn at random orthogonal to the current basis and the coupling
// is recorded as 0 (deflation). This also recovers repeated singular values a
// single Krylov sequence cannot see. At p = min(r, c) the factorization spans the
// whole space, so the result is exact to working precision.
//
// Order: singular values are returned in ASCENDING order (the ARPACK svds
// convention); column i of U and row i of Vt match S[i].
//
// Complexity: O(p·nnz(A) + p²·(r+c)) time, O(p·(r+c)) space.

package linalg

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// lanczosMinSubspace is the smallest subspace the solver grows to in the first pass.
	lanczosMinSubspace = 20

	// breakdownTol is the relative size (against the running ||A|| estimate) under
	// which α or β is treated as an exact breakdown.
	breakdownTol = 1e-13

	// restartFloor is the smallest residual norm accepted for a random restart vector.
	restartFloor = 1e-8
)

// LanczosSVD is the exact (to solver tolerance) LowRankDecomposer.
type LanczosSVD struct {
	opts Options
}

// Compile-time assertion.
var _ LowRankDecomposer = (*LanczosSVD)(nil)

// NewLanczosSVD builds an exact decomposer. Relevant options: WithTolerance,
// WithMaxIterations, WithSeed (start vector; DefaultLanczosSeed otherwise).
func NewLanczosSVD(opts ...Option) *LanczosSVD {
	return &LanczosSVD{opts: gatherOptions(opts...)}
}

// Name implements LowRankDecomposer.
func (l *LanczosSVD) Name() string { return "lanczos" }

// Decompose implements LowRankDecomposer.
//
// Errors:
//   - ErrNilOperator; ErrInvalidRank when k < 1 or k >= min(r, c);
//     ErrNoConvergence when the step cap is hit first; ErrFactorization when the
//     SVD of B fails; operator errors verbatim.
func (l *LanczosSVD) Decompose(op Operator, k int) (*Triplet, error) {
	tag := l.Name()
	if op == nil {
		return nil, linalgErrorf(tag, ErrNilOperator)
	}
	r, c := op.Dims()
	full := min(r, c)
	if k < 1 || k >= full {
		return nil, linalgErrorf(tag, fmt.Errorf("k=%d for %dx%d: %w", k, r, c, ErrInvalidRank))
	}

	limit := full
	if l.opts.maxIter > 0 {
		limit = min(full, max(l.opts.maxIter, k+1))
	}
	p := min(max(2*k+1, lanczosMinSubspace), limit)

	gk := newBidiagonalization(op, rngFromOptions(l.opts, DefaultLanczosSeed, false))
	for {
		if err := gk.extend(p); err != nil {
			return nil, linalgErrorf(tag, err)
		}
		t, converged, err := gk.ritz(k, l.opts.tol)
		if err != nil {
			return nil, linalgErrorf(tag, err)
		}
		if converged || p == full {
			return t, nil
		}
		if p >= limit {
			return nil, linalgErrorf(tag, fmt.Errorf("%d steps: %w", p, ErrNoConvergence))
		}
		p = min(2*p, limit)
	}
}

// bidiagonalization holds the growing Golub–Kahan–Lanczos factorization.
type bidiagonalization struct {
	op    Operator
	rng   *rand.Rand
	r, c  int
	u     [][]float64 // left basis u_1..u_p (len r each)
	v     [][]float64 // right basis v_1..v_p, plus v_{p+1} unless a restart is pending
	alpha []float64   // diagonal of B
	beta  []float64   // superdiagonal of B; beta[p-1] is the residual coupling
	anorm float64     // running estimate of ||A||
}

func newBidiagonalization(op Operator, rng *rand.Rand) *bidiagonalization {
	r, c := op.Dims()
	b := &bidiagonalization{op: op, rng: rng, r: r, c: c}
	b.v = append(b.v, randomOrthogonalUnit(c, nil, rng))

	return b
}

// extend runs Lanczos steps until the factorization has p columns.
func (b *bidiagonalization) extend(p int) error {
	var (
		j    int
		a, s float64
		w, z []float64
		err  error
	)
	for j = len(b.u); j < p; j++ {
		if len(b.v) == j { // pending restart from a β breakdown
			b.v = append(b.v, randomOrthogonalUnit(b.c, b.v, b.rng))
		}

		if w, err = b.op.MulVec(b.v[j]); err != nil {
			return err
		}
		if j > 0 {
			floats.AddScaled(w, -b.beta[j-1], b.u[j-1])
		}
		orthogonalize(w, b.u)
		a = floats.Norm(w, 2)
		if a <= breakdownTol*b.anorm || a == 0 {
			a = 0
			w = randomOrthogonalUnit(b.r, b.u, b.rng)
		} else {
			floats.Scale(1/a, w)
		}
		b.anorm = math.Max(b.anorm, a)
		b.u = append(b.u, w)
		b.alpha = append(b.alpha, a)

		if z, err = b.op.TMulVec(w); err != nil {
			return err
		}
		floats.AddScaled(z, -a, b.v[j])
		orthogonalize(z, b.v)
		s = floats.Norm(z, 2)
		if s <= breakdownTol*b.anorm || s == 0 {
			b.beta = append(b.beta, 0)
			continue
		}
		b.anorm = math.Max(b.anorm, s)
		floats.Scale(1/s, z)
		b.v = append(b.v, z)
		b.beta = append(b.beta, s)
	}

	return nil
}

// ritz returns the top-k Ritz triplets (ascending) and whether all converged.
func (b *bidiagonalization) ritz(k int, tol float64) (*Triplet, bool, error) {
	p := len(b.alpha)
	bd := mat.NewDense(p, p, nil)
	var i, j int
	for i = 0; i < p; i++ {
		bd.Set(i, i, b.alpha[i])
		if i+1 < p {
			bd.Set(i, i+1, b.beta[i])
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(bd, mat.SVDFull); !ok {
		return nil, false, ErrFactorization
	}
	values := svd.Values(nil) // descending
	var x, y mat.Dense
	svd.UTo(&x)
	svd.VTo(&y)

	coupling := b.beta[p-1]
	bound := tol * values[0]
	converged := true
	for i = 0; i < k; i++ {
		if coupling*math.Abs(x.At(p-1, i)) > bound {
			converged = false
			break
		}
	}

	t := &Triplet{
		U:  mat.NewDense(b.r, k, nil),
		S:  make([]float64, k),
		Vt: mat.NewDense(k, b.c, nil),
	}
	left := make([]float64, b.r)
	var src, dst int
	for dst = 0; dst < k; dst++ {
		src = k - 1 - dst // ascending output
		t.S[dst] = values[src]

		for i = range left {
			left[i] = 0
		}
		for j = 0; j < p; j++ {
			floats.AddScaled(left, x.At(j, src), b.u[j])
		}
		t.U.SetCol(dst, left)

		right := t.Vt.RawRowView(dst)
		for j = 0; j < p; j++ {
			floats.AddScaled(right, y.At(j, src), b.v[j])
		}
	}

	return t, converged, nil
}
