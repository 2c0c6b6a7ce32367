// SPDX-License-Identifier: MIT

// Package linalg - randomized truncated SVD (Halko, Martinsson & Tropp).
//
// Algorithm Outline:
//  1. If r < c, work on Aᵀ (the sketch is taken on the longer side).
//  2. Draw a Gaussian test matrix Ω (c×s), s = min(k + oversamples, min(r, c)).
//  3. Power iterations: Q ← norm(A·Q), Q ← norm(Aᵀ·Q), repeated `iterations` times,
//     where norm is QR, LU (P·L factor) or nothing.
//  4. Q ← qr(A·Q): an orthonormal basis for the approximate range.
//  5. B = Qᵀ·A (s×c); exact SVD of the small B = Û·Σ·Vᵀ via gonum.
//  6. U = Q·Û; keep the first k triplets; flip signs so the largest-magnitude
//     entry of each U column is positive.
//
// Order: singular values are returned in descending order.
// Determinism: with WithSeed the output is bit-identical across calls.
//
// Complexity: O((iterations+2)·s·nnz(A) + (r+c)·s²).

package linalg

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// HalkoSVD is the randomized LowRankDecomposer.
type HalkoSVD struct {
	opts Options
}

// Compile-time assertion.
var _ LowRankDecomposer = (*HalkoSVD)(nil)

// NewHalkoSVD builds a randomized decomposer. Relevant options: WithIterations,
// WithNormalizer, WithOversamples, WithSeed.
func NewHalkoSVD(opts ...Option) *HalkoSVD {
	return &HalkoSVD{opts: gatherOptions(opts...)}
}

// Name implements LowRankDecomposer.
func (h *HalkoSVD) Name() string { return "halko" }

// Iterations resolves AutoIterations for rank k on an r×c operator.
func (h *HalkoSVD) Iterations(k, r, c int) int {
	if h.opts.iterations != AutoIterations {
		return h.opts.iterations
	}
	if float64(k) < autoRankRatio*float64(min(r, c)) {
		return autoIterationsSmall
	}

	return autoIterationsLarge
}

// Normalizer resolves NormalizerAuto for the given iteration count.
func (h *HalkoSVD) Normalizer(iterations int) Normalizer {
	if h.opts.normalizer != NormalizerAuto {
		return h.opts.normalizer
	}
	if iterations <= autoNormalizerThreshold {
		return NormalizerNone
	}

	return NormalizerLU
}

// Decompose implements LowRankDecomposer.
//
// Errors:
//   - ErrNilOperator; ErrInvalidRank when k < 1 or k > min(r, c);
//     ErrFactorization when the projected SVD fails; operator errors verbatim.
func (h *HalkoSVD) Decompose(op Operator, k int) (*Triplet, error) {
	tag := h.Name()
	if op == nil {
		return nil, linalgErrorf(tag, ErrNilOperator)
	}
	r, c := op.Dims()
	if k < 1 || k > min(r, c) {
		return nil, linalgErrorf(tag, fmt.Errorf("k=%d for %dx%d: %w", k, r, c, ErrInvalidRank))
	}

	iterations := h.Iterations(k, r, c)
	normalizer := h.Normalizer(iterations)
	size := min(k+h.opts.oversamples, min(r, c))

	work := op
	transpose := r < c
	if transpose {
		work = transposed{op: op}
	}
	wr, wc := work.Dims()

	rng := rngFromOptions(h.opts, 0, true)
	q, err := rangeFinder(work, size, iterations, normalizer, rng)
	if err != nil {
		return nil, linalgErrorf(tag, err)
	}

	// B = Qᵀ·A is formed as (Aᵀ·Q)ᵀ so only operator products are needed.
	bt, err := work.TMulMat(q)
	if err != nil {
		return nil, linalgErrorf(tag, err)
	}
	var svd mat.SVD
	if ok := svd.Factorize(bt.T(), mat.SVDThin); !ok {
		return nil, linalgErrorf(tag, ErrFactorization)
	}
	values := svd.Values(nil)
	var uh, vh mat.Dense
	svd.UTo(&uh) // size×size
	svd.VTo(&vh) // wc×size

	var uw mat.Dense
	uw.Mul(q, &uh) // wr×size

	left := mat.DenseCopyOf(uw.Slice(0, wr, 0, k))
	right := mat.DenseCopyOf(vh.Slice(0, wc, 0, k))
	if transpose {
		left, right = right, left
	}
	t := &Triplet{
		U:  left,
		S:  append([]float64(nil), values[:k]...),
		Vt: mat.DenseCopyOf(right.T()),
	}
	flipSigns(t)

	return t, nil
}

// rangeFinder returns an orthonormal wr×size basis approximating the range of work.
func rangeFinder(work Operator, size, iterations int, normalizer Normalizer, rng *rand.Rand) (*mat.Dense, error) {
	_, wc := work.Dims()
	q := gaussianMatrix(wc, size, rng)

	var (
		i   int
		y   *mat.Dense
		err error
	)
	for i = 0; i < iterations; i++ {
		if y, err = work.MulMat(q); err != nil {
			return nil, err
		}
		if y, err = normalize(y, normalizer); err != nil {
			return nil, err
		}
		if q, err = work.TMulMat(y); err != nil {
			return nil, err
		}
		if q, err = normalize(q, normalizer); err != nil {
			return nil, err
		}
	}
	if y, err = work.MulMat(q); err != nil {
		return nil, err
	}

	return thinQR(y)
}

// normalize applies the power-iteration normalizer to a tall sketch.
func normalize(y *mat.Dense, n Normalizer) (*mat.Dense, error) {
	switch n {
	case NormalizerQR:
		return thinQR(y)
	case NormalizerLU:
		pl, _, err := permutedLU(y)
		return pl, err
	default:
		return y, nil
	}
}

// flipSigns makes the largest-|value| entry of every U column positive and
// negates the matching Vt row, so repeated runs agree on orientation.
func flipSigns(t *Triplet) {
	r, k := t.U.Dims()
	_, c := t.Vt.Dims()
	var (
		i, j, arg int
		best, val float64
	)
	for j = 0; j < k; j++ {
		arg, best = 0, -1.0
		for i = 0; i < r; i++ {
			if val = math.Abs(t.U.At(i, j)); val > best {
				arg, best = i, val
			}
		}
		if t.U.At(arg, j) >= 0 {
			continue
		}
		for i = 0; i < r; i++ {
			t.U.Set(i, j, -t.U.At(i, j))
		}
		for i = 0; i < c; i++ {
			t.Vt.Set(j, i, -t.Vt.At(j, i))
		}
	}
}
