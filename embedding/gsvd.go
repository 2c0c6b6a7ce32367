// SPDX-License-Identifier: MIT

// Package embedding - the GSVD estimator.
//
// Pipeline (one Fit call):
//  1. Adjacency → CSR (dense input compressed once); reject negative weights.
//  2. w = Σ A; out = A·1, in = Aᵀ·1; zero total weight is rejected.
//  3. L = Dout^{-1/2} · A · Din^{-1/2} with the pseudo-inverse policy
//     (zero degrees stay zero).
//  4. (U, S, Vᵗ) = top-k SVD of L through a LowRankDecomposer.
//  5. embedding = √w · Dout^{-1/2} · U · diag(S);  features = √w · Din^{-1/2} · V.
//  6. Center of mass: embedding -= 1·(embeddingᵀ·out)ᵀ / w,
//     features  -= 1·(featuresᵀ·in)ᵀ  / w.
//
// State: a GSVD is Unfitted until the first successful Fit; every successful Fit
// replaces the whole Result, and a failed Fit leaves the previous one intact.
// One estimator must not be fitted from several goroutines at once; distinct
// estimators are independent.
//
// Order: SingularValues follow the decomposer's convention (descending for Halko,
// ascending for Lanczos); embedding and feature columns follow the same order.

package embedding

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvembed/linalg"
	"github.com/katalvlaran/lvembed/matrix"
)

// DefaultDimension is the embedding dimension of NewDefaultGSVD.
const DefaultDimension = 2

// Result is the output of one successful Fit.
type Result struct {
	Embedding      *mat.Dense // n×k row-node coordinates
	Features       *mat.Dense // m×k column-node coordinates
	SingularValues []float64  // k singular values of the normalized operator
}

// GSVD is the generalized-SVD graph embedding estimator.
type GSVD struct {
	dimension int
	logger    *zap.Logger
	result    *Result
}

// NewGSVD builds an Unfitted estimator for the given embedding dimension.
//
// Errors:
//   - ErrInvalidDimension when dimension <= 0.
func NewGSVD(dimension int, opts ...Option) (*GSVD, error) {
	if dimension <= 0 {
		return nil, embeddingErrorf(opNewGSVD, fmt.Errorf("dimension=%d: %w", dimension, ErrInvalidDimension))
	}
	g := &GSVD{dimension: dimension, logger: zap.NewNop()}
	for _, fn := range opts {
		if fn != nil {
			fn(g)
		}
	}

	return g, nil
}

// NewDefaultGSVD builds an Unfitted estimator with DefaultDimension.
func NewDefaultGSVD(opts ...Option) *GSVD {
	g, _ := NewGSVD(DefaultDimension, opts...)
	return g
}

// Dimension returns the configured embedding dimension k.
func (g *GSVD) Dimension() int { return g.dimension }

// Fitted reports whether a Result is available.
func (g *GSVD) Fitted() bool { return g.result != nil }

// Result returns a deep copy of the last successful fit, or false when Unfitted.
func (g *GSVD) Result() (Result, bool) {
	if g.result == nil {
		return Result{}, false
	}

	return Result{
		Embedding:      mat.DenseCopyOf(g.result.Embedding),
		Features:       mat.DenseCopyOf(g.result.Features),
		SingularValues: append([]float64(nil), g.result.SingularValues...),
	}, true
}

// Embedding returns a copy of the n×k row-node embedding.
func (g *GSVD) Embedding() (*mat.Dense, error) {
	if g.result == nil {
		return nil, ErrNotFitted
	}

	return mat.DenseCopyOf(g.result.Embedding), nil
}

// Features returns a copy of the m×k column-node embedding.
func (g *GSVD) Features() (*mat.Dense, error) {
	if g.result == nil {
		return nil, ErrNotFitted
	}

	return mat.DenseCopyOf(g.result.Features), nil
}

// SingularValues returns a copy of the k singular values.
func (g *GSVD) SingularValues() ([]float64, error) {
	if g.result == nil {
		return nil, ErrNotFitted
	}

	return append([]float64(nil), g.result.SingularValues...), nil
}

// Fit computes the embedding of adj and stores it on the estimator.
// It returns the estimator itself so calls can be chained.
//
// Contracts:
//   - adj must be built by FromDense/FromMat/FromCSR/NewAdjacency.
//   - Entries must be finite and non-negative, with a positive total weight.
//   - The valid range of the dimension is decomposer-defined: Halko accepts
//     k <= min(n, m), Lanczos requires k < min(n, m).
//
// Errors:
//   - ErrInvalidInputType, matrix.ErrNaNInf, matrix.ErrNegativeWeight, ErrZeroWeight,
//     ErrDecomposerOutput, and the decomposer's errors (linalg.ErrInvalidRank,
//     linalg.ErrNoConvergence, ...) wrapped with %w.
//
// Complexity: O(n + m + nnz) around the decomposition, plus O((n+m)·k).
func (g *GSVD) Fit(adj Adjacency, opts ...FitOption) (*GSVD, error) {
	start := time.Now()
	if adj == nil {
		return nil, embeddingErrorf(opFit, ErrInvalidInputType)
	}

	// Stage 1 - single internal representation.
	a, err := adj.CSR()
	if err != nil {
		return nil, embeddingErrorf(opFit, err)
	}
	if err = matrix.ValidateNonNegative(a); err != nil {
		return nil, embeddingErrorf(opFit, err)
	}

	// Stage 2 - weights and degree normalization.
	total := a.Sum()
	if total == 0 {
		return nil, embeddingErrorf(opFit, ErrZeroWeight)
	}
	norm, err := matrix.NormalizeDegrees(a)
	if err != nil {
		return nil, embeddingErrorf(opFit, err)
	}

	// Stage 3 - low-rank decomposition.
	o := gatherFitOptions(opts...)
	dec := o.decomposer(a.NNZ())
	r, c := a.Dims()
	g.logger.Debug("gsvd fit started",
		zap.String("input", adj.Kind()),
		zap.Int("rows", r),
		zap.Int("cols", c),
		zap.Int("nnz", a.NNZ()),
		zap.Int("dimension", g.dimension),
		zap.String("decomposer", dec.Name()),
		zap.Int("isolated_rows", matrix.CountZero(norm.Out)),
		zap.Int("isolated_cols", matrix.CountZero(norm.In)),
	)
	t, err := dec.Decompose(norm.L, g.dimension)
	if err != nil {
		g.logger.Debug("gsvd decomposition failed",
			zap.String("decomposer", dec.Name()),
			zap.Error(err),
		)
		return nil, embeddingErrorf(opFit, err)
	}
	if err = checkTriplet(t, r, c, g.dimension); err != nil {
		return nil, embeddingErrorf(opFit, fmt.Errorf("%s: %w", dec.Name(), err))
	}

	// Stage 4 - rescale and recenter.
	emb, feat := scaleTriplet(t, norm, total)
	centerOfMass(emb, norm.Out, total)
	centerOfMass(feat, norm.In, total)

	g.result = &Result{
		Embedding:      emb,
		Features:       feat,
		SingularValues: append([]float64(nil), t.S...),
	}
	g.logger.Debug("gsvd fit finished",
		zap.Float64s("singular_values", g.result.SingularValues),
		zap.Duration("elapsed", time.Since(start)),
	)

	return g, nil
}

// FitTransform fits adj and returns a copy of the row-node embedding.
func (g *GSVD) FitTransform(adj Adjacency, opts ...FitOption) (*mat.Dense, error) {
	if _, err := g.Fit(adj, opts...); err != nil {
		return nil, err
	}

	return g.Embedding()
}

// checkTriplet verifies U: r×k, len(S) = k, Vt: k×c.
func checkTriplet(t *linalg.Triplet, r, c, k int) error {
	if t == nil || t.U == nil || t.Vt == nil {
		return ErrDecomposerOutput
	}
	ur, uc := t.U.Dims()
	vr, vc := t.Vt.Dims()
	if ur != r || uc != k || len(t.S) != k || vr != k || vc != c {
		return errors.Join(ErrDecomposerOutput,
			fmt.Errorf("U %dx%d, S %d, Vt %dx%d for %dx%d rank %d", ur, uc, len(t.S), vr, vc, r, c, k))
	}

	return nil
}

// scaleTriplet maps the singular triplets back to node coordinates, before centering:
// emb[i,j] = √w·dout'[i]·U[i,j]·S[j], feat[i,j] = √w·din'[i]·Vt[j,i].
// Rows with zero degree come out exactly zero.
func scaleTriplet(t *linalg.Triplet, n *matrix.Normalized, total float64) (emb, feat *mat.Dense) {
	sw := math.Sqrt(total)
	r, k := t.U.Dims()
	_, c := t.Vt.Dims()

	var (
		i, j int
		f    float64
		row  []float64
	)
	emb = mat.NewDense(r, k, nil)
	for i = 0; i < r; i++ {
		if f = sw * n.InvSqrtOut[i]; f == 0 {
			continue
		}
		row = emb.RawRowView(i)
		for j = 0; j < k; j++ {
			row[j] = f * t.U.At(i, j) * t.S[j]
		}
	}

	feat = mat.NewDense(c, k, nil)
	for i = 0; i < c; i++ {
		if f = sw * n.InvSqrtIn[i]; f == 0 {
			continue
		}
		row = feat.RawRowView(i)
		for j = 0; j < k; j++ {
			row[j] = f * t.Vt.At(j, i)
		}
	}

	return emb, feat
}

// centerOfMass subtracts from every row of x the weighted mean row Σ_i w[i]·x[i,:] / total.
func centerOfMass(x *mat.Dense, w []float64, total float64) {
	r, k := x.Dims()
	shift := make([]float64, k)
	var (
		i, j int
		row  []float64
	)
	for i = 0; i < r; i++ {
		if w[i] == 0 {
			continue
		}
		row = x.RawRowView(i)
		for j = 0; j < k; j++ {
			shift[j] += row[j] * w[i]
		}
	}
	for j = 0; j < k; j++ {
		shift[j] /= total
	}
	for i = 0; i < r; i++ {
		row = x.RawRowView(i)
		for j = 0; j < k; j++ {
			row[j] -= shift[j]
		}
	}
}
