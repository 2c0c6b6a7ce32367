// SPDX-License-Identifier: MIT

// Package linalg - operator & decomposer contracts.
//
// Purpose:
//   - Operator is the minimal matrix surface a low-rank solver needs: shape plus
//     products with the matrix and its transpose. Sparse storage never has to be
//     densified.
//   - LowRankDecomposer is the strategy interface: new solvers plug in without
//     touching callers.
//   - Triplet carries (U, Σ, Vᵗ) with U: r×k, len(Σ) = k, Vᵗ: k×c.

package linalg

import (
	"gonum.org/v1/gonum/mat"
)

// Operator is a linear map given only through products.
// *matrix.CSR implements it; DenseOperator adapts any gonum matrix.
type Operator interface {
	// Dims returns the number of rows and columns.
	Dims() (r, c int)

	// MulVec returns A·x (len(x) == c).
	MulVec(x []float64) ([]float64, error)

	// TMulVec returns Aᵀ·x (len(x) == r).
	TMulVec(x []float64) ([]float64, error)

	// MulMat returns A·X (X has c rows).
	MulMat(x *mat.Dense) (*mat.Dense, error)

	// TMulMat returns Aᵀ·X (X has r rows).
	TMulMat(x *mat.Dense) (*mat.Dense, error)
}

// Triplet is a truncated singular triplet set with A ≈ U · diag(S) · Vt.
//
// The order of S is the decomposer's own convention (see each implementation);
// columns of U and rows of Vt follow the same order.
type Triplet struct {
	U  *mat.Dense // r×k left singular vectors (columns)
	S  []float64  // k singular values
	Vt *mat.Dense // k×c right singular vectors (rows)
}

// LowRankDecomposer computes the top-k singular triplets of an Operator.
type LowRankDecomposer interface {
	// Name identifies the strategy in logs and errors.
	Name() string

	// Decompose returns the top-k triplets of op. The valid range of k is
	// decomposer-defined; out-of-range k yields ErrInvalidRank.
	Decompose(op Operator, k int) (*Triplet, error)
}

// denseOperator adapts a gonum matrix to Operator.
type denseOperator struct {
	a mat.Matrix
}

// DenseOperator wraps a gonum matrix as an Operator. Products are done by gonum.
func DenseOperator(a mat.Matrix) Operator { return denseOperator{a: a} }

func (d denseOperator) Dims() (r, c int) { return d.a.Dims() }

func (d denseOperator) MulVec(x []float64) ([]float64, error) {
	r, c := d.a.Dims()
	if len(x) != c {
		return nil, linalgErrorf("DenseOperator.MulVec", ErrDimensionMismatch)
	}
	y := mat.NewVecDense(r, nil)
	y.MulVec(d.a, mat.NewVecDense(c, x))

	return y.RawVector().Data, nil
}

func (d denseOperator) TMulVec(x []float64) ([]float64, error) {
	r, c := d.a.Dims()
	if len(x) != r {
		return nil, linalgErrorf("DenseOperator.TMulVec", ErrDimensionMismatch)
	}
	y := mat.NewVecDense(c, nil)
	y.MulVec(d.a.T(), mat.NewVecDense(r, x))

	return y.RawVector().Data, nil
}

func (d denseOperator) MulMat(x *mat.Dense) (*mat.Dense, error) {
	_, c := d.a.Dims()
	if xr, _ := x.Dims(); xr != c {
		return nil, linalgErrorf("DenseOperator.MulMat", ErrDimensionMismatch)
	}
	var y mat.Dense
	y.Mul(d.a, x)

	return &y, nil
}

func (d denseOperator) TMulMat(x *mat.Dense) (*mat.Dense, error) {
	r, _ := d.a.Dims()
	if xr, _ := x.Dims(); xr != r {
		return nil, linalgErrorf("DenseOperator.TMulMat", ErrDimensionMismatch)
	}
	var y mat.Dense
	y.Mul(d.a.T(), x)

	return &y, nil
}

// transposed swaps the roles of A and Aᵀ.
type transposed struct {
	op Operator
}

func (t transposed) Dims() (r, c int) {
	r, c = t.op.Dims()
	return c, r
}

func (t transposed) MulVec(x []float64) ([]float64, error)    { return t.op.TMulVec(x) }
func (t transposed) TMulVec(x []float64) ([]float64, error)   { return t.op.MulVec(x) }
func (t transposed) MulMat(x *mat.Dense) (*mat.Dense, error)  { return t.op.TMulMat(x) }
func (t transposed) TMulMat(x *mat.Dense) (*mat.Dense, error) { return t.op.MulMat(x) }
