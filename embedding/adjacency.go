// SPDX-License-Identifier: MIT

// Package embedding - the Adjacency input variant.
//
// Adjacency is a closed sum type with exactly two shapes of input:
//   - Dense:  *matrix.Dense or a gonum *mat.Dense, compressed to CSR once;
//   - Sparse: *matrix.CSR, used as is.
//
// The interface is sealed (unexported method), so the only ways to build one
// are FromDense, FromMat, FromCSR and NewAdjacency. NewAdjacency is the
// dynamic boundary: it accepts exactly those three concrete types and rejects
// everything else ([][]float64, []float64, other gonum matrix kinds, nil) with
// ErrInvalidInputType rather than coercing.

package embedding

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvembed/matrix"
)

// Adjacency is a non-negative weighted adjacency of shape (n, m).
type Adjacency interface {
	// Kind reports the variant ("dense" or "sparse").
	Kind() string

	// CSR returns the single internal representation.
	CSR() (*matrix.CSR, error)

	sealed()
}

type denseAdjacency struct{ d *matrix.Dense }

type matAdjacency struct{ d *mat.Dense }

type sparseAdjacency struct{ m *matrix.CSR }

// FromDense wraps a row-major Dense adjacency.
func FromDense(d *matrix.Dense) Adjacency { return denseAdjacency{d: d} }

// FromMat wraps a gonum dense adjacency.
func FromMat(d *mat.Dense) Adjacency { return matAdjacency{d: d} }

// FromCSR wraps a compressed-sparse-row adjacency.
func FromCSR(m *matrix.CSR) Adjacency { return sparseAdjacency{m: m} }

// NewAdjacency builds the variant from a dynamically typed value.
//
// Errors:
//   - ErrInvalidInputType for any value other than *matrix.Dense, *mat.Dense
//     or *matrix.CSR (typed nil pointers included).
func NewAdjacency(v any) (Adjacency, error) {
	switch x := v.(type) {
	case *matrix.Dense:
		if x != nil {
			return FromDense(x), nil
		}
	case *mat.Dense:
		if x != nil {
			return FromMat(x), nil
		}
	case *matrix.CSR:
		if x != nil {
			return FromCSR(x), nil
		}
	}

	return nil, embeddingErrorf(opAdjacency, fmt.Errorf("%T: %w", v, ErrInvalidInputType))
}

func (a denseAdjacency) Kind() string { return "dense" }

func (a denseAdjacency) CSR() (*matrix.CSR, error) {
	if a.d == nil {
		return nil, ErrInvalidInputType
	}

	return matrix.CSRFromDense(a.d)
}

func (a denseAdjacency) sealed() {}

func (a matAdjacency) Kind() string { return "dense" }

func (a matAdjacency) CSR() (*matrix.CSR, error) {
	if a.d == nil {
		return nil, ErrInvalidInputType
	}

	return matrix.CSRFromMat(a.d)
}

func (a matAdjacency) sealed() {}

func (a sparseAdjacency) Kind() string { return "sparse" }

func (a sparseAdjacency) CSR() (*matrix.CSR, error) {
	if a.m == nil {
		return nil, ErrInvalidInputType
	}

	return a.m, nil
}

func (a sparseAdjacency) sealed() {}
