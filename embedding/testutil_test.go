package embedding_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvembed/builder"
	"github.com/katalvlaran/lvembed/matrix"
)

// pathGraph returns the symmetric adjacency of the path 0-1-2-…-(n-1).
func pathGraph(t *testing.T, n int) *matrix.CSR {
	t.Helper()
	m, err := builder.BuildAdjacency(nil, builder.Path(n))
	require.NoError(t, err)
	return m
}

// weightedDigraph is a connected, non-bipartite, asymmetric 6-node graph with
// distinct singular values of its normalized operator.
func weightedDigraph(t *testing.T) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows([][]float64{
		{0, 3, 1, 0, 0, 2},
		{1, 0, 4, 0, 1, 0},
		{0, 2, 0, 5, 0, 1},
		{2, 0, 1, 0, 3, 0},
		{0, 1, 0, 2, 0, 6},
		{4, 0, 0, 1, 2, 1},
	})
	require.NoError(t, err)
	return d
}

// weightedSums returns Σ_i w[i]·x[i,:].
func weightedSums(x *mat.Dense, w []float64) []float64 {
	r, k := x.Dims()
	out := make([]float64, k)
	for i := 0; i < r; i++ {
		for j := 0; j < k; j++ {
			out[j] += w[i] * x.At(i, j)
		}
	}
	return out
}

// gram returns x·xᵀ, invariant to column signs, order and rotations inside
// degenerate singular subspaces.
func gram(x *mat.Dense) *mat.Dense {
	var g mat.Dense
	g.Mul(x, x.T())
	return &g
}
