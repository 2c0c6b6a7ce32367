// Package matrix_test contains unit tests for degree vectors and normalization.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvembed/matrix"
	"github.com/stretchr/testify/require"
)

// TestInvSqrtDegreesSkipsZeros checks the pseudo-inverse policy.
func TestInvSqrtDegreesSkipsZeros(t *testing.T) {
	got := matrix.InvSqrtDegrees([]float64{4, 0, 0.25})

	require.Equal(t, []float64{0.5, 0, 2}, got)
	for _, v := range got {
		require.False(t, math.IsInf(v, 0) || math.IsNaN(v))
	}
	require.Equal(t, 1, matrix.CountZero([]float64{4, 0, 0.25}))
}

// TestNormalizeDegrees checks L = Dout^{-1/2}·A·Din^{-1/2} on a graph with an
// isolated row and an isolated column.
func TestNormalizeDegrees(t *testing.T) {
	// [0 4 0]
	// [0 0 0]   <- isolated row
	// [1 0 0]      column 2 isolated
	m, err := matrix.CSRFromTriplets(3, 3, []int{0, 2}, []int{1, 0}, []float64{4, 1})
	require.NoError(t, err)

	n, err := matrix.NormalizeDegrees(m)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 0, 1}, n.Out)
	require.Equal(t, []float64{1, 4, 0}, n.In)
	require.Equal(t, []float64{0.5, 0, 1}, n.InvSqrtOut)
	require.Equal(t, []float64{1, 0.5, 0}, n.InvSqrtIn)

	// 4 * 0.5 * 0.5 = 1 and 1 * 1 * 1 = 1.
	v, err := n.L.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	v, err = n.L.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	require.Equal(t, m.NNZ(), n.L.NNZ())

	_, err = matrix.NormalizeDegrees(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
