package linalg_test

import (
	"testing"

	"github.com/katalvlaran/lvembed/linalg"
	"github.com/stretchr/testify/require"
)

// TestOptionPanics checks that nonsensical option values panic at construction.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { linalg.WithIterations(-2) })
	require.Panics(t, func() { linalg.WithNormalizer(linalg.Normalizer(42)) })
	require.Panics(t, func() { linalg.WithOversamples(-1) })
	require.Panics(t, func() { linalg.WithTolerance(-1e-3) })
	require.Panics(t, func() { linalg.WithMaxIterations(-1) })

	require.NotPanics(t, func() { linalg.WithIterations(linalg.AutoIterations) })
	require.NotPanics(t, func() { linalg.WithIterations(0) })
}

// TestParseNormalizer maps names onto Normalizer values.
func TestParseNormalizer(t *testing.T) {
	tests := []struct {
		in   string
		want linalg.Normalizer
	}{
		{"auto", linalg.NormalizerAuto},
		{"QR", linalg.NormalizerQR},
		{"lu", linalg.NormalizerLU},
		{"none", linalg.NormalizerNone},
		{"", linalg.NormalizerNone},
	}
	for _, tc := range tests {
		got, err := linalg.ParseNormalizer(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}

	_, err := linalg.ParseNormalizer("cholesky")
	require.ErrorIs(t, err, linalg.ErrUnknownNormalizer)
	require.Equal(t, "LU", linalg.NormalizerLU.String())
}

// TestAutoSVD switches strategy on the stored-entry count.
func TestAutoSVD(t *testing.T) {
	require.Equal(t, "lanczos", linalg.AutoSVD(linalg.AutoSolverThreshold, nil, nil).Name())
	require.Equal(t, "halko", linalg.AutoSVD(linalg.AutoSolverThreshold+1, nil, nil).Name())
}

// TestAutoSVDSplitOptions forwards each option set only to its own solver.
func TestAutoSVDSplitOptions(t *testing.T) {
	op := linalg.DenseOperator(gaussian(30, 30, 2))

	randomized := []linalg.Option{linalg.WithSeed(3)}
	h, err := linalg.AutoSVD(linalg.AutoSolverThreshold+1, randomized, nil).Decompose(op, 2)
	require.NoError(t, err)
	want, err := linalg.NewHalkoSVD(randomized...).Decompose(op, 2)
	require.NoError(t, err)
	require.Equal(t, want.S, h.S)

	// Three steps at zero tolerance never converge on a 30×30 operator.
	exact := []linalg.Option{linalg.WithMaxIterations(3), linalg.WithTolerance(0)}
	_, err = linalg.AutoSVD(10, randomized, exact).Decompose(op, 2)
	require.ErrorIs(t, err, linalg.ErrNoConvergence)
}

// TestDenseOperatorShapes rejects mismatched products.
func TestDenseOperatorShapes(t *testing.T) {
	op := linalg.DenseOperator(gaussian(3, 2, 1))

	r, c := op.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)

	y, err := op.MulVec([]float64{1, 0})
	require.NoError(t, err)
	require.Len(t, y, 3)
	_, err = op.MulVec([]float64{1, 0, 0})
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	_, err = op.TMulVec([]float64{1})
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	_, err = op.MulMat(gaussian(3, 1, 2))
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	_, err = op.TMulMat(gaussian(2, 1, 2))
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}
