package linalg_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvembed/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestHalkoExactOnLowRank recovers the top triplets of an exactly low-rank matrix,
// where the sketch spans the whole range.
func TestHalkoExactOnLowRank(t *testing.T) {
	a := lowRank(40, 30, 5, 1)
	want := referenceValues(t, a)

	tr, err := linalg.NewHalkoSVD(linalg.WithSeed(42)).Decompose(linalg.DenseOperator(a), 3)
	require.NoError(t, err)
	require.Len(t, tr.S, 3)
	require.True(t, descending(tr.S))
	for i := range tr.S {
		assert.InDelta(t, want[i], tr.S[i], 1e-8*want[0])
	}
	requireTriplets(t, a, tr.U, tr.Vt, tr.S, 1e-8)
}

// TestHalkoNormalizers runs every normalizer over the same input.
func TestHalkoNormalizers(t *testing.T) {
	a := lowRank(25, 18, 4, 2)
	want := referenceValues(t, a)

	for _, n := range []linalg.Normalizer{
		linalg.NormalizerAuto, linalg.NormalizerQR, linalg.NormalizerLU, linalg.NormalizerNone,
	} {
		n := n
		t.Run(n.String(), func(t *testing.T) {
			h := linalg.NewHalkoSVD(linalg.WithSeed(7), linalg.WithNormalizer(n), linalg.WithIterations(3))
			tr, err := h.Decompose(linalg.DenseOperator(a), 2)
			require.NoError(t, err)
			for i := range tr.S {
				assert.InDelta(t, want[i], tr.S[i], 1e-8*want[0])
			}
		})
	}
}

// TestHalkoSeedDeterminism checks bit-identical output under a fixed seed.
func TestHalkoSeedDeterminism(t *testing.T) {
	a := gaussian(30, 20, 3)
	h := linalg.NewHalkoSVD(linalg.WithSeed(99))

	first, err := h.Decompose(linalg.DenseOperator(a), 4)
	require.NoError(t, err)
	second, err := h.Decompose(linalg.DenseOperator(a), 4)
	require.NoError(t, err)

	require.Equal(t, first.S, second.S)
	require.True(t, mat.Equal(first.U, second.U))
	require.True(t, mat.Equal(first.Vt, second.Vt))
}

// TestHalkoWideOperator transposes internally and keeps output shapes.
func TestHalkoWideOperator(t *testing.T) {
	a := lowRank(8, 15, 3, 4)
	want := referenceValues(t, a)

	tr, err := linalg.NewHalkoSVD(linalg.WithSeed(1)).Decompose(linalg.DenseOperator(a), 2)
	require.NoError(t, err)
	ur, uc := tr.U.Dims()
	vr, vc := tr.Vt.Dims()
	require.Equal(t, [4]int{8, 2, 2, 15}, [4]int{ur, uc, vr, vc})
	for i := range tr.S {
		assert.InDelta(t, want[i], tr.S[i], 1e-8*want[0])
	}
	requireTriplets(t, a, tr.U, tr.Vt, tr.S, 1e-8)
}

// TestHalkoSignConvention: the largest-|value| entry of each U column is positive.
func TestHalkoSignConvention(t *testing.T) {
	a := gaussian(12, 9, 5)

	tr, err := linalg.NewHalkoSVD(linalg.WithSeed(3)).Decompose(linalg.DenseOperator(a), 3)
	require.NoError(t, err)
	r, k := tr.U.Dims()
	for j := 0; j < k; j++ {
		best := 0.0
		for i := 0; i < r; i++ {
			if math.Abs(tr.U.At(i, j)) > math.Abs(best) {
				best = tr.U.At(i, j)
			}
		}
		require.Positive(t, best, "column %d", j)
	}
}

// TestHalkoFullRank accepts k == min(r, c).
func TestHalkoFullRank(t *testing.T) {
	a := gaussian(6, 4, 8)
	want := referenceValues(t, a)

	tr, err := linalg.NewHalkoSVD(linalg.WithSeed(2)).Decompose(linalg.DenseOperator(a), 4)
	require.NoError(t, err)
	for i := range tr.S {
		assert.InDelta(t, want[i], tr.S[i], 1e-10)
	}
}

// TestHalkoInvalidRank rejects k outside [1, min(r, c)] and nil operators.
func TestHalkoInvalidRank(t *testing.T) {
	op := linalg.DenseOperator(gaussian(5, 3, 1))
	h := linalg.NewHalkoSVD()

	_, err := h.Decompose(op, 0)
	require.ErrorIs(t, err, linalg.ErrInvalidRank)
	_, err = h.Decompose(op, 4)
	require.ErrorIs(t, err, linalg.ErrInvalidRank)
	_, err = h.Decompose(nil, 1)
	require.ErrorIs(t, err, linalg.ErrNilOperator)
}

// TestHalkoAutoPolicy checks the iteration and normalizer defaults.
func TestHalkoAutoPolicy(t *testing.T) {
	h := linalg.NewHalkoSVD()

	require.Equal(t, 7, h.Iterations(2, 100, 50)) // 2 < 0.1·50
	require.Equal(t, 4, h.Iterations(5, 100, 50)) // 5 == 0.1·50
	require.Equal(t, linalg.NormalizerNone, h.Normalizer(2))
	require.Equal(t, linalg.NormalizerLU, h.Normalizer(3))

	fixed := linalg.NewHalkoSVD(linalg.WithIterations(1), linalg.WithNormalizer(linalg.NormalizerQR))
	require.Equal(t, 1, fixed.Iterations(2, 100, 50))
	require.Equal(t, linalg.NormalizerQR, fixed.Normalizer(1))
}

// TestHalkoName pins the strategy name used in logs.
func TestHalkoName(t *testing.T) {
	require.Equal(t, "halko", linalg.NewHalkoSVD().Name())
}
