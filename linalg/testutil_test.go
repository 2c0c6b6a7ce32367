package linalg_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// lowRank returns an r×c matrix of exact rank k (product of two Gaussian factors).
func lowRank(r, c, k int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	left := mat.NewDense(r, k, nil)
	right := mat.NewDense(k, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < k; j++ {
			left.Set(i, j, rng.NormFloat64())
		}
	}
	for i := 0; i < k; i++ {
		for j := 0; j < c; j++ {
			right.Set(i, j, rng.NormFloat64())
		}
	}
	var a mat.Dense
	a.Mul(left, right)
	return &a
}

// gaussian returns an r×c matrix of standard normal draws (full rank almost surely).
func gaussian(r, c int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	a := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			a.Set(i, j, rng.NormFloat64())
		}
	}
	return a
}

// referenceValues returns the singular values of a in descending order (gonum).
func referenceValues(t *testing.T, a mat.Matrix) []float64 {
	t.Helper()
	var svd mat.SVD
	require.True(t, svd.Factorize(a, mat.SVDNone))
	return svd.Values(nil)
}

// requireTriplets checks A·v_i = s_i·u_i and orthonormal U columns / Vt rows.
func requireTriplets(t *testing.T, a mat.Matrix, u, vt *mat.Dense, s []float64, tol float64) {
	t.Helper()
	var av, su mat.Dense
	av.Mul(a, vt.T())
	su.Mul(u, mat.NewDiagDense(len(s), s))
	require.True(t, mat.EqualApprox(&av, &su, tol), "A·V != U·S")

	k := len(s)
	id := mat.NewDiagDense(k, ones(k))
	var utu, vvt mat.Dense
	utu.Mul(u.T(), u)
	vvt.Mul(vt, vt.T())
	require.True(t, mat.EqualApprox(&utu, id, tol), "U is not orthonormal")
	require.True(t, mat.EqualApprox(&vvt, id, tol), "Vt is not orthonormal")
}

func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}
	return v
}

func descending(s []float64) bool {
	return sort.SliceIsSorted(s, func(i, j int) bool { return s[i] > s[j] })
}

func ascending(s []float64) bool {
	return sort.Float64sAreSorted(s)
}
