// Package matrix_test contains unit tests for the CSR storage and its sparse kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvembed/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// sampleCSR returns the 2x3 matrix
//
//	[1 0 2]
//	[0 3 0]
func sampleCSR(t *testing.T) *matrix.CSR {
	t.Helper()
	m, err := matrix.NewCSR(2, 3, []int{0, 2, 3}, []int{0, 2, 1}, []float64{1, 2, 3})
	require.NoError(t, err)
	return m
}

// TestNewCSRValidation walks the structural error table of NewCSR.
func TestNewCSRValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    int
		cols    int
		indptr  []int
		indices []int
		data    []float64
		wantErr error
	}{
		{"zero rows", 0, 2, []int{0}, nil, nil, matrix.ErrInvalidDimensions},
		{"indices/data mismatch", 1, 2, []int{0, 1}, []int{0}, []float64{1, 2}, matrix.ErrDimensionMismatch},
		{"short indptr", 2, 2, []int{0, 1}, []int{0}, []float64{1}, matrix.ErrBadIndptr},
		{"indptr origin", 1, 2, []int{1, 1}, []int{0}, []float64{1}, matrix.ErrBadIndptr},
		{"indptr decreasing", 2, 2, []int{0, 2, 1}, []int{0}, []float64{1}, matrix.ErrBadIndptr},
		{"indptr terminal", 1, 2, []int{0, 2}, []int{0}, []float64{1}, matrix.ErrBadIndptr},
		{"column out of range", 1, 2, []int{0, 1}, []int{2}, []float64{1}, matrix.ErrBadIndices},
		{"unsorted columns", 1, 3, []int{0, 2}, []int{2, 0}, []float64{1, 1}, matrix.ErrBadIndices},
		{"duplicate column", 1, 3, []int{0, 2}, []int{1, 1}, []float64{1, 1}, matrix.ErrBadIndices},
		{"nan", 1, 2, []int{0, 1}, []int{0}, []float64{math.NaN()}, matrix.ErrNaNInf},
		{"valid", 2, 3, []int{0, 2, 3}, []int{0, 2, 1}, []float64{1, 2, 3}, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewCSR(tc.rows, tc.cols, tc.indptr, tc.indices, tc.data)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestNewCSRCopiesInput ensures later mutation of the caller's slices is invisible.
func TestNewCSRCopiesInput(t *testing.T) {
	data := []float64{5}
	m, err := matrix.NewCSR(1, 1, []int{0, 1}, []int{0}, data)
	require.NoError(t, err)
	data[0] = -1

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)
}

// TestCSRAt reads stored entries, structural zeros and out-of-range cells.
func TestCSRAt(t *testing.T) {
	m := sampleCSR(t)

	want := [][]float64{{1, 0, 2}, {0, 3, 0}}
	for i := range want {
		for j := range want[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			assert.Equalf(t, want[i][j], v, "At(%d,%d)", i, j)
		}
	}

	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCSRFromDenseDropsZeros checks compression from the row-major Dense.
func TestCSRFromDenseDropsZeros(t *testing.T) {
	d, err := matrix.NewDenseFromRows([][]float64{{0, 4}, {0, 0}, {1, 0}})
	require.NoError(t, err)

	m, err := matrix.CSRFromDense(d)
	require.NoError(t, err)
	require.Equal(t, 2, m.NNZ())
	require.Equal(t, d.String(), m.ToDense().String())

	_, err = matrix.CSRFromDense(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestCSRFromMat covers gonum input, including NaN and empty matrices.
func TestCSRFromMat(t *testing.T) {
	m, err := matrix.CSRFromMat(mat.NewDense(2, 2, []float64{0, 1, 2, 0}))
	require.NoError(t, err)
	require.Equal(t, 2, m.NNZ())
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	_, err = matrix.CSRFromMat(mat.NewDense(1, 2, []float64{math.Inf(1), 0}))
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.CSRFromMat(&mat.Dense{})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.CSRFromMat(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestCSRFromTriplets checks ordering, duplicate summation and range errors.
func TestCSRFromTriplets(t *testing.T) {
	m, err := matrix.CSRFromTriplets(2, 3,
		[]int{1, 0, 0, 1},
		[]int{1, 2, 0, 1},
		[]float64{1, 2, 1, 2},
	)
	require.NoError(t, err)
	require.Equal(t, 3, m.NNZ())
	require.Equal(t, sampleCSR(t).ToDense().String(), m.ToDense().String())

	_, err = matrix.CSRFromTriplets(2, 2, []int{2}, []int{0}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.CSRFromTriplets(2, 2, []int{0}, []int{0, 1}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestCSRSums checks total, row and column sums.
func TestCSRSums(t *testing.T) {
	m := sampleCSR(t)

	require.Equal(t, 6.0, m.Sum())
	require.Equal(t, []float64{3, 3}, m.RowSums())
	require.Equal(t, []float64{1, 3, 2}, m.ColSums())
	require.False(t, m.HasNegative())
}

// TestCSRTranspose compares T() against the dense transpose.
func TestCSRTranspose(t *testing.T) {
	m := sampleCSR(t)
	tr := m.T()

	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.Equal(t, "[1, 0]\n[0, 3]\n[2, 0]\n", tr.ToDense().String())
}

// TestCSRScaleRowsCols checks diag(l)·A·diag(r) and length validation.
func TestCSRScaleRowsCols(t *testing.T) {
	m := sampleCSR(t)

	s, err := m.ScaleRowsCols([]float64{2, 0}, []float64{1, 1, 0.5})
	require.NoError(t, err)
	require.Equal(t, "[2, 0, 2]\n[0, 0, 0]\n", s.ToDense().String())
	require.Equal(t, m.NNZ(), s.NNZ()) // pattern preserved

	_, err = m.ScaleRowsCols([]float64{1}, []float64{1, 1, 1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestCSRProducts compares the four operator products with gonum.
func TestCSRProducts(t *testing.T) {
	m := sampleCSR(t)
	ref := m.ToDense().Mat()

	y, err := m.MulVec([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []float64{7, 6}, y)

	z, err := m.TMulVec([]float64{1, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{1, -3, 2}, z)

	x := mat.NewDense(3, 2, []float64{1, 0, 0, 1, 2, 2})
	got, err := m.MulMat(x)
	require.NoError(t, err)
	var want mat.Dense
	want.Mul(ref, x)
	require.True(t, mat.Equal(&want, got))

	xt := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	got, err = m.TMulMat(xt)
	require.NoError(t, err)
	want.Reset()
	want.Mul(ref.T(), xt)
	require.True(t, mat.Equal(&want, got))

	_, err = m.MulVec([]float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = m.MulMat(mat.NewDense(2, 2, nil))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = m.TMulMat(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
