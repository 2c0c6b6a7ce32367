// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvembed/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil covers untyped nil, typed nil pointers and valid matrices.
func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	s, err := matrix.CSRFromDense(d)
	require.NoError(t, err)

	var nilDense *matrix.Dense
	var nilCSR *matrix.CSR

	tests := []struct {
		name    string
		m       matrix.Matrix
		wantErr error
	}{
		{"untyped nil", nil, matrix.ErrNilMatrix},
		{"typed nil dense", nilDense, matrix.ErrNilMatrix},
		{"typed nil csr", nilCSR, matrix.ErrNilMatrix},
		{"dense", d, nil},
		{"csr", s, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateNotNil(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateVecLen covers nil vectors and length mismatches.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
}

// TestValidateNonNegative checks sign validation of weight matrices.
func TestValidateNonNegative(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateNonNegative(nil), matrix.ErrNilMatrix)

	pos, err := matrix.CSRFromTriplets(2, 2, []int{0, 1}, []int{1, 0}, []float64{1, 0})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNonNegative(pos))

	neg, err := matrix.CSRFromTriplets(2, 2, []int{0}, []int{1}, []float64{-0.5})
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateNonNegative(neg), matrix.ErrNegativeWeight)
}
