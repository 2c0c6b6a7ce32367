// SPDX-License-Identifier: MIT

// Package matrix - CSR (compressed sparse row) storage & sparse kernels.
//
// Purpose:
//   - Hold weighted adjacency in O(r + nnz) memory with the classic
//     (indptr, indices, data) triple: row i owns data[indptr[i]:indptr[i+1]].
//   - Provide the handful of sparse kernels a spectral pipeline needs:
//     row/column sums, two-sided diagonal scaling, A·x, Aᵀ·x, A·X and Aᵀ·X.
//   - Stay immutable after construction: every kernel returns fresh storage.
//
// Determinism:
//   - Column indices are strictly increasing inside a row, so every loop visits
//     stored entries in one fixed (row, col) order and sums are reproducible.
//
// AI-Hints:
//   - CSR satisfies linalg.Operator (Dims/MulVec/TMulVec/MulMat/TMulMat), so it
//     can be handed to any low-rank decomposer directly.
//   - Explicit zeros are legal (CSRFromTriplets keeps them); they never change sums.
//
// Complexity quicksheet:
//   - NewCSR: O(r + nnz); At: O(log nnz(row)); Sum/RowSums/ColSums: O(r + nnz);
//     T: O(r + c + nnz); MulMat/TMulMat: O(nnz * k).

package matrix

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// CSR is an immutable compressed-sparse-row matrix of float64 values.
type CSR struct {
	r, c    int       // dimensions (>0)
	indptr  []int     // row pointers, len == r+1, indptr[0]==0, indptr[r]==nnz
	indices []int     // column index per stored entry, strictly increasing per row
	data    []float64 // stored values, len == nnz
}

// NewCSR validates and copies the (indptr, indices, data) triple into a CSR.
//
// Implementation:
//   - Stage 1: shape (rows, cols > 0).
//   - Stage 2: indptr length / origin / monotonicity / terminal == nnz.
//   - Stage 3: per-row column indices in range and strictly increasing.
//   - Stage 4: finite values under DefaultValidateNaNInf.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadIndptr, ErrDimensionMismatch (len(indices) != len(data)),
//     ErrBadIndices, ErrNaNInf. All wrapped with the "NewCSR" tag.
//
// Complexity:
//   - Time O(r + nnz), Space O(r + nnz).
func NewCSR(rows, cols int, indptr, indices []int, data []float64) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNewCSR, ErrInvalidDimensions)
	}
	if len(indices) != len(data) {
		return nil, matrixErrorf(opNewCSR, ErrDimensionMismatch)
	}
	if err := validateIndptr(rows, len(data), indptr); err != nil {
		return nil, matrixErrorf(opNewCSR, err)
	}
	if err := validateIndices(rows, cols, indptr, indices); err != nil {
		return nil, matrixErrorf(opNewCSR, err)
	}
	if DefaultValidateNaNInf {
		if err := validateFinite(data); err != nil {
			return nil, matrixErrorf(opNewCSR, err)
		}
	}

	m := &CSR{
		r:       rows,
		c:       cols,
		indptr:  append([]int(nil), indptr...),
		indices: append([]int(nil), indices...),
		data:    append([]float64(nil), data...),
	}

	return m, nil
}

// CSRFromDense compresses any Matrix (Dense fast-path) into CSR, dropping zeros.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf, and any At error from a foreign implementation.
//
// Complexity:
//   - Time O(r*c), Space O(r + nnz).
func CSRFromDense(m Matrix) (*CSR, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opFromDense, err)
	}
	if d, ok := m.(*Dense); ok {
		return compressRowMajor(opFromDense, d.r, d.c, d.data)
	}

	rows, cols := m.Rows(), m.Cols()
	buf := make([]float64, rows*cols)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opFromDense, err)
			}
			buf[i*cols+j] = v
		}
	}

	return compressRowMajor(opFromDense, rows, cols, buf)
}

// CSRFromMat compresses a gonum matrix into CSR, dropping zeros.
//
// Errors:
//   - ErrNilMatrix (nil or empty input), ErrNaNInf.
func CSRFromMat(a mat.Matrix) (*CSR, error) {
	if a == nil {
		return nil, matrixErrorf(opFromMat, ErrNilMatrix)
	}
	if d, ok := a.(*mat.Dense); ok && d.IsEmpty() {
		return nil, matrixErrorf(opFromMat, ErrNilMatrix)
	}
	rows, cols := a.Dims()
	buf := make([]float64, rows*cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			buf[i*cols+j] = a.At(i, j)
		}
	}

	return compressRowMajor(opFromMat, rows, cols, buf)
}

// CSRFromTriplets builds a CSR from coordinate (row, col, value) triplets.
// Duplicate coordinates are summed; explicit zeros are kept as stored entries.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch (slice lengths differ),
//     ErrOutOfRange (coordinate outside the shape), ErrNaNInf.
//
// Complexity:
//   - Time O(nnz log nnz), Space O(r + nnz).
func CSRFromTriplets(rows, cols int, ri, ci []int, vals []float64) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opFromTriplets, ErrInvalidDimensions)
	}
	if len(ri) != len(vals) || len(ci) != len(vals) {
		return nil, matrixErrorf(opFromTriplets, ErrDimensionMismatch)
	}
	var k int
	for k = range vals {
		if ri[k] < 0 || ri[k] >= rows || ci[k] < 0 || ci[k] >= cols {
			return nil, matrixErrorf(opFromTriplets, fmt.Errorf("(%d,%d): %w", ri[k], ci[k], ErrOutOfRange))
		}
	}
	if DefaultValidateNaNInf {
		if err := validateFinite(vals); err != nil {
			return nil, matrixErrorf(opFromTriplets, err)
		}
	}

	// Stable (row, col) order so duplicate sums are accumulated in input order.
	order := make([]int, len(vals))
	for k = range order {
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool {
		if ri[order[a]] != ri[order[b]] {
			return ri[order[a]] < ri[order[b]]
		}
		return ci[order[a]] < ci[order[b]]
	})

	indptr := make([]int, rows+1)
	indices := make([]int, 0, len(vals))
	data := make([]float64, 0, len(vals))
	lastRow, lastCol := -1, -1
	for _, k = range order {
		if ri[k] == lastRow && ci[k] == lastCol {
			data[len(data)-1] += vals[k]
			continue
		}
		indices = append(indices, ci[k])
		data = append(data, vals[k])
		indptr[ri[k]+1]++
		lastRow, lastCol = ri[k], ci[k]
	}
	for k = 0; k < rows; k++ {
		indptr[k+1] += indptr[k]
	}

	return &CSR{r: rows, c: cols, indptr: indptr, indices: indices, data: data}, nil
}

// compressRowMajor packs a row-major buffer into CSR, skipping exact zeros.
func compressRowMajor(tag string, rows, cols int, buf []float64) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(tag, ErrInvalidDimensions)
	}
	if DefaultValidateNaNInf {
		if err := validateFinite(buf); err != nil {
			return nil, matrixErrorf(tag, err)
		}
	}
	indptr := make([]int, rows+1)
	var indices []int
	var data []float64
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v = buf[i*cols+j]; v != 0 {
				indices = append(indices, j)
				data = append(data, v)
			}
		}
		indptr[i+1] = len(data)
	}

	return &CSR{r: rows, c: cols, indptr: indptr, indices: indices, data: data}, nil
}

// Rows returns the number of rows.
func (m *CSR) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *CSR) Cols() int { return m.c }

// Dims returns (rows, cols); together with the Mul* kernels it makes CSR a linalg.Operator.
func (m *CSR) Dims() (r, c int) { return m.r, m.c }

// NNZ returns the number of stored entries (explicit zeros included).
func (m *CSR) NNZ() int { return len(m.data) }

// At returns element (i, j); absent entries read as 0.
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, fmt.Errorf("CSR.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]
	pos := lo + sort.SearchInts(m.indices[lo:hi], j)
	if pos < hi && m.indices[pos] == j {
		return m.data[pos], nil
	}

	return 0, nil
}

// Do calls fn for every stored entry in (row, col) order.
func (m *CSR) Do(fn func(i, j int, v float64)) {
	var i, k int
	for i = 0; i < m.r; i++ {
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			fn(i, m.indices[k], m.data[k])
		}
	}
}

// Sum returns the sum of all stored entries (the total edge weight of an adjacency).
func (m *CSR) Sum() float64 { return floats.Sum(m.data) }

// HasNegative reports whether any stored entry is strictly negative.
func (m *CSR) HasNegative() bool {
	for _, v := range m.data {
		if v < 0 {
			return true
		}
	}

	return false
}

// RowSums returns r[i] = sum_j m[i,j] (out-degrees of an adjacency).
// Complexity: O(r + nnz).
func (m *CSR) RowSums() []float64 {
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = floats.Sum(m.data[m.indptr[i]:m.indptr[i+1]])
	}

	return out
}

// ColSums returns c[j] = sum_i m[i,j] (in-degrees of an adjacency).
// Complexity: O(c + nnz).
func (m *CSR) ColSums() []float64 {
	out := make([]float64, m.c)
	for k, j := range m.indices {
		out[j] += m.data[k]
	}

	return out
}

// T returns the transpose as a new CSR (column indices stay sorted per row).
// Complexity: O(r + c + nnz).
func (m *CSR) T() *CSR {
	nnz := len(m.data)
	indptr := make([]int, m.c+1)
	for _, j := range m.indices {
		indptr[j+1]++
	}
	var j int
	for j = 0; j < m.c; j++ {
		indptr[j+1] += indptr[j]
	}
	next := append([]int(nil), indptr[:m.c]...)
	indices := make([]int, nnz)
	data := make([]float64, nnz)
	var i, k, dst int
	for i = 0; i < m.r; i++ { // row-ascending scan keeps the new indices sorted
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			j = m.indices[k]
			dst = next[j]
			indices[dst] = i
			data[dst] = m.data[k]
			next[j]++
		}
	}

	return &CSR{r: m.c, c: m.r, indptr: indptr, indices: indices, data: data}
}

// ScaleRowsCols returns diag(left) · m · diag(right) with the same sparsity pattern.
//
// Errors:
//   - ErrDimensionMismatch if len(left) != Rows() or len(right) != Cols().
//
// Complexity:
//   - Time O(r + nnz), Space O(r + nnz).
func (m *CSR) ScaleRowsCols(left, right []float64) (*CSR, error) {
	if err := ValidateVecLen(left, m.r); err != nil {
		return nil, matrixErrorf(opScaleRowsCols, err)
	}
	if err := ValidateVecLen(right, m.c); err != nil {
		return nil, matrixErrorf(opScaleRowsCols, err)
	}
	data := make([]float64, len(m.data))
	var i, k int
	for i = 0; i < m.r; i++ {
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			data[k] = left[i] * m.data[k] * right[m.indices[k]]
		}
	}

	return &CSR{
		r:       m.r,
		c:       m.c,
		indptr:  append([]int(nil), m.indptr...),
		indices: append([]int(nil), m.indices...),
		data:    data,
	}, nil
}

// MulVec returns y = m · x.
func (m *CSR) MulVec(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	y := make([]float64, m.r)
	var i, k int
	var acc float64
	for i = 0; i < m.r; i++ {
		acc = 0
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			acc += m.data[k] * x[m.indices[k]]
		}
		y[i] = acc
	}

	return y, nil
}

// TMulVec returns y = mᵀ · x without materializing the transpose.
func (m *CSR) TMulVec(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, m.r); err != nil {
		return nil, matrixErrorf(opTMulVec, err)
	}
	y := make([]float64, m.c)
	var i, k int
	for i = 0; i < m.r; i++ {
		if x[i] == 0 {
			continue
		}
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			y[m.indices[k]] += m.data[k] * x[i]
		}
	}

	return y, nil
}

// MulMat returns m · x as a new gonum Dense (r × x.cols).
//
// Errors:
//   - ErrNilMatrix (nil/empty x), ErrDimensionMismatch (x.rows != Cols()).
func (m *CSR) MulMat(x *mat.Dense) (*mat.Dense, error) {
	if x == nil || x.IsEmpty() {
		return nil, matrixErrorf(opMulMat, ErrNilMatrix)
	}
	xr, xc := x.Dims()
	if xr != m.c {
		return nil, matrixErrorf(opMulMat, ErrDimensionMismatch)
	}
	out := mat.NewDense(m.r, xc, nil)
	var i, k int
	for i = 0; i < m.r; i++ {
		dst := out.RawRowView(i)
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			floats.AddScaled(dst, m.data[k], x.RawRowView(m.indices[k]))
		}
	}

	return out, nil
}

// TMulMat returns mᵀ · x as a new gonum Dense (c × x.cols).
//
// Errors:
//   - ErrNilMatrix (nil/empty x), ErrDimensionMismatch (x.rows != Rows()).
func (m *CSR) TMulMat(x *mat.Dense) (*mat.Dense, error) {
	if x == nil || x.IsEmpty() {
		return nil, matrixErrorf(opTMulMat, ErrNilMatrix)
	}
	xr, xc := x.Dims()
	if xr != m.r {
		return nil, matrixErrorf(opTMulMat, ErrDimensionMismatch)
	}
	out := mat.NewDense(m.c, xc, nil)
	var i, k int
	for i = 0; i < m.r; i++ {
		src := x.RawRowView(i)
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			floats.AddScaled(out.RawRowView(m.indices[k]), m.data[k], src)
		}
	}

	return out, nil
}

// ToDense expands m into a fresh Dense (debugging and tests).
func (m *CSR) ToDense() *Dense {
	d := &Dense{r: m.r, c: m.c, data: make([]float64, m.r*m.c)}
	m.Do(func(i, j int, v float64) { d.data[i*m.c+j] += v })

	return d
}

// validateFinite rejects NaN and ±Inf entries.
func validateFinite(data []float64) error {
	for k, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("entry %d: %w", k, ErrNaNInf)
		}
	}

	return nil
}
