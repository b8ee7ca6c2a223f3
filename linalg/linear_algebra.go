// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Shape-changing and structural operations: Mul, MulVec, Transpose,
//     Determinant (2×2) and ToVector.
//
// Determinism:
//   - Fixed loop orders (i→j→k for Mul); accumulators start at T's zero value.
//   - Validation always precedes allocation, so no partial result exists on error.

package linalg

const (
	opMul         = "Mul"
	opMulVec      = "MulVec"
	opDeterminant = "Determinant"
	opToVector    = "ToVector"
	opTrace       = "Trace"
)

// Mul performs standard matrix multiplication C = m × o.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (m.Cols == o.Rows) before any allocation.
//   - Stage 2: i→j→k triple loop; sum starts at the additive identity of T.
//
// Inputs:
//   - m: left matrix (r × n).
//   - o: right matrix (n × c).
//
// Returns:
//   - *Matrix[T]: new r × c matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner dimensions differ).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Matrix[T]) Mul(o *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(m, o); err != nil {
		return nil, linalgErrorf(opMul, err)
	}

	rows, inner, cols := m.r, m.c, o.c
	out := &Matrix[T]{r: rows, c: cols, data: make([]T, rows*cols)}
	var (
		i, j, k int
		sum     T
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = 0
			for k = 0; k < inner; k++ {
				sum += m.data[i*inner+k] * o.data[k*cols+j]
			}
			out.data[i*cols+j] = sum
		}
	}

	return out, nil
}

// MulVec returns m · v as a vector of size m.Rows.
// ErrDimensionMismatch when m.Cols != v.Size.
func (m *Matrix[T]) MulVec(v *Vector[T]) (*Vector[T], error) {
	if err := ValidateMulVec(m, v); err != nil {
		return nil, linalgErrorf(opMulVec, err)
	}
	out := &Vector[T]{data: make([]T, m.r)}
	for i := 0; i < m.r; i++ {
		out.data[i] = ewDot(m.data[i*m.c:(i+1)*m.c], v.data)
	}

	return out, nil
}

// Transpose returns a new C×R matrix with out[j][i] = m[i][j].
// Complexity: O(r*c).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	rows, cols := m.r, m.c
	out := &Matrix[T]{r: cols, c: rows, data: make([]T, rows*cols)}
	var base int
	for i := 0; i < rows; i++ {
		base = i * cols
		for j := 0; j < cols; j++ {
			out.data[j*rows+i] = m.data[base+j]
		}
	}

	return out
}

// Determinant returns a·d − b·c for a 2×2 matrix [[a, b], [c, d]].
// Larger determinants are not provided; any shape other than 2×2 yields
// ErrDimensionMismatch.
func (m *Matrix[T]) Determinant() (T, error) {
	if err := ValidateSquareN(m, 2); err != nil {
		return 0, linalgErrorf(opDeterminant, err)
	}

	return m.data[0]*m.data[3] - m.data[1]*m.data[2], nil
}

// ToVector converts an N×1 matrix into a size-N vector (copy).
// Any matrix with more than one column yields ErrDimensionMismatch.
func (m *Matrix[T]) ToVector() (*Vector[T], error) {
	if err := ValidateColumn(m); err != nil {
		return nil, linalgErrorf(opToVector, err)
	}
	buf := make([]T, m.r)
	copy(buf, m.data)

	return &Vector[T]{data: buf}, nil
}

// Trace returns the sum of the main diagonal of a square matrix.
func (m *Matrix[T]) Trace() (T, error) {
	if err := ValidateSquareN(m, m.r); err != nil {
		return 0, linalgErrorf(opTrace, err)
	}
	var sum T
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}
