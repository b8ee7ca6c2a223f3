// SPDX-License-Identifier: MIT

// Package linalg - Matrix storage (row-major) & elementwise arithmetic.
//
// Purpose:
//   - Row-major buffer with the explicit index formula i*cols + j.
//   - Safety at the public surface: At/Set return errors instead of panicking.
//   - Broadcast and elementwise arithmetic through the shared ew* kernel.
//
// Complexity quicksheet:
//   - NewMatrix: O(r*c); At/Set: O(1); Clone/Add/Sub/Scalar ops: O(r*c).

package linalg

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/minmath/core"
)

// ---------- error context tags ----------

const (
	tagMatNew     = "NewMatrix"
	tagMatAt      = "Matrix.At"
	tagMatSet     = "Matrix.Set"
	tagMatRow     = "Matrix.Row"
	tagMatCol     = "Matrix.Col"
	tagMatAdd     = "Matrix.Add"
	tagMatSub     = "Matrix.Sub"
	tagMatScalar  = "Matrix.Scalar"
	tagMatInPlace = "Matrix.InPlace"
)

// matrixErrorf wraps err with the method tag and the offending coordinates.
func matrixErrorf(tag string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", tag, row, col, err)
}

// Matrix is a fixed-shape R×C grid stored row-major.
//   - r, c hold dimensions (both >= 1, fixed after construction).
//   - data has length r*c; offset of (i,j) is i*c + j.
type Matrix[T core.Number] struct {
	r, c int
	data []T
}

var _ fmt.Stringer = (*Matrix[float64])(nil)

// NewMatrix builds a matrix from row-major rows, copying every value.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrDimensionMismatch when rows are ragged.
func NewMatrix[T core.Number](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, linalgErrorf(tagMatNew, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	data := make([]T, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w", tagMatNew, i, len(row), c, ErrDimensionMismatch)
		}
		data = append(data, row...)
	}

	return &Matrix[T]{r: r, c: c, data: data}, nil
}

// MustMatrix is NewMatrix that panics on error.
func MustMatrix[T core.Number](rows [][]T) *Matrix[T] {
	m, err := NewMatrix(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// NewZeros returns an r×c zero matrix.
func NewZeros[T core.Number](rows, cols int) (*Matrix[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, linalgErrorf(tagMatNew, err)
	}

	return &Matrix[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewIdentity returns the n×n identity matrix.
func NewIdentity[T core.Number](n int) (*Matrix[T], error) {
	m, err := NewZeros[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Size returns (rows, cols).
func (m *Matrix[T]) Size() (rows, cols int) { return m.r, m.c }

// Rows returns the row count.
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix[T]) Cols() int { return m.c }

// indexOf bounds-checks (row, col) and returns the flat offset.
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, matrixErrorf(tagMatAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Matrix[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf(tagMatSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("%s(%d): %w", tagMatRow, i, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Matrix[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("%s(%d): %w", tagMatCol, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Data returns a row-major copy of every cell.
func (m *Matrix[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns an independent deep copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Matrix[T]{r: m.r, c: m.c, data: cp}
}

func (m *Matrix[T]) zip(o *Matrix[T], op ewOp, tag string) (*Matrix[T], error) {
	if err := ValidateSameShape(m, o); err != nil {
		return nil, linalgErrorf(tag, err)
	}
	out := &Matrix[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	if err := ewZip(out.data, m.data, o.data, op); err != nil {
		return nil, linalgErrorf(tag, err)
	}

	return out, nil
}

func (m *Matrix[T]) broadcast(s T, op ewOp) (*Matrix[T], error) {
	out := &Matrix[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	if err := ewBroadcast(out.data, m.data, s, op); err != nil {
		return nil, linalgErrorf(fmt.Sprintf("%s(%s)", tagMatScalar, op), err)
	}

	return out, nil
}

// apply returns a fresh matrix holding m op s for a non-failing op.
func (m *Matrix[T]) apply(s T, op ewOp) *Matrix[T] {
	out := &Matrix[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	ewApply(out.data, m.data, s, op)

	return out
}

// Add returns m + o elementwise. ErrDimensionMismatch when shapes differ.
func (m *Matrix[T]) Add(o *Matrix[T]) (*Matrix[T], error) { return m.zip(o, ewAdd, tagMatAdd) }

// Sub returns m - o elementwise. ErrDimensionMismatch when shapes differ.
func (m *Matrix[T]) Sub(o *Matrix[T]) (*Matrix[T], error) { return m.zip(o, ewSub, tagMatSub) }

// AddScalar returns m with s added to every cell.
func (m *Matrix[T]) AddScalar(s T) *Matrix[T] {
	return m.apply(s, ewAdd)
}

// SubScalar returns m with s subtracted from every cell.
func (m *Matrix[T]) SubScalar(s T) *Matrix[T] {
	return m.apply(s, ewSub)
}

// MulScalar returns m scaled by s.
func (m *Matrix[T]) MulScalar(s T) *Matrix[T] {
	return m.apply(s, ewMul)
}

// DivScalar returns m with every cell divided by s.
// Integer T with s == 0 yields ErrDivisionByZero; float T follows IEEE-754.
func (m *Matrix[T]) DivScalar(s T) (*Matrix[T], error) { return m.broadcast(s, ewDiv) }

// Neg returns -m.
func (m *Matrix[T]) Neg() *Matrix[T] {
	out := &Matrix[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	for k, x := range m.data {
		out.data[k] = -x
	}

	return out
}

// AddInPlace sets m = m + o. On error m is unchanged.
func (m *Matrix[T]) AddInPlace(o *Matrix[T]) error { return m.zipInPlace(o, ewAdd) }

// SubInPlace sets m = m - o. On error m is unchanged.
func (m *Matrix[T]) SubInPlace(o *Matrix[T]) error { return m.zipInPlace(o, ewSub) }

// AddScalarInPlace adds s to every cell.
func (m *Matrix[T]) AddScalarInPlace(s T) { ewApply(m.data, m.data, s, ewAdd) }

// SubScalarInPlace subtracts s from every cell.
func (m *Matrix[T]) SubScalarInPlace(s T) { ewApply(m.data, m.data, s, ewSub) }

// MulScalarInPlace scales every cell by s.
func (m *Matrix[T]) MulScalarInPlace(s T) { ewApply(m.data, m.data, s, ewMul) }

// DivScalarInPlace divides every cell by s. On error m is unchanged.
func (m *Matrix[T]) DivScalarInPlace(s T) error {
	if err := ewBroadcast(m.data, m.data, s, ewDiv); err != nil {
		return linalgErrorf(fmt.Sprintf(_fmtInPlaceTag, tagMatInPlace, ewDiv), err)
	}

	return nil
}

func (m *Matrix[T]) zipInPlace(o *Matrix[T], op ewOp) error {
	tag := fmt.Sprintf(_fmtInPlaceTag, tagMatInPlace, op)
	if err := ValidateSameShape(m, o); err != nil {
		return linalgErrorf(tag, err)
	}
	if err := ewZip(m.data, m.data, o.data, op); err != nil {
		return linalgErrorf(tag, err)
	}

	return nil
}

// Equal reports exact cellwise equality (same shape, same values).
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}

	return ewEqual(m.data, o.data)
}

// AllClose reports whether m and o share a shape and every cell pair satisfies
// |a-b| <= eps + rtol*|b|.
func (m *Matrix[T]) AllClose(o *Matrix[T], opts ...Option) bool {
	if ValidateSameShape(m, o) != nil {
		return false
	}

	return ewAllClose(m.data, o.data, gatherOptions(opts...))
}

// String renders a header line followed by one "[a, b, ...]" line per row:
//
//	Matrix (2x2):
//	[1, 2]
//	[3, 4]
func (m *Matrix[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, _fmtMatHeader, m.r, m.c)
	for i := 0; i < m.r; i++ {
		writeList(&b, m.data[i*m.c:(i+1)*m.c])
		b.WriteString("\n")
	}

	return b.String()
}
