// SPDX-License-Identifier: MIT

// Package linalg provides fixed-shape generic vectors and matrices.
//
// The package offers:
//
//   - Vector[T]: an N-element numeric tuple with elementwise and broadcast
//     arithmetic, dot product, Euclidean norm and conversion to an N×1 Matrix.
//   - Vec3[T]: a three-element array type; the only carrier of the cross product.
//   - Matrix[T]: an R×C row-major grid with elementwise and broadcast arithmetic,
//     multiplication, transpose, 2×2 determinant, rotation constructors and
//     conversion of N×1 matrices back into vectors.
//
// Shape is fixed at construction and never changes afterwards. Every binary
// operation validates shapes before it touches a single cell, so a failed call
// leaves operands and receivers exactly as they were.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrOutOfRange, ...)
// wrapped with the failing method name; match them with errors.Is.
//
// Quick example:
//
//	a := linalg.MustMatrix([][]float64{{1, 2}, {3, 4}})
//	b := linalg.MustMatrix([][]float64{{2, 0}, {1, 2}})
//	c, err := a.Mul(b) // [[4, 4], [10, 8]]
//
// Scalars are any core.Number. Integer division by zero is reported as
// ErrDivisionByZero; float division follows IEEE-754.
package linalg
