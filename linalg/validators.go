// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - One source of truth for shape and presence checks.
//   - Validators return plain sentinels wrapped with a validator tag; callers
//     add their own method tag on top.
//
// Every validator is O(1) and allocation-free.

package linalg

import (
	"fmt"

	"github.com/katalvlaran/minmath/core"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape ensures rows and cols are both positive.
func ValidateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateShape", ErrInvalidDimensions)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
func ValidateSameShape[T core.Number](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows for a product a×b.
// The check runs before any allocation so no partial result is ever produced.
func ValidateMulCompatible[T core.Number](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.c != b.r {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: (%dx%d)*(%dx%d)", a.r, a.c, b.r, b.c),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateColumn ensures m is a single-column (N×1) matrix.
func ValidateColumn[T core.Number](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateColumn", ErrNilMatrix)
	}
	if m.c != 1 {
		return validatorErrorf(fmt.Sprintf("ValidateColumn: cols=%d", m.c), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareN ensures m is exactly n×n.
func ValidateSquareN[T core.Number](m *Matrix[T], n int) error {
	if m == nil {
		return validatorErrorf("ValidateSquareN", ErrNilMatrix)
	}
	if m.r != n || m.c != n {
		return validatorErrorf(fmt.Sprintf("ValidateSquareN: want %dx%d, got %dx%d", n, n, m.r, m.c), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameLen ensures both vectors are non-nil and of equal size.
func ValidateSameLen[T core.Number](a, b *Vector[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameLen", ErrNilVector)
	}
	if len(a.data) != len(b.data) {
		return validatorErrorf(fmt.Sprintf("ValidateSameLen: %d vs %d", len(a.data), len(b.data)), ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulVec ensures m.Cols == v.Size for a product m·v.
func ValidateMulVec[T core.Number](m *Matrix[T], v *Vector[T]) error {
	if m == nil {
		return validatorErrorf("ValidateMulVec", ErrNilMatrix)
	}
	if v == nil {
		return validatorErrorf("ValidateMulVec", ErrNilVector)
	}
	if m.c != len(v.data) {
		return validatorErrorf(fmt.Sprintf("ValidateMulVec: cols=%d size=%d", m.c, len(v.data)), ErrDimensionMismatch)
	}

	return nil
}
