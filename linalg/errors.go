// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// Every public operation returns one of these (possibly wrapped with a method
// tag); tests and callers match with errors.Is. No public operation panics on
// user-triggered conditions; only the Must* helpers do.

package linalg

import (
	"errors"

	"github.com/katalvlaran/minmath/core"
)

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive
	// or that constructor input is empty.
	ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Add of different shapes, Mul where a.Cols != b.Rows, or ToVector
	// on a matrix with more than one column.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was used as receiver or argument.
	ErrNilMatrix = errors.New("linalg: nil matrix")

	// ErrNilVector indicates that a nil *Vector was used as receiver or argument.
	ErrNilVector = errors.New("linalg: nil vector")
)

// ErrDivisionByZero is core.ErrDivisionByZero re-exported so callers of this
// package need not import core to match it.
var ErrDivisionByZero = core.ErrDivisionByZero
