// SPDX-License-Identifier: MIT

// Package linalg - Vector storage & arithmetic.
//
// A Vector owns a flat []T whose length is fixed at construction. Pure
// operations return a fresh Vector; *InPlace variants mutate the receiver
// after validation succeeds. Conversions copy data and never alias.

package linalg

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/minmath/core"
)

// method tags used in error wrappers
const (
	tagVecAt       = "Vector.At"
	tagVecSet      = "Vector.Set"
	tagVecAdd      = "Vector.Add"
	tagVecSub      = "Vector.Sub"
	tagVecScalar   = "Vector.Scalar"
	tagVecDot      = "Vector.Dot"
	tagVecVec3     = "Vector.Vec3"
	tagVecNew      = "NewVector"
	tagVecInPlace  = "Vector.InPlace"
	_fmtVecHeader  = "Vector (%d):\n"
	_fmtListOpen   = "["
	_fmtListClose  = "]"
	_fmtListSep    = ", "
	_fmtMatHeader  = "Matrix (%dx%d):\n"
	_fmtInPlaceTag = "%s(%s)"
)

func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Vector is a fixed-length numeric tuple.
type Vector[T core.Number] struct {
	data []T // len fixed at construction (>= 1)
}

var _ fmt.Stringer = (*Vector[float64])(nil)

// NewVector builds a vector holding a copy of data.
// Returns ErrInvalidDimensions when data is empty.
func NewVector[T core.Number](data ...T) (*Vector[T], error) {
	if len(data) == 0 {
		return nil, linalgErrorf(tagVecNew, ErrInvalidDimensions)
	}
	buf := make([]T, len(data))
	copy(buf, data)

	return &Vector[T]{data: buf}, nil
}

// MustVector is NewVector that panics on error. Intended for literals in
// tests and examples.
func MustVector[T core.Number](data ...T) *Vector[T] {
	v, err := NewVector(data...)
	if err != nil {
		panic(err)
	}

	return v
}

// NewZeroVector returns an n-element vector of zeros.
func NewZeroVector[T core.Number](n int) (*Vector[T], error) {
	if n <= 0 {
		return nil, linalgErrorf(tagVecNew, ErrInvalidDimensions)
	}

	return &Vector[T]{data: make([]T, n)}, nil
}

// Size returns N.
func (v *Vector[T]) Size() int { return len(v.data) }

// At returns element i or ErrOutOfRange.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("%s(%d): %w", tagVecAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set stores x at index i or returns ErrOutOfRange.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("%s(%d): %w", tagVecSet, i, ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Data returns a copy of the elements in order.
func (v *Vector[T]) Data() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns an independent deep copy.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{data: v.Data()}
}

// zip validates o and returns a fresh vector holding v op o.
func (v *Vector[T]) zip(o *Vector[T], op ewOp, tag string) (*Vector[T], error) {
	if err := ValidateSameLen(v, o); err != nil {
		return nil, linalgErrorf(tag, err)
	}
	out := &Vector[T]{data: make([]T, len(v.data))}
	if err := ewZip(out.data, v.data, o.data, op); err != nil {
		return nil, linalgErrorf(tag, err)
	}

	return out, nil
}

// broadcast returns a fresh vector holding v op s.
func (v *Vector[T]) broadcast(s T, op ewOp) (*Vector[T], error) {
	out := &Vector[T]{data: make([]T, len(v.data))}
	if err := ewBroadcast(out.data, v.data, s, op); err != nil {
		return nil, linalgErrorf(fmt.Sprintf("%s(%s)", tagVecScalar, op), err)
	}

	return out, nil
}

// apply returns a fresh vector holding v op s for a non-failing op.
func (v *Vector[T]) apply(s T, op ewOp) *Vector[T] {
	out := &Vector[T]{data: make([]T, len(v.data))}
	ewApply(out.data, v.data, s, op)

	return out
}

// Add returns v + o elementwise. ErrDimensionMismatch when sizes differ.
func (v *Vector[T]) Add(o *Vector[T]) (*Vector[T], error) { return v.zip(o, ewAdd, tagVecAdd) }

// Sub returns v - o elementwise. ErrDimensionMismatch when sizes differ.
func (v *Vector[T]) Sub(o *Vector[T]) (*Vector[T], error) { return v.zip(o, ewSub, tagVecSub) }

// AddScalar returns v with s added to every element.
func (v *Vector[T]) AddScalar(s T) *Vector[T] {
	return v.apply(s, ewAdd)
}

// SubScalar returns v with s subtracted from every element.
func (v *Vector[T]) SubScalar(s T) *Vector[T] {
	return v.apply(s, ewSub)
}

// MulScalar returns v scaled by s.
func (v *Vector[T]) MulScalar(s T) *Vector[T] {
	return v.apply(s, ewMul)
}

// DivScalar returns v with every element divided by s.
// For integer T and s == 0 it returns ErrDivisionByZero; float T follows IEEE-754.
func (v *Vector[T]) DivScalar(s T) (*Vector[T], error) { return v.broadcast(s, ewDiv) }

// Neg returns -v.
func (v *Vector[T]) Neg() *Vector[T] {
	out := &Vector[T]{data: make([]T, len(v.data))}
	for i, x := range v.data {
		out.data[i] = -x
	}

	return out
}

// AddInPlace sets v = v + o. On error v is unchanged.
func (v *Vector[T]) AddInPlace(o *Vector[T]) error { return v.zipInPlace(o, ewAdd) }

// SubInPlace sets v = v - o. On error v is unchanged.
func (v *Vector[T]) SubInPlace(o *Vector[T]) error { return v.zipInPlace(o, ewSub) }

// AddScalarInPlace adds s to every element of v.
func (v *Vector[T]) AddScalarInPlace(s T) { ewApply(v.data, v.data, s, ewAdd) }

// SubScalarInPlace subtracts s from every element of v.
func (v *Vector[T]) SubScalarInPlace(s T) { ewApply(v.data, v.data, s, ewSub) }

// MulScalarInPlace scales v by s.
func (v *Vector[T]) MulScalarInPlace(s T) { ewApply(v.data, v.data, s, ewMul) }

// DivScalarInPlace divides every element of v by s.
// ErrDivisionByZero (integer T, s == 0) leaves v unchanged.
func (v *Vector[T]) DivScalarInPlace(s T) error {
	if err := ewBroadcast(v.data, v.data, s, ewDiv); err != nil {
		return linalgErrorf(fmt.Sprintf(_fmtInPlaceTag, tagVecInPlace, ewDiv), err)
	}

	return nil
}

func (v *Vector[T]) zipInPlace(o *Vector[T], op ewOp) error {
	tag := fmt.Sprintf(_fmtInPlaceTag, tagVecInPlace, op)
	if err := ValidateSameLen(v, o); err != nil {
		return linalgErrorf(tag, err)
	}
	if err := ewZip(v.data, v.data, o.data, op); err != nil {
		return linalgErrorf(tag, err)
	}

	return nil
}

// Dot returns the sum of elementwise products. ErrDimensionMismatch when sizes differ.
func (v *Vector[T]) Dot(o *Vector[T]) (T, error) {
	if err := ValidateSameLen(v, o); err != nil {
		return 0, linalgErrorf(tagVecDot, err)
	}

	return ewDot(v.data, o.data), nil
}

// Norm returns the Euclidean length |v|, accumulated in float64.
func (v *Vector[T]) Norm() float64 {
	var sum float64
	for _, x := range v.data {
		f := core.ToFloat64(x)
		sum += f * f
	}

	return math.Sqrt(sum)
}

// Vec3 converts a size-3 vector into a Vec3, the carrier of Cross.
// Any other size yields ErrDimensionMismatch.
func (v *Vector[T]) Vec3() (Vec3[T], error) {
	if len(v.data) != 3 {
		return Vec3[T]{}, fmt.Errorf("%s: size %d: %w", tagVecVec3, len(v.data), ErrDimensionMismatch)
	}

	return Vec3[T]{v.data[0], v.data[1], v.data[2]}, nil
}

// ToMatrix returns an N×1 column matrix holding a copy of v.
func (v *Vector[T]) ToMatrix() *Matrix[T] {
	return &Matrix[T]{r: len(v.data), c: 1, data: v.Data()}
}

// Equal reports exact elementwise equality (same size, same values).
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v == nil || o == nil {
		return v == o
	}
	if len(v.data) != len(o.data) {
		return false
	}

	return ewEqual(v.data, o.data)
}

// AllClose reports whether v and o have the same size and every pair of
// elements satisfies |a-b| <= eps + rtol*|b| (see WithEpsilon, WithRelTol).
func (v *Vector[T]) AllClose(o *Vector[T], opts ...Option) bool {
	if ValidateSameLen(v, o) != nil {
		return false
	}

	return ewAllClose(v.data, o.data, gatherOptions(opts...))
}

// String renders "Vector (N):\n[e1, e2, ...]".
func (v *Vector[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, _fmtVecHeader, len(v.data))
	writeList(&b, v.data)

	return b.String()
}

// writeList writes "[a, b, c]" using %v for each element.
func writeList[T core.Number](b *strings.Builder, xs []T) {
	b.WriteString(_fmtListOpen)
	for i, x := range xs {
		if i > 0 {
			b.WriteString(_fmtListSep)
		}
		fmt.Fprintf(b, "%v", x)
	}
	b.WriteString(_fmtListClose)
}
