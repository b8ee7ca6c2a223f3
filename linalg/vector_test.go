// SPDX-License-Identifier: MIT
// Package linalg_test contains unit tests for Vector and Vec3.
package linalg_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/minmath/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewVector_Empty ensures an empty literal is rejected.
func TestNewVector_Empty(t *testing.T) {
	t.Parallel()

	_, err := linalg.NewVector[float32]()
	require.ErrorIs(t, err, linalg.ErrInvalidDimensions)

	_, err = linalg.NewZeroVector[int](0)
	require.ErrorIs(t, err, linalg.ErrInvalidDimensions)
}

// TestNewVector_CopiesInput verifies the constructor does not alias its argument.
func TestNewVector_CopiesInput(t *testing.T) {
	t.Parallel()

	src := []int{1, 2, 3}
	v, err := linalg.NewVector(src...)
	require.NoError(t, err)

	src[0] = 99
	got, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Equal(t, 3, v.Size())
}

// TestVector_AtSetOutOfRange covers both bounds for reads and writes.
func TestVector_AtSetOutOfRange(t *testing.T) {
	t.Parallel()

	v := linalg.MustVector(1.0, 2.0)

	_, err := v.At(-1)
	require.ErrorIs(t, err, linalg.ErrOutOfRange)
	_, err = v.At(2)
	require.ErrorIs(t, err, linalg.ErrOutOfRange)
	require.ErrorIs(t, v.Set(2, 1), linalg.ErrOutOfRange)

	require.NoError(t, v.Set(1, 7.5))
	got, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 7.5, got)
}

func TestVector_AddSub(t *testing.T) {
	t.Parallel()

	a := linalg.MustVector(1, 2, 3)
	b := linalg.MustVector(4, 5, 6)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 7, 9}, sum.Data())

	diff, err := b.Sub(a)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 3}, diff.Data())

	// operands untouched
	assert.Equal(t, []int{1, 2, 3}, a.Data())
	assert.Equal(t, []int{4, 5, 6}, b.Data())
}

func TestVector_SizeMismatch(t *testing.T) {
	t.Parallel()

	a := linalg.MustVector(1, 2, 3)
	b := linalg.MustVector(1, 2)

	_, err := a.Add(b)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	_, err = a.Sub(b)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	_, err = a.Dot(b)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	require.ErrorIs(t, a.AddInPlace(b), linalg.ErrDimensionMismatch)
	assert.Equal(t, []int{1, 2, 3}, a.Data(), "receiver must be untouched on error")

	_, err = a.Add(nil)
	require.ErrorIs(t, err, linalg.ErrNilVector)
}

func TestVector_ScalarOps(t *testing.T) {
	t.Parallel()

	v := linalg.MustVector(2.0, 4.0, 6.0)

	assert.Equal(t, []float64{3, 5, 7}, v.AddScalar(1).Data())
	assert.Equal(t, []float64{1, 3, 5}, v.SubScalar(1).Data())
	assert.Equal(t, []float64{4, 8, 12}, v.MulScalar(2).Data())

	q, err := v.DivScalar(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, q.Data())

	assert.Equal(t, []float64{-2, -4, -6}, v.Neg().Data())
}

func TestVector_InPlace(t *testing.T) {
	t.Parallel()

	v := linalg.MustVector(1, 2, 3)
	require.NoError(t, v.AddInPlace(linalg.MustVector(1, 1, 1)))
	assert.Equal(t, []int{2, 3, 4}, v.Data())

	require.NoError(t, v.SubInPlace(linalg.MustVector(2, 2, 2)))
	assert.Equal(t, []int{0, 1, 2}, v.Data())

	v.AddScalarInPlace(3)
	assert.Equal(t, []int{3, 4, 5}, v.Data())

	v.SubScalarInPlace(1)
	assert.Equal(t, []int{2, 3, 4}, v.Data())

	v.MulScalarInPlace(3)
	assert.Equal(t, []int{6, 9, 12}, v.Data())

	require.NoError(t, v.DivScalarInPlace(3))
	assert.Equal(t, []int{2, 3, 4}, v.Data())
}

// TestVector_DivisionPolicy checks integer rejection and IEEE propagation for floats.
func TestVector_DivisionPolicy(t *testing.T) {
	t.Parallel()

	iv := linalg.MustVector(1, 2, 3)
	_, err := iv.DivScalar(0)
	require.ErrorIs(t, err, linalg.ErrDivisionByZero)
	require.ErrorIs(t, iv.DivScalarInPlace(0), linalg.ErrDivisionByZero)
	assert.Equal(t, []int{1, 2, 3}, iv.Data(), "no partial write")

	fv := linalg.MustVector(1.0, -1.0, 0.0)
	q, err := fv.DivScalar(0)
	require.NoError(t, err)
	got := q.Data()
	assert.True(t, math.IsInf(got[0], 1))
	assert.True(t, math.IsInf(got[1], -1))
	assert.True(t, math.IsNaN(got[2]))
}

func TestVector_DotAndNorm(t *testing.T) {
	t.Parallel()

	a := linalg.MustVector(1, 2, 3)
	b := linalg.MustVector(4, 5, 6)

	d, err := a.Dot(b)
	require.NoError(t, err)
	assert.Equal(t, 32, d)

	assert.InDelta(t, 5.0, linalg.MustVector(3.0, 4.0).Norm(), 1e-12)
}

func TestVector_Cross(t *testing.T) {
	t.Parallel()

	a, err := linalg.MustVector(1, 2, 3).Vec3()
	require.NoError(t, err)
	b := linalg.NewVec3(4, 5, 6)

	assert.Equal(t, linalg.NewVec3(-3, 6, -3), a.Cross(b))
	assert.Equal(t, 32, a.Dot(b))
	assert.Equal(t, []int{-3, 6, -3}, a.Cross(b).Vector().Data())

	c := a.Cross(b)
	assert.Equal(t, -3, c.X())
	assert.Equal(t, 6, c.Y())
	assert.Equal(t, -3, c.Z())

	// Cross is unavailable for any size other than 3.
	_, err = linalg.MustVector(1, 2).Vec3()
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	_, err = linalg.MustVector(1, 2, 3, 4).Vec3()
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

func TestVector_ToMatrixIsCopy(t *testing.T) {
	t.Parallel()

	v := linalg.MustVector(1, 2, 3)
	m := v.ToMatrix()

	r, c := m.Size()
	assert.Equal(t, 3, r)
	assert.Equal(t, 1, c)

	require.NoError(t, m.Set(0, 0, 42))
	got, _ := v.At(0)
	assert.Equal(t, 1, got)
}

func TestVector_EqualClone(t *testing.T) {
	t.Parallel()

	v := linalg.MustVector(1.0, 2.0)
	cl := v.Clone()
	assert.True(t, v.Equal(cl))

	require.NoError(t, cl.Set(0, 5))
	assert.False(t, v.Equal(cl))
	assert.False(t, v.Equal(linalg.MustVector(1.0, 2.0, 3.0)))
	assert.False(t, v.Equal(nil))

	near := linalg.MustVector(1.0+1e-12, 2.0)
	assert.True(t, v.AllClose(near))
	assert.False(t, v.AllClose(linalg.MustVector(1.1, 2.0)))
	assert.True(t, v.AllClose(linalg.MustVector(1.1, 2.0), linalg.WithEpsilon(0.2)))
}

func TestVector_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Vector (3):\n[1, 2, 3]", linalg.MustVector(1, 2, 3).String())
	assert.Equal(t, "Vector (2):\n[1.5, -2]", linalg.MustVector(1.5, -2).String())
	assert.Equal(t, "Vector (3):\n[-3, 6, -3]", linalg.NewVec3(-3, 6, -3).String())
}
