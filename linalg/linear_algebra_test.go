// SPDX-License-Identifier: MIT

package linalg_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/minmath/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMul_Basic(t *testing.T) {
	t.Parallel()

	a := linalg.MustMatrix([][]float32{{1, 2}, {3, 4}})
	b := linalg.MustMatrix([][]float32{{2, 0}, {1, 2}})

	c, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, []float32{4, 4, 10, 8}, c.Data())
}

func TestMul_RectangularShapes(t *testing.T) {
	t.Parallel()

	// (2x3) * (3x2) -> 2x2
	a := linalg.MustMatrix([][]int{{1, 2, 3}, {4, 5, 6}})
	b := linalg.MustMatrix([][]int{{7, 8}, {9, 10}, {11, 12}})

	c, err := a.Mul(b)
	require.NoError(t, err)
	r, cols := c.Size()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, cols)
	assert.Equal(t, []int{58, 64, 139, 154}, c.Data())
}

// TestMul_DimensionMismatch verifies inner dimensions are checked before computing.
func TestMul_DimensionMismatch(t *testing.T) {
	t.Parallel()

	a := linalg.MustMatrix([][]int{{1, 2, 3}})
	b := linalg.MustMatrix([][]int{{1, 2}, {3, 4}})

	c, err := a.Mul(b)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	assert.Nil(t, c)

	_, err = a.Mul(nil)
	require.ErrorIs(t, err, linalg.ErrNilMatrix)
}

func TestMul_Identity(t *testing.T) {
	t.Parallel()

	a := linalg.MustMatrix([][]float64{{1, 2, 3}, {4, 5, 6}})
	id, err := linalg.NewIdentity[float64](3)
	require.NoError(t, err)

	c, err := a.Mul(id)
	require.NoError(t, err)
	assert.True(t, c.Equal(a))
}

func TestMulVec(t *testing.T) {
	t.Parallel()

	m := linalg.MustMatrix([][]int{{1, 2}, {3, 4}, {5, 6}})
	v := linalg.MustVector(1, -1)

	got, err := m.MulVec(v)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, -1, -1}, got.Data())

	_, err = m.MulVec(linalg.MustVector(1, 2, 3))
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	_, err = m.MulVec(nil)
	require.ErrorIs(t, err, linalg.ErrNilVector)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	a := linalg.MustMatrix([][]float64{{1, 2}, {3, 4}})
	assert.Equal(t, []float64{1, 3, 2, 4}, a.Transpose().Data())

	r := linalg.MustMatrix([][]int{{1, 2, 3}})
	rt := r.Transpose()
	rows, cols := rt.Size()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 1, cols)
	assert.Equal(t, []int{1, 2, 3}, rt.Data())
}

func TestDeterminant(t *testing.T) {
	t.Parallel()

	d, err := linalg.MustMatrix([][]float64{{1, 2}, {3, 4}}).Determinant()
	require.NoError(t, err)
	assert.Equal(t, -2.0, d)

	di, err := linalg.MustMatrix([][]int{{4, 7}, {2, 6}}).Determinant()
	require.NoError(t, err)
	assert.Equal(t, 10, di)

	_, err = linalg.MustMatrix([][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}).Determinant()
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	_, err = linalg.MustMatrix([][]int{{1, 2}}).Determinant()
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

func TestToVector(t *testing.T) {
	t.Parallel()

	col := linalg.MustMatrix([][]int{{1}, {2}, {3}})
	v, err := col.ToVector()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, v.Data())

	// copy, not alias
	require.NoError(t, v.Set(0, 9))
	x, _ := col.At(0, 0)
	assert.Equal(t, 1, x)

	_, err = linalg.MustMatrix([][]int{{1, 2}, {3, 4}}).ToVector()
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

func TestRotation2D(t *testing.T) {
	t.Parallel()

	r := linalg.Rotation2D(math.Pi / 2)
	got, err := r.MulVec(linalg.MustVector(1.0, 0.0))
	require.NoError(t, err)
	assert.True(t, got.AllClose(linalg.MustVector(0.0, 1.0), linalg.WithEpsilon(1e-12)))

	det, err := r.Determinant()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, det, 1e-12)
}

func TestRotation3D_Axes(t *testing.T) {
	t.Parallel()

	x := linalg.MustVector(1.0, 0.0, 0.0)
	y := linalg.MustVector(0.0, 1.0, 0.0)
	z := linalg.MustVector(0.0, 0.0, 1.0)
	quarter := math.Pi / 2

	tests := []struct {
		name string
		rot  *linalg.Matrix[float64]
		in   *linalg.Vector[float64]
		want *linalg.Vector[float64]
	}{
		{"X maps y to z", linalg.RotationX(quarter), y, z},
		{"Y maps z to x", linalg.RotationY(quarter), z, x},
		{"Z maps x to y", linalg.RotationZ(quarter), x, y},
		{"X fixes x", linalg.RotationX(quarter), x, x},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.rot.MulVec(tc.in)
			require.NoError(t, err)
			assert.True(t, got.AllClose(tc.want, linalg.WithEpsilon(1e-12)), "got %v", got)
		})
	}
}

func TestRotation_Float32(t *testing.T) {
	t.Parallel()

	r := linalg.RotationZ(float32(math.Pi))
	got, err := r.MulVec(linalg.MustVector[float32](1, 0, 0))
	require.NoError(t, err)
	assert.True(t, got.AllClose(linalg.MustVector[float32](-1, 0, 0), linalg.WithEpsilon(1e-6)))
}
