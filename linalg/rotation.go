// SPDX-License-Identifier: MIT

package linalg

import (
	"math"

	"github.com/katalvlaran/minmath/core"
)

// Rotation matrices. Angles are in radians; rotations are counter-clockwise
// (right-handed) when looking from the positive axis toward the origin.
// Only float scalar kinds are accepted: sin/cos of an integer angle has no
// meaningful integer result.

func sincos[T core.Float](theta T) (s, c T) {
	sf, cf := math.Sincos(float64(theta))

	return T(sf), T(cf)
}

// Rotation2D returns
//
//	[cos θ  -sin θ]
//	[sin θ   cos θ]
func Rotation2D[T core.Float](theta T) *Matrix[T] {
	s, c := sincos(theta)

	return &Matrix[T]{r: 2, c: 2, data: []T{
		c, -s,
		s, c,
	}}
}

// RotationX returns the 3×3 rotation about the X axis.
func RotationX[T core.Float](theta T) *Matrix[T] {
	s, c := sincos(theta)

	return &Matrix[T]{r: 3, c: 3, data: []T{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}}
}

// RotationY returns the 3×3 rotation about the Y axis.
func RotationY[T core.Float](theta T) *Matrix[T] {
	s, c := sincos(theta)

	return &Matrix[T]{r: 3, c: 3, data: []T{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}}
}

// RotationZ returns the 3×3 rotation about the Z axis.
func RotationZ[T core.Float](theta T) *Matrix[T] {
	s, c := sincos(theta)

	return &Matrix[T]{r: 3, c: 3, data: []T{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}}
}
