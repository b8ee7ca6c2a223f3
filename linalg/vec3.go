// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/minmath/core"
)

// Vec3 is a three-element vector value.
//
// The cross product only exists in three dimensions, so it lives on Vec3
// rather than on Vector: the restriction is enforced when a Vec3 is built
// (NewVec3 or Vector.Vec3), never inside Cross itself.
type Vec3[T core.Number] [3]T

// NewVec3 returns (x, y, z).
func NewVec3[T core.Number](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

// X returns the first component.
func (a Vec3[T]) X() T { return a[0] }

// Y returns the second component.
func (a Vec3[T]) Y() T { return a[1] }

// Z returns the third component.
func (a Vec3[T]) Z() T { return a[2] }

// Cross returns a × b:
//
//	(a.y*b.z - a.z*b.y, a.z*b.x - a.x*b.z, a.x*b.y - a.y*b.x)
func (a Vec3[T]) Cross(b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		a.Y()*b.Z() - a.Z()*b.Y(),
		a.Z()*b.X() - a.X()*b.Z(),
		a.X()*b.Y() - a.Y()*b.X(),
	}
}

// Dot returns a · b.
func (a Vec3[T]) Dot(b Vec3[T]) T { return ewDot(a[:], b[:]) }

// Neg returns -a.
func (a Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-a[0], -a[1], -a[2]} }

// Vector returns a heap Vector holding a copy of a.
func (a Vec3[T]) Vector() *Vector[T] {
	return &Vector[T]{data: []T{a[0], a[1], a[2]}}
}

// String renders like Vector.String with N = 3.
func (a Vec3[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, _fmtVecHeader, 3)
	writeList(&b, a[:])

	return b.String()
}
