// SPDX-License-Identifier: MIT

package core

import "golang.org/x/exp/constraints"

// Float is the set of built-in floating-point kinds.
// Rotation constructors and norms are only defined over Float.
type Float interface {
	constraints.Float
}

// Number is the scalar bound for vectors, matrices and sets.
//
// Every Number supports + - * /, ordering, copy by value, a zero value as the
// additive identity and fmt rendering through %v.
type Number interface {
	constraints.Integer | constraints.Float
}
