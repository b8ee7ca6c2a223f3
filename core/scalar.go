// SPDX-License-Identifier: MIT

package core

import "math"

// IsIntegral reports whether T is an integer kind.
// Detection relies on truncation: 1/2 is zero only for integers.
func IsIntegral[T Number]() bool {
	one, two := T(1), T(2)

	return one/two == 0
}

// CheckDivisor validates b as a divisor for T under the module policy.
// Returns ErrDivisionByZero when T is an integer kind and b == 0; nil otherwise.
// Complexity: O(1).
func CheckDivisor[T Number](b T) error {
	if b == 0 && IsIntegral[T]() {
		return ErrDivisionByZero
	}

	return nil
}

// Abs returns |x|. For the minimum signed integer the result wraps, as in Go.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// ToFloat64 widens x to float64 for tolerance checks and norms.
func ToFloat64[T Number](x T) float64 {
	return float64(x)
}

// IsFinite reports whether x is neither NaN nor ±Inf. Integers are always finite.
func IsFinite[T Number](x T) bool {
	f := float64(x)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
