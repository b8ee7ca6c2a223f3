// SPDX-License-Identifier: MIT

// Package core defines the numeric trait bound shared by every minmath package
// and the small set of scalar helpers built on top of it.
//
// What lives here:
//   - Number, Float: type-set constraints (golang.org/x/exp/constraints)
//     describing which scalar kinds Vector, Matrix and Set accept.
//   - CheckDivisor: the single division policy of the module.
//   - Abs, ToFloat64: helpers used by tolerance comparisons (linalg AllClose).
//   - IsFinite: range checks for tolerances and configuration.
//
// Division policy:
//
//	integer scalars: x / 0 is rejected with ErrDivisionByZero (checked before
//	                 any element is touched by callers).
//	float scalars:   x / 0 follows IEEE-754 and yields ±Inf or NaN.
//
// Integer overflow wraps, as Go defines for fixed-size integers.
package core
