// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - The single elementwise kernel shared by Vector and Matrix. Both types
//     own a flat []T buffer, so zip (cell-by-cell) and broadcast (cell-by-scalar)
//     are written once here and reached through composition.
//
// Design:
//   - ew* helpers are unexported micro-kernels; public methods validate shapes
//     and then delegate.
//   - dst may alias an input: that is how the in-place variants work.
//   - Division by an integer zero is rejected before the first write.
//
// Determinism:
//   - Flat 0..n-1 loop; no hidden allocations.

package linalg

import "github.com/katalvlaran/minmath/core"

// ewOp selects the arithmetic applied by the kernels.
type ewOp uint8

const (
	ewAdd ewOp = iota
	ewSub
	ewMul
	ewDiv
)

func (op ewOp) String() string {
	switch op {
	case ewAdd:
		return "+"
	case ewSub:
		return "-"
	case ewMul:
		return "*"
	case ewDiv:
		return "/"
	default:
		return "?"
	}
}

// ewFunc resolves op into a scalar function once, outside the hot loop.
func ewFunc[T core.Number](op ewOp) func(a, b T) T {
	switch op {
	case ewSub:
		return func(a, b T) T { return a - b }
	case ewMul:
		return func(a, b T) T { return a * b }
	case ewDiv:
		return func(a, b T) T { return a / b }
	default:
		return func(a, b T) T { return a + b }
	}
}

// ewZip computes dst[k] = a[k] op b[k] for k in 0..len(dst)-1.
// Lengths must already be validated equal by the caller.
//
// For ewDiv every divisor is checked first, so an integer zero anywhere in b
// leaves dst untouched.
//
// Complexity: O(n) time, O(1) extra space.
func ewZip[T core.Number](dst, a, b []T, op ewOp) error {
	if op == ewDiv {
		for k := range b {
			if err := core.CheckDivisor(b[k]); err != nil {
				return err
			}
		}
	}
	f := ewFunc[T](op)
	for k := range dst {
		dst[k] = f(a[k], b[k])
	}

	return nil
}

// ewBroadcast computes dst[k] = src[k] op s for k in 0..len(dst)-1.
// Returns ErrDivisionByZero (without writing) for op == ewDiv, integer T, s == 0.
//
// Complexity: O(n) time, O(1) extra space.
func ewBroadcast[T core.Number](dst, src []T, s T, op ewOp) error {
	if op == ewDiv {
		if err := core.CheckDivisor(s); err != nil {
			return err
		}
	}
	ewApply(dst, src, s, op)

	return nil
}

// ewApply computes dst[k] = src[k] op s for the ops that cannot fail
// (everything except ewDiv). Division must go through ewBroadcast.
func ewApply[T core.Number](dst, src []T, s T, op ewOp) {
	f := ewFunc[T](op)
	for k := range dst {
		dst[k] = f(src[k], s)
	}
}

// ewEqual reports exact cell equality. Lengths must match.
func ewEqual[T core.Number](a, b []T) bool {
	for k := range a {
		if a[k] != b[k] {
			return false
		}
	}

	return true
}

// ewAllClose checks |a-b| <= eps + rtol*|b| cell by cell in float64.
// NaN is never close to anything, matching IEEE comparisons.
func ewAllClose[T core.Number](a, b []T, o Options) bool {
	for k := range a {
		av, bv := core.ToFloat64(a[k]), core.ToFloat64(b[k])
		if av == bv { // covers equal infinities
			continue
		}
		diff, absb := core.Abs(av-bv), core.Abs(bv)
		if !(diff <= o.eps+o.rtol*absb) { // false for NaN
			return false
		}
	}

	return true
}

// ewDot returns sum(a[k]*b[k]) with the accumulator starting at T's zero value.
func ewDot[T core.Number](a, b []T) T {
	var sum T
	for k := range a {
		sum += a[k] * b[k]
	}

	return sum
}
