// SPDX-License-Identifier: MIT

// Package worksheet evaluates declarative YAML worksheets against the minmath
// library.
//
// A worksheet names its operands up front and lists steps to run in order.
// Every step reads operands by name and may store its result under a new
// name with "as", so later steps can refer to it.
//
//	matrices:
//	  A: [[4, 3, -2], [0, 2, 1], [0, 3, 1]]
//	vectors:
//	  u: [1, 2, 3]
//	  v: [4, 5, 6]
//	sets:
//	  S1: [2, 4, 6]
//	  S2: [2]
//	steps:
//	  - {op: add_scalar, args: [A], scalar: 5, as: B}
//	  - {op: cross, args: [u, v], as: w}
//	  - {op: union, args: [S1, S2], as: U}
//	  - {op: cardinality, args: [U]}
//	  - {op: a_or_b, values: [0.5, 0.4, 0.1]}
//
// Matrices and vectors hold float64, sets hold int64. Operand names share a
// single namespace.
package worksheet
