// SPDX-License-Identifier: MIT

// Package probability provides two-event probability helpers and a Venn
// aggregator over named settheory sets.
//
// Probability is a plain float64. Complement and AOrB do not enforce the
// [0,1] range; call Validate when the inputs come from outside the program.
//
//	p := probability.Complement(0.25)     // 0.75
//	u := probability.AOrB(0.5, 0.4, 0.1)  // 0.8
//
// A Venn holds sets by name (first writer wins) and reports the cardinality
// of their union:
//
//	v := probability.NewVenn[int]()
//	v.AddSet("A", settheory.FromSlice([]int{2, 4, 6}))
//	v.AddSet("B", settheory.FromSlice([]int{2}))
//	n, _ := v.NElements() // 3
package probability
