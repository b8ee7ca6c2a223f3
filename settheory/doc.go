// SPDX-License-Identifier: MIT

// Package settheory provides Set, an ordered and deduplicated collection of
// numeric elements with the two boolean-algebra operations Or (union) and
// And (intersection).
//
// Elements are always kept in ascending order and never repeat. A Set is built
// either incrementally with AddElement or in bulk with FromSlice, which sorts
// and removes duplicates.
//
//	a := settheory.FromSlice([]int{6, 2, 4, 2})
//	b := settheory.FromSlice([]int{2})
//	a.Or(b).Cardinality() // 3
//	fmt.Println(a)        // S = {2,4,6}
package settheory
