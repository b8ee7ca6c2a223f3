// SPDX-License-Identifier: MIT

package settheory

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/minmath/core"
)

// DefaultName is the display name given to new sets.
const DefaultName = "S"

// Set is a sorted, duplicate-free sequence of numbers.
//
// Invariant: elements is strictly ascending. Every mutator restores it before
// returning.
type Set[T core.Number] struct {
	// Name is used only by String.
	Name string

	elements []T
}

var _ fmt.Stringer = (*Set[int])(nil)

// New returns an empty set.
func New[T core.Number]() *Set[T] {
	return &Set[T]{Name: DefaultName}
}

// FromSlice builds a set from an unordered sequence: it sorts a copy of xs,
// then drops adjacent duplicates. xs itself is not modified.
func FromSlice[T core.Number](xs []T) *Set[T] {
	elems := slices.Clone(xs)
	slices.Sort(elems)
	elems = slices.Compact(elems)

	return &Set[T]{Name: DefaultName, elements: elems}
}

// Cardinality returns the number of distinct elements.
func (s *Set[T]) Cardinality() int { return len(s.elements) }

// Contains reports membership by equality scan.
func (s *Set[T]) Contains(e T) bool {
	return slices.Contains(s.elements, e)
}

// AddElement inserts e unless it is already present, then re-sorts.
// Adding a present element is a no-op.
func (s *Set[T]) AddElement(e T) {
	if s.Contains(e) {
		return
	}
	s.elements = append(s.elements, e)
	slices.Sort(s.elements)
}

// Elements returns the members in ascending order (copy).
func (s *Set[T]) Elements() []T { return slices.Clone(s.elements) }

// Clone returns an independent copy of s, name included.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{Name: s.Name, elements: slices.Clone(s.elements)}
}

// Or returns the union of s and o: merge, sort, dedup.
// Both operands are treated as already-deduplicated sets.
func (s *Set[T]) Or(o *Set[T]) *Set[T] {
	merged := make([]T, 0, len(s.elements)+len(o.elements))
	merged = append(merged, s.elements...)
	merged = append(merged, o.elements...)
	slices.Sort(merged)

	return &Set[T]{Name: DefaultName, elements: slices.Compact(merged)}
}

// And returns the intersection: elements of s that are also in o.
// Both inputs are sorted, so a single merge walk suffices.
func (s *Set[T]) And(o *Set[T]) *Set[T] {
	out := make([]T, 0, min(len(s.elements), len(o.elements)))
	i, j := 0, 0
	for i < len(s.elements) && j < len(o.elements) {
		switch a, b := s.elements[i], o.elements[j]; {
		case a < b:
			i++
		case a > b:
			j++
		default:
			out = append(out, a)
			i++
			j++
		}
	}

	return &Set[T]{Name: DefaultName, elements: out}
}

// Equal reports whether s and o hold the same elements. Names are ignored.
func (s *Set[T]) Equal(o *Set[T]) bool {
	return slices.Equal(s.elements, o.elements)
}

// String renders "Name = {e1,e2,...}" in ascending order.
func (s *Set[T]) String() string {
	parts := make([]string, len(s.elements))
	for i, e := range s.elements {
		parts[i] = fmt.Sprint(e)
	}

	return fmt.Sprintf("%s = {%s}", s.Name, strings.Join(parts, ","))
}
