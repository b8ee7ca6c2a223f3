// SPDX-License-Identifier: MIT

package probability

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/minmath/core"
	"github.com/katalvlaran/minmath/settheory"
	"github.com/samber/lo"
)

const opNElements = "NElements"

// Venn holds named sets. A name, once added, is never overwritten.
// Sets are copied on the way in and on the way out. The zero value is an
// empty Venn ready to use.
type Venn[T core.Number] struct {
	sets map[string]*settheory.Set[T]
}

// NewVenn returns an empty aggregator.
func NewVenn[T core.Number]() *Venn[T] {
	return &Venn[T]{sets: make(map[string]*settheory.Set[T])}
}

// AddSet stores a copy of s under name and reports whether it was stored.
// If name is already present the existing set is kept and AddSet returns false.
// A nil set is stored as an empty one.
func (v *Venn[T]) AddSet(name string, s *settheory.Set[T]) bool {
	if _, ok := v.sets[name]; ok {
		return false
	}
	if v.sets == nil {
		v.sets = make(map[string]*settheory.Set[T])
	}
	if s == nil {
		s = settheory.New[T]()
	}
	v.sets[name] = s.Clone()

	return true
}

// Names returns the stored set names in ascending order.
func (v *Venn[T]) Names() []string {
	names := lo.Keys(v.sets)
	slices.Sort(names)

	return names
}

// Set returns a copy of the set stored under name.
func (v *Venn[T]) Set(name string) (*settheory.Set[T], bool) {
	s, ok := v.sets[name]
	if !ok {
		return nil, false
	}

	return s.Clone(), true
}

// Len returns the number of stored sets.
func (v *Venn[T]) Len() int { return len(v.sets) }

// NElements returns the cardinality of the union of all stored sets.
// It fails with ErrNoSets when nothing has been added.
func (v *Venn[T]) NElements() (int, error) {
	if len(v.sets) == 0 {
		return 0, fmt.Errorf("%s: %w", opNElements, ErrNoSets)
	}

	names := v.Names()
	first := v.sets[names[0]]
	union := lo.Reduce(names[1:], func(acc *settheory.Set[T], name string, _ int) *settheory.Set[T] {
		return acc.Or(v.sets[name])
	}, first)

	return union.Cardinality(), nil
}
