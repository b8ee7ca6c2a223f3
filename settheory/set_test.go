// SPDX-License-Identifier: MIT

package settheory_test

import (
	"testing"

	"github.com/katalvlaran/minmath/settheory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Empty(t *testing.T) {
	t.Parallel()

	s := settheory.New[uint8]()
	assert.Equal(t, 0, s.Cardinality())
	assert.Equal(t, "S = {}", s.String())
}

func TestAddElement(t *testing.T) {
	t.Parallel()

	s := settheory.New[uint8]()
	s.AddElement(4)
	assert.Equal(t, 1, s.Cardinality())
	assert.True(t, s.Equal(settheory.FromSlice([]uint8{4})))
}

// TestAddElement_Idempotent checks adding the same element twice keeps cardinality 1.
func TestAddElement_Idempotent(t *testing.T) {
	t.Parallel()

	s := settheory.New[int]()
	s.AddElement(7)
	s.AddElement(7)
	assert.Equal(t, 1, s.Cardinality())
}

// TestAddElement_KeepsOrder checks the ascending invariant after unordered inserts.
func TestAddElement_KeepsOrder(t *testing.T) {
	t.Parallel()

	s := settheory.New[float64]()
	for _, e := range []float64{3.5, -1, 2, 3.5, 0} {
		s.AddElement(e)
	}
	assert.Equal(t, []float64{-1, 0, 2, 3.5}, s.Elements())
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(5))
}

func TestFromSlice_SortsAndDedups(t *testing.T) {
	t.Parallel()

	in := []int{5, 1, 5, 3, 1}
	s := settheory.FromSlice(in)
	assert.Equal(t, []int{1, 3, 5}, s.Elements())
	assert.Equal(t, []int{5, 1, 5, 3, 1}, in, "input must not be reordered")

	assert.Equal(t, 0, settheory.FromSlice[int](nil).Cardinality())
}

func TestOr(t *testing.T) {
	t.Parallel()

	a := settheory.FromSlice([]int{2, 4, 6})
	b := settheory.FromSlice([]int{2})

	u := a.Or(b)
	require.Equal(t, 3, u.Cardinality())
	assert.Equal(t, []int{2, 4, 6}, u.Elements())

	c := settheory.FromSlice([]int{1, 7})
	assert.Equal(t, []int{1, 2, 4, 6, 7}, a.Or(c).Elements())
}

func TestAnd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []int
		want []int
	}{
		{"overlap", []int{1, 2, 3, 4}, []int{3, 4, 5}, []int{3, 4}},
		{"disjoint", []int{1, 2}, []int{3, 4}, []int{}},
		{"subset", []int{2, 4, 6}, []int{2}, []int{2}},
		{"empty left", nil, []int{1}, []int{}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := settheory.FromSlice(tc.a).And(settheory.FromSlice(tc.b))
			assert.Equal(t, tc.want, got.Elements())
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	s := settheory.FromSlice([]int{6, 2, 4})
	assert.Equal(t, "S = {2,4,6}", s.String())

	s.Name = "A"
	assert.Equal(t, "A = {2,4,6}", s.String())
}

// TestClone_Independent checks a clone keeps the name and shares no storage.
func TestClone_Independent(t *testing.T) {
	t.Parallel()

	s := settheory.FromSlice([]int{1, 2})
	s.Name = "A"
	cl := s.Clone()
	cl.AddElement(3)

	assert.Equal(t, "A = {1,2,3}", cl.String())
	assert.Equal(t, "A = {1,2}", s.String())
}
