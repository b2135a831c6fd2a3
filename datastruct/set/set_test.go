package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddRemove(t *testing.T) {
	s := NewHashSet("a", "b", "a")
	assert.Equal(t, 2, s.Size())
	assert.True(t, s.Add("c"))
	assert.False(t, s.Add("c"))
	assert.True(t, s.Contains("c"))

	assert.True(t, s.Remove("a"))
	assert.False(t, s.Remove("a"))
	assert.False(t, s.Contains("a"))
	assert.ElementsMatch(t, []string{"b", "c"}, s.Members())
}

func TestSetAlgebra(t *testing.T) {
	s1 := NewHashSet(1, 2, 3, 4)
	s2 := NewHashSet(3, 4, 5)

	assert.ElementsMatch(t, []int{3, 4}, s1.Intersect(s2).Members())
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5}, s1.Union(s2).Members())
	assert.ElementsMatch(t, []int{1, 2}, s1.Diff(s2).Members())
	assert.ElementsMatch(t, []int{5}, s2.Diff(s1).Members())
	assert.Equal(t, 0, s1.Intersect(NewHashSet[int]()).Size())
}

func TestForEachStops(t *testing.T) {
	s := NewHashSet(1, 2, 3, 4, 5)
	seen := 0
	s.ForEach(func(int) bool {
		seen++
		return seen < 2
	})
	assert.Equal(t, 2, seen)
}

func TestSetAlgebraLeavesOperandsUntouched(t *testing.T) {
	small := NewHashSet("a")
	large := NewHashSet("a", "b", "c")

	assert.ElementsMatch(t, []string{"a"}, large.Intersect(small).Members())
	assert.ElementsMatch(t, []string{"a"}, small.Intersect(large).Members())
	assert.ElementsMatch(t, []string{"a", "b", "c"}, small.Union(large).Members())

	diff := large.Diff(NewHashSet[string]())
	assert.ElementsMatch(t, []string{"a", "b", "c"}, diff.Members())
	diff.Remove("a")
	assert.True(t, large.Contains("a"))

	union := large.Union(small)
	union.Add("d")
	assert.False(t, large.Contains("d"))
	assert.Equal(t, 1, small.Size())
	assert.Equal(t, 3, large.Size())
}

func TestClone(t *testing.T) {
	s := NewHashSet(1, 2)
	c := s.Clone()
	c.Add(3)
	assert.ElementsMatch(t, []int{1, 2}, s.Members())
	assert.ElementsMatch(t, []int{1, 2, 3}, c.Members())
}
