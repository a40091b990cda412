package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromCollect(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, From([]int{1, 2, 3}).Collect())
	assert.Empty(t, From([]int(nil)).Collect())
}

func TestFilter(t *testing.T) {
	out := From([]int{1, 2, 3, 4, 5}).Filter(func(v int) bool {
		return v%2 == 0
	}).Collect()
	assert.Equal(t, []int{2, 4}, out)
}

func TestAny(t *testing.T) {
	it := From([]string{"a", "b", "c"})
	assert.True(t, it.Any(func(v string) bool { return v == "b" }))
	assert.False(t, it.Any(func(v string) bool { return v == "z" }))
}

func TestFromMapSort(t *testing.T) {
	out := FromMap(map[string]int{"c": 3, "a": 1, "b": 2}).Sort(func(a, b int) bool {
		return a < b
	}).Collect()
	assert.Equal(t, []int{1, 2, 3}, out)
}

func TestSortIsStable(t *testing.T) {
	type pair struct{ k, v int }
	in := []pair{{1, 0}, {0, 1}, {1, 2}, {0, 3}}
	out := From(in).Sort(func(a, b pair) bool { return a.k < b.k }).Collect()
	assert.Equal(t, []pair{{0, 1}, {0, 3}, {1, 0}, {1, 2}}, out)
}
