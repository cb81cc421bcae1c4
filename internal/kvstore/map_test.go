package kvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeatedKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		occurrence int
		expected   string
	}{
		{"Keyword", 1, "Keyword"},
		{"Keyword", 2, "Keyword #2"},
		{"Damage Type", 3, "Damage Type #3"},
		{"Property", 10, "Property #10"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, RepeatedKey(tt.name, tt.occurrence))
		})
	}
}

func TestRepeatedKey_ZeroBasedPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { RepeatedKey("Keyword", 0) })
}

func TestMap_PutDisambiguates(t *testing.T) {
	t.Parallel()

	m := New[string]()

	assert.Equal(t, "K", m.Put("K", "a"))
	assert.Equal(t, "K #2", m.Put("K", "b"))
	assert.Equal(t, "K #3", m.Put("K", "c"))

	require.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"K", "K #2", "K #3"}, m.Keys())

	v, ok := m.Get("K #2")
	require.True(t, ok)
	assert.Equal(t, "b", v)

	assert.Equal(t, []string{"a", "b", "c"}, Probe(m, "K"))
}

func TestMap_IndependentKeys(t *testing.T) {
	t.Parallel()

	m := New[int]()
	m.Put("A", 1)
	m.Put("B", 2)
	m.Put("A", 3)

	assert.Equal(t, []string{"A", "B", "A #2"}, m.Keys())
	assert.Equal(t, []int{1, 3}, Probe(m, "A"))
	assert.Equal(t, []int{2}, Probe(m, "B"))
	assert.Empty(t, Probe(m, "C"))
}

func TestMap_LiteralSuffixCollision(t *testing.T) {
	t.Parallel()

	m := New[string]()
	m.Put("K", "a")
	m.Put("K #2", "literal")
	stored := m.Put("K", "b")

	assert.Equal(t, "K #3", stored)

	v, _ := m.Get("K #2")
	assert.Equal(t, "literal", v)

	// the literal is never overwritten and reads as part of the K sequence
	assert.Equal(t, []string{"a", "literal", "b"}, Probe(m, "K"))
}

func TestMap_PutAllAppliesRulePerEntry(t *testing.T) {
	t.Parallel()

	src := New[string]()
	src.Put("K", "a")
	src.Put("X", "x")

	dst := New[string]()
	dst.Put("K", "first")
	dst.PutAll(src)

	assert.Equal(t, []string{"K", "K #2", "X"}, dst.Keys())
	assert.Equal(t, []string{"first", "a"}, Probe(dst, "K"))
}

func TestMap_NilSafe(t *testing.T) {
	t.Parallel()

	var m *Map[string]

	_, ok := m.Get("K")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Keys())
	assert.Empty(t, Probe(m, "K"))
}

func TestMap_RangeStopsEarly(t *testing.T) {
	t.Parallel()

	m := New[int]()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)

	var visited []string

	m.Range(func(key string, _ int) bool {
		visited = append(visited, key)
		return key != "b"
	})

	assert.Equal(t, []string{"a", "b"}, visited)
}
