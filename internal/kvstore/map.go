package kvstore

import "fmt"

// Map is an insertion-ordered map that never overwrites: a repeated key is
// stored under a generated "<key> #N" name.
type Map[V any] struct {
	values map[string]V
	order  []string
	seen   map[string]int // occurrences per original key
}

// New creates an empty Map.
func New[V any]() *Map[V] {
	return &Map[V]{
		values: make(map[string]V),
		seen:   make(map[string]int),
	}
}

// RepeatedKey returns the stored key for the given 1-based occurrence of name.
// The first occurrence keeps the bare name.
func RepeatedKey(name string, occurrence int) string {
	if occurrence < 1 {
		panic(fmt.Sprintf("kvstore: occurrence must be 1-based, got %d", occurrence))
	}

	if occurrence == 1 {
		return name
	}

	return fmt.Sprintf("%s #%d", name, occurrence)
}

// Put stores value under key, or under a disambiguated key when key has been
// put before. It returns the key actually used.
func (m *Map[V]) Put(key string, value V) string {
	m.seen[key]++
	stored := RepeatedKey(key, m.seen[key])

	// A literal "K #2" in the input followed by a second "K" would collide;
	// keep bumping until the slot is free.
	for {
		if _, taken := m.values[stored]; !taken {
			break
		}

		m.seen[key]++
		stored = RepeatedKey(key, m.seen[key])
	}

	m.values[stored] = value
	m.order = append(m.order, stored)

	return stored
}

// PutAll applies Put to every entry of other, in other's insertion order.
func (m *Map[V]) PutAll(other *Map[V]) {
	if other == nil {
		return
	}

	for _, k := range other.order {
		m.Put(k, other.values[k])
	}
}

// Get returns the value stored under the exact key.
func (m *Map[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}

	v, ok := m.values[key]

	return v, ok
}

// Len returns the number of stored entries.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}

	return len(m.order)
}

// Keys returns the stored keys in insertion order.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}

	return append([]string(nil), m.order...)
}

// Range calls fn for each entry in insertion order until fn returns false.
func (m *Map[V]) Range(fn func(key string, value V) bool) {
	if m == nil {
		return
	}

	for _, k := range m.order {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// Probe returns the values stored for name, name #2, name #3, ... in order,
// stopping at the first absent occurrence.
func Probe[V any](m *Map[V], name string) []V {
	var out []V

	for i := 1; ; i++ {
		v, ok := m.Get(RepeatedKey(name, i))
		if !ok {
			return out
		}

		out = append(out, v)
	}
}
