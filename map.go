package swisstable

import "github.com/go-swiss/swisstable/hash"

// kv is the entry type a [Map] stores, paired with a context that
// hashes/equates by key only. No function in this file ever reads the
// value field of a kv built only to probe for a key (e.g. inside
// Get/Remove).
type kv[K comparable, V any] struct {
	key   K
	value V
}

// Map adapts a set of (K,V) pairs to a key-addressed map: a thin
// reinterpretation of [Set] keyed on K.
type Map[K comparable, V any] struct {
	t *table[kv[K, V]]
}

// NewMap constructs an empty Map. By default keys are hashed with
// hash.Generic[K] and compared with ==.
func NewMap[K comparable, V any](opts ...Option[kv[K, V]]) *Map[K, V] {
	hasher := hash.Generic[K]()
	ctx := buildContext[kv[K, V]](
		func(p kv[K, V]) uint64 { return hasher(p.key) },
		func(a, b kv[K, V]) bool { return a.key == b.key },
		opts,
	)
	return &Map[K, V]{t: newTable(ctx)}
}

// Add inserts k with value v, reporting true iff k was not already present.
// Unlike a plain Go map assignment, Add never overwrites an existing key's
// value -- use FindOrInsert or GetMut for that.
func (m *Map[K, V]) Add(k K, v V) bool {
	_, inserted := m.t.add(kv[K, V]{key: k, value: v})
	return inserted
}

// FindOrInsert returns a handle to k's value, inserting a zero-valued V
// first if k was absent. The handle is valid until the next mutation of
// the map: it is always computed after any resize the insert may have
// triggered.
func (m *Map[K, V]) FindOrInsert(k K) *V {
	idx, _ := m.t.add(kv[K, V]{key: k})
	return &m.t.entries[idx].value
}

// Get returns k's value and true if present, or the zero value and false.
func (m *Map[K, V]) Get(k K) (V, bool) {
	idx, ok := m.t.find(kv[K, V]{key: k})
	if !ok {
		var zero V
		return zero, false
	}
	return m.t.entries[idx].value, true
}

// GetMut returns a mutable handle to k's value, like FindOrInsert but
// without inserting when k is absent.
func (m *Map[K, V]) GetMut(k K) (*V, bool) {
	idx, ok := m.t.find(kv[K, V]{key: k})
	if !ok {
		return nil, false
	}
	return &m.t.entries[idx].value, true
}

// Contains reports whether k is present.
func (m *Map[K, V]) Contains(k K) bool {
	_, ok := m.t.find(kv[K, V]{key: k})
	return ok
}

// Remove deletes k, reporting true iff it was present.
func (m *Map[K, V]) Remove(k K) bool {
	return m.t.remove(kv[K, V]{key: k})
}

// RemoveAndShrink deletes k like Remove, then immediately Trims.
func (m *Map[K, V]) RemoveAndShrink(k K) bool {
	ok := m.t.remove(kv[K, V]{key: k})
	if ok {
		m.t.trim()
	}
	return ok
}

// Trim shrinks the map's backing storage to fit its current length.
func (m *Map[K, V]) Trim() {
	m.t.trim()
}

// Len returns the number of entries currently in the map.
func (m *Map[K, V]) Len() int {
	return m.t.length
}
