package swisstable

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_Add(t *testing.T) {
	tests := []struct {
		key, value int
	}{
		{1, 2},
		{3, 4},
		{8, 1e9},
		{1e6, 1e10},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("add key %d", tt.key), func(t *testing.T) {
			m := NewMap[int, int]()

			added := m.Add(tt.key, tt.value)
			require.True(t, added)
			assert.Equal(t, 1, m.Len())

			// adding the same key again must not overwrite the value.
			added = m.Add(tt.key, tt.value+1)
			assert.False(t, added)
			v, ok := m.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.value, v)
		})
	}
}

func TestMap_Get(t *testing.T) {
	tests := []struct {
		key, value int
	}{
		{1, 2},
		{8, 8},
		{1e6, 1e10},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("get key %d", tt.key), func(t *testing.T) {
			m := NewMap[int, int]()
			m.Add(tt.key, tt.value)

			gotV, gotOk := m.Get(tt.key)
			require.True(t, gotOk)
			assert.Equal(t, tt.value, gotV)

			gotV, gotOk = m.Get(1e12)
			assert.False(t, gotOk)
			assert.Zero(t, gotV)
		})
	}
}

func TestMap_FindOrInsert(t *testing.T) {
	m := NewMap[string, int]()

	p := m.FindOrInsert("a")
	*p = 1
	require.Equal(t, 1, m.Len())

	// second call against an existing key returns a handle to the same slot.
	p2 := m.FindOrInsert("a")
	assert.Equal(t, 1, *p2)
	*p2 = 2

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestMap_Remove(t *testing.T) {
	m := NewMap[int, int]()
	for i := 0; i < 100; i++ {
		m.Add(i, i*i)
	}
	for i := 0; i < 100; i += 2 {
		removed := m.Remove(i)
		require.True(t, removed)
	}
	assert.Equal(t, 50, m.Len())
	for i := 0; i < 100; i++ {
		_, ok := m.Get(i)
		assert.Equal(t, i%2 != 0, ok)
	}
	assert.False(t, m.Remove(1000))
}

func TestMap_RemoveAndShrink(t *testing.T) {
	m := NewMap[int, int]()
	for i := 0; i < 10_000; i++ {
		m.Add(i, i)
	}
	before := m.t.capacity()
	for i := 0; i < 9_000; i++ {
		m.RemoveAndShrink(i)
	}
	after := m.t.capacity()
	assert.Less(t, after, before)
	assert.Equal(t, 1000, m.Len())
}

func TestMap_ForceFill(t *testing.T) {
	tests := []struct {
		key, value int
	}{
		{1, 2},
		{8, 8},
		{1e6, 1e10},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("fill around key %d", tt.key), func(t *testing.T) {
			size := 10_000
			m := NewMap[int, int](WithCapacity[kv[int, int]](size))

			underlyingBuckets := m.t.numBuckets
			t.Logf("adding elements to a table with %d underlying buckets", underlyingBuckets)

			for i := 0; i < 100; i++ {
				for j := 1000; j < 1000+m.t.capacity(); j++ {
					m.Add(j, j)
				}
			}

			missingKey := 1e12
			gotV, gotOk := m.Get(missingKey)
			assert.False(t, gotOk)
			assert.Zero(t, gotV)
		})
	}
}

// TestMap_AddRemoveChurn is a structural stress test that repeatedly adds
// and removes overlapping key ranges so that tombstones accumulate and
// both resize paths (grow and in-place rehash) get exercised.
func TestMap_AddRemoveChurn(t *testing.T) {
	m := NewMap[int, int]()
	mirror := make(map[int]int)

	for round := 0; round < 20; round++ {
		for i := round * 100; i < round*100+500; i++ {
			m.Add(i, i*2)
			mirror[i] = i * 2
		}
		for i := round * 100; i < round*100+250; i++ {
			m.Remove(i)
			delete(mirror, i)
		}
	}

	require.Equal(t, len(mirror), m.Len())
	for k, want := range mirror {
		got, ok := m.Get(k)
		require.True(t, ok, "key %d missing", k)
		assert.Equal(t, want, got)
	}
}

// TestMap_StructKey exercises the reflection-derived fallback in
// hash.Generic for key types with no dedicated fast path.
func TestMap_StructKey(t *testing.T) {
	type point struct{ x, y int }

	m := NewMap[point, string]()
	m.Add(point{1, 2}, "a")
	m.Add(point{3, 4}, "b")

	got, ok := m.Get(point{1, 2})
	require.True(t, ok)
	assert.Equal(t, "a", got)

	if diff := cmp.Diff("b", mustGet(t, m, point{3, 4})); diff != "" {
		t.Errorf("Map.Get mismatch (-want +got):\n%s", diff)
	}
}

func mustGet[K comparable, V any](t *testing.T, m *Map[K, V], k K) V {
	t.Helper()
	v, ok := m.Get(k)
	require.True(t, ok)
	return v
}

func BenchmarkMap_Add1K_Int(b *testing.B) {
	keys := make([]int, 1000)
	for i := range keys {
		keys[i] = i
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := NewMap[int, int]()
		for _, k := range keys {
			m.Add(k, k)
		}
	}
}

func BenchmarkMap_Get1K_Int(b *testing.B) {
	m := NewMap[int, int]()
	keys := make([]int, 1000)
	for i := range keys {
		keys[i] = i
		m.Add(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Get(keys[i%len(keys)])
	}
}
