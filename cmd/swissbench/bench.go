package main

import (
	"fmt"
	"runtime"
	"testing"

	"pgregory.net/rand"
)

type bench[K comparable, V any] struct {
	build  func() mapLike[K, V]
	keys   []int
	values []int
}

func newBench[K, V int](size, seed uint64, build func() mapLike[K, V]) bench[K, V] {
	b := bench[K, V]{build: build, keys: make([]int, size), values: make([]int, size)}
	r := rand.New(seed)
	for i := range size {
		b.keys[i] = r.Int()
		b.values[i] = r.Int()
	}
	return b
}

func (b *bench[K, V]) benchmarkInsert(t *testing.B) {
	for i := 0; t.Loop(); i++ {
		m := b.build()
		for i, key := range b.keys {
			m.Set(K(key), V(b.values[i]))
		}
	}
}

func (b *bench[K, V]) benchmarkLookup(t *testing.B) {
	m := b.build()
	for i, key := range b.keys {
		m.Set(K(key), V(b.values[i]))
	}
	t.ResetTimer()
	for i := 0; t.Loop(); i++ {
		_, _ = m.Get(K(b.keys[i%len(b.keys)]))
	}
}

func (b *bench[K, V]) benchmarkDelete(t *testing.B) {
	for i := 0; t.Loop(); i++ {
		t.StopTimer()
		m := b.build()
		for i, key := range b.keys {
			m.Set(K(key), V(b.values[i]))
		}
		t.StartTimer()
		for _, key := range b.keys {
			m.Delete(K(key))
		}
	}
}

func measureMemoryUsage() {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Printf("Memory Usage: Alloc = %v KB, Sys = %v KB, NumGC = %v\n", m.Alloc/1024, m.Sys/1024, m.NumGC)
}

func (b *bench[K, V]) run() {
	t := testing.Benchmark(b.benchmarkInsert)
	fmt.Printf("Insert: %v\n", t)

	t = testing.Benchmark(b.benchmarkLookup)
	fmt.Printf("Lookup: %v\n", t)

	t = testing.Benchmark(b.benchmarkDelete)
	fmt.Printf("Delete: %v\n", t)

	measureMemoryUsage()
}
