// Command swissbench benchmarks this module's Map against a plain Go map
// and against several third-party Swiss-table implementations, in the
// style of nikgalushko/swisstable-bench.
package main

import (
	"flag"
	"fmt"

	cockroach "github.com/cockroachdb/swiss"
	crn4 "github.com/crn4/swiss"
	dolthub "github.com/dolthub/swiss"

	"github.com/go-swiss/swisstable"
)

// mapLike is the narrow interface every adapter below implements, matching
// nikgalushko/swisstable-bench/bench.go's Map[K, V] interface.
type mapLike[K comparable, V any] interface {
	Get(K) (V, bool)
	Set(K, V)
	Delete(K)
}

type builtinMap[K comparable, V any] struct{ m map[K]V }

func newBuiltinMap[K comparable, V any]() mapLike[K, V] {
	return &builtinMap[K, V]{m: make(map[K]V)}
}
func (a *builtinMap[K, V]) Get(k K) (V, bool) { v, ok := a.m[k]; return v, ok }
func (a *builtinMap[K, V]) Set(k K, v V)      { a.m[k] = v }
func (a *builtinMap[K, V]) Delete(k K)        { delete(a.m, k) }

type swissMap[K comparable, V any] struct{ m *swisstable.Map[K, V] }

func newSwissMap[K comparable, V any]() mapLike[K, V] {
	return &swissMap[K, V]{m: swisstable.NewMap[K, V]()}
}
func (a *swissMap[K, V]) Get(k K) (V, bool) { return a.m.Get(k) }
func (a *swissMap[K, V]) Set(k K, v V) {
	if !a.m.Add(k, v) {
		*a.m.FindOrInsert(k) = v
	}
}
func (a *swissMap[K, V]) Delete(k K) { a.m.Remove(k) }

type cockroachMap[K comparable, V any] struct{ m *cockroach.Map[K, V] }

func newCockroachMap[K comparable, V any]() mapLike[K, V] {
	return &cockroachMap[K, V]{m: cockroach.New[K, V](0)}
}
func (a *cockroachMap[K, V]) Get(k K) (V, bool) { return a.m.Get(k) }
func (a *cockroachMap[K, V]) Set(k K, v V)      { a.m.Put(k, v) }
func (a *cockroachMap[K, V]) Delete(k K)        { a.m.Delete(k) }

type crn4Map[K comparable, V any] struct{ m *crn4.Map[K, V] }

func newCRN4Map[K comparable, V any]() mapLike[K, V] {
	return &crn4Map[K, V]{m: crn4.New[K, V](0)}
}
func (a *crn4Map[K, V]) Get(k K) (V, bool) { return a.m.Get(k) }
func (a *crn4Map[K, V]) Set(k K, v V)      { a.m.Put(k, v) }
func (a *crn4Map[K, V]) Delete(k K)        { a.m.Delete(k) }

type dolthubMap[K comparable, V any] struct{ m *dolthub.Map[K, V] }

func newDolthubMap[K comparable, V any]() mapLike[K, V] {
	return &dolthubMap[K, V]{m: dolthub.NewMap[K, V](0)}
}
func (a *dolthubMap[K, V]) Get(k K) (V, bool) { return a.m.Get(k) }
func (a *dolthubMap[K, V]) Set(k K, v V)      { a.m.Put(k, v) }
func (a *dolthubMap[K, V]) Delete(k K)        { a.m.Delete(k) }

func main() {
	var (
		seed, size         uint64
		mapType            string
		keyType, valueType string
	)
	flag.Uint64Var(&seed, "seed", 1234, "seed value for the random dataset generator")
	flag.Uint64Var(&size, "dataset-size", 1_000_000, "number of elements in the dataset")
	flag.StringVar(&mapType, "map-type", "swiss", "std/swiss/cockroach/crn4/dolthub")
	flag.StringVar(&keyType, "key-type", "int", "int")
	flag.StringVar(&valueType, "value-type", "int", "int")
	flag.Parse()

	build := func() mapLike[int, int] { return newSwissMap[int, int]() }
	switch mapType {
	case "std":
		build = func() mapLike[int, int] { return newBuiltinMap[int, int]() }
	case "cockroach":
		build = func() mapLike[int, int] { return newCockroachMap[int, int]() }
	case "crn4":
		build = func() mapLike[int, int] { return newCRN4Map[int, int]() }
	case "dolthub":
		build = func() mapLike[int, int] { return newDolthubMap[int, int]() }
	}

	fmt.Printf("Running swissbench (map-type=%s, dataset-size=%d, seed=%d)\n", mapType, size, seed)
	b := newBench[int, int](size, seed, build)
	b.run()
}
