package hash

import "github.com/dolthub/maphash"

// Generic returns a hasher for an arbitrary comparable key type K. Common
// scalar key types get a dedicated fast path (Number/String in hash.go);
// anything else -- structs, arrays, interfaces holding comparable values --
// falls back to github.com/dolthub/maphash's reflection-derived hasher,
// the same library flier/goutil's arena Swiss map uses for this purpose.
//
// This is the default hasher [swisstable.NewSet] and [swisstable.NewMap]
// use when the caller does not supply one via WithHasher.
func Generic[K comparable]() func(K) uint64 {
	var zero K
	switch any(zero).(type) {
	case string:
		h := String()
		return func(k K) uint64 { return h(any(k).(string)) }
	case []byte:
		h := Bytes()
		return func(k K) uint64 {
			b, _ := any(k).([]byte)
			return h(b)
		}
	case int:
		return numberHasher[K, int]()
	case int8:
		return numberHasher[K, int8]()
	case int16:
		return numberHasher[K, int16]()
	case int32:
		return numberHasher[K, int32]()
	case int64:
		return numberHasher[K, int64]()
	case uint:
		return numberHasher[K, uint]()
	case uint8:
		return numberHasher[K, uint8]()
	case uint16:
		return numberHasher[K, uint16]()
	case uint32:
		return numberHasher[K, uint32]()
	case uint64:
		return numberHasher[K, uint64]()
	case uintptr:
		return numberHasher[K, uintptr]()
	default:
		h := maphash.NewHasher[K]()
		return func(k K) uint64 { return h.Hash(k) }
	}
}

// numberHasher builds a Number[N] hasher and adapts it to operate on K,
// where K and N share an underlying representation (the case selected by
// Generic's type switch on the zero value of K).
func numberHasher[K comparable, N IntType]() func(K) uint64 {
	h := Number[N]()
	return func(k K) uint64 { return h(any(k).(N)) }
}
