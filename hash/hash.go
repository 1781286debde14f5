// Package hash provides the default hash(value) -> u64 functions used by
// [swisstable.Set] and [swisstable.Map] when no [swisstable.WithHasher] is
// given. The numeric/string hashers are a direct adaptation of
// db47h/cache/hash; Generic (for arbitrary comparable keys, including
// structs) wraps github.com/dolthub/maphash, the same library
// flier/goutil's arena Swiss map uses for the same purpose.
package hash

import (
	"hash/maphash"
	"math/bits"
	"math/rand/v2"
	"unsafe"
)

var hashkey = [...]uint64{rand.Uint64(), rand.Uint64()}

// String returns a hasher for string keys, seeded once per call so that
// distinct Set/Map instances do not share a hash-flooding-prone seed.
func String() func(string) uint64 {
	seed := maphash.MakeSeed()
	return func(s string) uint64 {
		return maphash.String(seed, s)
	}
}

// Bytes returns a hasher for []byte keys.
func Bytes() func([]byte) uint64 {
	seed := maphash.MakeSeed()
	return func(b []byte) uint64 {
		return maphash.Bytes(seed, b)
	}
}

// IntType constrains the key types [Number] accepts.
type IntType interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number returns a hasher for a fixed-width integer key type, inspired by
// https://github.com/Nicoshev/rapidhash -- avoiding reflection or a
// byte-buffer round trip for the common case of small scalar keys.
func Number[T IntType]() func(v T) uint64 {
	seed := rand.Uint64()
	var zero T
	seed ^= mix(seed^hashkey[0], hashkey[1]) ^ uint64(unsafe.Sizeof(zero))
	return func(v T) uint64 {
		var a, b uint64
		b = uint64(v)
		if unsafe.Sizeof(v) <= 4 {
			b |= b << 32
			a = b
		} else {
			a = bits.RotateLeft64(b, 32)
		}
		b, a = bits.Mul64(a^hashkey[1], b^seed)
		return mix(a^hashkey[0]^uint64(unsafe.Sizeof(v)), b^hashkey[1])
	}
}

func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}
