package hashmap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// A Hasher maps a key to a bucket-selecting hash. Keys that are equal under ==
// must hash to the same value for as long as a map uses the hasher; unequal
// keys may collide.
type Hasher[K any] func(key K) uint64

// ComparableHasher returns a hasher for any comparable type, seeded once when
// it is created. Hashes are not stable across processes.
func ComparableHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}

// StringHasher hashes a string with xxhash. Unlike ComparableHasher the result
// is the same in every process.
func StringHasher(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Uint32Hasher hashes the four bytes of key, least significant first.
func Uint32Hasher(key uint32) uint64 {
	// https://stackoverflow.com/questions/7666509/hash-function-for-string
	// djb2 but multiply by 17000069 rather than 33
	var h = uint32(5381)
	k := uint32(17000069)
	h = (h * k) + (key & 0xff)
	h = (h * k) + ((key >> 8) & 0xff)
	h = (h * k) + ((key >> 16) & 0xff)
	h = (h * k) + ((key >> 24) & 0xff)
	return uint64(h)
}
