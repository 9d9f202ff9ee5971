package hashmap

// A bucket is the collision chain for one slot of the bucket array: an
// unordered slice of entries whose keys are unique within the chain.

type entry[K comparable, V any] struct {
	key K
	val V
}

type bucket[K comparable, V any] struct {
	entries []entry[K, V]
}

// find returns the position of key in the chain.
func (b *bucket[K, V]) find(key K) (uint64, bool) {
	var i = uint64(0)
	l := uint64(len(b.entries))
	for i < l {
		if b.entries[i].key == key {
			return i, true
		}
		i++
	}
	return 0, false
}

func (b *bucket[K, V]) get(key K) (V, bool) {
	i, ok := b.find(key)
	if !ok {
		var zero V
		return zero, false
	}
	return b.entries[i].val, true
}

// store replaces the value for key if present, otherwise appends a new entry.
// It reports whether an entry was added.
func (b *bucket[K, V]) store(key K, val V) bool {
	i, ok := b.find(key)
	if ok {
		b.entries[i].val = val
		return false
	}
	b.entries = append(b.entries, entry[K, V]{key: key, val: val})
	return true
}

// remove deletes key from the chain, keeping the remaining entries in order.
func (b *bucket[K, V]) remove(key K) (V, bool) {
	i, ok := b.find(key)
	if !ok {
		var zero V
		return zero, false
	}
	val := b.entries[i].val
	copy(b.entries[i:], b.entries[i+1:])
	// zero the vacated slot
	b.entries[len(b.entries)-1] = entry[K, V]{}
	b.entries = b.entries[:len(b.entries)-1]
	return val, true
}

func (b *bucket[K, V]) clear() {
	clear(b.entries)
	b.entries = b.entries[:0]
}

func (b *bucket[K, V]) len() uint64 {
	return uint64(len(b.entries))
}

func newBuckets[K comparable, V any](n uint64) []bucket[K, V] {
	return make([]bucket[K, V], n)
}
