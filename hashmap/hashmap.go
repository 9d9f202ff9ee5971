// Package hashmap implements a map from keys to values using separate chaining
// over a power-of-two bucket array that doubles once the load factor reaches
// 3/4.
//
// A HashMap is not safe for concurrent use; callers that share one must
// serialize every call, reads included.
package hashmap

import (
	"iter"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

const initialCapacity = uint64(16)

type HashMap[K comparable, V any] struct {
	buckets []bucket[K, V]
	hash    Hasher[K]
	// number of stored pairs, equal to the sum of the chain lengths
	counter uint64
}

// New returns an empty map with 16 buckets, hashing keys with a
// ComparableHasher.
func New[K comparable, V any]() *HashMap[K, V] {
	return NewWithHasher[K, V](ComparableHasher[K]())
}

// NewWithHasher is like New but hashes keys with h.
func NewWithHasher[K comparable, V any](h Hasher[K]) *HashMap[K, V] {
	return &HashMap[K, V]{
		buckets: newBuckets[K, V](initialCapacity),
		hash:    h,
		counter: 0,
	}
}

func bucketIdx(h uint64, numBuckets uint64) uint64 {
	return h % numBuckets
}

func (m *HashMap[K, V]) bucketFor(key K) *bucket[K, V] {
	return &m.buckets[bucketIdx(m.hash(key), uint64(len(m.buckets)))]
}

// Len returns the number of stored pairs.
func (m *HashMap[K, V]) Len() uint64 {
	return m.counter
}

func (m *HashMap[K, V]) IsEmpty() bool {
	return m.counter == 0
}

// Capacity returns the current number of buckets. It starts at 16 and only
// grows.
func (m *HashMap[K, V]) Capacity() uint64 {
	return uint64(len(m.buckets))
}

// Get returns the value stored for key. The boolean is false if key is
// absent, in which case the value is the zero value of V.
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	return m.bucketFor(key).get(key)
}

func (m *HashMap[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Insert stores value for key, replacing any previous value.
//
// The growth check uses the count from before the insert, so the map may grow
// even when key is already present.
func (m *HashMap[K, V]) Insert(key K, value V) {
	if m.shouldResize() {
		m.resize()
	}
	if m.bucketFor(key).store(key, value) {
		m.counter = std.SumAssumeNoOverflow(m.counter, 1)
	}
}

// Remove deletes key and returns the value it had. The boolean is false, and
// the map unchanged, if key was absent.
func (m *HashMap[K, V]) Remove(key K) (V, bool) {
	val, ok := m.bucketFor(key).remove(key)
	if ok {
		primitive.Assert(m.counter > 0)
		m.counter--
	}
	return val, ok
}

// Clear removes every pair. The capacity is unchanged.
func (m *HashMap[K, V]) Clear() {
	for i := range m.buckets {
		m.buckets[i].clear()
	}
	m.counter = 0
}

// All yields every stored pair exactly once, in no particular order. The map
// must not be modified during iteration.
func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, b := range m.buckets {
			for _, e := range b.entries {
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}

// load factor of 3/4, in integer arithmetic
func (m *HashMap[K, V]) shouldResize() bool {
	return m.counter*4 >= uint64(len(m.buckets))*3
}

// resize doubles the bucket array and moves every pair to its bucket under the
// new capacity.
func (m *HashMap[K, V]) resize() {
	newSize := uint64(len(m.buckets)) * 2
	buckets := newBuckets[K, V](newSize)
	var moved = uint64(0)
	for i := range m.buckets {
		for _, e := range m.buckets[i].entries {
			b := &buckets[bucketIdx(m.hash(e.key), newSize)]
			// keys are already unique, so no need to search the chain
			b.entries = append(b.entries, e)
			moved++
		}
	}
	primitive.Assert(moved == m.counter)
	m.buckets = buckets
}
