package chainmap

import (
	"iter"
	"math/rand/v2"
	"slices"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// HashMapOf is a hash table with separate chaining and automatic growth.
//
// Every bucket owns a slice of entries (its chain). A key lives in the
// bucket selected by its hash masked to the current capacity, which is
// always a power of two. Capacity starts at 16 and doubles whenever
// Size/capacity exceeds 0.75 after an insertion; the rehash completes
// before the new bucket array replaces the old one.
//
// Besides hashing, HashMapOf needs a total order over keys for
// FindRange and SortedKeys. NewHashMapOf uses the natural order of
// ordered key types; NewHashMapOfWithHasher accepts both capabilities.
//
// HashMapOf is not safe for concurrent use. Guard it with a mutex when
// sharing it between goroutines. A HashMapOf must not be copied after
// first use; use Clone for an independent copy.
type HashMapOf[K comparable, V any] struct {
	_             noCopy
	buckets       [][]EntryOf[K, V]
	size          int
	totalGrowths  uint32
	seed          uintptr
	keyHash       HashFunc[K]
	keyCompare    CompareFunc[K]
	minTableLen   int  // WithPresize
	duplicateKeys bool // WithDuplicateKeys
	intKey        bool
	chainCap      int
}

// EntryOf is a key-value pair stored in a bucket chain.
type EntryOf[K comparable, V any] struct {
	Key   K
	Value V
}

// NewHashMapOf creates a new HashMapOf for an ordered key type, using
// the built-in hasher and the natural key order.
//
// Parameters:
//   - WithPresize option for initial capacity
//   - WithSeed option for a fixed hash seed
//   - WithDuplicateKeys option for legacy duplicate-key insertion
func NewHashMapOf[K constraints.Ordered, V any](
	options ...func(*MapConfig),
) *HashMapOf[K, V] {
	return NewHashMapOfWithHasher[K, V](nil, defaultCompare[K](), options...)
}

// NewHashMapOfWithHasher creates a HashMapOf with custom hashing and
// ordering functions.
//
// Parameters:
//   - keyHash: nil uses the built-in hasher
//   - keyCompare: total order over keys, must not be nil
//   - options: see NewHashMapOf
func NewHashMapOfWithHasher[K comparable, V any](
	keyHash HashFunc[K],
	keyCompare CompareFunc[K],
	options ...func(*MapConfig),
) *HashMapOf[K, V] {
	if keyCompare == nil {
		panic("chainmap: nil key comparator")
	}
	var cfg MapConfig
	for _, opt := range options {
		opt(&cfg)
	}

	m := &HashMapOf[K, V]{}
	m.keyHash, m.intKey = defaultHasher[K]()
	if keyHash != nil {
		m.keyHash = keyHash
		m.intKey = false
	}
	m.keyCompare = keyCompare
	m.seed = cfg.seed
	if m.seed == 0 {
		m.seed = uintptr(rand.Uint64())
	}
	m.minTableLen = calcTableLen(cfg.sizeHint)
	m.duplicateKeys = cfg.duplicateKeys
	m.chainCap = calcChainCap(unsafe.Sizeof(EntryOf[K, V]{}))
	m.buckets = make([][]EntryOf[K, V], m.minTableLen)
	return m
}

func (m *HashMapOf[K, V]) bucketIndex(key K, tableLen int) int {
	return h1(m.keyHash(key, m.seed), tableLen-1, m.intKey)
}

// lookup returns the index of the newest entry holding key, or -1.
func lookup[K comparable, V any](chain []EntryOf[K, V], key K) int {
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].Key == key {
			return i
		}
	}
	return -1
}

// Add inserts a key-value pair. If key is already present its value is
// replaced in place and Size is unchanged, unless the map was created
// WithDuplicateKeys. The table grows synchronously once the load factor
// is exceeded.
func (m *HashMapOf[K, V]) Add(key K, value V) {
	bidx := m.bucketIndex(key, len(m.buckets))
	chain := m.buckets[bidx]
	if !m.duplicateKeys {
		if i := lookup(chain, key); i >= 0 {
			chain[i].Value = value
			return
		}
	}
	m.buckets[bidx] = m.appendEntry(chain, EntryOf[K, V]{Key: key, Value: value})
	m.size++

	if float64(m.size) > float64(len(m.buckets))*mapLoadFactor {
		m.grow()
	}
}

func (m *HashMapOf[K, V]) appendEntry(chain []EntryOf[K, V], e EntryOf[K, V]) []EntryOf[K, V] {
	if chain == nil {
		chain = make([]EntryOf[K, V], 0, m.chainCap)
	}
	return append(chain, e)
}

// grow rehashes every entry into a table mapGrowthFactor times larger.
// Chains are walked oldest first so that duplicate keys keep their
// relative order. The receiver's buckets are replaced only once the new
// table is complete.
func (m *HashMapOf[K, V]) grow() {
	newLen := len(m.buckets) * mapGrowthFactor
	buckets := make([][]EntryOf[K, V], newLen)
	for _, chain := range m.buckets {
		for _, e := range chain {
			bidx := m.bucketIndex(e.Key, newLen)
			buckets[bidx] = m.appendEntry(buckets[bidx], e)
		}
	}
	m.buckets = buckets
	m.totalGrowths++
}

// Remove deletes key from the map. Removing an absent key is a no-op.
func (m *HashMapOf[K, V]) Remove(key K) {
	m.Delete(key)
}

// Delete deletes key from the map and reports whether it was present.
// With duplicate keys only the newest entry is removed.
func (m *HashMapOf[K, V]) Delete(key K) bool {
	bidx := m.bucketIndex(key, len(m.buckets))
	chain := m.buckets[bidx]
	i := lookup(chain, key)
	if i < 0 {
		return false
	}
	last := len(chain) - 1
	if last == 0 {
		m.buckets[bidx] = nil
	} else {
		copy(chain[i:], chain[i+1:])
		chain[last] = EntryOf[K, V]{}
		m.buckets[bidx] = chain[:last]
	}
	m.size--
	return true
}

// Find returns the value stored for key. ok is false when key is absent.
func (m *HashMapOf[K, V]) Find(key K) (value V, ok bool) {
	chain := m.buckets[m.bucketIndex(key, len(m.buckets))]
	if i := lookup(chain, key); i >= 0 {
		return chain[i].Value, true
	}
	return value, false
}

// HasKey to check if the key exist
func (m *HashMapOf[K, V]) HasKey(key K) bool {
	_, ok := m.Find(key)
	return ok
}

// FindRange returns the values of every key k with low <= k <= high.
// The table keeps no key order, so every bucket is visited and the
// result order is unspecified. low > high yields an empty slice.
func (m *HashMapOf[K, V]) FindRange(low, high K) []V {
	vals := make([]V, 0)
	if m.keyCompare(low, high) > 0 {
		return vals
	}
	m.Range(func(k K, v V) bool {
		if m.keyCompare(low, k) <= 0 && m.keyCompare(k, high) <= 0 {
			vals = append(vals, v)
		}
		return true
	})
	return vals
}

// Keys returns every key in bucket order, newest entry first within a
// bucket. Callers must not depend on that order.
func (m *HashMapOf[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	m.Range(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// SortedKeys returns every key in ascending order. The result is a new
// slice; the map is left untouched.
func (m *HashMapOf[K, V]) SortedKeys() []K {
	keys := m.Keys()
	slices.SortStableFunc(keys, m.keyCompare)
	return keys
}

// Values returns every value, in the same order Keys would list them.
func (m *HashMapOf[K, V]) Values() []V {
	vals := make([]V, 0, m.size)
	m.Range(func(_ K, v V) bool {
		vals = append(vals, v)
		return true
	})
	return vals
}

// Size returns the number of key-value pairs in the map.
// This is an O(1) operation.
func (m *HashMapOf[K, V]) Size() int {
	return m.size
}

// IsZero reports whether the map holds no entries.
func (m *HashMapOf[K, V]) IsZero() bool {
	return m.size == 0
}

// Range calls yield for each entry until yield returns false.
// The map must not be modified during the call.
func (m *HashMapOf[K, V]) Range(yield func(K, V) bool) {
	for _, chain := range m.buckets {
		for i := len(chain) - 1; i >= 0; i-- {
			if !yield(chain[i].Key, chain[i].Value) {
				return
			}
		}
	}
}

// All returns an iterator over all entries, in Range order.
func (m *HashMapOf[K, V]) All() iter.Seq2[K, V] {
	return m.Range
}

// Sorted returns an iterator over all entries in ascending key order.
// Entries are collected before the first yield, so the iterator
// reflects the map as it was when iteration started.
func (m *HashMapOf[K, V]) Sorted() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		entries := make([]EntryOf[K, V], 0, m.size)
		m.Range(func(k K, v V) bool {
			entries = append(entries, EntryOf[K, V]{Key: k, Value: v})
			return true
		})
		slices.SortStableFunc(entries, func(a, b EntryOf[K, V]) int {
			return m.keyCompare(a.Key, b.Key)
		})
		for _, e := range entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Clone creates a deep copy of the map. Entries are re-inserted into a
// fresh table with the original configuration, so the copy reaches its
// capacity through the same growth rule.
func (m *HashMapOf[K, V]) Clone() *HashMapOf[K, V] {
	clone := &HashMapOf[K, V]{
		buckets:       make([][]EntryOf[K, V], m.minTableLen),
		seed:          m.seed,
		keyHash:       m.keyHash,
		keyCompare:    m.keyCompare,
		minTableLen:   m.minTableLen,
		duplicateKeys: m.duplicateKeys,
		intKey:        m.intKey,
		chainCap:      m.chainCap,
	}
	m.rangeOldestFirst(func(e *EntryOf[K, V]) {
		clone.Add(e.Key, e.Value)
	})
	return clone
}

// Clear deletes all entries and shrinks the table back to its initial
// capacity.
func (m *HashMapOf[K, V]) Clear() {
	m.buckets = make([][]EntryOf[K, V], m.minTableLen)
	m.size = 0
}

// ToMap collect all entries and return a map[K]V. With duplicate keys
// the newest value wins.
func (m *HashMapOf[K, V]) ToMap() map[K]V {
	a := make(map[K]V, m.size)
	m.rangeOldestFirst(func(e *EntryOf[K, V]) {
		a[e.Key] = e.Value
	})
	return a
}

// FromMap adds every entry of source to the map.
func (m *HashMapOf[K, V]) FromMap(source map[K]V) {
	for k, v := range source {
		m.Add(k, v)
	}
}

// rangeOldestFirst visits entries in insertion order within each chain.
func (m *HashMapOf[K, V]) rangeOldestFirst(fn func(e *EntryOf[K, V])) {
	for _, chain := range m.buckets {
		for i := range chain {
			fn(&chain[i])
		}
	}
}

// noCopy may be added to structs which must not be copied
// after the first use. See https://golang.org/issues/8005#issuecomment-190753527
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
