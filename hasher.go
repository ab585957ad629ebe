package chainmap

import (
	"cmp"
	"hash/maphash"
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// HashFunc computes the hash of a key. seed is the per-map seed; hashers
// that ignore it produce the same bucket layout in every map.
type HashFunc[K any] func(key K, seed uintptr) uintptr

// CompareFunc defines a total order over keys. It returns a negative
// number when a < b, zero when a == b and a positive number when a > b.
type CompareFunc[K any] func(a, b K) int

// processSeed feeds maphash for every map in the process. The per-map
// seed is mixed in afterwards so WithSeed gives reproducible layouts.
var processSeed = maphash.MakeSeed()

// MixHash folds seed into h using the golden ratio multiplier.
// Useful for custom HashFunc implementations built on fixed hashes.
//
//go:nosplit
func MixHash(h, seed uintptr) uintptr {
	return (h ^ seed) * hashPrime
}

// defaultHasher returns the built-in hash for K. Integer kinds hash to
// themselves (intKey reports that), which keeps sequential keys evenly
// spread over power-of-two tables; everything else goes through maphash.
func defaultHasher[K comparable]() (keyHash HashFunc[K], intKey bool) {
	switch any(*new(K)).(type) {
	case uint, int, uintptr:
		return func(key K, _ uintptr) uintptr {
			return *(*uintptr)(unsafe.Pointer(&key))
		}, true

	case uint64, int64:
		if bits.UintSize == 32 {
			return func(key K, _ uintptr) uintptr {
				v := *(*uint64)(unsafe.Pointer(&key))
				return uintptr(v) ^ uintptr(v>>32)
			}, true
		}
		return func(key K, _ uintptr) uintptr {
			return uintptr(*(*uint64)(unsafe.Pointer(&key)))
		}, true

	case uint32, int32:
		return func(key K, _ uintptr) uintptr {
			return uintptr(*(*uint32)(unsafe.Pointer(&key)))
		}, true

	case uint16, int16:
		return func(key K, _ uintptr) uintptr {
			return uintptr(*(*uint16)(unsafe.Pointer(&key)))
		}, true

	case uint8, int8:
		return func(key K, _ uintptr) uintptr {
			return uintptr(*(*uint8)(unsafe.Pointer(&key)))
		}, true

	default:
		return func(key K, seed uintptr) uintptr {
			return MixHash(uintptr(maphash.Comparable(processSeed, key)), seed)
		}, false
	}
}

// defaultCompare is the natural order of an ordered key type.
func defaultCompare[K constraints.Ordered]() CompareFunc[K] {
	return cmp.Compare[K]
}

// spread improves hash distribution by XORing the original hash with its high bits.
// This function increases randomness in the lower bits of the hash value,
// which helps reduce collisions when calculating bucket indices.
//
//go:nosplit
func spread(h uintptr) uintptr {
	return h ^ (h >> 16)
}

// h1 maps a hash to its bucket index within a power-of-two table.
//
//go:nosplit
func h1(h uintptr, mask int, intKey bool) int {
	if intKey {
		return int(h & uintptr(mask))
	}
	return int(spread(h) & uintptr(mask))
}

// nextPowOf2 calculates the smallest power of 2 that is greater than or equal to n.
// Compatible with both 32-bit and 64-bit systems.
func nextPowOf2(n int) int {
	if n <= 0 {
		return 1
	}

	if bits.UintSize == 32 {
		v := uint32(n)
		v--
		v |= v >> 1
		v |= v >> 2
		v |= v >> 4
		v |= v >> 8
		v |= v >> 16
		v++
		return int(v)
	}

	v := uint64(n)
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	v++
	return int(v)
}
