package chainmap

import "math"

const (
	// mapLoadFactor defines the threshold that triggers a table resize during insertion.
	// The table grows as soon as size/capacity exceeds it.
	mapLoadFactor = 0.75
	// defaultMinMapTableLen defines the initial number of buckets.
	defaultMinMapTableLen = 16
	// mapGrowthFactor is the capacity multiplier applied on every growth.
	mapGrowthFactor = 2
)

// MapConfig defines configurable HashMapOf options.
type MapConfig struct {
	sizeHint      int
	seed          uintptr
	duplicateKeys bool
}

// WithPresize configures new HashMapOf instance with capacity enough
// to hold sizeHint entries without growing. If sizeHint is zero or
// negative, the value is ignored.
func WithPresize(sizeHint int) func(*MapConfig) {
	return func(c *MapConfig) {
		c.sizeHint = sizeHint
	}
}

// WithSeed fixes the seed passed to the key hasher. Maps sharing a seed
// lay out their buckets identically within a process. Zero picks a
// random seed.
func WithSeed(seed uintptr) func(*MapConfig) {
	return func(c *MapConfig) {
		c.seed = seed
	}
}

// WithDuplicateKeys disables the existing-key check in Add. Every Add
// appends a new entry and grows Size; the newest entry for a key
// shadows older ones in Find and is the one Remove drops.
//
// This mirrors the legacy collection behavior and exists for parity
// only. Prefer the default upsert semantics.
func WithDuplicateKeys() func(*MapConfig) {
	return func(c *MapConfig) {
		c.duplicateKeys = true
	}
}

// calcTableLen computes the bucket count for the table
// return value must be a power of 2
func calcTableLen(sizeHint int) int {
	tableLen := defaultMinMapTableLen
	if float64(sizeHint) > float64(defaultMinMapTableLen)*mapLoadFactor {
		tableLen = nextPowOf2(int(math.Ceil(float64(sizeHint) / mapLoadFactor)))
	}
	return tableLen
}
