package chainmap

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is the CPU cache line size, used to size the first
// allocation of a bucket chain.
// It's automatically calculated using the `golang.org/x/sys` package.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})

// maxChainCap bounds the first allocation of a chain. With a load factor
// of 0.75 most chains hold one or two entries.
const maxChainCap = 4

// calcChainCap returns how many entries of the given size are reserved
// when a bucket receives its first entry: as many as fit in one cache
// line, clamped to [1, maxChainCap].
func calcChainCap(entrySize uintptr) int {
	if entrySize == 0 {
		return maxChainCap
	}
	return max(1, min(maxChainCap, int(CacheLineSize/entrySize)))
}
