package chainmap

import (
	"fmt"
	"math"
	"strings"
)

// Stats returns statistics for the HashMapOf. It's an O(N) operation,
// so it should be used only for diagnostics or debugging purposes.
func (m *HashMapOf[K, V]) Stats() *MapStats {
	stats := &MapStats{
		RootBuckets:  len(m.buckets),
		Counter:      m.size,
		ChainCap:     m.chainCap,
		TotalGrowths: m.totalGrowths,
		MinEntries:   math.MaxInt,
	}
	for _, chain := range m.buckets {
		nentries := len(chain)
		stats.Size += nentries
		if nentries == 0 {
			stats.EmptyBuckets++
		}
		if nentries < stats.MinEntries {
			stats.MinEntries = nentries
		}
		if nentries > stats.MaxEntries {
			stats.MaxEntries = nentries
		}
	}
	if stats.RootBuckets > 0 {
		stats.LoadFactor = float64(stats.Counter) / float64(stats.RootBuckets)
	}
	return stats
}

// MapStats is HashMapOf statistics.
//
// Warning: map statistics are intented to be used for diagnostic
// purposes, not for production code. This means that breaking changes
// may be introduced into this struct even between minor releases.
type MapStats struct {
	// RootBuckets is the number of buckets in the hash table, i.e. its
	// capacity.
	RootBuckets int
	// EmptyBuckets is the number of buckets that hold no entries.
	EmptyBuckets int
	// Size is the number of entries found by walking every chain.
	Size int
	// Counter is the number of entries according to the size counter.
	// It always equals Size.
	Counter int
	// MinEntries is the minimum number of entries per chain.
	MinEntries int
	// MaxEntries is the maximum number of entries per chain.
	MaxEntries int
	// LoadFactor is Counter divided by RootBuckets.
	LoadFactor float64
	// ChainCap is the number of entries reserved when a chain is first
	// allocated.
	ChainCap int
	// TotalGrowths is the number of times the hash table grew.
	TotalGrowths uint32
}

// ToString returns string representation of map stats.
func (s *MapStats) ToString() string {
	var sb strings.Builder
	sb.WriteString("MapStats{\n")
	sb.WriteString(fmt.Sprintf("RootBuckets:  %d\n", s.RootBuckets))
	sb.WriteString(fmt.Sprintf("EmptyBuckets: %d\n", s.EmptyBuckets))
	sb.WriteString(fmt.Sprintf("Size:         %d\n", s.Size))
	sb.WriteString(fmt.Sprintf("Counter:      %d\n", s.Counter))
	sb.WriteString(fmt.Sprintf("MinEntries:   %d\n", s.MinEntries))
	sb.WriteString(fmt.Sprintf("MaxEntries:   %d\n", s.MaxEntries))
	sb.WriteString(fmt.Sprintf("LoadFactor:   %.4f\n", s.LoadFactor))
	sb.WriteString(fmt.Sprintf("ChainCap:     %d\n", s.ChainCap))
	sb.WriteString(fmt.Sprintf("TotalGrowths: %d\n", s.TotalGrowths))
	sb.WriteString("}\n")
	return sb.String()
}
