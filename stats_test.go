package chainmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashMapOfStats(t *testing.T) {
	m := NewHashMapOf[int, int]()

	stats := m.Stats()
	require.Equal(t, defaultMinMapTableLen, stats.RootBuckets, stats.ToString())
	require.Equal(t, stats.RootBuckets, stats.EmptyBuckets, stats.ToString())
	require.Equal(t, 0, stats.Size)
	require.Equal(t, 0, stats.Counter)
	require.Equal(t, 0, stats.MinEntries)
	require.Equal(t, 0, stats.MaxEntries)
	require.Zero(t, stats.LoadFactor)
	require.Equal(t, m.chainCap, stats.ChainCap)

	for i := 0; i < 200; i++ {
		m.Add(i, i)
	}

	stats = m.Stats()
	require.Equal(t, 512, stats.RootBuckets, stats.ToString())
	require.Less(t, stats.EmptyBuckets, stats.RootBuckets, stats.ToString())
	require.Equal(t, 200, stats.Size, stats.ToString())
	require.Equal(t, 200, stats.Counter, stats.ToString())
	require.GreaterOrEqual(t, stats.MaxEntries, 1)
	require.InDelta(t, 200.0/512.0, stats.LoadFactor, 1e-9)
	require.EqualValues(t, 5, stats.TotalGrowths)
}

func TestMapStatsToString(t *testing.T) {
	m := NewHashMapOf[string, int]()
	m.Add("a", 1)
	s := m.Stats().ToString()
	require.True(t, strings.HasPrefix(s, "MapStats{\n"))
	require.Contains(t, s, "RootBuckets:  16\n")
	require.Contains(t, s, "Size:         1\n")
	require.Contains(t, s, "LoadFactor:   0.0625\n")
}
