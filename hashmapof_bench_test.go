package chainmap

import (
	"testing"
)

func BenchmarkHashMapOfAddSmall(b *testing.B) {
	benchmarkHashMapOfAdd(b, testDataSmall[:])
}

func BenchmarkHashMapOfAdd(b *testing.B) {
	benchmarkHashMapOfAdd(b, testData[:])
}

func BenchmarkHashMapOfAddLarge(b *testing.B) {
	benchmarkHashMapOfAdd(b, testDataLarge[:])
}

func benchmarkHashMapOfAdd(b *testing.B, data []string) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m := NewHashMapOf[string, int]()
		for j := range data {
			m.Add(data[j], j)
		}
	}
}

func BenchmarkHashMapOfFind(b *testing.B) {
	benchmarkHashMapOfFind(b, testData[:])
}

func BenchmarkHashMapOfFindLarge(b *testing.B) {
	benchmarkHashMapOfFind(b, testDataLarge[:])
}

func benchmarkHashMapOfFind(b *testing.B, data []string) {
	b.ReportAllocs()
	m := NewHashMapOf[string, int]()
	for i := range data {
		m.Add(data[i], i)
	}
	b.ResetTimer()
	j := 0
	for i := 0; i < b.N; i++ {
		_, _ = m.Find(data[j])
		j++
		if j >= len(data) {
			j = 0
		}
	}
}

func BenchmarkHashMapOfFindInt(b *testing.B) {
	b.ReportAllocs()
	m := NewHashMapOf[int, int]()
	for _, k := range testDataInt {
		m.Add(k, k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Find(testDataInt[i&(len(testDataInt)-1)])
	}
}

func BenchmarkHashMapOfAddRemoveInt(b *testing.B) {
	b.ReportAllocs()
	m := NewHashMapOf[int, int](WithPresize(len(testDataIntSmall)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := testDataIntSmall[i&(len(testDataIntSmall)-1)]
		m.Add(k, i)
		m.Remove(k)
	}
}

func BenchmarkHashMapOfFindRange(b *testing.B) {
	b.ReportAllocs()
	m := NewHashMapOf[int, int]()
	for _, k := range testDataIntLarge {
		m.Add(k, k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.FindRange(1000, 2000)
	}
}

func BenchmarkHashMapOfSortedKeys(b *testing.B) {
	b.ReportAllocs()
	m := NewHashMapOf[string, int]()
	for i, k := range testData {
		m.Add(k, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.SortedKeys()
	}
}
