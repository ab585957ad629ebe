package chainmap_test

import (
	"fmt"
	"slices"

	"github.com/llxisdsh/chainmap"
)

func ExampleHashMapOf() {
	m := chainmap.NewHashMapOf[string, float64]()
	m.Add("b", 10.0)
	m.Add("a", 20.0)
	m.Add("c", 20.0)

	v, ok := m.Find("a")
	fmt.Println(m.Size(), v, ok)
	fmt.Println(m.SortedKeys())

	m.Remove("b")
	m.Remove("zzz")
	fmt.Println(m)
	// Output:
	// 3 20 true
	// [a b c]
	// HashMapOf[a:20 c:20]
}

func ExampleHashMapOf_FindRange() {
	m := chainmap.NewHashMapOf[int, string]()
	for _, k := range []int{50, 10, 30, 40, 60, 20} {
		m.Add(k, fmt.Sprint("v", k))
	}

	vals := m.FindRange(20, 40)
	slices.Sort(vals)
	fmt.Println(vals)
	fmt.Println(len(m.FindRange(40, 20)))
	// Output:
	// [v20 v30 v40]
	// 0
}

func ExampleHashMapOf_Sorted() {
	m := chainmap.NewHashMapOf[string, int]()
	m.FromMap(map[string]int{"x": 3, "y": 1, "w": 2})
	for k, v := range m.Sorted() {
		fmt.Println(k, v)
	}
	// Output:
	// w 2
	// x 3
	// y 1
}

func ExampleWithDuplicateKeys() {
	m := chainmap.NewHashMapOf[string, int](chainmap.WithDuplicateKeys())
	m.Add("d", 1000)
	m.Add("d", -10)
	v, _ := m.Find("d")
	fmt.Println(m.Size(), v)

	m.Remove("d")
	v, _ = m.Find("d")
	fmt.Println(m.Size(), v)
	// Output:
	// 2 -10
	// 1 1000
}
