package chainmap

// Collection is a key-value collection with point and range lookup.
type Collection[K comparable, V any] interface {
	// Add inserts a key-value pair.
	Add(key K, value V)
	// Remove deletes a key-value pair; absent keys are ignored.
	Remove(key K)
	// Find returns the value associated with key.
	Find(key K) (V, bool)
	// FindRange returns the values of keys in [low, high].
	FindRange(low, high K) []V
	// Keys returns all keys.
	Keys() []K
	// SortedKeys returns all keys in ascending order.
	SortedKeys() []K
	// Size returns the number of key-value pairs.
	Size() int
}

var _ Collection[string, int] = (*HashMapOf[string, int])(nil)
