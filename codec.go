package chainmap

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	jsonMarshal   func(v any) ([]byte, error)
	jsonUnmarshal func(data []byte, v any) error
)

// ErrUninitialized is returned when decoding into a HashMapOf that was
// not created by one of the constructors.
var ErrUninitialized = errors.New("chainmap: map not initialized")

// SetDefaultJSONMarshal sets the default JSON serialization and deserialization functions.
// If not set, the standard library is used by default.
func SetDefaultJSONMarshal(marshal func(v any) ([]byte, error), unmarshal func(data []byte, v any) error) {
	jsonMarshal, jsonUnmarshal = marshal, unmarshal
}

// MarshalJSON JSON serialization
func (m *HashMapOf[K, V]) MarshalJSON() ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if jsonMarshal != nil {
		data, err = jsonMarshal(m.ToMap())
	} else {
		data, err = json.Marshal(m.ToMap())
	}
	if err != nil {
		return nil, errors.Wrapf(err, "chainmap: encode %d entries", m.size)
	}
	return data, nil
}

// UnmarshalJSON JSON deserialization. Decoded entries are added to the
// entries already present.
func (m *HashMapOf[K, V]) UnmarshalJSON(data []byte) error {
	if m.buckets == nil {
		return ErrUninitialized
	}
	var a map[K]V
	if jsonUnmarshal != nil {
		if err := jsonUnmarshal(data, &a); err != nil {
			return errors.Wrap(err, "chainmap: decode entries")
		}
	} else {
		if err := json.Unmarshal(data, &a); err != nil {
			return errors.Wrap(err, "chainmap: decode entries")
		}
	}
	m.FromMap(a)
	return nil
}

// String implement the formatting output interface fmt.Stringer
func (m *HashMapOf[K, V]) String() string {
	const limit = 1024
	return strings.Replace(fmt.Sprint(m.toMapWithLimit(limit)), "map[", "HashMapOf[", 1)
}

// toMapWithLimit collect up to limit entries into a map[K]V, limit < 0 is no limit
func (m *HashMapOf[K, V]) toMapWithLimit(limit int) map[K]V {
	if limit < 0 || limit >= m.size {
		return m.ToMap()
	}
	a := make(map[K]V, limit)
	m.Range(func(k K, v V) bool {
		if _, ok := a[k]; !ok {
			a[k] = v
		}
		return len(a) < limit
	})
	return a
}
