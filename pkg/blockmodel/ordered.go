package blockmodel

import (
	"bytes"
	"encoding/json"

	"cogentcore.org/core/base/ordmap"
)

// OrderedMap is a string-keyed map that encodes its entries in insertion order.
// Adding an existing key replaces the value in place.
type OrderedMap[V any] struct {
	ordmap.Map[string, V]
}

// NewOrderedMap returns an empty ordered map.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{Map: *ordmap.New[string, V]()}
}

// Get returns the value for key.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	return m.ValueByKeyTry(key)
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Order)
}

// Keys returns the keys in order.
func (m *OrderedMap[V]) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.Order))
	for i, kv := range m.Order {
		keys[i] = kv.Key
	}
	return keys
}

// MarshalJSON encodes the map as a JSON object with keys in insertion order.
func (m *OrderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range m.Order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshal(kv.Key)
		if err != nil {
			return nil, err
		}
		val, err := marshal(kv.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshal encodes v like json.Marshal but leaves &, < and > unescaped.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
