package schema

import (
	"bytes"
	"encoding/json"
)

// OrderedMap is the concrete JSON-object Value this engine builds
// results out of. A plain Go map does not preserve insertion order, and
// GraphQL's "output object key order equals source order" guarantee
// (§8, testable property 4) depends on it — so selection execution
// writes into an OrderedMap instead of a map[string]Value.
type OrderedMap struct {
	keys   []string
	values map[string]Value
}

// NewOrderedMap returns an empty OrderedMap ready for Set calls.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{values: make(map[string]Value)}
}

// Set assigns key to v. A key seen for the first time is appended to the
// key order; a key seen again keeps its original position and simply has
// its value overwritten, matching how fragment-merged fields fall out of
// an object map.
func (m *OrderedMap) Set(key string, v Value) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns key's value and whether it is present.
func (m *OrderedMap) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in first-write order.
func (m *OrderedMap) Keys() []string { return m.keys }

// Len reports the number of entries.
func (m *OrderedMap) Len() int { return len(m.keys) }

// MarshalJSON renders the map as a JSON object, keys in first-write
// order, satisfying encoding/json.Marshaler.
func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
