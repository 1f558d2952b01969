package export

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// orderedMap is a string-keyed JSON object that preserves key insertion order
// when encoded. Values are either string or *orderedMap. The exported files
// must keep the row order of the workbook, which encoding/json's map type
// cannot do.
type orderedMap struct {
	keys   []string
	values map[string]any
}

func newOrderedMap() *orderedMap {
	return &orderedMap{
		values: make(map[string]any),
	}
}

// Set inserts or replaces a key. A replaced key keeps its original position.
func (m *orderedMap) Set(key string, value any) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *orderedMap) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of keys.
func (m *orderedMap) Len() int {
	return len(m.keys)
}

// MarshalIndent encodes the object as pretty-printed JSON with two-space
// indentation, preserving insertion order at every nesting level.
func (m *orderedMap) MarshalIndent() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.encode(&buf, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (m *orderedMap) encode(buf *bytes.Buffer, level int) error {
	if len(m.keys) == 0 {
		buf.WriteString("{}")
		return nil
	}

	indent := bytes.Repeat([]byte("  "), level+1)
	buf.WriteString("{\n")
	for i, key := range m.keys {
		buf.Write(indent)
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(keyJSON)
		buf.WriteString(": ")

		switch v := m.values[key].(type) {
		case string:
			valueJSON, err := json.Marshal(v)
			if err != nil {
				return err
			}
			buf.Write(valueJSON)
		case *orderedMap:
			if err := v.encode(buf, level+1); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported value type %T for key %q", v, key)
		}

		if i < len(m.keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.Write(bytes.Repeat([]byte("  "), level))
	buf.WriteByte('}')
	return nil
}
