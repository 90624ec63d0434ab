package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Registry maps canonical token ids to their records. Keys are iterated in the order they were
// added, which for a decoded document is the order they appear in the JSON object.
type Registry struct {
	records map[string]TokenRecord
	keys    []string
}

// NewRegistryFromMap builds a registry from a plain map. Go maps carry no order so the keys are
// sorted to keep iteration deterministic.
func NewRegistryFromMap(m map[string]TokenRecord) *Registry {
	r := &Registry{records: make(map[string]TokenRecord, len(m))}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		r.Add(k, m[k])
	}

	return r
}

// Add inserts or replaces the record stored under key.
func (r *Registry) Add(key string, record TokenRecord) {
	if r.records == nil {
		r.records = make(map[string]TokenRecord)
	}
	if _, ok := r.records[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.records[key] = record
}

// Keys returns the registry keys in iteration order.
func (r *Registry) Keys() []string {
	return slices.Clone(r.keys)
}

// Get returns the record stored under key.
func (r *Registry) Get(key string) (TokenRecord, bool) {
	rec, ok := r.records[key]

	return rec, ok
}

// Len returns the number of records.
func (r *Registry) Len() int {
	return len(r.keys)
}

// UnmarshalJSON decodes a JSON object of token records, keeping the key order of the document.
// Duplicate keys are rejected since the key is the token's identity.
func (r *Registry) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("token registry must be a JSON object")
	}

	*r = Registry{records: make(map[string]TokenRecord)}
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v in registry keys", tok)
		}
		if _, dup := r.records[key]; dup {
			return fmt.Errorf("duplicate token id %s in registry", key)
		}

		var rec TokenRecord
		if err := dec.Decode(&rec); err != nil {
			return fmt.Errorf("failed to decode record %s: %w", key, err)
		}
		r.Add(key, rec)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	return nil
}

// MarshalJSON encodes the registry as a JSON object in iteration order.
func (r *Registry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.records[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
