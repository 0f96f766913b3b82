package transform

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry is one key/value pair of a Record
type Entry struct {
	Key   string
	Value string
}

// Record is a flattened page. Entries keep schema order, and that order
// is preserved when the record is written as a JSON object.
type Record []Entry

// Get returns the value stored under key
func (r Record) Get(key string) (string, bool) {
	for _, e := range r {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Keys returns the keys in order
func (r Record) Keys() []string {
	keys := make([]string, len(r))
	for i, e := range r {
		keys[i] = e.Key
	}
	return keys
}

// Map returns the record as an unordered map
func (r Record) Map() map[string]string {
	m := make(map[string]string, len(r))
	for _, e := range r {
		m[e.Key] = e.Value
	}
	return m
}

// MarshalJSON writes the record as an object with keys in entry order.
// json.Marshal still escapes <, > and & in the result; an Encoder with
// SetEscapeHTML(false) keeps them literal.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	writeString := func(s string) error {
		if err := enc.Encode(s); err != nil {
			return err
		}
		// Encode appends a newline
		buf.Truncate(buf.Len() - 1)
		return nil
	}

	buf.WriteByte('{')
	for i, e := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(e.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeString(e.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object of string values, keeping key order.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("record: expected object, got %v", tok)
	}

	out := Record{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("record: unexpected key %v", tok)
		}

		var value *string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("record: field %q: %w", key, err)
		}
		if value == nil {
			return fmt.Errorf("record: field %q is null", key)
		}
		out = append(out, Entry{Key: key, Value: *value})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = out
	return nil
}
