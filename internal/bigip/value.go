// Package bigip contains the parser for the BIG-IP configuration grammar.
// It turns the brace-delimited, line-oriented text of the .conf files found
// in a UCS archive into a tree of typed values that serializes cleanly to
// JSON.
package bigip

import (
	"bytes"
	"encoding/json"
)

// Value is a single value within a configuration document.
type Value interface {
	json.Marshaler
}

// Empty is an object without content, serialized as {}.
type Empty struct{}

// MarshalJSON implements json.Marshaler.
func (Empty) MarshalJSON() ([]byte, error) {
	return []byte("{}"), nil
}

// Raw is a verbatim multi-line text body. iRule bodies are stored this way
// so that their original formatting survives.
type Raw string

// MarshalJSON implements json.Marshaler.
func (r Raw) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

// Scalar is a plain string value, possibly empty.
type Scalar string

// MarshalJSON implements json.Marshaler.
func (s Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// List is a sequence of tokens, used for pseudo-arrays and wrapped
// "monitor min" token lists.
type List []string

// MarshalJSON implements json.Marshaler.
func (l List) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(l))
}

// Object is a string-keyed mapping of values that remembers the order keys
// were first inserted in.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{
		values: make(map[string]Value),
	}
}

// Set inserts or replaces the value for key. A replaced key keeps its
// original position.
func (o *Object) Set(key string, value Value) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value stored for key.
func (o *Object) Get(key string) (Value, bool) {
	value, ok := o.values[key]
	return value, ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return o.keys
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// MarshalJSON writes the object as a JSON object with its keys in
// insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')

		v, err := json.Marshal(o.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
