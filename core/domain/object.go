// ABOUTME: Generic JSON tree used for upstream envelopes and lookup results
// ABOUTME: Upstream fields are not validated, so results stay schema-less

package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Object is a decoded JSON object. Nested objects are map[string]interface{},
// arrays are []interface{} and numbers are json.Number.
type Object map[string]interface{}

// DecodeObject decodes raw JSON into an Object. It returns nil when the data
// is not valid JSON or does not hold a JSON object.
func DecodeObject(data []byte) Object {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var obj map[string]interface{}
	if err := dec.Decode(&obj); err != nil {
		return nil
	}
	if obj == nil {
		return nil
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil
	}
	return Object(obj)
}

// Has reports whether key is present, even if its value is null
func (o Object) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// Present reports whether key is present with a non-null value
func (o Object) Present(key string) bool {
	v, ok := o[key]
	return ok && v != nil
}

// Truthy reports whether the value at key is truthy
func (o Object) Truthy(key string) bool {
	return Truthy(o[key])
}

// Object returns the nested object at key, or nil
func (o Object) Object(key string) Object {
	switch v := o[key].(type) {
	case map[string]interface{}:
		return Object(v)
	case Object:
		return v
	}
	return nil
}

// List returns the array at key, or nil
func (o Object) List(key string) []interface{} {
	v, _ := o[key].([]interface{})
	return v
}

// String returns the value at key rendered as text. Strings are returned
// as-is, null and missing keys yield "".
func (o Object) String(key string) string {
	return Text(o[key])
}

// Clone returns a shallow copy of the object
func (o Object) Clone() Object {
	if o == nil {
		return nil
	}
	out := make(Object, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Decode maps the object onto v, which must be a pointer to a struct or map
func (o Object) Decode(v interface{}) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to encode object: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode object: %w", err)
	}
	return nil
}

// Truthy applies loose JSON truthiness: null, false, zero, "", "0" and
// empty containers are falsy, everything else is truthy.
func Truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case float64:
		return t != 0
	case int:
		return t != 0
	case string:
		return t != "" && t != "0"
	case []interface{}:
		return len(t) > 0
	case map[string]interface{}:
		return len(t) > 0
	case Object:
		return len(t) > 0
	}
	return true
}

// Text renders a JSON value as text for error messages
func Text(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool, float64, int:
		return fmt.Sprint(t)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
