package seocheck

import (
	"math"
	"unicode/utf8"
)

// Record is the open key-value metadata of a single content file.
// It is owned by the caller and mutated in place by the checker.
//
// Nested blocks (seo, twitter, seo.ogp) are stored as Record values. Values
// decoded from YAML or JSON arrive as map[string]any and are accepted
// wherever a Record is expected.
type Record map[string]any

// Has reports whether the record owns key, regardless of its value.
// A key set to nil, false or "" is present.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Get returns the value stored under key, or nil.
func (r Record) Get(key string) any {
	return r[key]
}

// Set stores v under key.
func (r Record) Set(key string, v any) {
	r[key] = v
}

// Delete removes key from the record.
func (r Record) Delete(key string) {
	delete(r, key)
}

// Truthy reports whether the value under key is truthy. See Truthy.
func (r Record) Truthy(key string) bool {
	return Truthy(r[key])
}

// String returns the value under key when it is a string.
func (r Record) String(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

// Lookup returns the nested record under key without creating it.
func (r Record) Lookup(key string) (Record, bool) {
	return AsRecord(r[key])
}

// Sub returns the nested record under key, creating an empty one when the
// key is absent or does not hold a record.
func (r Record) Sub(key string) Record {
	if sub, ok := AsRecord(r[key]); ok {
		r[key] = sub
		return sub
	}
	sub := Record{}
	r[key] = sub
	return sub
}

// AsRecord converts v to a Record when it is a mapping keyed by strings.
// The returned Record shares storage with v.
func AsRecord(v any) (Record, bool) {
	switch m := v.(type) {
	case Record:
		if m == nil {
			return nil, false
		}
		return m, true
	case map[string]any:
		if m == nil {
			return nil, false
		}
		return Record(m), true
	default:
		return nil, false
	}
}

// Truthy reports whether v counts as set. nil, false, zero numbers, NaN and
// the empty string are falsy; every other value, including empty records and
// lists, is truthy.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case float64:
		return x != 0 && !math.IsNaN(x)
	case Record:
		return x != nil
	case map[string]any:
		return x != nil
	case []any:
		return x != nil
	case []string:
		return x != nil
	default:
		return true
	}
}

// Length returns the character count of a string or the element count of a
// list. Every other value has length 0.
func Length(v any) int {
	switch x := v.(type) {
	case string:
		return utf8.RuneCountInString(x)
	case []any:
		return len(x)
	case []string:
		return len(x)
	default:
		return 0
	}
}
