package nest

import (
	"reflect"

	"github.com/oakwood-commons/nestx/internal/clone"
)

// RedactedMarker replaces values hidden by Whitelist.
const RedactedMarker = "REDACTED"

// MaskMarker replaces values hidden by MaskValues.
const MaskMarker = "X"

// DefaultPIIKeys is the stock set of personally identifiable key names.
var DefaultPIIKeys = []string{"dob", "ssn", "driver_license_no", "business_tax_id"}

// Whitelist redacts a single-layer map: every key outside allow whose value
// is truthy gets RedactedMarker in its place. Keys are never removed. With
// copyData true the input is deep-copied first; otherwise data is mutated in
// place and returned.
func Whitelist(data map[string]any, allow []string, copyData bool) map[string]any {
	out := data
	if copyData {
		out = clone.Map(data)
	}
	allowed := make(map[string]struct{}, len(allow))
	for _, k := range allow {
		allowed[k] = struct{}{}
	}
	for field, val := range out {
		if _, ok := allowed[field]; ok {
			continue
		}
		if Truthy(val) {
			out[field] = RedactedMarker
		}
	}
	return out
}

// MaskValues recursively replaces truthy values stored under any of the
// given key names with MaskMarker, for safe logging of sensitive structures.
// The input is never mutated; the masked tree is a fresh copy. With no keys
// given, DefaultPIIKeys is used.
func MaskValues(data any, piiKeys ...string) any {
	if len(piiKeys) == 0 {
		piiKeys = DefaultPIIKeys
	}
	return alterValues(clone.Any(data), func(any) any { return MaskMarker }, keySet(piiKeys), true)
}

// AlterValues recursively applies fn to truthy values stored under any of
// the given key names, leaving everything else in place. Like MaskValues it
// operates on a fresh copy, never the input.
func AlterValues(data any, fn func(any) any, keys ...string) any {
	return alterValues(clone.Any(data), fn, keySet(keys), false)
}

func keySet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// alterValues walks the copied tree. descend controls whether sequences are
// entered: masking recurses everywhere, AlterValues only follows maps.
func alterValues(obj any, fn func(any) any, keys map[string]struct{}, descend bool) any {
	switch t := obj.(type) {
	case map[string]any:
		for k, v := range t {
			if _, hit := keys[k]; hit && Truthy(v) {
				t[k] = fn(v)
				continue
			}
			t[k] = alterValues(v, fn, keys, descend)
		}
		return t
	case map[any]any:
		for k, v := range t {
			if ks, ok := k.(string); ok {
				if _, hit := keys[ks]; hit && Truthy(v) {
					t[k] = fn(v)
					continue
				}
			}
			t[k] = alterValues(v, fn, keys, descend)
		}
		return t
	case []any:
		if !descend {
			return t
		}
		for i, v := range t {
			t[i] = alterValues(v, fn, keys, descend)
		}
		return t
	default:
		return alterValuesReflect(obj, fn, keys, descend)
	}
}

// alterValuesReflect rebuilds typed containers (map[string]string, []T) as
// generic trees so masking reaches into them.
func alterValuesReflect(obj any, fn func(any) any, keys map[string]struct{}, descend bool) any {
	if obj == nil {
		return nil
	}
	if _, ok := obj.([]byte); ok {
		return obj
	}
	rv := reflect.ValueOf(obj)
	switch rv.Kind() { //nolint:exhaustive // scalars pass through untouched
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return obj
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			v := iter.Value().Interface()
			if _, hit := keys[k]; hit && Truthy(v) {
				out[k] = fn(v)
				continue
			}
			out[k] = alterValues(v, fn, keys, descend)
		}
		return out
	case reflect.Slice, reflect.Array:
		if !descend {
			return obj
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = alterValues(rv.Index(i).Interface(), fn, keys, descend)
		}
		return out
	default:
		return obj
	}
}

// Truthy reports whether v counts as a present value for redaction purposes:
// nil, false, zero numbers, empty strings, and empty containers are falsy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() { //nolint:exhaustive // containers by length, the rest by zero value
	case reflect.Map, reflect.Slice, reflect.Array, reflect.String:
		return rv.Len() > 0
	case reflect.Ptr, reflect.Interface:
		return !rv.IsNil()
	default:
		return !rv.IsZero()
	}
}
