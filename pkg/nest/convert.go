package nest

import (
	"fmt"
	"reflect"
)

// StringifyValues recursively converts every leaf of a nested structure to
// its string form, preserving map/slice structure. Nil stays nil. The result
// is a fresh tree; the input is not mutated.
func StringifyValues(obj any) any {
	switch t := obj.(type) {
	case nil:
		return nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, v := range t {
			out[k] = StringifyValues(v)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, v := range t {
			out[i] = StringifyValues(v)
		}
		return out
	case string:
		return t
	default:
		rv := reflect.ValueOf(obj)
		switch rv.Kind() { //nolint:exhaustive // leaves fall through to fmt
		case reflect.Map:
			out := make(map[string]any, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				out[fmt.Sprintf("%v", iter.Key().Interface())] = StringifyValues(iter.Value().Interface())
			}
			return out
		case reflect.Slice, reflect.Array:
			out := make([]any, rv.Len())
			for i := 0; i < rv.Len(); i++ {
				out[i] = StringifyValues(rv.Index(i).Interface())
			}
			return out
		}
		return fmt.Sprintf("%v", obj)
	}
}

// NormalizeStrings recursively decodes []byte leaves to string, leaving all
// other values untouched. Like StringifyValues it returns a fresh tree and
// keeps the input intact.
func NormalizeStrings(obj any) any {
	switch t := obj.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, v := range t {
			out[k] = NormalizeStrings(v)
		}
		return out
	case map[any]any:
		out := make(map[any]any, len(t))
		for k, v := range t {
			out[k] = NormalizeStrings(v)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, v := range t {
			out[i] = NormalizeStrings(v)
		}
		return out
	case []byte:
		return string(t)
	default:
		return obj
	}
}

// HasValues reports whether at least one value in the map is truthy.
func HasValues(m map[string]any) bool {
	for _, v := range m {
		if Truthy(v) {
			return true
		}
	}
	return false
}

// RangeValue returns the value whose half-open key range [lo, hi) contains
// member, plus whether any range matched. Iteration order over overlapping
// ranges is unspecified.
func RangeValue(member int, ranges map[[2]int]any) (any, bool) {
	for keyRange, value := range ranges {
		if member >= keyRange[0] && member < keyRange[1] {
			return value, true
		}
	}
	return nil, false
}
