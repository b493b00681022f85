// Package clone provides deep copies of nested map/slice trees so callers of
// copying utilities never observe mutation of their inputs.
package clone

import "reflect"

// Any deep-copies a nested structure. The generic tree forms produced by the
// loader (map[string]any, []any) are handled directly; other map and slice
// kinds are rebuilt via reflection into values of the same type. Scalars and
// unrecognized values are returned as-is.
func Any(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return Map(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Any(item)
		}
		return out
	case map[any]any:
		out := make(map[any]any, len(t))
		for k, val := range t {
			out[k] = Any(val)
		}
		return out
	default:
		return reflectCopy(v)
	}
}

// Map deep-copies a string-keyed generic map. A nil input yields an empty map
// so callers can mutate the copy unconditionally.
func Map(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = Any(v)
	}
	return out
}

func reflectCopy(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() { //nolint:exhaustive // scalars are immutable and pass through
	case reflect.Map:
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), copiedValue(iter.Value(), rv.Type().Elem()))
		}
		return out.Interface()
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(copiedValue(rv.Index(i), rv.Type().Elem()))
		}
		return out.Interface()
	default:
		return v
	}
}

func copiedValue(rv reflect.Value, want reflect.Type) reflect.Value {
	copied := Any(rv.Interface())
	cv := reflect.ValueOf(copied)
	if !cv.IsValid() {
		return reflect.Zero(want)
	}
	return cv
}
