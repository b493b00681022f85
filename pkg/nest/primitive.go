package nest

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// UnsupportedTypeError reports a value outside the primitive kinds accepted
// by Primitive, naming the offending Go type.
type UnsupportedTypeError struct {
	Value any
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported value of type %T", e.Value)
}

// Primitive validates and normalizes a structure to a restricted set of
// primitive kinds: strings, integers, booleans, floats, nil, time.Time,
// uuid.UUID, maps (keys and values normalized recursively), and sequences
// (materialized into []any). Byte slices are decoded to strings. Anything
// else returns an *UnsupportedTypeError; there is no silent passthrough.
//
// Normalized maps come back as map[string]any when every key normalizes to a
// string, otherwise map[any]any, which makes Primitive idempotent on its own
// output.
func Primitive(v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return t, nil
	case []byte:
		return string(t), nil
	case time.Time:
		return t, nil
	case uuid.UUID:
		return t, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() { //nolint:exhaustive // remaining kinds are rejected below
	case reflect.Map:
		return primitiveMap(rv)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes()), nil
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			p, err := Primitive(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = p
		}
		return out, nil
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return Primitive(rv.Elem().Interface())
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		// Named scalar types (type ID int, type Name string) pass unchanged.
		return v, nil
	default:
		return nil, &UnsupportedTypeError{Value: v}
	}
}

func primitiveMap(rv reflect.Value) (any, error) {
	keys := make([]any, 0, rv.Len())
	vals := make([]any, 0, rv.Len())
	allStrings := true

	iter := rv.MapRange()
	for iter.Next() {
		k, err := Primitive(iter.Key().Interface())
		if err != nil {
			return nil, err
		}
		// Array keys normalize to []any, which cannot key the output map.
		if k != nil && !reflect.TypeOf(k).Comparable() {
			return nil, &UnsupportedTypeError{Value: iter.Key().Interface()}
		}
		val, err := Primitive(iter.Value().Interface())
		if err != nil {
			return nil, err
		}
		if _, ok := k.(string); !ok {
			allStrings = false
		}
		keys = append(keys, k)
		vals = append(vals, val)
	}

	if allStrings {
		out := make(map[string]any, len(keys))
		for i, k := range keys {
			out[k.(string)] = vals[i]
		}
		return out, nil
	}
	out := make(map[any]any, len(keys))
	for i, k := range keys {
		out[k] = vals[i]
	}
	return out, nil
}
