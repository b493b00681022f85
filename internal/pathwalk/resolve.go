package pathwalk

import (
	"reflect"
	"strconv"
	"strings"
)

// Step resolves a single token against cur. Strategies are tried in order:
// exported struct field, mapping key, sequence index (with string-to-int
// coercion). The boolean reports whether any strategy succeeded; Step never
// panics for any combination of node and token shapes.
func Step(cur any, token any) (any, bool) {
	if cur == nil {
		return nil, false
	}

	if name, ok := token.(string); ok {
		if v, ok := fieldValue(cur, name); ok {
			return v, true
		}
	}

	switch t := cur.(type) {
	case map[string]any:
		if name, ok := token.(string); ok {
			v, ok := t[name]
			return v, ok
		}
		return nil, false
	case map[any]any:
		v, ok := t[token]
		return v, ok
	case []any:
		return indexValue(reflect.ValueOf(t), token)
	}

	rv := reflect.ValueOf(cur)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() { //nolint:exhaustive // only container kinds participate in resolution
	case reflect.Map:
		return mapValue(rv, token)
	case reflect.Slice, reflect.Array:
		return indexValue(rv, token)
	case reflect.Struct:
		if name, ok := token.(string); ok {
			return structField(rv, name)
		}
	}
	return nil, false
}

// fieldValue resolves a token as an exported struct field, dereferencing
// pointers first. This is the attribute-style step.
func fieldValue(cur any, name string) (any, bool) {
	rv := reflect.ValueOf(cur)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	return structField(rv, name)
}

// structField matches by json tag first, then by field name, mirroring how
// decoded documents address struct-backed nodes.
func structField(rv reflect.Value, name string) (any, bool) {
	typ := rv.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("json")
		tagName := strings.Split(tag, ",")[0]
		if tagName == "-" {
			continue
		}
		if tagName == name || field.Name == name {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}

// mapValue resolves a token against an arbitrary map. The token must be
// convertible to the map's key type; no string-to-int parsing happens here,
// a "3" token does not match an integer key.
func mapValue(rv reflect.Value, token any) (any, bool) {
	keyType := rv.Type().Key()
	kv := reflect.ValueOf(token)
	if !kv.IsValid() {
		return nil, false
	}
	if kv.Type() != keyType {
		if keyType.Kind() == reflect.Interface {
			// map[any]V accepts the token directly
		} else if kv.Type().ConvertibleTo(keyType) && sameBaseKind(kv.Kind(), keyType.Kind()) {
			kv = kv.Convert(keyType)
		} else {
			return nil, false
		}
	}
	value := rv.MapIndex(kv)
	if !value.IsValid() {
		return nil, false
	}
	return value.Interface(), true
}

// sameBaseKind guards map key conversion: only widen within the same scalar
// family (int->int64, string->aliased string), never across families.
func sameBaseKind(a, b reflect.Kind) bool {
	switch {
	case a == b:
		return true
	case isIntKind(a) && isIntKind(b):
		return true
	case a == reflect.String && b == reflect.String:
		return true
	}
	return false
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// indexValue resolves a token as a sequence index. String tokens are coerced
// with strconv.Atoi; negative indices count from the end of the sequence.
func indexValue(rv reflect.Value, token any) (any, bool) {
	idx, ok := asInt(token)
	if !ok {
		return nil, false
	}
	if idx < 0 {
		idx += rv.Len()
	}
	if idx < 0 || idx >= rv.Len() {
		return nil, false
	}
	return rv.Index(idx).Interface(), true
}

func asInt(token any) (int, bool) {
	switch t := token.(type) {
	case int:
		return t, true
	case int8:
		return int(t), true
	case int16:
		return int(t), true
	case int32:
		return int(t), true
	case int64:
		return int(t), true
	case uint:
		return int(t), true
	case uint8:
		return int(t), true
	case uint16:
		return int(t), true
	case uint32:
		return int(t), true
	case uint64:
		return int(t), true
	case float32:
		return int(t), true
	case float64:
		// Truncates toward zero, so 2.5 indexes element 2.
		return int(t), true
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// IsNil reports whether v is nil, including typed nils behind pointer,
// map, slice, or interface values.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() { //nolint:exhaustive // only nilable kinds matter
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
