package nest

import (
	"iter"
	"reflect"
)

// FindKey returns a lazy sequence of occurrences of key anywhere in a nested
// map/slice structure, matched by exact key equality. Each yielded value is
// the matched key itself; consumers can stop early, which ends the walk.
func FindKey(node any, key any) iter.Seq[any] {
	return func(yield func(any) bool) {
		findKey(node, key, yield)
	}
}

// KeyIn reports whether key occurs anywhere in the nested structure. It
// short-circuits on the first occurrence.
func KeyIn(node any, key any) bool {
	for range FindKey(node, key) {
		return true
	}
	return false
}

// findKey drives the walk; a false return means the consumer stopped.
func findKey(node any, key any, yield func(any) bool) bool {
	switch t := node.(type) {
	case []any:
		for _, item := range t {
			if !findKey(item, key, yield) {
				return false
			}
		}
	case map[string]any:
		if ks, ok := key.(string); ok {
			if _, present := t[ks]; present {
				if !yield(key) {
					return false
				}
			}
		}
		for _, v := range t {
			if !findKey(v, key, yield) {
				return false
			}
		}
	case map[any]any:
		if _, present := t[key]; present {
			if !yield(key) {
				return false
			}
		}
		for _, v := range t {
			if !findKey(v, key, yield) {
				return false
			}
		}
	default:
		return findKeyReflect(node, key, yield)
	}
	return true
}

// findKeyReflect handles typed maps and slices outside the generic tree
// forms. Scalars terminate the walk for their branch.
func findKeyReflect(node any, key any, yield func(any) bool) bool {
	if node == nil {
		return true
	}
	rv := reflect.ValueOf(node)
	switch rv.Kind() { //nolint:exhaustive // leaves need no descent
	case reflect.Map:
		kv := reflect.ValueOf(key)
		if kv.IsValid() && kv.Type().AssignableTo(rv.Type().Key()) {
			if rv.MapIndex(kv).IsValid() {
				if !yield(key) {
					return false
				}
			}
		}
		iter := rv.MapRange()
		for iter.Next() {
			if !findKey(iter.Value().Interface(), key, yield) {
				return false
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if !findKey(rv.Index(i).Interface(), key, yield) {
				return false
			}
		}
	}
	return true
}
