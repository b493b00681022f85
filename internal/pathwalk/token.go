// Package pathwalk implements the token parser and step resolver behind
// nest.Get: a path is split into lookup tokens, and each token is resolved
// against the current node by an ordered set of accessor strategies.
package pathwalk

import (
	"iter"
	"reflect"
	"strings"
)

// Delimiters is the set of path separator characters. Any run of them
// collapses to a single split point, so "a..b", "a[0].b" and "a,0,b" all
// tokenize without producing empty tokens.
const Delimiters = ",.[]"

// splitAndTrim splits s on any delimiter character and drops empty parts.
func splitAndTrim(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(Delimiters, r)
	})
	return parts
}

// Tokens turns a path into a lazy sequence of lookup tokens.
//
// A string path is split on the delimiter set. A pre-built sequence keeps
// non-string elements as-is (typed keys, integer indices) while string
// elements are re-split by the same delimiters. Any other value is treated
// as a single opaque token. Malformed or empty paths yield zero tokens;
// tokenization has no error conditions.
func Tokens(path any) iter.Seq[any] {
	return func(yield func(any) bool) {
		switch p := path.(type) {
		case nil:
			return
		case string:
			for _, part := range splitAndTrim(p) {
				if !yield(part) {
					return
				}
			}
		case []string:
			for _, el := range p {
				for _, part := range splitAndTrim(el) {
					if !yield(part) {
						return
					}
				}
			}
		case []any:
			for _, el := range p {
				if !yieldElement(el, yield) {
					return
				}
			}
		default:
			rv := reflect.ValueOf(path)
			if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
				for i := 0; i < rv.Len(); i++ {
					if !yieldElement(rv.Index(i).Interface(), yield) {
						return
					}
				}
				return
			}
			yield(path)
		}
	}
}

func yieldElement(el any, yield func(any) bool) bool {
	if s, ok := el.(string); ok {
		for _, part := range splitAndTrim(s) {
			if !yield(part) {
				return false
			}
		}
		return true
	}
	return yield(el)
}
