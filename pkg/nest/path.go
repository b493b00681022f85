// Package nest provides helpers for nested map/slice structures: path-based
// lookup with safe-navigation semantics, value redaction and masking, type
// normalization, nested key search, and scoped temporary mutation.
//
// Functions documented as copying are safe for concurrent use on shared
// inputs; functions documented as mutating in place are not, and callers must
// serialize access or supply independent copies.
package nest

import (
	"iter"

	"github.com/oakwood-commons/nestx/internal/pathwalk"
)

// Get resolves a path against root and returns the value it reaches, or nil
// if any step of the path fails to resolve.
//
// The path is either a delimited string ("a.b[0]", "a,b,0" and "a.b.0" are
// equivalent) or a pre-built sequence mixing strings and typed keys
// ([]any{"a", "b", 0}). Per token, resolution tries an exported struct field,
// then a mapping key, then a sequence index (coercing string tokens to
// integers over slices). Get never panics and never returns an error.
func Get(root any, path any) any {
	return GetDefault(root, path, nil)
}

// GetDefault is Get with a caller-supplied fallback. The moment a token fails
// to resolve, def is returned and the remaining tokens are not consulted,
// even if def itself would resolve them. A step that succeeds but yields nil
// ends the walk with nil.
func GetDefault(root any, path any, def any) any {
	obj := root
	for token := range pathwalk.Tokens(path) {
		v, ok := pathwalk.Step(obj, token)
		if !ok {
			return def
		}
		if pathwalk.IsNil(v) {
			return nil
		}
		obj = v
	}
	return obj
}

// ParsePath exposes the tokenizer used by Get: a lazy sequence of lookup
// tokens with empty tokens dropped. Re-invoke to restart.
func ParsePath(path any) iter.Seq[any] {
	return pathwalk.Tokens(path)
}
