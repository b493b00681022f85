package nest

import "dario.cat/mergo"

// Merge deep-merges src into dst, with src values winning on conflicts.
// Nested maps are merged key by key rather than replaced wholesale. dst is
// mutated in place; use PushKeys when the overlay must be reverted.
func Merge(dst map[string]any, src map[string]any) error {
	return mergo.Merge(&dst, src, mergo.WithOverride)
}
