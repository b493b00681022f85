package nest

// PushKeys overlays the given key/value pairs onto m and returns a restore
// function that puts back the previous values, deleting keys that did not
// exist before the overlay. Callers should defer the restore so it runs on
// every exit path, including panics:
//
//	restore := nest.PushKeys(cfg, map[string]any{"debug": true})
//	defer restore()
//
// PushKeys mutates m in place; concurrent use requires caller serialization.
func PushKeys(m map[string]any, overrides map[string]any) (restore func()) {
	type prior struct {
		value   any
		present bool
	}
	backup := make(map[string]prior, len(overrides))
	for k := range overrides {
		v, ok := m[k]
		backup[k] = prior{value: v, present: ok}
	}
	for k, v := range overrides {
		m[k] = v
	}
	return func() {
		for k, p := range backup {
			if p.present {
				m[k] = p.value
			} else {
				delete(m, k)
			}
		}
	}
}
