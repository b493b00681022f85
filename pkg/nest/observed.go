package nest

import "github.com/go-logr/logr"

// ObservedMap decorates a map[string]any so every access and mutation is
// reported through a logr.Logger. It is a troubleshooting aid for figuring
// out how a shared configuration map is actually used; it is not part of the
// functional core and adds no synchronization.
type ObservedMap struct {
	m   map[string]any
	log logr.Logger
}

// NewObservedMap wraps m with the given logger. A nil m starts empty.
func NewObservedMap(m map[string]any, log logr.Logger) *ObservedMap {
	if m == nil {
		m = make(map[string]any)
	}
	return &ObservedMap{m: m, log: log}
}

// Get reads a key, logging the access and whether it was present.
func (o *ObservedMap) Get(key string) (any, bool) {
	v, ok := o.m[key]
	o.log.V(1).Info("map get", "key", key, "found", ok)
	return v, ok
}

// Set writes a key, logging the mutation.
func (o *ObservedMap) Set(key string, value any) {
	o.log.V(1).Info("map set", "key", key)
	o.m[key] = value
}

// Delete removes a key, logging the mutation.
func (o *ObservedMap) Delete(key string) {
	o.log.V(1).Info("map delete", "key", key)
	delete(o.m, key)
}

// Len returns the number of entries.
func (o *ObservedMap) Len() int {
	return len(o.m)
}

// Snapshot returns a shallow copy of the current contents without logging
// per-key accesses.
func (o *ObservedMap) Snapshot() map[string]any {
	out := make(map[string]any, len(o.m))
	for k, v := range o.m {
		out[k] = v
	}
	return out
}
