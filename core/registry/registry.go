package registry

import (
	"sync"
)

// Registry is a thread-safe key-value store with per-key locking.
// Extension registries (api, cmd, cron, graphql) store their entries
// here and lock the key once applied, making them immutable after init.
type Registry struct {
	m      sync.Map
	locked sync.Map // key -> struct{}
}

// GlobalRegistry is the process-wide registry instance.
var GlobalRegistry = &Registry{}

// GetGlobal returns the value stored under key.
func (r *Registry) GetGlobal(key string) (interface{}, bool) {
	return r.m.Load(key)
}

// SetGlobal stores value under key. Panics if the key is locked.
func (r *Registry) SetGlobal(key string, value interface{}) {
	if r.IsLocked(key) {
		panic("registry: key locked: " + key)
	}
	r.m.Store(key, value)
}

// Lock marks a key immutable. Further SetGlobal calls on it panic.
func (r *Registry) Lock(key string) {
	r.locked.Store(key, struct{}{})
}

// IsLocked reports whether a key has been locked.
func (r *Registry) IsLocked(key string) bool {
	_, ok := r.locked.Load(key)
	return ok
}

// UnlockForTesting removes the lock on a key (tests only).
func (r *Registry) UnlockForTesting(key string) {
	r.locked.Delete(key)
}
