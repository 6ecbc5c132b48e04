package realtime

import (
	"sync"

	"github.com/psgtech/campus-portal-api/pkg/metrics"
)

// Registry maps identity keys to connection handles. A key is either a bare
// email or "email:role". Keys keep their first insertion position when
// overwritten, and disconnect cleanup removes only the first key (in that
// order) owned by the departing handle.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	handles map[string]string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		handles: make(map[string]string),
	}
}

// Set maps key to handle, replacing any previous owner of key
func (r *Registry) Set(key, handle string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.handles[key]; !ok {
		r.order = append(r.order, key)
	}
	r.handles[key] = handle
	metrics.RegistryIdentities.Set(float64(len(r.handles)))
}

// Lookup returns the handle currently registered under key
func (r *Registry) Lookup(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handle, ok := r.handles[key]
	return handle, ok
}

// RemoveFirst deletes the first key mapped to handle and returns it.
// Other keys mapped to the same handle stay registered.
func (r *Registry) RemoveFirst(handle string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, key := range r.order {
		if r.handles[key] != handle {
			continue
		}
		delete(r.handles, key)
		r.order = append(r.order[:i], r.order[i+1:]...)
		metrics.RegistryIdentities.Set(float64(len(r.handles)))
		return key, true
	}
	return "", false
}

// Keys returns the registered keys in insertion order
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// Len returns the number of registered keys
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handles)
}
