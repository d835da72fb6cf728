package utils

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Registry is a named, thread-safe map that refuses duplicate keys
type Registry[K cmp.Ordered, V any] struct {
	mu    sync.RWMutex
	name  string
	items map[K]V
}

// NewRegistry creates an empty registry; name appears in its errors
func NewRegistry[K cmp.Ordered, V any](name string) *Registry[K, V] {
	return &Registry[K, V]{
		name:  name,
		items: make(map[K]V),
	}
}

// Register adds value under key
func (r *Registry[K, V]) Register(key K, value V) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[key]; exists {
		return fmt.Errorf("%s: %v is already registered", r.name, key)
	}
	r.items[key] = value
	return nil
}

// MustRegister is Register for entries fixed at build time
func (r *Registry[K, V]) MustRegister(key K, value V) {
	if err := r.Register(key, value); err != nil {
		panic(err)
	}
}

// Get retrieves the value stored under key
func (r *Registry[K, V]) Get(key K) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, exists := r.items[key]
	return value, exists
}

// Has checks if a key exists in the registry
func (r *Registry[K, V]) Has(key K) bool {
	_, exists := r.Get(key)
	return exists
}

// Keys returns every key in ascending order
func (r *Registry[K, V]) Keys() []K {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.items))
}

// Size returns the number of items in the registry
func (r *Registry[K, V]) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// Filter returns the keys, in order, whose entries match predicate
func (r *Registry[K, V]) Filter(predicate func(K, V) bool) []K {
	var keys []K
	for _, key := range r.Keys() {
		value, _ := r.Get(key)
		if predicate(key, value) {
			keys = append(keys, key)
		}
	}
	return keys
}
