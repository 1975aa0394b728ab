package status

import (
	"slices"
	"sync"
)

// Family holds one named metric of type T per key
// Producers call Get once and keep the pointer; only registration and Range lock
type Family[T any] struct {
	mu      sync.Mutex
	metrics map[string]*T
	keys    []string // Sorted on insert so Range never sorts
}

func NewFamily[T any]() *Family[T] {
	return &Family[T]{metrics: make(map[string]*T)}
}

// Get returns the metric for key, registering a zero value on first use
func (f *Family[T]) Get(key string) *T {
	f.mu.Lock()
	defer f.mu.Unlock()

	if m, ok := f.metrics[key]; ok {
		return m
	}
	m := new(T)
	f.metrics[key] = m
	i, _ := slices.BinarySearch(f.keys, key)
	f.keys = slices.Insert(f.keys, i, key)
	return m
}

// Range visits metrics in key order
func (f *Family[T]) Range(fn func(key string, m *T)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range f.keys {
		fn(k, f.metrics[k])
	}
}

func (f *Family[T]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.keys)
}
