package status

import (
	"fmt"
	"sync/atomic"
)

// Registry groups the overlay metrics by value type
// Producers resolve their pointers once at construction and write atomics from the tick
type Registry struct {
	Bools   *Family[atomic.Bool]
	Ints    *Family[atomic.Int64]
	Floats  *Family[Float]
	Strings *Family[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewFamily[atomic.Bool](),
		Ints:    NewFamily[atomic.Int64](),
		Floats:  NewFamily[Float](),
		Strings: NewFamily[AtomicString](),
	}
}

// Lines formats every metric as "key: value", grouped by type and sorted by key
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.Bools.Len()+r.Ints.Len()+r.Floats.Len()+r.Strings.Len())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s: %t", k, v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s: %d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *Float) {
		lines = append(lines, fmt.Sprintf("%s: %.2f", k, v.Load()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s: %s", k, v.Load()))
	})
	return lines
}
