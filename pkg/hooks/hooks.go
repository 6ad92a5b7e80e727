package hooks

import (
	"cmp"
	"context"
	"slices"
	"sync"
)

// DefaultPriority is the priority used by callers that have no ordering needs.
const DefaultPriority = 10

const persistHookPrefix = "pre_update_option_"

// PersistHook returns the filter name the host applies right before an option
// value is written.
func PersistHook(option string) string {
	return persistHookPrefix + option
}

// Filter transforms value. name is the chain the filter was invoked for.
type Filter[T any] func(ctx context.Context, name string, value T) T

type entry[T any] struct {
	fn       Filter[T]
	priority int
	seq      uint64
}

// Registry holds filter chains keyed by name.
type Registry[T any] struct {
	mu     sync.RWMutex
	chains map[string][]entry[T]
	seq    uint64
}

// New creates an empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{
		chains: make(map[string][]entry[T]),
	}
}

// Add appends fn to the chain called name. Nil filters are ignored.
func (r *Registry[T]) Add(name string, fn Filter[T], priority int) {
	if fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	chain := append(r.chains[name], entry[T]{fn: fn, priority: priority, seq: r.seq})
	slices.SortStableFunc(chain, func(a, b entry[T]) int {
		if c := cmp.Compare(a.priority, b.priority); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	r.chains[name] = chain
}

// Has reports whether at least one filter is attached to name.
func (r *Registry[T]) Has(name string) bool {
	return r.Count(name) > 0
}

// Count returns the number of filters attached to name.
func (r *Registry[T]) Count(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.chains[name])
}

// Remove detaches every filter from name.
func (r *Registry[T]) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.chains, name)
}

// Names returns the names that have filters attached, sorted.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.chains))
	for name := range r.chains {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Apply runs value through the chain called name and returns the result.
func (r *Registry[T]) Apply(ctx context.Context, name string, value T) T {
	r.mu.RLock()
	chain := slices.Clone(r.chains[name])
	r.mu.RUnlock()

	for _, e := range chain {
		value = e.fn(ctx, name, value)
	}
	return value
}
