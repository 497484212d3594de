// Package registry provides the ordered name-to-capability registry shared
// by the tool and prompt paths. Both paths need the same bookkeeping: a
// unique-name lookup to a handler plus the spec list for list requests, in
// registration order.
package registry

import "fmt"

// Entry pairs a capability's listable spec with its handler.
type Entry[S, H any] struct {
	Spec    S
	Handler H
}

// Registry is an insert-ordered map from capability name to entry. It is
// populated once at startup and read-only afterwards, so lookups need no
// synchronization.
type Registry[S, H any] struct {
	names   []string
	entries map[string]Entry[S, H]
}

// New creates an empty registry.
func New[S, H any]() *Registry[S, H] {
	return &Registry[S, H]{
		entries: make(map[string]Entry[S, H]),
	}
}

// Register adds a named capability. Names must be unique; a duplicate is a
// programming error surfaced at startup.
func (r *Registry[S, H]) Register(name string, spec S, handler H) error {
	if name == "" {
		return fmt.Errorf("capability name must not be empty")
	}
	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("capability %q is already registered", name)
	}
	r.names = append(r.names, name)
	r.entries[name] = Entry[S, H]{Spec: spec, Handler: handler}
	return nil
}

// Lookup returns the entry for name, and whether it exists.
func (r *Registry[S, H]) Lookup(name string) (Entry[S, H], bool) {
	entry, ok := r.entries[name]
	return entry, ok
}

// Names returns the registered names in registration order.
func (r *Registry[S, H]) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Specs returns the registered specs in registration order, for list
// responses.
func (r *Registry[S, H]) Specs() []S {
	out := make([]S, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.entries[name].Spec)
	}
	return out
}

// Len returns the number of registered capabilities.
func (r *Registry[S, H]) Len() int {
	return len(r.names)
}
