package store

import "sync"

// Resetter is anything that can return to its initial state.
type Resetter interface {
	Reset()
}

type registryEntry struct {
	name      string
	store     Resetter
	skipReset bool
}

// Registry owns the reset lifecycle of the stores registered with it.
type Registry struct {
	mu      sync.Mutex
	entries []registryEntry
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds s under name. Stores registered with skipReset survive
// ResetAll.
func (r *Registry) Register(name string, s Resetter, skipReset bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, registryEntry{name: name, store: s, skipReset: skipReset})
}

// ResetAll resets every store not registered with skipReset, in
// registration order.
func (r *Registry) ResetAll() {
	r.mu.Lock()
	entries := append([]registryEntry(nil), r.entries...)
	r.mu.Unlock()

	for _, e := range entries {
		if !e.skipReset {
			e.store.Reset()
		}
	}
}

// Names lists registered stores in registration order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	return names
}
