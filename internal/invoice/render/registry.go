package render

import "sync"

// Registry holds the most recently rendered layout per variant. Export reads
// from here; a variant that was never rendered has no export target.
type Registry struct {
	mu      sync.RWMutex
	layouts map[Variant]Layout
}

func NewRegistry() *Registry {
	return &Registry{layouts: make(map[Variant]Layout)}
}

// Put records the variant's current layout, replacing any previous one.
func (r *Registry) Put(layout Layout) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.layouts[layout.Variant] = layout
}

// Get returns the registered layout for the variant, if any.
func (r *Registry) Get(variant Variant) (Layout, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	layout, ok := r.layouts[variant]
	return layout, ok
}
