package live

import (
	"context"
	"sync"
)

// Registry tracks the mounts currently running so the server can report on
// them and tear them down on shutdown.
type Registry struct {
	mu     sync.Mutex
	mounts map[string]entry
	closed bool
}

type entry struct {
	mount  *Mount
	cancel context.CancelFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{mounts: make(map[string]entry)}
}

// Add records a mount together with the cancel func that unmounts it. Once
// CloseAll has run, Add cancels the mount immediately and returns false.
func (r *Registry) Add(m *Mount, cancel context.CancelFunc) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		cancel()
		return false
	}
	r.mounts[m.ID] = entry{mount: m, cancel: cancel}
	return true
}

// Remove forgets a mount.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.mounts, id)
}

// Len returns the number of registered mounts.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.mounts)
}

// Timers returns how many registered mounts currently hold a running
// rotation. It never exceeds Len.
func (r *Registry) Timers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.mounts {
		if e.mount.rotation.Running() {
			n++
		}
	}
	return n
}

// CloseAll cancels every registered mount and refuses later ones. Each
// mount's Run stops its own rotation on the way out.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	for _, e := range r.mounts {
		e.cancel()
	}
}
