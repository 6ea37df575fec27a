package tunnel

import (
	"fmt"
	"sync"
)

// Key identifies a tunnel on this gateway: the leftmost hostname label plus
// the region code the edge proxy reports.
type Key struct {
	Subdomain string
	Region    string
}

func (k Key) String() string {
	return fmt.Sprintf("%s.%s", k.Subdomain, k.Region)
}

// Registry is the gateway-local map from tunnel key to its control channel.
// At most one channel holds a key at any instant; registering over a live
// entry returns the previous channel so the caller can close it
// (last-writer-wins).
type Registry struct {
	mu       sync.RWMutex
	channels map[Key]*Channel
}

// NewRegistry creates an empty connection registry.
func NewRegistry() *Registry {
	return &Registry{channels: make(map[Key]*Channel)}
}

// Register installs ch under its key and returns the channel it displaced,
// if any. The caller must close the displaced channel outside the lock.
func (r *Registry) Register(ch *Channel) (prev *Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev = r.channels[ch.Key()]
	r.channels[ch.Key()] = ch
	return prev
}

// Lookup returns the channel registered for the key.
func (r *Registry) Lookup(key Key) (*Channel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ch, ok := r.channels[key]
	return ch, ok
}

// Deregister removes the entry for ch's key only if it still points at ch
// (compare-and-delete). It reports whether the entry was removed.
func (r *Registry) Deregister(ch *Channel) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.channels[ch.Key()]; ok && current == ch {
		delete(r.channels, ch.Key())
		return true
	}
	return false
}

// Snapshot returns the currently registered channels.
func (r *Registry) Snapshot() []*Channel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Channel, 0, len(r.channels))
	for _, ch := range r.channels {
		out = append(out, ch)
	}
	return out
}

// Len returns the number of registered channels.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.channels)
}
