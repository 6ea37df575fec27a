package tunnel

import (
	"testing"
)

func newTestChannel(key Key) *Channel {
	return NewChannel(nil, ChannelInfo{Key: key}, NewPendingTable(), nil)
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	key := Key{Subdomain: "myapp", Region: "id"}
	ch := newTestChannel(key)

	if prev := reg.Register(ch); prev != nil {
		t.Fatalf("first Register returned a displaced channel")
	}

	got, ok := reg.Lookup(key)
	if !ok || got != ch {
		t.Fatal("Lookup did not return the registered channel")
	}
	if _, ok := reg.Lookup(Key{Subdomain: "other", Region: "id"}); ok {
		t.Error("Lookup found a channel for an unregistered key")
	}
	if reg.Len() != 1 {
		t.Errorf("Len = %d, want 1", reg.Len())
	}
}

func TestRegistryLastWriterWins(t *testing.T) {
	reg := NewRegistry()
	key := Key{Subdomain: "myapp", Region: "id"}
	first := newTestChannel(key)
	second := newTestChannel(key)

	reg.Register(first)
	prev := reg.Register(second)
	if prev != first {
		t.Fatal("Register should return the displaced channel")
	}

	got, _ := reg.Lookup(key)
	if got != second {
		t.Error("newer channel should win the registry slot")
	}
}

func TestRegistryDeregisterCompareAndDelete(t *testing.T) {
	reg := NewRegistry()
	key := Key{Subdomain: "myapp", Region: "id"}
	first := newTestChannel(key)
	second := newTestChannel(key)

	reg.Register(first)
	reg.Register(second)

	// The displaced channel closes late; it must not evict its successor.
	if reg.Deregister(first) {
		t.Error("Deregister of a displaced channel should be a no-op")
	}
	if got, ok := reg.Lookup(key); !ok || got != second {
		t.Fatal("successor was evicted by its predecessor's close")
	}

	if !reg.Deregister(second) {
		t.Error("Deregister of the current owner should succeed")
	}
	if _, ok := reg.Lookup(key); ok {
		t.Error("key still resolves after Deregister")
	}
}

func TestRegistryKeyString(t *testing.T) {
	key := Key{Subdomain: "myapp", Region: "id"}
	if key.String() != "myapp.id" {
		t.Errorf("Key.String() = %q, want myapp.id", key.String())
	}
}

func TestRegistrySnapshot(t *testing.T) {
	reg := NewRegistry()
	a := newTestChannel(Key{Subdomain: "a", Region: "id"})
	b := newTestChannel(Key{Subdomain: "b", Region: "sg"})
	reg.Register(a)
	reg.Register(b)

	snap := reg.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("Snapshot has %d channels, want 2", len(snap))
	}
	seen := map[Key]bool{}
	for _, ch := range snap {
		seen[ch.Key()] = true
	}
	if !seen[a.Key()] || !seen[b.Key()] {
		t.Error("Snapshot missing registered channels")
	}
}
