package tunnel

import (
	"context"
	"sync"
	"time"

	"github.com/tunlify/tunlify/internal/tunnel/proto"
)

// DefaultRequestTimeout bounds the wait for one proxied HTTP request.
const DefaultRequestTimeout = 30 * time.Second

// pendingMaxAge is the janitor's retention cap for pending entries.
const pendingMaxAge = 2 * time.Minute

type pendingOutcome struct {
	response *proto.Response
	err      error
}

// PendingEntry describes one in-flight proxied request.
type PendingEntry struct {
	Key          Key
	Method       string
	Path         string
	RegisteredAt time.Time
}

type pendingWaiter struct {
	entry PendingEntry
	// Buffered by one so the completing goroutine never blocks.
	done  chan pendingOutcome
	timer *time.Timer
}

// Waiter is the handle an ingress goroutine blocks on.
type Waiter struct {
	id    string
	table *PendingTable
	w     *pendingWaiter
}

// PendingTable correlates request ids with their waiting ingress goroutines.
// Each entry is resolved exactly once: the goroutine that removes the entry
// from the map (under the mutex) owns the completion.
type PendingTable struct {
	mu      sync.Mutex
	waiters map[string]*pendingWaiter
}

// NewPendingTable creates an empty pending-request table.
func NewPendingTable() *PendingTable {
	return &PendingTable{waiters: make(map[string]*pendingWaiter)}
}

// Register inserts an entry for the given request id. The entry is visible
// to Complete/Fail before Register returns, so a response can never beat the
// registration. The timeout starts immediately.
func (t *PendingTable) Register(id string, entry PendingEntry, timeout time.Duration) (*Waiter, error) {
	w := &pendingWaiter{
		entry: entry,
		done:  make(chan pendingOutcome, 1),
	}

	t.mu.Lock()
	if _, exists := t.waiters[id]; exists {
		t.mu.Unlock()
		return nil, ErrDuplicateRequest
	}
	t.waiters[id] = w
	// The timer is armed under the lock so its callback, which re-takes the
	// lock before touching the waiter, can never observe a nil timer.
	w.timer = time.AfterFunc(timeout, func() {
		t.Fail(id, ErrTimeout)
	})
	t.mu.Unlock()

	return &Waiter{id: id, table: t, w: w}, nil
}

// Complete resolves the entry with a response. It reports whether an entry
// was still present.
func (t *PendingTable) Complete(id string, resp *proto.Response) bool {
	w := t.take(id)
	if w == nil {
		return false
	}
	w.done <- pendingOutcome{response: resp}
	return true
}

// Fail resolves the entry with an error.
func (t *PendingTable) Fail(id string, err error) bool {
	w := t.take(id)
	if w == nil {
		return false
	}
	w.done <- pendingOutcome{err: err}
	return true
}

// CancelByKey fails every entry registered under the given tunnel key.
// It returns the number of entries cancelled.
func (t *PendingTable) CancelByKey(key Key, err error) int {
	t.mu.Lock()
	var cancelled []*pendingWaiter
	for id, w := range t.waiters {
		if w.entry.Key == key {
			delete(t.waiters, id)
			cancelled = append(cancelled, w)
		}
	}
	t.mu.Unlock()

	for _, w := range cancelled {
		w.stopTimer()
		w.done <- pendingOutcome{err: err}
	}
	return len(cancelled)
}

// Sweep fails every entry older than maxAge. The per-entry timer normally
// fires first; the sweep is the backstop.
func (t *PendingTable) Sweep(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	t.mu.Lock()
	var expired []*pendingWaiter
	for id, w := range t.waiters {
		if w.entry.RegisteredAt.Before(cutoff) {
			delete(t.waiters, id)
			expired = append(expired, w)
		}
	}
	t.mu.Unlock()

	for _, w := range expired {
		w.stopTimer()
		w.done <- pendingOutcome{err: ErrTimeout}
	}
	return len(expired)
}

// Len returns the number of in-flight entries.
func (t *PendingTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.waiters)
}

// take removes and returns the waiter for id, or nil if already resolved.
func (t *PendingTable) take(id string) *pendingWaiter {
	t.mu.Lock()
	w, ok := t.waiters[id]
	if ok {
		delete(t.waiters, id)
	}
	t.mu.Unlock()

	if !ok {
		return nil
	}
	w.stopTimer()
	return w
}

func (w *pendingWaiter) stopTimer() {
	if w.timer != nil {
		w.timer.Stop()
	}
}

// Wait blocks until the entry is resolved or the context is cancelled.
// On context cancellation the entry is removed from the table.
func (wt *Waiter) Wait(ctx context.Context) (*proto.Response, error) {
	select {
	case outcome := <-wt.w.done:
		return outcome.response, outcome.err
	case <-ctx.Done():
		// The entry may resolve concurrently; whoever takes it out of the
		// table wins, so check the channel once more after removal.
		if wt.table.take(wt.id) == nil {
			outcome := <-wt.w.done
			return outcome.response, outcome.err
		}
		return nil, ctx.Err()
	}
}
