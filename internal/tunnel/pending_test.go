package tunnel

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tunlify/tunlify/internal/tunnel/proto"
)

func testEntry(key Key) PendingEntry {
	return PendingEntry{Key: key, Method: "GET", Path: "/", RegisteredAt: time.Now()}
}

func TestPendingCompleteDeliversResponse(t *testing.T) {
	table := NewPendingTable()
	key := Key{Subdomain: "myapp", Region: "id"}

	waiter, err := table.Register("r1", testEntry(key), time.Minute)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if !table.Complete("r1", &proto.Response{RequestID: "r1", StatusCode: 204}) {
		t.Fatal("Complete should find the entry")
	}

	resp, err := waiter.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if resp.StatusCode != 204 {
		t.Errorf("StatusCode = %d, want 204", resp.StatusCode)
	}
	if table.Len() != 0 {
		t.Errorf("table should be empty, has %d", table.Len())
	}
}

func TestPendingExactlyOnce(t *testing.T) {
	table := NewPendingTable()
	key := Key{Subdomain: "myapp", Region: "id"}

	if _, err := table.Register("r1", testEntry(key), time.Minute); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if !table.Complete("r1", &proto.Response{RequestID: "r1"}) {
		t.Fatal("first Complete should succeed")
	}
	if table.Complete("r1", &proto.Response{RequestID: "r1"}) {
		t.Error("second Complete should find nothing")
	}
	if table.Fail("r1", errors.New("late error")) {
		t.Error("Fail after Complete should find nothing")
	}
}

func TestPendingDuplicateRegister(t *testing.T) {
	table := NewPendingTable()
	key := Key{Subdomain: "myapp", Region: "id"}

	if _, err := table.Register("r1", testEntry(key), time.Minute); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := table.Register("r1", testEntry(key), time.Minute); !errors.Is(err, ErrDuplicateRequest) {
		t.Errorf("err = %v, want ErrDuplicateRequest", err)
	}
}

func TestPendingTimeout(t *testing.T) {
	table := NewPendingTable()
	key := Key{Subdomain: "myapp", Region: "id"}

	waiter, err := table.Register("r1", testEntry(key), 10*time.Millisecond)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err = waiter.Wait(context.Background())
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("err = %v, want ErrTimeout", err)
	}
	if table.Len() != 0 {
		t.Errorf("timed-out entry should be gone, table has %d", table.Len())
	}
}

func TestPendingCancelByKey(t *testing.T) {
	table := NewPendingTable()
	gone := Key{Subdomain: "gone", Region: "id"}
	alive := Key{Subdomain: "alive", Region: "id"}

	w1, _ := table.Register("r1", testEntry(gone), time.Minute)
	w2, _ := table.Register("r2", testEntry(gone), time.Minute)
	w3, _ := table.Register("r3", testEntry(alive), time.Minute)

	if n := table.CancelByKey(gone, ErrTunnelGone); n != 2 {
		t.Fatalf("cancelled %d, want 2", n)
	}

	for _, w := range []*Waiter{w1, w2} {
		if _, err := w.Wait(context.Background()); !errors.Is(err, ErrTunnelGone) {
			t.Errorf("err = %v, want ErrTunnelGone", err)
		}
	}

	// The other tunnel's request is untouched.
	table.Complete("r3", &proto.Response{RequestID: "r3", StatusCode: 200})
	if _, err := w3.Wait(context.Background()); err != nil {
		t.Errorf("unrelated entry failed: %v", err)
	}
}

func TestPendingWaitContextCancel(t *testing.T) {
	table := NewPendingTable()
	key := Key{Subdomain: "myapp", Region: "id"}

	waiter, _ := table.Register("r1", testEntry(key), time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := waiter.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if table.Len() != 0 {
		t.Error("cancelled entry should be removed from the table")
	}
	// A late response must not find the entry.
	if table.Complete("r1", &proto.Response{RequestID: "r1"}) {
		t.Error("Complete after cancel should find nothing")
	}
}

func TestPendingSweep(t *testing.T) {
	table := NewPendingTable()
	key := Key{Subdomain: "myapp", Region: "id"}

	old := PendingEntry{Key: key, RegisteredAt: time.Now().Add(-3 * time.Minute)}
	w, err := table.Register("stale", old, time.Hour)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := table.Register("fresh", testEntry(key), time.Hour); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if n := table.Sweep(2 * time.Minute); n != 1 {
		t.Fatalf("swept %d, want 1", n)
	}
	if _, err := w.Wait(context.Background()); !errors.Is(err, ErrTimeout) {
		t.Errorf("err = %v, want ErrTimeout", err)
	}
	if table.Len() != 1 {
		t.Errorf("table has %d entries, want 1", table.Len())
	}
}

func TestPendingTimerArmedBeforePublish(t *testing.T) {
	table := NewPendingTable()
	key := Key{Subdomain: "myapp", Region: "id"}

	// A zero-ish timeout makes the timer callback run while Register is
	// still on the stack; the waiter must resolve with exactly one outcome
	// and the race detector must stay quiet around the timer handoff.
	const n = 64
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			w, err := table.Register(id, testEntry(key), time.Nanosecond)
			if err != nil {
				t.Errorf("Register %s failed: %v", id, err)
				return
			}
			table.Complete(id, &proto.Response{RequestID: id, StatusCode: 200})
			if _, err := w.Wait(context.Background()); err != nil && !errors.Is(err, ErrTimeout) {
				t.Errorf("waiter %s resolved with %v", id, err)
			}
		}(string(rune('a'+i%26)) + string(rune('0'+i/26)))
	}
	wg.Wait()

	if table.Len() != 0 {
		t.Errorf("table has %d leftover entries", table.Len())
	}
}

func TestPendingConcurrentResolvers(t *testing.T) {
	table := NewPendingTable()
	key := Key{Subdomain: "myapp", Region: "id"}

	const n = 100
	waiters := make([]*Waiter, n)
	for i := 0; i < n; i++ {
		w, err := table.Register(string(rune('a'+i%26))+string(rune('0'+i/26)), testEntry(key), time.Minute)
		if err != nil {
			t.Fatalf("Register %d failed: %v", i, err)
		}
		waiters[i] = w
	}

	// Completions and a key-wide cancel race; every waiter must resolve
	// exactly once either way.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i += 2 {
			table.Complete(waiters[i].id, &proto.Response{StatusCode: 200})
		}
	}()
	go func() {
		defer wg.Done()
		table.CancelByKey(key, ErrTunnelGone)
	}()
	wg.Wait()

	for i, w := range waiters {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		_, err := w.Wait(ctx)
		cancel()
		if errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("waiter %d never resolved", i)
		}
	}
	if table.Len() != 0 {
		t.Errorf("table has %d leftover entries", table.Len())
	}
}
