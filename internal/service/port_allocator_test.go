package service

import (
	"context"
	"errors"
	"testing"
)

type fakeProber struct {
	free func(region string, port int) (bool, error)
}

func (f *fakeProber) IsPortFree(ctx context.Context, region string, port int) (bool, error) {
	return f.free(region, port)
}

func TestAllocateReturnsFreePort(t *testing.T) {
	allocator := NewPortAllocator(&fakeProber{
		free: func(region string, port int) (bool, error) { return true, nil },
	})
	allocator.randPort = func() int { return 12345 }

	port, err := allocator.Allocate(context.Background(), "id")
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	if port != 12345 {
		t.Errorf("port = %d, want 12345", port)
	}
}

func TestAllocateSkipsTakenPorts(t *testing.T) {
	taken := map[int]bool{10001: true, 10002: true}
	allocator := NewPortAllocator(&fakeProber{
		free: func(region string, port int) (bool, error) { return !taken[port], nil },
	})

	next := 10001
	allocator.randPort = func() int {
		p := next
		next++
		return p
	}

	port, err := allocator.Allocate(context.Background(), "id")
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	if port != 10003 {
		t.Errorf("port = %d, want 10003", port)
	}
}

func TestAllocateExhaustion(t *testing.T) {
	probes := 0
	allocator := NewPortAllocator(&fakeProber{
		free: func(region string, port int) (bool, error) {
			probes++
			return false, nil
		},
	})

	_, err := allocator.Allocate(context.Background(), "id")
	if !errors.Is(err, ErrExhaustedPortSpace) {
		t.Fatalf("err = %v, want ErrExhaustedPortSpace", err)
	}
	if probes != maxAllocAttempts {
		t.Errorf("probed %d times, want %d", probes, maxAllocAttempts)
	}
}

func TestAllocateProbeError(t *testing.T) {
	probeErr := errors.New("db down")
	allocator := NewPortAllocator(&fakeProber{
		free: func(region string, port int) (bool, error) { return false, probeErr },
	})

	_, err := allocator.Allocate(context.Background(), "id")
	if !errors.Is(err, probeErr) {
		t.Fatalf("err = %v, want wrapped probe error", err)
	}
}

func TestDefaultRandPortStaysInRange(t *testing.T) {
	allocator := NewPortAllocator(&fakeProber{
		free: func(region string, port int) (bool, error) { return true, nil },
	})
	for i := 0; i < 1000; i++ {
		p := allocator.randPort()
		if p < portRangeMin || p > portRangeMax {
			t.Fatalf("randPort() = %d, outside [%d, %d]", p, portRangeMin, portRangeMax)
		}
	}
}
