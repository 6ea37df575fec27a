package service

import (
	"context"
	"fmt"
	"math/rand"
)

const (
	// Allocation range for public TCP/UDP tunnel ports.
	portRangeMin = 10000
	portRangeMax = 60000

	// Probe attempts before giving up.
	maxAllocAttempts = 20
)

// PortProber is the narrow catalog view the allocator needs.
type PortProber interface {
	IsPortFree(ctx context.Context, region string, port int) (bool, error)
}

// PortAllocator picks free public ports for TCP/UDP tunnels. It is stateless:
// the (region, remote_port) uniqueness constraint in the catalog is the real
// arbiter, the probe only keeps the insert-conflict rate low.
type PortAllocator struct {
	prober PortProber
	// Overridable for deterministic tests.
	randPort func() int
}

// NewPortAllocator creates a new port allocator instance
func NewPortAllocator(prober PortProber) *PortAllocator {
	return &PortAllocator{
		prober: prober,
		randPort: func() int {
			return portRangeMin + rand.Intn(portRangeMax-portRangeMin+1)
		},
	}
}

// Allocate returns a port in [10000, 60000] that was free in the given region
// at probe time. It retries on conflict up to maxAllocAttempts times.
func (a *PortAllocator) Allocate(ctx context.Context, region string) (int, error) {
	for attempt := 0; attempt < maxAllocAttempts; attempt++ {
		port := a.randPort()
		free, err := a.prober.IsPortFree(ctx, region, port)
		if err != nil {
			return 0, fmt.Errorf("failed to probe port %d in region %s: %w", port, region, err)
		}
		if free {
			return port, nil
		}
	}
	return 0, ErrExhaustedPortSpace
}
