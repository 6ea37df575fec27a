package tunnel

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/tunlify/tunlify/internal/logging"
)

const janitorInterval = 2 * time.Minute

// Janitor periodically evicts control channels with no heartbeat activity
// and pending requests past their retention cap. It is the backstop behind
// the per-request timers and per-channel close paths.
type Janitor struct {
	hub    *Hub
	logger *logging.Logger
	stop   chan struct{}
}

// NewJanitor creates a janitor for the hub.
func NewJanitor(hub *Hub, logger *logging.Logger) *Janitor {
	return &Janitor{
		hub:    hub,
		logger: logger,
		stop:   make(chan struct{}),
	}
}

// Start begins the janitor in the background.
func (j *Janitor) Start() {
	go j.runPeriodically()
}

// Stop halts the janitor.
func (j *Janitor) Stop() {
	close(j.stop)
}

func (j *Janitor) runPeriodically() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.sweep()
		case <-j.stop:
			return
		}
	}
}

func (j *Janitor) sweep() {
	evicted := 0
	for _, ch := range j.hub.Registry().Snapshot() {
		if ch.Stale(staleChannelAge) {
			j.logger.Warn("Evicting stale control channel for %s (last activity %s)",
				ch.Key(), ch.LastActivity().Format(time.RFC3339))
			ch.Close(websocket.ClosePolicyViolation, "heartbeat timeout")
			evicted++
		}
	}

	expired := j.hub.Pending().Sweep(pendingMaxAge)
	if evicted > 0 || expired > 0 {
		j.logger.Info("Janitor evicted %d channels, expired %d pending requests", evicted, expired)
	}
}
