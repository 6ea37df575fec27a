package tunnel

import "errors"

var (
	// ErrTimeout is delivered to a pending waiter when the per-request
	// budget elapses before the client answers.
	ErrTimeout = errors.New("request timed out waiting for tunnel client")

	// ErrTunnelGone is delivered to pending waiters when their control
	// channel closes mid-flight.
	ErrTunnelGone = errors.New("tunnel control channel closed")

	// ErrQueueFull means the channel's send queue is saturated.
	ErrQueueFull = errors.New("control channel send queue is full")

	// ErrChannelClosed means the channel was torn down before the write.
	ErrChannelClosed = errors.New("control channel is closed")

	// ErrDuplicateRequest means a request id was registered twice.
	ErrDuplicateRequest = errors.New("request id already registered")
)
