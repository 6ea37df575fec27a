package service

import "errors"

var (
	// ErrExhaustedPortSpace is returned when the port allocator gives up
	// after the maximum number of probe attempts.
	ErrExhaustedPortSpace = errors.New("no free port available in the allocation range")

	// ErrUnknownServiceType is returned for a service_type outside the catalog.
	ErrUnknownServiceType = errors.New("unknown service type")

	// ErrInvalidToken is returned when a connection token does not match
	// any tunnel.
	ErrInvalidToken = errors.New("invalid connection token")
)
