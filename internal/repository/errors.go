package repository

import (
	"errors"
	"strings"

	"github.com/tunlify/tunlify/internal/db/ent"
)

var (
	// ErrNotFound is returned when a requested row does not exist
	ErrNotFound = errors.New("record not found")

	// ErrSubdomainTaken is returned when (subdomain, region) is already in use
	ErrSubdomainTaken = errors.New("subdomain already taken")

	// ErrPortTaken is returned when (region, remote_port) is already in use
	ErrPortTaken = errors.New("remote port already taken")

	// ErrTokenConflict is returned when a connection token collides
	ErrTokenConflict = errors.New("connection token already exists")
)

// classifyConstraintError maps a unique-constraint violation to the field
// that caused it. The index names come from the Tunnel schema definition.
func classifyConstraintError(err error) error {
	if err == nil || !ent.IsConstraintError(err) {
		return err
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "subdomain"):
		return ErrSubdomainTaken
	case strings.Contains(msg, "remote_port"):
		return ErrPortTaken
	case strings.Contains(msg, "connection_token"):
		return ErrTokenConflict
	default:
		return err
	}
}
