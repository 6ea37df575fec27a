package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/tunlify/tunlify/internal/db/ent"
	"github.com/tunlify/tunlify/internal/db/ent/tunnel"
	"github.com/tunlify/tunlify/internal/repository"
)

// CreateTunnelParams carries the validated fields of a tunnel creation request.
type CreateTunnelParams struct {
	Subdomain   string
	Region      string
	ServiceType string
	Protocol    string // empty means "use the preset's protocol"
	LocalPort   *int   // empty means "use the preset's default port"
	RemotePort  *int   // empty means "allocate one" for tcp/udp
}

// TunnelService defines the interface for tunnel catalog operations
type TunnelService interface {
	CreateTunnel(ctx context.Context, userID uint32, params CreateTunnelParams) (*ent.Tunnel, error)
	ListTunnels(ctx context.Context, userID uint32) ([]*ent.Tunnel, error)
	GetTunnel(ctx context.Context, userID uint32, tunnelID uint32) (*ent.Tunnel, error)
	DeleteTunnel(ctx context.Context, userID uint32, tunnelID uint32) error
	UpdateStatus(ctx context.Context, tunnelID uint32, status tunnel.Status, clientConnected bool) error
	AuthenticateToken(ctx context.Context, token string) (*ent.Tunnel, error)
}

type tunnelService struct {
	repo      repository.TunnelRepository
	allocator *PortAllocator
}

// NewTunnelService creates a new tunnel service instance
func NewTunnelService(repo repository.TunnelRepository, allocator *PortAllocator) TunnelService {
	return &tunnelService{
		repo:      repo,
		allocator: allocator,
	}
}

// generateToken generates a random connection token (32 bytes, hex-encoded)
func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CreateTunnel creates a new tunnel row. For tcp/udp tunnels without a
// user-supplied remote port it allocates one; the alloc-then-insert pair is
// not atomic on its own, so an insert conflict on the port triggers a fresh
// allocation instead of failing the request.
func (s *tunnelService) CreateTunnel(ctx context.Context, userID uint32, params CreateTunnelParams) (*ent.Tunnel, error) {
	preset, ok := LookupPreset(params.ServiceType)
	if !ok {
		return nil, ErrUnknownServiceType
	}

	protocol := params.Protocol
	if protocol == "" {
		protocol = preset.Protocol
	}

	localPort := 80
	if preset.DefaultPort != nil {
		localPort = *preset.DefaultPort
	}
	if params.LocalPort != nil {
		localPort = *params.LocalPort
	}

	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	row := &ent.Tunnel{
		Subdomain:       params.Subdomain,
		Region:          params.Region,
		ServiceType:     params.ServiceType,
		Protocol:        tunnel.Protocol(protocol),
		LocalPort:       localPort,
		ConnectionToken: token,
		Status:          tunnel.StatusInactive,
		UserID:          userID,
	}

	userSuppliedPort := params.RemotePort != nil
	if protocol != "http" {
		if userSuppliedPort {
			row.RemotePort = params.RemotePort
		} else {
			port, err := s.allocator.Allocate(ctx, params.Region)
			if err != nil {
				return nil, err
			}
			row.RemotePort = &port
		}
	}

	for attempt := 0; ; attempt++ {
		created, err := s.repo.Create(ctx, row)
		if err == nil {
			return created, nil
		}

		// A port race between probe and insert is retryable as long as the
		// user did not pin the port themselves.
		if errors.Is(err, repository.ErrPortTaken) && !userSuppliedPort && attempt < maxAllocAttempts {
			port, allocErr := s.allocator.Allocate(ctx, params.Region)
			if allocErr != nil {
				return nil, allocErr
			}
			row.RemotePort = &port
			continue
		}
		return nil, err
	}
}

// ListTunnels lists all tunnels for a user
func (s *tunnelService) ListTunnels(ctx context.Context, userID uint32) ([]*ent.Tunnel, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// GetTunnel fetches a tunnel and verifies ownership. A row owned by someone
// else is indistinguishable from a missing one.
func (s *tunnelService) GetTunnel(ctx context.Context, userID uint32, tunnelID uint32) (*ent.Tunnel, error) {
	t, err := s.repo.GetByID(ctx, tunnelID)
	if err != nil {
		return nil, err
	}
	if t.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return t, nil
}

// DeleteTunnel deletes a tunnel owned by the user
func (s *tunnelService) DeleteTunnel(ctx context.Context, userID uint32, tunnelID uint32) error {
	return s.repo.Delete(ctx, tunnelID, userID)
}

// UpdateStatus updates the status columns of a tunnel
func (s *tunnelService) UpdateStatus(ctx context.Context, tunnelID uint32, status tunnel.Status, clientConnected bool) error {
	return s.repo.UpdateStatus(ctx, tunnelID, status, clientConnected, nil)
}

// AuthenticateToken resolves a connection token to its tunnel row
func (s *tunnelService) AuthenticateToken(ctx context.Context, token string) (*ent.Tunnel, error) {
	t, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return t, nil
}
