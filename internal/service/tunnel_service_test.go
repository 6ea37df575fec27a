package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunlify/tunlify/internal/db/ent"
	"github.com/tunlify/tunlify/internal/db/ent/tunnel"
	"github.com/tunlify/tunlify/internal/repository"
)

// mockTunnelRepo implements repository.TunnelRepository with function fields,
// so each test only wires the calls it expects.
type mockTunnelRepo struct {
	create       func(ctx context.Context, t *ent.Tunnel) (*ent.Tunnel, error)
	getByID      func(ctx context.Context, id uint32) (*ent.Tunnel, error)
	getByUserID  func(ctx context.Context, userID uint32) ([]*ent.Tunnel, error)
	getByToken   func(ctx context.Context, token string) (*ent.Tunnel, error)
	getActive    func(ctx context.Context, subdomain, region string) (*ent.Tunnel, error)
	delete       func(ctx context.Context, id, userID uint32) error
	updateStatus func(ctx context.Context, id uint32, status tunnel.Status, clientConnected bool, lastConnected *time.Time) error
	isPortFree   func(ctx context.Context, region string, port int) (bool, error)
}

func (m *mockTunnelRepo) Create(ctx context.Context, t *ent.Tunnel) (*ent.Tunnel, error) {
	return m.create(ctx, t)
}
func (m *mockTunnelRepo) GetByID(ctx context.Context, id uint32) (*ent.Tunnel, error) {
	return m.getByID(ctx, id)
}
func (m *mockTunnelRepo) GetByUserID(ctx context.Context, userID uint32) ([]*ent.Tunnel, error) {
	return m.getByUserID(ctx, userID)
}
func (m *mockTunnelRepo) GetByToken(ctx context.Context, token string) (*ent.Tunnel, error) {
	return m.getByToken(ctx, token)
}
func (m *mockTunnelRepo) GetActive(ctx context.Context, subdomain, region string) (*ent.Tunnel, error) {
	return m.getActive(ctx, subdomain, region)
}
func (m *mockTunnelRepo) Delete(ctx context.Context, id, userID uint32) error {
	return m.delete(ctx, id, userID)
}
func (m *mockTunnelRepo) UpdateStatus(ctx context.Context, id uint32, status tunnel.Status, clientConnected bool, lastConnected *time.Time) error {
	return m.updateStatus(ctx, id, status, clientConnected, lastConnected)
}
func (m *mockTunnelRepo) IsPortFree(ctx context.Context, region string, port int) (bool, error) {
	return m.isPortFree(ctx, region, port)
}

func passthroughCreate(ctx context.Context, t *ent.Tunnel) (*ent.Tunnel, error) {
	created := *t
	created.ID = 1
	return &created, nil
}

func TestCreateTunnelHTTPUsesPresetDefaults(t *testing.T) {
	repo := &mockTunnelRepo{create: passthroughCreate}
	svc := NewTunnelService(repo, NewPortAllocator(repo))

	created, err := svc.CreateTunnel(context.Background(), 42, CreateTunnelParams{
		Subdomain:   "myapp",
		Region:      "id",
		ServiceType: "http",
	})
	require.NoError(t, err)

	assert.Equal(t, tunnel.ProtocolHTTP, created.Protocol)
	assert.Equal(t, 80, created.LocalPort)
	assert.Nil(t, created.RemotePort, "http tunnels take no remote port")
	assert.Equal(t, tunnel.StatusInactive, created.Status)
	assert.Equal(t, uint32(42), created.UserID)
	assert.Len(t, created.ConnectionToken, 64, "token is 32 random bytes hex-encoded")
}

func TestCreateTunnelSSHAllocatesRemotePort(t *testing.T) {
	repo := &mockTunnelRepo{
		create:     passthroughCreate,
		isPortFree: func(ctx context.Context, region string, port int) (bool, error) { return true, nil },
	}
	allocator := NewPortAllocator(repo)
	allocator.randPort = func() int { return 23456 }
	svc := NewTunnelService(repo, allocator)

	created, err := svc.CreateTunnel(context.Background(), 1, CreateTunnelParams{
		Subdomain:   "bastion",
		Region:      "id",
		ServiceType: "ssh",
	})
	require.NoError(t, err)

	assert.Equal(t, tunnel.ProtocolTCP, created.Protocol)
	assert.Equal(t, 22, created.LocalPort)
	require.NotNil(t, created.RemotePort)
	assert.Equal(t, 23456, *created.RemotePort)
}

func TestCreateTunnelRetriesPortConflict(t *testing.T) {
	ports := []int{20001, 20002}
	attempt := 0
	repo := &mockTunnelRepo{
		create: func(ctx context.Context, row *ent.Tunnel) (*ent.Tunnel, error) {
			attempt++
			if attempt == 1 {
				// Lost the race between probe and insert.
				return nil, repository.ErrPortTaken
			}
			return passthroughCreate(ctx, row)
		},
		isPortFree: func(ctx context.Context, region string, port int) (bool, error) { return true, nil },
	}
	allocator := NewPortAllocator(repo)
	allocator.randPort = func() int {
		p := ports[0]
		if len(ports) > 1 {
			ports = ports[1:]
		}
		return p
	}
	svc := NewTunnelService(repo, allocator)

	created, err := svc.CreateTunnel(context.Background(), 1, CreateTunnelParams{
		Subdomain:   "game",
		Region:      "id",
		ServiceType: "minecraft",
	})
	require.NoError(t, err)
	require.NotNil(t, created.RemotePort)
	assert.Equal(t, 20002, *created.RemotePort)
	assert.Equal(t, 2, attempt)
}

func TestCreateTunnelUserPinnedPortConflictIsFatal(t *testing.T) {
	port := 15000
	repo := &mockTunnelRepo{
		create: func(ctx context.Context, row *ent.Tunnel) (*ent.Tunnel, error) {
			return nil, repository.ErrPortTaken
		},
	}
	svc := NewTunnelService(repo, NewPortAllocator(repo))

	_, err := svc.CreateTunnel(context.Background(), 1, CreateTunnelParams{
		Subdomain:   "db",
		Region:      "id",
		ServiceType: "postgresql",
		RemotePort:  &port,
	})
	assert.ErrorIs(t, err, repository.ErrPortTaken)
}

func TestCreateTunnelUnknownServiceType(t *testing.T) {
	svc := NewTunnelService(&mockTunnelRepo{}, NewPortAllocator(&mockTunnelRepo{}))

	_, err := svc.CreateTunnel(context.Background(), 1, CreateTunnelParams{
		Subdomain:   "x",
		Region:      "id",
		ServiceType: "gopher",
	})
	assert.ErrorIs(t, err, ErrUnknownServiceType)
}

func TestCreateTunnelProtocolOverride(t *testing.T) {
	repo := &mockTunnelRepo{
		create:     passthroughCreate,
		isPortFree: func(ctx context.Context, region string, port int) (bool, error) { return true, nil },
	}
	svc := NewTunnelService(repo, NewPortAllocator(repo))

	created, err := svc.CreateTunnel(context.Background(), 1, CreateTunnelParams{
		Subdomain:   "dns",
		Region:      "id",
		ServiceType: "custom",
		Protocol:    "udp",
	})
	require.NoError(t, err)
	assert.Equal(t, tunnel.ProtocolUDP, created.Protocol)
}

func TestGetTunnelEnforcesOwnership(t *testing.T) {
	repo := &mockTunnelRepo{
		getByID: func(ctx context.Context, id uint32) (*ent.Tunnel, error) {
			return &ent.Tunnel{ID: int(id), UserID: 7}, nil
		},
	}
	svc := NewTunnelService(repo, NewPortAllocator(repo))

	_, err := svc.GetTunnel(context.Background(), 8, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound, "foreign tunnels look like missing ones")

	got, err := svc.GetTunnel(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ID)
}

func TestAuthenticateToken(t *testing.T) {
	repo := &mockTunnelRepo{
		getByToken: func(ctx context.Context, token string) (*ent.Tunnel, error) {
			if token == "good" {
				return &ent.Tunnel{ID: 5, Subdomain: "myapp"}, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	svc := NewTunnelService(repo, NewPortAllocator(repo))

	got, err := svc.AuthenticateToken(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, 5, got.ID)

	_, err = svc.AuthenticateToken(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrInvalidToken)

	repoErr := errors.New("db down")
	repo.getByToken = func(ctx context.Context, token string) (*ent.Tunnel, error) { return nil, repoErr }
	_, err = svc.AuthenticateToken(context.Background(), "good")
	assert.ErrorIs(t, err, repoErr, "infrastructure errors pass through unchanged")
}
