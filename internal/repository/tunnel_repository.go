package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/tunlify/tunlify/internal/db/ent"
	"github.com/tunlify/tunlify/internal/db/ent/tunnel"
)

// TunnelRepository handles tunnel-related database operations
type TunnelRepository interface {
	Create(ctx context.Context, tunnel *ent.Tunnel) (*ent.Tunnel, error)
	GetByID(ctx context.Context, id uint32) (*ent.Tunnel, error)
	GetByUserID(ctx context.Context, userID uint32) ([]*ent.Tunnel, error)
	GetByToken(ctx context.Context, token string) (*ent.Tunnel, error)
	GetActive(ctx context.Context, subdomain, region string) (*ent.Tunnel, error)
	Delete(ctx context.Context, id uint32, userID uint32) error
	UpdateStatus(ctx context.Context, id uint32, status tunnel.Status, clientConnected bool, lastConnected *time.Time) error
	IsPortFree(ctx context.Context, region string, port int) (bool, error)
}

type tunnelRepository struct {
	client *ent.Client
}

// NewTunnelRepository creates a new tunnel repository instance
func NewTunnelRepository(client *ent.Client) TunnelRepository {
	return &tunnelRepository{client: client}
}

// Create creates a new tunnel. Uniqueness of (subdomain, region),
// (region, remote_port) and connection_token is enforced by the database;
// a violation is reported as the specific conflicting field.
func (r *tunnelRepository) Create(ctx context.Context, t *ent.Tunnel) (*ent.Tunnel, error) {
	create := r.client.Tunnel.Create().
		SetSubdomain(t.Subdomain).
		SetRegion(t.Region).
		SetServiceType(t.ServiceType).
		SetProtocol(t.Protocol).
		SetLocalPort(t.LocalPort).
		SetConnectionToken(t.ConnectionToken).
		SetStatus(t.Status).
		SetUserID(t.UserID)

	if t.RemotePort != nil {
		create.SetRemotePort(*t.RemotePort)
	}

	created, err := create.Save(ctx)
	if err != nil {
		return nil, classifyConstraintError(err)
	}
	return created, nil
}

// GetByID retrieves a tunnel by its ID
func (r *tunnelRepository) GetByID(ctx context.Context, id uint32) (*ent.Tunnel, error) {
	t, err := r.client.Tunnel.Query().
		Where(tunnel.ID(int(id))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: tunnel not found", ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

// GetByUserID retrieves all tunnels for a user, ordered by ID
func (r *tunnelRepository) GetByUserID(ctx context.Context, userID uint32) ([]*ent.Tunnel, error) {
	return r.client.Tunnel.Query().
		Where(tunnel.UserIDEQ(userID)).
		Order(ent.Asc(tunnel.FieldID)).
		All(ctx)
}

// GetByToken retrieves a tunnel by its connection token
func (r *tunnelRepository) GetByToken(ctx context.Context, token string) (*ent.Tunnel, error) {
	t, err := r.client.Tunnel.Query().
		Where(tunnel.ConnectionTokenEQ(token)).
		WithOwner().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: tunnel not found", ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

// GetActive retrieves a tunnel by key, restricted to rows with status=active
func (r *tunnelRepository) GetActive(ctx context.Context, subdomain, region string) (*ent.Tunnel, error) {
	t, err := r.client.Tunnel.Query().
		Where(
			tunnel.SubdomainEQ(subdomain),
			tunnel.RegionEQ(region),
			tunnel.StatusEQ(tunnel.StatusActive),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: tunnel not found", ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

// Delete deletes a tunnel owned by the given user
func (r *tunnelRepository) Delete(ctx context.Context, id uint32, userID uint32) error {
	n, err := r.client.Tunnel.Delete().
		Where(tunnel.ID(int(id)), tunnel.UserIDEQ(userID)).
		Exec(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: tunnel not found", ErrNotFound)
	}
	return nil
}

// UpdateStatus updates the connection state columns of a tunnel
func (r *tunnelRepository) UpdateStatus(ctx context.Context, id uint32, status tunnel.Status, clientConnected bool, lastConnected *time.Time) error {
	update := r.client.Tunnel.UpdateOneID(int(id)).
		SetStatus(status).
		SetClientConnected(clientConnected)
	if lastConnected != nil {
		update.SetLastConnected(*lastConnected)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: tunnel not found", ErrNotFound)
		}
		return err
	}
	return nil
}

// IsPortFree reports whether (region, port) is unused
func (r *tunnelRepository) IsPortFree(ctx context.Context, region string, port int) (bool, error) {
	exists, err := r.client.Tunnel.Query().
		Where(tunnel.RegionEQ(region), tunnel.RemotePortEQ(port)).
		Exist(ctx)
	if err != nil {
		return false, err
	}
	return !exists, nil
}
