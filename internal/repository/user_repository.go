package repository

import (
	"context"
	"fmt"

	"github.com/tunlify/tunlify/internal/db/ent"
	"github.com/tunlify/tunlify/internal/db/ent/user"
)

// UserRepository handles user lookups. The account system is managed
// elsewhere; the gateway only resolves API keys and owner rows.
type UserRepository interface {
	GetByID(ctx context.Context, id uint32) (*ent.User, error)
	GetByAPIKey(ctx context.Context, apiKey string) (*ent.User, error)
}

type userRepository struct {
	client *ent.Client
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(client *ent.Client) UserRepository {
	return &userRepository{client: client}
}

// GetByID retrieves a user by its ID
func (r *userRepository) GetByID(ctx context.Context, id uint32) (*ent.User, error) {
	u, err := r.client.User.Query().
		Where(user.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}
	return u, nil
}

// GetByAPIKey retrieves an active user by API key
func (r *userRepository) GetByAPIKey(ctx context.Context, apiKey string) (*ent.User, error) {
	u, err := r.client.User.Query().
		Where(user.APIKeyEQ(apiKey), user.IsActiveEQ(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}
	return u, nil
}
