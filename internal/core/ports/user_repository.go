package ports

import (
	"context"

	"github.com/campushub/club-management/internal/core/domain"
)

// UserRepository defines persistence for the credential store.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// ListAll returns every user; used by the statistics aggregator only.
	ListAll(ctx context.Context) ([]*domain.User, error)
}

// ClubRepository defines persistence for club reference data.
type ClubRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Club, error)
	ListAll(ctx context.Context) ([]*domain.Club, error)
}
