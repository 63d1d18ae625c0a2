package ports

import (
	"context"

	"github.com/campushub/club-management/internal/core/domain"
)

// RegisterInput carries the data needed to provision a new user.
type RegisterInput struct {
	Username string
	Password string
	Name     string
	Role     string
	ClubID   string
}

// AuthService implements the authenticator: credential check and session
// token issuance.
type AuthService interface {
	// Login validates a username/password pair and returns a signed session
	// token plus the matched user. Failures are uniform: the caller cannot
	// tell whether the username or the password was wrong.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// EnsureAdmin provisions the default admin account when no user with
	// the given username exists yet. Called once at startup.
	EnsureAdmin(ctx context.Context, username, password string) error
}
