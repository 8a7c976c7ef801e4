package ports

import (
	"context"

	"github.com/genconfi/groomify-api/internal/core/domain"
)

// UserRepository is the user-record collaborator. The auth core reads
// identities and only ever writes the password hash during a reset; email
// uniqueness is enforced by the repository's storage.
type UserRepository interface {
	// Create persists a new user and returns it with its assigned ID.
	// Returns domain.ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// FindByEmail looks a user up by normalized (lower-case) email.
	// Returns domain.ErrUserNotFound on a miss.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindByID looks a user up by ID. Returns domain.ErrUserNotFound on a miss.
	FindByID(ctx context.Context, id string) (*domain.User, error)

	// UpdatePassword replaces the stored password hash for the given user.
	// Returns domain.ErrUserNotFound when the user no longer exists.
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
