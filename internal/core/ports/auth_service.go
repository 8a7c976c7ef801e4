package ports

import (
	"context"

	"github.com/genconfi/groomify-api/internal/core/domain"
)

// AuthService exposes the authentication use cases consumed by the HTTP
// handlers.
type AuthService interface {
	Signup(ctx context.Context, name, email, phone, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	CurrentUser(ctx context.Context, bearerToken string) (*domain.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}
