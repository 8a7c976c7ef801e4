package ports

import "context"

// ResetMailer delivers a password-reset token to the account holder. Delivery
// is fire-and-forget from the orchestrator's point of view: failures are
// logged by the caller and never surface in an HTTP response.
type ResetMailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}
