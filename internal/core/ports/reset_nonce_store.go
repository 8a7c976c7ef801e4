package ports

import (
	"context"
	"time"
)

// ResetNonceStore records consumed reset-token nonces so each reset token is
// honored at most once. Consume must be atomic: of two concurrent calls with
// the same nonce, exactly one observes used=false.
type ResetNonceStore interface {
	// Consume marks nonce as used for at least ttl and reports whether it
	// had already been consumed.
	Consume(ctx context.Context, nonce string, ttl time.Duration) (used bool, err error)
}
