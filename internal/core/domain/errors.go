package domain

import "errors"

// Authentication and authorization failures. Every operation in the core
// returns one of these sentinels (possibly wrapped); anything else is an
// infrastructure fault and must not be masked as an auth failure.
var (
	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so login never reveals whether an account exists.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken rejects signup with an already-registered email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrTokenInvalid covers malformed, tampered, or wrong-kind access tokens.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired is returned when an otherwise valid access token is
	// past its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrUnauthorized is returned when a verified token references a user
	// that no longer exists.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden rejects an authenticated user whose role is not in the
	// allowed set for an operation.
	ErrForbidden = errors.New("access forbidden")

	ErrResetTokenInvalid = errors.New("invalid reset token")
	ErrResetTokenExpired = errors.New("reset token expired")

	// ErrResetTokenReused is returned when a reset token's nonce has
	// already been consumed by an earlier successful reset.
	ErrResetTokenReused = errors.New("reset token already used")

	// ErrUserNotFound is the storage layer's miss; the orchestrator maps it
	// onto one of the errors above before it reaches a handler.
	ErrUserNotFound = errors.New("user not found")
)
