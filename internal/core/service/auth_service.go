package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/genconfi/groomify-api/internal/core/domain"
	"github.com/genconfi/groomify-api/internal/core/ports"
	"github.com/genconfi/groomify-api/internal/core/security"
)

// AuthService composes the hasher, token codecs, and storage collaborators
// into the signup, login, current-user, and password-reset use cases. It
// holds no mutable state; the injected clock makes every token decision
// deterministic under test.
type AuthService struct {
	repo    ports.UserRepository
	nonces  ports.ResetNonceStore
	mailer  ports.ResetMailer
	hasher  *security.PasswordHasher
	access  *security.TokenCodec
	reset   *security.ResetTokenCodec
	log     zerolog.Logger
	now     func() time.Time
}

func NewAuthService(
	repo ports.UserRepository,
	nonces ports.ResetNonceStore,
	mailer ports.ResetMailer,
	hasher *security.PasswordHasher,
	access *security.TokenCodec,
	reset *security.ResetTokenCodec,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		repo:   repo,
		nonces: nonces,
		mailer: mailer,
		hasher: hasher,
		access: access,
		reset:  reset,
		log:    log,
		now:    time.Now,
	}
}

// Signup registers a new account with the default client role and returns a
// freshly issued access token alongside the created user. The email must not
// already be registered; the check is case-insensitive.
func (s *AuthService) Signup(ctx context.Context, name, email, phone, password string) (string, *domain.User, error) {
	email = normalizeEmail(email)

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", nil, err
	}

	now := s.now().UTC()
	user, err := s.repo.Create(ctx, &domain.User{
		Email:        email,
		Name:         name,
		Phone:        phone,
		PasswordHash: hash,
		Role:         domain.RoleClient,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return "", nil, err
	}

	token, err := s.access.Issue(user.ID, now)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user signed up")
	return token, user, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password both fail with domain.ErrInvalidCredentials so the response never
// reveals whether the account exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.access.Issue(user.ID, s.now().UTC())
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

// CurrentUser resolves a bearer token to the identity it was issued for.
// A verified token whose subject no longer exists fails with
// domain.ErrUnauthorized; the caller surfaces every failure here as 401.
func (s *AuthService) CurrentUser(ctx context.Context, bearerToken string) (*domain.User, error) {
	claims, err := s.access.Verify(bearerToken, s.now().UTC())
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

// ForgotPassword issues a reset token for the account, if it exists, and
// hands it to the mailer. It reports success either way; only infrastructure
// faults while issuing propagate. Mail delivery failures are logged and
// swallowed so the response stays uniform.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}

	token, _, err := s.reset.Issue(user.ID, s.now().UTC())
	if err != nil {
		return err
	}

	if err := s.mailer.SendPasswordReset(ctx, user.Email, token); err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("reset mail delivery failed")
	}
	return nil
}

// ResetPassword verifies the reset token, consumes its nonce exactly once,
// and stores the new password hash. Outstanding access tokens are not
// invalidated; statelessness is the accepted tradeoff.
func (s *AuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	claims, err := s.reset.Verify(resetToken, s.now().UTC())
	if err != nil {
		return err
	}

	used, err := s.nonces.Consume(ctx, claims.Nonce, s.reset.TTL())
	if err != nil {
		return err
	}
	if used {
		return domain.ErrResetTokenReused
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, claims.Subject, hash); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrResetTokenInvalid
		}
		return err
	}

	s.log.Info().Str("user_id", claims.Subject).Msg("password reset")
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
