package security

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/genconfi/groomify-api/internal/core/domain"
)

// Token kinds. A token of one kind never verifies under the codec of the
// other, even when both codecs share a secret.
const (
	kindAccess = "access"
	kindReset  = "reset"
)

// Claims is the signed payload carried by both token kinds. Reset tokens
// additionally carry a random nonce that the storage layer marks as used.
type Claims struct {
	Kind  string `json:"kind"`
	Nonce string `json:"nonce,omitempty"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies access tokens with an HS256 keyed MAC.
// Verification is pure: the caller supplies the current time, so results are
// deterministic and testable with fixed clocks.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue signs an access token for subject valid from now until now+ttl.
func (c *TokenCodec) Issue(subject string, now time.Time) (string, error) {
	return sign(c.secret, &Claims{
		Kind: kindAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	})
}

// Verify checks the signature and expiry of raw against the supplied time.
// It returns domain.ErrTokenExpired for a stale token and
// domain.ErrTokenInvalid for everything else that is wrong with it.
func (c *TokenCodec) Verify(raw string, now time.Time) (*Claims, error) {
	claims, err := parse(c.secret, raw, now, kindAccess)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

// ResetTokenCodec signs and verifies password-reset tokens. It is keyed and
// expired independently of the access codec and stamps every token with a
// random nonce; single use is enforced by whoever records consumed nonces,
// the codec itself only proves authenticity and freshness.
type ResetTokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewResetTokenCodec(secret string, ttl time.Duration) *ResetTokenCodec {
	return &ResetTokenCodec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the reset-token lifetime, which bounds how long a consumed
// nonce must stay on record.
func (c *ResetTokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a reset token for subject and returns it with its nonce.
func (c *ResetTokenCodec) Issue(subject string, now time.Time) (token, nonce string, err error) {
	nonce, err = newNonce()
	if err != nil {
		return "", "", err
	}
	token, err = sign(c.secret, &Claims{
		Kind:  kindReset,
		Nonce: nonce,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	})
	if err != nil {
		return "", "", err
	}
	return token, nonce, nil
}

// Verify checks raw against the supplied time, returning
// domain.ErrResetTokenExpired or domain.ErrResetTokenInvalid on failure.
// An access token presented here fails as invalid, not as wrong-but-parsed.
func (c *ResetTokenCodec) Verify(raw string, now time.Time) (*Claims, error) {
	claims, err := parse(c.secret, raw, now, kindReset)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrResetTokenExpired
		}
		return nil, domain.ErrResetTokenInvalid
	}
	if claims.Nonce == "" {
		return nil, domain.ErrResetTokenInvalid
	}
	return claims, nil
}

func sign(secret []byte, claims *Claims) (string, error) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func parse(secret []byte, raw string, now time.Time, kind string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	claims := &Claims{}
	token, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Kind != kind || claims.Subject == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func newNonce() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	return hex.EncodeToString(b), nil
}
