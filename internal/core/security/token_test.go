package security

import (
	"errors"
	"testing"
	"time"

	"github.com/genconfi/groomify-api/internal/core/domain"
)

var issuedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestTokenCodec_IssueAndVerify(t *testing.T) {
	codec := NewTokenCodec("access-secret", 30*time.Minute)

	token, err := codec.Issue("user-42", issuedAt)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// valid anywhere inside the ttl window
	for _, at := range []time.Time{
		issuedAt,
		issuedAt.Add(time.Minute),
		issuedAt.Add(30*time.Minute - time.Second),
	} {
		claims, err := codec.Verify(token, at)
		if err != nil {
			t.Fatalf("Verify at %v returned error: %v", at, err)
		}
		if claims.Subject != "user-42" {
			t.Fatalf("unexpected subject: %q", claims.Subject)
		}
	}
}

func TestTokenCodec_Expired(t *testing.T) {
	codec := NewTokenCodec("access-secret", 30*time.Minute)

	token, err := codec.Issue("user-42", issuedAt)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	for _, at := range []time.Time{
		issuedAt.Add(30*time.Minute + time.Second),
		issuedAt.Add(24 * time.Hour),
	} {
		if _, err := codec.Verify(token, at); !errors.Is(err, domain.ErrTokenExpired) {
			t.Fatalf("expected ErrTokenExpired at %v, got %v", at, err)
		}
	}
}

func TestTokenCodec_TamperedSignature(t *testing.T) {
	codec := NewTokenCodec("access-secret", 30*time.Minute)

	token, err := codec.Issue("user-42", issuedAt)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	tampered := flipLastByte(token)
	if _, err := codec.Verify(tampered, issuedAt); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for tampered token, got %v", err)
	}
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	issuer := NewTokenCodec("access-secret", 30*time.Minute)
	verifier := NewTokenCodec("rotated-secret", 30*time.Minute)

	token, err := issuer.Issue("user-42", issuedAt)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(token, issuedAt); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid after secret rotation, got %v", err)
	}
}

func TestTokenCodec_Malformed(t *testing.T) {
	codec := NewTokenCodec("access-secret", 30*time.Minute)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := codec.Verify(raw, issuedAt); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid for %q, got %v", raw, err)
		}
	}
}

func TestResetTokenCodec_IssueAndVerify(t *testing.T) {
	codec := NewResetTokenCodec("reset-secret", 15*time.Minute)

	token, nonce, err := codec.Issue("user-42", issuedAt)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if nonce == "" {
		t.Fatalf("expected a nonce")
	}

	claims, err := codec.Verify(token, issuedAt.Add(time.Minute))
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Subject != "user-42" {
		t.Fatalf("unexpected subject: %q", claims.Subject)
	}
	if claims.Nonce != nonce {
		t.Fatalf("nonce claim %q does not match issued nonce %q", claims.Nonce, nonce)
	}

	if _, err := codec.Verify(token, issuedAt.Add(16*time.Minute)); !errors.Is(err, domain.ErrResetTokenExpired) {
		t.Fatalf("expected ErrResetTokenExpired, got %v", err)
	}
}

func TestResetTokenCodec_NonceUniquePerToken(t *testing.T) {
	codec := NewResetTokenCodec("reset-secret", 15*time.Minute)

	_, first, err := codec.Issue("user-42", issuedAt)
	if err != nil {
		t.Fatalf("first Issue returned error: %v", err)
	}
	_, second, err := codec.Issue("user-42", issuedAt)
	if err != nil {
		t.Fatalf("second Issue returned error: %v", err)
	}
	if first == second {
		t.Fatalf("two reset tokens share a nonce")
	}
}

// A token of one kind must never verify under the other codec, even when
// both are keyed with the same secret.
func TestTokenKinds_NotInterchangeable(t *testing.T) {
	access := NewTokenCodec("shared-secret", 30*time.Minute)
	reset := NewResetTokenCodec("shared-secret", 30*time.Minute)

	accessToken, err := access.Issue("user-42", issuedAt)
	if err != nil {
		t.Fatalf("access Issue returned error: %v", err)
	}
	if _, err := reset.Verify(accessToken, issuedAt); !errors.Is(err, domain.ErrResetTokenInvalid) {
		t.Fatalf("access token accepted as reset token: %v", err)
	}

	resetToken, _, err := reset.Issue("user-42", issuedAt)
	if err != nil {
		t.Fatalf("reset Issue returned error: %v", err)
	}
	if _, err := access.Verify(resetToken, issuedAt); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("reset token accepted as access token: %v", err)
	}
}

func flipLastByte(token string) string {
	last := token[len(token)-1]
	repl := byte('A')
	if last == 'A' {
		repl = 'B'
	}
	return token[:len(token)-1] + string(repl)
}
