package security

import (
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores input beyond 72 bytes; longer passwords are truncated on a
// rune boundary so hash and verify always see the same prefix.
const bcryptMaxBytes = 72

// PasswordHasher wraps bcrypt's adaptive, salted one-way hashing. Each Hash
// call draws a fresh salt, so hashing the same password twice yields two
// different stored values that both verify.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the given bcrypt cost. Costs
// outside bcrypt's valid range fall back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash derives a salted hash of plaintext. The salt and cost parameters are
// embedded in the output, so nothing else needs to be stored.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncatePassword(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash. The comparison
// is constant-time inside bcrypt; a malformed hash is treated as a mismatch,
// never an error.
func (h *PasswordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(plaintext)) == nil
}

func truncatePassword(plaintext string) []byte {
	b := []byte(plaintext)
	if len(b) <= bcryptMaxBytes {
		return b
	}
	b = b[:bcryptMaxBytes]
	// drop a trailing partial rune left by the cut
	for len(b) > 0 && !utf8.Valid(b) {
		b = b[:len(b)-1]
	}
	return b
}
