package security

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatalf("hash equals plaintext")
	}
	if !h.Verify("s3cret-password", hash) {
		t.Fatalf("correct password did not verify")
	}
	if h.Verify("wrong-password", hash) {
		t.Fatalf("wrong password verified")
	}
}

func TestPasswordHasher_FreshSaltPerHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("first Hash returned error: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("second Hash returned error: %v", err)
	}

	if first == second {
		t.Fatalf("two hashes of the same password are identical")
	}
	if !h.Verify("same-password", first) || !h.Verify("same-password", second) {
		t.Fatalf("both hashes should verify the password")
	}
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$xx$garbage"} {
		if h.Verify("anything", hash) {
			t.Fatalf("malformed hash %q verified", hash)
		}
	}
}

func TestPasswordHasher_LongPassword(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	long := strings.Repeat("a", 100)
	hash, err := h.Hash(long)
	if err != nil {
		t.Fatalf("Hash returned error for long password: %v", err)
	}
	if !h.Verify(long, hash) {
		t.Fatalf("long password did not verify")
	}
}

func TestPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	h := NewPasswordHasher(-1)

	hash, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if !h.Verify("pw", hash) {
		t.Fatalf("password did not verify with fallback cost")
	}
}
