package auth

import (
	"strings"
	"testing"
)

func TestPassword_RoundTrip(t *testing.T) {
	for _, plain := range []string{"password1", "s3cret-with-symbols!#%", "averyveryverylongpassphraseover32chars.."} {
		hash, err := HashPassword(plain)
		if err != nil {
			t.Fatalf("HashPassword(%q): %v", plain, err)
		}
		if hash == plain {
			t.Fatalf("hash equals plaintext")
		}
		if !VerifyPassword(plain, hash) {
			t.Fatalf("VerifyPassword(%q) = false, want true", plain)
		}
	}
}

func TestPassword_LongPasswords(t *testing.T) {
	// bcrypt alone caps input at 72 bytes; the full accepted range up to
	// 128 characters must hash and verify.
	for _, n := range []int{72, 73, 100, 128} {
		plain := strings.Repeat("a", n)
		hash, err := HashPassword(plain)
		if err != nil {
			t.Fatalf("HashPassword(len %d): %v", n, err)
		}
		if !VerifyPassword(plain, hash) {
			t.Fatalf("VerifyPassword(len %d) = false, want true", n)
		}
	}
}

func TestPassword_LongPasswordsNotTruncated(t *testing.T) {
	// Two passwords sharing the first 72 bytes must not verify against
	// each other's hash.
	base := strings.Repeat("a", 72)
	hash, err := HashPassword(base + "x")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if VerifyPassword(base+"y", hash) {
		t.Fatalf("passwords differing past byte 72 treated as equal")
	}
	if VerifyPassword(base, hash) {
		t.Fatalf("truncated prefix accepted")
	}
}

func TestPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("password1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if VerifyPassword("password2", hash) {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestPassword_SaltedHashesDiffer(t *testing.T) {
	first, _ := HashPassword("password1")
	second, _ := HashPassword("password1")
	if first == second {
		t.Fatalf("expected distinct salted hashes")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	// Must return false, never panic or error.
	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$xx$garbage"} {
		if VerifyPassword("password1", hash) {
			t.Fatalf("VerifyPassword with hash %q = true, want false", hash)
		}
	}
}
