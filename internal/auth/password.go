package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a salted one-way hash of the plaintext password.
// The plaintext is reduced to a hex-encoded SHA-256 digest before bcrypt
// runs: bcrypt rejects input past 72 bytes, while sign-up accepts
// passwords up to 128 characters.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(digest(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plain matches the stored hash. A malformed
// hash never panics or errors out; it simply does not match.
func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), digest(plain)) == nil
}

// digest normalizes a password of any length to 64 hex bytes, safely under
// bcrypt's input cap.
func digest(plain string) []byte {
	sum := sha256.Sum256([]byte(plain))
	out := make([]byte, hex.EncodedLen(len(sum)))
	hex.Encode(out, sum[:])
	return out
}
