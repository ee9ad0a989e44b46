package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bloghub/microservices/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       7,
		Username: "alice",
		Email:    "alice@example.com",
		IsAdmin:  true,
	}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	issuer, err := NewIssuer("secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}
	verifier, err := NewVerifier("secret", "HS256")
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected compact three-segment token, got %q", token)
	}

	claims, err := verifier.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.ID != 7 || claims.Email != "alice@example.com" || !claims.IsAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Username != "alice" {
		t.Fatalf("username claim lost: %+v", claims)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Fatalf("expected future exp, got %v", claims.ExpiresAt)
	}
}

func TestIssue_TokensDifferButBothVerify(t *testing.T) {
	issuer, _ := NewIssuer("secret", "HS256", time.Hour)
	verifier, _ := NewVerifier("secret", "HS256")

	// Signed at different instants the exp claim differs.
	first, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	time.Sleep(1100 * time.Millisecond)
	second, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct tokens")
	}
	if _, err := verifier.Verify(first); err != nil {
		t.Fatalf("first token invalid: %v", err)
	}
	if _, err := verifier.Verify(second); err != nil {
		t.Fatalf("second token invalid: %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	issuer, _ := NewIssuer("secret", "HS256", -time.Second)
	verifier, _ := NewVerifier("secret", "HS256")

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer, _ := NewIssuer("right-secret", "HS256", time.Hour)
	verifier, _ := NewVerifier("wrong-secret", "HS256")

	token, _ := issuer.Issue(testUser())
	if _, err := verifier.Verify(token); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
}

func TestVerify_WrongAlgorithm(t *testing.T) {
	issuer, _ := NewIssuer("secret", "HS512", time.Hour)
	verifier, _ := NewVerifier("secret", "HS256")

	token, _ := issuer.Issue(testUser())
	if _, err := verifier.Verify(token); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	verifier, _ := NewVerifier("secret", "HS256")

	for _, tok := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := verifier.Verify(tok); !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", tok, err)
		}
	}
}

func TestVerify_Truncated(t *testing.T) {
	issuer, _ := NewIssuer("secret", "HS256", time.Hour)
	verifier, _ := NewVerifier("secret", "HS256")

	token, _ := issuer.Issue(testUser())
	if _, err := verifier.Verify(token[:len(token)-1]); err == nil {
		t.Fatalf("expected truncated token to fail verification")
	}
}

func TestVerify_MissingExp(t *testing.T) {
	verifier, _ := NewVerifier("secret", "HS256")

	// Hand-rolled token without an exp claim.
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       int64(1),
		"email":    "x@example.com",
		"is_admin": false,
	})
	token, err := raw.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed for missing exp, got %v", err)
	}
}

func TestNewIssuer_Configuration(t *testing.T) {
	if _, err := NewIssuer("", "HS256", time.Hour); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration for empty secret, got %v", err)
	}
	if _, err := NewIssuer("secret", "", time.Hour); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration for empty algorithm, got %v", err)
	}
	if _, err := NewIssuer("secret", "none", time.Hour); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration for unsupported algorithm, got %v", err)
	}
	if _, err := NewVerifier("", "HS256"); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration for verifier without secret, got %v", err)
	}
}
