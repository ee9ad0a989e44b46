// Package auth implements the cross-service authentication protocol core:
// token issuance and verification, password hashing, and the pure
// authorization policy shared by both services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bloghub/microservices/internal/core/domain"
)

var ErrConfiguration = errors.New("auth: secret or algorithm not configured")
var ErrTokenMalformed = errors.New("auth token is malformed")
var ErrTokenExpired = errors.New("auth token is expired")
var ErrSignatureInvalid = errors.New("auth token signature is invalid")

// Claims is the identity payload embedded in every issued token.
// ExpiresAt is mandatory; a token without exp is rejected as malformed.
type Claims struct {
	jwt.RegisteredClaims
	ID       int64  `json:"id"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// Principal converts verified claims into the request identity.
func (c *Claims) Principal() domain.Principal {
	return domain.Principal{
		ID:       c.ID,
		Username: c.Username,
		Email:    c.Email,
		IsAdmin:  c.IsAdmin,
	}
}

// Issuer mints signed, time-limited tokens. The secret and algorithm are
// process-wide configuration, immutable after construction.
type Issuer struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

func NewIssuer(secret, algorithm string, ttl time.Duration) (*Issuer, error) {
	method, err := signingMethod(secret, algorithm)
	if err != nil {
		return nil, err
	}
	return &Issuer{secret: []byte(secret), method: method, ttl: ttl}, nil
}

// Issue signs a token for the given user with exp = now + ttl. Two calls for
// the same user produce distinct strings; both verify.
func (i *Issuer) Issue(user *domain.User) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.ttl)),
		},
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsAdmin:  user.IsAdmin,
	}
	return jwt.NewWithClaims(i.method, claims).SignedString(i.secret)
}

// Verifier validates tokens issued under the same secret and algorithm.
// Only the user service holds one; the post service always verifies remotely.
type Verifier struct {
	secret []byte
	method jwt.SigningMethod
}

func NewVerifier(secret, algorithm string) (*Verifier, error) {
	method, err := signingMethod(secret, algorithm)
	if err != nil {
		return nil, err
	}
	return &Verifier{secret: []byte(secret), method: method}, nil
}

// Verify checks the signature and expiry of a compact token string and
// returns its claims. Clock skew is not compensated; the local wall clock
// decides expiry.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != v.method.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return v.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrSignatureInvalid
		default:
			return nil, ErrTokenMalformed
		}
	}
	if !token.Valid || claims.ExpiresAt == nil {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}

func signingMethod(secret, algorithm string) (jwt.SigningMethod, error) {
	if secret == "" {
		return nil, ErrConfiguration
	}
	switch algorithm {
	case "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	default:
		return nil, ErrConfiguration
	}
}
