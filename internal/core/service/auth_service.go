package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bloghub/microservices/internal/api/metrics"
	"github.com/bloghub/microservices/internal/auth"
	"github.com/bloghub/microservices/internal/core/domain"
	"github.com/bloghub/microservices/internal/core/ports"
)

// AuthService implements registration, login and cross-service token
// validation for the user service.
type AuthService struct {
	repo     ports.UserRepository
	issuer   *auth.Issuer
	verifier *auth.Verifier
	log      zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, issuer *auth.Issuer, verifier *auth.Verifier, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, verifier: verifier, log: log}
}

// Register creates a credential record with a hashed password. Duplicate
// email or username surfaces as domain.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Status:       domain.StatusActive,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.SignInsTotal.WithLabelValues("invalid_credentials").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		metrics.SignInsTotal.WithLabelValues("invalid_credentials").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("login: issue token: %w", err)
	}

	metrics.SignInsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()
	s.log.Info().Str("email", user.Email).Int64("user_id", user.ID).Msg("user signed in")
	return token, user, nil
}

// ValidateToken verifies signature and expiry, then re-checks that the
// referenced credential record still exists. This is the one place token
// validity is cross-referenced against live state.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.verifier.Verify(token)
	if err != nil {
		metrics.TokenValidationsTotal.WithLabelValues(validationReason(err)).Inc()
		return nil, err
	}

	if _, err := s.repo.FindByID(ctx, claims.ID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.TokenValidationsTotal.WithLabelValues("unknown_user").Inc()
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()
	return claims, nil
}

func validationReason(err error) string {
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return "expired"
	case errors.Is(err, auth.ErrSignatureInvalid):
		return "signature_invalid"
	default:
		return "malformed"
	}
}
