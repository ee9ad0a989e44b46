package ports

import (
	"context"

	"github.com/bloghub/microservices/internal/auth"
	"github.com/bloghub/microservices/internal/core/domain"
)

// AuthService implements registration, login and the cross-service
// token-validation operation exposed by the user service.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// ValidateToken verifies the token and re-checks that the referenced
	// credential record still exists. A token for a removed account fails
	// with domain.ErrUserNotFound even when cryptographically valid.
	ValidateToken(ctx context.Context, token string) (*auth.Claims, error)
}
