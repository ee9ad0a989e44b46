package ports

import (
	"context"

	"github.com/bloghub/microservices/internal/core/domain"
)

// UserRepository defines the persistence interface for credential records.
// Only active records are returned; soft-deleted users behave as missing.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
