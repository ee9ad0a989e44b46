package ports

import (
	"context"

	"github.com/bloghub/microservices/internal/core/domain"
)

// UpdatePostInput carries a partial update: only non-nil fields are applied.
type UpdatePostInput struct {
	Title       *string
	Description *string
}

// PostRepository defines the persistence interface for post records.
// All lookups filter on domain.StatusActive.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	FindByTitle(ctx context.Context, title string) (*domain.Post, error)
	ListActive(ctx context.Context) ([]*domain.Post, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Post, error)
	Update(ctx context.Context, id int64, in UpdatePostInput) error
	SoftDelete(ctx context.Context, id int64) error
}
