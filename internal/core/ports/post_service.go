package ports

import (
	"context"

	"github.com/bloghub/microservices/internal/core/domain"
)

// CreatePostInput carries a new post. CreatedByUserID always comes from the
// authenticated principal, never from the request payload.
type CreatePostInput struct {
	Title           string
	Description     string
	ImageURL        string
	CreatedByUserID int64
}

type PostService interface {
	Create(ctx context.Context, in CreatePostInput) (*domain.Post, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	ListActive(ctx context.Context) ([]*domain.Post, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Post, error)
	Update(ctx context.Context, id int64, caller domain.Principal, in UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, id int64, caller domain.Principal) error
}
