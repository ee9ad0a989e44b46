package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/bloghub/microservices/internal/api/metrics"
	"github.com/bloghub/microservices/internal/auth"
	"github.com/bloghub/microservices/internal/core/domain"
	"github.com/bloghub/microservices/internal/core/ports"
)

// PostService implements post CRUD with soft deletes. Ownership decisions go
// through the shared authorization policy.
type PostService struct {
	repo ports.PostRepository
	log  zerolog.Logger
}

func NewPostService(repo ports.PostRepository, log zerolog.Logger) *PostService {
	return &PostService{repo: repo, log: log}
}

// Create inserts a new post. Titles are unique among all records, deleted
// ones included, matching the unique index on the collection.
func (s *PostService) Create(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error) {
	if _, err := s.repo.FindByTitle(ctx, in.Title); err == nil {
		return nil, domain.ErrPostExists
	} else if !errors.Is(err, domain.ErrPostNotFound) {
		return nil, err
	}

	post := &domain.Post{
		Title:           in.Title,
		Description:     in.Description,
		ImageURL:        in.ImageURL,
		CreatedByUserID: in.CreatedByUserID,
		Status:          domain.StatusActive,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	metrics.PostsCreatedTotal.Inc()
	s.log.Info().Int64("post_id", created.ID).Int64("user_id", created.CreatedByUserID).Msg("post created")
	return created, nil
}

func (s *PostService) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PostService) ListActive(ctx context.Context) ([]*domain.Post, error) {
	return s.repo.ListActive(ctx)
}

func (s *PostService) ListByUser(ctx context.Context, userID int64) ([]*domain.Post, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Update applies the provided fields to an active post owned by the caller
// (admins may edit any post) and returns the updated record. A payload with
// no fields set leaves the post untouched.
func (s *PostService) Update(ctx context.Context, id int64, caller domain.Principal, in ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.AuthorizeMutation(caller.ID, caller.IsAdmin, post.CreatedByUserID); err != nil {
		return nil, err
	}
	if in.Title == nil && in.Description == nil {
		return post, nil
	}
	if err := s.repo.Update(ctx, id, in); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Delete soft-deletes an active post owned by the caller (admins may delete
// any post). The record stays in the store with StatusDeleted.
func (s *PostService) Delete(ctx context.Context, id int64, caller domain.Principal) error {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.AuthorizeMutation(caller.ID, caller.IsAdmin, post.CreatedByUserID); err != nil {
		return err
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("post_id", id).Int64("caller_id", caller.ID).Msg("post deleted")
	return nil
}
