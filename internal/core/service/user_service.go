package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bloghub/microservices/internal/auth"
	"github.com/bloghub/microservices/internal/core/domain"
	"github.com/bloghub/microservices/internal/core/ports"
)

// UserService serves user listing and detail reads, aggregating the user's
// posts from the post service.
type UserService struct {
	repo  ports.UserRepository
	posts ports.PostFetcher
	log   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, posts ports.PostFetcher, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, posts: posts, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// Detail fetches a user by id or email after the authorization policy has
// cleared the caller. Post-service failure degrades to an empty posts list
// rather than failing the read.
func (s *UserService) Detail(ctx context.Context, in ports.DetailInput) (*ports.UserDetail, error) {
	if in.UserID == nil && in.Email == nil {
		return nil, domain.ErrTargetRequired
	}

	if err := auth.Authorize(in.Caller, in.UserID, in.Email); err != nil {
		return nil, err
	}

	var user *domain.User
	var err error
	if in.UserID != nil {
		user, err = s.repo.FindByID(ctx, *in.UserID)
	} else {
		user, err = s.repo.FindByEmail(ctx, *in.Email)
	}
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.UserPosts(ctx, in.Token, user.ID)
	if err != nil {
		s.log.Warn().Err(err).Int64("user_id", user.ID).Msg("post service lookup failed, returning empty posts")
		posts = []ports.RemotePost{}
	}

	return &ports.UserDetail{User: user, Posts: posts}, nil
}
