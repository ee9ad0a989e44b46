package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bloghub/microservices/internal/core/domain"
	"github.com/bloghub/microservices/internal/core/ports"
)

type fakePostFetcher struct {
	fn func(ctx context.Context, token string, userID int64) ([]ports.RemotePost, error)
}

func (f *fakePostFetcher) UserPosts(ctx context.Context, token string, userID int64) ([]ports.RemotePost, error) {
	return f.fn(ctx, token, userID)
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, email string, admin bool) *domain.User {
	t.Helper()
	u, err := repo.Create(context.Background(), &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: "x",
		IsAdmin:      admin,
		Status:       domain.StatusActive,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestUserService_Detail_RequiresSelector(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, &fakePostFetcher{}, zerolog.Nop())

	_, err := svc.Detail(context.Background(), ports.DetailInput{
		Caller: domain.Principal{ID: 1},
	})
	if !errors.Is(err, domain.ErrTargetRequired) {
		t.Fatalf("expected ErrTargetRequired, got %v", err)
	}
}

func TestUserService_Detail_OwnRecordWithPosts(t *testing.T) {
	repo := newFakeUserRepo()
	alice := seedUser(t, repo, "alice", "alice@example.com", false)

	fetcher := &fakePostFetcher{
		fn: func(_ context.Context, token string, userID int64) ([]ports.RemotePost, error) {
			if userID != alice.ID {
				t.Fatalf("fetched posts for user %d, want %d", userID, alice.ID)
			}
			if token != "Bearer abc" {
				t.Fatalf("caller token not forwarded, got %q", token)
			}
			return []ports.RemotePost{{ID: 7, Title: "hello"}}, nil
		},
	}
	svc := NewUserService(repo, fetcher, zerolog.Nop())

	id := alice.ID
	detail, err := svc.Detail(context.Background(), ports.DetailInput{
		Caller: domain.Principal{ID: alice.ID, Email: alice.Email},
		UserID: &id,
		Token:  "Bearer abc",
	})
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.User.ID != alice.ID {
		t.Fatalf("wrong user returned: %+v", detail.User)
	}
	if len(detail.Posts) != 1 || detail.Posts[0].ID != 7 {
		t.Fatalf("unexpected posts: %+v", detail.Posts)
	}
}

func TestUserService_Detail_ForbiddenForOtherUser(t *testing.T) {
	repo := newFakeUserRepo()
	alice := seedUser(t, repo, "alice", "alice@example.com", false)
	bob := seedUser(t, repo, "bob", "bob@example.com", false)

	svc := NewUserService(repo, &fakePostFetcher{}, zerolog.Nop())

	id := bob.ID
	_, err := svc.Detail(context.Background(), ports.DetailInput{
		Caller: domain.Principal{ID: alice.ID, Email: alice.Email},
		UserID: &id,
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_Detail_AdminReadsAnyone(t *testing.T) {
	repo := newFakeUserRepo()
	admin := seedUser(t, repo, "root", "root@example.com", true)
	bob := seedUser(t, repo, "bob", "bob@example.com", false)

	fetcher := &fakePostFetcher{
		fn: func(context.Context, string, int64) ([]ports.RemotePost, error) {
			return nil, nil
		},
	}
	svc := NewUserService(repo, fetcher, zerolog.Nop())

	email := bob.Email
	detail, err := svc.Detail(context.Background(), ports.DetailInput{
		Caller: domain.Principal{ID: admin.ID, Email: admin.Email, IsAdmin: true},
		Email:  &email,
	})
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.User.ID != bob.ID {
		t.Fatalf("wrong user returned: %+v", detail.User)
	}
}

func TestUserService_Detail_UnknownUser(t *testing.T) {
	repo := newFakeUserRepo()
	alice := seedUser(t, repo, "alice", "alice@example.com", false)

	svc := NewUserService(repo, &fakePostFetcher{}, zerolog.Nop())

	email := alice.Email
	delete(repo.users, alice.ID)
	_, err := svc.Detail(context.Background(), ports.DetailInput{
		Caller: domain.Principal{ID: alice.ID, Email: alice.Email},
		Email:  &email,
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Detail_PostServiceDownDegrades(t *testing.T) {
	repo := newFakeUserRepo()
	alice := seedUser(t, repo, "alice", "alice@example.com", false)

	fetcher := &fakePostFetcher{
		fn: func(context.Context, string, int64) ([]ports.RemotePost, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := NewUserService(repo, fetcher, zerolog.Nop())

	id := alice.ID
	detail, err := svc.Detail(context.Background(), ports.DetailInput{
		Caller: domain.Principal{ID: alice.ID, Email: alice.Email},
		UserID: &id,
	})
	if err != nil {
		t.Fatalf("detail should not fail when the post service is down: %v", err)
	}
	if detail.Posts == nil || len(detail.Posts) != 0 {
		t.Fatalf("expected empty posts slice, got %+v", detail.Posts)
	}
}
