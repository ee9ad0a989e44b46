package ports

import (
	"context"

	"github.com/bloghub/microservices/internal/core/domain"
)

// DetailInput identifies the user to fetch; at least one selector must be
// set. Token is the caller's raw bearer token, forwarded to the post service
// when aggregating the user's posts.
type DetailInput struct {
	Caller domain.Principal
	UserID *int64
	Email  *string
	Token  string
}

// UserDetail is a sanitized user plus the posts they authored, fetched from
// the post service. Posts degrade to an empty list when the sibling service
// is unreachable.
type UserDetail struct {
	User  *domain.User
	Posts []RemotePost
}

type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Detail(ctx context.Context, in DetailInput) (*UserDetail, error)
}
