package ports

import "context"

// RemotePost is a post as serialized by the post service. The user service
// treats it as opaque display data and never writes it back.
type RemotePost struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	ImageURL        string `json:"image_url,omitempty"`
	CreatedByUserID int64  `json:"created_by_user_id"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// PostFetcher retrieves the posts authored by a user from the post service,
// forwarding the caller's bearer token unchanged.
type PostFetcher interface {
	UserPosts(ctx context.Context, token string, userID int64) ([]RemotePost, error)
}
