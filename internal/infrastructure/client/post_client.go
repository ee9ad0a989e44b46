package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/microservices/internal/core/ports"
)

const defaultFetchTimeout = 3 * time.Second

// PostClient fetches a user's posts from the post service on behalf of the
// user service's detail endpoint, forwarding the caller's Authorization
// header unchanged.
type PostClient struct {
	baseURL string
	httpc   *http.Client
	log     zerolog.Logger
}

func NewPostClient(baseURL string, timeout time.Duration, log zerolog.Logger) *PostClient {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &PostClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *PostClient) UserPosts(ctx context.Context, token string, userID int64) ([]ports.RemotePost, error) {
	url := fmt.Sprintf("%s/posts/user-posts?user_id=%d", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("user posts: %w", err)
	}
	req.Header.Set("Authorization", token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("user posts: %w", err)
	}
	defer resp.Body.Close()

	var envelope struct {
		RespCode int                `json:"resp_code"`
		Message  string             `json:"message"`
		Data     []ports.RemotePost `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("user posts: decode response: %w", err)
	}

	if envelope.RespCode != http.StatusOK {
		return nil, fmt.Errorf("user posts: post service returned %d: %s", envelope.RespCode, envelope.Message)
	}

	if envelope.Data == nil {
		return []ports.RemotePost{}, nil
	}
	return envelope.Data, nil
}
