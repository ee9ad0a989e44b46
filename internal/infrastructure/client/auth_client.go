// Package client holds the outbound HTTP adapters the two services use to
// talk to each other through the reverse proxy.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/microservices/internal/api/metrics"
	"github.com/bloghub/microservices/internal/core/domain"
	"github.com/bloghub/microservices/internal/core/ports"
)

const defaultValidateTimeout = 3 * time.Second

// AuthClient redeems bearer tokens against the user service's validation
// endpoint. Every failure mode — upstream rejection, timeout, connection
// refused, malformed body — resolves to ports.ErrInvalidToken: the post
// service deliberately cannot tell an invalid token from an unreachable
// validator.
type AuthClient struct {
	baseURL string
	httpc   *http.Client
	log     zerolog.Logger
}

func NewAuthClient(baseURL string, timeout time.Duration, log zerolog.Logger) *AuthClient {
	if timeout <= 0 {
		timeout = defaultValidateTimeout
	}
	return &AuthClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *AuthClient) Validate(ctx context.Context, authorization string) (*domain.Principal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/validate-token", nil)
	if err != nil {
		return nil, fmt.Errorf("validate token: %w", err)
	}
	req.Header.Set("Authorization", authorization)

	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.RemoteValidationsTotal.WithLabelValues("unreachable").Inc()
		c.log.Warn().Err(err).Msg("token validation call failed")
		return nil, ports.ErrInvalidToken
	}
	defer resp.Body.Close()

	var envelope struct {
		RespCode int               `json:"resp_code"`
		Message  string            `json:"message"`
		Data     *domain.Principal `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		metrics.RemoteValidationsTotal.WithLabelValues("unreachable").Inc()
		c.log.Warn().Err(err).Msg("token validation response malformed")
		return nil, ports.ErrInvalidToken
	}

	if envelope.RespCode != http.StatusOK || envelope.Data == nil {
		metrics.RemoteValidationsTotal.WithLabelValues("rejected").Inc()
		return nil, &ports.RejectedError{Message: envelope.Message}
	}

	metrics.RemoteValidationsTotal.WithLabelValues("valid").Inc()
	return envelope.Data, nil
}
