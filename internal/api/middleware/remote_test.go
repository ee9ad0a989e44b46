package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/microservices/internal/core/domain"
	"github.com/bloghub/microservices/internal/core/ports"
)

type stubValidator struct {
	fn func(ctx context.Context, authorization string) (*domain.Principal, error)
}

func (s *stubValidator) Validate(ctx context.Context, authorization string) (*domain.Principal, error) {
	return s.fn(ctx, authorization)
}

func TestRemoteAuth_ValidToken(t *testing.T) {
	validator := &stubValidator{
		fn: func(_ context.Context, authorization string) (*domain.Principal, error) {
			if authorization != "Bearer goodtoken" {
				t.Fatalf("header not forwarded verbatim, got %q", authorization)
			}
			return &domain.Principal{ID: 3, Username: "bob", Email: "bob@example.com"}, nil
		},
	}

	e := echo.New()
	e.GET("/posts", identityEcho, RemoteAuth(validator))

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("Authorization", "Bearer goodtoken")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"user_id":3`) {
		t.Fatalf("principal not in context: %s", rec.Body.String())
	}
}

func TestRemoteAuth_MissingHeader(t *testing.T) {
	validator := &stubValidator{
		fn: func(context.Context, string) (*domain.Principal, error) {
			t.Fatalf("validator must not be called without a header")
			return nil, nil
		},
	}

	e := echo.New()
	e.GET("/posts", identityEcho, RemoteAuth(validator))

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Auth token is required") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRemoteAuth_UpstreamRejectionMessage(t *testing.T) {
	validator := &stubValidator{
		fn: func(context.Context, string) (*domain.Principal, error) {
			return nil, &ports.RejectedError{Message: "Unauthorized access"}
		},
	}

	e := echo.New()
	e.GET("/posts", identityEcho, RemoteAuth(validator))

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Unauthorized access") {
		t.Fatalf("upstream message not propagated: %s", rec.Body.String())
	}
}

func TestRemoteAuth_ValidatorUnreachable(t *testing.T) {
	validator := &stubValidator{
		fn: func(context.Context, string) (*domain.Principal, error) {
			return nil, ports.ErrInvalidToken
		},
	}

	e := echo.New()
	e.GET("/posts", identityEcho, RemoteAuth(validator))

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// Infrastructure failure is indistinguishable from rejection: 401 either way.
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
