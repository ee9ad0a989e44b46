package ports

import (
	"context"
	"errors"

	"github.com/bloghub/microservices/internal/core/domain"
)

// ErrInvalidToken is the single failure mode of remote validation. Upstream
// rejection, transport failure and malformed responses all collapse into it;
// callers cannot distinguish an invalid token from an unreachable validator.
var ErrInvalidToken = errors.New("auth token is invalid")

// RejectedError carries the upstream message of an application-level
// rejection (non-200 envelope) from the validation endpoint. It unwraps to
// ErrInvalidToken so callers can treat every failure uniformly.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string { return e.Message }
func (e *RejectedError) Unwrap() error { return ErrInvalidToken }

// TokenValidator redeems a bearer Authorization header for a verified
// principal. The post service's implementation calls the user service over
// the network with a bounded timeout.
type TokenValidator interface {
	Validate(ctx context.Context, authorization string) (*domain.Principal, error)
}
