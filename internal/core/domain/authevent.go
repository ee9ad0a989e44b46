package domain

import "time"

// AuthEventKind identifies the authentication operation being audited.
type AuthEventKind string

const (
	AuthEventSignUp        AuthEventKind = "sign_up"
	AuthEventSignIn        AuthEventKind = "sign_in"
	AuthEventValidateToken AuthEventKind = "validate_token"
)

// AuthEvent is one row in the auth audit trail. Events are recorded
// asynchronously and are never read back on a request path.
type AuthEvent struct {
	Email     string
	Kind      AuthEventKind
	Outcome   string
	RequestID string
	Timestamp time.Time
}
