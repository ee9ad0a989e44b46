package ports

import (
	"context"
	"time"

	"github.com/bloghub/microservices/internal/core/domain"
)

// AuthEventInput is one auth operation outcome queued for the audit trail.
type AuthEventInput struct {
	Email     string
	Kind      domain.AuthEventKind
	Outcome   string
	RequestID string
	Timestamp time.Time
}

// AuditService persists audit events dequeued by the dispatcher workers.
type AuditService interface {
	Process(ctx context.Context, in AuthEventInput) error
}

// AuthEventRepository is the audit trail store. Insert-only.
type AuthEventRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
}

// AuthEventRecorder is the producer side of the audit pipeline. Enqueue never
// blocks request handling beyond the channel buffer.
type AuthEventRecorder interface {
	Enqueue(in AuthEventInput)
}
