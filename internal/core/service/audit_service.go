package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bloghub/microservices/internal/api/metrics"
	"github.com/bloghub/microservices/internal/core/domain"
	"github.com/bloghub/microservices/internal/core/ports"
)

type auditService struct {
	repo ports.AuthEventRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService writing events to the audit trail.
func NewAuditService(repo ports.AuthEventRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single audit event dequeued by a dispatcher worker.
func (s *auditService) Process(ctx context.Context, in ports.AuthEventInput) error {
	event := &domain.AuthEvent{
		Email:     in.Email,
		Kind:      in.Kind,
		Outcome:   in.Outcome,
		RequestID: in.RequestID,
		Timestamp: in.Timestamp,
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("audit: insert event: %w", err)
	}

	metrics.AuthEventsRecordedTotal.WithLabelValues(string(in.Kind)).Inc()
	s.log.Debug().Str("email", in.Email).Str("kind", string(in.Kind)).Str("outcome", in.Outcome).Msg("auth event recorded")
	return nil
}
