package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloghub/microservices/internal/core/domain"
)

const authEventsCollection = "auth_events"

// AuthEventRepository is the insert-only audit trail store.
type AuthEventRepository struct {
	coll *mongo.Collection
}

func NewAuthEventRepository(db *mongo.Database) *AuthEventRepository {
	return &AuthEventRepository{coll: db.Collection(authEventsCollection)}
}

type authEventDoc struct {
	Email     string `bson:"email"`
	Kind      string `bson:"kind"`
	Outcome   string `bson:"outcome"`
	RequestID string `bson:"request_id,omitempty"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *AuthEventRepository) Insert(ctx context.Context, event *domain.AuthEvent) error {
	doc := authEventDoc{
		Email:     event.Email,
		Kind:      string(event.Kind),
		Outcome:   event.Outcome,
		RequestID: event.RequestID,
		Timestamp: event.Timestamp.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}
