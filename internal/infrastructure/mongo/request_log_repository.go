package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// RequestLogRepository stores the raw body of every inbound submission
// request before parsing, so no submission is lost to a later failure.
type RequestLogRepository struct {
	logs *mongo.Collection
}

// NewRequestLogRepository binds the request-log collection.
func NewRequestLogRepository(db *mongo.Database, collection string) *RequestLogRepository {
	return &RequestLogRepository{logs: db.Collection(collection)}
}

// Record writes one audit entry for the raw request body.
func (r *RequestLogRepository) Record(ctx context.Context, rawBody string) error {
	doc := RequestLogDocument{
		ID:          uuid.NewString(),
		RequestBody: rawBody,
		ReceivedAt:  time.Now().UTC(),
	}
	_, err := r.logs.InsertOne(ctx, doc)
	return err
}
