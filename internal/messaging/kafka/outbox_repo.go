package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-stationops/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"

	OutboxCollection = "outbox_events"

	maxErrorMessage = 500
	retryStep       = 15 * time.Second
	maxRetrySteps   = 10
)

type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
	NextRetryAt   time.Time
}

type outboxDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	RequestID     string             `bson:"requestId,omitempty"`
	AggregateType string             `bson:"aggregateType"`
	AggregateID   string             `bson:"aggregateId"`
	EventType     string             `bson:"eventType"`
	Topic         string             `bson:"topic"`
	Payload       []byte             `bson:"payload"`
	Status        string             `bson:"status"`
	RetryCount    int                `bson:"retryCount"`
	NextRetryAt   time.Time          `bson:"nextRetryAt"`
	ErrorMessage  string             `bson:"errorMessage,omitempty"`
	ProcessedAt   *time.Time         `bson:"processedAt,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

func (d outboxDocument) event() OutboxEvent {
	return OutboxEvent{
		ID:            d.ID.Hex(),
		RequestID:     d.RequestID,
		AggregateType: d.AggregateType,
		AggregateID:   d.AggregateID,
		EventType:     d.EventType,
		Topic:         d.Topic,
		Payload:       d.Payload,
		Status:        d.Status,
		RetryCount:    d.RetryCount,
		NextRetryAt:   d.NextRetryAt,
	}
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, event OutboxEvent, reason string) error
}

// outboxRepository keeps the outbox in the store that owns the events it
// describes, so enqueueing does not depend on the store that just failed.
type outboxRepository struct {
	stores store.Provider
	store  store.Store
	now    func() time.Time
}

func NewOutboxRepository(stores store.Provider, s store.Store) OutboxRepository {
	return &outboxRepository{stores: stores, store: s, now: time.Now}
}

func (r *outboxRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.stores.Handle(ctx, r.store)
	if err != nil {
		return nil, err
	}
	return db.Collection(OutboxCollection), nil
}

func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if event.ID == "" {
		event.ID = primitive.NewObjectID().Hex()
	}
	if event.Status == "" {
		event.Status = OutboxStatusPending
	}
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}
	id, err := primitive.ObjectIDFromHex(event.ID)
	if err != nil {
		return fmt.Errorf("invalid outbox id: %w", err)
	}

	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	now := r.now().UTC()
	_, err = coll.InsertOne(ctx, outboxDocument{
		ID:            id,
		RequestID:     event.RequestID,
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		EventType:     event.EventType,
		Topic:         event.Topic,
		Payload:       event.Payload,
		Status:        event.Status,
		NextRetryAt:   now,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	return store.Wrap(r.store, err)
}

func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	cur, err := coll.Find(ctx,
		bson.M{
			"status":      bson.M{"$in": bson.A{OutboxStatusPending, OutboxStatusFailed}},
			"nextRetryAt": bson.M{"$lte": r.now().UTC()},
		},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}).SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, store.Wrap(r.store, err)
	}
	defer cur.Close(ctx)

	var docs []outboxDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, store.Wrap(r.store, err)
	}

	events := make([]OutboxEvent, 0, len(docs))
	for _, d := range docs {
		events = append(events, d.event())
	}
	return events, nil
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid outbox id: %w", err)
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	now := r.now().UTC()
	_, err = coll.UpdateByID(ctx, oid, bson.M{
		"$set":   bson.M{"status": OutboxStatusSent, "processedAt": now, "updatedAt": now},
		"$unset": bson.M{"errorMessage": ""},
	})
	return store.Wrap(r.store, err)
}

func (r *outboxRepository) MarkFailed(ctx context.Context, event OutboxEvent, reason string) error {
	oid, err := primitive.ObjectIDFromHex(event.ID)
	if err != nil {
		return fmt.Errorf("invalid outbox id: %w", err)
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	if len(reason) > maxErrorMessage {
		reason = reason[:maxErrorMessage]
	}
	now := r.now().UTC()
	_, err = coll.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{
			"status":       OutboxStatusFailed,
			"errorMessage": reason,
			"nextRetryAt":  now.Add(RetryBackoff(event.RetryCount)),
			"updatedAt":    now,
		},
		"$inc": bson.M{"retryCount": 1},
	})
	return store.Wrap(r.store, err)
}

// RetryBackoff grows linearly with the attempts already made and is capped.
func RetryBackoff(retryCount int) time.Duration {
	return time.Duration(min(retryCount+1, maxRetrySteps)) * retryStep
}

func Indexes(s store.Store) store.CollectionIndexes {
	return store.CollectionIndexes{
		Store:      s,
		Collection: OutboxCollection,
		Models: []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "status", Value: 1}, {Key: "nextRetryAt", Value: 1}},
				Options: options.Index().SetName("idx_status_next_retry"),
			},
		},
	}
}

func ValidateOutboxEvent(event OutboxEvent) error {
	if event.ID == "" {
		return errors.New("outbox id is required")
	}
	if event.Topic == "" {
		return errors.New("outbox topic is required")
	}
	if len(event.Payload) == 0 {
		return errors.New("outbox payload is required")
	}
	switch event.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}
