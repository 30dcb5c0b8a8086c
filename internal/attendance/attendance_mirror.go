package attendance

import (
	"context"
	"encoding/json"
	"fmt"

	"go-stationops/internal/events"
	"go-stationops/internal/messaging/kafka"
	"go-stationops/internal/shared/contextutil"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MirrorOutbox queues a mirror write that failed so it can be replayed
// later.
type MirrorOutbox interface {
	EnqueueMirror(ctx context.Context, m MirrorRecord) error
}

type outboxMirror struct {
	outbox kafka.OutboxRepository
}

func NewOutboxMirror(outbox kafka.OutboxRepository) MirrorOutbox {
	return &outboxMirror{outbox: outbox}
}

func (o *outboxMirror) EnqueueMirror(ctx context.Context, m MirrorRecord) error {
	rid := contextutil.GetRequestID(ctx)
	payload, err := json.Marshal(MirrorEvent(m, rid))
	if err != nil {
		return fmt.Errorf("encode mirror event: %w", err)
	}

	return o.outbox.Create(ctx, kafka.OutboxEvent{
		RequestID:     rid,
		AggregateType: "attendance",
		AggregateID:   m.Employee.Hex() + ":" + m.Date,
		EventType:     events.AttendanceMirrorRequestedType,
		Topic:         events.AttendanceMirrorRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func MirrorEvent(m MirrorRecord, requestID string) events.AttendanceMirrorRequestedEvent {
	return events.AttendanceMirrorRequestedEvent{
		EventType:    events.AttendanceMirrorRequestedType,
		RequestID:    requestID,
		EmployeeID:   m.Employee.Hex(),
		Date:         m.Date,
		ClockInTime:  m.ClockInTime,
		ClockOutTime: m.ClockOutTime,
		Status:       string(m.Status),
		TotalHours:   m.TotalHours,
		OccurredAt:   m.UpdatedAt,
	}
}

// MirrorFromEvent rebuilds the record a mirror event was created from.
func MirrorFromEvent(e events.AttendanceMirrorRequestedEvent) (MirrorRecord, error) {
	id, err := primitive.ObjectIDFromHex(e.EmployeeID)
	if err != nil {
		return MirrorRecord{}, fmt.Errorf("invalid employee id %q: %w", e.EmployeeID, err)
	}
	if _, err := ParseDate(e.Date); err != nil {
		return MirrorRecord{}, fmt.Errorf("invalid date %q: %w", e.Date, err)
	}
	status := Status(e.Status)
	if !status.Valid() {
		return MirrorRecord{}, fmt.Errorf("invalid status %q", e.Status)
	}
	return MirrorRecord{
		Employee:     id,
		Date:         e.Date,
		ClockInTime:  e.ClockInTime,
		ClockOutTime: e.ClockOutTime,
		Status:       status,
		TotalHours:   e.TotalHours,
		UpdatedAt:    e.OccurredAt,
	}, nil
}
