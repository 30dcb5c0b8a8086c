package producer

import (
	"context"
	"errors"
	"testing"

	"go-stationops/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeOutbox struct {
	pending []kafka.OutboxEvent
	sent    []string
	failed  map[string]string
}

func (f *fakeOutbox) Create(context.Context, kafka.OutboxEvent) error { return nil }

func (f *fakeOutbox) ListPending(_ context.Context, limit int) ([]kafka.OutboxEvent, error) {
	if len(f.pending) > limit {
		return f.pending[:limit], nil
	}
	return f.pending, nil
}

func (f *fakeOutbox) MarkSent(_ context.Context, id string) error {
	f.sent = append(f.sent, id)
	return nil
}

func (f *fakeOutbox) MarkFailed(_ context.Context, event kafka.OutboxEvent, reason string) error {
	if f.failed == nil {
		f.failed = map[string]string{}
	}
	f.failed[event.ID] = reason
	return nil
}

type fakeWriter struct {
	msgs   []kafkago.Message
	failOn string
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if string(m.Key) == w.failOn {
			return errors.New("leader not available")
		}
		w.msgs = append(w.msgs, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	repo := &fakeOutbox{pending: []kafka.OutboxEvent{
		{ID: "a", AggregateID: "emp-1:2026-03-02", EventType: "attendance_mirror_requested", Topic: "t", Payload: []byte(`{}`), RequestID: "rid-1"},
		{ID: "b", AggregateID: "emp-2:2026-03-02", EventType: "attendance_mirror_requested", Topic: "t", Payload: []byte(`{}`)},
	}}
	writer := &fakeWriter{failOn: "emp-2:2026-03-02"}

	err := processPendingEvents(context.Background(), repo, writer, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, repo.sent)
	assert.Contains(t, repo.failed, "b")

	require.Len(t, writer.msgs, 1)
	msg := writer.msgs[0]
	assert.Equal(t, "t", msg.Topic)
	assert.Equal(t, "emp-1:2026-03-02", string(msg.Key))
	assert.Contains(t, msg.Headers, kafkago.Header{Key: "request_id", Value: []byte("rid-1")})
}

func TestOutboxMessage(t *testing.T) {
	msg := outboxMessage(kafka.OutboxEvent{
		ID:            "65a1",
		AggregateType: "attendance",
		AggregateID:   "emp-1:2026-03-02",
		EventType:     "attendance_mirror_requested",
		Topic:         "t",
		Payload:       []byte(`{}`),
		RetryCount:    2,
	})

	assert.Equal(t, "emp-1:2026-03-02", string(msg.Key))
	assert.Contains(t, msg.Headers, kafkago.Header{Key: "outbox_id", Value: []byte("65a1")})
	assert.Contains(t, msg.Headers, kafkago.Header{Key: "attempt", Value: []byte("3")})
	for _, h := range msg.Headers {
		assert.NotEqual(t, "request_id", h.Key, "empty request id is not sent")
	}
}

func TestRetryBackoff(t *testing.T) {
	assert.Equal(t, kafka.RetryBackoff(0)*3, kafka.RetryBackoff(2))
	assert.Equal(t, kafka.RetryBackoff(9), kafka.RetryBackoff(50))
}
