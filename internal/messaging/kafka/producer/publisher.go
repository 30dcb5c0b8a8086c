package producer

import (
	"context"
	"strconv"

	"go-stationops/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// outboxMessage keys by aggregate so repeated writes of one aggregate land
// on the same partition and replay in order.
func outboxMessage(event kafka.OutboxEvent) kafkago.Message {
	headers := []kafkago.Header{
		{Key: "outbox_id", Value: []byte(event.ID)},
		{Key: "event_type", Value: []byte(event.EventType)},
		{Key: "aggregate_type", Value: []byte(event.AggregateType)},
		{Key: "attempt", Value: []byte(strconv.Itoa(event.RetryCount + 1))},
	}
	if event.RequestID != "" {
		headers = append(headers, kafkago.Header{Key: "request_id", Value: []byte(event.RequestID)})
	}

	return kafkago.Message{
		Topic:   event.Topic,
		Key:     []byte(event.AggregateID),
		Value:   event.Payload,
		Headers: headers,
	}
}

func publishEvent(ctx context.Context, writer Writer, event kafka.OutboxEvent) error {
	return writer.WriteMessages(ctx, outboxMessage(event))
}
