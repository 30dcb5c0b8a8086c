package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-stationops/internal/attendance"
	"go-stationops/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Reader is the part of *kafkago.Reader the consumers need.
type Reader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

var (
	replayBaseDelay = time.Second
	replayMaxDelay  = 30 * time.Second
)

// ConsumeAttendanceMirror replays mirror writes into the Primary store. The
// upsert is keyed by (employee, date), so redelivery is harmless. A failed
// upsert is retried in place until it succeeds; committing a later offset
// would otherwise drop it.
func ConsumeAttendanceMirror(
	ctx context.Context,
	reader Reader,
	mirror attendance.MirrorRepository,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance_mirror")
	log.Info("attendance mirror consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance mirror consumer stopped")
				return
			}
			log.Error("fetch attendance mirror message failed", zap.Error(err))
			continue
		}

		if !handleAttendanceMirror(ctx, msg, mirror, log) {
			log.Info("attendance mirror consumer stopped")
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance mirror message failed", zap.Error(err))
		}
	}
}

// handleAttendanceMirror reports whether the message is done with and can
// be committed. It only returns false when ctx ends mid-retry.
func handleAttendanceMirror(ctx context.Context, msg kafkago.Message, mirror attendance.MirrorRepository, log *zap.Logger) bool {
	var event events.AttendanceMirrorRequestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode attendance mirror event failed", zap.Error(err), zap.Int64("offset", msg.Offset))
		return true
	}

	log = log.With(
		zap.String("request_id", event.RequestID),
		zap.String("employee_id", event.EmployeeID),
		zap.String("date", event.Date),
	)

	rec, err := attendance.MirrorFromEvent(event)
	if err != nil {
		log.Error("invalid attendance mirror event, skipping", zap.Error(err))
		return true
	}

	delay := replayBaseDelay
	for attempt := 1; ; attempt++ {
		err := mirror.UpsertMirror(ctx, rec)
		if err == nil {
			log.Info("attendance mirror replayed", zap.Int("attempt", attempt))
			return true
		}
		log.Warn("replay attendance mirror failed",
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", delay),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
		}
		delay = min(delay*2, replayMaxDelay)
	}
}
