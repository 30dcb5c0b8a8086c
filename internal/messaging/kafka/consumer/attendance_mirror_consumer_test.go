package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-stationops/internal/attendance"
	attendanceMock "go-stationops/internal/attendance/mock"
	"go-stationops/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeReader struct {
	msgs      []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func mirrorMessage(t *testing.T, offset int64, ev events.AttendanceMirrorRequestedEvent) kafkago.Message {
	b, err := json.Marshal(ev)
	require.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: b}
}

func fastReplay(t *testing.T) {
	baseDelay, maxDelay := replayBaseDelay, replayMaxDelay
	replayBaseDelay, replayMaxDelay = time.Millisecond, 4*time.Millisecond
	t.Cleanup(func() { replayBaseDelay, replayMaxDelay = baseDelay, maxDelay })
}

func committedOffsets(r *fakeReader) []int64 {
	offsets := make([]int64, 0, len(r.committed))
	for _, m := range r.committed {
		offsets = append(offsets, m.Offset)
	}
	return offsets
}

func TestConsumeAttendanceMirror(t *testing.T) {
	fastReplay(t)
	ctrl := gomock.NewController(t)
	mirror := attendanceMock.NewMockMirrorRepository(ctrl)

	ok := events.AttendanceMirrorRequestedEvent{
		EmployeeID: primitive.NewObjectID().Hex(),
		Date:       "2024-01-10",
		Status:     "present",
		TotalHours: 8,
	}
	flaky := ok
	flaky.Date = "2024-01-11"
	invalid := ok
	invalid.Status = "remote"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := &fakeReader{cancel: cancel, msgs: []kafkago.Message{
		mirrorMessage(t, 1, ok),
		mirrorMessage(t, 2, flaky),
		mirrorMessage(t, 3, invalid),
		{Offset: 4, Value: []byte("not json")},
	}}

	var upserted []string
	flakyFailures := 2
	mirror.EXPECT().UpsertMirror(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m attendance.MirrorRecord) error {
			if m.Date == "2024-01-11" && flakyFailures > 0 {
				flakyFailures--
				return errors.New("primary unreachable")
			}
			assert.Equal(t, attendance.StatusPresent, m.Status)
			assert.Equal(t, 8.0, m.TotalHours)
			upserted = append(upserted, m.Date)
			return nil
		}).Times(4)

	ConsumeAttendanceMirror(ctx, reader, mirror, zap.NewNop())

	assert.Equal(t, []string{"2024-01-10", "2024-01-11"}, upserted)
	assert.Equal(t, []int64{1, 2, 3, 4}, committedOffsets(reader))
}

func TestConsumeAttendanceMirror_StopsWithoutCommitWhileRetrying(t *testing.T) {
	fastReplay(t)
	ctrl := gomock.NewController(t)
	mirror := attendanceMock.NewMockMirrorRepository(ctrl)

	ev := events.AttendanceMirrorRequestedEvent{
		EmployeeID: primitive.NewObjectID().Hex(),
		Date:       "2024-01-10",
		Status:     "late",
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := &fakeReader{cancel: cancel, msgs: []kafkago.Message{mirrorMessage(t, 7, ev)}}

	attempts := 0
	mirror.EXPECT().UpsertMirror(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, attendance.MirrorRecord) error {
			attempts++
			if attempts == 2 {
				cancel()
			}
			return errors.New("primary unreachable")
		}).MinTimes(2)

	ConsumeAttendanceMirror(ctx, reader, mirror, zap.NewNop())

	assert.Empty(t, reader.committed)
	assert.Len(t, reader.msgs, 0)
}
