package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-stationops/internal/attendance"
	"go-stationops/internal/events"
	"go-stationops/internal/messaging/kafka/consumer"
	"go-stationops/internal/shared/config"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const attendanceMirrorGroup = "stationops-attendance-mirror"

// RunConsumer replays queued attendance mirror writes into the Primary store
// until SIGINT/SIGTERM.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	registry, err := openStores(cfg, logger)
	if err != nil {
		return err
	}
	defer registry.Close(context.Background())

	mirrorRepo := attendance.NewMirrorRepository(registry)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.AttendanceMirrorRequestedTopic,
		GroupID:        attendanceMirrorGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeAttendanceMirror(ctx, reader, mirrorRepo, logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	<-done

	return nil
}
