package connection

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

var retryDelay = 5 * time.Second

// ConnectMongoWithRetry opens a client and pings it until it answers or
// maxRetries is exhausted. Server lifecycle transitions are logged on logger.
func ConnectMongoWithRetry(ctx context.Context, uri string, maxRetries int, logger *zap.Logger) (*mongo.Client, error) {
	if logger == nil {
		logger = zap.L()
	}

	opts := options.Client().
		ApplyURI(uri).
		SetServerMonitor(serverMonitor(logger)).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		client, err := mongo.Connect(ctx, opts)
		if err != nil {
			lastErr = err
			logger.Warn("mongo connect failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
			if !sleep(ctx, i, maxRetries) {
				break
			}
			continue
		}

		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			lastErr = err
			_ = client.Disconnect(context.Background())
			logger.Warn("mongo ping failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
			if !sleep(ctx, i, maxRetries) {
				break
			}
			continue
		}

		logger.Info("mongo connected")
		return client, nil
	}

	return nil, fmt.Errorf("mongo connection failed after %d retries: %w", maxRetries, lastErr)
}

func serverMonitor(logger *zap.Logger) *event.ServerMonitor {
	return &event.ServerMonitor{
		ServerOpening: func(e *event.ServerOpeningEvent) {
			logger.Debug("mongo server opening", zap.String("address", e.Address.String()))
		},
		ServerClosed: func(e *event.ServerClosedEvent) {
			logger.Info("mongo disconnected", zap.String("address", e.Address.String()))
		},
		ServerHeartbeatFailed: func(e *event.ServerHeartbeatFailedEvent) {
			logger.Error("mongo heartbeat failed",
				zap.String("connection_id", e.ConnectionID),
				zap.Error(e.Failure),
			)
		},
	}
}

func sleep(ctx context.Context, attempt, maxRetries int) bool {
	if attempt == maxRetries {
		return false
	}
	select {
	case <-ctx.Done():
		return false
	case <-time.After(retryDelay):
		return true
	}
}

// DeriveURI swaps the database path segment of uri for database, keeping
// credentials, hosts and query options.
//
//	mongodb://u:p@h1,h2/main?authSource=admin -> mongodb://u:p@h1,h2/<database>?authSource=admin
func DeriveURI(uri, database string) (string, error) {
	schemeEnd := strings.Index(uri, "://")
	if schemeEnd < 0 {
		return "", fmt.Errorf("invalid mongo uri: missing scheme")
	}
	rest := uri[schemeEnd+3:]

	query := ""
	if q := strings.Index(rest, "?"); q >= 0 {
		query = rest[q:]
		rest = rest[:q]
	}

	hosts := rest
	if slash := strings.Index(rest, "/"); slash >= 0 {
		hosts = rest[:slash]
	}
	if hosts == "" {
		return "", fmt.Errorf("invalid mongo uri: missing host")
	}

	return uri[:schemeEnd+3] + hosts + "/" + database + query, nil
}

func ConnectRedisWithRetry(addr string, maxRetries int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	for i := 1; i <= maxRetries; i++ {
		if err := rdb.Ping(context.Background()).Err(); err == nil {
			zap.L().Info("redis connected", zap.String("addr", addr))
			return rdb, nil
		}

		zap.L().Warn("redis ping failed", zap.Int("attempt", i), zap.Int("max", maxRetries))
		if i < maxRetries {
			time.Sleep(retryDelay)
		}
	}

	_ = rdb.Close()
	return nil, fmt.Errorf("failed to connect redis at %s", addr)
}

// ConnectKafkaWithRetry dials the broker once per attempt to make sure it is
// reachable, then hands back a writer. Topics come from each message.
func ConnectKafkaWithRetry(broker string, maxRetries int) (*kafkago.Writer, error) {
	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		conn, err := kafkago.Dial("tcp", broker)
		if err == nil {
			_ = conn.Close()
			zap.L().Info("kafka connected", zap.String("broker", broker))
			return &kafkago.Writer{
				Addr:                   kafkago.TCP(broker),
				Balancer:               &kafkago.Hash{},
				RequiredAcks:           kafkago.RequireAll,
				AllowAutoTopicCreation: true,
			}, nil
		}

		lastErr = err
		zap.L().Warn("kafka dial failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
		if i < maxRetries {
			time.Sleep(retryDelay)
		}
	}
	return nil, fmt.Errorf("kafka connection failed after %d retries: %w", maxRetries, lastErr)
}
