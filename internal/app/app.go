package app

import (
	"context"
	"time"

	"go-stationops/internal/account"
	"go-stationops/internal/attendance"
	"go-stationops/internal/messaging/kafka"
	"go-stationops/internal/profile"
	"go-stationops/internal/shared/config"
	"go-stationops/internal/shared/connection"
	"go-stationops/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const startupTimeout = 30 * time.Second

// openStores builds the registry, connects every store and makes sure the
// unique indexes the services rely on exist.
func openStores(cfg config.Config, logger *zap.Logger) (*store.Registry, error) {
	endpoints, err := store.EndpointsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	registry := store.NewRegistry(endpoints, store.MongoConnector(cfg.ConnectRetries, logger), logger)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	if err := registry.Warm(ctx); err != nil {
		registry.Close(context.Background())
		return nil, err
	}

	specs := account.Indexes()
	specs = append(specs, profile.Indexes()...)
	specs = append(specs, attendance.Indexes()...)
	specs = append(specs, kafka.Indexes(store.EmployeeDomain))
	if err := store.EnsureIndexes(ctx, registry, specs...); err != nil {
		registry.Close(context.Background())
		return nil, err
	}
	logger.Info("stores ready")

	return registry, nil
}

// BuildApp connects the stores and registers every module on router. The
// returned func releases the connections.
func BuildApp(router *gin.Engine, cfg config.Config) (func(context.Context), error) {
	logger := zap.L().Named("app")

	registry, err := openStores(cfg, logger)
	if err != nil {
		return nil, err
	}

	var cache redis.Cmdable
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		client, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.ConnectRetries)
		if err != nil {
			logger.Warn("redis unavailable, idempotency keys disabled", zap.Error(err))
		} else {
			redisClient, cache = client, client
			logger.Info("redis connection established")
		}
	}

	if err := registerModules(router, cfg, registry, cache, logger); err != nil {
		registry.Close(context.Background())
		return nil, err
	}

	return func(ctx context.Context) {
		if redisClient != nil {
			_ = redisClient.Close()
		}
		registry.Close(ctx)
	}, nil
}
