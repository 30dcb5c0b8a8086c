package store

import (
	"context"
	"fmt"
	"sync"

	"go-stationops/internal/shared/config"
	"go-stationops/internal/shared/connection"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type Endpoint struct {
	URI      string
	Database string
}

// Connector opens the database behind an endpoint. Tests swap it for one
// returning fake handles.
type Connector func(ctx context.Context, s Store, ep Endpoint) (*mongo.Database, error)

// Registry lazily connects each store on first use and keeps the handle for
// the lifetime of the process. Failed connects are not cached.
type Registry struct {
	endpoints map[Store]Endpoint
	connect   Connector
	logger    *zap.Logger

	sf      singleflight.Group
	mu      sync.RWMutex
	handles map[Store]*mongo.Database
}

func NewRegistry(endpoints map[Store]Endpoint, connect Connector, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.L()
	}
	return &Registry{
		endpoints: endpoints,
		connect:   connect,
		logger:    logger.Named("store.registry"),
		handles:   make(map[Store]*mongo.Database, len(endpoints)),
	}
}

func (r *Registry) cached(s Store) (*mongo.Database, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	db, ok := r.handles[s]
	return db, ok
}

// Handle returns the shared handle for s, connecting on the first call.
// Concurrent first calls share a single connect attempt.
func (r *Registry) Handle(ctx context.Context, s Store) (*mongo.Database, error) {
	if db, ok := r.cached(s); ok {
		return db, nil
	}

	ep, ok := r.endpoints[s]
	if !ok {
		return nil, Unreachable(s, fmt.Errorf("no endpoint configured"))
	}

	v, err, _ := r.sf.Do(string(s), func() (any, error) {
		if db, ok := r.cached(s); ok {
			return db, nil
		}

		r.logger.Info("store connecting", zap.String("store", string(s)), zap.String("database", ep.Database))
		db, err := r.connect(ctx, s, ep)
		if err != nil {
			r.logger.Error("store connect failed", zap.String("store", string(s)), zap.Error(err))
			return nil, err
		}

		r.mu.Lock()
		r.handles[s] = db
		r.mu.Unlock()

		r.logger.Info("store ready", zap.String("store", string(s)))
		return db, nil
	})
	if err != nil {
		return nil, Unreachable(s, err)
	}
	return v.(*mongo.Database), nil
}

// Warm connects every configured store. Startup treats an error here as fatal.
func (r *Registry) Warm(ctx context.Context) error {
	for _, s := range All {
		if _, ok := r.endpoints[s]; !ok {
			continue
		}
		if _, err := r.Handle(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) Close(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for s, db := range r.handles {
		if client := db.Client(); client != nil {
			if err := client.Disconnect(ctx); err != nil {
				r.logger.Error("store disconnect failed", zap.String("store", string(s)), zap.Error(err))
				continue
			}
		}
		r.logger.Info("store closed", zap.String("store", string(s)))
	}
	r.handles = make(map[Store]*mongo.Database)
}

// MongoConnector dials with retries and selects the endpoint's database.
func MongoConnector(maxRetries int, logger *zap.Logger) Connector {
	return func(ctx context.Context, s Store, ep Endpoint) (*mongo.Database, error) {
		client, err := connection.ConnectMongoWithRetry(ctx, ep.URI, maxRetries, logger.With(zap.String("store", string(s))))
		if err != nil {
			return nil, err
		}
		return client.Database(ep.Database), nil
	}
}

// EndpointsFromConfig resolves the three endpoints. The domain stores use
// their dedicated URI when configured and otherwise the primary URI with the
// database segment replaced.
func EndpointsFromConfig(cfg config.Config) (map[Store]Endpoint, error) {
	primaryURI, err := connection.DeriveURI(cfg.PrimaryMongoURI, cfg.PrimaryDB)
	if err != nil {
		return nil, err
	}

	domainURI := func(dedicated, database string) (string, error) {
		if dedicated != "" {
			return dedicated, nil
		}
		return connection.DeriveURI(cfg.PrimaryMongoURI, database)
	}

	employeeURI, err := domainURI(cfg.EmployeeMongoURI, cfg.EmployeeDB)
	if err != nil {
		return nil, err
	}
	customerURI, err := domainURI(cfg.CustomerMongoURI, cfg.CustomerDB)
	if err != nil {
		return nil, err
	}

	return map[Store]Endpoint{
		Primary:        {URI: primaryURI, Database: cfg.PrimaryDB},
		EmployeeDomain: {URI: employeeURI, Database: cfg.EmployeeDB},
		CustomerDomain: {URI: customerURI, Database: cfg.CustomerDB},
	}, nil
}
