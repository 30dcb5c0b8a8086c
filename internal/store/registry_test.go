package store_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"go-stationops/internal/shared/apperror"
	"go-stationops/internal/shared/config"
	"go-stationops/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func testEndpoints() map[store.Store]store.Endpoint {
	return map[store.Store]store.Endpoint{
		store.Primary:        {URI: "mongodb://localhost:27017/main", Database: "main"},
		store.EmployeeDomain: {URI: "mongodb://localhost:27017/emp", Database: "emp"},
		store.CustomerDomain: {URI: "mongodb://localhost:27017/cust", Database: "cust"},
	}
}

func TestRegistry_HandleIsMemoizedPerStore(t *testing.T) {
	calls := map[store.Store]*int32{
		store.Primary:        new(int32),
		store.EmployeeDomain: new(int32),
		store.CustomerDomain: new(int32),
	}
	connect := func(ctx context.Context, s store.Store, ep store.Endpoint) (*mongo.Database, error) {
		atomic.AddInt32(calls[s], 1)
		return new(mongo.Database), nil
	}
	reg := store.NewRegistry(testEndpoints(), connect, zap.NewNop())
	ctx := context.Background()

	first, err := reg.Handle(ctx, store.Primary)
	require.NoError(t, err)
	second, err := reg.Handle(ctx, store.Primary)
	require.NoError(t, err)
	other, err := reg.Handle(ctx, store.CustomerDomain)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls[store.Primary]))
	assert.Equal(t, int32(1), atomic.LoadInt32(calls[store.CustomerDomain]))
	assert.Equal(t, int32(0), atomic.LoadInt32(calls[store.EmployeeDomain]))
}

func TestRegistry_ConcurrentFirstCallsConnectOnce(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	connect := func(ctx context.Context, s store.Store, ep store.Endpoint) (*mongo.Database, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return new(mongo.Database), nil
	}
	reg := store.NewRegistry(testEndpoints(), connect, zap.NewNop())

	var wg sync.WaitGroup
	handles := make([]*mongo.Database, 8)
	for i := range handles {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			db, err := reg.Handle(context.Background(), store.EmployeeDomain)
			assert.NoError(t, err)
			handles[i] = db
		}(i)
	}
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	db, err := reg.Handle(context.Background(), store.EmployeeDomain)
	require.NoError(t, err)
	for _, h := range handles {
		assert.Same(t, db, h)
	}
}

func TestRegistry_FailureIsUnreachableAndNotCached(t *testing.T) {
	var calls int32
	connect := func(ctx context.Context, s store.Store, ep store.Endpoint) (*mongo.Database, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return nil, errors.New("connection refused")
		}
		return new(mongo.Database), nil
	}
	reg := store.NewRegistry(testEndpoints(), connect, zap.NewNop())

	_, err := reg.Handle(context.Background(), store.CustomerDomain)
	require.Error(t, err)
	assert.True(t, store.IsUnreachable(err))
	assert.ErrorContains(t, err, "connection refused")
	assert.Equal(t, apperror.CodeStoreUnreachable, apperror.ToHTTP(err).Code)

	db, err := reg.Handle(context.Background(), store.CustomerDomain)
	require.NoError(t, err)
	assert.NotNil(t, db)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestRegistry_UnconfiguredStore(t *testing.T) {
	reg := store.NewRegistry(map[store.Store]store.Endpoint{}, nil, zap.NewNop())
	_, err := reg.Handle(context.Background(), store.Primary)
	assert.True(t, store.IsUnreachable(err))
}

func TestRegistry_WarmStopsAtFirstFailure(t *testing.T) {
	connect := func(ctx context.Context, s store.Store, ep store.Endpoint) (*mongo.Database, error) {
		if s == store.EmployeeDomain {
			return nil, errors.New("boom")
		}
		return new(mongo.Database), nil
	}
	reg := store.NewRegistry(testEndpoints(), connect, zap.NewNop())

	err := reg.Warm(context.Background())
	assert.True(t, store.IsUnreachable(err))
	reg.Close(context.Background())
}

func TestEndpointsFromConfig(t *testing.T) {
	cfg := config.Config{
		PrimaryMongoURI:  "mongodb://user:pw@db1:27017,db2:27017/legacy?authSource=admin",
		CustomerMongoURI: "mongodb+srv://cust.example.net/customers",
		PrimaryDB:        "stationops",
		EmployeeDB:       "stationops_employees",
		CustomerDB:       "customers",
	}

	eps, err := store.EndpointsFromConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "mongodb://user:pw@db1:27017,db2:27017/stationops?authSource=admin", eps[store.Primary].URI)
	assert.Equal(t, "mongodb://user:pw@db1:27017,db2:27017/stationops_employees?authSource=admin", eps[store.EmployeeDomain].URI)
	assert.Equal(t, "mongodb+srv://cust.example.net/customers", eps[store.CustomerDomain].URI)
	assert.Equal(t, "stationops_employees", eps[store.EmployeeDomain].Database)
}
