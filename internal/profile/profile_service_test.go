package profile_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go-stationops/internal/account"
	"go-stationops/internal/auth"
	"go-stationops/internal/profile"
	profileerrors "go-stationops/internal/profile/errors"
	profileMock "go-stationops/internal/profile/mock"
	"go-stationops/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// fakeRepo keeps profiles in memory and enforces the natural-key
// uniqueness the real collections get from their unique indexes.
type fakeRepo struct {
	mu        sync.Mutex
	employees map[primitive.ObjectID]profile.EmployeeProfile
	customers map[primitive.ObjectID]profile.CustomerProfile
	inserts   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		employees: map[primitive.ObjectID]profile.EmployeeProfile{},
		customers: map[primitive.ObjectID]profile.CustomerProfile{},
	}
}

func (f *fakeRepo) FindEmployeeProfile(_ context.Context, id primitive.ObjectID) (*profile.EmployeeProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.employees[id]
	if !ok {
		return nil, profileerrors.ErrProfileNotFound
	}
	return &p, nil
}

func (f *fakeRepo) InsertEmployeeProfile(_ context.Context, p *profile.EmployeeProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.employees[p.MainEmployeeID]; ok {
		return profileerrors.ErrDuplicateProfile
	}
	p.ID = primitive.NewObjectID()
	f.employees[p.MainEmployeeID] = *p
	f.inserts++
	return nil
}

func (f *fakeRepo) SyncEmployeeCore(_ context.Context, id primitive.ObjectID, core profile.EmployeeCore, at time.Time) (*profile.EmployeeProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.employees[id]
	if !ok {
		return nil, profileerrors.ErrProfileNotFound
	}
	p.EmployeeCore = core
	p.LastSyncedAt = at
	p.UpdatedAt = at
	f.employees[id] = p
	return &p, nil
}

func (f *fakeRepo) UpdateEmployeeFields(_ context.Context, id primitive.ObjectID, u profile.FieldsUpdate, at time.Time) (*profile.EmployeeProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.employees[id]
	if !ok {
		return nil, profileerrors.ErrProfileNotFound
	}
	if u.Bio != nil {
		p.Bio = *u.Bio
	}
	if u.Skills != nil {
		p.Skills = *u.Skills
	}
	if u.Preferences != nil {
		p.Preferences = u.Preferences
	}
	p.UpdatedAt = at
	f.employees[id] = p
	return &p, nil
}

func (f *fakeRepo) FindCustomerProfile(_ context.Context, id primitive.ObjectID) (*profile.CustomerProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.customers[id]
	if !ok {
		return nil, profileerrors.ErrProfileNotFound
	}
	return &p, nil
}

func (f *fakeRepo) InsertCustomerProfile(_ context.Context, p *profile.CustomerProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.customers[p.CustomerID]; ok {
		return profileerrors.ErrDuplicateProfile
	}
	p.ID = primitive.NewObjectID()
	f.customers[p.CustomerID] = *p
	f.inserts++
	return nil
}

func (f *fakeRepo) SyncCustomerCore(_ context.Context, id primitive.ObjectID, core profile.CustomerCore, at time.Time) (*profile.CustomerProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.customers[id]
	if !ok {
		return nil, profileerrors.ErrProfileNotFound
	}
	p.CustomerCore = core
	p.LastSyncedAt = at
	p.UpdatedAt = at
	f.customers[id] = p
	return &p, nil
}

func (f *fakeRepo) UpdateCustomerFields(_ context.Context, id primitive.ObjectID, u profile.FieldsUpdate, at time.Time) (*profile.CustomerProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.customers[id]
	if !ok {
		return nil, profileerrors.ErrProfileNotFound
	}
	if u.Bio != nil {
		p.Bio = *u.Bio
	}
	if u.Preferences != nil {
		p.Preferences = u.Preferences
	}
	p.UpdatedAt = at
	f.customers[id] = p
	return &p, nil
}

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Minute)
	return c.t
}

func newEmployee() *account.EmployeeAccount {
	return &account.EmployeeAccount{
		ID:         primitive.NewObjectID(),
		Email:      "rina@station.test",
		FirstName:  "Rina",
		LastName:   "Putri",
		Phone:      "0811",
		Department: "Forecourt",
		Position:   "Attendant",
	}
}

func setupService() (profile.Service, *fakeRepo) {
	repo := newFakeRepo()
	c := &clock{t: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}
	return profile.NewServiceWithClock(repo, c.now, zap.NewNop()), repo
}

func TestEnsureEmployeeProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("first access creates with defaults", func(t *testing.T) {
		svc, repo := setupService()
		emp := newEmployee()

		p, err := svc.EnsureEmployeeProfile(ctx, emp)
		require.NoError(t, err)

		assert.Equal(t, emp.ID, p.MainEmployeeID)
		assert.Equal(t, profile.EmployeeCoreOf(emp), p.EmployeeCore)
		assert.Empty(t, p.Bio)
		assert.NotNil(t, p.Skills)
		assert.NotNil(t, p.Preferences)
		assert.False(t, p.LastSyncedAt.IsZero())
		assert.Equal(t, 1, repo.inserts)
	})

	t.Run("repeated sync is idempotent", func(t *testing.T) {
		svc, repo := setupService()
		emp := newEmployee()

		first, err := svc.EnsureEmployeeProfile(ctx, emp)
		require.NoError(t, err)
		second, err := svc.EnsureEmployeeProfile(ctx, emp)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.EmployeeCore, second.EmployeeCore)
		assert.True(t, second.LastSyncedAt.After(first.LastSyncedAt))
		assert.Len(t, repo.employees, 1)
		assert.Equal(t, 1, repo.inserts)
	})

	t.Run("core change propagates and profile fields survive", func(t *testing.T) {
		svc, repo := setupService()
		emp := newEmployee()

		_, err := svc.EnsureEmployeeProfile(ctx, emp)
		require.NoError(t, err)

		bio := "Night shift lead"
		_, err = repo.UpdateEmployeeFields(ctx, emp.ID, profile.FieldsUpdate{Bio: &bio}, time.Now())
		require.NoError(t, err)

		emp.Phone = "0899"
		p, err := svc.EnsureEmployeeProfile(ctx, emp)
		require.NoError(t, err)

		assert.Equal(t, "0899", p.Phone)
		assert.Equal(t, bio, p.Bio)
	})

	t.Run("concurrent first access yields one profile", func(t *testing.T) {
		svc, repo := setupService()
		emp := newEmployee()

		const n = 16
		ids := make([]primitive.ObjectID, n)
		errs := make([]error, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				p, err := svc.EnsureEmployeeProfile(ctx, emp)
				errs[i] = err
				if p != nil {
					ids[i] = p.ID
				}
			}(i)
		}
		wg.Wait()

		for i := 0; i < n; i++ {
			require.NoError(t, errs[i])
			assert.Equal(t, ids[0], ids[i])
		}
		assert.Len(t, repo.employees, 1)
		assert.Equal(t, 1, repo.inserts)
	})
}

func TestEnsureEmployeeProfile_RepositoryPaths(t *testing.T) {
	ctx := context.Background()

	t.Run("lost insert race re-reads the winner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := profileMock.NewMockRepository(ctrl)
		svc := profile.NewService(repo, zap.NewNop())
		emp := newEmployee()
		winner := &profile.EmployeeProfile{ID: primitive.NewObjectID(), MainEmployeeID: emp.ID}

		gomock.InOrder(
			repo.EXPECT().FindEmployeeProfile(gomock.Any(), emp.ID).Return(nil, profileerrors.ErrProfileNotFound),
			repo.EXPECT().InsertEmployeeProfile(gomock.Any(), gomock.Any()).Return(profileerrors.ErrDuplicateProfile),
			repo.EXPECT().FindEmployeeProfile(gomock.Any(), emp.ID).Return(winner, nil),
		)

		p, err := svc.EnsureEmployeeProfile(ctx, emp)
		require.NoError(t, err)
		assert.Same(t, winner, p)
	})

	t.Run("unreachable domain store surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := profileMock.NewMockRepository(ctrl)
		svc := profile.NewService(repo, zap.NewNop())
		emp := newEmployee()
		down := store.Unreachable(store.EmployeeDomain, errors.New("no reachable servers"))

		repo.EXPECT().FindEmployeeProfile(gomock.Any(), emp.ID).Return(nil, down)

		_, err := svc.EnsureEmployeeProfile(ctx, emp)
		assert.True(t, store.IsUnreachable(err))
	})

	t.Run("existing profile is only core-synced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := profileMock.NewMockRepository(ctrl)
		svc := profile.NewService(repo, zap.NewNop())
		emp := newEmployee()
		synced := &profile.EmployeeProfile{MainEmployeeID: emp.ID}

		repo.EXPECT().FindEmployeeProfile(gomock.Any(), emp.ID).Return(&profile.EmployeeProfile{}, nil)
		repo.EXPECT().SyncEmployeeCore(gomock.Any(), emp.ID, profile.EmployeeCoreOf(emp), gomock.Any()).Return(synced, nil)

		p, err := svc.EnsureEmployeeProfile(ctx, emp)
		require.NoError(t, err)
		assert.Same(t, synced, p)
	})
}

func TestEnsureCustomerProfile(t *testing.T) {
	ctx := context.Background()
	svc, repo := setupService()
	cust := &account.CustomerAccount{ID: primitive.NewObjectID(), Email: "budi@mail.test", FirstName: "Budi", Phone: "0812"}

	first, err := svc.EnsureCustomerProfile(ctx, cust)
	require.NoError(t, err)
	assert.Equal(t, cust.ID, first.CustomerID)

	cust.FirstName = "Budiman"
	second, err := svc.EnsureCustomerProfile(ctx, cust)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Budiman", second.FirstName)
	assert.Len(t, repo.customers, 1)
}

func TestUpdateProfileFields(t *testing.T) {
	ctx := context.Background()

	t.Run("employee sets bio and skills", func(t *testing.T) {
		svc, _ := setupService()
		emp := newEmployee()
		principal := &auth.Principal{ID: emp.ID.Hex(), Role: auth.RoleEmployee, Record: emp}
		bio := "Cashier"
		skills := []string{"lpg", "first-aid"}

		resp, err := svc.UpdateProfileFields(ctx, principal, profile.UpdateProfileRequest{Bio: &bio, Skills: &skills})
		require.NoError(t, err)

		p, ok := resp.Profile.(profile.EmployeeProfileResponse)
		require.True(t, ok)
		assert.Equal(t, bio, p.Bio)
		assert.Equal(t, skills, p.Skills)
		assert.Equal(t, emp.Email, p.Email)
	})

	t.Run("customer cannot set skills", func(t *testing.T) {
		svc, _ := setupService()
		cust := &account.CustomerAccount{ID: primitive.NewObjectID()}
		principal := &auth.Principal{ID: cust.ID.Hex(), Role: auth.RoleCustomer, Record: cust}
		skills := []string{"x"}

		_, err := svc.UpdateProfileFields(ctx, principal, profile.UpdateProfileRequest{Skills: &skills})
		assert.ErrorIs(t, err, profileerrors.ErrSkillsNotSupported)
	})

	t.Run("admin has no profile", func(t *testing.T) {
		svc, _ := setupService()
		principal := &auth.Principal{Role: auth.RoleAdmin, Record: &account.AdminAccount{}}

		_, err := svc.UpdateProfileFields(ctx, principal, profile.UpdateProfileRequest{})
		assert.ErrorIs(t, err, profileerrors.ErrNoProfileForRole)

		_, err = svc.GetMyProfile(ctx, principal)
		assert.ErrorIs(t, err, profileerrors.ErrNoProfileForRole)
	})
}
