package profile

import (
	"context"
	"errors"
	"time"

	"go-stationops/internal/account"
	"go-stationops/internal/auth"
	profileerrors "go-stationops/internal/profile/errors"
	"go-stationops/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=profile_service.go -destination=mock/profile_service_mock.go -package=mock
type Service interface {
	EnsureEmployeeProfile(ctx context.Context, e *account.EmployeeAccount) (*EmployeeProfile, error)
	EnsureCustomerProfile(ctx context.Context, c *account.CustomerAccount) (*CustomerProfile, error)
	GetMyProfile(ctx context.Context, p *auth.Principal) (ProfileResponse, error)
	UpdateProfileFields(ctx context.Context, p *auth.Principal, req UpdateProfileRequest) (ProfileResponse, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithClock(repo, time.Now, logger...)
}

func NewServiceWithClock(repo Repository, now func() time.Time, logger ...*zap.Logger) Service {
	l := zap.L().Named("profile.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profile.service")
	}
	return &service{repo: repo, now: now, logger: l}
}

// EnsureEmployeeProfile pulls the employee's core fields into its
// EmployeeDomain profile, creating the profile on first access.
func (s *service) EnsureEmployeeProfile(ctx context.Context, e *account.EmployeeAccount) (*EmployeeProfile, error) {
	now := s.now().UTC()
	return ensure(s.log(ctx).With(zap.String("main_employee_id", e.ID.Hex())),
		func() (*EmployeeProfile, error) { return s.repo.FindEmployeeProfile(ctx, e.ID) },
		func() (*EmployeeProfile, error) {
			p := NewEmployeeProfile(e, now)
			return p, s.repo.InsertEmployeeProfile(ctx, p)
		},
		func() (*EmployeeProfile, error) {
			return s.repo.SyncEmployeeCore(ctx, e.ID, EmployeeCoreOf(e), now)
		},
	)
}

func (s *service) EnsureCustomerProfile(ctx context.Context, c *account.CustomerAccount) (*CustomerProfile, error) {
	now := s.now().UTC()
	return ensure(s.log(ctx).With(zap.String("customer_id", c.ID.Hex())),
		func() (*CustomerProfile, error) { return s.repo.FindCustomerProfile(ctx, c.ID) },
		func() (*CustomerProfile, error) {
			p := NewCustomerProfile(c, now)
			return p, s.repo.InsertCustomerProfile(ctx, p)
		},
		func() (*CustomerProfile, error) {
			return s.repo.SyncCustomerCore(ctx, c.ID, CustomerCoreOf(c), now)
		},
	)
}

// ensure is create-if-absent, sync-if-present. A duplicate key on insert
// means a concurrent first access won; the winner's document is returned.
func ensure[T any](
	log *zap.Logger,
	find func() (*T, error),
	insert func() (*T, error),
	sync func() (*T, error),
) (*T, error) {
	_, err := find()
	switch {
	case err == nil:
		p, err := sync()
		if err != nil {
			log.Error("profile core sync failed", zap.Error(err))
			return nil, err
		}
		log.Debug("profile core synced")
		return p, nil
	case !errors.Is(err, profileerrors.ErrProfileNotFound):
		log.Error("profile lookup failed", zap.Error(err))
		return nil, err
	}

	p, err := insert()
	switch {
	case err == nil:
		log.Info("profile created")
		return p, nil
	case errors.Is(err, profileerrors.ErrDuplicateProfile):
		log.Info("profile created concurrently, re-reading")
		return find()
	default:
		log.Error("profile insert failed", zap.Error(err))
		return nil, err
	}
}

func (s *service) GetMyProfile(ctx context.Context, p *auth.Principal) (ProfileResponse, error) {
	if e, ok := p.Employee(); ok {
		prof, err := s.EnsureEmployeeProfile(ctx, e)
		if err != nil {
			return ProfileResponse{}, err
		}
		return ProfileResponse{Role: string(p.Role), Profile: mapEmployeeProfile(prof)}, nil
	}
	if c, ok := p.Customer(); ok {
		prof, err := s.EnsureCustomerProfile(ctx, c)
		if err != nil {
			return ProfileResponse{}, err
		}
		return ProfileResponse{Role: string(p.Role), Profile: mapCustomerProfile(prof)}, nil
	}
	return ProfileResponse{}, profileerrors.ErrNoProfileForRole
}

// UpdateProfileFields changes only profile-owned fields. The profile is
// synchronized first so an update never lands on a missing document.
func (s *service) UpdateProfileFields(ctx context.Context, p *auth.Principal, req UpdateProfileRequest) (ProfileResponse, error) {
	u := req.toUpdate()

	if e, ok := p.Employee(); ok {
		prof, err := s.EnsureEmployeeProfile(ctx, e)
		if err != nil {
			return ProfileResponse{}, err
		}
		if !u.IsEmpty() {
			if prof, err = s.repo.UpdateEmployeeFields(ctx, e.ID, u, s.now().UTC()); err != nil {
				s.log(ctx).Error("employee profile update failed", zap.Error(err))
				return ProfileResponse{}, err
			}
		}
		return ProfileResponse{Role: string(p.Role), Profile: mapEmployeeProfile(prof)}, nil
	}

	if c, ok := p.Customer(); ok {
		if u.Skills != nil {
			return ProfileResponse{}, profileerrors.ErrSkillsNotSupported
		}
		prof, err := s.EnsureCustomerProfile(ctx, c)
		if err != nil {
			return ProfileResponse{}, err
		}
		if !u.IsEmpty() {
			if prof, err = s.repo.UpdateCustomerFields(ctx, c.ID, u, s.now().UTC()); err != nil {
				s.log(ctx).Error("customer profile update failed", zap.Error(err))
				return ProfileResponse{}, err
			}
		}
		return ProfileResponse{Role: string(p.Role), Profile: mapCustomerProfile(prof)}, nil
	}

	return ProfileResponse{}, profileerrors.ErrNoProfileForRole
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}
