package rbac

import (
	"go-stationops/internal/rbac/infra"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
	RoleCustomer = "customer"
)

type EnforceRequest struct {
	Role     string
	Required string
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.SyncedEnforcer
	logger   *zap.Logger
}

func NewService(enforcer *casbin.SyncedEnforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{enforcer: enforcer, logger: l}
}

// NewDefaultService wires the station roles: admin passes the employee gate,
// the admin and customer gates only admit themselves.
func NewDefaultService(logger ...*zap.Logger) (Service, error) {
	e, err := infra.NewEnforcer(
		[]string{RoleAdmin, RoleEmployee, RoleCustomer},
		[][2]string{{RoleAdmin, RoleEmployee}},
	)
	if err != nil {
		return nil, err
	}
	return NewService(e, logger...), nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	if req.Role == "" || req.Required == "" {
		return false, nil
	}

	allowed, err := s.enforcer.Enforce(req.Role, req.Required)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("required", req.Required),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("required", req.Required),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}
