package auth

import (
	"context"
	"errors"
	"fmt"

	"go-stationops/internal/account"
	accounterrors "go-stationops/internal/account/errors"
	autherrors "go-stationops/internal/auth/errors"
	"go-stationops/internal/shared/contextutil"
	"go-stationops/internal/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Resolver finds the principal behind a credential by probing the stores in
// a fixed order: admins, employees, customers in the CustomerDomain store,
// then legacy customers in Primary. The first verified match wins.
type Resolver struct {
	accounts account.Repository
	logger   *zap.Logger
}

func NewResolver(accounts account.Repository, logger ...*zap.Logger) *Resolver {
	l := zap.L().Named("auth.resolver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.resolver")
	}
	return &Resolver{accounts: accounts, logger: l}
}

// match is one record found by a probe step.
type match struct {
	id     primitive.ObjectID
	secret string
	record any
}

type probe struct {
	role   Role
	origin store.Store
	// skipUnreachable lets resolution continue past this step when its store
	// cannot be reached.
	skipUnreachable bool
	lookup          func(ctx context.Context) (match, error)
}

func (r *Resolver) probes(
	admin func(context.Context) (*account.AdminAccount, error),
	employee func(context.Context) (*account.EmployeeAccount, error),
	customer func(context.Context, store.Store) (*account.CustomerAccount, error),
) []probe {
	return []probe{
		{
			role:   RoleAdmin,
			origin: store.Primary,
			lookup: func(ctx context.Context) (match, error) {
				a, err := admin(ctx)
				if err != nil {
					return match{}, err
				}
				return match{id: a.ID, secret: a.Password, record: a}, nil
			},
		},
		{
			role:   RoleEmployee,
			origin: store.Primary,
			lookup: func(ctx context.Context) (match, error) {
				e, err := employee(ctx)
				if err != nil {
					return match{}, err
				}
				return match{id: e.ID, secret: e.Password, record: e}, nil
			},
		},
		{
			role:            RoleCustomer,
			origin:          store.CustomerDomain,
			skipUnreachable: true,
			lookup: func(ctx context.Context) (match, error) {
				c, err := customer(ctx, store.CustomerDomain)
				if err != nil {
					return match{}, err
				}
				return match{id: c.ID, secret: c.Password, record: c}, nil
			},
		},
		{
			role:   RoleCustomer,
			origin: store.Primary,
			lookup: func(ctx context.Context) (match, error) {
				c, err := customer(ctx, store.Primary)
				if err != nil {
					return match{}, err
				}
				return match{id: c.ID, secret: c.Password, record: c}, nil
			},
		},
	}
}

// Resolve authenticates an email and secret. A miss in every store, or a
// secret that matches nowhere, is ErrInvalidCredentials. Store failures other
// than the CustomerDomain step are returned as they are.
func (r *Resolver) Resolve(ctx context.Context, email, secret string) (*Principal, error) {
	email = account.NormalizeEmail(email)
	probes := r.probes(
		func(ctx context.Context) (*account.AdminAccount, error) {
			return r.accounts.FindAdminByEmail(ctx, email)
		},
		func(ctx context.Context) (*account.EmployeeAccount, error) {
			return r.accounts.FindEmployeeByEmail(ctx, email)
		},
		func(ctx context.Context, s store.Store) (*account.CustomerAccount, error) {
			return r.accounts.FindCustomerByEmail(ctx, s, email)
		},
	)

	p, err := r.run(ctx, probes, func(m match) bool { return secretMatches(m.secret, secret) })
	if err != nil {
		return nil, err
	}
	if p == nil {
		r.log(ctx).Info("credential resolution failed")
		return nil, autherrors.ErrInvalidCredentials
	}
	return p, nil
}

// ResolveByID repeats the same ordered probe keyed by record id. It backs
// the session check, so a token for a deleted principal stops working.
func (r *Resolver) ResolveByID(ctx context.Context, id string) (*Principal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, autherrors.ErrPrincipalNotFound
	}

	probes := r.probes(
		func(ctx context.Context) (*account.AdminAccount, error) {
			return r.accounts.FindAdminByID(ctx, oid)
		},
		func(ctx context.Context) (*account.EmployeeAccount, error) {
			return r.accounts.FindEmployeeByID(ctx, oid)
		},
		func(ctx context.Context, s store.Store) (*account.CustomerAccount, error) {
			return r.accounts.FindCustomerByID(ctx, s, oid)
		},
	)

	p, err := r.run(ctx, probes, nil)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, autherrors.ErrPrincipalNotFound
	}
	return p, nil
}

// run walks the probes in order. verify is nil when any found record counts.
// A nil principal with a nil error means nothing matched.
func (r *Resolver) run(ctx context.Context, probes []probe, verify func(match) bool) (*Principal, error) {
	log := r.log(ctx)

	for _, p := range probes {
		m, err := p.lookup(ctx)
		switch {
		case err == nil:
			if verify != nil && !verify(m) {
				continue
			}
			log.Debug("principal resolved",
				zap.String("role", string(p.role)),
				zap.String("store", string(p.origin)),
			)
			return &Principal{
				ID:     m.id.Hex(),
				Role:   p.role,
				Origin: p.origin,
				Record: m.record,
			}, nil

		case errors.Is(err, accounterrors.ErrAccountNotFound):
			continue

		case p.skipUnreachable && store.IsUnreachable(err):
			log.Warn("store unreachable during resolution, falling through",
				zap.String("role", string(p.role)),
				zap.String("store", string(p.origin)),
				zap.Error(err),
			)
			continue

		default:
			log.Error("principal resolution failed",
				zap.String("role", string(p.role)),
				zap.String("store", string(p.origin)),
				zap.Error(err),
			)
			return nil, fmt.Errorf("resolve %s in %s: %w", p.role, p.origin, err)
		}
	}
	return nil, nil
}

func (r *Resolver) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, r.logger)
}
