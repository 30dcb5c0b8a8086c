package auth

import (
	"context"
	"strings"

	"go-stationops/internal/account"
	"go-stationops/internal/store"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
	RoleCustomer Role = "customer"
)

// Principal is who a request acts as. Role comes from the collection that
// matched during resolution, never from a stored field or a token claim.
type Principal struct {
	ID     string
	Role   Role
	Origin store.Store
	// Record is the matched *account.AdminAccount, *account.EmployeeAccount
	// or *account.CustomerAccount.
	Record any
}

func (p *Principal) Admin() (*account.AdminAccount, bool) {
	a, ok := p.Record.(*account.AdminAccount)
	return a, ok
}

func (p *Principal) Employee() (*account.EmployeeAccount, bool) {
	e, ok := p.Record.(*account.EmployeeAccount)
	return e, ok
}

func (p *Principal) Customer() (*account.CustomerAccount, bool) {
	c, ok := p.Record.(*account.CustomerAccount)
	return c, ok
}

func (p *Principal) Email() string {
	switch r := p.Record.(type) {
	case *account.AdminAccount:
		return r.Email
	case *account.EmployeeAccount:
		return r.Email
	case *account.CustomerAccount:
		return r.Email
	}
	return ""
}

func (p *Principal) DisplayName() string {
	var first, last string
	switch r := p.Record.(type) {
	case *account.AdminAccount:
		first, last = r.FirstName, r.LastName
	case *account.EmployeeAccount:
		first, last = r.FirstName, r.LastName
	case *account.CustomerAccount:
		first, last = r.FirstName, r.LastName
	}
	return strings.TrimSpace(first + " " + last)
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFrom(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}
