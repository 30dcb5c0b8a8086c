package infra

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// A request (sub, obj) asks whether role sub may pass the gate for role obj.
// Grouping lets a role inherit the gates of another.
const gateModel = `
[request_definition]
r = sub, obj

[policy_definition]
p = sub, obj

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj
`

// NewEnforcer builds an in-memory enforcer with every role allowed through
// its own gate and the inheritance pairs in grants, e.g. {"admin", "employee"}.
func NewEnforcer(roles []string, grants [][2]string) (*casbin.SyncedEnforcer, error) {
	m, err := model.NewModelFromString(gateModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, role := range roles {
		if _, err := e.AddPolicy(role, role); err != nil {
			return nil, err
		}
	}
	for _, g := range grants {
		if _, err := e.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, err
		}
	}
	return e, nil
}
