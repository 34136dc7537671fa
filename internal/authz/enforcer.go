package authz

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/casbin/casbin/v2/util"
	sqlxadapter "github.com/memwey/casbin-sqlx-adapter"
	"github.com/sirupsen/logrus"
)

// rbacModel is the Casbin RBAC model used for role checks. Policies live in the
// casbin_rule table so role grants survive restarts.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch2(r.obj, p.obj) && r.act == p.act
`

// RoleAdmin may manage the platform registry.
const RoleAdmin = "admin"

// Enforcer manages the Casbin authorization enforcer.
type Enforcer struct {
	enforcer *casbin.Enforcer
	logger   *logrus.Logger
	mu       sync.RWMutex
}

// NewEnforcer creates a new authorization enforcer backed by the given Postgres URL.
func NewEnforcer(dbURL string, logger *logrus.Logger) (*Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to load Casbin model: %w", err)
	}

	adapter := sqlxadapter.NewAdapter("postgres", dbURL)

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create Casbin enforcer: %w", err)
	}

	// Persist policy changes as they are made
	enforcer.EnableAutoSave(true)
	enforcer.AddFunction("keyMatch2", util.KeyMatch2Func)

	logger.Info("Authorization enforcer initialized successfully")

	return &Enforcer{
		enforcer: enforcer,
		logger:   logger,
	}, nil
}

// Enforce checks if the subject has permission to perform the action on the object.
func (e *Enforcer) Enforce(subject, object, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(subject, object, action)
	if err != nil {
		e.logger.WithFields(logrus.Fields{
			"subject": subject,
			"object":  object,
			"action":  action,
			"error":   err.Error(),
		}).Error("Authorization enforcement failed")
		return false, fmt.Errorf("authorization enforcement failed: %w", err)
	}
	return allowed, nil
}

// AddRoleForUser grants a role to a user.
func (e *Enforcer) AddRoleForUser(userID, role string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := e.enforcer.AddRoleForUser(subjectForUser(userID), role)
	if err != nil {
		return fmt.Errorf("failed to add role for user: %w", err)
	}
	return nil
}

// HasRole reports whether the user holds the given role.
func (e *Enforcer) HasRole(userID, role string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	roles, err := e.enforcer.GetRolesForUser(subjectForUser(userID))
	if err != nil {
		return false, fmt.Errorf("failed to get roles for user: %w", err)
	}
	for _, r := range roles {
		if r == role {
			return true, nil
		}
	}
	return false, nil
}

// SeedDefaultPolicies installs the baseline role permissions. Idempotent.
func (e *Enforcer) SeedDefaultPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	policies := [][]string{
		{RoleAdmin, "/api/v1/platforms", "write"},
		{RoleAdmin, "/api/v1/platforms/*", "write"},
	}
	for _, p := range policies {
		if _, err := e.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to add policy %v: %w", p, err)
		}
	}
	return nil
}

func subjectForUser(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}
