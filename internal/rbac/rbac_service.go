package rbac

import (
	"strings"
	"sync"

	"github.com/casbin/casbin/v2"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleCashier = "cashier"
	RoleWaiter  = "waiter"
	RoleChef    = "chef"
)

type EnforceRequest struct {
	Role     string
	Resource string
	Action   string
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

func NewService(enforcer *casbin.Enforcer) (Service, error) {
	s := &service{enforcer: enforcer}
	if err := s.loadPolicy(); err != nil {
		return nil, err
	}
	return s, nil
}

// loadPolicy seeds the static role policy. Roles come from the employee
// record; there is no per-restaurant policy storage.
func (s *service) loadPolicy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	policies := [][]string{
		{RoleManager, "catalog", "write"},
		{RoleManager, "employee", "read"},
		{RoleManager, "employee", "write"},
		{RoleManager, "attendance", "manage"},
		{RoleManager, "payroll", "read"},
		{RoleManager, "payroll", "write"},
		{RoleManager, "payroll", "approve"},
		{RoleManager, "payroll", "pay"},
		{RoleManager, "order", "create"},
		{RoleManager, "order", "update"},
		{RoleManager, "order", "pay"},
		{RoleManager, "order", "cancel"},

		{RoleCashier, "order", "create"},
		{RoleCashier, "order", "update"},
		{RoleCashier, "order", "pay"},
		{RoleWaiter, "order", "create"},
		{RoleWaiter, "order", "update"},
		{RoleChef, "order", "update"},
	}

	for _, p := range policies {
		if _, err := s.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return err
		}
	}

	// Everyone can read the catalog and work their own attendance; admin
	// inherits everything manager can do.
	for _, role := range []string{RoleAdmin, RoleManager, RoleCashier, RoleWaiter, RoleChef} {
		for _, p := range [][]string{
			{role, "catalog", "read"},
			{role, "order", "read"},
			{role, "attendance", "read"},
			{role, "attendance", "create"},
		} {
			if _, err := s.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
				return err
			}
		}
	}
	if _, err := s.enforcer.AddGroupingPolicy(RoleAdmin, RoleManager); err != nil {
		return err
	}

	return nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(
		strings.ToLower(strings.TrimSpace(req.Role)),
		req.Resource,
		req.Action,
	)
}
