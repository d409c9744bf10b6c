package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	enforcer, err := NewEnforcer()
	assert.NoError(t, err)
	svc, err := NewService(enforcer)
	assert.NoError(t, err)
	return svc
}

func TestPolicy_ManualAttendanceIsManagerOnly(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		role    string
		allowed bool
	}{
		{RoleManager, true},
		{RoleAdmin, true}, // inherited from manager
		{RoleCashier, false},
		{RoleWaiter, false},
		{RoleChef, false},
	}
	for _, tc := range cases {
		ok, err := svc.Enforce(EnforceRequest{Role: tc.role, Resource: "attendance", Action: "manage"})
		assert.NoError(t, err)
		assert.Equal(t, tc.allowed, ok, "role %s", tc.role)
	}
}

func TestPolicy_EveryRoleWorksOwnAttendance(t *testing.T) {
	svc := newTestService(t)

	for _, role := range []string{RoleAdmin, RoleManager, RoleCashier, RoleWaiter, RoleChef} {
		ok, err := svc.Enforce(EnforceRequest{Role: role, Resource: "attendance", Action: "create"})
		assert.NoError(t, err)
		assert.True(t, ok, "role %s", role)
	}
}

func TestPolicy_OrderActions(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		role    string
		action  string
		allowed bool
	}{
		{RoleCashier, "pay", true},
		{RoleWaiter, "pay", false},
		{RoleChef, "update", true},
		{RoleChef, "create", false},
		{RoleManager, "cancel", true},
		{RoleAdmin, "cancel", true},
		{RoleCashier, "cancel", false},
	}
	for _, tc := range cases {
		ok, err := svc.Enforce(EnforceRequest{Role: tc.role, Resource: "order", Action: tc.action})
		assert.NoError(t, err)
		assert.Equal(t, tc.allowed, ok, "%s %s", tc.role, tc.action)
	}
}

func TestEnforce_NormalizesRole(t *testing.T) {
	svc := newTestService(t)

	ok, err := svc.Enforce(EnforceRequest{Role: "  Manager ", Resource: "payroll", Action: "approve"})
	assert.NoError(t, err)
	assert.True(t, ok)
}
