package auth_test

import (
	"testing"

	"github.com/clc-tz/legalbridge-backend/auth"
	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	role, ok := auth.ParseRole("admin")
	assert.True(t, ok)
	assert.Equal(t, auth.RoleAdmin, role)

	_, ok = auth.ParseRole("superuser")
	assert.False(t, ok)
}

func TestRoleIsAtLeast(t *testing.T) {
	assert.True(t, auth.RoleIsAtLeast(auth.RoleAdmin, auth.RoleUser))
	assert.True(t, auth.RoleIsAtLeast(auth.RoleAdmin, auth.RoleAdmin))
	assert.True(t, auth.RoleIsAtLeast(auth.RoleUser, auth.RoleUser))
	assert.False(t, auth.RoleIsAtLeast(auth.RoleUser, auth.RoleAdmin))
	assert.False(t, auth.RoleIsAtLeast("unknown", auth.RoleUser))
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []auth.UserStatus{"active", "pending", "ongoing", "inactive", "deleted"} {
		assert.True(t, auth.IsValidStatus(status), status)
	}
	assert.False(t, auth.IsValidStatus("zombie"))
}

func TestRequireRole(t *testing.T) {
	admin := &auth.SessionClaims{UserRole: auth.RoleAdmin}
	member := &auth.SessionClaims{UserRole: auth.RoleUser}

	assert.NoError(t, auth.RequireRole(admin, auth.RoleAdmin))
	assert.NoError(t, auth.RequireRole(member, auth.RoleUser))
	assert.ErrorIs(t, auth.RequireRole(member, auth.RoleAdmin), auth.ErrForbidden)
	assert.ErrorIs(t, auth.RequireRole(nil, auth.RoleUser), auth.ErrForbidden)
}
