package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edugestion/sgc-api/database/model"
)

func TestPermissionsForProfesor(t *testing.T) {
	service := NewPermissionService()

	permissions := service.PermissionsFor(model.RoleProfesor)
	assert.Contains(t, permissions, "write_grades")
	assert.Contains(t, permissions, "use_calculator")
	assert.NotContains(t, permissions, "manage_users")
}

func TestPermissionsForAdministrador(t *testing.T) {
	service := NewPermissionService()

	permissions := service.PermissionsFor(model.RoleAdministrador)
	assert.Contains(t, permissions, "all")
	assert.Contains(t, permissions, "manage_users")
}

func TestPermissionsForUnknownRole(t *testing.T) {
	service := NewPermissionService()

	permissions := service.PermissionsFor(model.Role("becario"))
	assert.NotNil(t, permissions)
	assert.Empty(t, permissions)
}
