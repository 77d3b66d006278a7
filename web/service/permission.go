package service

import (
	_ "embed"

	"github.com/pelletier/go-toml/v2"

	"github.com/edugestion/sgc-api/database/model"
	"github.com/edugestion/sgc-api/logger"
)

//go:embed permissions.toml
var permissionsTOML []byte

// permissionTable mirrors the embedded permissions.toml layout.
type permissionTable struct {
	Roles map[model.Role][]string `toml:"roles"`
}

// PermissionService maps each role to its ordered set of permission tags.
type PermissionService struct {
	roles map[model.Role][]string
}

// NewPermissionService loads the static role permission table.
func NewPermissionService() *PermissionService {
	var table permissionTable
	if err := toml.Unmarshal(permissionsTOML, &table); err != nil {
		logger.Error("failed to parse permission table:", err)
		table.Roles = map[model.Role][]string{}
	}
	return &PermissionService{roles: table.Roles}
}

// PermissionsFor returns the permission tags of a role. An unknown role
// yields an empty set, not an error.
func (s *PermissionService) PermissionsFor(role model.Role) []string {
	if permissions, ok := s.roles[role]; ok {
		return permissions
	}
	return []string{}
}
