// Package entity defines the JSON request and response structures of the
// SGC API.
package entity

import (
	"github.com/edugestion/sgc-api/database/model"
	"github.com/edugestion/sgc-api/web/token"
)

// ErrorMsg is the uniform error envelope returned by every failing request.
type ErrorMsg struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Path    string `json:"path,omitempty"`
}

// Msg is a bare success acknowledgement with a human-readable message.
type Msg struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LoginResponse carries the issued session token together with the
// sanitized account view.
type LoginResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Token     string            `json:"token"`
	Account   model.AccountView `json:"account"`
	ExpiresIn int64             `json:"expiresIn"` // seconds
}

// SessionResponse echoes the verified session claims.
type SessionResponse struct {
	Success  bool          `json:"success"`
	Message  string        `json:"message"`
	Identity *token.Claims `json:"identity"`
}

// PermissionsResponse lists the permission tags of the caller's role.
type PermissionsResponse struct {
	Success     bool       `json:"success"`
	Permissions []string   `json:"permissions"`
	Role        model.Role `json:"role"`
}

// ProfileResponse carries the caller's current account record.
type ProfileResponse struct {
	Success bool              `json:"success"`
	Account model.AccountView `json:"account"`
}

// UsersResponse lists every account, administrators only.
type UsersResponse struct {
	Success bool                `json:"success"`
	Users   []model.AccountView `json:"users"`
	Total   int                 `json:"total"`
}

// LogsResponse carries recent server log entries, administrators only.
type LogsResponse struct {
	Success bool     `json:"success"`
	Logs    []string `json:"logs"`
	Total   int      `json:"total"`
}
