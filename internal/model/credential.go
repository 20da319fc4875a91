// Package model defines domain entities for the application.
package model

import "slices"

// Role is the privilege level bound to an API key.
type Role string

// Role constants for API key authorization.
const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ValidRoles contains all valid role values.
var ValidRoles = []Role{RoleAdmin, RoleUser}

// ParseRole converts a raw role string into a Role.
// An empty string defaults to RoleUser. The second return value is false
// for anything outside ValidRoles.
func ParseRole(s string) (Role, bool) {
	if s == "" {
		return RoleUser, true
	}
	r := Role(s)
	if !slices.Contains(ValidRoles, r) {
		return "", false
	}
	return r, true
}

// IsAdmin reports whether the role grants admin privileges.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// Credential is the record stored for each issued API key.
// It is immutable after creation.
type Credential struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

// AuthContext holds authenticated request context.
// This is injected into the request context by auth middleware.
type AuthContext struct {
	APIKey      string
	Fingerprint string
}
