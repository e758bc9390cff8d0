// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the authorization level a profile can have within its university.
type Role string

const (
	// RoleMember indicates a regular member.
	RoleMember Role = "member"
	// RoleModerator indicates a moderator who can review posts.
	RoleModerator Role = "moderator"
	// RoleAdmin indicates a university administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r.Normalize() {
	case RoleMember, RoleModerator, RoleAdmin:
		return true
	default:
		return false
	}
}

// Normalize trims surrounding whitespace and lowercases the role.
// Stored roles have been observed with stray padding and mixed case,
// so all comparisons go through this.
func (r Role) Normalize() Role {
	return Role(strings.ToLower(strings.TrimSpace(string(r))))
}

// Matches reports whether the role equals required, ignoring case and
// surrounding whitespace on both sides.
func (r Role) Matches(required Role) bool {
	return r.Normalize() == required.Normalize()
}
