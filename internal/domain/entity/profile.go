package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents a user's public identity within a university tenant.
type Profile struct {
	// UserID is the unique identifier of the owning user.
	UserID uuid.UUID `json:"user_id"`
	// Email is the user's email address.
	Email string `json:"email"`
	// FullName is the display name shown alongside posts and claims.
	FullName string `json:"full_name"`
	// AvatarURL points to the user's avatar image, empty when unset.
	AvatarURL string `json:"avatar_url,omitempty"`
	// Role is the authorization level within the university.
	Role Role `json:"role"`
	// IsBanned marks the profile as suspended from the platform.
	IsBanned bool `json:"is_banned"`
	// UniversityID is the tenant the profile belongs to, nil until assigned.
	UniversityID *uuid.UUID `json:"university_id,omitempty"`
	// CreatedAt is when the profile was created.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is when the profile was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}

// HasUniversity reports whether the profile has been assigned to a tenant.
func (p *Profile) HasUniversity() bool {
	return p.UniversityID != nil && *p.UniversityID != uuid.Nil
}

// AdminContact is the minimal projection of an admin profile used when
// fanning out notifications, avoiding a full profile load per recipient.
type AdminContact struct {
	UserID       uuid.UUID
	UniversityID uuid.UUID
}
