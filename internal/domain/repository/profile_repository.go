// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"campustrace/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
)

// ProfileRepository defines the interface for profile-related database operations.
type ProfileRepository interface {
	// CreateProfile persists a new profile.
	CreateProfile(ctx context.Context, profile *entity.Profile) error

	// FindProfileByUserID retrieves a profile by its owning user ID.
	FindProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// FindProfileByEmail retrieves a profile by email address.
	FindProfileByEmail(ctx context.Context, email string) (*entity.Profile, error)

	// UpdateProfile persists changes to an existing profile.
	UpdateProfile(ctx context.Context, profile *entity.Profile) error

	// SetBanned updates the banned flag of a profile.
	SetBanned(ctx context.Context, userID uuid.UUID, banned bool) error

	// SetRole updates the role of a profile.
	SetRole(ctx context.Context, userID uuid.UUID, role entity.Role) error

	// FindAdminsByUniversity retrieves the minimal contact projection of every
	// admin profile within a university. Used for notification fan-out.
	FindAdminsByUniversity(ctx context.Context, universityID uuid.UUID) ([]*entity.AdminContact, error)

	// ListProfilesByUniversity retrieves profiles within a university with pagination.
	ListProfilesByUniversity(ctx context.Context, universityID uuid.UUID, limit, offset int) ([]*entity.Profile, error)
}
