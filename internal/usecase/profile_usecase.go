package usecase

import (
	"context"

	"campustrace/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput carries the mutable profile fields.
type UpdateProfileInput struct {
	FullName  string
	AvatarURL string
}

// ProfileUsecase defines the interface for profile use cases.
type ProfileUsecase interface {
	// GetProfile retrieves a profile by user ID.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// UpdateProfile updates the requester's own profile.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.Profile, error)

	// GetUniversity retrieves the university a profile belongs to.
	GetUniversity(ctx context.Context, universityID uuid.UUID) (*entity.University, error)
}
