package usecase

import (
	"context"

	"campustrace/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateUniversityInput carries the mutable university settings. EmailDomain
// is only applied when non-empty, since changing it affects who can sign up.
type UpdateUniversityInput struct {
	Name             string
	EmailDomain      string
	AutoApprovePosts bool
	NoticeBanner     string
}

// AdminUsecase defines the interface for moderation and tenant administration.
type AdminUsecase interface {
	// ReviewItem approves or rejects a pending item post and notifies the poster.
	ReviewItem(ctx context.Context, reviewerID, itemID uuid.UUID, approve bool) (*entity.Item, error)

	// ListPendingItems retrieves the review queue of a university.
	ListPendingItems(ctx context.Context, universityID uuid.UUID, limit, offset int) ([]*entity.Item, error)

	// SetUserBanned bans or unbans a member of the admin's university.
	SetUserBanned(ctx context.Context, adminID, userID uuid.UUID, banned bool) error

	// SetUserRole changes a member's role within the admin's university.
	SetUserRole(ctx context.Context, adminID, userID uuid.UUID, role entity.Role) error

	// ListMembers retrieves the profiles of a university.
	ListMembers(ctx context.Context, universityID uuid.UUID, limit, offset int) ([]*entity.Profile, error)

	// UpdateUniversity changes the settings of the admin's university.
	UpdateUniversity(ctx context.Context, adminID uuid.UUID, input UpdateUniversityInput) (*entity.University, error)
}
