package repository

import (
	"context"
	"errors"

	"campustrace/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for claim persistence.
var (
	// ErrClaimNotFound is returned when a claim is not found.
	ErrClaimNotFound = errors.New("claim not found")
)

// ClaimRepository defines the interface for claim-related database operations.
type ClaimRepository interface {
	// CreateClaim persists a new ownership claim.
	CreateClaim(ctx context.Context, claim *entity.Claim) error

	// FindClaimByID retrieves a claim by its unique ID.
	FindClaimByID(ctx context.Context, id uuid.UUID) (*entity.Claim, error)

	// FindClaimByItemAndClaimant retrieves the claim a user filed on an item, if any.
	FindClaimByItemAndClaimant(ctx context.Context, itemID, claimantID uuid.UUID) (*entity.Claim, error)

	// ListClaimsByItem retrieves all claims filed against an item.
	ListClaimsByItem(ctx context.Context, itemID uuid.UUID) ([]*entity.Claim, error)

	// ListClaimsByClaimant retrieves claims filed by a user, newest first.
	ListClaimsByClaimant(ctx context.Context, claimantID uuid.UUID, limit, offset int) ([]*entity.Claim, error)

	// UpdateClaimStatus updates the state of a claim.
	UpdateClaimStatus(ctx context.Context, id uuid.UUID, status entity.ClaimStatus) error
}
