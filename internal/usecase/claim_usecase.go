package usecase

import (
	"context"

	"campustrace/internal/domain/entity"

	"github.com/google/uuid"
)

// ClaimUsecase defines the interface for ownership claim use cases.
type ClaimUsecase interface {
	// FileClaim files a claim on an approved found item. A user cannot claim
	// their own post or claim the same item twice.
	FileClaim(ctx context.Context, claimantID, itemID uuid.UUID, evidence string) (*entity.Claim, error)

	// ListClaimsForItem retrieves the claims on an item. Only the poster may
	// see them.
	ListClaimsForItem(ctx context.Context, posterID, itemID uuid.UUID) ([]*entity.Claim, error)

	// ListMyClaims retrieves claims the requester has filed.
	ListMyClaims(ctx context.Context, claimantID uuid.UUID, limit, offset int) ([]*entity.Claim, error)

	// DecideClaim approves or rejects a pending claim. Only the item's poster
	// may decide, and a decided claim is final. Approving a claim marks the
	// item recovered.
	DecideClaim(ctx context.Context, posterID, claimID uuid.UUID, approve bool) (*entity.Claim, error)
}
