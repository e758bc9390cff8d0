package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClaimStatus is the lifecycle state of an ownership claim.
type ClaimStatus string

const (
	// ClaimStatusPending means the claim awaits the poster's decision.
	ClaimStatusPending ClaimStatus = "pending"
	// ClaimStatusApproved means the poster accepted the claim.
	ClaimStatusApproved ClaimStatus = "approved"
	// ClaimStatusRejected means the poster declined the claim.
	ClaimStatusRejected ClaimStatus = "rejected"
)

// IsValid checks if the ClaimStatus is a valid value.
func (s ClaimStatus) IsValid() bool {
	switch s {
	case ClaimStatusPending, ClaimStatusApproved, ClaimStatusRejected:
		return true
	default:
		return false
	}
}

// Claim represents a user's assertion of ownership over a found item.
type Claim struct {
	// ID is the unique identifier of the claim.
	ID uuid.UUID `json:"id"`
	// ItemID is the item being claimed.
	ItemID uuid.UUID `json:"item_id"`
	// ClaimantID is the user asserting ownership.
	ClaimantID uuid.UUID `json:"claimant_id"`
	// Status is the claim state.
	Status ClaimStatus `json:"status"`
	// Evidence is the claimant's description of identifying details.
	Evidence string `json:"evidence"`
	// CreatedAt is when the claim was filed.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is when the claim was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}
