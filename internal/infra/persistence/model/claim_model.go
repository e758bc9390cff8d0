package model

import (
	"time"

	"github.com/google/uuid"
)

// ClaimModel mirrors the 'claims' table. A user files at most one claim per item.
type ClaimModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ItemID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_claims_item_claimant"`
	ClaimantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_claims_item_claimant"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pending'"`
	Evidence   string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClaimModel) TableName() string {
	return "claims"
}
