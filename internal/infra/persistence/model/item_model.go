package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemModel mirrors the 'items' table.
type ItemModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UniversityID uuid.UUID `gorm:"type:uuid;not null;index"`
	PosterID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind         string    `gorm:"type:varchar(10);not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	Category     string    `gorm:"type:varchar(50);index"`
	LocationName string    `gorm:"type:text"`
	Latitude     *float64  `gorm:"type:decimal(10,8)"`
	Longitude    *float64  `gorm:"type:decimal(11,8)"`
	// ImageURLs is stored as a JSON array in a jsonb column.
	ImageURLs  []byte    `gorm:"type:jsonb"`
	OccurredAt time.Time `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}
