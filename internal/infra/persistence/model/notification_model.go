package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table.
type NotificationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipientID  uuid.UUID `gorm:"type:uuid;not null;index"`
	UniversityID uuid.UUID `gorm:"type:uuid;not null;index"`
	Message      string    `gorm:"type:text;not null"`
	LinkTo       string    `gorm:"type:text"`
	Status       string    `gorm:"type:varchar(10);not null;default:'unread';index"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
