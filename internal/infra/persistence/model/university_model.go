package model

import (
	"time"

	"github.com/google/uuid"
)

// UniversityModel mirrors the 'universities' table.
type UniversityModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name             string    `gorm:"type:varchar(255);not null"`
	EmailDomain      string    `gorm:"type:varchar(255);unique;not null"`
	AutoApprovePosts bool      `gorm:"not null;default:false"`
	NoticeBanner     string    `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UniversityModel) TableName() string {
	return "universities"
}
