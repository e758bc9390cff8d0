// Package model contains the GORM-specific structs mirroring database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type ProfileModel struct {
	UserID       uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string     `gorm:"type:varchar(255);unique;not null"`
	FullName     string     `gorm:"type:varchar(100);not null"`
	AvatarURL    string     `gorm:"type:text"`
	Role         string     `gorm:"type:varchar(20);not null;default:'member'"`
	IsBanned     bool       `gorm:"not null;default:false"`
	UniversityID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	University *UniversityModel `gorm:"foreignKey:UniversityID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
