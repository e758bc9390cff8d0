package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice represents a registered device that can receive push notifications.
type UserDevice struct {
	// ID is the unique identifier of the device registration.
	ID uuid.UUID `json:"id"`
	// UserID is the owning user.
	UserID uuid.UUID `json:"user_id"`
	// FCMToken is the Firebase Cloud Messaging registration token.
	FCMToken string `json:"fcm_token"`
	// Platform is the client platform, e.g. "web", "ios", "android".
	Platform string `json:"platform"`
	// IsActive marks whether the device should still receive pushes.
	IsActive bool `json:"is_active"`
	// CreatedAt is when the device was registered.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is when the registration was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}
