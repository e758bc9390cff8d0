package entity

import (
	"time"

	"github.com/google/uuid"
)

// Authentication represents a user's password credential record.
type Authentication struct {
	// ID is the unique identifier of the credential.
	ID uuid.UUID `json:"id"`
	// UserID is the owning user.
	UserID uuid.UUID `json:"user_id"`
	// Email is the login identifier.
	Email string `json:"email"`
	// PasswordHash is the bcrypt hash of the password, empty for
	// magic-link-only accounts.
	PasswordHash string `json:"-"`
	// CreatedAt is when the credential was created.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is when the credential was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}

// RefreshToken represents a stored refresh token. Only the SHA-256 hash of
// the token is persisted.
type RefreshToken struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	TokenHash string     `json:"-"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Active reports whether the token can still be exchanged at now.
func (t *RefreshToken) Active(now time.Time) bool {
	return t.RevokedAt == nil && t.ExpiresAt.After(now)
}

// MagicLink represents a single-use login code sent by email. The code is
// stored hashed, same as refresh tokens.
type MagicLink struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	CodeHash   string     `json:"-"`
	ExpiresAt  time.Time  `json:"expires_at"`
	ConsumedAt *time.Time `json:"consumed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Usable reports whether the link can still be exchanged at now.
func (m *MagicLink) Usable(now time.Time) bool {
	return m.ConsumedAt == nil && m.ExpiresAt.After(now)
}
