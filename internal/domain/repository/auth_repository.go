package repository

import (
	"context"
	"errors"

	"campustrace/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for authentication persistence.
var (
	// ErrAuthNotFound is returned when no credential record exists.
	ErrAuthNotFound = errors.New("authentication not found")
	// ErrMagicLinkNotFound is returned when a magic link is not found.
	ErrMagicLinkNotFound = errors.New("magic link not found")
)

// AuthRepository defines the interface for credential-related database operations.
type AuthRepository interface {
	// CreateAuthentication persists a new credential record.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthenticationByEmail retrieves a credential record by email.
	FindAuthenticationByEmail(ctx context.Context, email string) (*entity.Authentication, error)

	// FindAuthenticationByUserID retrieves a credential record by user ID.
	FindAuthenticationByUserID(ctx context.Context, userID uuid.UUID) (*entity.Authentication, error)

	// UpdatePasswordHash replaces the stored password hash for a user.
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error

	// CreateMagicLink persists a new single-use sign-in link.
	CreateMagicLink(ctx context.Context, link *entity.MagicLink) error

	// FindMagicLinkByCodeHash retrieves a magic link by its code hash.
	FindMagicLinkByCodeHash(ctx context.Context, codeHash string) (*entity.MagicLink, error)

	// ConsumeMagicLink marks a magic link as used. Returns ErrMagicLinkNotFound
	// if the link does not exist or was already consumed.
	ConsumeMagicLink(ctx context.Context, id uuid.UUID) error

	// DeleteExpiredMagicLinks removes links past their expiry.
	DeleteExpiredMagicLinks(ctx context.Context) (int64, error)
}
