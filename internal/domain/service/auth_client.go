package service

import (
	"context"

	"campustrace/internal/domain/entity"
)

// AuthClient defines the interface the session bootstrapper drives during
// startup. It abstracts where sessions come from: token validation, one-time
// code exchange, and the stream of auth state changes.
type AuthClient interface {
	// GetSession resolves the session belonging to the supplied refresh token.
	// Returns nil without error when the token does not map to a live session.
	GetSession(ctx context.Context, refreshToken string) (*entity.Session, error)

	// ExchangeCodeForSession trades a one-time sign-in code for a session.
	ExchangeCodeForSession(ctx context.Context, code string) (*entity.Session, error)

	// RefreshSession exchanges a refresh token for a new token pair, rotating
	// the refresh token.
	RefreshSession(ctx context.Context, refreshToken string) (*entity.Session, error)

	// SignOut revokes the session behind the refresh token.
	SignOut(ctx context.Context, refreshToken string) error

	// Events returns the channel auth state changes are delivered on. The
	// channel is closed when the client shuts down.
	Events() <-chan entity.AuthEvent
}
