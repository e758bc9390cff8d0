package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents an authenticated session backed by a token pair.
type Session struct {
	// UserID identifies the authenticated user.
	UserID uuid.UUID `json:"user_id"`
	// Email is the email the session was established with.
	Email string `json:"email"`
	// AccessToken is the short-lived bearer token.
	AccessToken string `json:"access_token"`
	// RefreshToken is the long-lived token used to mint new access tokens.
	RefreshToken string `json:"refresh_token"`
	// ExpiresAt is when the access token expires.
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the access token has passed its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// AuthEventKind identifies the kind of auth state transition an event carries.
type AuthEventKind string

const (
	// AuthEventSignedIn is emitted when a session is established.
	AuthEventSignedIn AuthEventKind = "signed_in"
	// AuthEventSignedOut is emitted when the session ends.
	AuthEventSignedOut AuthEventKind = "signed_out"
	// AuthEventTokenRefreshed is emitted when the access token is renewed.
	AuthEventTokenRefreshed AuthEventKind = "token_refreshed"
)

// AuthEvent describes a change in authentication state. Session is nil
// for AuthEventSignedOut.
type AuthEvent struct {
	Kind    AuthEventKind
	Session *Session
}
