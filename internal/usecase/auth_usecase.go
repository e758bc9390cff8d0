package usecase

import (
	"context"

	"campustrace/internal/domain/entity"

	"github.com/google/uuid"
)

// SignUpInput carries the data for password-based registration.
type SignUpInput struct {
	Email        string
	Password     string
	FullName     string
	CaptchaToken string
	RemoteIP     string
}

// MagicLinkInput carries the data for a magic-link sign-in request.
type MagicLinkInput struct {
	Email        string
	CaptchaToken string
	RemoteIP     string
}

// AuthUsecase defines the interface for authentication use cases.
type AuthUsecase interface {
	// SignUp registers a new account with a password credential. The email
	// domain decides which university the profile is assigned to.
	SignUp(ctx context.Context, input SignUpInput) (*entity.Session, error)

	// SignInWithPassword establishes a session from email and password.
	SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error)

	// RequestMagicLink emails a one-time sign-in link after a CAPTCHA check.
	// Unknown emails with a recognized university domain get an account
	// created on the fly.
	RequestMagicLink(ctx context.Context, input MagicLinkInput) error

	// SignOutAll revokes every active session of a user.
	SignOutAll(ctx context.Context, userID uuid.UUID) error
}
