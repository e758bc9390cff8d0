// Package usecase defines the application's use case interfaces and DTOs.
package usecase

import (
	"context"

	"campustrace/internal/domain/entity"
)

// BootstrapInput carries the startup credentials the bootstrapper works from.
// Both fields are optional: an empty input resolves to an anonymous state.
type BootstrapInput struct {
	// RefreshToken is a previously stored refresh token, if any.
	RefreshToken string
	// AuthCode is a one-time sign-in code from a magic link, if present.
	AuthCode string
}

// BootstrapUsecase drives session establishment at application startup and
// maintains a point-in-time snapshot of the auth state afterwards.
//
// The startup sequence is strictly ordered: a pending one-time code is
// exchanged first, then the stored session is checked, then the profile is
// loaded. The snapshot leaves its loading state exactly once, no matter
// which path startup takes or how it fails.
type BootstrapUsecase interface {
	// Bootstrap runs the startup sequence and blocks until the snapshot has
	// settled. Failures surface as an anonymous snapshot, never an error,
	// so callers cannot be left waiting on a broken startup.
	Bootstrap(ctx context.Context, input BootstrapInput) entity.BootstrapSnapshot

	// Snapshot returns the current point-in-time auth state.
	Snapshot() entity.BootstrapSnapshot

	// Refresh silently renews the session. Concurrent calls collapse into a
	// single renewal; every caller observes the same outcome.
	Refresh(ctx context.Context) (entity.BootstrapSnapshot, error)

	// SignOut ends the current session and settles on an anonymous snapshot.
	SignOut(ctx context.Context) error

	// Close stops consuming auth events and releases the bootstrapper.
	Close()
}
