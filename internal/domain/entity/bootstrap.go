package entity

// BootstrapPhase is the lifecycle phase of session bootstrapping. It forms
// a small tagged union with BootstrapSnapshot: PhaseInitializing carries no
// session data, PhaseReadyAuthenticated carries a session and usually a
// profile, PhaseReadyAnonymous carries neither.
type BootstrapPhase string

const (
	// PhaseInitializing means startup checks are still in flight.
	PhaseInitializing BootstrapPhase = "initializing"
	// PhaseReadyAuthenticated means a valid session was established.
	PhaseReadyAuthenticated BootstrapPhase = "ready_authenticated"
	// PhaseReadyAnonymous means bootstrapping finished without a session.
	PhaseReadyAnonymous BootstrapPhase = "ready_anonymous"
)

// BootstrapSnapshot is an immutable view of the bootstrap state at a point
// in time. Consumers must treat it as read-only.
type BootstrapSnapshot struct {
	Phase   BootstrapPhase
	Session *Session
	Profile *Profile
}

// IsLoading reports whether bootstrapping is still in progress. Once it
// returns false it never returns true again for later snapshots.
func (s BootstrapSnapshot) IsLoading() bool {
	return s.Phase == PhaseInitializing
}

// Authenticated reports whether the snapshot carries a usable session.
func (s BootstrapSnapshot) Authenticated() bool {
	return s.Phase == PhaseReadyAuthenticated && s.Session != nil
}
