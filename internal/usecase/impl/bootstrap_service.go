// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"campustrace/config"
	deliverycontext "campustrace/internal/delivery/context"
	"campustrace/internal/domain/entity"
	"campustrace/internal/domain/repository"
	"campustrace/internal/domain/service"
	"campustrace/internal/usecase"

	"github.com/pkg/errors"
)

const defaultBootstrapTimeout = 2 * time.Second

// bootstrapService implements the BootstrapUsecase interface. It owns the
// auth snapshot: the startup sequence, the auth event consumer, and silent
// refresh all funnel their updates through it under one lock.
type bootstrapService struct {
	authClient service.AuthClient
	txManager  repository.TransactionManager
	logger     *slog.Logger
	timeout    time.Duration

	mu       sync.RWMutex
	snapshot entity.BootstrapSnapshot
	// settled flips the moment the snapshot first leaves its loading state
	// and never flips back.
	settled bool

	// refreshMu serializes silent refresh. Concurrent callers wait on the
	// in-flight attempt and share its outcome instead of stacking renewals.
	refreshMu   sync.Mutex
	refreshDone chan struct{}
	refreshSnap entity.BootstrapSnapshot
	refreshErr  error

	closeOnce sync.Once
	done      chan struct{}
}

// NewBootstrapService is the constructor for bootstrapService.
func NewBootstrapService(
	cfg *config.Config,
	authClient service.AuthClient,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.BootstrapUsecase {
	timeout := defaultBootstrapTimeout
	if cfg.Auth != nil && cfg.Auth.BootstrapTimeout > 0 {
		timeout = cfg.Auth.BootstrapTimeout
	}

	srv := &bootstrapService{
		authClient: authClient,
		txManager:  txManager,
		logger:     logger,
		timeout:    timeout,
		snapshot:   entity.BootstrapSnapshot{Phase: entity.PhaseInitializing},
		done:       make(chan struct{}),
	}

	go srv.consumeAuthEvents()

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *bootstrapService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Bootstrap runs the startup sequence and blocks until the sequence it
// launched finishes. Each call waits on its own completion signal, so a
// re-entrant bootstrap observes its own outcome rather than a snapshot an
// earlier call settled. A failsafe timer guarantees the call returns even
// if a startup step hangs.
func (srv *bootstrapService) Bootstrap(ctx context.Context, input usecase.BootstrapInput) entity.BootstrapSnapshot {
	timer := time.NewTimer(srv.timeout)
	defer timer.Stop()

	finished := make(chan struct{})

	go func() {
		srv.runStartupSequence(ctx, input)
		close(finished)
	}()

	select {
	case <-finished:
	case <-timer.C:
		srv.forceSettle()
		srv.logger.Warn("Bootstrap failsafe fired",
			slog.Duration("timeout", srv.timeout),
		)
	case <-ctx.Done():
		srv.forceSettle()
	}

	return srv.Snapshot()
}

// runStartupSequence performs the ordered startup checks: one-time code
// exchange first, then the stored session, then the profile load.
func (srv *bootstrapService) runStartupSequence(ctx context.Context, input usecase.BootstrapInput) {
	var session *entity.Session

	if input.AuthCode != "" {
		exchanged, err := srv.authClient.ExchangeCodeForSession(ctx, input.AuthCode)
		if err != nil {
			// A dead link is not fatal: fall through to the stored session.
			srv.log(ctx).Warn("Sign-in code exchange failed", slog.Any("error", err))
		} else {
			session = exchanged
		}
	}

	if session == nil && input.RefreshToken != "" {
		restored, err := srv.authClient.GetSession(ctx, input.RefreshToken)
		if err != nil {
			srv.log(ctx).Warn("Stored session check failed", slog.Any("error", err))
		} else {
			session = restored
		}
	}

	if session == nil {
		srv.settle(entity.BootstrapSnapshot{Phase: entity.PhaseReadyAnonymous})

		return
	}

	profile := srv.loadProfile(ctx, session)

	srv.settle(entity.BootstrapSnapshot{
		Phase:   entity.PhaseReadyAuthenticated,
		Session: session,
		Profile: profile,
	})
}

// loadProfile fetches the session owner's profile. A missing or unreadable
// profile resolves to nil; role-gated routes then treat the user as
// unauthorized rather than the whole session failing.
func (srv *bootstrapService) loadProfile(ctx context.Context, session *entity.Session) *entity.Profile {
	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewProfileRepository().FindProfileByUserID(ctx, session.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to load profile")
		}
		profile = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Profile load failed during bootstrap",
			slog.Any("error", err),
			slog.Any("user_id", session.UserID),
		)

		return nil
	}
	if profile == nil {
		srv.log(ctx).Warn("Session has no profile", slog.Any("user_id", session.UserID))
	}

	return profile
}

// settle publishes a snapshot and marks the loading phase finished. Later
// calls keep updating the snapshot but the loading state never comes back.
func (srv *bootstrapService) settle(snapshot entity.BootstrapSnapshot) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.snapshot = snapshot
	srv.settled = true
}

// forceSettle ends the loading phase without new information. It only
// downgrades an unsettled snapshot to anonymous; once anything has settled,
// an interrupted bootstrap keeps the last known state.
func (srv *bootstrapService) forceSettle() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.settled {
		return
	}

	srv.snapshot = entity.BootstrapSnapshot{Phase: entity.PhaseReadyAnonymous}
	srv.settled = true
}

// Snapshot returns the current point-in-time auth state.
func (srv *bootstrapService) Snapshot() entity.BootstrapSnapshot {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.snapshot
}

// Refresh silently renews the session. Concurrent calls collapse into the
// in-flight renewal and all observe the same outcome.
func (srv *bootstrapService) Refresh(ctx context.Context) (entity.BootstrapSnapshot, error) {
	srv.refreshMu.Lock()
	if srv.refreshDone != nil {
		// A renewal is already in flight: wait for its result.
		done := srv.refreshDone
		srv.refreshMu.Unlock()
		<-done

		srv.refreshMu.Lock()
		snapshot, err := srv.refreshSnap, srv.refreshErr
		srv.refreshMu.Unlock()

		return snapshot, err
	}

	done := make(chan struct{})
	srv.refreshDone = done
	srv.refreshMu.Unlock()

	snapshot, err := srv.doRefresh(ctx)

	srv.refreshMu.Lock()
	srv.refreshSnap, srv.refreshErr = snapshot, err
	srv.refreshDone = nil
	close(done)
	srv.refreshMu.Unlock()

	return snapshot, err
}

// doRefresh performs a single renewal attempt. A failed renewal resolves to
// an anonymous snapshot: a session that cannot be refreshed is over.
func (srv *bootstrapService) doRefresh(ctx context.Context) (entity.BootstrapSnapshot, error) {
	current := srv.Snapshot()
	if !current.Authenticated() {
		return current, nil
	}

	session, err := srv.authClient.RefreshSession(ctx, current.Session.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Silent refresh failed, dropping session", slog.Any("error", err))
		anonymous := entity.BootstrapSnapshot{Phase: entity.PhaseReadyAnonymous}
		srv.settle(anonymous)

		return anonymous, err
	}

	srv.settle(entity.BootstrapSnapshot{
		Phase:   entity.PhaseReadyAuthenticated,
		Session: session,
		Profile: current.Profile,
	})

	return srv.Snapshot(), nil
}

// SignOut ends the current session and settles on an anonymous snapshot.
func (srv *bootstrapService) SignOut(ctx context.Context) error {
	current := srv.Snapshot()
	if current.Authenticated() {
		if err := srv.authClient.SignOut(ctx, current.Session.RefreshToken); err != nil {
			return errors.Wrap(err, "failed to sign out")
		}
	}

	srv.settle(entity.BootstrapSnapshot{Phase: entity.PhaseReadyAnonymous})

	return nil
}

// Close stops consuming auth events and releases the bootstrapper.
func (srv *bootstrapService) Close() {
	srv.closeOnce.Do(func() {
		close(srv.done)
	})
}

// consumeAuthEvents applies auth state changes in arrival order. A single
// consumer goroutine keeps updates strictly ordered: the last event always
// decides the final snapshot.
func (srv *bootstrapService) consumeAuthEvents() {
	events := srv.authClient.Events()

	for {
		select {
		case <-srv.done:
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			srv.applyAuthEvent(event)
		}
	}
}

// applyAuthEvent folds one auth event into the snapshot.
func (srv *bootstrapService) applyAuthEvent(event entity.AuthEvent) {
	switch event.Kind {
	case entity.AuthEventSignedOut:
		srv.settle(entity.BootstrapSnapshot{Phase: entity.PhaseReadyAnonymous})

	case entity.AuthEventSignedIn:
		if event.Session == nil {
			return
		}
		profile := srv.loadProfile(context.Background(), event.Session)
		srv.settle(entity.BootstrapSnapshot{
			Phase:   entity.PhaseReadyAuthenticated,
			Session: event.Session,
			Profile: profile,
		})

	case entity.AuthEventTokenRefreshed:
		if event.Session == nil {
			return
		}
		current := srv.Snapshot()
		srv.settle(entity.BootstrapSnapshot{
			Phase:   entity.PhaseReadyAuthenticated,
			Session: event.Session,
			Profile: current.Profile,
		})
	}
}
