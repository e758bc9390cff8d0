package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"campustrace/config"
	"campustrace/internal/domain/entity"
	domainerrors "campustrace/internal/domain/errors"
	"campustrace/internal/domain/repository"
	"campustrace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// eventBufferSize bounds the auth event channel. Events beyond the buffer
// are dropped with a warning rather than blocking the emitting operation.
const eventBufferSize = 16

// sessionClient is the concrete AuthClient backed by the refresh token store.
// Auth state changes from its own operations are emitted on the event channel
// so the session bootstrapper can observe them.
type sessionClient struct {
	txManager    repository.TransactionManager
	tokenService service.TokenService
	logger       *slog.Logger
	maxSessions  int
	events       chan entity.AuthEvent
}

// NewSessionClient is the constructor for sessionClient.
func NewSessionClient(
	cfg *config.Config,
	txManager repository.TransactionManager,
	tokenService service.TokenService,
	logger *slog.Logger,
) service.AuthClient {
	maxSessions := 0
	if cfg.Auth != nil {
		maxSessions = cfg.Auth.MaxActiveSessions
	}
	return &sessionClient{
		txManager:    txManager,
		tokenService: tokenService,
		logger:       logger,
		maxSessions:  maxSessions,
		events:       make(chan entity.AuthEvent, eventBufferSize),
	}
}

// Events returns the channel auth state changes are delivered on.
func (c *sessionClient) Events() <-chan entity.AuthEvent {
	return c.events
}

// GetSession resolves the session belonging to the supplied refresh token.
// Returns nil without error when the token does not map to a live session.
func (c *sessionClient) GetSession(ctx context.Context, refreshToken string) (*entity.Session, error) {
	if refreshToken == "" {
		return nil, nil
	}

	var session *entity.Session

	err := c.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()
		authRepo := repoFactory.NewAuthRepository()

		stored, err := refreshRepo.FindRefreshTokenByHash(ctx, HashToken(refreshToken))
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find refresh token")
		}
		if !stored.Active(time.Now()) {
			return nil
		}

		auth, err := authRepo.FindAuthenticationByUserID(ctx, stored.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find authentication")
		}

		role, err := c.resolveRole(ctx, repoFactory, stored.UserID)
		if err != nil {
			return err
		}

		// Mint a fresh access token without rotating the refresh token.
		accessToken, _, err := c.tokenService.GenerateTokens(stored.UserID, auth.Email, role)
		if err != nil {
			return errors.Wrap(err, "failed to generate access token")
		}

		session = &entity.Session{
			UserID:       stored.UserID,
			Email:        auth.Email,
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			ExpiresAt:    time.Now().Add(c.tokenService.GetAccessTokenDuration()),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

// ExchangeCodeForSession trades a one-time sign-in code for a session.
func (c *sessionClient) ExchangeCodeForSession(ctx context.Context, code string) (*entity.Session, error) {
	var session *entity.Session

	err := c.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.NewAuthRepository()
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		link, err := authRepo.FindMagicLinkByCodeHash(ctx, HashToken(code))
		if err != nil {
			if errors.Is(err, repository.ErrMagicLinkNotFound) {
				return domainerrors.ErrMagicLinkInvalid.WrapMessage("unknown sign-in code")
			}

			return errors.Wrap(err, "failed to find magic link")
		}
		if link.ConsumedAt != nil {
			return domainerrors.ErrMagicLinkConsumed.WrapMessage("sign-in code reused")
		}
		if !link.Usable(time.Now()) {
			return domainerrors.ErrMagicLinkInvalid.WrapMessage("sign-in code expired")
		}

		if err := authRepo.ConsumeMagicLink(ctx, link.ID); err != nil {
			return errors.Wrap(err, "failed to consume magic link")
		}

		auth, err := authRepo.FindAuthenticationByEmail(ctx, link.Email)
		if err != nil {
			if errors.Is(err, repository.ErrAuthNotFound) {
				return domainerrors.ErrAuthNotFound.WrapMessage("no account for sign-in code")
			}

			return errors.Wrap(err, "failed to find authentication")
		}

		if c.maxSessions > 0 {
			count, err := refreshRepo.CountActiveSessionsByUserID(ctx, auth.UserID)
			if err != nil {
				return errors.Wrap(err, "failed to count active sessions")
			}
			if count >= c.maxSessions {
				return domainerrors.ErrSessionLimitExceeded.WrapMessage("too many active sessions")
			}
		}

		role, err := c.resolveRole(ctx, repoFactory, auth.UserID)
		if err != nil {
			return err
		}

		session, err = c.issueSession(ctx, refreshRepo, auth.UserID, auth.Email, role)

		return err
	})
	if err != nil {
		return nil, err
	}

	c.emit(entity.AuthEvent{Kind: entity.AuthEventSignedIn, Session: session})

	return session, nil
}

// RefreshSession exchanges a refresh token for a new token pair, rotating
// the refresh token.
func (c *sessionClient) RefreshSession(ctx context.Context, refreshToken string) (*entity.Session, error) {
	var session *entity.Session

	err := c.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()
		authRepo := repoFactory.NewAuthRepository()

		stored, err := refreshRepo.FindRefreshTokenByHash(ctx, HashToken(refreshToken))
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrRefreshTokenInvalid.WrapMessage("unknown refresh token")
			}

			return errors.Wrap(err, "failed to find refresh token")
		}
		if !stored.Active(time.Now()) {
			return domainerrors.ErrRefreshTokenExpired.WrapMessage("refresh token no longer active")
		}

		auth, err := authRepo.FindAuthenticationByUserID(ctx, stored.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find authentication")
		}

		role, err := c.resolveRole(ctx, repoFactory, stored.UserID)
		if err != nil {
			return err
		}

		// Rotate: the presented token is revoked before its replacement is issued.
		if err := refreshRepo.RevokeRefreshToken(ctx, stored.ID); err != nil {
			return errors.Wrap(err, "failed to revoke refresh token")
		}

		session, err = c.issueSession(ctx, refreshRepo, stored.UserID, auth.Email, role)

		return err
	})
	if err != nil {
		return nil, err
	}

	c.emit(entity.AuthEvent{Kind: entity.AuthEventTokenRefreshed, Session: session})

	return session, nil
}

// SignOut revokes the session behind the refresh token.
func (c *sessionClient) SignOut(ctx context.Context, refreshToken string) error {
	err := c.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		stored, err := refreshRepo.FindRefreshTokenByHash(ctx, HashToken(refreshToken))
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				// Signing out an already-dead session is not an error.
				return nil
			}

			return errors.Wrap(err, "failed to find refresh token")
		}

		return refreshRepo.RevokeRefreshToken(ctx, stored.ID)
	})
	if err != nil {
		return err
	}

	c.emit(entity.AuthEvent{Kind: entity.AuthEventSignedOut})

	return nil
}

// resolveRole looks up the role stamped into access tokens. A user without a
// profile gets a role-less token; the role gate denies those.
func (c *sessionClient) resolveRole(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID) (string, error) {
	profile, err := repoFactory.NewProfileRepository().FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return "", nil
		}

		return "", errors.Wrap(err, "failed to find profile")
	}

	return profile.Role.Normalize().String(), nil
}

// issueSession generates a token pair, persists the refresh half, and builds
// the session entity.
func (c *sessionClient) issueSession(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID, email, role string) (*entity.Session, error) {
	accessToken, refreshToken, err := c.tokenService.GenerateTokens(userID, email, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	record := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: HashToken(refreshToken),
		ExpiresAt: time.Now().Add(c.tokenService.GetRefreshTokenDuration()),
	}
	if err := refreshRepo.CreateRefreshToken(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &entity.Session{
		UserID:       userID,
		Email:        email,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(c.tokenService.GetAccessTokenDuration()),
	}, nil
}

// emit delivers an event without blocking the emitting operation.
func (c *sessionClient) emit(event entity.AuthEvent) {
	select {
	case c.events <- event:
	default:
		c.logger.Warn("auth event dropped, channel full", slog.String("kind", string(event.Kind)))
	}
}

// HashToken returns the hex-encoded SHA-256 digest of a token. Only digests
// are persisted, never the tokens themselves.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
