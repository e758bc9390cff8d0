package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"campustrace/config"
	deliverycontext "campustrace/internal/delivery/context"
	"campustrace/internal/domain/entity"
	domainerrors "campustrace/internal/domain/errors"
	"campustrace/internal/domain/repository"
	"campustrace/internal/domain/service"
	"campustrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultMagicLinkTTL = 15 * time.Minute

// authService implements the AuthUsecase interface.
type authService struct {
	txManager      repository.TransactionManager
	universityRepo repository.UniversityRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	captchaService service.CaptchaService
	mailSender     service.MailSender
	logger         *slog.Logger
	publicBaseURL  string
	magicLinkTTL   time.Duration
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	universityRepo repository.UniversityRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	captchaService service.CaptchaService,
	mailSender service.MailSender,
	logger *slog.Logger,
) usecase.AuthUsecase {
	magicLinkTTL := defaultMagicLinkTTL
	if cfg.Auth != nil && cfg.Auth.MagicLinkTTL > 0 {
		magicLinkTTL = cfg.Auth.MagicLinkTTL
	}

	return &authService{
		txManager:      txManager,
		universityRepo: universityRepo,
		hasher:         hasher,
		tokenService:   tokenService,
		captchaService: captchaService,
		mailSender:     mailSender,
		logger:         logger,
		publicBaseURL:  strings.TrimSuffix(cfg.HTTP.PublicBaseURL, "/"),
		magicLinkTTL:   magicLinkTTL,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new account with a password credential.
func (srv *authService) SignUp(ctx context.Context, input usecase.SignUpInput) (*entity.Session, error) {
	if err := srv.captchaService.Verify(ctx, input.CaptchaToken, input.RemoteIP); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)

	university, err := srv.resolveUniversity(ctx, email)
	if err != nil {
		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("bcrypt hashing failed")
	}

	var session *entity.Session

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()
		authRepo := repoFactory.NewAuthRepository()

		userID := uuid.New()
		profile := &entity.Profile{
			UserID:       userID,
			Email:        email,
			FullName:     input.FullName,
			Role:         entity.RoleMember,
			UniversityID: &university.ID,
		}
		if err := profileRepo.CreateProfile(ctx, profile); err != nil {
			return err
		}

		auth := &entity.Authentication{
			UserID:       profile.UserID,
			Email:        email,
			PasswordHash: passwordHash,
		}
		if err := authRepo.CreateAuthentication(ctx, auth); err != nil {
			return err
		}

		session, err = srv.issueSession(ctx, repoFactory, profile.UserID, email, profile.Role)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Sign-up failed", slog.Any("error", err), slog.String("email", email))

		return nil, err
	}
	srv.log(ctx).Info("User signed up",
		slog.Any("user_id", session.UserID),
		slog.Any("university_id", university.ID),
	)

	return session, nil
}

// SignInWithPassword establishes a session from email and password.
func (srv *authService) SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error) {
	email = normalizeEmail(email)

	var session *entity.Session

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.NewAuthRepository()
		profileRepo := repoFactory.NewProfileRepository()

		auth, err := authRepo.FindAuthenticationByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrAuthNotFound) {
				return domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
			}

			return errors.Wrap(err, "failed to find authentication")
		}
		if auth.PasswordHash == "" || !srv.hasher.Check(password, auth.PasswordHash) {
			return domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
		}

		// A missing profile still signs in (tokens then carry no role); any
		// other lookup failure fails closed so bans cannot be slipped past.
		role := entity.Role("")
		profile, err := profileRepo.FindProfileByUserID(ctx, auth.UserID)
		switch {
		case err == nil:
			if profile.IsBanned {
				return domainerrors.ErrUserBanned.WrapMessage("banned account sign-in rejected")
			}
			role = profile.Role
		case errors.Is(err, repository.ErrProfileNotFound):
		default:
			return errors.Wrap(err, "failed to find profile")
		}

		session, err = srv.issueSession(ctx, repoFactory, auth.UserID, email, role)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Sign-in failed", slog.Any("error", err), slog.String("email", email))

		return nil, err
	}

	return session, nil
}

// RequestMagicLink emails a one-time sign-in link. Unknown emails with a
// recognized university domain get an account created on the fly, so the
// CAPTCHA check runs before anything else touches the database or SMTP.
func (srv *authService) RequestMagicLink(ctx context.Context, input usecase.MagicLinkInput) error {
	if err := srv.captchaService.Verify(ctx, input.CaptchaToken, input.RemoteIP); err != nil {
		return err
	}

	email := normalizeEmail(input.Email)

	university, err := srv.resolveUniversity(ctx, email)
	if err != nil {
		return err
	}

	code, err := generateCode()
	if err != nil {
		return errors.Wrap(err, "failed to generate sign-in code")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.NewAuthRepository()
		profileRepo := repoFactory.NewProfileRepository()

		// First-time requesters get an account created up front so the
		// later code exchange only has to look it up.
		if _, err := authRepo.FindAuthenticationByEmail(ctx, email); err != nil {
			if !errors.Is(err, repository.ErrAuthNotFound) {
				return errors.Wrap(err, "failed to find authentication")
			}

			userID := uuid.New()
			profile := &entity.Profile{
				UserID:       userID,
				Email:        email,
				FullName:     localPart(email),
				Role:         entity.RoleMember,
				UniversityID: &university.ID,
			}
			if err := profileRepo.CreateProfile(ctx, profile); err != nil {
				return err
			}
			if err := authRepo.CreateAuthentication(ctx, &entity.Authentication{
				UserID: profile.UserID,
				Email:  email,
			}); err != nil {
				return err
			}
		}

		return authRepo.CreateMagicLink(ctx, &entity.MagicLink{
			Email:     email,
			CodeHash:  hashToken(code),
			ExpiresAt: time.Now().Add(srv.magicLinkTTL),
		})
	})
	if err != nil {
		srv.log(ctx).Error("Magic link request failed", slog.Any("error", err), slog.String("email", email))

		return err
	}

	link := fmt.Sprintf("%s/auth/callback?code=%s", srv.publicBaseURL, code)
	if err := srv.mailSender.SendMagicLink(ctx, email, link); err != nil {
		srv.log(ctx).Error("Magic link mail failed", slog.Any("error", err), slog.String("email", email))

		return errors.Wrap(err, "failed to send magic link mail")
	}

	return nil
}

// SignOutAll revokes every active session of a user.
func (srv *authService) SignOutAll(ctx context.Context, userID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewRefreshTokenRepository().RevokeRefreshTokensByUserID(ctx, userID)
	})
}

// issueSession generates a token pair and persists the refresh half. The
// role ends up in the access token claims, where the API middleware reads it.
func (srv *authService) issueSession(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, email string, role entity.Role) (*entity.Session, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(userID, email, role.Normalize().String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	record := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := repoFactory.NewRefreshTokenRepository().CreateRefreshToken(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &entity.Session{
		UserID:       userID,
		Email:        email,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(srv.tokenService.GetAccessTokenDuration()),
	}, nil
}

// resolveUniversity maps an email's domain to its university.
func (srv *authService) resolveUniversity(ctx context.Context, email string) (*entity.University, error) {
	domain := emailDomain(email)
	if domain == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("malformed email")
	}

	university, err := srv.universityRepo.FindUniversityByEmailDomain(ctx, domain)
	if err != nil {
		if errors.Is(err, repository.ErrUniversityNotFound) {
			return nil, domainerrors.ErrEmailDomainNotAllowed.WrapMessage("no university for domain " + domain)
		}

		return nil, errors.Wrap(err, "failed to resolve university")
	}

	return university, nil
}

// hashToken returns the hex-encoded SHA-256 digest of a token. Only digests
// are persisted, never the tokens themselves.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// generateCode returns a 256-bit random hex code.
func generateCode() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func emailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}

	return email[at+1:]
}

func localPart(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return email
	}

	return email[:at]
}
