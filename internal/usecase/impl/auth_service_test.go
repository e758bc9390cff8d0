package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"campustrace/config"
	"campustrace/internal/domain/entity"
	domainerrors "campustrace/internal/domain/errors"
	"campustrace/internal/domain/repository"
	mockRepo "campustrace/internal/mocks/repository"
	mockSvc "campustrace/internal/mocks/service"
	"campustrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthService(t *testing.T) (
	usecase.AuthUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockRepositoryFactory,
	*mockRepo.MockProfileRepository,
	*mockRepo.MockAuthRepository,
	*mockRepo.MockRefreshTokenRepository,
	*mockRepo.MockUniversityRepository,
	*mockSvc.MockPasswordHasher,
	*mockSvc.MockTokenService,
	*mockSvc.MockCaptchaService,
	*mockSvc.MockMailSender,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	universityRepo := mockRepo.NewMockUniversityRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	captchaService := mockSvc.NewMockCaptchaService(t)
	mailSender := mockSvc.NewMockMailSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.HTTP.PublicBaseURL = "https://campustrace.example.edu/"

	service := NewAuthService(cfg, txManager, universityRepo, hasher, tokenService, captchaService, mailSender, logger)

	return service, txManager, repoFactory, profileRepo, authRepo, refreshTokenRepo,
		universityRepo, hasher, tokenService, captchaService, mailSender
}

func expectIssuedSession(
	repoFactory *mockRepo.MockRepositoryFactory,
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository,
	tokenService *mockSvc.MockTokenService,
	userID uuid.UUID,
	email string,
	role string,
) {
	tokenService.EXPECT().GenerateTokens(userID, email, role).Return("access-jwt", "refresh-jwt", nil)
	tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	tokenService.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute)
	repoFactory.EXPECT().NewRefreshTokenRepository().Return(refreshTokenRepo)
	refreshTokenRepo.EXPECT().CreateRefreshToken(mock.Anything, mock.Anything).Return(nil)
}

func TestAuthService_SignUp_Success(t *testing.T) {
	service, txManager, repoFactory, profileRepo, authRepo, refreshTokenRepo,
		universityRepo, hasher, tokenService, captchaService, _ := createTestAuthService(t)

	ctx := context.Background()
	universityID := uuid.New()

	captchaService.EXPECT().Verify(ctx, "captcha-token", "1.2.3.4").Return(nil)
	universityRepo.EXPECT().FindUniversityByEmailDomain(ctx, "uni.edu").
		Return(&entity.University{ID: universityID, EmailDomain: "uni.edu"}, nil)
	hasher.EXPECT().Hash("hunter2hunter2").Return("$2a$10$hash", nil)

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	repoFactory.EXPECT().NewAuthRepository().Return(authRepo)

	var createdUserID uuid.UUID
	profileRepo.EXPECT().CreateProfile(ctx, mock.Anything).RunAndReturn(
		func(_ context.Context, profile *entity.Profile) error {
			createdUserID = profile.UserID
			assert.Equal(t, "casey@uni.edu", profile.Email)
			assert.Equal(t, entity.RoleMember, profile.Role)
			require.NotNil(t, profile.UniversityID)
			assert.Equal(t, universityID, *profile.UniversityID)

			return nil
		})
	authRepo.EXPECT().CreateAuthentication(ctx, mock.Anything).Return(nil)

	// A fresh account signs up as a member, and the access token says so.
	tokenService.EXPECT().GenerateTokens(mock.Anything, "casey@uni.edu", "member").
		Return("access-jwt", "refresh-jwt", nil)
	tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	tokenService.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute)
	repoFactory.EXPECT().NewRefreshTokenRepository().Return(refreshTokenRepo)
	refreshTokenRepo.EXPECT().CreateRefreshToken(ctx, mock.Anything).RunAndReturn(
		func(_ context.Context, record *entity.RefreshToken) error {
			// Only the digest of the refresh token may reach storage.
			assert.NotEqual(t, "refresh-jwt", record.TokenHash)
			assert.Len(t, record.TokenHash, 64)

			return nil
		})

	session, err := service.SignUp(ctx, usecase.SignUpInput{
		Email:        " Casey@Uni.edu ",
		Password:     "hunter2hunter2",
		FullName:     "Casey",
		CaptchaToken: "captcha-token",
		RemoteIP:     "1.2.3.4",
	})

	require.NoError(t, err)
	assert.Equal(t, createdUserID, session.UserID)
	assert.Equal(t, "access-jwt", session.AccessToken)
	assert.Equal(t, "refresh-jwt", session.RefreshToken)
}

func TestAuthService_SignUp_CaptchaFailureRejected(t *testing.T) {
	service, _, _, _, _, _, _, _, _, captchaService, _ := createTestAuthService(t)

	ctx := context.Background()
	captchaService.EXPECT().Verify(ctx, "bad-token", "").
		Return(domainerrors.ErrCaptchaFailed.WrapMessage("score too low"))

	_, err := service.SignUp(ctx, usecase.SignUpInput{
		Email:        "casey@uni.edu",
		Password:     "hunter2hunter2",
		CaptchaToken: "bad-token",
	})

	require.Error(t, err)
}

func TestAuthService_SignUp_UnknownDomainRejected(t *testing.T) {
	service, _, _, _, _, _, universityRepo, _, _, captchaService, _ := createTestAuthService(t)

	ctx := context.Background()
	captchaService.EXPECT().Verify(ctx, "ok", "").Return(nil)
	universityRepo.EXPECT().FindUniversityByEmailDomain(ctx, "gmail.com").
		Return(nil, repository.ErrUniversityNotFound)

	_, err := service.SignUp(ctx, usecase.SignUpInput{
		Email:        "casey@gmail.com",
		Password:     "hunter2hunter2",
		CaptchaToken: "ok",
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrEmailDomainNotAllowed.ErrorCode(), appErr.ErrorCode())
}

func TestAuthService_SignInWithPassword_Success(t *testing.T) {
	service, txManager, repoFactory, profileRepo, authRepo, refreshTokenRepo,
		_, hasher, tokenService, _, _ := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewAuthRepository().Return(authRepo)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	authRepo.EXPECT().FindAuthenticationByEmail(ctx, "casey@uni.edu").
		Return(&entity.Authentication{UserID: userID, Email: "casey@uni.edu", PasswordHash: "$2a$10$hash"}, nil)
	hasher.EXPECT().Check("hunter2hunter2", "$2a$10$hash").Return(true)
	profileRepo.EXPECT().FindProfileByUserID(ctx, userID).
		Return(&entity.Profile{UserID: userID, Role: entity.RoleMember, IsBanned: false}, nil)
	expectIssuedSession(repoFactory, refreshTokenRepo, tokenService, userID, "casey@uni.edu", "member")

	session, err := service.SignInWithPassword(ctx, "casey@uni.edu", "hunter2hunter2")

	require.NoError(t, err)
	assert.Equal(t, userID, session.UserID)
}

func TestAuthService_SignInWithPassword_AdminRoleReachesToken(t *testing.T) {
	service, txManager, repoFactory, profileRepo, authRepo, refreshTokenRepo,
		_, hasher, tokenService, _, _ := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewAuthRepository().Return(authRepo)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	authRepo.EXPECT().FindAuthenticationByEmail(ctx, "dean@uni.edu").
		Return(&entity.Authentication{UserID: userID, Email: "dean@uni.edu", PasswordHash: "$2a$10$hash"}, nil)
	hasher.EXPECT().Check("hunter2hunter2", "$2a$10$hash").Return(true)
	profileRepo.EXPECT().FindProfileByUserID(ctx, userID).
		Return(&entity.Profile{UserID: userID, Role: entity.RoleAdmin}, nil)
	// The admin role must be stamped into the token pair, or role-gated
	// routes reject the freshly signed-in admin.
	expectIssuedSession(repoFactory, refreshTokenRepo, tokenService, userID, "dean@uni.edu", "admin")

	session, err := service.SignInWithPassword(ctx, "dean@uni.edu", "hunter2hunter2")

	require.NoError(t, err)
	assert.Equal(t, "access-jwt", session.AccessToken)
}

func TestAuthService_SignInWithPassword_ProfileLookupFailureFailsClosed(t *testing.T) {
	service, txManager, repoFactory, profileRepo, authRepo, _,
		_, hasher, _, _, _ := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewAuthRepository().Return(authRepo)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	authRepo.EXPECT().FindAuthenticationByEmail(ctx, "casey@uni.edu").
		Return(&entity.Authentication{UserID: userID, Email: "casey@uni.edu", PasswordHash: "$2a$10$hash"}, nil)
	hasher.EXPECT().Check("hunter2hunter2", "$2a$10$hash").Return(true)
	// A broken profile lookup must not sign the user in: the banned check
	// would be skipped.
	profileRepo.EXPECT().FindProfileByUserID(ctx, userID).
		Return(nil, errors.New("connection reset"))

	_, err := service.SignInWithPassword(ctx, "casey@uni.edu", "hunter2hunter2")

	require.Error(t, err)
}

func TestAuthService_SignInWithPassword_WrongPassword(t *testing.T) {
	service, txManager, repoFactory, _, authRepo, _, _, hasher, _, _, _ := createTestAuthService(t)

	ctx := context.Background()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewAuthRepository().Return(authRepo)
	authRepo.EXPECT().FindAuthenticationByEmail(ctx, "casey@uni.edu").
		Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "$2a$10$hash"}, nil)
	hasher.EXPECT().Check("wrong", "$2a$10$hash").Return(false)

	_, err := service.SignInWithPassword(ctx, "casey@uni.edu", "wrong")

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), appErr.ErrorCode())
}

func TestAuthService_SignInWithPassword_BannedUserRejected(t *testing.T) {
	service, txManager, repoFactory, profileRepo, authRepo, _, _, hasher, _, _, _ := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewAuthRepository().Return(authRepo)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	authRepo.EXPECT().FindAuthenticationByEmail(ctx, "banned@uni.edu").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "$2a$10$hash"}, nil)
	hasher.EXPECT().Check("hunter2hunter2", "$2a$10$hash").Return(true)
	profileRepo.EXPECT().FindProfileByUserID(ctx, userID).
		Return(&entity.Profile{UserID: userID, IsBanned: true}, nil)

	_, err := service.SignInWithPassword(ctx, "banned@uni.edu", "hunter2hunter2")

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUserBanned.ErrorCode(), appErr.ErrorCode())
}

func TestAuthService_RequestMagicLink_ExistingAccount(t *testing.T) {
	service, txManager, repoFactory, _, authRepo, _, universityRepo, _, _, captchaService, mailSender := createTestAuthService(t)

	ctx := context.Background()
	universityID := uuid.New()

	captchaService.EXPECT().Verify(ctx, "captcha-token", "1.2.3.4").Return(nil)
	universityRepo.EXPECT().FindUniversityByEmailDomain(ctx, "uni.edu").
		Return(&entity.University{ID: universityID, EmailDomain: "uni.edu"}, nil)

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewAuthRepository().Return(authRepo)
	repoFactory.EXPECT().NewProfileRepository().Return(mockRepo.NewMockProfileRepository(t))
	authRepo.EXPECT().FindAuthenticationByEmail(ctx, "casey@uni.edu").
		Return(&entity.Authentication{UserID: uuid.New(), Email: "casey@uni.edu"}, nil)

	var storedHash string
	authRepo.EXPECT().CreateMagicLink(ctx, mock.Anything).RunAndReturn(
		func(_ context.Context, link *entity.MagicLink) error {
			storedHash = link.CodeHash
			assert.Equal(t, "casey@uni.edu", link.Email)
			assert.True(t, link.ExpiresAt.After(time.Now()))

			return nil
		})

	mailSender.EXPECT().SendMagicLink(ctx, "casey@uni.edu", mock.Anything).RunAndReturn(
		func(_ context.Context, _ string, link string) error {
			// The mailed link carries the raw code, never its digest.
			assert.Contains(t, link, "https://campustrace.example.edu/auth/callback?code=")
			assert.NotContains(t, link, storedHash)

			return nil
		})

	require.NoError(t, service.RequestMagicLink(ctx, usecase.MagicLinkInput{
		Email:        " Casey@Uni.edu ",
		CaptchaToken: "captcha-token",
		RemoteIP:     "1.2.3.4",
	}))
	assert.Len(t, storedHash, 64)
}

func TestAuthService_RequestMagicLink_CaptchaFailureRejected(t *testing.T) {
	service, _, _, _, _, _, _, _, _, captchaService, _ := createTestAuthService(t)

	ctx := context.Background()
	// The challenge runs before any account lookup, so a failed check
	// leaks nothing about whether the email is known.
	captchaService.EXPECT().Verify(ctx, "bad-token", "1.2.3.4").
		Return(domainerrors.ErrCaptchaFailed.WrapMessage("score too low"))

	err := service.RequestMagicLink(ctx, usecase.MagicLinkInput{
		Email:        "casey@uni.edu",
		CaptchaToken: "bad-token",
		RemoteIP:     "1.2.3.4",
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrCaptchaFailed.ErrorCode(), appErr.ErrorCode())
}

func TestAuthService_RequestMagicLink_CreatesAccountOnFirstRequest(t *testing.T) {
	service, txManager, repoFactory, profileRepo, authRepo, _, universityRepo, _, _, captchaService, mailSender := createTestAuthService(t)

	ctx := context.Background()
	universityID := uuid.New()

	captchaService.EXPECT().Verify(ctx, "captcha-token", "").Return(nil)
	universityRepo.EXPECT().FindUniversityByEmailDomain(ctx, "uni.edu").
		Return(&entity.University{ID: universityID, EmailDomain: "uni.edu"}, nil)

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewAuthRepository().Return(authRepo)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	authRepo.EXPECT().FindAuthenticationByEmail(ctx, "newbie@uni.edu").
		Return(nil, repository.ErrAuthNotFound)
	profileRepo.EXPECT().CreateProfile(ctx, mock.Anything).RunAndReturn(
		func(_ context.Context, profile *entity.Profile) error {
			assert.Equal(t, "newbie", profile.FullName)

			return nil
		})
	authRepo.EXPECT().CreateAuthentication(ctx, mock.Anything).Return(nil)
	authRepo.EXPECT().CreateMagicLink(ctx, mock.Anything).Return(nil)
	mailSender.EXPECT().SendMagicLink(ctx, "newbie@uni.edu", mock.Anything).Return(nil)

	require.NoError(t, service.RequestMagicLink(ctx, usecase.MagicLinkInput{
		Email:        "newbie@uni.edu",
		CaptchaToken: "captcha-token",
	}))
}

func TestAuthService_RequestMagicLink_MailFailureSurfaces(t *testing.T) {
	service, txManager, repoFactory, _, authRepo, _, universityRepo, _, _, captchaService, mailSender := createTestAuthService(t)

	ctx := context.Background()

	captchaService.EXPECT().Verify(ctx, "captcha-token", "").Return(nil)
	universityRepo.EXPECT().FindUniversityByEmailDomain(ctx, "uni.edu").
		Return(&entity.University{ID: uuid.New()}, nil)

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewAuthRepository().Return(authRepo)
	repoFactory.EXPECT().NewProfileRepository().Return(mockRepo.NewMockProfileRepository(t))
	authRepo.EXPECT().FindAuthenticationByEmail(ctx, "casey@uni.edu").
		Return(&entity.Authentication{UserID: uuid.New()}, nil)
	authRepo.EXPECT().CreateMagicLink(ctx, mock.Anything).Return(nil)
	mailSender.EXPECT().SendMagicLink(ctx, "casey@uni.edu", mock.Anything).
		Return(errors.New("smtp refused"))

	require.Error(t, service.RequestMagicLink(ctx, usecase.MagicLinkInput{
		Email:        "casey@uni.edu",
		CaptchaToken: "captcha-token",
	}))
}

func TestAuthService_SignOutAll_RevokesEverySession(t *testing.T) {
	service, txManager, repoFactory, _, _, refreshTokenRepo, _, _, _, _, _ := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewRefreshTokenRepository().Return(refreshTokenRepo)
	refreshTokenRepo.EXPECT().RevokeRefreshTokensByUserID(ctx, userID).Return(nil)

	require.NoError(t, service.SignOutAll(ctx, userID))
}
