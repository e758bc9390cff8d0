package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"campustrace/config"
	"campustrace/internal/domain/entity"
	"campustrace/internal/domain/repository"
	mockRepo "campustrace/internal/mocks/repository"
	mockSvc "campustrace/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSessionClient(t *testing.T) (
	*sessionClient,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockRepositoryFactory,
	*mockRepo.MockAuthRepository,
	*mockRepo.MockRefreshTokenRepository,
	*mockRepo.MockProfileRepository,
	*mockSvc.MockTokenService,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{Auth: &config.AuthConfig{MaxActiveSessions: 5}}

	client, ok := NewSessionClient(cfg, txManager, tokenService, logger).(*sessionClient)
	require.True(t, ok)

	return client, txManager, repoFactory, authRepo, refreshRepo, profileRepo, tokenService
}

func stubClientTransaction(txManager *mockRepo.MockTransactionManager, repoFactory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repoFactory)
		})
}

func TestSessionClient_GetSession_StampsProfileRoleIntoAccessToken(t *testing.T) {
	client, txManager, repoFactory, authRepo, refreshRepo, profileRepo, tokenService := createTestSessionClient(t)

	ctx := context.Background()
	userID := uuid.New()

	stubClientTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewRefreshTokenRepository().Return(refreshRepo)
	repoFactory.EXPECT().NewAuthRepository().Return(authRepo)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)

	refreshRepo.EXPECT().FindRefreshTokenByHash(ctx, HashToken("stored-token")).
		Return(&entity.RefreshToken{ID: uuid.New(), UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
	authRepo.EXPECT().FindAuthenticationByUserID(ctx, userID).
		Return(&entity.Authentication{UserID: userID, Email: "dean@uni.edu"}, nil)
	profileRepo.EXPECT().FindProfileByUserID(ctx, userID).
		Return(&entity.Profile{UserID: userID, Role: entity.RoleAdmin}, nil)

	// Session restoration must mint tokens that carry the stored role, or
	// role-gated routes reject a returning admin.
	tokenService.EXPECT().GenerateTokens(userID, "dean@uni.edu", "admin").
		Return("access-jwt", "refresh-jwt", nil)
	tokenService.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute)

	session, err := client.GetSession(ctx, "stored-token")

	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "access-jwt", session.AccessToken)
	// The stored refresh token stays in place; GetSession never rotates.
	assert.Equal(t, "stored-token", session.RefreshToken)
}

func TestSessionClient_RefreshSession_MissingProfileYieldsRolelessToken(t *testing.T) {
	client, txManager, repoFactory, authRepo, refreshRepo, profileRepo, tokenService := createTestSessionClient(t)

	ctx := context.Background()
	userID := uuid.New()
	storedID := uuid.New()

	stubClientTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewRefreshTokenRepository().Return(refreshRepo)
	repoFactory.EXPECT().NewAuthRepository().Return(authRepo)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)

	refreshRepo.EXPECT().FindRefreshTokenByHash(ctx, HashToken("stored-token")).
		Return(&entity.RefreshToken{ID: storedID, UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
	authRepo.EXPECT().FindAuthenticationByUserID(ctx, userID).
		Return(&entity.Authentication{UserID: userID, Email: "casey@uni.edu"}, nil)
	profileRepo.EXPECT().FindProfileByUserID(ctx, userID).
		Return(nil, repository.ErrProfileNotFound)

	refreshRepo.EXPECT().RevokeRefreshToken(ctx, storedID).Return(nil)
	tokenService.EXPECT().GenerateTokens(userID, "casey@uni.edu", "").
		Return("access-jwt", "rotated-jwt", nil)
	tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	tokenService.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute)
	refreshRepo.EXPECT().CreateRefreshToken(ctx, mock.Anything).Return(nil)

	session, err := client.RefreshSession(ctx, "stored-token")

	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "rotated-jwt", session.RefreshToken)
}

func TestSessionClient_GetSession_ProfileLookupFailureSurfaces(t *testing.T) {
	client, txManager, repoFactory, authRepo, refreshRepo, profileRepo, _ := createTestSessionClient(t)

	ctx := context.Background()
	userID := uuid.New()

	stubClientTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewRefreshTokenRepository().Return(refreshRepo)
	repoFactory.EXPECT().NewAuthRepository().Return(authRepo)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)

	refreshRepo.EXPECT().FindRefreshTokenByHash(ctx, HashToken("stored-token")).
		Return(&entity.RefreshToken{ID: uuid.New(), UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
	authRepo.EXPECT().FindAuthenticationByUserID(ctx, userID).
		Return(&entity.Authentication{UserID: userID, Email: "casey@uni.edu"}, nil)
	profileRepo.EXPECT().FindProfileByUserID(ctx, userID).
		Return(nil, errors.New("connection reset"))

	_, err := client.GetSession(ctx, "stored-token")

	require.Error(t, err)
}
