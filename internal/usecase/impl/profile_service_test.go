package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"campustrace/internal/domain/entity"
	domainerrors "campustrace/internal/domain/errors"
	"campustrace/internal/domain/repository"
	mockRepo "campustrace/internal/mocks/repository"
	"campustrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProfileService(t *testing.T) (
	usecase.ProfileUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockRepositoryFactory,
	*mockRepo.MockProfileRepository,
	*mockRepo.MockUniversityRepository,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	universityRepo := mockRepo.NewMockUniversityRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewProfileService(txManager, universityRepo, logger)

	return service, txManager, repoFactory, profileRepo, universityRepo
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	service, txManager, repoFactory, profileRepo, _ := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	universityID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(ctx, userID).Return(&entity.Profile{
		UserID:       userID,
		FullName:     "Dana Reyes",
		Role:         entity.RoleMember,
		UniversityID: &universityID,
	}, nil)

	profile, err := service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "Dana Reyes", profile.FullName)
	assert.True(t, profile.HasUniversity())
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	service, txManager, repoFactory, profileRepo, _ := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	profile, err := service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, profile)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrProfileNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestProfileService_UpdateProfile_AppliesFields(t *testing.T) {
	service, txManager, repoFactory, profileRepo, _ := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(ctx, userID).Return(&entity.Profile{
		UserID:   userID,
		FullName: "Old Name",
	}, nil)
	profileRepo.EXPECT().UpdateProfile(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
		return p.FullName == "New Name" && p.AvatarURL == "https://cdn.example.edu/avatar.png"
	})).Return(nil)

	profile, err := service.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{
		FullName:  "New Name",
		AvatarURL: "https://cdn.example.edu/avatar.png",
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", profile.FullName)
}

func TestProfileService_UpdateProfile_RepoFailureSurfaces(t *testing.T) {
	service, txManager, repoFactory, profileRepo, _ := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(ctx, userID).Return(&entity.Profile{UserID: userID}, nil)
	profileRepo.EXPECT().UpdateProfile(ctx, mock.Anything).Return(assert.AnError)

	_, err := service.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{FullName: "New Name"})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrProfileUpdateFailed.ErrorCode(), appErr.ErrorCode())
}

func TestProfileService_GetUniversity_Success(t *testing.T) {
	service, _, _, _, universityRepo := createTestProfileService(t)

	ctx := context.Background()
	universityID := uuid.New()

	universityRepo.EXPECT().FindUniversityByID(ctx, universityID).Return(&entity.University{
		ID:   universityID,
		Name: "Riverside University",
	}, nil)

	university, err := service.GetUniversity(ctx, universityID)

	require.NoError(t, err)
	assert.Equal(t, "Riverside University", university.Name)
}

func TestProfileService_GetUniversity_NotFound(t *testing.T) {
	service, _, _, _, universityRepo := createTestProfileService(t)

	ctx := context.Background()
	universityID := uuid.New()

	universityRepo.EXPECT().FindUniversityByID(ctx, universityID).Return(nil, repository.ErrUniversityNotFound)

	_, err := service.GetUniversity(ctx, universityID)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUniversityNotFound.ErrorCode(), appErr.ErrorCode())
}
