package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"campustrace/internal/domain/entity"
	domainerrors "campustrace/internal/domain/errors"
	mockRepo "campustrace/internal/mocks/repository"
	mockUC "campustrace/internal/mocks/usecase"
	"campustrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAdminService(t *testing.T) (
	usecase.AdminUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockRepositoryFactory,
	*mockRepo.MockItemRepository,
	*mockRepo.MockProfileRepository,
	*mockRepo.MockUniversityRepository,
	*mockUC.MockNotificationUsecase,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	itemRepo := mockRepo.NewMockItemRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	universityRepo := mockRepo.NewMockUniversityRepository(t)
	notifier := mockUC.NewMockNotificationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewAdminService(txManager, notifier, logger)

	return service, txManager, repoFactory, itemRepo, profileRepo, universityRepo, notifier
}

func adminProfile(universityID uuid.UUID) *entity.Profile {
	return &entity.Profile{
		UserID:       uuid.New(),
		Role:         entity.RoleAdmin,
		UniversityID: &universityID,
	}
}

func TestAdminService_ReviewItem_ApproveNotifiesPoster(t *testing.T) {
	service, txManager, repoFactory, itemRepo, profileRepo, _, notifier := createTestAdminService(t)

	ctx := context.Background()
	universityID := uuid.New()
	reviewer := adminProfile(universityID)
	item := &entity.Item{
		ID:           uuid.New(),
		UniversityID: universityID,
		PosterID:     uuid.New(),
		Status:       entity.ItemStatusPending,
		Title:        "Water bottle",
	}

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewItemRepository().Return(itemRepo)
	itemRepo.EXPECT().FindItemByID(ctx, item.ID).Return(item, nil)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(ctx, reviewer.UserID).Return(reviewer, nil)
	itemRepo.EXPECT().UpdateItemStatus(ctx, item.ID, entity.ItemStatusApproved).Return(nil)
	notifier.EXPECT().NotifyPostStatusUpdate(ctx, mock.Anything).Return(nil)

	reviewed, err := service.ReviewItem(ctx, reviewer.UserID, item.ID, true)

	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusApproved, reviewed.Status)
}

func TestAdminService_ReviewItem_ForeignUniversityForbidden(t *testing.T) {
	service, txManager, repoFactory, itemRepo, profileRepo, _, _ := createTestAdminService(t)

	ctx := context.Background()
	reviewer := adminProfile(uuid.New())
	item := &entity.Item{
		ID:           uuid.New(),
		UniversityID: uuid.New(),
		Status:       entity.ItemStatusPending,
	}

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewItemRepository().Return(itemRepo)
	itemRepo.EXPECT().FindItemByID(ctx, item.ID).Return(item, nil)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(ctx, reviewer.UserID).Return(reviewer, nil)

	_, err := service.ReviewItem(ctx, reviewer.UserID, item.ID, true)

	require.Error(t, err)
}

func TestAdminService_ReviewItem_MemberForbidden(t *testing.T) {
	service, txManager, repoFactory, itemRepo, profileRepo, _, _ := createTestAdminService(t)

	ctx := context.Background()
	universityID := uuid.New()
	member := &entity.Profile{
		UserID:       uuid.New(),
		Role:         entity.RoleMember,
		UniversityID: &universityID,
	}
	item := &entity.Item{
		ID:           uuid.New(),
		UniversityID: universityID,
		Status:       entity.ItemStatusPending,
	}

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewItemRepository().Return(itemRepo)
	itemRepo.EXPECT().FindItemByID(ctx, item.ID).Return(item, nil)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(ctx, member.UserID).Return(member, nil)

	_, err := service.ReviewItem(ctx, member.UserID, item.ID, true)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrForbidden.ErrorCode(), appErr.ErrorCode())
}

func TestAdminService_ReviewItem_AlreadyDecided(t *testing.T) {
	service, txManager, repoFactory, itemRepo, profileRepo, _, _ := createTestAdminService(t)

	ctx := context.Background()
	universityID := uuid.New()
	reviewer := adminProfile(universityID)
	item := &entity.Item{
		ID:           uuid.New(),
		UniversityID: universityID,
		Status:       entity.ItemStatusApproved,
	}

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewItemRepository().Return(itemRepo)
	itemRepo.EXPECT().FindItemByID(ctx, item.ID).Return(item, nil)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(ctx, reviewer.UserID).Return(reviewer, nil)

	_, err := service.ReviewItem(ctx, reviewer.UserID, item.ID, false)

	require.Error(t, err)
}

func TestAdminService_SetUserBanned_SelfBanRejected(t *testing.T) {
	service, txManager, repoFactory, _, profileRepo, _, _ := createTestAdminService(t)

	ctx := context.Background()
	universityID := uuid.New()
	admin := adminProfile(universityID)

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(ctx, admin.UserID).Return(admin, nil)

	err := service.SetUserBanned(ctx, admin.UserID, admin.UserID, true)

	require.Error(t, err)
}

func TestAdminService_SetUserBanned_CrossTenantRejected(t *testing.T) {
	service, txManager, repoFactory, _, profileRepo, _, _ := createTestAdminService(t)

	ctx := context.Background()
	admin := adminProfile(uuid.New())
	otherUniversity := uuid.New()
	target := &entity.Profile{UserID: uuid.New(), UniversityID: &otherUniversity}

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(ctx, admin.UserID).Return(admin, nil)
	profileRepo.EXPECT().FindProfileByUserID(ctx, target.UserID).Return(target, nil)

	err := service.SetUserBanned(ctx, admin.UserID, target.UserID, true)

	require.Error(t, err)
}

func TestAdminService_SetUserRole_NormalizesBeforeStoring(t *testing.T) {
	service, txManager, repoFactory, _, profileRepo, _, _ := createTestAdminService(t)

	ctx := context.Background()
	universityID := uuid.New()
	admin := adminProfile(universityID)
	target := &entity.Profile{UserID: uuid.New(), UniversityID: &universityID}

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(ctx, admin.UserID).Return(admin, nil)
	profileRepo.EXPECT().FindProfileByUserID(ctx, target.UserID).Return(target, nil)
	profileRepo.EXPECT().SetRole(ctx, target.UserID, entity.RoleModerator).Return(nil)

	require.NoError(t, service.SetUserRole(ctx, admin.UserID, target.UserID, entity.Role(" Moderator ")))
}

func TestAdminService_SetUserRole_UnknownRoleRejected(t *testing.T) {
	service, _, _, _, _, _, _ := createTestAdminService(t)

	err := service.SetUserRole(context.Background(), uuid.New(), uuid.New(), entity.Role("superuser"))

	require.Error(t, err)
}

func TestAdminService_UpdateUniversity_AppliesSettings(t *testing.T) {
	service, txManager, repoFactory, _, profileRepo, universityRepo, _ := createTestAdminService(t)

	ctx := context.Background()
	universityID := uuid.New()
	admin := adminProfile(universityID)

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(ctx, admin.UserID).Return(admin, nil)
	repoFactory.EXPECT().NewUniversityRepository().Return(universityRepo)
	universityRepo.EXPECT().FindUniversityByID(ctx, universityID).
		Return(&entity.University{ID: universityID, Name: "Old Name", EmailDomain: "old.edu"}, nil)
	universityRepo.EXPECT().UpdateUniversity(ctx, mock.Anything).Return(nil)

	updated, err := service.UpdateUniversity(ctx, admin.UserID, usecase.UpdateUniversityInput{
		Name:             "New Name",
		EmailDomain:      " STU.Example.EDU ",
		AutoApprovePosts: true,
		NoticeBanner:     "Exam week: found items go to the front desk",
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "stu.example.edu", updated.EmailDomain)
	assert.True(t, updated.AutoApprovePosts)
}
