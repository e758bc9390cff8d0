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
	mockSvc "campustrace/internal/mocks/service"
	mockUC "campustrace/internal/mocks/usecase"
	"campustrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestClaimService(t *testing.T) (
	usecase.ClaimUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockRepositoryFactory,
	*mockRepo.MockItemRepository,
	*mockRepo.MockClaimRepository,
	*mockRepo.MockProfileRepository,
	*mockSvc.MockMailSender,
	*mockUC.MockNotificationUsecase,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	itemRepo := mockRepo.NewMockItemRepository(t)
	claimRepo := mockRepo.NewMockClaimRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	mailSender := mockSvc.NewMockMailSender(t)
	notifier := mockUC.NewMockNotificationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewClaimService(txManager, mailSender, notifier, logger)

	return service, txManager, repoFactory, itemRepo, claimRepo, profileRepo, mailSender, notifier
}

func approvedFoundItem(posterID uuid.UUID) *entity.Item {
	return &entity.Item{
		ID:           uuid.New(),
		UniversityID: uuid.New(),
		PosterID:     posterID,
		Kind:         entity.ItemKindFound,
		Status:       entity.ItemStatusApproved,
		Title:        "Black umbrella",
	}
}

func TestClaimService_FileClaim_Success(t *testing.T) {
	service, txManager, repoFactory, itemRepo, claimRepo, _, _, notifier := createTestClaimService(t)

	ctx := context.Background()
	claimantID := uuid.New()
	item := approvedFoundItem(uuid.New())

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewItemRepository().Return(itemRepo)
	itemRepo.EXPECT().FindItemByID(ctx, item.ID).Return(item, nil)
	repoFactory.EXPECT().NewClaimRepository().Return(claimRepo)
	claimRepo.EXPECT().FindClaimByItemAndClaimant(ctx, item.ID, claimantID).
		Return(nil, repository.ErrClaimNotFound)
	claimRepo.EXPECT().CreateClaim(ctx, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyNewClaim(ctx, item, mock.Anything).Return(nil)

	claim, err := service.FileClaim(ctx, claimantID, item.ID, "it has my initials inside")

	require.NoError(t, err)
	assert.Equal(t, entity.ClaimStatusPending, claim.Status)
	assert.Equal(t, claimantID, claim.ClaimantID)
}

func TestClaimService_FileClaim_OwnPostRejected(t *testing.T) {
	service, txManager, repoFactory, itemRepo, _, _, _, _ := createTestClaimService(t)

	ctx := context.Background()
	posterID := uuid.New()
	item := approvedFoundItem(posterID)

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewItemRepository().Return(itemRepo)
	itemRepo.EXPECT().FindItemByID(ctx, item.ID).Return(item, nil)

	_, err := service.FileClaim(ctx, posterID, item.ID, "mine")

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrItemNotClaimable.ErrorCode(), appErr.ErrorCode())
}

func TestClaimService_FileClaim_PendingItemRejected(t *testing.T) {
	service, txManager, repoFactory, itemRepo, _, _, _, _ := createTestClaimService(t)

	ctx := context.Background()
	item := approvedFoundItem(uuid.New())
	item.Status = entity.ItemStatusPending

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewItemRepository().Return(itemRepo)
	itemRepo.EXPECT().FindItemByID(ctx, item.ID).Return(item, nil)

	_, err := service.FileClaim(ctx, uuid.New(), item.ID, "mine")

	require.Error(t, err)
}

func TestClaimService_FileClaim_LostItemRejected(t *testing.T) {
	service, txManager, repoFactory, itemRepo, _, _, _, _ := createTestClaimService(t)

	ctx := context.Background()
	item := approvedFoundItem(uuid.New())
	item.Kind = entity.ItemKindLost

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewItemRepository().Return(itemRepo)
	itemRepo.EXPECT().FindItemByID(ctx, item.ID).Return(item, nil)

	_, err := service.FileClaim(ctx, uuid.New(), item.ID, "mine")

	require.Error(t, err)
}

func TestClaimService_FileClaim_DuplicateRejected(t *testing.T) {
	service, txManager, repoFactory, itemRepo, claimRepo, _, _, _ := createTestClaimService(t)

	ctx := context.Background()
	claimantID := uuid.New()
	item := approvedFoundItem(uuid.New())

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewItemRepository().Return(itemRepo)
	itemRepo.EXPECT().FindItemByID(ctx, item.ID).Return(item, nil)
	repoFactory.EXPECT().NewClaimRepository().Return(claimRepo)
	claimRepo.EXPECT().FindClaimByItemAndClaimant(ctx, item.ID, claimantID).
		Return(&entity.Claim{ID: uuid.New(), ItemID: item.ID, ClaimantID: claimantID}, nil)

	_, err := service.FileClaim(ctx, claimantID, item.ID, "again")

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrClaimAlreadyExists.ErrorCode(), appErr.ErrorCode())
}

func TestClaimService_ListClaimsForItem_PosterOnly(t *testing.T) {
	service, txManager, repoFactory, itemRepo, _, _, _, _ := createTestClaimService(t)

	ctx := context.Background()
	item := approvedFoundItem(uuid.New())

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewItemRepository().Return(itemRepo)
	itemRepo.EXPECT().FindItemByID(ctx, item.ID).Return(item, nil)

	_, err := service.ListClaimsForItem(ctx, uuid.New(), item.ID)

	require.Error(t, err)
}

func TestClaimService_DecideClaim_ApproveMarksItemRecovered(t *testing.T) {
	service, txManager, repoFactory, itemRepo, claimRepo, profileRepo, mailSender, notifier := createTestClaimService(t)

	ctx := context.Background()
	posterID := uuid.New()
	claimantID := uuid.New()
	item := approvedFoundItem(posterID)
	claim := &entity.Claim{
		ID:         uuid.New(),
		ItemID:     item.ID,
		ClaimantID: claimantID,
		Status:     entity.ClaimStatusPending,
	}

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewClaimRepository().Return(claimRepo)
	claimRepo.EXPECT().FindClaimByID(ctx, claim.ID).Return(claim, nil)
	repoFactory.EXPECT().NewItemRepository().Return(itemRepo)
	itemRepo.EXPECT().FindItemByID(ctx, item.ID).Return(item, nil)
	claimRepo.EXPECT().UpdateClaimStatus(ctx, claim.ID, entity.ClaimStatusApproved).Return(nil)
	itemRepo.EXPECT().UpdateItemStatus(ctx, item.ID, entity.ItemStatusRecovered).Return(nil)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(ctx, claimantID).
		Return(&entity.Profile{UserID: claimantID, Email: "claimant@uni.edu"}, nil)

	notifier.EXPECT().NotifyClaimStatusUpdate(ctx, mock.Anything, mock.Anything).Return(nil)
	mailSender.EXPECT().SendClaimDecision(ctx, "claimant@uni.edu", item.Title, "approved").Return(nil)

	decided, err := service.DecideClaim(ctx, posterID, claim.ID, true)

	require.NoError(t, err)
	assert.Equal(t, entity.ClaimStatusApproved, decided.Status)
}

func TestClaimService_DecideClaim_RejectLeavesItemAlone(t *testing.T) {
	service, txManager, repoFactory, itemRepo, claimRepo, profileRepo, mailSender, notifier := createTestClaimService(t)

	ctx := context.Background()
	posterID := uuid.New()
	claimantID := uuid.New()
	item := approvedFoundItem(posterID)
	claim := &entity.Claim{
		ID:         uuid.New(),
		ItemID:     item.ID,
		ClaimantID: claimantID,
		Status:     entity.ClaimStatusPending,
	}

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewClaimRepository().Return(claimRepo)
	claimRepo.EXPECT().FindClaimByID(ctx, claim.ID).Return(claim, nil)
	repoFactory.EXPECT().NewItemRepository().Return(itemRepo)
	itemRepo.EXPECT().FindItemByID(ctx, item.ID).Return(item, nil)
	claimRepo.EXPECT().UpdateClaimStatus(ctx, claim.ID, entity.ClaimStatusRejected).Return(nil)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(ctx, claimantID).
		Return(&entity.Profile{UserID: claimantID, Email: "claimant@uni.edu"}, nil)

	notifier.EXPECT().NotifyClaimStatusUpdate(ctx, mock.Anything, mock.Anything).Return(nil)
	mailSender.EXPECT().SendClaimDecision(ctx, "claimant@uni.edu", item.Title, "rejected").Return(nil)

	decided, err := service.DecideClaim(ctx, posterID, claim.ID, false)

	require.NoError(t, err)
	assert.Equal(t, entity.ClaimStatusRejected, decided.Status)
	assert.Equal(t, entity.ItemStatusApproved, item.Status)
}

func TestClaimService_DecideClaim_AlreadyDecidedIsFinal(t *testing.T) {
	service, txManager, repoFactory, _, claimRepo, _, _, _ := createTestClaimService(t)

	ctx := context.Background()
	claim := &entity.Claim{
		ID:     uuid.New(),
		ItemID: uuid.New(),
		Status: entity.ClaimStatusRejected,
	}

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewClaimRepository().Return(claimRepo)
	claimRepo.EXPECT().FindClaimByID(ctx, claim.ID).Return(claim, nil)

	_, err := service.DecideClaim(ctx, uuid.New(), claim.ID, true)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrClaimAlreadyDecided.ErrorCode(), appErr.ErrorCode())
}

func TestClaimService_DecideClaim_NonPosterForbidden(t *testing.T) {
	service, txManager, repoFactory, itemRepo, claimRepo, _, _, _ := createTestClaimService(t)

	ctx := context.Background()
	item := approvedFoundItem(uuid.New())
	claim := &entity.Claim{
		ID:     uuid.New(),
		ItemID: item.ID,
		Status: entity.ClaimStatusPending,
	}

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewClaimRepository().Return(claimRepo)
	claimRepo.EXPECT().FindClaimByID(ctx, claim.ID).Return(claim, nil)
	repoFactory.EXPECT().NewItemRepository().Return(itemRepo)
	itemRepo.EXPECT().FindItemByID(ctx, item.ID).Return(item, nil)

	_, err := service.DecideClaim(ctx, uuid.New(), claim.ID, true)

	require.Error(t, err)
}
