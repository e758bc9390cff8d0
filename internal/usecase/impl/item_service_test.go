package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"campustrace/config"
	"campustrace/internal/domain/entity"
	domainerrors "campustrace/internal/domain/errors"
	mockRepo "campustrace/internal/mocks/repository"
	mockSvc "campustrace/internal/mocks/service"
	mockUC "campustrace/internal/mocks/usecase"
	"campustrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestItemService(t *testing.T) (
	usecase.ItemUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockRepositoryFactory,
	*mockRepo.MockItemRepository,
	*mockRepo.MockProfileRepository,
	*mockRepo.MockUniversityRepository,
	*mockSvc.MockStorageService,
	*mockSvc.MockQRCodeService,
	*mockUC.MockNotificationUsecase,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	itemRepo := mockRepo.NewMockItemRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	universityRepo := mockRepo.NewMockUniversityRepository(t)
	storageService := mockSvc.NewMockStorageService(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	notifier := mockUC.NewMockNotificationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{
		Items: &config.ItemsConfig{
			NearbyRadiusMeters: 500,
			MaxImageBytes:      1 << 20,
		},
	}

	service := NewItemService(cfg, txManager, storageService, qrcodeService, notifier, logger)

	return service, txManager, repoFactory, itemRepo, profileRepo, universityRepo, storageService, qrcodeService, notifier
}

func float64Ptr(v float64) *float64 {
	return &v
}

func TestItemService_CreateItem_PendingNotifiesAdmins(t *testing.T) {
	service, txManager, repoFactory, itemRepo, profileRepo, universityRepo, _, _, notifier := createTestItemService(t)

	ctx := context.Background()
	posterID := uuid.New()
	universityID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(ctx, posterID).
		Return(&entity.Profile{UserID: posterID, UniversityID: &universityID}, nil)
	repoFactory.EXPECT().NewUniversityRepository().Return(universityRepo)
	universityRepo.EXPECT().FindUniversityByID(ctx, universityID).
		Return(&entity.University{ID: universityID, AutoApprovePosts: false}, nil)
	repoFactory.EXPECT().NewItemRepository().Return(itemRepo)
	itemRepo.EXPECT().CreateItem(ctx, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyAdminsNewPost(ctx, mock.Anything).Return(nil)

	item, err := service.CreateItem(ctx, usecase.CreateItemInput{
		PosterID:   posterID,
		Kind:       entity.ItemKindFound,
		Title:      "Student ID card",
		OccurredAt: time.Now(),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusPending, item.Status)
	assert.Equal(t, universityID, item.UniversityID)
}

func TestItemService_CreateItem_AutoApproveSkipsReview(t *testing.T) {
	service, txManager, repoFactory, itemRepo, profileRepo, universityRepo, _, _, _ := createTestItemService(t)

	ctx := context.Background()
	posterID := uuid.New()
	universityID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(ctx, posterID).
		Return(&entity.Profile{UserID: posterID, UniversityID: &universityID}, nil)
	repoFactory.EXPECT().NewUniversityRepository().Return(universityRepo)
	universityRepo.EXPECT().FindUniversityByID(ctx, universityID).
		Return(&entity.University{ID: universityID, AutoApprovePosts: true}, nil)
	repoFactory.EXPECT().NewItemRepository().Return(itemRepo)
	itemRepo.EXPECT().CreateItem(ctx, mock.Anything).Return(nil)

	// No admin fan-out for auto-approved posts.
	item, err := service.CreateItem(ctx, usecase.CreateItemInput{
		PosterID: posterID,
		Kind:     entity.ItemKindLost,
		Title:    "Laptop charger",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusApproved, item.Status)
}

func TestItemService_CreateItem_NoUniversityAborts(t *testing.T) {
	service, txManager, repoFactory, _, profileRepo, _, _, _, _ := createTestItemService(t)

	ctx := context.Background()
	posterID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(ctx, posterID).
		Return(&entity.Profile{UserID: posterID}, nil)

	_, err := service.CreateItem(ctx, usecase.CreateItemInput{
		PosterID: posterID,
		Kind:     entity.ItemKindLost,
	})

	require.Error(t, err)
}

func TestItemService_CreateItem_InvalidKind(t *testing.T) {
	service, _, _, _, _, _, _, _, _ := createTestItemService(t)

	_, err := service.CreateItem(context.Background(), usecase.CreateItemInput{
		PosterID: uuid.New(),
		Kind:     entity.ItemKind("misplaced"),
	})

	require.Error(t, err)
}

func TestItemService_UpdateItem_ForeignPosterForbidden(t *testing.T) {
	service, txManager, repoFactory, itemRepo, _, _, _, _, _ := createTestItemService(t)

	ctx := context.Background()
	itemID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewItemRepository().Return(itemRepo)
	itemRepo.EXPECT().FindItemByID(ctx, itemID).
		Return(&entity.Item{ID: itemID, PosterID: uuid.New()}, nil)

	_, err := service.UpdateItem(ctx, uuid.New(), itemID, usecase.UpdateItemInput{Title: "x"})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrItemOwnershipViolation.ErrorCode(), appErr.ErrorCode())
}

func TestItemService_AttachImage_TooLargeRejected(t *testing.T) {
	service, _, _, _, _, _, _, _, _ := createTestItemService(t)

	_, err := service.AttachImage(context.Background(), uuid.New(), uuid.New(),
		"image/png", 2<<20, strings.NewReader("payload"))

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrImageTooLarge.ErrorCode(), appErr.ErrorCode())
}

func TestItemService_AttachImage_AppendsURL(t *testing.T) {
	service, txManager, repoFactory, itemRepo, _, _, storageService, _, _ := createTestItemService(t)

	ctx := context.Background()
	posterID := uuid.New()
	itemID := uuid.New()
	item := &entity.Item{ID: itemID, PosterID: posterID, ImageURLs: []string{"existing.png"}}

	storageService.EXPECT().Upload(ctx, mock.Anything, "image/jpeg", mock.Anything).
		Return("https://cdn.example.edu/media/new.jpg", nil)

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewItemRepository().Return(itemRepo)
	itemRepo.EXPECT().FindItemByID(ctx, itemID).Return(item, nil)
	itemRepo.EXPECT().UpdateItem(ctx, mock.Anything).Return(nil)

	updated, err := service.AttachImage(ctx, posterID, itemID, "image/jpeg", 128, strings.NewReader("jpegdata"))

	require.NoError(t, err)
	assert.Equal(t, []string{"existing.png", "https://cdn.example.edu/media/new.jpg"}, updated.ImageURLs)
}

func TestItemService_ItemPosterQR_RendersPNG(t *testing.T) {
	service, txManager, repoFactory, itemRepo, _, _, _, qrcodeService, _ := createTestItemService(t)

	ctx := context.Background()
	itemID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewItemRepository().Return(itemRepo)
	itemRepo.EXPECT().FindItemByID(ctx, itemID).
		Return(&entity.Item{ID: itemID, Status: entity.ItemStatusApproved}, nil)
	qrcodeService.EXPECT().GenerateItemQR(itemID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := service.ItemPosterQR(ctx, itemID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestItemService_NearbyItems_FiltersAndSortsByDistance(t *testing.T) {
	service, txManager, repoFactory, itemRepo, _, _, _, _, _ := createTestItemService(t)

	ctx := context.Background()
	universityID := uuid.New()

	// Origin is the main library; one item ~111m south, one ~222m south,
	// one far across town.
	near := &entity.Item{ID: uuid.New(), Latitude: float64Ptr(25.018), Longitude: float64Ptr(121.54)}
	midway := &entity.Item{ID: uuid.New(), Latitude: float64Ptr(25.018 - 0.001), Longitude: float64Ptr(121.54)}
	far := &entity.Item{ID: uuid.New(), Latitude: float64Ptr(25.1), Longitude: float64Ptr(121.6)}
	unpinned := &entity.Item{ID: uuid.New()}

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewItemRepository().Return(itemRepo)
	itemRepo.EXPECT().ListItemsWithLocation(ctx, universityID, mock.Anything).
		Return([]*entity.Item{near, far, midway, unpinned}, nil)

	nearby, err := service.NearbyItems(ctx, universityID, 25.019, 121.54, 500)

	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, near.ID, nearby[0].Item.ID)
	assert.Equal(t, midway.ID, nearby[1].Item.ID)
	assert.Less(t, nearby[0].DistanceMeters, nearby[1].DistanceMeters)
}

func TestItemService_MarkRecovered_NotifiesPoster(t *testing.T) {
	service, txManager, repoFactory, itemRepo, _, _, _, _, notifier := createTestItemService(t)

	ctx := context.Background()
	posterID := uuid.New()
	itemID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewItemRepository().Return(itemRepo)
	itemRepo.EXPECT().FindItemByID(ctx, itemID).
		Return(&entity.Item{ID: itemID, PosterID: posterID, Status: entity.ItemStatusApproved}, nil)
	itemRepo.EXPECT().UpdateItemStatus(ctx, itemID, entity.ItemStatusRecovered).Return(nil)
	notifier.EXPECT().NotifyItemRecovered(ctx, mock.Anything).Return(nil)

	item, err := service.MarkRecovered(ctx, posterID, itemID)

	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusRecovered, item.Status)
}
