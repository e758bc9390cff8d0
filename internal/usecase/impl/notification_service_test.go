package impl

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

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

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockRepositoryFactory,
	*mockRepo.MockNotificationRepository,
	*mockRepo.MockProfileRepository,
	*mockRepo.MockDeviceRepository,
	*mockSvc.MockEventPublisher,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewNotificationService(txManager, deviceRepo, eventPublisher, nil, logger)

	return service, txManager, repoFactory, notificationRepo, profileRepo, deviceRepo, eventPublisher
}

func TestNotificationService_Send_WithExplicitUniversity(t *testing.T) {
	service, txManager, repoFactory, notificationRepo, _, deviceRepo, eventPublisher := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	universityID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewNotificationRepository().Return(notificationRepo)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	eventPublisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)
	deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, recipientID).Return(nil, nil)

	notification, err := service.Send(ctx, usecase.SendNotificationInput{
		RecipientID:  recipientID,
		UniversityID: universityID,
		Message:      "Your post was approved",
		LinkTo:       "/items/42",
	})

	require.NoError(t, err)
	assert.Equal(t, universityID, notification.UniversityID)
	assert.Equal(t, entity.NotificationStatusUnread, notification.Status)
}

func TestNotificationService_Send_ResolvesUniversityFromProfile(t *testing.T) {
	service, txManager, repoFactory, notificationRepo, profileRepo, deviceRepo, eventPublisher := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	universityID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(ctx, recipientID).
		Return(&entity.Profile{UserID: recipientID, UniversityID: &universityID}, nil)
	repoFactory.EXPECT().NewNotificationRepository().Return(notificationRepo)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	eventPublisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)
	deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, recipientID).Return(nil, nil)

	notification, err := service.Send(ctx, usecase.SendNotificationInput{
		RecipientID: recipientID,
		Message:     "hello",
	})

	require.NoError(t, err)
	assert.Equal(t, universityID, notification.UniversityID)
}

func TestNotificationService_Send_AbortsWhenUniversityUnresolvable(t *testing.T) {
	service, txManager, repoFactory, _, profileRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(ctx, recipientID).
		Return(&entity.Profile{UserID: recipientID, UniversityID: nil}, nil)

	// No row is written, no event published, no push attempted.
	notification, err := service.Send(ctx, usecase.SendNotificationInput{
		RecipientID: recipientID,
		Message:     "orphan",
	})

	require.Error(t, err)
	assert.Nil(t, notification)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUniversityNotResolved.ErrorCode(), appErr.ErrorCode())
}

func TestNotificationService_Send_AbortsWhenProfileMissing(t *testing.T) {
	service, txManager, repoFactory, _, profileRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(ctx, recipientID).
		Return(nil, repository.ErrProfileNotFound)

	_, err := service.Send(ctx, usecase.SendNotificationInput{
		RecipientID: recipientID,
		Message:     "ghost",
	})

	require.Error(t, err)
}

func TestNotificationService_Send_PublishFailureDoesNotFailSend(t *testing.T) {
	service, txManager, repoFactory, notificationRepo, _, deviceRepo, eventPublisher := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewNotificationRepository().Return(notificationRepo)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	eventPublisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).
		Return(errors.New("broker unavailable"))
	deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, recipientID).Return(nil, nil)

	notification, err := service.Send(ctx, usecase.SendNotificationInput{
		RecipientID:  recipientID,
		UniversityID: uuid.New(),
		Message:      "stored anyway",
	})

	require.NoError(t, err)
	assert.NotNil(t, notification)
}

func TestNotificationService_NotifyAdminsNewPost_AllDeliveriesSettle(t *testing.T) {
	service, txManager, repoFactory, notificationRepo, profileRepo, deviceRepo, eventPublisher := createTestNotificationService(t)

	ctx := context.Background()
	universityID := uuid.New()
	item := &entity.Item{
		ID:           uuid.New(),
		UniversityID: universityID,
		Kind:         entity.ItemKindFound,
		Title:        "Blue backpack",
	}

	admins := []*entity.AdminContact{
		{UserID: uuid.New(), UniversityID: universityID},
		{UserID: uuid.New(), UniversityID: universityID},
		{UserID: uuid.New(), UniversityID: universityID},
	}

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindAdminsByUniversity(ctx, universityID).Return(admins, nil)

	var created atomic.Int64

	repoFactory.EXPECT().NewNotificationRepository().Return(notificationRepo)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).RunAndReturn(
		func(context.Context, *entity.Notification) error {
			created.Add(1)

			return nil
		})
	eventPublisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)
	deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, mock.Anything).Return(nil, nil)

	err := service.NotifyAdminsNewPost(ctx, item)

	require.NoError(t, err)
	assert.Equal(t, int64(len(admins)), created.Load())
}

func TestNotificationService_NotifyAdminsNewPost_PartialFailuresDoNotAbort(t *testing.T) {
	service, txManager, repoFactory, notificationRepo, profileRepo, deviceRepo, eventPublisher := createTestNotificationService(t)

	ctx := context.Background()
	universityID := uuid.New()
	item := &entity.Item{ID: uuid.New(), UniversityID: universityID, Title: "Keys"}

	brokenAdmin := uuid.New()
	admins := []*entity.AdminContact{
		{UserID: brokenAdmin, UniversityID: universityID},
		{UserID: uuid.New(), UniversityID: universityID},
	}

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindAdminsByUniversity(ctx, universityID).Return(admins, nil)

	repoFactory.EXPECT().NewNotificationRepository().Return(notificationRepo)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).RunAndReturn(
		func(_ context.Context, notification *entity.Notification) error {
			if notification.RecipientID == brokenAdmin {
				return errors.New("constraint violation")
			}

			return nil
		})
	eventPublisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)
	deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, mock.Anything).Return(nil, nil)

	// One broken recipient must not fail the fan-out.
	err := service.NotifyAdminsNewPost(ctx, item)

	require.NoError(t, err)
}

func TestNotificationService_NotifyAdminsNewPost_NoAdmins(t *testing.T) {
	service, txManager, repoFactory, _, profileRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	universityID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindAdminsByUniversity(ctx, universityID).
		Return([]*entity.AdminContact{}, nil)

	err := service.NotifyAdminsNewPost(ctx, &entity.Item{ID: uuid.New(), UniversityID: universityID})

	require.NoError(t, err)
}

func TestNotificationService_NotifyAdminsNewPost_ListingFailureReturnsError(t *testing.T) {
	service, txManager, repoFactory, _, profileRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	universityID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindAdminsByUniversity(ctx, universityID).
		Return(nil, errors.New("db down"))

	err := service.NotifyAdminsNewPost(ctx, &entity.Item{ID: uuid.New(), UniversityID: universityID})

	require.Error(t, err)
}

func TestNotificationService_MarkRead_RejectsForeignNotification(t *testing.T) {
	service, txManager, repoFactory, notificationRepo, _, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	notificationID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewNotificationRepository().Return(notificationRepo)
	notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).
		Return(&entity.Notification{ID: notificationID, RecipientID: uuid.New()}, nil)

	err := service.MarkRead(ctx, recipientID, notificationID)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrNotificationOwnershipViolation.ErrorCode(), appErr.ErrorCode())
}

func TestNotificationService_MarkAllRead_ReturnsAffectedCount(t *testing.T) {
	service, txManager, repoFactory, notificationRepo, _, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewNotificationRepository().Return(notificationRepo)
	notificationRepo.EXPECT().MarkAllRead(ctx, recipientID).Return(int64(7), nil)

	updated, err := service.MarkAllRead(ctx, recipientID)

	require.NoError(t, err)
	assert.Equal(t, int64(7), updated)
}

func TestNotificationService_PushBadge_PrunesInvalidTokens(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	pushService := mockSvc.NewMockPushService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewNotificationService(txManager, deviceRepo, eventPublisher, pushService, logger)

	ctx := context.Background()
	recipientID := uuid.New()
	universityID := uuid.New()

	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewNotificationRepository().Return(notificationRepo)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	eventPublisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)

	deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, recipientID).Return([]*entity.UserDevice{
		{ID: uuid.New(), UserID: recipientID, FCMToken: "live-token"},
		{ID: uuid.New(), UserID: recipientID, FCMToken: "stale-token"},
	}, nil)
	notificationRepo.EXPECT().CountUnreadByRecipient(ctx, recipientID).Return(3, nil)

	pushService.EXPECT().
		SendBatchPush(ctx, []string{"live-token", "stale-token"}, "CampusTrace", "ping", mock.Anything).
		Return(1, 1, []string{"stale-token"}, nil)
	deviceRepo.EXPECT().DeactivateDevicesByTokens(ctx, []string{"stale-token"}).Return(nil)

	_, err := service.Send(ctx, usecase.SendNotificationInput{
		RecipientID:  recipientID,
		UniversityID: universityID,
		Message:      "ping",
	})

	require.NoError(t, err)
}
