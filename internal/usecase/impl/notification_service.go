package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	deliverycontext "campustrace/internal/delivery/context"
	"campustrace/internal/domain/entity"
	domainerrors "campustrace/internal/domain/errors"
	"campustrace/internal/domain/repository"
	"campustrace/internal/domain/service"
	"campustrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	txManager      repository.TransactionManager
	deviceRepo     repository.DeviceRepository
	eventPublisher service.EventPublisher
	pushService    service.PushService // may be nil when push is not configured
	logger         *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(
	txManager repository.TransactionManager,
	deviceRepo repository.DeviceRepository,
	eventPublisher service.EventPublisher,
	pushService service.PushService,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		txManager:      txManager,
		deviceRepo:     deviceRepo,
		eventPublisher: eventPublisher,
		pushService:    pushService,
		logger:         logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Send persists a notification for a single recipient and publishes a
// notification event.
func (srv *notificationService) Send(ctx context.Context, input usecase.SendNotificationInput) (*entity.Notification, error) {
	notification := &entity.Notification{
		RecipientID:  input.RecipientID,
		UniversityID: input.UniversityID,
		Message:      input.Message,
		LinkTo:       input.LinkTo,
		Status:       entity.NotificationStatusUnread,
		CreatedAt:    time.Now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// Resolve the tenant from the recipient's profile when the caller
		// did not supply one. An unresolvable tenant aborts the send: a
		// notification without a university would be invisible to its
		// recipient's feed.
		if notification.UniversityID == uuid.Nil {
			profile, err := repoFactory.NewProfileRepository().FindProfileByUserID(ctx, input.RecipientID)
			if err != nil {
				if errors.Is(err, repository.ErrProfileNotFound) {
					return domainerrors.ErrUniversityNotResolved.WrapMessage("recipient has no profile")
				}

				return errors.Wrap(err, "failed to load recipient profile")
			}
			if !profile.HasUniversity() {
				return domainerrors.ErrUniversityNotResolved.WrapMessage("recipient has no university")
			}
			notification.UniversityID = *profile.UniversityID
		}

		return repoFactory.NewNotificationRepository().CreateNotification(ctx, notification)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to send notification",
			slog.Any("error", err),
			slog.Any("recipient_id", input.RecipientID),
		)

		return nil, err
	}

	// The row is the source of truth; event publishing and badge pushes are
	// best effort on top of it.
	srv.publishEvent(ctx, notification)
	srv.pushBadge(ctx, notification)

	return notification, nil
}

// NotifyAdminsNewPost fans a review notification out to every admin of the
// item's university. Deliveries run concurrently and all of them are waited
// on; individual failures are logged and counted, never returned.
func (srv *notificationService) NotifyAdminsNewPost(ctx context.Context, item *entity.Item) error {
	var admins []*entity.AdminContact

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewProfileRepository().FindAdminsByUniversity(ctx, item.UniversityID)
		if err != nil {
			return errors.Wrap(err, "failed to find admins")
		}
		admins = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list admins for new post fan-out",
			slog.Any("error", err),
			slog.Any("item_id", item.ID),
		)

		return err
	}

	if len(admins) == 0 {
		srv.log(ctx).Debug("No admins to notify", slog.Any("university_id", item.UniversityID))

		return nil
	}

	message := fmt.Sprintf("New %s item awaiting review: %s", item.Kind, item.Title)
	linkTo := "/admin/review/" + item.ID.String()

	var wg sync.WaitGroup
	var failed int64
	var failedMu sync.Mutex

	for _, admin := range admins {
		wg.Add(1)
		go func(recipient *entity.AdminContact) {
			defer wg.Done()

			_, err := srv.Send(ctx, usecase.SendNotificationInput{
				RecipientID:  recipient.UserID,
				UniversityID: item.UniversityID,
				Message:      message,
				LinkTo:       linkTo,
			})
			if err != nil {
				failedMu.Lock()
				failed++
				failedMu.Unlock()
				srv.log(ctx).Error("Admin notification failed",
					slog.Any("error", err),
					slog.Any("admin_id", recipient.UserID),
					slog.Any("item_id", item.ID),
				)
			}
		}(admin)
	}
	wg.Wait()

	srv.log(ctx).Info("Admin fan-out complete",
		slog.Any("item_id", item.ID),
		slog.Int("total", len(admins)),
		slog.Int64("failed", failed),
	)

	return nil
}

// NotifyPostStatusUpdate tells a poster their item was approved or rejected.
func (srv *notificationService) NotifyPostStatusUpdate(ctx context.Context, item *entity.Item) error {
	_, err := srv.Send(ctx, usecase.SendNotificationInput{
		RecipientID:  item.PosterID,
		UniversityID: item.UniversityID,
		Message:      fmt.Sprintf("Your post %q was %s", item.Title, item.Status),
		LinkTo:       "/items/" + item.ID.String(),
	})

	return err
}

// NotifyNewClaim tells a poster someone claimed their item.
func (srv *notificationService) NotifyNewClaim(ctx context.Context, item *entity.Item, claim *entity.Claim) error {
	_, err := srv.Send(ctx, usecase.SendNotificationInput{
		RecipientID:  item.PosterID,
		UniversityID: item.UniversityID,
		Message:      fmt.Sprintf("Someone filed a claim on %q", item.Title),
		LinkTo:       "/items/" + item.ID.String() + "/claims/" + claim.ID.String(),
	})

	return err
}

// NotifyClaimStatusUpdate tells a claimant their claim was decided.
func (srv *notificationService) NotifyClaimStatusUpdate(ctx context.Context, item *entity.Item, claim *entity.Claim) error {
	_, err := srv.Send(ctx, usecase.SendNotificationInput{
		RecipientID:  claim.ClaimantID,
		UniversityID: item.UniversityID,
		Message:      fmt.Sprintf("Your claim on %q was %s", item.Title, claim.Status),
		LinkTo:       "/items/" + item.ID.String(),
	})

	return err
}

// NotifyItemRecovered tells a poster their item was marked recovered.
func (srv *notificationService) NotifyItemRecovered(ctx context.Context, item *entity.Item) error {
	_, err := srv.Send(ctx, usecase.SendNotificationInput{
		RecipientID:  item.PosterID,
		UniversityID: item.UniversityID,
		Message:      fmt.Sprintf("%q was marked as recovered", item.Title),
		LinkTo:       "/items/" + item.ID.String(),
	})

	return err
}

// ListNotifications retrieves a recipient's notifications, newest first.
func (srv *notificationService) ListNotifications(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	var notifications []*entity.Notification

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewNotificationRepository().FindNotificationsByRecipient(ctx, recipientID, limit, offset)
		if err != nil {
			return errors.Wrap(err, "failed to list notifications")
		}
		notifications = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

// UnreadCount returns the recipient's number of unread notifications.
func (srv *notificationService) UnreadCount(ctx context.Context, recipientID uuid.UUID) (int, error) {
	var count int

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewNotificationRepository().CountUnreadByRecipient(ctx, recipientID)
		if err != nil {
			return errors.Wrap(err, "failed to count unread notifications")
		}
		count = found

		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// MarkRead marks one notification as read. The recipient must own it.
func (srv *notificationService) MarkRead(ctx context.Context, recipientID, notificationID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		notificationRepo := repoFactory.NewNotificationRepository()

		notification, err := notificationRepo.FindNotificationByID(ctx, notificationID)
		if err != nil {
			if errors.Is(err, repository.ErrNotificationNotFound) {
				return domainerrors.ErrNotificationNotFound.WrapMessage("notification does not exist")
			}

			return errors.Wrap(err, "failed to find notification")
		}
		if notification.RecipientID != recipientID {
			return domainerrors.ErrNotificationOwnershipViolation.WrapMessage("notification belongs to another user")
		}

		return notificationRepo.MarkRead(ctx, notificationID)
	})
}

// MarkAllRead marks all of a recipient's notifications as read.
func (srv *notificationService) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	var updated int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		count, err := repoFactory.NewNotificationRepository().MarkAllRead(ctx, recipientID)
		if err != nil {
			return errors.Wrap(err, "failed to mark all read")
		}
		updated = count

		return nil
	})
	if err != nil {
		return 0, err
	}

	return updated, nil
}

// RegisterDevice stores an FCM token so the recipient gets badge pushes.
func (srv *notificationService) RegisterDevice(ctx context.Context, userID uuid.UUID, fcmToken, platform string) (*entity.UserDevice, error) {
	device := &entity.UserDevice{
		UserID:   userID,
		FCMToken: fcmToken,
		Platform: platform,
		IsActive: true,
	}

	if err := srv.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	return device, nil
}

// publishEvent emits the notification onto the event bus. Publish failures
// are logged, not returned: the row already exists.
func (srv *notificationService) publishEvent(ctx context.Context, notification *entity.Notification) {
	event := &entity.NotificationEvent{
		NotificationID: notification.ID,
		RecipientID:    notification.RecipientID,
		UniversityID:   notification.UniversityID,
		Message:        notification.Message,
		LinkTo:         notification.LinkTo,
		CreatedAt:      notification.CreatedAt,
	}

	if err := srv.eventPublisher.PublishNotificationEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish notification event",
			slog.Any("error", err),
			slog.Any("notification_id", notification.ID),
		)
	}
}

// pushBadge sends an unread-count push to the recipient's devices. Best
// effort: failures are logged and stale tokens are pruned.
func (srv *notificationService) pushBadge(ctx context.Context, notification *entity.Notification) {
	if srv.pushService == nil {
		return
	}

	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, notification.RecipientID)
	if err != nil {
		srv.log(ctx).Error("Failed to load devices for badge push", slog.Any("error", err))

		return
	}
	if len(devices) == 0 {
		return
	}

	unread, err := srv.UnreadCount(ctx, notification.RecipientID)
	if err != nil {
		srv.log(ctx).Error("Failed to count unread for badge push", slog.Any("error", err))

		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := map[string]string{
		"unread_count": strconv.Itoa(unread),
		"link_to":      notification.LinkTo,
	}

	_, _, invalidTokens, err := srv.pushService.SendBatchPush(ctx, tokens, "CampusTrace", notification.Message, data)
	if err != nil {
		srv.log(ctx).Error("Badge push failed", slog.Any("error", err))

		return
	}

	if len(invalidTokens) > 0 {
		if err := srv.deviceRepo.DeactivateDevicesByTokens(ctx, invalidTokens); err != nil {
			srv.log(ctx).Error("Failed to prune invalid device tokens", slog.Any("error", err))
		}
	}
}
