package usecase

import (
	"context"

	"campustrace/internal/domain/entity"

	"github.com/google/uuid"
)

// SendNotificationInput carries the data for a single notification.
// UniversityID may be uuid.Nil, in which case the recipient's university is
// resolved from their profile.
type SendNotificationInput struct {
	RecipientID  uuid.UUID
	UniversityID uuid.UUID
	Message      string
	LinkTo       string
}

// NotificationUsecase defines the interface for notification use cases.
type NotificationUsecase interface {
	// Send persists a notification for a single recipient and publishes a
	// notification event. It fails when the university cannot be resolved.
	Send(ctx context.Context, input SendNotificationInput) (*entity.Notification, error)

	// NotifyAdminsNewPost fans a review notification out to every admin of
	// the item's university. Individual failures are logged and counted, not
	// returned: one broken recipient must not block the rest.
	NotifyAdminsNewPost(ctx context.Context, item *entity.Item) error

	// NotifyPostStatusUpdate tells a poster their item was approved or rejected.
	NotifyPostStatusUpdate(ctx context.Context, item *entity.Item) error

	// NotifyNewClaim tells a poster someone claimed their item.
	NotifyNewClaim(ctx context.Context, item *entity.Item, claim *entity.Claim) error

	// NotifyClaimStatusUpdate tells a claimant their claim was decided.
	NotifyClaimStatusUpdate(ctx context.Context, item *entity.Item, claim *entity.Claim) error

	// NotifyItemRecovered tells a poster their item was marked recovered.
	NotifyItemRecovered(ctx context.Context, item *entity.Item) error

	// ListNotifications retrieves a recipient's notifications, newest first.
	ListNotifications(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// UnreadCount returns the recipient's number of unread notifications.
	UnreadCount(ctx context.Context, recipientID uuid.UUID) (int, error)

	// MarkRead marks one notification as read. The recipient must own it.
	MarkRead(ctx context.Context, recipientID, notificationID uuid.UUID) error

	// MarkAllRead marks all of a recipient's notifications as read and
	// returns how many changed.
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error)

	// RegisterDevice stores an FCM token so the recipient gets badge pushes.
	RegisterDevice(ctx context.Context, userID uuid.UUID, fcmToken, platform string) (*entity.UserDevice, error)
}
