package repository

import (
	"context"
	"errors"

	"campustrace/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateNotification persists a new notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindNotificationsByRecipient retrieves notifications for a recipient,
	// newest first, with pagination.
	FindNotificationsByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// CountUnreadByRecipient returns the number of unread notifications for a recipient.
	CountUnreadByRecipient(ctx context.Context, recipientID uuid.UUID) (int, error)

	// MarkRead marks a single notification as read.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkAllRead marks every unread notification of a recipient as read and
	// returns the number of rows affected.
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error)
}
