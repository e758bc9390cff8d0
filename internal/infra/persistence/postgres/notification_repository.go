package postgres

import (
	"context"

	"campustrace/internal/domain/entity"
	domainerrors "campustrace/internal/domain/errors"
	"campustrace/internal/domain/repository"
	"campustrace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("invalid recipient or university reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// FindNotificationsByRecipient retrieves notifications for a recipient, newest first.
func (repo *notificationRepository) FindNotificationsByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	query := repo.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var notificationModels []*model.NotificationModel
	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by recipient")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// CountUnreadByRecipient returns the number of unread notifications for a recipient.
func (repo *notificationRepository) CountUnreadByRecipient(ctx context.Context, recipientID uuid.UUID) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND status = ?", recipientID, string(entity.NotificationStatusUnread)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return int(count), nil
}

// MarkRead marks a single notification as read.
func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update("status", string(entity.NotificationStatusRead))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark notification read")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead marks every unread notification of a recipient as read.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND status = ?", recipientID, string(entity.NotificationStatusUnread)).
		Update("status", string(entity.NotificationStatusRead))
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark all notifications read")
	}

	return result.RowsAffected, nil
}

// fromNotificationDomain converts a domain entity to its persistence model.
func fromNotificationDomain(notification *entity.Notification) *model.NotificationModel {
	return &model.NotificationModel{
		ID:           notification.ID,
		RecipientID:  notification.RecipientID,
		UniversityID: notification.UniversityID,
		Message:      notification.Message,
		LinkTo:       notification.LinkTo,
		Status:       string(notification.Status),
		CreatedAt:    notification.CreatedAt,
	}
}

// toNotificationDomain converts a persistence model to its domain entity.
func toNotificationDomain(notificationM *model.NotificationModel) *entity.Notification {
	return &entity.Notification{
		ID:           notificationM.ID,
		RecipientID:  notificationM.RecipientID,
		UniversityID: notificationM.UniversityID,
		Message:      notificationM.Message,
		LinkTo:       notificationM.LinkTo,
		Status:       entity.NotificationStatus(notificationM.Status),
		CreatedAt:    notificationM.CreatedAt,
	}
}
