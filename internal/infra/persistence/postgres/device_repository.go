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

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice persists a new device for a user.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindActiveDevicesByUser retrieves all active devices for a specific user.
func (repo *deviceRepository) FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	var deviceModels []*model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = true", userID).
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return toDeviceDomains(deviceModels), nil
}

// FindActiveDevicesByUsers retrieves all active devices for a set of users in one query.
func (repo *deviceRepository) FindActiveDevicesByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var deviceModels []*model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ? AND is_active = true", userIDs).
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by users")
	}

	return toDeviceDomains(deviceModels), nil
}

// UpdateFCMToken updates the FCM token for a specific device.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", deviceID).
		Update("fcm_token", fcmToken)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update FCM token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateDevice marks a device as inactive so it no longer receives pushes.
func (repo *deviceRepository) DeactivateDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateDevicesByTokens marks all devices holding any of the given FCM tokens as inactive.
func (repo *deviceRepository) DeactivateDevicesByTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("fcm_token IN ?", tokens).
		Update("is_active", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate devices by tokens")
	}

	return nil
}

// fromDeviceDomain converts a domain entity to its persistence model.
func fromDeviceDomain(device *entity.UserDevice) *model.UserDeviceModel {
	return &model.UserDeviceModel{
		ID:        device.ID,
		UserID:    device.UserID,
		FCMToken:  device.FCMToken,
		Platform:  device.Platform,
		IsActive:  device.IsActive,
		CreatedAt: device.CreatedAt,
		UpdatedAt: device.UpdatedAt,
	}
}

// toDeviceDomains converts a slice of persistence models to domain entities.
func toDeviceDomains(deviceModels []*model.UserDeviceModel) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, &entity.UserDevice{
			ID:        deviceM.ID,
			UserID:    deviceM.UserID,
			FCMToken:  deviceM.FCMToken,
			Platform:  deviceM.Platform,
			IsActive:  deviceM.IsActive,
			CreatedAt: deviceM.CreatedAt,
			UpdatedAt: deviceM.UpdatedAt,
		})
	}

	return devices
}
