package repository

import (
	"context"

	"campustrace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device for a user.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	// FindActiveDevicesByUser retrieves all active devices for a specific user.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindActiveDevicesByUsers retrieves all active devices for a set of users
	// in one query. Used for push fan-out.
	FindActiveDevicesByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeactivateDevice marks a device as inactive so it no longer receives pushes.
	DeactivateDevice(ctx context.Context, id uuid.UUID) error

	// DeactivateDevicesByTokens marks all devices holding any of the given FCM
	// tokens as inactive. Used to prune tokens the push provider rejected.
	DeactivateDevicesByTokens(ctx context.Context, tokens []string) error
}
