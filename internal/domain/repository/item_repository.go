package repository

import (
	"context"
	"errors"

	"campustrace/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for item persistence.
var (
	// ErrItemNotFound is returned when an item is not found.
	ErrItemNotFound = errors.New("item not found")
)

// ItemFilter narrows item listings. Zero values mean "no filter".
type ItemFilter struct {
	Kind     entity.ItemKind
	Status   entity.ItemStatus
	Category string
	// Query matches against title and description when non-empty.
	Query string
}

// ItemRepository defines the interface for item-related database operations.
type ItemRepository interface {
	// CreateItem persists a new item post.
	CreateItem(ctx context.Context, item *entity.Item) error

	// FindItemByID retrieves an item by its unique ID.
	FindItemByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// ListItemsByUniversity retrieves items within a university matching the
	// filter, newest first, with pagination.
	ListItemsByUniversity(ctx context.Context, universityID uuid.UUID, filter ItemFilter, limit, offset int) ([]*entity.Item, error)

	// ListItemsByPoster retrieves items created by a specific user.
	ListItemsByPoster(ctx context.Context, posterID uuid.UUID, limit, offset int) ([]*entity.Item, error)

	// ListItemsWithLocation retrieves approved items of a university that carry
	// pinned coordinates. Distance filtering happens in the use case layer.
	ListItemsWithLocation(ctx context.Context, universityID uuid.UUID, limit int) ([]*entity.Item, error)

	// UpdateItem persists changes to an existing item.
	UpdateItem(ctx context.Context, item *entity.Item) error

	// UpdateItemStatus updates only the moderation state of an item.
	UpdateItemStatus(ctx context.Context, id uuid.UUID, status entity.ItemStatus) error

	// DeleteItem removes an item post.
	DeleteItem(ctx context.Context, id uuid.UUID) error
}
