package usecase

import (
	"context"
	"io"
	"time"

	"campustrace/internal/domain/entity"
	"campustrace/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateItemInput carries the data for a new item post.
type CreateItemInput struct {
	PosterID     uuid.UUID
	Kind         entity.ItemKind
	Title        string
	Description  string
	Category     string
	LocationName string
	Latitude     *float64
	Longitude    *float64
	OccurredAt   time.Time
}

// UpdateItemInput carries the mutable fields of an item post.
type UpdateItemInput struct {
	Title        string
	Description  string
	Category     string
	LocationName string
	Latitude     *float64
	Longitude    *float64
	OccurredAt   time.Time
}

// ItemUsecase defines the interface for item post use cases.
type ItemUsecase interface {
	// CreateItem creates a post in the poster's university. Whether it starts
	// pending or approved depends on the university's auto-approve setting.
	CreateItem(ctx context.Context, input CreateItemInput) (*entity.Item, error)

	// GetItem retrieves a single item.
	GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// ListItems retrieves items of a university matching the filter.
	ListItems(ctx context.Context, universityID uuid.UUID, filter repository.ItemFilter, limit, offset int) ([]*entity.Item, error)

	// ListMyItems retrieves the requester's own posts.
	ListMyItems(ctx context.Context, posterID uuid.UUID, limit, offset int) ([]*entity.Item, error)

	// UpdateItem updates a post. Only the poster may update it.
	UpdateItem(ctx context.Context, posterID, itemID uuid.UUID, input UpdateItemInput) (*entity.Item, error)

	// DeleteItem removes a post. Only the poster may delete it.
	DeleteItem(ctx context.Context, posterID, itemID uuid.UUID) error

	// AttachImage uploads an image and appends its URL to the item.
	AttachImage(ctx context.Context, posterID, itemID uuid.UUID, contentType string, size int64, r io.Reader) (*entity.Item, error)

	// ItemPosterQR renders a QR code PNG pointing at the item's public page.
	ItemPosterQR(ctx context.Context, itemID uuid.UUID) ([]byte, error)

	// NearbyItems returns approved items within radiusMeters of the given
	// point, closest first.
	NearbyItems(ctx context.Context, universityID uuid.UUID, lat, lon, radiusMeters float64) ([]*entity.NearbyItem, error)

	// MarkRecovered marks an item as returned to its owner. Only the poster
	// may do this.
	MarkRecovered(ctx context.Context, posterID, itemID uuid.UUID) (*entity.Item, error)
}
