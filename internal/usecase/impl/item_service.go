package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"campustrace/config"
	deliverycontext "campustrace/internal/delivery/context"
	"campustrace/internal/domain/entity"
	domainerrors "campustrace/internal/domain/errors"
	"campustrace/internal/domain/repository"
	"campustrace/internal/domain/service"
	"campustrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

const (
	defaultNearbyRadiusMeters = 500.0
	// nearbyScanLimit bounds how many located items one nearby query loads.
	nearbyScanLimit = 500
)

// itemService implements the ItemUsecase interface.
type itemService struct {
	txManager      repository.TransactionManager
	storageService service.StorageService
	qrcodeService  service.QRCodeService
	notifier       usecase.NotificationUsecase
	logger         *slog.Logger
	nearbyRadius   float64
	maxImageBytes  int64
}

// NewItemService is the constructor for itemService.
func NewItemService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	storageService service.StorageService,
	qrcodeService service.QRCodeService,
	notifier usecase.NotificationUsecase,
	logger *slog.Logger,
) usecase.ItemUsecase {
	nearbyRadius := defaultNearbyRadiusMeters
	var maxImageBytes int64
	if cfg.Items != nil {
		if cfg.Items.NearbyRadiusMeters > 0 {
			nearbyRadius = cfg.Items.NearbyRadiusMeters
		}
		maxImageBytes = cfg.Items.MaxImageBytes
	}

	return &itemService{
		txManager:      txManager,
		storageService: storageService,
		qrcodeService:  qrcodeService,
		notifier:       notifier,
		logger:         logger,
		nearbyRadius:   nearbyRadius,
		maxImageBytes:  maxImageBytes,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *itemService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateItem creates a post in the poster's university. Whether it starts
// pending or approved depends on the university's auto-approve setting.
func (srv *itemService) CreateItem(ctx context.Context, input usecase.CreateItemInput) (*entity.Item, error) {
	if !input.Kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown item kind")
	}

	item := &entity.Item{
		PosterID:     input.PosterID,
		Kind:         input.Kind,
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		LocationName: input.LocationName,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		OccurredAt:   input.OccurredAt,
		CreatedAt:    time.Now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := repoFactory.NewProfileRepository().FindProfileByUserID(ctx, input.PosterID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage("poster has no profile")
			}

			return errors.Wrap(err, "failed to load poster profile")
		}
		if !profile.HasUniversity() {
			return domainerrors.ErrUniversityNotResolved.WrapMessage("poster has no university")
		}
		item.UniversityID = *profile.UniversityID

		university, err := repoFactory.NewUniversityRepository().FindUniversityByID(ctx, item.UniversityID)
		if err != nil {
			return errors.Wrap(err, "failed to load university")
		}

		item.Status = entity.ItemStatusPending
		if university.AutoApprovePosts {
			item.Status = entity.ItemStatusApproved
		}

		return repoFactory.NewItemRepository().CreateItem(ctx, item)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create item",
			slog.Any("error", err),
			slog.Any("poster_id", input.PosterID),
		)

		return nil, err
	}

	if item.Status == entity.ItemStatusPending {
		if err := srv.notifier.NotifyAdminsNewPost(ctx, item); err != nil {
			srv.log(ctx).Error("Failed to notify admins of new post",
				slog.Any("error", err),
				slog.Any("item_id", item.ID),
			)
		}
	}

	return item, nil
}

// GetItem retrieves a single item.
func (srv *itemService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var item *entity.Item

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewItemRepository().FindItemByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrItemNotFound) {
				return domainerrors.ErrItemNotFound.WrapMessage("item does not exist")
			}

			return errors.Wrap(err, "failed to find item")
		}
		item = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// ListItems retrieves items of a university matching the filter.
func (srv *itemService) ListItems(ctx context.Context, universityID uuid.UUID, filter repository.ItemFilter, limit, offset int) ([]*entity.Item, error) {
	var items []*entity.Item

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewItemRepository().ListItemsByUniversity(ctx, universityID, filter, limit, offset)
		if err != nil {
			return errors.Wrap(err, "failed to list items")
		}
		items = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

// ListMyItems retrieves the requester's own posts.
func (srv *itemService) ListMyItems(ctx context.Context, posterID uuid.UUID, limit, offset int) ([]*entity.Item, error) {
	var items []*entity.Item

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewItemRepository().ListItemsByPoster(ctx, posterID, limit, offset)
		if err != nil {
			return errors.Wrap(err, "failed to list own items")
		}
		items = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

// UpdateItem updates a post. Only the poster may update it.
func (srv *itemService) UpdateItem(ctx context.Context, posterID, itemID uuid.UUID, input usecase.UpdateItemInput) (*entity.Item, error) {
	var item *entity.Item

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.NewItemRepository()

		found, err := srv.ownedItem(ctx, itemRepo, posterID, itemID)
		if err != nil {
			return err
		}

		found.Title = input.Title
		found.Description = input.Description
		found.Category = input.Category
		found.LocationName = input.LocationName
		found.Latitude = input.Latitude
		found.Longitude = input.Longitude
		found.OccurredAt = input.OccurredAt

		if err := itemRepo.UpdateItem(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update item")
		}
		item = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteItem removes a post. Only the poster may delete it.
func (srv *itemService) DeleteItem(ctx context.Context, posterID, itemID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.NewItemRepository()

		if _, err := srv.ownedItem(ctx, itemRepo, posterID, itemID); err != nil {
			return err
		}

		return itemRepo.DeleteItem(ctx, itemID)
	})
}

// AttachImage uploads an image and appends its URL to the item.
func (srv *itemService) AttachImage(ctx context.Context, posterID, itemID uuid.UUID, contentType string, size int64, r io.Reader) (*entity.Item, error) {
	if srv.maxImageBytes > 0 && size > srv.maxImageBytes {
		return nil, domainerrors.ErrImageTooLarge.WrapMessage(
			fmt.Sprintf("image exceeds %d bytes", srv.maxImageBytes))
	}

	key := fmt.Sprintf("items/%s/%s", itemID, uuid.New())

	url, err := srv.storageService.Upload(ctx, key, contentType, io.LimitReader(r, size))
	if err != nil {
		srv.log(ctx).Error("Failed to upload item image",
			slog.Any("error", err),
			slog.Any("item_id", itemID),
		)

		return nil, errors.Wrap(err, "failed to upload image")
	}

	var item *entity.Item

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.NewItemRepository()

		found, err := srv.ownedItem(ctx, itemRepo, posterID, itemID)
		if err != nil {
			return err
		}

		found.ImageURLs = append(found.ImageURLs, url)
		if err := itemRepo.UpdateItem(ctx, found); err != nil {
			return errors.Wrap(err, "failed to attach image")
		}
		item = found

		return nil
	})
	if err != nil {
		// Orphaned blobs cost little; try to clean up anyway.
		if delErr := srv.storageService.Delete(ctx, key); delErr != nil {
			srv.log(ctx).Warn("Failed to delete orphaned image", slog.Any("error", delErr))
		}

		return nil, err
	}

	return item, nil
}

// ItemPosterQR renders a QR code PNG pointing at the item's public page.
func (srv *itemService) ItemPosterQR(ctx context.Context, itemID uuid.UUID) ([]byte, error) {
	// Confirm the item exists so we never hand out codes for dangling IDs.
	if _, err := srv.GetItem(ctx, itemID); err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateItemQR(itemID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate item QR code")
	}

	return png, nil
}

// NearbyItems returns approved items within radiusMeters of the given point,
// closest first.
func (srv *itemService) NearbyItems(ctx context.Context, universityID uuid.UUID, lat, lon, radiusMeters float64) ([]*entity.NearbyItem, error) {
	if radiusMeters <= 0 {
		radiusMeters = srv.nearbyRadius
	}

	var located []*entity.Item

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewItemRepository().ListItemsWithLocation(ctx, universityID, nearbyScanLimit)
		if err != nil {
			return errors.Wrap(err, "failed to list located items")
		}
		located = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	origin := orb.Point{lon, lat}
	nearby := make([]*entity.NearbyItem, 0, len(located))

	for _, item := range located {
		if !item.HasLocation() {
			continue
		}

		distance := geo.Distance(origin, orb.Point{*item.Longitude, *item.Latitude})
		if distance > radiusMeters {
			continue
		}

		nearby = append(nearby, &entity.NearbyItem{
			Item:           item,
			DistanceMeters: distance,
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})

	return nearby, nil
}

// MarkRecovered marks an item as returned to its owner. Only the poster may
// do this.
func (srv *itemService) MarkRecovered(ctx context.Context, posterID, itemID uuid.UUID) (*entity.Item, error) {
	var item *entity.Item

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.NewItemRepository()

		found, err := srv.ownedItem(ctx, itemRepo, posterID, itemID)
		if err != nil {
			return err
		}

		if err := itemRepo.UpdateItemStatus(ctx, itemID, entity.ItemStatusRecovered); err != nil {
			return errors.Wrap(err, "failed to mark item recovered")
		}
		found.Status = entity.ItemStatusRecovered
		item = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := srv.notifier.NotifyItemRecovered(ctx, item); err != nil {
		srv.log(ctx).Error("Failed to notify item recovery",
			slog.Any("error", err),
			slog.Any("item_id", item.ID),
		)
	}

	return item, nil
}

// ownedItem loads an item and enforces that posterID created it.
func (srv *itemService) ownedItem(ctx context.Context, itemRepo repository.ItemRepository, posterID, itemID uuid.UUID) (*entity.Item, error) {
	item, err := itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound.WrapMessage("item does not exist")
		}

		return nil, errors.Wrap(err, "failed to find item")
	}
	if item.PosterID != posterID {
		return nil, domainerrors.ErrItemOwnershipViolation.WrapMessage("item belongs to another user")
	}

	return item, nil
}
