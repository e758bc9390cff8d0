package postgres

import (
	"context"
	"encoding/json"

	"campustrace/internal/domain/entity"
	domainerrors "campustrace/internal/domain/errors"
	"campustrace/internal/domain/repository"
	"campustrace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// itemRepository implements the repository.ItemRepository interface.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{
		db: db,
	}
}

// CreateItem persists a new item post.
func (repo *itemRepository) CreateItem(ctx context.Context, item *entity.Item) error {
	itemM, err := fromItemDomain(item)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUniversityNotFound.WrapMessage("invalid university or poster reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// FindItemByID retrieves an item by its unique ID.
func (repo *itemRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var itemM model.ItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item by ID")
	}

	return toItemDomain(&itemM)
}

// ListItemsByUniversity retrieves items within a university matching the filter.
func (repo *itemRepository) ListItemsByUniversity(ctx context.Context, universityID uuid.UUID, filter repository.ItemFilter, limit, offset int) ([]*entity.Item, error) {
	query := repo.db.WithContext(ctx).
		Where("university_id = ?", universityID).
		Order("created_at DESC")

	if filter.Kind != "" {
		query = query.Where("kind = ?", string(filter.Kind))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var itemModels []*model.ItemModel
	if err := query.Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list items by university")
	}

	return toItemDomains(itemModels)
}

// ListItemsByPoster retrieves items created by a specific user.
func (repo *itemRepository) ListItemsByPoster(ctx context.Context, posterID uuid.UUID, limit, offset int) ([]*entity.Item, error) {
	query := repo.db.WithContext(ctx).
		Where("poster_id = ?", posterID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var itemModels []*model.ItemModel
	if err := query.Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list items by poster")
	}

	return toItemDomains(itemModels)
}

// ListItemsWithLocation retrieves approved items of a university that carry
// pinned coordinates.
func (repo *itemRepository) ListItemsWithLocation(ctx context.Context, universityID uuid.UUID, limit int) ([]*entity.Item, error) {
	query := repo.db.WithContext(ctx).
		Where("university_id = ? AND status = ? AND latitude IS NOT NULL AND longitude IS NOT NULL",
			universityID, string(entity.ItemStatusApproved)).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	var itemModels []*model.ItemModel
	if err := query.Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list items with location")
	}

	return toItemDomains(itemModels)
}

// UpdateItem persists changes to an existing item.
func (repo *itemRepository) UpdateItem(ctx context.Context, item *entity.Item) error {
	itemM, err := fromItemDomain(item)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"title":         itemM.Title,
			"description":   itemM.Description,
			"category":      itemM.Category,
			"location_name": itemM.LocationName,
			"latitude":      itemM.Latitude,
			"longitude":     itemM.Longitude,
			"image_urls":    itemM.ImageURLs,
			"occurred_at":   itemM.OccurredAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// UpdateItemStatus updates only the moderation state of an item.
func (repo *itemRepository) UpdateItemStatus(ctx context.Context, id uuid.UUID, status entity.ItemStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update item status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// DeleteItem removes an item post.
func (repo *itemRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// fromItemDomain converts a domain entity to its persistence model.
func fromItemDomain(item *entity.Item) (*model.ItemModel, error) {
	imageURLs, err := json.Marshal(item.ImageURLs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode image URLs")
	}

	return &model.ItemModel{
		ID:           item.ID,
		UniversityID: item.UniversityID,
		PosterID:     item.PosterID,
		Kind:         string(item.Kind),
		Status:       string(item.Status),
		Title:        item.Title,
		Description:  item.Description,
		Category:     item.Category,
		LocationName: item.LocationName,
		Latitude:     item.Latitude,
		Longitude:    item.Longitude,
		ImageURLs:    imageURLs,
		OccurredAt:   item.OccurredAt,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}, nil
}

// toItemDomain converts a persistence model to its domain entity.
func toItemDomain(itemM *model.ItemModel) (*entity.Item, error) {
	var imageURLs []string
	if len(itemM.ImageURLs) > 0 {
		if err := json.Unmarshal(itemM.ImageURLs, &imageURLs); err != nil {
			return nil, errors.Wrap(err, "failed to decode image URLs")
		}
	}

	return &entity.Item{
		ID:           itemM.ID,
		UniversityID: itemM.UniversityID,
		PosterID:     itemM.PosterID,
		Kind:         entity.ItemKind(itemM.Kind),
		Status:       entity.ItemStatus(itemM.Status),
		Title:        itemM.Title,
		Description:  itemM.Description,
		Category:     itemM.Category,
		LocationName: itemM.LocationName,
		Latitude:     itemM.Latitude,
		Longitude:    itemM.Longitude,
		ImageURLs:    imageURLs,
		OccurredAt:   itemM.OccurredAt,
		CreatedAt:    itemM.CreatedAt,
		UpdatedAt:    itemM.UpdatedAt,
	}, nil
}

// toItemDomains converts a slice of persistence models to domain entities.
func toItemDomains(itemModels []*model.ItemModel) ([]*entity.Item, error) {
	items := make([]*entity.Item, 0, len(itemModels))
	for _, itemM := range itemModels {
		item, err := toItemDomain(itemM)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
