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

// claimRepository implements the repository.ClaimRepository interface.
type claimRepository struct {
	db *gorm.DB
}

// NewClaimRepository is the constructor for claimRepository.
func NewClaimRepository(db *gorm.DB) repository.ClaimRepository {
	return &claimRepository{
		db: db,
	}
}

// CreateClaim persists a new ownership claim.
func (repo *claimRepository) CreateClaim(ctx context.Context, claim *entity.Claim) error {
	claimM := fromClaimDomain(claim)

	if err := repo.db.WithContext(ctx).Create(claimM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrClaimAlreadyExists.WrapMessage("duplicate claim on item")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrItemNotFound.WrapMessage("invalid item or claimant reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create claim")
	}

	claim.ID = claimM.ID
	claim.CreatedAt = claimM.CreatedAt
	claim.UpdatedAt = claimM.UpdatedAt

	return nil
}

// FindClaimByID retrieves a claim by its unique ID.
func (repo *claimRepository) FindClaimByID(ctx context.Context, id uuid.UUID) (*entity.Claim, error) {
	var claimM model.ClaimModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&claimM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClaimNotFound
		}

		return nil, errors.Wrap(err, "failed to find claim by ID")
	}

	return toClaimDomain(&claimM), nil
}

// FindClaimByItemAndClaimant retrieves the claim a user filed on an item, if any.
func (repo *claimRepository) FindClaimByItemAndClaimant(ctx context.Context, itemID, claimantID uuid.UUID) (*entity.Claim, error) {
	var claimM model.ClaimModel

	if err := repo.db.WithContext(ctx).
		Where("item_id = ? AND claimant_id = ?", itemID, claimantID).
		First(&claimM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClaimNotFound
		}

		return nil, errors.Wrap(err, "failed to find claim by item and claimant")
	}

	return toClaimDomain(&claimM), nil
}

// ListClaimsByItem retrieves all claims filed against an item.
func (repo *claimRepository) ListClaimsByItem(ctx context.Context, itemID uuid.UUID) ([]*entity.Claim, error) {
	var claimModels []*model.ClaimModel

	if err := repo.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at ASC").
		Find(&claimModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list claims by item")
	}

	claims := make([]*entity.Claim, 0, len(claimModels))
	for _, claimM := range claimModels {
		claims = append(claims, toClaimDomain(claimM))
	}

	return claims, nil
}

// ListClaimsByClaimant retrieves claims filed by a user, newest first.
func (repo *claimRepository) ListClaimsByClaimant(ctx context.Context, claimantID uuid.UUID, limit, offset int) ([]*entity.Claim, error) {
	query := repo.db.WithContext(ctx).
		Where("claimant_id = ?", claimantID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var claimModels []*model.ClaimModel
	if err := query.Find(&claimModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list claims by claimant")
	}

	claims := make([]*entity.Claim, 0, len(claimModels))
	for _, claimM := range claimModels {
		claims = append(claims, toClaimDomain(claimM))
	}

	return claims, nil
}

// UpdateClaimStatus updates the state of a claim.
func (repo *claimRepository) UpdateClaimStatus(ctx context.Context, id uuid.UUID, status entity.ClaimStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ClaimModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update claim status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClaimNotFound
	}

	return nil
}

// fromClaimDomain converts a domain entity to its persistence model.
func fromClaimDomain(claim *entity.Claim) *model.ClaimModel {
	return &model.ClaimModel{
		ID:         claim.ID,
		ItemID:     claim.ItemID,
		ClaimantID: claim.ClaimantID,
		Status:     string(claim.Status),
		Evidence:   claim.Evidence,
		CreatedAt:  claim.CreatedAt,
		UpdatedAt:  claim.UpdatedAt,
	}
}

// toClaimDomain converts a persistence model to its domain entity.
func toClaimDomain(claimM *model.ClaimModel) *entity.Claim {
	return &entity.Claim{
		ID:         claimM.ID,
		ItemID:     claimM.ItemID,
		ClaimantID: claimM.ClaimantID,
		Status:     entity.ClaimStatus(claimM.Status),
		Evidence:   claimM.Evidence,
		CreatedAt:  claimM.CreatedAt,
		UpdatedAt:  claimM.UpdatedAt,
	}
}
