package postgres

import (
	"context"
	"time"

	"campustrace/internal/domain/entity"
	domainerrors "campustrace/internal/domain/errors"
	"campustrace/internal/domain/repository"
	"campustrace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// authRepository implements the repository.AuthRepository interface.
type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{
		db: db,
	}
}

// CreateAuthentication persists a new credential record.
func (repo *authRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	authM := fromAuthDomain(auth)

	if err := repo.db.WithContext(ctx).Create(authM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("credentials already exist for this email")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create authentication")
	}

	auth.ID = authM.ID
	auth.CreatedAt = authM.CreatedAt
	auth.UpdatedAt = authM.UpdatedAt

	return nil
}

// FindAuthenticationByEmail retrieves a credential record by email.
func (repo *authRepository) FindAuthenticationByEmail(ctx context.Context, email string) (*entity.Authentication, error) {
	var authM model.AuthenticationModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&authM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthNotFound
		}

		return nil, errors.Wrap(err, "failed to find authentication by email")
	}

	return toAuthDomain(&authM), nil
}

// FindAuthenticationByUserID retrieves a credential record by user ID.
func (repo *authRepository) FindAuthenticationByUserID(ctx context.Context, userID uuid.UUID) (*entity.Authentication, error) {
	var authM model.AuthenticationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&authM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthNotFound
		}

		return nil, errors.Wrap(err, "failed to find authentication by user ID")
	}

	return toAuthDomain(&authM), nil
}

// UpdatePasswordHash replaces the stored password hash for a user.
func (repo *authRepository) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AuthenticationModel{}).
		Where("user_id = ?", userID).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAuthNotFound
	}

	return nil
}

// CreateMagicLink persists a new single-use sign-in link.
func (repo *authRepository) CreateMagicLink(ctx context.Context, link *entity.MagicLink) error {
	linkM := fromMagicLinkDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create magic link")
	}

	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt

	return nil
}

// FindMagicLinkByCodeHash retrieves a magic link by its code hash.
func (repo *authRepository) FindMagicLinkByCodeHash(ctx context.Context, codeHash string) (*entity.MagicLink, error) {
	var linkM model.MagicLinkModel

	if err := repo.db.WithContext(ctx).
		Where("code_hash = ?", codeHash).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMagicLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find magic link by code hash")
	}

	return toMagicLinkDomain(&linkM), nil
}

// ConsumeMagicLink marks a magic link as used. The consumed_at guard makes
// consumption atomic, so a code can never be exchanged twice.
func (repo *authRepository) ConsumeMagicLink(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MagicLinkModel{}).
		Where("id = ? AND consumed_at IS NULL", id).
		Update("consumed_at", time.Now())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume magic link")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMagicLinkNotFound
	}

	return nil
}

// DeleteExpiredMagicLinks removes links past their expiry.
func (repo *authRepository) DeleteExpiredMagicLinks(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.MagicLinkModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired magic links")
	}

	return result.RowsAffected, nil
}

// fromAuthDomain converts a domain entity to its persistence model.
func fromAuthDomain(auth *entity.Authentication) *model.AuthenticationModel {
	return &model.AuthenticationModel{
		ID:           auth.ID,
		UserID:       auth.UserID,
		Email:        auth.Email,
		PasswordHash: auth.PasswordHash,
		CreatedAt:    auth.CreatedAt,
		UpdatedAt:    auth.UpdatedAt,
	}
}

// toAuthDomain converts a persistence model to its domain entity.
func toAuthDomain(authM *model.AuthenticationModel) *entity.Authentication {
	return &entity.Authentication{
		ID:           authM.ID,
		UserID:       authM.UserID,
		Email:        authM.Email,
		PasswordHash: authM.PasswordHash,
		CreatedAt:    authM.CreatedAt,
		UpdatedAt:    authM.UpdatedAt,
	}
}

// fromMagicLinkDomain converts a domain entity to its persistence model.
func fromMagicLinkDomain(link *entity.MagicLink) *model.MagicLinkModel {
	return &model.MagicLinkModel{
		ID:         link.ID,
		Email:      link.Email,
		CodeHash:   link.CodeHash,
		ExpiresAt:  link.ExpiresAt,
		ConsumedAt: link.ConsumedAt,
		CreatedAt:  link.CreatedAt,
	}
}

// toMagicLinkDomain converts a persistence model to its domain entity.
func toMagicLinkDomain(linkM *model.MagicLinkModel) *entity.MagicLink {
	return &entity.MagicLink{
		ID:         linkM.ID,
		Email:      linkM.Email,
		CodeHash:   linkM.CodeHash,
		ExpiresAt:  linkM.ExpiresAt,
		ConsumedAt: linkM.ConsumedAt,
		CreatedAt:  linkM.CreatedAt,
	}
}
