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

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// CreateProfile persists a new profile.
func (repo *profileRepository) CreateProfile(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	// Update the entity with generated values
	profile.UserID = profileM.UserID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindProfileByUserID retrieves a profile by its owning user ID.
func (repo *profileRepository) FindProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user ID")
	}

	return toProfileDomain(&profileM), nil
}

// FindProfileByEmail retrieves a profile by email address.
func (repo *profileRepository) FindProfileByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by email")
	}

	return toProfileDomain(&profileM), nil
}

// UpdateProfile persists changes to an existing profile.
func (repo *profileRepository) UpdateProfile(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]any{
			"full_name":     profileM.FullName,
			"avatar_url":    profileM.AvatarURL,
			"university_id": profileM.UniversityID,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// SetBanned updates the banned flag of a profile.
func (repo *profileRepository) SetBanned(ctx context.Context, userID uuid.UUID, banned bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", userID).
		Update("is_banned", banned)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update banned flag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// SetRole updates the role of a profile.
func (repo *profileRepository) SetRole(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", userID).
		Update("role", string(role.Normalize()))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update role")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// FindAdminsByUniversity retrieves the minimal contact projection of every
// admin profile within a university.
func (repo *profileRepository) FindAdminsByUniversity(ctx context.Context, universityID uuid.UUID) ([]*entity.AdminContact, error) {
	var profileModels []*model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Select("user_id", "university_id").
		Where("university_id = ? AND lower(trim(role)) = ? AND is_banned = false", universityID, string(entity.RoleAdmin)).
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find admins by university")
	}

	admins := make([]*entity.AdminContact, 0, len(profileModels))
	for _, profileM := range profileModels {
		contact := &entity.AdminContact{UserID: profileM.UserID}
		if profileM.UniversityID != nil {
			contact.UniversityID = *profileM.UniversityID
		}
		admins = append(admins, contact)
	}

	return admins, nil
}

// ListProfilesByUniversity retrieves profiles within a university with pagination.
func (repo *profileRepository) ListProfilesByUniversity(ctx context.Context, universityID uuid.UUID, limit, offset int) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel

	query := repo.db.WithContext(ctx).
		Where("university_id = ?", universityID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profiles by university")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

// fromProfileDomain converts a domain entity to its persistence model.
func fromProfileDomain(profile *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		UserID:       profile.UserID,
		Email:        profile.Email,
		FullName:     profile.FullName,
		AvatarURL:    profile.AvatarURL,
		Role:         string(profile.Role.Normalize()),
		IsBanned:     profile.IsBanned,
		UniversityID: profile.UniversityID,
		CreatedAt:    profile.CreatedAt,
		UpdatedAt:    profile.UpdatedAt,
	}
}

// toProfileDomain converts a persistence model to its domain entity.
func toProfileDomain(profileM *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		UserID:       profileM.UserID,
		Email:        profileM.Email,
		FullName:     profileM.FullName,
		AvatarURL:    profileM.AvatarURL,
		Role:         entity.Role(profileM.Role),
		IsBanned:     profileM.IsBanned,
		UniversityID: profileM.UniversityID,
		CreatedAt:    profileM.CreatedAt,
		UpdatedAt:    profileM.UpdatedAt,
	}
}
