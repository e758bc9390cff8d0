package postgres

import (
	"context"
	"strings"

	"campustrace/internal/domain/entity"
	domainerrors "campustrace/internal/domain/errors"
	"campustrace/internal/domain/repository"
	"campustrace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// universityRepository implements the repository.UniversityRepository interface.
type universityRepository struct {
	db *gorm.DB
}

// NewUniversityRepository is the constructor for universityRepository.
func NewUniversityRepository(db *gorm.DB) repository.UniversityRepository {
	return &universityRepository{
		db: db,
	}
}

// CreateUniversity persists a new university.
func (repo *universityRepository) CreateUniversity(ctx context.Context, university *entity.University) error {
	universityM := fromUniversityDomain(university)

	if err := repo.db.WithContext(ctx).Create(universityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("email domain already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create university")
	}

	university.ID = universityM.ID
	university.CreatedAt = universityM.CreatedAt
	university.UpdatedAt = universityM.UpdatedAt

	return nil
}

// FindUniversityByID retrieves a university by its unique ID.
func (repo *universityRepository) FindUniversityByID(ctx context.Context, id uuid.UUID) (*entity.University, error) {
	var universityM model.UniversityModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&universityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUniversityNotFound
		}

		return nil, errors.Wrap(err, "failed to find university by ID")
	}

	return toUniversityDomain(&universityM), nil
}

// FindUniversityByEmailDomain retrieves a university by its email domain.
func (repo *universityRepository) FindUniversityByEmailDomain(ctx context.Context, domain string) (*entity.University, error) {
	var universityM model.UniversityModel

	if err := repo.db.WithContext(ctx).
		Where("lower(email_domain) = ?", strings.ToLower(domain)).
		First(&universityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUniversityNotFound
		}

		return nil, errors.Wrap(err, "failed to find university by email domain")
	}

	return toUniversityDomain(&universityM), nil
}

// ListUniversities retrieves all universities.
func (repo *universityRepository) ListUniversities(ctx context.Context) ([]*entity.University, error) {
	var universityModels []*model.UniversityModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&universityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list universities")
	}

	universities := make([]*entity.University, 0, len(universityModels))
	for _, universityM := range universityModels {
		universities = append(universities, toUniversityDomain(universityM))
	}

	return universities, nil
}

// UpdateUniversity persists changes to an existing university.
func (repo *universityRepository) UpdateUniversity(ctx context.Context, university *entity.University) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UniversityModel{}).
		Where("id = ?", university.ID).
		Updates(map[string]any{
			"name":               university.Name,
			"email_domain":       strings.ToLower(university.EmailDomain),
			"auto_approve_posts": university.AutoApprovePosts,
			"notice_banner":      university.NoticeBanner,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update university")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUniversityNotFound
	}

	return nil
}

// fromUniversityDomain converts a domain entity to its persistence model.
func fromUniversityDomain(university *entity.University) *model.UniversityModel {
	return &model.UniversityModel{
		ID:               university.ID,
		Name:             university.Name,
		EmailDomain:      strings.ToLower(university.EmailDomain),
		AutoApprovePosts: university.AutoApprovePosts,
		NoticeBanner:     university.NoticeBanner,
		CreatedAt:        university.CreatedAt,
		UpdatedAt:        university.UpdatedAt,
	}
}

// toUniversityDomain converts a persistence model to its domain entity.
func toUniversityDomain(universityM *model.UniversityModel) *entity.University {
	return &entity.University{
		ID:               universityM.ID,
		Name:             universityM.Name,
		EmailDomain:      universityM.EmailDomain,
		AutoApprovePosts: universityM.AutoApprovePosts,
		NoticeBanner:     universityM.NoticeBanner,
		CreatedAt:        universityM.CreatedAt,
		UpdatedAt:        universityM.UpdatedAt,
	}
}
