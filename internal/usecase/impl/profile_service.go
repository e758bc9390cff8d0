package impl

import (
	"context"
	"log/slog"

	deliverycontext "campustrace/internal/delivery/context"
	"campustrace/internal/domain/entity"
	domainerrors "campustrace/internal/domain/errors"
	"campustrace/internal/domain/repository"
	"campustrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager      repository.TransactionManager
	universityRepo repository.UniversityRepository
	logger         *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	universityRepo repository.UniversityRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager:      txManager,
		universityRepo: universityRepo,
		logger:         logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves a profile by user ID.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewProfileRepository().FindProfileByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage("profile does not exist")
			}

			return errors.Wrap(err, "failed to find profile")
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// UpdateProfile updates the requester's own profile.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.Profile, error) {
	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		found, err := profileRepo.FindProfileByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage("profile does not exist")
			}

			return errors.Wrap(err, "failed to find profile")
		}

		found.FullName = input.FullName
		found.AvatarURL = input.AvatarURL

		if err := profileRepo.UpdateProfile(ctx, found); err != nil {
			return domainerrors.ErrProfileUpdateFailed.WrapMessage(err.Error())
		}
		profile = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update profile",
			slog.Any("error", err),
			slog.Any("user_id", userID),
		)

		return nil, err
	}

	return profile, nil
}

// GetUniversity retrieves the university a profile belongs to.
func (srv *profileService) GetUniversity(ctx context.Context, universityID uuid.UUID) (*entity.University, error) {
	university, err := srv.universityRepo.FindUniversityByID(ctx, universityID)
	if err != nil {
		if errors.Is(err, repository.ErrUniversityNotFound) {
			return nil, domainerrors.ErrUniversityNotFound.WrapMessage("university does not exist")
		}

		return nil, errors.Wrap(err, "failed to find university")
	}

	return university, nil
}
