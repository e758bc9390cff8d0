package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "campustrace/internal/delivery/context"
	"campustrace/internal/domain/entity"
	domainerrors "campustrace/internal/domain/errors"
	"campustrace/internal/domain/repository"
	"campustrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager repository.TransactionManager
	notifier  usecase.NotificationUsecase
	logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	txManager repository.TransactionManager,
	notifier usecase.NotificationUsecase,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		txManager: txManager,
		notifier:  notifier,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ReviewItem approves or rejects a pending item post and notifies the poster.
func (srv *adminService) ReviewItem(ctx context.Context, reviewerID, itemID uuid.UUID, approve bool) (*entity.Item, error) {
	var item *entity.Item

	status := entity.ItemStatusRejected
	if approve {
		status = entity.ItemStatusApproved
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.NewItemRepository()

		found, err := itemRepo.FindItemByID(ctx, itemID)
		if err != nil {
			if errors.Is(err, repository.ErrItemNotFound) {
				return domainerrors.ErrItemNotFound.WrapMessage("item does not exist")
			}

			return errors.Wrap(err, "failed to find item")
		}

		reviewer, err := srv.moderatorProfile(ctx, repoFactory, reviewerID)
		if err != nil {
			return err
		}
		if *reviewer.UniversityID != found.UniversityID {
			return domainerrors.ErrForbidden.WrapMessage("item belongs to another university")
		}

		if found.Status != entity.ItemStatusPending {
			return domainerrors.ErrConflict.WrapMessage("item is not awaiting review")
		}

		if err := itemRepo.UpdateItemStatus(ctx, itemID, status); err != nil {
			return errors.Wrap(err, "failed to update item status")
		}
		found.Status = status
		item = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to review item",
			slog.Any("error", err),
			slog.Any("item_id", itemID),
			slog.Any("reviewer_id", reviewerID),
		)

		return nil, err
	}

	if err := srv.notifier.NotifyPostStatusUpdate(ctx, item); err != nil {
		srv.log(ctx).Error("Failed to notify poster of review",
			slog.Any("error", err),
			slog.Any("item_id", item.ID),
		)
	}

	return item, nil
}

// ListPendingItems retrieves the review queue of a university.
func (srv *adminService) ListPendingItems(ctx context.Context, universityID uuid.UUID, limit, offset int) ([]*entity.Item, error) {
	var items []*entity.Item

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewItemRepository().ListItemsByUniversity(ctx, universityID,
			repository.ItemFilter{Status: entity.ItemStatusPending}, limit, offset)
		if err != nil {
			return errors.Wrap(err, "failed to list pending items")
		}
		items = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

// SetUserBanned bans or unbans a member of the admin's university.
func (srv *adminService) SetUserBanned(ctx context.Context, adminID, userID uuid.UUID, banned bool) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		admin, target, err := srv.sameUniversity(ctx, repoFactory, adminID, userID)
		if err != nil {
			return err
		}
		if admin.UserID == target.UserID {
			return domainerrors.ErrForbidden.WrapMessage("cannot ban yourself")
		}

		return profileRepo.SetBanned(ctx, userID, banned)
	})
}

// SetUserRole changes a member's role within the admin's university.
func (srv *adminService) SetUserRole(ctx context.Context, adminID, userID uuid.UUID, role entity.Role) error {
	normalized := role.Normalize()
	if !normalized.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		if _, _, err := srv.sameUniversity(ctx, repoFactory, adminID, userID); err != nil {
			return err
		}

		return profileRepo.SetRole(ctx, userID, normalized)
	})
}

// ListMembers retrieves the profiles of a university.
func (srv *adminService) ListMembers(ctx context.Context, universityID uuid.UUID, limit, offset int) ([]*entity.Profile, error) {
	var profiles []*entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewProfileRepository().ListProfilesByUniversity(ctx, universityID, limit, offset)
		if err != nil {
			return errors.Wrap(err, "failed to list members")
		}
		profiles = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return profiles, nil
}

// UpdateUniversity changes the settings of the admin's university.
func (srv *adminService) UpdateUniversity(ctx context.Context, adminID uuid.UUID, input usecase.UpdateUniversityInput) (*entity.University, error) {
	var university *entity.University

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		admin, err := srv.moderatorProfile(ctx, repoFactory, adminID)
		if err != nil {
			return err
		}

		universityRepo := repoFactory.NewUniversityRepository()

		found, err := universityRepo.FindUniversityByID(ctx, *admin.UniversityID)
		if err != nil {
			if errors.Is(err, repository.ErrUniversityNotFound) {
				return domainerrors.ErrUniversityNotFound.WrapMessage("university does not exist")
			}

			return errors.Wrap(err, "failed to find university")
		}

		found.Name = input.Name
		found.AutoApprovePosts = input.AutoApprovePosts
		found.NoticeBanner = input.NoticeBanner
		if input.EmailDomain != "" {
			found.EmailDomain = strings.ToLower(strings.TrimSpace(input.EmailDomain))
		}

		if err := universityRepo.UpdateUniversity(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update university")
		}
		university = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update university",
			slog.Any("error", err),
			slog.Any("admin_id", adminID),
		)

		return nil, err
	}

	return university, nil
}

// moderatorProfile loads a profile and enforces it belongs to a university
// with moderator or admin rights.
func (srv *adminService) moderatorProfile(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := repoFactory.NewProfileRepository().FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("profile does not exist")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}
	if !profile.HasUniversity() {
		return nil, domainerrors.ErrUniversityNotResolved.WrapMessage("profile has no university")
	}

	role := profile.Role.Normalize()
	if role != entity.RoleModerator && role != entity.RoleAdmin {
		return nil, domainerrors.ErrForbidden.WrapMessage("moderator rights required")
	}

	return profile, nil
}

// sameUniversity loads the acting admin and the target member and enforces
// they share a tenant.
func (srv *adminService) sameUniversity(ctx context.Context, repoFactory repository.RepositoryFactory, adminID, userID uuid.UUID) (*entity.Profile, *entity.Profile, error) {
	admin, err := srv.moderatorProfile(ctx, repoFactory, adminID)
	if err != nil {
		return nil, nil, err
	}

	target, err := repoFactory.NewProfileRepository().FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, nil, domainerrors.ErrProfileNotFound.WrapMessage("target profile does not exist")
		}

		return nil, nil, errors.Wrap(err, "failed to find target profile")
	}
	if !target.HasUniversity() || *target.UniversityID != *admin.UniversityID {
		return nil, nil, domainerrors.ErrForbidden.WrapMessage("target belongs to another university")
	}

	return admin, target, nil
}
