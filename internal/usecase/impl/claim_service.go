package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "campustrace/internal/delivery/context"
	"campustrace/internal/domain/entity"
	domainerrors "campustrace/internal/domain/errors"
	"campustrace/internal/domain/repository"
	"campustrace/internal/domain/service"
	"campustrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// claimService implements the ClaimUsecase interface.
type claimService struct {
	txManager  repository.TransactionManager
	mailSender service.MailSender
	notifier   usecase.NotificationUsecase
	logger     *slog.Logger
}

// NewClaimService is the constructor for claimService.
func NewClaimService(
	txManager repository.TransactionManager,
	mailSender service.MailSender,
	notifier usecase.NotificationUsecase,
	logger *slog.Logger,
) usecase.ClaimUsecase {
	return &claimService{
		txManager:  txManager,
		mailSender: mailSender,
		notifier:   notifier,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *claimService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FileClaim files a claim on an approved found item. A user cannot claim
// their own post or claim the same item twice.
func (srv *claimService) FileClaim(ctx context.Context, claimantID, itemID uuid.UUID, evidence string) (*entity.Claim, error) {
	var item *entity.Item
	claim := &entity.Claim{
		ItemID:     itemID,
		ClaimantID: claimantID,
		Status:     entity.ClaimStatusPending,
		Evidence:   evidence,
		CreatedAt:  time.Now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewItemRepository().FindItemByID(ctx, itemID)
		if err != nil {
			if errors.Is(err, repository.ErrItemNotFound) {
				return domainerrors.ErrItemNotFound.WrapMessage("item does not exist")
			}

			return errors.Wrap(err, "failed to find item")
		}

		if found.Kind != entity.ItemKindFound || found.Status != entity.ItemStatusApproved {
			return domainerrors.ErrItemNotClaimable.WrapMessage("only approved found items can be claimed")
		}
		if found.PosterID == claimantID {
			return domainerrors.ErrItemNotClaimable.WrapMessage("cannot claim your own post")
		}
		item = found

		claimRepo := repoFactory.NewClaimRepository()

		existing, err := claimRepo.FindClaimByItemAndClaimant(ctx, itemID, claimantID)
		if err != nil && !errors.Is(err, repository.ErrClaimNotFound) {
			return errors.Wrap(err, "failed to check existing claim")
		}
		if existing != nil {
			return domainerrors.ErrClaimAlreadyExists.WrapMessage("claim already filed on this item")
		}

		return claimRepo.CreateClaim(ctx, claim)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to file claim",
			slog.Any("error", err),
			slog.Any("item_id", itemID),
			slog.Any("claimant_id", claimantID),
		)

		return nil, err
	}

	if err := srv.notifier.NotifyNewClaim(ctx, item, claim); err != nil {
		srv.log(ctx).Error("Failed to notify poster of new claim",
			slog.Any("error", err),
			slog.Any("claim_id", claim.ID),
		)
	}

	return claim, nil
}

// ListClaimsForItem retrieves the claims on an item. Only the poster may see them.
func (srv *claimService) ListClaimsForItem(ctx context.Context, posterID, itemID uuid.UUID) ([]*entity.Claim, error) {
	var claims []*entity.Claim

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		item, err := repoFactory.NewItemRepository().FindItemByID(ctx, itemID)
		if err != nil {
			if errors.Is(err, repository.ErrItemNotFound) {
				return domainerrors.ErrItemNotFound.WrapMessage("item does not exist")
			}

			return errors.Wrap(err, "failed to find item")
		}
		if item.PosterID != posterID {
			return domainerrors.ErrClaimOwnershipViolation.WrapMessage("only the poster may view claims")
		}

		found, err := repoFactory.NewClaimRepository().ListClaimsByItem(ctx, itemID)
		if err != nil {
			return errors.Wrap(err, "failed to list claims")
		}
		claims = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return claims, nil
}

// ListMyClaims retrieves claims the requester has filed.
func (srv *claimService) ListMyClaims(ctx context.Context, claimantID uuid.UUID, limit, offset int) ([]*entity.Claim, error) {
	var claims []*entity.Claim

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewClaimRepository().ListClaimsByClaimant(ctx, claimantID, limit, offset)
		if err != nil {
			return errors.Wrap(err, "failed to list own claims")
		}
		claims = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return claims, nil
}

// DecideClaim approves or rejects a pending claim. Only the item's poster may
// decide, and a decided claim is final. Approving a claim marks the item
// recovered.
func (srv *claimService) DecideClaim(ctx context.Context, posterID, claimID uuid.UUID, approve bool) (*entity.Claim, error) {
	var (
		claim         *entity.Claim
		item          *entity.Item
		claimantEmail string
	)

	status := entity.ClaimStatusRejected
	if approve {
		status = entity.ClaimStatusApproved
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		claimRepo := repoFactory.NewClaimRepository()

		found, err := claimRepo.FindClaimByID(ctx, claimID)
		if err != nil {
			if errors.Is(err, repository.ErrClaimNotFound) {
				return domainerrors.ErrClaimNotFound.WrapMessage("claim does not exist")
			}

			return errors.Wrap(err, "failed to find claim")
		}
		if found.Status != entity.ClaimStatusPending {
			return domainerrors.ErrClaimAlreadyDecided.WrapMessage("claim was already decided")
		}

		itemRepo := repoFactory.NewItemRepository()

		owner, err := itemRepo.FindItemByID(ctx, found.ItemID)
		if err != nil {
			return errors.Wrap(err, "failed to find claimed item")
		}
		if owner.PosterID != posterID {
			return domainerrors.ErrClaimOwnershipViolation.WrapMessage("only the poster may decide claims")
		}

		if err := claimRepo.UpdateClaimStatus(ctx, claimID, status); err != nil {
			return errors.Wrap(err, "failed to update claim status")
		}

		if approve {
			if err := itemRepo.UpdateItemStatus(ctx, owner.ID, entity.ItemStatusRecovered); err != nil {
				return errors.Wrap(err, "failed to mark item recovered")
			}
			owner.Status = entity.ItemStatusRecovered
		}

		// The claimant's email lives on their profile; fetch it inside the
		// transaction so the decision mail targets a consistent snapshot.
		profile, err := repoFactory.NewProfileRepository().FindProfileByUserID(ctx, found.ClaimantID)
		if err == nil {
			claimantEmail = profile.Email
		}

		found.Status = status
		claim = found
		item = owner

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to decide claim",
			slog.Any("error", err),
			slog.Any("claim_id", claimID),
		)

		return nil, err
	}

	if err := srv.notifier.NotifyClaimStatusUpdate(ctx, item, claim); err != nil {
		srv.log(ctx).Error("Failed to notify claimant of decision",
			slog.Any("error", err),
			slog.Any("claim_id", claim.ID),
		)
	}

	if claimantEmail != "" {
		if err := srv.mailSender.SendClaimDecision(ctx, claimantEmail, item.Title, string(status)); err != nil {
			srv.log(ctx).Error("Failed to mail claim decision",
				slog.Any("error", err),
				slog.Any("claim_id", claim.ID),
			)
		}
	}

	return claim, nil
}
