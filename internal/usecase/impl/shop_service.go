package impl

import (
	"context"
	"log/slog"
	"time"

	"sokoo/config"
	"sokoo/internal/domain/entity"
	domainerrors "sokoo/internal/domain/errors"
	"sokoo/internal/domain/repository"
	"sokoo/internal/domain/service"
	"sokoo/internal/infra/metrics"
	"sokoo/internal/usecase"
	"sokoo/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// shopService implements the ShopUsecase interface.
type shopService struct {
	txManager repository.TransactionManager
	cache     service.DirectoryCache
	billing   config.BillingConfig
	logger    *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(
	txManager repository.TransactionManager,
	cache service.DirectoryCache,
	billing config.BillingConfig,
	logger *slog.Logger,
) usecase.ShopUsecase {
	return &shopService{
		txManager: txManager,
		cache:     cache,
		billing:   billing,
		logger:    logger,
	}
}

// Register creates a pending shop owned by the actor.
func (srv *shopService) Register(ctx context.Context, actor usecase.Actor, input *usecase.RegisterShopInput) (*entity.Shop, error) {
	// A JSON null body binds to a nil input.
	if input == nil {
		return nil, domainerrors.NewValidationError(map[string]string{"body": "Request body is required"})
	}

	srv.logger.Info("Registering shop", "ownerID", actor.UserID, "name", input.Name)

	if actor.Role != entity.RoleShopOwner {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only shop owners can register a shop")
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	var shop *entity.Shop
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		owner, err := repoFactory.UserRepo().FindByID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "owner account not found")
			}

			return errors.Wrap(err, "failed to find owner")
		}

		now := time.Now().UTC()
		shop = &entity.Shop{
			ID:         uuid.New(),
			Name:       input.Name,
			OwnerID:    owner.ID,
			OwnerName:  owner.Name,
			Industry:   input.Industry,
			City:       input.City,
			Mall:       input.Mall,
			ShopNumber: input.ShopNumber,
			Phone:      input.WhatsappNumber,
			Logo:       input.Logo,
			Status:     entity.ShopStatusPending,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		if err := repoFactory.ShopRepo().Create(ctx, shop); err != nil {
			if errors.Is(err, repository.ErrShopAlreadyOwned) {
				return errors.Wrap(domainerrors.ErrShopAlreadyRegistered, "owner already has a shop")
			}

			return errors.Wrap(err, "failed to create shop")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ShopsRegistered.Inc()

	return shop, nil
}

// Get retrieves one shop by ID. Non-active shops stay hidden from everyone
// but an admin or the shop's owner, matching the public directory.
func (srv *shopService) Get(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Shop, error) {
	var shop *entity.Shop
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ShopRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return errors.Wrap(domainerrors.ErrShopNotFound, "shop not found")
			}

			return errors.Wrap(err, "failed to find shop")
		}

		if found.Status != entity.ShopStatusActive &&
			actor.Role != entity.RoleAdmin && found.OwnerID != actor.UserID {
			// Not-found rather than forbidden, so the response does not
			// reveal that the shop exists.
			return errors.Wrap(domainerrors.ErrShopNotFound, "shop not found")
		}
		shop = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return shop, nil
}

// Update edits shop fields. Owners may edit only their own shop.
func (srv *shopService) Update(ctx context.Context, actor usecase.Actor, id uuid.UUID, input *usecase.UpdateShopInput) (*entity.Shop, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError(map[string]string{"body": "Request body is required"})
	}

	srv.logger.Info("Updating shop", "shopID", id, "actorID", actor.UserID)

	var shop *entity.Shop
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.ShopRepo()

		found, err := shopRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return errors.Wrap(domainerrors.ErrShopNotFound, "shop not found")
			}

			return errors.Wrap(err, "failed to find shop")
		}

		if actor.Role != entity.RoleAdmin && found.OwnerID != actor.UserID {
			return errors.Wrap(domainerrors.ErrForbidden, "shop belongs to another owner")
		}

		applyShopUpdate(found, input)
		found.UpdatedAt = time.Now().UTC()

		if err := shopRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update shop")
		}
		shop = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.invalidateListings(ctx)

	return shop, nil
}

// Approve transitions a pending shop to active and opens its first billing cycle.
func (srv *shopService) Approve(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Shop, error) {
	shop, err := srv.decide(ctx, actor, id, entity.ShopStatusActive)
	if err != nil {
		return nil, err
	}

	metrics.ShopDecisions.WithLabelValues("approved").Inc()

	return shop, nil
}

// Reject transitions a pending shop to the terminal rejected status.
func (srv *shopService) Reject(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Shop, error) {
	shop, err := srv.decide(ctx, actor, id, entity.ShopStatusRejected)
	if err != nil {
		return nil, err
	}

	metrics.ShopDecisions.WithLabelValues("rejected").Inc()

	return shop, nil
}

// decide applies an admin approve/reject decision to a pending shop.
func (srv *shopService) decide(ctx context.Context, actor usecase.Actor, id uuid.UUID, target entity.ShopStatus) (*entity.Shop, error) {
	srv.logger.Info("Deciding on shop", "shopID", id, "target", target)

	if actor.Role != entity.RoleAdmin {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only admins can decide on shops")
	}

	var shop *entity.Shop
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.ShopRepo()

		found, err := shopRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return errors.Wrap(domainerrors.ErrShopNotFound, "shop not found")
			}

			return errors.Wrap(err, "failed to find shop")
		}

		if !found.Status.CanTransition(target) {
			return errors.Wrapf(domainerrors.ErrInvalidShopTransition, "cannot move shop from %s to %s", found.Status, target)
		}

		now := time.Now().UTC()
		found.Status = target
		found.UpdatedAt = now

		if err := shopRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update shop")
		}

		// Approval starts the subscription: the first cycle is due one
		// calendar month out.
		if target == entity.ShopStatusActive {
			cycle := &entity.Payment{
				ID:        uuid.New(),
				ShopID:    found.ID,
				Amount:    srv.billing.MonthlyFee,
				Currency:  srv.billing.Currency,
				Status:    entity.PaymentStatusPending,
				DueDate:   now.AddDate(0, 1, 0),
				Notes:     "Monthly subscription fee",
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := repoFactory.PaymentRepo().Create(ctx, cycle); err != nil {
				return errors.Wrap(err, "failed to open first billing cycle")
			}
		}
		shop = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.invalidateListings(ctx)

	return shop, nil
}

// Delete removes a shop permanently (admin only).
func (srv *shopService) Delete(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	srv.logger.Info("Deleting shop", "shopID", id, "actorID", actor.UserID)

	if actor.Role != entity.RoleAdmin {
		return errors.Wrap(domainerrors.ErrForbidden, "only admins can delete shops")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ShopRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return errors.Wrap(domainerrors.ErrShopNotFound, "shop not found")
			}

			return errors.Wrap(err, "failed to delete shop")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.invalidateListings(ctx)

	return nil
}

func (srv *shopService) invalidateListings(ctx context.Context) {
	if srv.cache != nil {
		srv.cache.Invalidate(ctx)
	}
}

func applyShopUpdate(shop *entity.Shop, input *usecase.UpdateShopInput) {
	if input.Name != nil {
		shop.Name = *input.Name
	}
	if input.Industry != nil {
		shop.Industry = *input.Industry
	}
	if input.City != nil {
		shop.City = *input.City
	}
	if input.Mall != nil {
		shop.Mall = *input.Mall
	}
	if input.ShopNumber != nil {
		shop.ShopNumber = *input.ShopNumber
	}
	if input.WhatsappNumber != nil {
		shop.Phone = *input.WhatsappNumber
	}
	if input.Logo != nil {
		shop.Logo = *input.Logo
	}
}
