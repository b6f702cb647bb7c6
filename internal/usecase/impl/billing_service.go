package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"sokoo/config"
	"sokoo/internal/domain/entity"
	domainerrors "sokoo/internal/domain/errors"
	"sokoo/internal/domain/repository"
	"sokoo/internal/domain/service"
	"sokoo/internal/infra/metrics"
	"sokoo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// billingService implements the BillingUsecase interface.
type billingService struct {
	txManager repository.TransactionManager
	sender    service.ReminderSender
	cache     service.DirectoryCache
	billing   config.BillingConfig
	logger    *slog.Logger
}

// NewBillingService is the constructor for billingService. Both the sender
// and the cache may be nil.
func NewBillingService(
	txManager repository.TransactionManager,
	sender service.ReminderSender,
	cache service.DirectoryCache,
	billing config.BillingConfig,
	logger *slog.Logger,
) usecase.BillingUsecase {
	return &billingService{
		txManager: txManager,
		sender:    sender,
		cache:     cache,
		billing:   billing,
		logger:    logger,
	}
}

// History returns a shop's current payment and settled history.
func (srv *billingService) History(ctx context.Context, actor usecase.Actor, shopID uuid.UUID) (*usecase.PaymentHistoryOutput, error) {
	output := &usecase.PaymentHistoryOutput{History: []*entity.Payment{}}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.authorizeShopAccess(ctx, repoFactory, actor, shopID); err != nil {
			return err
		}

		payments, err := repoFactory.PaymentRepo().ListByShop(ctx, shopID)
		if err != nil {
			return errors.Wrap(err, "failed to list payments")
		}

		for _, payment := range payments {
			if payment.IsCurrent() && output.Current == nil {
				output.Current = payment

				continue
			}
			output.History = append(output.History, payment)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// Settle marks a payment paid and spawns the next cycle. Settlement is
// idempotent per payment ID: a repeat attempt returns the already-settled
// record with a nil successor and no new history entry.
func (srv *billingService) Settle(ctx context.Context, actor usecase.Actor, shopID, paymentID uuid.UUID, method string) (*usecase.SettlementOutput, error) {
	srv.logger.Info("Settling payment", "shopID", shopID, "paymentID", paymentID, "method", method)

	if strings.TrimSpace(method) == "" {
		return nil, domainerrors.NewValidationError(map[string]string{
			"payment_method": "This field is required",
		})
	}

	var output *usecase.SettlementOutput
	reactivated := false

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.authorizeShopAccess(ctx, repoFactory, actor, shopID); err != nil {
			return err
		}

		paymentRepo := repoFactory.PaymentRepo()

		payment, err := findShopPayment(ctx, paymentRepo, shopID, paymentID)
		if err != nil {
			return err
		}

		if payment.Status == entity.PaymentStatusPaid {
			output = &usecase.SettlementOutput{Payment: payment}

			return nil
		}
		if payment.Status.IsTerminal() {
			return errors.Wrapf(domainerrors.ErrPaymentNotSettleable, "payment is %s", payment.Status)
		}

		successor := payment.Settle(time.Now().UTC(), method)
		if err := paymentRepo.Settle(ctx, payment, successor); err != nil {
			// Lost a settle race: surface the stored record, no new successor.
			if errors.Is(err, repository.ErrPaymentAlreadySettled) {
				stored, findErr := paymentRepo.FindByID(ctx, paymentID)
				if findErr != nil {
					return errors.Wrap(findErr, "failed to reload settled payment")
				}
				output = &usecase.SettlementOutput{Payment: stored}

				return nil
			}

			return errors.Wrap(err, "failed to settle payment")
		}

		metrics.PaymentsSettled.WithLabelValues(method).Inc()
		output = &usecase.SettlementOutput{Payment: payment, Successor: successor}

		// Settling the lapsed cycle restores the shop's listing.
		shop, err := repoFactory.ShopRepo().FindByID(ctx, shopID)
		if err != nil {
			return errors.Wrap(err, "failed to find shop")
		}
		if shop.Status == entity.ShopStatusInactive && shop.Status.CanTransition(entity.ShopStatusActive) {
			shop.Status = entity.ShopStatusActive
			shop.UpdatedAt = time.Now().UTC()
			if err := repoFactory.ShopRepo().Update(ctx, shop); err != nil {
				return errors.Wrap(err, "failed to reactivate shop")
			}
			reactivated = true
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if reactivated {
		srv.invalidateListings(ctx)
	}

	return output, nil
}

// Remind records a payment reminder for the shop owner, dispatching it when
// a sender is configured.
func (srv *billingService) Remind(ctx context.Context, actor usecase.Actor, shopID, paymentID uuid.UUID) (*entity.Reminder, error) {
	srv.logger.Info("Sending payment reminder", "shopID", shopID, "paymentID", paymentID)

	if actor.Role != entity.RoleAdmin {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only admins can send reminders")
	}

	var reminder *entity.Reminder
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shop, err := repoFactory.ShopRepo().FindByID(ctx, shopID)
		if err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return errors.Wrap(domainerrors.ErrShopNotFound, "shop not found")
			}

			return errors.Wrap(err, "failed to find shop")
		}

		payment, err := findShopPayment(ctx, repoFactory.PaymentRepo(), shopID, paymentID)
		if err != nil {
			return err
		}

		owner, err := repoFactory.UserRepo().FindByID(ctx, shop.OwnerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "shop owner not found")
			}

			return errors.Wrap(err, "failed to find shop owner")
		}

		channel := "none"
		status := entity.ReminderStatusSent
		if srv.sender != nil {
			channel = srv.sender.Channel()
			if sendErr := srv.sender.Send(ctx, shop, payment, owner.Email); sendErr != nil {
				srv.logger.Error("Reminder delivery failed", "shopID", shopID, "error", sendErr)
				status = entity.ReminderStatusFailed
			}
		}

		reminder = &entity.Reminder{
			ID:        uuid.New(),
			ShopID:    shop.ID,
			PaymentID: payment.ID,
			Channel:   channel,
			Status:    status,
			SentAt:    time.Now().UTC(),
		}
		if err := repoFactory.ReminderRepo().Create(ctx, reminder); err != nil {
			return errors.Wrap(err, "failed to record reminder")
		}

		metrics.RemindersSent.WithLabelValues(status.String()).Inc()

		return nil
	})
	if err != nil {
		return nil, err
	}

	return reminder, nil
}

// ReminderHistory returns a shop's reminder records, newest first.
func (srv *billingService) ReminderHistory(ctx context.Context, actor usecase.Actor, shopID uuid.UUID) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.authorizeShopAccess(ctx, repoFactory, actor, shopID); err != nil {
			return err
		}

		found, err := repoFactory.ReminderRepo().ListByShop(ctx, shopID)
		if err != nil {
			return errors.Wrap(err, "failed to list reminders")
		}
		reminders = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return reminders, nil
}

// SweepOverdue deactivates every active shop whose current payment has been
// overdue longer than the grace period.
func (srv *billingService) SweepOverdue(ctx context.Context, now time.Time) (int, error) {
	grace := time.Duration(srv.billing.GraceDays) * 24 * time.Hour
	deactivated := 0

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		overdue, err := repoFactory.PaymentRepo().ListOverdue(ctx, now)
		if err != nil {
			return errors.Wrap(err, "failed to list overdue payments")
		}

		for _, payment := range overdue {
			if now.Sub(payment.DueDate) <= grace {
				continue
			}

			shop, err := repoFactory.ShopRepo().FindByID(ctx, payment.ShopID)
			if err != nil {
				if errors.Is(err, repository.ErrShopNotFound) {
					continue
				}

				return errors.Wrap(err, "failed to find shop")
			}
			if !shop.Status.CanTransition(entity.ShopStatusInactive) {
				continue
			}

			shop.Status = entity.ShopStatusInactive
			shop.UpdatedAt = now
			if err := repoFactory.ShopRepo().Update(ctx, shop); err != nil {
				return errors.Wrap(err, "failed to deactivate shop")
			}

			srv.logger.Info("Deactivated shop with lapsed payment", "shopID", shop.ID, "dueDate", payment.DueDate)
			metrics.ShopsDeactivated.Inc()
			deactivated++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	if deactivated > 0 {
		srv.invalidateListings(ctx)
	}

	return deactivated, nil
}

// authorizeShopAccess admits admins and the shop's own owner.
func (srv *billingService) authorizeShopAccess(ctx context.Context, repoFactory repository.RepositoryFactory, actor usecase.Actor, shopID uuid.UUID) error {
	if actor.Role == entity.RoleAdmin {
		return nil
	}

	shop, err := repoFactory.ShopRepo().FindByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return errors.Wrap(domainerrors.ErrShopNotFound, "shop not found")
		}

		return errors.Wrap(err, "failed to find shop")
	}
	if shop.OwnerID != actor.UserID {
		return errors.Wrap(domainerrors.ErrForbidden, "shop belongs to another owner")
	}

	return nil
}

func (srv *billingService) invalidateListings(ctx context.Context) {
	if srv.cache != nil {
		srv.cache.Invalidate(ctx)
	}
}

// findShopPayment loads a payment and verifies it belongs to the shop.
func findShopPayment(ctx context.Context, paymentRepo repository.PaymentRepository, shopID, paymentID uuid.UUID) (*entity.Payment, error) {
	payment, err := paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPaymentNotFound, "payment not found")
		}

		return nil, errors.Wrap(err, "failed to find payment")
	}
	if payment.ShopID != shopID {
		return nil, errors.Wrap(domainerrors.ErrPaymentNotFound, "payment belongs to another shop")
	}

	return payment, nil
}
