package main

import (
	"context"
	"log/slog"
	"os"

	"sokoo/config"
	"sokoo/internal/delivery"
	"sokoo/internal/delivery/http"
	"sokoo/internal/delivery/http/middleware"
	"sokoo/internal/delivery/http/router/handler"
	"sokoo/internal/delivery/worker"
	"sokoo/internal/domain/repository"
	"sokoo/internal/domain/service"
	"sokoo/internal/infra/auth"
	"sokoo/internal/infra/cache"
	logs "sokoo/internal/infra/log"
	"sokoo/internal/infra/notify"
	"sokoo/internal/infra/persistence/memory"
	"sokoo/internal/infra/persistence/postgres"
	"sokoo/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newBillingConfig,
		newTransactionManager,
	)
}

func newBillingConfig(cfg *config.Config) config.BillingConfig {
	return cfg.Billing
}

type storageParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Hasher service.PasswordHasher
}

// newTransactionManager selects the persistence driver. Memory is the
// default and ships with the seeded demo dataset; Postgres is opt-in via
// storage.driver.
func newTransactionManager(params storageParams) (repository.TransactionManager, error) {
	switch params.Config.Storage.Driver {
	case "postgres":
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewTransactionManager(db), nil
	case "", "memory":
		store := memory.NewStore()
		if params.Config.Storage.Seed {
			if err := memory.Seed(store, params.Hasher); err != nil {
				return nil, errors.Wrap(err, "failed to seed demo data")
			}
		}

		return memory.NewTransactionManager(store), nil
	default:
		return nil, errors.Errorf("unknown storage driver %q", params.Config.Storage.Driver)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newDirectoryCache,
			newReminderSender,
		),
	)
}

// newDirectoryCache creates the Redis-backed listing cache when one is
// configured. Without it the directory is served straight from storage.
func newDirectoryCache(cfg *config.Config, logger *slog.Logger) service.DirectoryCache {
	if cfg.Redis == nil {
		return nil // cache is optional
	}

	return cache.NewRedisDirectoryCache(cache.NewRedisClient(cfg.Redis), cfg.Redis, logger)
}

// newReminderSender creates the SES reminder sender when one is configured.
// Without it reminders are recorded in history but not dispatched.
func newReminderSender(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.ReminderSender, error) {
	if cfg.Reminder == nil {
		return nil, nil // sender is optional
	}

	sender, err := notify.NewSESSender(ctx, cfg.Reminder, logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SES sender")
	}

	return sender, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewDirectoryService,
			impl.NewShopService,
			impl.NewBillingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewDirectoryHandler,
			handler.NewShopHandler,
			handler.NewBillingHandler,
			handler.NewNavigationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewSweeper,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
