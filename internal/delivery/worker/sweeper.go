// Package worker contains the background deliveries that run alongside the
// HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"sokoo/config"
	"sokoo/internal/delivery"
	"sokoo/internal/usecase"

	"go.uber.org/fx"
)

type sweeper struct {
	cfg     *config.Config
	logger  *slog.Logger
	billing usecase.BillingUsecase

	stopCh chan struct{}
}

// SweeperParams holds dependencies for the overdue sweeper.
type SweeperParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	Billing usecase.BillingUsecase
}

// NewSweeper creates the periodic overdue sweep. Each tick deactivates every
// active shop whose current payment has lapsed past the grace period. A zero
// interval disables the loop; the admin sweep endpoint still works.
func NewSweeper(params SweeperParams) (delivery.Delivery, error) {
	s := &sweeper{
		cfg:     params.Cfg,
		logger:  params.Logger,
		billing: params.Billing,
		stopCh:  make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve runs the sweep loop until shutdown.
func (s *sweeper) Serve(ctx context.Context) error {
	interval := s.cfg.Billing.SweepInterval
	if interval <= 0 {
		s.logger.Info("Overdue sweeper disabled")
		<-s.stopCh

		return nil
	}

	s.logger.Info("Starting overdue sweeper", slog.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stopCh:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *sweeper) sweep(ctx context.Context) {
	count, err := s.billing.SweepOverdue(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Error("Overdue sweep failed", slog.Any("error", err))

		return
	}

	if count > 0 {
		s.logger.Info("Overdue sweep deactivated shops", slog.Int("count", count))
	}
}

func (s *sweeper) stop(ctx context.Context) error {
	close(s.stopCh)

	return nil
}
