// Package scheduler runs the periodic maintenance jobs: retention archival
// and the failed-delivery retry sweep.
package scheduler

import (
	"context"
	"log/slog"

	"backlot/config"
	"backlot/internal/errors"
	"backlot/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Scheduler owns the cron runner. Jobs are isolated: a failing archival run
// logs and waits for the next tick, it never takes the process down.
type Scheduler struct {
	cron      *cron.Cron
	logger    *slog.Logger
	cfg       *config.Retention
	retention usecase.RetentionUsecase
	dispatch  usecase.DispatchUsecase
}

// Params holds dependencies for the scheduler, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Logger    *slog.Logger
	Retention usecase.RetentionUsecase
	Dispatch  usecase.DispatchUsecase
}

// New creates the cron scheduler and registers its lifecycle hooks.
func New(params Params) (*Scheduler, error) {
	s := &Scheduler{
		cron:      cron.New(),
		logger:    params.Logger,
		cfg:       params.Config.Retention,
		retention: params.Retention,
		dispatch:  params.Dispatch,
	}

	if err := s.register(); err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.cron.Start()
			params.Logger.Info("Scheduler started",
				slog.Int("jobs", len(s.cron.Entries())),
			)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopped := s.cron.Stop()
			select {
			case <-stopped.Done():
			case <-ctx.Done():
				return ctx.Err()
			}

			return nil
		},
	})

	return s, nil
}

func (s *Scheduler) register() error {
	if s.cfg == nil {
		s.logger.Info("Retention not configured, scheduler runs retry sweep only")
		s.cfg = &config.Retention{}
	}

	cfg := s.cfg

	if spec := cfg.NotificationCron; spec != "" {
		if _, err := s.cron.AddFunc(spec, s.runNotificationArchival); err != nil {
			return errors.Wrap(err, "failed to schedule notification archival")
		}
	}

	if spec := cfg.DeliveryLogCron; spec != "" {
		if _, err := s.cron.AddFunc(spec, s.runDeliveryLogArchival); err != nil {
			return errors.Wrap(err, "failed to schedule delivery log archival")
		}
	}

	if spec := cfg.RetrySweepCron; spec != "" {
		if _, err := s.cron.AddFunc(spec, s.runRetrySweep); err != nil {
			return errors.Wrap(err, "failed to schedule retry sweep")
		}
	}

	return nil
}

func (s *Scheduler) runNotificationArchival() {
	ctx := context.Background()

	report, err := s.retention.ArchiveNotifications(ctx, s.cfg.NotificationDays, s.cfg.BatchSize)
	if err != nil {
		s.logger.Error("Notification archival failed", slog.Any("error", err))

		return
	}

	s.logger.Info("Notification archival completed",
		slog.Int("batches", report.Batches),
		slog.Int("archived", report.Archived),
	)
}

func (s *Scheduler) runDeliveryLogArchival() {
	ctx := context.Background()

	report, err := s.retention.ArchiveDeliveryLogs(ctx, s.cfg.DeliveryLogDays, s.cfg.BatchSize)
	if err != nil {
		s.logger.Error("Delivery log archival failed", slog.Any("error", err))

		return
	}

	s.logger.Info("Delivery log archival completed",
		slog.Int("batches", report.Batches),
		slog.Int("archived", report.Archived),
	)
}

func (s *Scheduler) runRetrySweep() {
	ctx := context.Background()

	retried, err := s.dispatch.RetrySweep(ctx, s.cfg.RetrySweepLimit)
	if err != nil {
		s.logger.Error("Retry sweep failed", slog.Any("error", err))

		return
	}

	if retried > 0 {
		s.logger.Info("Retry sweep completed", slog.Int("retried", retried))
	}
}

// Module provides the scheduler FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
