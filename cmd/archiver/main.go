package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"backlot/config"
	"backlot/internal/domain/repository"
	logs "backlot/internal/infra/log"
	"backlot/internal/infra/persistence/postgres"
	"backlot/internal/usecase"
	"backlot/internal/usecase/impl"

	"go.uber.org/fx"
)

const defaultArchiveBatchPause = 250 * time.Millisecond

type runParams struct {
	fx.In
	fx.Shutdowner

	Logger    *slog.Logger
	Config    *config.Config
	Retention usecase.RetentionUsecase
}

// One-shot archival pass over aged notifications and delivery logs. Meant
// for operators who want to run retention out of band of the cron schedule,
// for example after lowering a threshold.
func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		fx.Invoke(
			runArchival,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewNotificationRepository,
			postgres.NewDeliveryRepository,
			postgres.NewArchiveRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newRetentionService,
		),
	)
}

type retentionServiceParams struct {
	fx.In

	Logger           *slog.Logger
	Config           *config.Config
	NotificationRepo repository.NotificationRepository
	DeliveryRepo     repository.DeliveryRepository
	ArchiveRepo      repository.ArchiveRepository
}

func newRetentionService(params retentionServiceParams) usecase.RetentionUsecase {
	pause := defaultArchiveBatchPause
	if params.Config.Retention != nil && params.Config.Retention.BatchPause > 0 {
		pause = params.Config.Retention.BatchPause
	}

	return impl.NewRetentionService(
		params.Logger,
		params.NotificationRepo,
		params.DeliveryRepo,
		params.ArchiveRepo,
		pause,
	)
}

func runArchival(ctx context.Context, params runParams) {
	go func() {
		retention := config.Retention{}
		if params.Config.Retention != nil {
			retention = *params.Config.Retention
		}

		failed := false

		report, err := params.Retention.ArchiveNotifications(ctx, retention.NotificationDays, retention.BatchSize)
		if err != nil {
			params.Logger.Error("Notification archival failed", slog.Any("error", err))
			failed = true
		} else {
			params.Logger.Info("Notification archival finished",
				slog.Int("archived", report.Archived),
				slog.Int("batches", report.Batches))
		}

		report, err = params.Retention.ArchiveDeliveryLogs(ctx, retention.DeliveryLogDays, retention.BatchSize)
		if err != nil {
			params.Logger.Error("Delivery log archival failed", slog.Any("error", err))
			failed = true
		} else {
			params.Logger.Info("Delivery log archival finished",
				slog.Int("archived", report.Archived),
				slog.Int("batches", report.Batches))
		}

		if shutdownErr := params.Shutdown(); shutdownErr != nil {
			slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
			os.Exit(1)
		}

		if failed {
			os.Exit(1)
		}
	}()
}
