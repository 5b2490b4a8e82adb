package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"backlot/config"
	"backlot/internal/delivery"
	"backlot/internal/delivery/http"
	"backlot/internal/delivery/http/middleware"
	"backlot/internal/delivery/http/router/handler"
	"backlot/internal/domain/repository"
	"backlot/internal/domain/service"
	"backlot/internal/infra/directory"
	logs "backlot/internal/infra/log"
	"backlot/internal/infra/persistence/postgres"
	"backlot/internal/infra/provider"
	"backlot/internal/infra/pubsub"
	"backlot/internal/infra/scheduler"
	"backlot/internal/usecase"
	"backlot/internal/usecase/impl"

	"go.uber.org/fx"
)

const (
	defaultDispatchTimeout   = 15 * time.Second
	defaultArchiveBatchPause = 250 * time.Millisecond
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
	Scheduler  *scheduler.Scheduler
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
		provider.Module,
		directory.Module,
		scheduler.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPreferenceRepository,
			postgres.NewRuleRepository,
			postgres.NewNotificationRepository,
			postgres.NewDeliveryRepository,
			postgres.NewArchiveRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewResolver,
			impl.NewQuietHoursGate,
			impl.NewRateLimiter,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newDispatchService,
			impl.NewPreferenceService,
			impl.NewNotificationService,
			impl.NewDeliveryService,
			newRetentionService,
			impl.NewAnalyticsService,
		),
	)
}

type dispatchServiceParams struct {
	fx.In

	Logger           *slog.Logger
	Config           *config.Config
	TxManager        repository.TransactionManager
	NotificationRepo repository.NotificationRepository
	DeliveryRepo     repository.DeliveryRepository
	PrefRepo         repository.PreferenceRepository
	Resolver         *impl.Resolver
	QuietGate        *impl.QuietHoursGate
	RateLimiter      *impl.RateLimiter
	RoleDir          service.RoleDirectory
	Providers        []service.ChannelProvider
	Publisher        service.EventPublisher
}

func newDispatchService(params dispatchServiceParams) usecase.DispatchUsecase {
	timeout := defaultDispatchTimeout
	if params.Config.Dispatch != nil && params.Config.Dispatch.Timeout > 0 {
		timeout = params.Config.Dispatch.Timeout
	}

	return impl.NewDispatchService(
		params.Logger,
		params.TxManager,
		params.NotificationRepo,
		params.DeliveryRepo,
		params.PrefRepo,
		params.Resolver,
		params.QuietGate,
		params.RateLimiter,
		params.RoleDir,
		params.Providers,
		params.Publisher,
		timeout,
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

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDispatchHandler,
			handler.NewCallbackHandler,
			handler.NewNotificationHandler,
			handler.NewPreferenceHandler,
			handler.NewHistoryHandler,
			handler.NewAnalyticsHandler,
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
