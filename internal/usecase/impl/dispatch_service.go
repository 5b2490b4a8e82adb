package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"backlot/internal/domain/entity"
	domainerrors "backlot/internal/domain/errors"
	"backlot/internal/domain/repository"
	"backlot/internal/domain/service"
	"backlot/internal/errors"
	"backlot/internal/usecase"

	"github.com/google/uuid"
)

type dispatchService struct {
	logger           *slog.Logger
	txManager        repository.TransactionManager
	notificationRepo repository.NotificationRepository
	deliveryRepo     repository.DeliveryRepository
	prefRepo         repository.PreferenceRepository
	resolver         *Resolver
	quietGate        *QuietHoursGate
	rateLimiter      *RateLimiter
	roleDir          service.RoleDirectory
	providers        map[entity.Channel]service.ChannelProvider
	publisher        service.EventPublisher
	dispatchTimeout  time.Duration
}

// NewDispatchService creates the dispatcher that turns tenant events into
// routed, gated, tracked channel deliveries.
func NewDispatchService(
	logger *slog.Logger,
	txManager repository.TransactionManager,
	notificationRepo repository.NotificationRepository,
	deliveryRepo repository.DeliveryRepository,
	prefRepo repository.PreferenceRepository,
	resolver *Resolver,
	quietGate *QuietHoursGate,
	rateLimiter *RateLimiter,
	roleDir service.RoleDirectory,
	providers []service.ChannelProvider,
	publisher service.EventPublisher,
	dispatchTimeout time.Duration,
) usecase.DispatchUsecase {
	byChannel := make(map[entity.Channel]service.ChannelProvider, len(providers))
	for _, p := range providers {
		byChannel[p.Channel()] = p
	}

	return &dispatchService{
		logger:           logger,
		txManager:        txManager,
		notificationRepo: notificationRepo,
		deliveryRepo:     deliveryRepo,
		prefRepo:         prefRepo,
		resolver:         resolver,
		quietGate:        quietGate,
		rateLimiter:      rateLimiter,
		roleDir:          roleDir,
		providers:        byChannel,
		publisher:        publisher,
		dispatchTimeout:  dispatchTimeout,
	}
}

// Notify resolves, gates, persists, and dispatches one tenant event.
// Provider failures are retried later and never surfaced to the producer.
func (s *dispatchService) Notify(ctx context.Context, caller entity.Caller, desc *entity.EventDescriptor) (*usecase.DispatchReceipt, error) {
	if err := validateDescriptor(desc); err != nil {
		return nil, err
	}
	if !caller.CanAccessTenant(desc.TenantID) {
		return nil, domainerrors.ErrPermission.WithDetails("caller has no access to tenant " + desc.TenantID.String())
	}

	resolutions, err := s.resolver.Resolve(ctx, desc.TenantID, desc.Module, desc.Event, desc.Metadata)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve recipients")
	}

	receipt := &usecase.DispatchReceipt{}
	if len(resolutions) == 0 {
		return receipt, nil
	}

	now := time.Now().UTC()
	notification := buildNotification(desc, resolutions, now)

	attempts := make([]*entity.DeliveryAttempt, 0, len(resolutions))
	prefByUser := make(map[uuid.UUID]*entity.Preference, len(resolutions))

	for _, res := range resolutions {
		prefByUser[res.UserID] = res.Preference
		receipt.Recipients++

		if s.quietGate.IsSuppressed(res.Preference, now) {
			receipt.SuppressedQuietHours++
			s.logger.Info("deliveries suppressed by quiet hours",
				slog.String("user_id", res.UserID.String()),
				slog.String("event", desc.Event),
			)

			continue
		}

		for _, channel := range res.Channels.Slice() {
			if !s.rateLimiter.Allow(ctx, res.Preference, res.UserID, desc.TenantID, channel, now) {
				receipt.SuppressedRateLimit++
				s.logger.Info("delivery suppressed by rate limit",
					slog.String("user_id", res.UserID.String()),
					slog.String("channel", string(channel)),
					slog.String("event", desc.Event),
				)

				continue
			}

			attempts = append(attempts, entity.NewDeliveryAttempt(notification.ID, res.UserID, desc.TenantID, channel, now))
		}
	}

	receipt.NotificationID = notification.ID
	receipt.Attempts = len(attempts)

	// The notification and its queued attempts commit atomically; the audit
	// event publishes at the same boundary, right after the commit.
	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewNotificationRepository().CreateNotification(ctx, notification); err != nil {
			return err
		}
		if len(attempts) == 0 {
			return nil
		}

		return f.NewDeliveryRepository().CreateAttempts(ctx, attempts)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to persist notification")
	}

	s.publishDispatchEvent(ctx, notification, resolutions, receipt)

	s.dispatchAll(ctx, notification, attempts, prefByUser)

	return receipt, nil
}

// RetrySweep re-dispatches failed attempts still under their provider's
// retry cap. Attempts at the cap stay terminally failed with their last
// error preserved.
func (s *dispatchService) RetrySweep(ctx context.Context, limit int) (int, error) {
	retried := 0

	for _, provider := range s.providers {
		attempts, err := s.deliveryRepo.FindRetryableByChannel(ctx, provider.Channel(), provider.MaxRetries(), limit)
		if err != nil {
			return retried, errors.Wrap(err, "failed to load retryable attempts")
		}

		for _, attempt := range attempts {
			notification, err := s.notificationRepo.FindNotificationByID(ctx, attempt.NotificationID)
			if err != nil {
				s.logger.Warn("skipping retry for attempt with missing notification",
					slog.String("attempt_id", attempt.ID.String()),
					slog.Any("error", err),
				)

				continue
			}

			attempt.Requeue(time.Now().UTC())
			if err := s.deliveryRepo.SaveAttempt(ctx, attempt); err != nil {
				return retried, errors.Wrap(err, "failed to requeue attempt")
			}

			pref := s.preferenceFor(ctx, attempt.UserID, attempt.TenantID, notification.Module)
			s.dispatchOne(ctx, notification, attempt, pref)
			retried++
		}
	}

	return retried, nil
}

func validateDescriptor(desc *entity.EventDescriptor) error {
	switch {
	case desc == nil:
		return domainerrors.ErrValidation.WithDetails("event descriptor is required")
	case desc.TenantID == uuid.Nil:
		return domainerrors.ErrValidation.WithDetails("tenant_id is required")
	case !desc.Module.Valid():
		return domainerrors.ErrValidation.WithDetails("unknown module: " + string(desc.Module))
	case desc.Event == "":
		return domainerrors.ErrValidation.WithDetails("event name is required")
	case desc.Title == "":
		return domainerrors.ErrValidation.WithDetails("title is required")
	}

	return nil
}

// buildNotification creates the single logical notification row for the
// event. A lone recipient owns the row; any wider fan-out becomes a
// broadcast with no owning user.
func buildNotification(desc *entity.EventDescriptor, resolutions []Resolution, now time.Time) *entity.Notification {
	var userID *uuid.UUID
	if len(resolutions) == 1 {
		id := resolutions[0].UserID
		userID = &id
	}

	priority := desc.Metadata.Priority
	if !priority.Valid() {
		priority = entity.PriorityNormal
	}

	return &entity.Notification{
		ID:         uuid.New(),
		UserID:     userID,
		TenantID:   desc.TenantID,
		Module:     desc.Module,
		Event:      desc.Event,
		EntityType: desc.Metadata.EntityType,
		EntityID:   desc.Metadata.EntityID,
		ThreadID:   desc.Metadata.ThreadID,
		Title:      desc.Title,
		Message:    desc.Message,
		ActionURL:  desc.ActionURL,
		Priority:   priority,
		CreatedAt:  now,
	}
}

func (s *dispatchService) publishDispatchEvent(ctx context.Context, notification *entity.Notification, resolutions []Resolution, receipt *usecase.DispatchReceipt) {
	recipientIDs := make([]string, 0, len(resolutions))
	for _, res := range resolutions {
		recipientIDs = append(recipientIDs, res.UserID.String())
	}

	event := &service.DispatchEvent{
		NotificationID:  notification.ID.String(),
		TenantID:        notification.TenantID.String(),
		Module:          string(notification.Module),
		Event:           notification.Event,
		RecipientIDs:    recipientIDs,
		AttemptCount:    receipt.Attempts,
		SuppressedQuiet: receipt.SuppressedQuietHours,
		SuppressedRate:  receipt.SuppressedRateLimit,
	}

	if err := s.publisher.PublishDispatchEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish dispatch event",
			slog.String("notification_id", notification.ID.String()),
			slog.Any("error", err),
		)
	}
}

// dispatchAll hands every queued attempt to its channel provider
// concurrently. There is no ordering guarantee between channels.
func (s *dispatchService) dispatchAll(ctx context.Context, notification *entity.Notification, attempts []*entity.DeliveryAttempt, prefByUser map[uuid.UUID]*entity.Preference) {
	var wg sync.WaitGroup
	for _, attempt := range attempts {
		wg.Add(1)
		go func(attempt *entity.DeliveryAttempt) {
			defer wg.Done()
			s.dispatchOne(ctx, notification, attempt, prefByUser[attempt.UserID])
		}(attempt)
	}
	wg.Wait()
}

// dispatchOne performs the provider handoff for one attempt and persists the
// resulting queued -> sent / queued -> failed transition. A timeout counts
// as a retryable failure.
func (s *dispatchService) dispatchOne(ctx context.Context, notification *entity.Notification, attempt *entity.DeliveryAttempt, pref *entity.Preference) {
	provider, ok := s.providers[attempt.Channel]
	if !ok {
		s.failAttempt(ctx, attempt, "NO_PROVIDER", "no provider registered for channel "+string(attempt.Channel))

		return
	}

	contact, err := s.roleDir.ContactFor(ctx, attempt.TenantID, attempt.UserID)
	if err != nil {
		s.failAttempt(ctx, attempt, "CONTACT_UNAVAILABLE", err.Error())

		return
	}

	msg := &service.Message{
		Notification: notification,
		Attempt:      attempt,
		Email:        contact.Email,
		Phone:        contact.Phone,
		PushTokens:   contact.PushTokens,
	}
	if pref != nil && pref.PhoneOverride != "" {
		msg.Phone = pref.PhoneOverride
	}

	callCtx, cancel := context.WithTimeout(ctx, s.dispatchTimeout)
	defer cancel()

	result, err := provider.Send(callCtx, msg)
	now := time.Now().UTC()
	if err != nil {
		s.failAttempt(ctx, attempt, "PROVIDER_ERROR", err.Error())

		return
	}

	attempt.Provider = provider.Name()
	attempt.ExternalMessageID = result.ExternalMessageID
	attempt.Transition(entity.DeliverySent, now)
	if result.Delivered {
		attempt.Transition(entity.DeliveryDelivered, now)
	}

	if err := s.deliveryRepo.SaveAttempt(ctx, attempt); err != nil {
		s.logger.Error("failed to persist delivery transition",
			slog.String("attempt_id", attempt.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *dispatchService) failAttempt(ctx context.Context, attempt *entity.DeliveryAttempt, code, message string) {
	attempt.Fail(code, message, time.Now().UTC())

	if err := s.deliveryRepo.SaveAttempt(ctx, attempt); err != nil {
		s.logger.Error("failed to persist delivery failure",
			slog.String("attempt_id", attempt.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	s.logger.Warn("delivery attempt failed",
		slog.String("attempt_id", attempt.ID.String()),
		slog.String("channel", string(attempt.Channel)),
		slog.String("code", code),
		slog.String("error", message),
	)
}

// preferenceFor loads the user's preference for retry dispatches, falling
// back to module defaults.
func (s *dispatchService) preferenceFor(ctx context.Context, userID, tenantID uuid.UUID, module entity.Module) *entity.Preference {
	pref, err := s.prefRepo.FindPreference(ctx, userID, tenantID, module)
	if err != nil {
		return entity.DefaultPreference(userID, tenantID, module, time.Now().UTC())
	}

	return pref
}
