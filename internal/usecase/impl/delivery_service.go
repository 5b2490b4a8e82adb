package impl

import (
	"context"
	"log/slog"
	"time"

	"backlot/internal/domain/entity"
	domainerrors "backlot/internal/domain/errors"
	"backlot/internal/domain/repository"
	"backlot/internal/errors"
	"backlot/internal/usecase"

	"github.com/google/uuid"
)

type deliveryService struct {
	logger           *slog.Logger
	deliveryRepo     repository.DeliveryRepository
	notificationRepo repository.NotificationRepository
}

// NewDeliveryService creates the delivery tracker.
func NewDeliveryService(
	logger *slog.Logger,
	deliveryRepo repository.DeliveryRepository,
	notificationRepo repository.NotificationRepository,
) usecase.DeliveryUsecase {
	return &deliveryService{
		logger:           logger,
		deliveryRepo:     deliveryRepo,
		notificationRepo: notificationRepo,
	}
}

// OnDeliveryStatus applies an inbound provider callback to the matching
// attempt: lifecycle transition, milestone timestamp, latency, and any error
// detail.
func (s *deliveryService) OnDeliveryStatus(ctx context.Context, provider, externalID string, status entity.DeliveryStatus, ts time.Time, errorCode, errorMessage string) error {
	if provider == "" || externalID == "" {
		return domainerrors.ErrValidation.WithDetails("provider and external id are required")
	}
	if !status.Valid() {
		return domainerrors.ErrValidation.WithDetails("unknown delivery status: " + string(status))
	}

	attempt, err := s.deliveryRepo.FindAttemptByExternalID(ctx, provider, externalID)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return domainerrors.ErrValidation.WithDetails("unknown correlation id " + externalID + " for provider " + provider)
		}

		return errors.Wrap(err, "failed to load delivery attempt")
	}

	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	if !attempt.Transition(status, ts) {
		return domainerrors.ErrValidation.WithDetails(
			"transition " + string(attempt.Status) + " -> " + string(status) + " is not allowed")
	}

	if status == entity.DeliveryFailed || status == entity.DeliveryBounced || status == entity.DeliveryRejected {
		attempt.ErrorCode = errorCode
		attempt.ErrorMessage = errorMessage
	}

	if err := s.deliveryRepo.SaveAttempt(ctx, attempt); err != nil {
		return errors.Wrap(err, "failed to save delivery attempt")
	}

	s.logger.Debug("delivery status updated",
		slog.String("attempt_id", attempt.ID.String()),
		slog.String("provider", provider),
		slog.String("status", string(status)),
	)

	return nil
}

// AttemptsForNotification retrieves every attempt for one notification,
// restricted to callers with access to the notification's tenant.
func (s *deliveryService) AttemptsForNotification(ctx context.Context, caller entity.Caller, notificationID uuid.UUID) ([]*entity.DeliveryAttempt, error) {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("notification " + notificationID.String())
		}

		return nil, errors.Wrap(err, "failed to load notification")
	}

	if !caller.CanAccessTenant(notification.TenantID) {
		return nil, domainerrors.ErrPermission.WithDetails("caller has no access to tenant " + notification.TenantID.String())
	}

	attempts, err := s.deliveryRepo.FindAttemptsByNotification(ctx, notificationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load delivery attempts")
	}

	return attempts, nil
}
