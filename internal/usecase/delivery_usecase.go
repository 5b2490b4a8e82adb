package usecase

import (
	"context"
	"time"

	"backlot/internal/domain/entity"

	"github.com/google/uuid"
)

// DeliveryUsecase is the delivery tracker: it receives provider callbacks and
// serves per-notification attempt lookups.
type DeliveryUsecase interface {
	// OnDeliveryStatus applies an inbound provider callback to the attempt
	// matching (provider, externalID). Unknown correlation ids and
	// transitions the state machine forbids are rejected.
	OnDeliveryStatus(ctx context.Context, provider, externalID string, status entity.DeliveryStatus, ts time.Time, errorCode, errorMessage string) error

	// AttemptsForNotification retrieves every delivery attempt of one
	// notification.
	AttemptsForNotification(ctx context.Context, caller entity.Caller, notificationID uuid.UUID) ([]*entity.DeliveryAttempt, error)
}
