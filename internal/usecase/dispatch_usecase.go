// Package usecase defines the interfaces for the application's use cases.
package usecase

import (
	"context"

	"backlot/internal/domain/entity"

	"github.com/google/uuid"
)

// DispatchReceipt summarizes what one Notify call produced. Producers get it
// back immediately; delivery itself is fire-and-forget.
type DispatchReceipt struct {
	NotificationID       uuid.UUID `json:"notification_id"`
	Recipients           int       `json:"recipients"`
	Attempts             int       `json:"attempts"`
	SuppressedQuietHours int       `json:"suppressed_quiet_hours"`
	SuppressedRateLimit  int       `json:"suppressed_rate_limit"`
}

// DispatchUsecase is the event producer interface: it turns a tenant event
// into routed, gated, tracked channel deliveries.
type DispatchUsecase interface {
	// Notify resolves recipients for the event, applies quiet hours and rate
	// limits, creates one Notification plus one DeliveryAttempt per
	// (recipient, channel), and dispatches the attempts. A zero-recipient
	// event is a no-op receipt, not an error.
	Notify(ctx context.Context, caller entity.Caller, desc *entity.EventDescriptor) (*DispatchReceipt, error)

	// RetrySweep re-dispatches failed attempts whose retry count is under the
	// provider cap. Returns the number of attempts retried.
	RetrySweep(ctx context.Context, limit int) (int, error)
}
