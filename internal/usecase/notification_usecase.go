package usecase

import (
	"context"

	"backlot/internal/domain/entity"
	"backlot/internal/domain/repository"

	"github.com/google/uuid"
)

// NotificationUsecase serves the read side of the notification store:
// listing, unread counts, and the idempotent read/dismiss mutations.
type NotificationUsecase interface {
	// List retrieves a user's notifications (including broadcasts) for a
	// tenant, newest first.
	List(ctx context.Context, caller entity.Caller, userID, tenantID uuid.UUID, filter repository.NotificationFilter, limit, offset int) ([]*entity.Notification, error)

	// UnreadCount counts unread, undismissed notifications for the user in
	// the tenant.
	UnreadCount(ctx context.Context, caller entity.Caller, userID, tenantID uuid.UUID) (int64, error)

	// MarkRead marks one notification read. Idempotent; restricted to the
	// notification's owner.
	MarkRead(ctx context.Context, caller entity.Caller, id uuid.UUID) error

	// MarkReadBatch marks several notifications read in one call.
	MarkReadBatch(ctx context.Context, caller entity.Caller, ids []uuid.UUID) error

	// Dismiss dismisses one notification. Idempotent; owner-restricted.
	Dismiss(ctx context.Context, caller entity.Caller, id uuid.UUID) error
}
