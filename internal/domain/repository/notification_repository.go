package repository

import (
	"context"
	"errors"
	"time"

	"backlot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationFilter narrows a notification listing.
type NotificationFilter struct {
	UnreadOnly       bool
	IncludeDismissed bool
}

// NotificationRepository persists logical notifications (hot storage).
type NotificationRepository interface {
	// CreateNotification persists a new notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// ListNotifications retrieves a user's notifications for a tenant,
	// including broadcasts, newest first.
	ListNotifications(ctx context.Context, userID, tenantID uuid.UUID, filter NotificationFilter, limit, offset int) ([]*entity.Notification, error)

	// CountUnread counts rows where read = false and dismissed = false,
	// scoped to the tenant.
	CountUnread(ctx context.Context, userID, tenantID uuid.UUID) (int64, error)

	// SaveNotification writes back read/dismiss mutations.
	SaveNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationsByIDs retrieves multiple notifications at once.
	FindNotificationsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Notification, error)

	// FindArchivable retrieves up to limit read-or-dismissed notifications
	// created before the cutoff, oldest first. Unread rows are never
	// returned: they must stay in hot storage.
	FindArchivable(ctx context.Context, cutoff time.Time, limit int) ([]*entity.Notification, error)

	// DeleteNotifications removes rows by id. Used by the archiver after a
	// successful cold-storage copy.
	DeleteNotifications(ctx context.Context, ids []uuid.UUID) error

	// FindByDateRange retrieves a user's notifications created inside the
	// range, for the combined hot+cold query.
	FindByDateRange(ctx context.Context, userID, tenantID uuid.UUID, from, to time.Time) ([]*entity.Notification, error)
}
