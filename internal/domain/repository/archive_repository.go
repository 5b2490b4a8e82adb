package repository

import (
	"context"
	"time"

	"backlot/internal/domain/entity"

	"github.com/google/uuid"
)

// ArchiveRepository persists cold-storage copies of aged notification and
// delivery rows. Writes are append-only: archiving copies first and deletes
// from hot storage only after the copy commits, so a crash mid-run can at
// worst leave a row in both stores.
type ArchiveRepository interface {
	// ArchiveNotifications appends cold copies of the given notifications,
	// stamped archivedAt. Rows already archived are overwritten in place so
	// re-runs stay idempotent.
	ArchiveNotifications(ctx context.Context, notifications []*entity.Notification, archivedAt time.Time) error

	// ArchiveDeliveryAttempts appends cold copies of the given attempts.
	ArchiveDeliveryAttempts(ctx context.Context, attempts []*entity.DeliveryAttempt, archivedAt time.Time) error

	// FindNotificationsByDateRange retrieves a user's archived notifications
	// created inside the range, for the combined hot+cold query.
	FindNotificationsByDateRange(ctx context.Context, userID, tenantID uuid.UUID, from, to time.Time) ([]*entity.ArchivedNotification, error)
}
