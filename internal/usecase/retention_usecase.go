package usecase

import (
	"context"
	"time"

	"backlot/internal/domain/entity"

	"github.com/google/uuid"
)

// ArchiveReport summarizes one archival run.
type ArchiveReport struct {
	Batches  int `json:"batches"`
	Archived int `json:"archived"`
}

// RetentionUsecase is the batched, idempotent archival policy: aged rows are
// copied to cold storage and only then removed from hot storage.
type RetentionUsecase interface {
	// ArchiveNotifications moves read-or-dismissed notifications older than
	// thresholdDays to cold storage, batchSize rows per bounded transaction.
	ArchiveNotifications(ctx context.Context, thresholdDays, batchSize int) (*ArchiveReport, error)

	// ArchiveDeliveryLogs moves delivery attempts older than thresholdDays to
	// cold storage.
	ArchiveDeliveryLogs(ctx context.Context, thresholdDays, batchSize int) (*ArchiveReport, error)

	// CombinedHistory unions hot and cold storage for a user's notifications
	// inside the date range, tagging each row with its origin.
	CombinedHistory(ctx context.Context, caller entity.Caller, userID, tenantID uuid.UUID, from, to time.Time) ([]*entity.StoredNotification, error)
}
