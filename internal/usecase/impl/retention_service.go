package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"backlot/internal/domain/entity"
	"backlot/internal/domain/repository"
	"backlot/internal/errors"
	"backlot/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultNotificationThresholdDays = 180
	defaultDeliveryThresholdDays     = 90
	defaultArchiveBatchSize          = 500
)

type retentionService struct {
	logger           *slog.Logger
	notificationRepo repository.NotificationRepository
	deliveryRepo     repository.DeliveryRepository
	archiveRepo      repository.ArchiveRepository
	batchPause       time.Duration
}

// NewRetentionService creates the retention archiver. batchPause bounds lock
// duration and resource contention between batches.
func NewRetentionService(
	logger *slog.Logger,
	notificationRepo repository.NotificationRepository,
	deliveryRepo repository.DeliveryRepository,
	archiveRepo repository.ArchiveRepository,
	batchPause time.Duration,
) usecase.RetentionUsecase {
	return &retentionService{
		logger:           logger,
		notificationRepo: notificationRepo,
		deliveryRepo:     deliveryRepo,
		archiveRepo:      archiveRepo,
		batchPause:       batchPause,
	}
}

// ArchiveNotifications moves aged read-or-dismissed notifications to cold
// storage, copy first and delete only after the copy commits. Re-running
// with the same threshold finds nothing left to move.
func (s *retentionService) ArchiveNotifications(ctx context.Context, thresholdDays, batchSize int) (*usecase.ArchiveReport, error) {
	if thresholdDays <= 0 {
		thresholdDays = defaultNotificationThresholdDays
	}
	if batchSize <= 0 {
		batchSize = defaultArchiveBatchSize
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -thresholdDays)
	report := &usecase.ArchiveReport{}

	for {
		if err := ctx.Err(); err != nil {
			return report, errors.Wrap(err, "archival interrupted")
		}

		batch, err := s.notificationRepo.FindArchivable(ctx, cutoff, batchSize)
		if err != nil {
			return report, errors.Wrap(err, "failed to load archivable notifications")
		}
		if len(batch) == 0 {
			break
		}

		if err := s.archiveRepo.ArchiveNotifications(ctx, batch, time.Now().UTC()); err != nil {
			return report, errors.Wrap(err, "failed to copy notifications to cold storage")
		}

		ids := make([]uuid.UUID, 0, len(batch))
		for _, n := range batch {
			ids = append(ids, n.ID)
		}
		if err := s.notificationRepo.DeleteNotifications(ctx, ids); err != nil {
			return report, errors.Wrap(err, "failed to purge archived notifications")
		}

		report.Batches++
		report.Archived += len(batch)

		if len(batch) < batchSize {
			break
		}
		s.pause(ctx)
	}

	s.logger.Info("notification archival run complete",
		slog.Int("archived", report.Archived),
		slog.Int("batches", report.Batches),
	)

	return report, nil
}

// ArchiveDeliveryLogs moves aged delivery attempts to cold storage with the
// same copy-then-delete batching.
func (s *retentionService) ArchiveDeliveryLogs(ctx context.Context, thresholdDays, batchSize int) (*usecase.ArchiveReport, error) {
	if thresholdDays <= 0 {
		thresholdDays = defaultDeliveryThresholdDays
	}
	if batchSize <= 0 {
		batchSize = defaultArchiveBatchSize
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -thresholdDays)
	report := &usecase.ArchiveReport{}

	for {
		if err := ctx.Err(); err != nil {
			return report, errors.Wrap(err, "archival interrupted")
		}

		batch, err := s.deliveryRepo.FindArchivable(ctx, cutoff, batchSize)
		if err != nil {
			return report, errors.Wrap(err, "failed to load archivable delivery attempts")
		}
		if len(batch) == 0 {
			break
		}

		if err := s.archiveRepo.ArchiveDeliveryAttempts(ctx, batch, time.Now().UTC()); err != nil {
			return report, errors.Wrap(err, "failed to copy delivery attempts to cold storage")
		}

		ids := make([]uuid.UUID, 0, len(batch))
		for _, a := range batch {
			ids = append(ids, a.ID)
		}
		if err := s.deliveryRepo.DeleteAttempts(ctx, ids); err != nil {
			return report, errors.Wrap(err, "failed to purge archived delivery attempts")
		}

		report.Batches++
		report.Archived += len(batch)

		if len(batch) < batchSize {
			break
		}
		s.pause(ctx)
	}

	s.logger.Info("delivery log archival run complete",
		slog.Int("archived", report.Archived),
		slog.Int("batches", report.Batches),
	)

	return report, nil
}

// CombinedHistory unions hot and cold storage so callers need not know
// whether a record has been archived.
func (s *retentionService) CombinedHistory(ctx context.Context, caller entity.Caller, userID, tenantID uuid.UUID, from, to time.Time) ([]*entity.StoredNotification, error) {
	if err := checkPreferenceAccess(caller, userID, tenantID); err != nil {
		return nil, err
	}

	hot, err := s.notificationRepo.FindByDateRange(ctx, userID, tenantID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query hot storage")
	}

	cold, err := s.archiveRepo.FindNotificationsByDateRange(ctx, userID, tenantID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query cold storage")
	}

	combined := make([]*entity.StoredNotification, 0, len(hot)+len(cold))
	// A crash between copy and purge can leave a row in both stores; the hot
	// copy wins the union.
	seen := make(map[uuid.UUID]struct{}, len(hot))

	for _, n := range hot {
		seen[n.ID] = struct{}{}
		combined = append(combined, &entity.StoredNotification{Notification: *n, Origin: entity.OriginHot})
	}
	for _, n := range cold {
		if _, dup := seen[n.ID]; dup {
			continue
		}
		combined = append(combined, &entity.StoredNotification{Notification: n.Notification, Origin: entity.OriginCold})
	}

	sort.Slice(combined, func(i, j int) bool {
		return combined[i].CreatedAt.After(combined[j].CreatedAt)
	})

	return combined, nil
}

func (s *retentionService) pause(ctx context.Context) {
	if s.batchPause <= 0 {
		return
	}

	select {
	case <-ctx.Done():
	case <-time.After(s.batchPause):
	}
}
