package postgres

import (
	"context"
	"time"

	"backlot/internal/domain/entity"
	domainerrors "backlot/internal/domain/errors"
	"backlot/internal/domain/repository"
	"backlot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// archiveRepository implements the repository.ArchiveRepository interface.
// The archive models are routed to the cold-storage connection by the
// dbresolver plugin when one is configured; otherwise they share the primary
// database.
type archiveRepository struct {
	db *gorm.DB
}

// NewArchiveRepository is the constructor for archiveRepository.
func NewArchiveRepository(db *gorm.DB) repository.ArchiveRepository {
	return &archiveRepository{
		db: db,
	}
}

// ArchiveNotifications appends cold copies of the given notifications. Upsert
// on the original primary key keeps crash re-runs idempotent.
func (repo *archiveRepository) ArchiveNotifications(ctx context.Context, notifications []*entity.Notification, archivedAt time.Time) error {
	if len(notifications) == 0 {
		return nil
	}

	archiveModels := make([]*model.ArchivedNotificationModel, 0, len(notifications))
	for _, notification := range notifications {
		archiveModels = append(archiveModels, fromNotificationToArchive(notification, archivedAt))
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(archiveModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to archive notifications")
	}

	return nil
}

// ArchiveDeliveryAttempts appends cold copies of the given attempts.
func (repo *archiveRepository) ArchiveDeliveryAttempts(ctx context.Context, attempts []*entity.DeliveryAttempt, archivedAt time.Time) error {
	if len(attempts) == 0 {
		return nil
	}

	archiveModels := make([]*model.ArchivedDeliveryAttemptModel, 0, len(attempts))
	for _, attempt := range attempts {
		archiveModels = append(archiveModels, fromAttemptToArchive(attempt, archivedAt))
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(archiveModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to archive delivery attempts")
	}

	return nil
}

// FindNotificationsByDateRange retrieves a user's archived notifications
// created inside the range, newest first.
func (repo *archiveRepository) FindNotificationsByDateRange(ctx context.Context, userID, tenantID uuid.UUID, from, to time.Time) ([]*entity.ArchivedNotification, error) {
	var archiveModels []*model.ArchivedNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("tenant_id = ? AND (user_id = ? OR user_id IS NULL)", tenantID, userID).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Order("created_at DESC").
		Find(&archiveModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find archived notifications by date range")
	}

	archived := make([]*entity.ArchivedNotification, 0, len(archiveModels))
	for _, archiveM := range archiveModels {
		archived = append(archived, toArchivedNotificationDomain(archiveM))
	}

	return archived, nil
}

func fromNotificationToArchive(notification *entity.Notification, archivedAt time.Time) *model.ArchivedNotificationModel {
	return &model.ArchivedNotificationModel{
		ID:          notification.ID,
		UserID:      notification.UserID,
		TenantID:    notification.TenantID,
		Module:      string(notification.Module),
		Event:       notification.Event,
		Priority:    string(notification.Priority),
		EntityType:  notification.EntityType,
		EntityID:    notification.EntityID,
		ThreadID:    notification.ThreadID,
		Title:       notification.Title,
		Message:     notification.Message,
		ActionURL:   notification.ActionURL,
		Read:        notification.Read,
		ReadAt:      notification.ReadAt,
		Dismissed:   notification.Dismissed,
		DismissedAt: notification.DismissedAt,
		CreatedAt:   notification.CreatedAt,
		ArchivedAt:  archivedAt,
	}
}

func toArchivedNotificationDomain(data *model.ArchivedNotificationModel) *entity.ArchivedNotification {
	return &entity.ArchivedNotification{
		Notification: entity.Notification{
			ID:          data.ID,
			UserID:      data.UserID,
			TenantID:    data.TenantID,
			Module:      entity.Module(data.Module),
			Event:       data.Event,
			EntityType:  data.EntityType,
			EntityID:    data.EntityID,
			ThreadID:    data.ThreadID,
			Title:       data.Title,
			Message:     data.Message,
			ActionURL:   data.ActionURL,
			Priority:    entity.Priority(data.Priority),
			Read:        data.Read,
			ReadAt:      data.ReadAt,
			Dismissed:   data.Dismissed,
			DismissedAt: data.DismissedAt,
			CreatedAt:   data.CreatedAt,
		},
		ArchivedAt: data.ArchivedAt,
	}
}

func fromAttemptToArchive(attempt *entity.DeliveryAttempt, archivedAt time.Time) *model.ArchivedDeliveryAttemptModel {
	return &model.ArchivedDeliveryAttemptModel{
		ID:                attempt.ID,
		NotificationID:    attempt.NotificationID,
		UserID:            attempt.UserID,
		TenantID:          attempt.TenantID,
		Channel:           string(attempt.Channel),
		Status:            string(attempt.Status),
		Provider:          attempt.Provider,
		ExternalMessageID: attempt.ExternalMessageID,
		QueuedAt:          attempt.QueuedAt,
		SentAt:            attempt.SentAt,
		DeliveredAt:       attempt.DeliveredAt,
		OpenedAt:          attempt.OpenedAt,
		ClickedAt:         attempt.ClickedAt,
		FailedAt:          attempt.FailedAt,
		LatencyMS:         attempt.LatencyMS,
		RetryCount:        attempt.RetryCount,
		ErrorCode:         attempt.ErrorCode,
		ErrorMessage:      attempt.ErrorMessage,
		CreatedAt:         attempt.QueuedAt,
		ArchivedAt:        archivedAt,
	}
}
