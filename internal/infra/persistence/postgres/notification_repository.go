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
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required notification fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// ListNotifications retrieves a user's notifications for a tenant, including
// broadcast rows, newest first.
func (repo *notificationRepository) ListNotifications(ctx context.Context, userID, tenantID uuid.UUID, filter repository.NotificationFilter, limit, offset int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).
		Where("tenant_id = ? AND (user_id = ? OR user_id IS NULL)", tenantID, userID).
		Order("created_at DESC")

	if filter.UnreadOnly {
		query = query.Where("read = false")
	}
	if !filter.IncludeDismissed {
		query = query.Where("dismissed = false")
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return toNotificationDomainSlice(notificationModels), nil
}

// CountUnread counts undismissed unread rows for a user within a tenant.
func (repo *notificationRepository) CountUnread(ctx context.Context, userID, tenantID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("tenant_id = ? AND (user_id = ? OR user_id IS NULL)", tenantID, userID).
		Where("read = false AND dismissed = false").
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// SaveNotification writes back read/dismiss mutations.
func (repo *notificationRepository) SaveNotification(ctx context.Context, notification *entity.Notification) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", notification.ID).
		Updates(map[string]interface{}{
			"read":         notification.Read,
			"read_at":      notification.ReadAt,
			"dismissed":    notification.Dismissed,
			"dismissed_at": notification.DismissedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to save notification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// FindNotificationsByIDs retrieves multiple notifications at once.
func (repo *notificationRepository) FindNotificationsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Notification, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by IDs")
	}

	return toNotificationDomainSlice(notificationModels), nil
}

// FindArchivable retrieves up to limit read-or-dismissed notifications
// created before the cutoff, oldest first. Unread undismissed rows never
// qualify.
func (repo *notificationRepository) FindArchivable(ctx context.Context, cutoff time.Time, limit int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("created_at < ? AND (read = true OR dismissed = true)", cutoff).
		Order("created_at ASC").
		Limit(limit).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find archivable notifications")
	}

	return toNotificationDomainSlice(notificationModels), nil
}

// DeleteNotifications removes rows by id after a successful cold-storage copy.
func (repo *notificationRepository) DeleteNotifications(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.NotificationModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete notifications")
	}

	return nil
}

// FindByDateRange retrieves a user's notifications created inside the range,
// newest first.
func (repo *notificationRepository) FindByDateRange(ctx context.Context, userID, tenantID uuid.UUID, from, to time.Time) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("tenant_id = ? AND (user_id = ? OR user_id IS NULL)", tenantID, userID).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Order("created_at DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by date range")
	}

	return toNotificationDomainSlice(notificationModels), nil
}

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	return &entity.Notification{
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
	}
}

func toNotificationDomainSlice(models []*model.NotificationModel) []*entity.Notification {
	notifications := make([]*entity.Notification, 0, len(models))
	for _, notificationM := range models {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications
}

func fromNotificationDomain(notification *entity.Notification) *model.NotificationModel {
	return &model.NotificationModel{
		ID:          notification.ID,
		UserID:      notification.UserID,
		TenantID:    notification.TenantID,
		Module:      string(notification.Module),
		Event:       notification.Event,
		EntityType:  notification.EntityType,
		EntityID:    notification.EntityID,
		ThreadID:    notification.ThreadID,
		Priority:    string(notification.Priority),
		Title:       notification.Title,
		Message:     notification.Message,
		ActionURL:   notification.ActionURL,
		Read:        notification.Read,
		ReadAt:      notification.ReadAt,
		Dismissed:   notification.Dismissed,
		DismissedAt: notification.DismissedAt,
		CreatedAt:   notification.CreatedAt,
	}
}
