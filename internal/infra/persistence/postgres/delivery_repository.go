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

// deliveryRepository implements the repository.DeliveryRepository interface.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{
		db: db,
	}
}

// CreateAttempt persists a new delivery attempt.
func (repo *deliveryRepository) CreateAttempt(ctx context.Context, attempt *entity.DeliveryAttempt) error {
	attemptM := fromAttemptDomain(attempt)

	if err := repo.db.WithContext(ctx).Create(attemptM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("invalid notification reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery attempt")
	}

	return nil
}

// CreateAttempts persists multiple attempts in a batch.
func (repo *deliveryRepository) CreateAttempts(ctx context.Context, attempts []*entity.DeliveryAttempt) error {
	if len(attempts) == 0 {
		return nil
	}

	attemptModels := make([]*model.DeliveryAttemptModel, 0, len(attempts))
	for _, attempt := range attempts {
		attemptModels = append(attemptModels, fromAttemptDomain(attempt))
	}

	if err := repo.db.WithContext(ctx).Create(attemptModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery attempts")
	}

	return nil
}

// SaveAttempt writes back a mutated attempt.
func (repo *deliveryRepository) SaveAttempt(ctx context.Context, attempt *entity.DeliveryAttempt) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryAttemptModel{}).
		Where("id = ?", attempt.ID).
		Updates(map[string]interface{}{
			"status":              string(attempt.Status),
			"provider":            attempt.Provider,
			"external_message_id": attempt.ExternalMessageID,
			"sent_at":             attempt.SentAt,
			"delivered_at":        attempt.DeliveredAt,
			"opened_at":           attempt.OpenedAt,
			"clicked_at":          attempt.ClickedAt,
			"failed_at":           attempt.FailedAt,
			"latency_ms":          attempt.LatencyMS,
			"retry_count":         attempt.RetryCount,
			"error_code":          attempt.ErrorCode,
			"error_message":       attempt.ErrorMessage,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to save delivery attempt")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeliveryNotFound
	}

	return nil
}

// FindAttemptByID retrieves one attempt.
func (repo *deliveryRepository) FindAttemptByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryAttempt, error) {
	var attemptM model.DeliveryAttemptModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&attemptM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery attempt by ID")
	}

	return toAttemptDomain(&attemptM), nil
}

// FindAttemptByExternalID resolves a provider callback to its attempt.
func (repo *deliveryRepository) FindAttemptByExternalID(ctx context.Context, provider, externalID string) (*entity.DeliveryAttempt, error) {
	var attemptM model.DeliveryAttemptModel

	if err := repo.db.WithContext(ctx).
		Where("provider = ? AND external_message_id = ?", provider, externalID).
		First(&attemptM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery attempt by external ID")
	}

	return toAttemptDomain(&attemptM), nil
}

// FindAttemptsByNotification retrieves every attempt of one notification.
func (repo *deliveryRepository) FindAttemptsByNotification(ctx context.Context, notificationID uuid.UUID) ([]*entity.DeliveryAttempt, error) {
	var attemptModels []*model.DeliveryAttemptModel

	if err := repo.db.WithContext(ctx).
		Where("notification_id = ?", notificationID).
		Order("queued_at ASC").
		Find(&attemptModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find attempts by notification")
	}

	return toAttemptDomainSlice(attemptModels), nil
}

// CountSentSince counts a user's non-failed deliveries on one channel since
// the window start. Queued rows count too: an admitted dispatch consumes
// quota even before the provider confirms it.
func (repo *deliveryRepository) CountSentSince(ctx context.Context, userID, tenantID uuid.UUID, channel entity.Channel, since time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DeliveryAttemptModel{}).
		Where("user_id = ? AND tenant_id = ? AND channel = ?", userID, tenantID, string(channel)).
		Where("queued_at >= ?", since).
		Where("status NOT IN ?", []string{
			string(entity.DeliveryFailed),
			string(entity.DeliveryBounced),
			string(entity.DeliveryRejected),
		}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count recent deliveries")
	}

	return count, nil
}

// FindRetryableByChannel retrieves up to limit failed attempts on one channel
// whose retry count is below cap, oldest failure first.
func (repo *deliveryRepository) FindRetryableByChannel(ctx context.Context, channel entity.Channel, cap int, limit int) ([]*entity.DeliveryAttempt, error) {
	var attemptModels []*model.DeliveryAttemptModel

	if err := repo.db.WithContext(ctx).
		Where("channel = ? AND status = ? AND retry_count < ?", string(channel), string(entity.DeliveryFailed), cap).
		Order("failed_at ASC").
		Limit(limit).
		Find(&attemptModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find retryable attempts")
	}

	return toAttemptDomainSlice(attemptModels), nil
}

// FindArchivable retrieves up to limit attempts queued before the cutoff,
// oldest first.
func (repo *deliveryRepository) FindArchivable(ctx context.Context, cutoff time.Time, limit int) ([]*entity.DeliveryAttempt, error) {
	var attemptModels []*model.DeliveryAttemptModel

	if err := repo.db.WithContext(ctx).
		Where("queued_at < ?", cutoff).
		Order("queued_at ASC").
		Limit(limit).
		Find(&attemptModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find archivable attempts")
	}

	return toAttemptDomainSlice(attemptModels), nil
}

// DeleteAttempts removes rows by id after a successful cold-storage copy.
func (repo *deliveryRepository) DeleteAttempts(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.DeliveryAttemptModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete delivery attempts")
	}

	return nil
}

// channelStatusRow is the scan target for the (channel, status) aggregates.
type channelStatusRow struct {
	Channel string
	Status  string
	Count   int64
}

// CountByChannelStatus aggregates attempts per (channel, status) for a tenant
// inside the range.
func (repo *deliveryRepository) CountByChannelStatus(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]repository.ChannelCount, error) {
	var rows []channelStatusRow

	if err := repo.db.WithContext(ctx).
		Model(&model.DeliveryAttemptModel{}).
		Select("channel, status, COUNT(*) AS count").
		Where("tenant_id = ? AND queued_at >= ? AND queued_at <= ?", tenantID, from, to).
		Group("channel, status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate attempts by channel and status")
	}

	return toChannelCounts(rows), nil
}

// ProviderPerformance aggregates outcomes per provider for a tenant inside
// the range. Attempts never handed to a provider are excluded.
func (repo *deliveryRepository) ProviderPerformance(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]repository.ProviderStats, error) {
	var stats []repository.ProviderStats

	if err := repo.db.WithContext(ctx).
		Model(&model.DeliveryAttemptModel{}).
		Select(`provider,
			COUNT(*) FILTER (WHERE sent_at IS NOT NULL) AS sent,
			COUNT(*) FILTER (WHERE delivered_at IS NOT NULL) AS delivered,
			COUNT(*) FILTER (WHERE status IN ('failed', 'bounced', 'rejected')) AS failed,
			COALESCE(AVG(latency_ms) FILTER (WHERE latency_ms > 0), 0) AS avg_latency_ms`).
		Where("tenant_id = ? AND queued_at >= ? AND queued_at <= ?", tenantID, from, to).
		Where("provider <> ''").
		Group("provider").
		Order("provider ASC").
		Scan(&stats).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate provider performance")
	}

	return stats, nil
}

// Timeline buckets dispatch volume for a tenant inside the range. The bucket
// width is applied with epoch arithmetic so any duration works.
func (repo *deliveryRepository) Timeline(ctx context.Context, tenantID uuid.UUID, from, to time.Time, bucket time.Duration) ([]repository.TimelineBucket, error) {
	seconds := int64(bucket / time.Second)
	if seconds <= 0 {
		seconds = int64(time.Hour / time.Second)
	}

	var buckets []repository.TimelineBucket

	if err := repo.db.WithContext(ctx).
		Model(&model.DeliveryAttemptModel{}).
		Select("to_timestamp(floor(extract(epoch FROM queued_at) / ?) * ?) AS bucket, COUNT(*) AS count", seconds, seconds).
		Where("tenant_id = ? AND queued_at >= ? AND queued_at <= ?", tenantID, from, to).
		Group("bucket").
		Order("bucket ASC").
		Scan(&buckets).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate dispatch timeline")
	}

	return buckets, nil
}

// UserSummary aggregates attempts per (channel, status) for one user.
func (repo *deliveryRepository) UserSummary(ctx context.Context, userID, tenantID uuid.UUID, from, to time.Time) ([]repository.ChannelCount, error) {
	var rows []channelStatusRow

	if err := repo.db.WithContext(ctx).
		Model(&model.DeliveryAttemptModel{}).
		Select("channel, status, COUNT(*) AS count").
		Where("user_id = ? AND tenant_id = ? AND queued_at >= ? AND queued_at <= ?", userID, tenantID, from, to).
		Group("channel, status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate user delivery summary")
	}

	return toChannelCounts(rows), nil
}

func toChannelCounts(rows []channelStatusRow) []repository.ChannelCount {
	counts := make([]repository.ChannelCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, repository.ChannelCount{
			Channel: entity.Channel(row.Channel),
			Status:  entity.DeliveryStatus(row.Status),
			Count:   row.Count,
		})
	}

	return counts
}

func toAttemptDomain(data *model.DeliveryAttemptModel) *entity.DeliveryAttempt {
	return &entity.DeliveryAttempt{
		ID:                data.ID,
		NotificationID:    data.NotificationID,
		UserID:            data.UserID,
		TenantID:          data.TenantID,
		Channel:           entity.Channel(data.Channel),
		Status:            entity.DeliveryStatus(data.Status),
		Provider:          data.Provider,
		ExternalMessageID: data.ExternalMessageID,
		QueuedAt:          data.QueuedAt,
		SentAt:            data.SentAt,
		DeliveredAt:       data.DeliveredAt,
		OpenedAt:          data.OpenedAt,
		ClickedAt:         data.ClickedAt,
		FailedAt:          data.FailedAt,
		LatencyMS:         data.LatencyMS,
		RetryCount:        data.RetryCount,
		ErrorCode:         data.ErrorCode,
		ErrorMessage:      data.ErrorMessage,
	}
}

func toAttemptDomainSlice(models []*model.DeliveryAttemptModel) []*entity.DeliveryAttempt {
	attempts := make([]*entity.DeliveryAttempt, 0, len(models))
	for _, attemptM := range models {
		attempts = append(attempts, toAttemptDomain(attemptM))
	}

	return attempts
}

func fromAttemptDomain(attempt *entity.DeliveryAttempt) *model.DeliveryAttemptModel {
	return &model.DeliveryAttemptModel{
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
	}
}
