package repository

import (
	"context"
	"errors"
	"time"

	"backlot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDeliveryNotFound is returned when a delivery attempt is not found.
var ErrDeliveryNotFound = errors.New("delivery attempt not found")

// ChannelCount is a per-channel aggregate bucket.
type ChannelCount struct {
	Channel entity.Channel        `json:"channel"`
	Status  entity.DeliveryStatus `json:"status"`
	Count   int64                 `json:"count"`
}

// ProviderStats aggregates delivery outcomes for one provider.
type ProviderStats struct {
	Provider     string  `json:"provider"`
	Sent         int64   `json:"sent"`
	Delivered    int64   `json:"delivered"`
	Failed       int64   `json:"failed"`
	AvgLatencyMS float64 `json:"avg_latency_ms"`
}

// TimelineBucket is one time-bucketed dispatch count.
type TimelineBucket struct {
	Bucket time.Time `json:"bucket"`
	Count  int64     `json:"count"`
}

// DeliveryRepository persists delivery attempts (hot storage) and serves the
// rate limiter's rolling-window counts plus the analytics reads.
type DeliveryRepository interface {
	// CreateAttempt persists a new delivery attempt.
	CreateAttempt(ctx context.Context, attempt *entity.DeliveryAttempt) error

	// CreateAttempts persists multiple attempts in a batch.
	CreateAttempts(ctx context.Context, attempts []*entity.DeliveryAttempt) error

	// SaveAttempt writes back a mutated attempt.
	SaveAttempt(ctx context.Context, attempt *entity.DeliveryAttempt) error

	// FindAttemptByID retrieves one attempt.
	FindAttemptByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryAttempt, error)

	// FindAttemptByExternalID resolves a provider callback to its attempt via
	// (provider, external correlation id).
	FindAttemptByExternalID(ctx context.Context, provider, externalID string) (*entity.DeliveryAttempt, error)

	// FindAttemptsByNotification retrieves every attempt of one notification.
	FindAttemptsByNotification(ctx context.Context, notificationID uuid.UUID) ([]*entity.DeliveryAttempt, error)

	// CountSentSince counts a user's non-failed deliveries on one channel
	// since the window start. Feeds the rolling-window rate limiter.
	CountSentSince(ctx context.Context, userID, tenantID uuid.UUID, channel entity.Channel, since time.Time) (int64, error)

	// FindRetryableByChannel retrieves up to limit failed attempts on one
	// channel whose retry count is below cap, oldest failure first.
	FindRetryableByChannel(ctx context.Context, channel entity.Channel, cap int, limit int) ([]*entity.DeliveryAttempt, error)

	// FindArchivable retrieves up to limit attempts queued before the cutoff,
	// oldest first.
	FindArchivable(ctx context.Context, cutoff time.Time, limit int) ([]*entity.DeliveryAttempt, error)

	// DeleteAttempts removes rows by id after a successful cold-storage copy.
	DeleteAttempts(ctx context.Context, ids []uuid.UUID) error

	// CountByChannelStatus aggregates attempts per (channel, status) for a
	// tenant inside the range.
	CountByChannelStatus(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]ChannelCount, error)

	// ProviderPerformance aggregates outcomes per provider for a tenant
	// inside the range.
	ProviderPerformance(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]ProviderStats, error)

	// Timeline buckets dispatch volume for a tenant inside the range.
	Timeline(ctx context.Context, tenantID uuid.UUID, from, to time.Time, bucket time.Duration) ([]TimelineBucket, error)

	// UserSummary aggregates attempts per (channel, status) for one user.
	UserSummary(ctx context.Context, userID, tenantID uuid.UUID, from, to time.Time) ([]ChannelCount, error)
}
