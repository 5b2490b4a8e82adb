package usecase

import (
	"context"
	"time"

	"backlot/internal/domain/entity"
	"backlot/internal/domain/repository"

	"github.com/google/uuid"
)

// ChannelStats aggregates one channel's delivery outcomes.
type ChannelStats struct {
	Channel      entity.Channel `json:"channel"`
	Sent         int64          `json:"sent"`
	Delivered    int64          `json:"delivered"`
	Opened       int64          `json:"opened"`
	Clicked      int64          `json:"clicked"`
	Failed       int64          `json:"failed"`
	DeliveryRate float64        `json:"delivery_rate"`
	OpenRate     float64        `json:"open_rate"`
	ClickRate    float64        `json:"click_rate"`
}

// DeliveryStats is the per-tenant analytics rollup.
type DeliveryStats struct {
	TenantID uuid.UUID      `json:"tenant_id"`
	From     time.Time      `json:"from"`
	To       time.Time      `json:"to"`
	Channels []ChannelStats `json:"channels"`
}

// AnalyticsUsecase serves the read-only delivery and engagement metrics
// consumed by the reporting UI.
type AnalyticsUsecase interface {
	// DeliveryStats aggregates per-channel delivery and engagement rates.
	DeliveryStats(ctx context.Context, caller entity.Caller, tenantID uuid.UUID, from, to time.Time) (*DeliveryStats, error)

	// ProviderPerformance aggregates outcomes per provider.
	ProviderPerformance(ctx context.Context, caller entity.Caller, tenantID uuid.UUID, from, to time.Time) ([]repository.ProviderStats, error)

	// Timeline buckets dispatch volume over the range.
	Timeline(ctx context.Context, caller entity.Caller, tenantID uuid.UUID, from, to time.Time, bucket time.Duration) ([]repository.TimelineBucket, error)

	// UserSummary aggregates one user's delivery outcomes per channel.
	UserSummary(ctx context.Context, caller entity.Caller, userID, tenantID uuid.UUID, from, to time.Time) ([]ChannelStats, error)
}
