package impl

import (
	"context"
	"log/slog"
	"time"

	"backlot/internal/domain/entity"
	domainerrors "backlot/internal/domain/errors"
	"backlot/internal/domain/repository"
	"backlot/internal/errors"
	"backlot/internal/usecase"

	"github.com/google/uuid"
)

type analyticsService struct {
	logger       *slog.Logger
	deliveryRepo repository.DeliveryRepository
}

// NewAnalyticsService creates the delivery analytics reader.
func NewAnalyticsService(logger *slog.Logger, deliveryRepo repository.DeliveryRepository) usecase.AnalyticsUsecase {
	return &analyticsService{
		logger:       logger,
		deliveryRepo: deliveryRepo,
	}
}

// DeliveryStats aggregates per-channel delivery and engagement rates for a
// tenant over the range.
func (s *analyticsService) DeliveryStats(ctx context.Context, caller entity.Caller, tenantID uuid.UUID, from, to time.Time) (*usecase.DeliveryStats, error) {
	if !caller.CanAccessTenant(tenantID) {
		return nil, domainerrors.ErrPermission.WithDetails("caller has no access to tenant " + tenantID.String())
	}

	counts, err := s.deliveryRepo.CountByChannelStatus(ctx, tenantID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate delivery counts")
	}

	return &usecase.DeliveryStats{
		TenantID: tenantID,
		From:     from,
		To:       to,
		Channels: rollupChannels(counts),
	}, nil
}

// ProviderPerformance aggregates outcomes per provider.
func (s *analyticsService) ProviderPerformance(ctx context.Context, caller entity.Caller, tenantID uuid.UUID, from, to time.Time) ([]repository.ProviderStats, error) {
	if !caller.CanAccessTenant(tenantID) {
		return nil, domainerrors.ErrPermission.WithDetails("caller has no access to tenant " + tenantID.String())
	}

	stats, err := s.deliveryRepo.ProviderPerformance(ctx, tenantID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate provider performance")
	}

	return stats, nil
}

// Timeline buckets dispatch volume over the range.
func (s *analyticsService) Timeline(ctx context.Context, caller entity.Caller, tenantID uuid.UUID, from, to time.Time, bucket time.Duration) ([]repository.TimelineBucket, error) {
	if !caller.CanAccessTenant(tenantID) {
		return nil, domainerrors.ErrPermission.WithDetails("caller has no access to tenant " + tenantID.String())
	}
	if bucket <= 0 {
		bucket = time.Hour
	}

	buckets, err := s.deliveryRepo.Timeline(ctx, tenantID, from, to, bucket)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build dispatch timeline")
	}

	return buckets, nil
}

// UserSummary aggregates one user's delivery outcomes per channel.
func (s *analyticsService) UserSummary(ctx context.Context, caller entity.Caller, userID, tenantID uuid.UUID, from, to time.Time) ([]usecase.ChannelStats, error) {
	if err := checkPreferenceAccess(caller, userID, tenantID); err != nil {
		return nil, err
	}

	counts, err := s.deliveryRepo.UserSummary(ctx, userID, tenantID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate user delivery summary")
	}

	return rollupChannels(counts), nil
}

// rollupChannels folds raw (channel, status) counts into per-channel stats
// with delivery and engagement rates. The engagement chain is cumulative: a
// clicked delivery was also delivered and opened.
func rollupChannels(counts []repository.ChannelCount) []usecase.ChannelStats {
	byChannel := make(map[entity.Channel]*usecase.ChannelStats)

	for _, c := range counts {
		stats, ok := byChannel[c.Channel]
		if !ok {
			stats = &usecase.ChannelStats{Channel: c.Channel}
			byChannel[c.Channel] = stats
		}

		switch c.Status {
		case entity.DeliverySent:
			stats.Sent += c.Count
		case entity.DeliveryDelivered:
			stats.Sent += c.Count
			stats.Delivered += c.Count
		case entity.DeliveryOpened:
			stats.Sent += c.Count
			stats.Delivered += c.Count
			stats.Opened += c.Count
		case entity.DeliveryClicked:
			stats.Sent += c.Count
			stats.Delivered += c.Count
			stats.Opened += c.Count
			stats.Clicked += c.Count
		case entity.DeliveryFailed, entity.DeliveryBounced, entity.DeliveryRejected:
			stats.Failed += c.Count
		}
	}

	out := make([]usecase.ChannelStats, 0, len(byChannel))
	for _, channel := range entity.AllChannels {
		stats, ok := byChannel[channel]
		if !ok {
			continue
		}

		if stats.Sent > 0 {
			stats.DeliveryRate = float64(stats.Delivered) / float64(stats.Sent)
		}
		if stats.Delivered > 0 {
			stats.OpenRate = float64(stats.Opened) / float64(stats.Delivered)
		}
		if stats.Opened > 0 {
			stats.ClickRate = float64(stats.Clicked) / float64(stats.Opened)
		}

		out = append(out, *stats)
	}

	return out
}
