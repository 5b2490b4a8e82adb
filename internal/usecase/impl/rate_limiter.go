package impl

import (
	"context"
	"log/slog"
	"time"

	"backlot/internal/domain/entity"
	"backlot/internal/domain/repository"

	"github.com/google/uuid"
)

// RateLimiter enforces per-channel notification caps over rolling hour and
// day windows, counted from persisted delivery history.
type RateLimiter struct {
	deliveryRepo repository.DeliveryRepository
	logger       *slog.Logger
}

// NewRateLimiter creates a rate limiter backed by the delivery tracker.
func NewRateLimiter(deliveryRepo repository.DeliveryRepository, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{
		deliveryRepo: deliveryRepo,
		logger:       logger,
	}
}

// Allow reports whether another notification on the channel is permitted
// right now. A dimension with no configured cap is not enforced, and the
// limiter fails open when counting is unavailable: availability is
// prioritized over strict throttling.
func (l *RateLimiter) Allow(ctx context.Context, pref *entity.Preference, userID, tenantID uuid.UUID, channel entity.Channel, now time.Time) bool {
	limit, ok := pref.RateLimitFor(channel)
	if !ok || (limit.MaxPerHour <= 0 && limit.MaxPerDay <= 0) {
		return true
	}

	if limit.MaxPerHour > 0 {
		count, err := l.deliveryRepo.CountSentSince(ctx, userID, tenantID, channel, now.Add(-time.Hour))
		if err != nil {
			l.logCountFailure(userID, channel, err)

			return true
		}
		if count >= int64(limit.MaxPerHour) {
			return false
		}
	}

	if limit.MaxPerDay > 0 {
		count, err := l.deliveryRepo.CountSentSince(ctx, userID, tenantID, channel, now.Add(-24*time.Hour))
		if err != nil {
			l.logCountFailure(userID, channel, err)

			return true
		}
		if count >= int64(limit.MaxPerDay) {
			return false
		}
	}

	return true
}

func (l *RateLimiter) logCountFailure(userID uuid.UUID, channel entity.Channel, err error) {
	l.logger.Warn("rate limit count unavailable, failing open",
		slog.String("user_id", userID.String()),
		slog.String("channel", string(channel)),
		slog.Any("error", err),
	)
}
