package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"backlot/internal/domain/entity"
	mockRepo "backlot/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func createTestRateLimiter(t *testing.T) (*RateLimiter, *mockRepo.MockDeliveryRepository) {
	deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewRateLimiter(deliveryRepo, logger), deliveryRepo
}

func prefWithRateLimit(channel entity.Channel, limit entity.RateLimit) *entity.Preference {
	pref := entity.DefaultPreference(uuid.New(), uuid.New(), entity.ModuleSales, time.Now().UTC())
	pref.RateLimits = map[entity.Channel]entity.RateLimit{channel: limit}

	return pref
}

func TestRateLimiter_NoConfiguredCapAlwaysAllows(t *testing.T) {
	limiter, _ := createTestRateLimiter(t)

	pref := entity.DefaultPreference(uuid.New(), uuid.New(), entity.ModuleSales, time.Now().UTC())
	allowed := limiter.Allow(context.Background(), pref, pref.UserID, pref.TenantID, entity.ChannelSMS, time.Now().UTC())

	assert.True(t, allowed)
}

func TestRateLimiter_HourlyCapAdmitsUpToLimit(t *testing.T) {
	limiter, deliveryRepo := createTestRateLimiter(t)

	ctx := context.Background()
	now := time.Now().UTC()
	pref := prefWithRateLimit(entity.ChannelSMS, entity.RateLimit{MaxPerHour: 3})

	deliveryRepo.EXPECT().
		CountSentSince(ctx, pref.UserID, pref.TenantID, entity.ChannelSMS, now.Add(-time.Hour)).
		Return(int64(2), nil)

	assert.True(t, limiter.Allow(ctx, pref, pref.UserID, pref.TenantID, entity.ChannelSMS, now))
}

func TestRateLimiter_HourlyCapRejectsAtLimit(t *testing.T) {
	limiter, deliveryRepo := createTestRateLimiter(t)

	ctx := context.Background()
	now := time.Now().UTC()
	pref := prefWithRateLimit(entity.ChannelSMS, entity.RateLimit{MaxPerHour: 3})

	deliveryRepo.EXPECT().
		CountSentSince(ctx, pref.UserID, pref.TenantID, entity.ChannelSMS, now.Add(-time.Hour)).
		Return(int64(3), nil)

	assert.False(t, limiter.Allow(ctx, pref, pref.UserID, pref.TenantID, entity.ChannelSMS, now))
}

func TestRateLimiter_DailyCapCheckedAfterHourly(t *testing.T) {
	limiter, deliveryRepo := createTestRateLimiter(t)

	ctx := context.Background()
	now := time.Now().UTC()
	pref := prefWithRateLimit(entity.ChannelEmail, entity.RateLimit{MaxPerHour: 5, MaxPerDay: 10})

	deliveryRepo.EXPECT().
		CountSentSince(ctx, pref.UserID, pref.TenantID, entity.ChannelEmail, now.Add(-time.Hour)).
		Return(int64(1), nil)
	deliveryRepo.EXPECT().
		CountSentSince(ctx, pref.UserID, pref.TenantID, entity.ChannelEmail, now.Add(-24*time.Hour)).
		Return(int64(10), nil)

	assert.False(t, limiter.Allow(ctx, pref, pref.UserID, pref.TenantID, entity.ChannelEmail, now))
}

func TestRateLimiter_FailsOpenWhenCountUnavailable(t *testing.T) {
	limiter, deliveryRepo := createTestRateLimiter(t)

	ctx := context.Background()
	now := time.Now().UTC()
	pref := prefWithRateLimit(entity.ChannelSMS, entity.RateLimit{MaxPerHour: 1})

	deliveryRepo.EXPECT().
		CountSentSince(ctx, pref.UserID, pref.TenantID, entity.ChannelSMS, now.Add(-time.Hour)).
		Return(int64(0), errors.New("connection refused"))

	assert.True(t, limiter.Allow(ctx, pref, pref.UserID, pref.TenantID, entity.ChannelSMS, now))
}
