package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"backlot/internal/domain/entity"
	domainerrors "backlot/internal/domain/errors"
	"backlot/internal/domain/repository"
	mockRepo "backlot/internal/mocks/repository"
	"backlot/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAnalyticsService(t *testing.T) (usecase.AnalyticsUsecase, *mockRepo.MockDeliveryRepository) {
	deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewAnalyticsService(logger, deliveryRepo), deliveryRepo
}

func TestAnalyticsService_DeliveryStats_EngagementChainIsCumulative(t *testing.T) {
	svc, deliveryRepo := createTestAnalyticsService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	from := time.Now().UTC().AddDate(0, 0, -30)
	to := time.Now().UTC()

	// 100 email attempts: 40 stopped at sent, 30 at delivered, 20 at opened,
	// 5 at clicked, 5 failed. A clicked delivery was also sent, delivered,
	// and opened; the rollup has to count it in every earlier stage.
	deliveryRepo.EXPECT().
		CountByChannelStatus(ctx, tenantID, from, to).
		Return([]repository.ChannelCount{
			{Channel: entity.ChannelEmail, Status: entity.DeliverySent, Count: 40},
			{Channel: entity.ChannelEmail, Status: entity.DeliveryDelivered, Count: 30},
			{Channel: entity.ChannelEmail, Status: entity.DeliveryOpened, Count: 20},
			{Channel: entity.ChannelEmail, Status: entity.DeliveryClicked, Count: 5},
			{Channel: entity.ChannelEmail, Status: entity.DeliveryFailed, Count: 5},
		}, nil)

	stats, err := svc.DeliveryStats(ctx, memberCaller(tenantID), tenantID, from, to)
	require.NoError(t, err)
	require.Len(t, stats.Channels, 1)

	email := stats.Channels[0]
	assert.Equal(t, entity.ChannelEmail, email.Channel)
	assert.Equal(t, int64(95), email.Sent)
	assert.Equal(t, int64(55), email.Delivered)
	assert.Equal(t, int64(25), email.Opened)
	assert.Equal(t, int64(5), email.Clicked)
	assert.Equal(t, int64(5), email.Failed)

	assert.InDelta(t, 55.0/95.0, email.DeliveryRate, 1e-9)
	assert.InDelta(t, 25.0/55.0, email.OpenRate, 1e-9)
	assert.InDelta(t, 5.0/25.0, email.ClickRate, 1e-9)
}

func TestAnalyticsService_DeliveryStats_ChannelsInStableOrder(t *testing.T) {
	svc, deliveryRepo := createTestAnalyticsService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	from := time.Now().UTC().AddDate(0, 0, -7)
	to := time.Now().UTC()

	deliveryRepo.EXPECT().
		CountByChannelStatus(ctx, tenantID, from, to).
		Return([]repository.ChannelCount{
			{Channel: entity.ChannelPush, Status: entity.DeliverySent, Count: 10},
			{Channel: entity.ChannelInApp, Status: entity.DeliveryDelivered, Count: 4},
		}, nil)

	stats, err := svc.DeliveryStats(ctx, memberCaller(tenantID), tenantID, from, to)
	require.NoError(t, err)
	require.Len(t, stats.Channels, 2)
	assert.Equal(t, entity.ChannelInApp, stats.Channels[0].Channel)
	assert.Equal(t, entity.ChannelPush, stats.Channels[1].Channel)
}

func TestAnalyticsService_DeliveryStats_RejectsForeignTenant(t *testing.T) {
	svc, _ := createTestAnalyticsService(t)

	_, err := svc.DeliveryStats(context.Background(), memberCaller(uuid.New()), uuid.New(), time.Now().Add(-time.Hour), time.Now())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrPermission.ErrorCode(), appErr.ErrorCode())
}

func TestAnalyticsService_ProviderPerformance(t *testing.T) {
	svc, deliveryRepo := createTestAnalyticsService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	from := time.Now().UTC().AddDate(0, 0, -30)
	to := time.Now().UTC()

	deliveryRepo.EXPECT().
		ProviderPerformance(ctx, tenantID, from, to).
		Return([]repository.ProviderStats{
			{Provider: "mailgateway", Sent: 120, Delivered: 110, Failed: 10, AvgLatencyMS: 420.5},
		}, nil)

	stats, err := svc.ProviderPerformance(ctx, memberCaller(tenantID), tenantID, from, to)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "mailgateway", stats[0].Provider)
}

func TestAnalyticsService_Timeline_DefaultsToHourBuckets(t *testing.T) {
	svc, deliveryRepo := createTestAnalyticsService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	from := time.Now().UTC().AddDate(0, 0, -1)
	to := time.Now().UTC()

	deliveryRepo.EXPECT().
		Timeline(ctx, tenantID, from, to, time.Hour).
		Return([]repository.TimelineBucket{{Bucket: from.Truncate(time.Hour), Count: 12}}, nil)

	buckets, err := svc.Timeline(ctx, memberCaller(tenantID), tenantID, from, to, 0)
	require.NoError(t, err)
	require.Len(t, buckets, 1)
	assert.Equal(t, int64(12), buckets[0].Count)
}

func TestAnalyticsService_UserSummary_RequiresOwnership(t *testing.T) {
	svc, _ := createTestAnalyticsService(t)

	tenantID := uuid.New()
	caller := memberCaller(tenantID)

	_, err := svc.UserSummary(context.Background(), caller, uuid.New(), tenantID, time.Now().Add(-time.Hour), time.Now())
	require.Error(t, err)
}

func TestAnalyticsService_UserSummary(t *testing.T) {
	svc, deliveryRepo := createTestAnalyticsService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	caller := memberCaller(tenantID)
	from := time.Now().UTC().AddDate(0, 0, -30)
	to := time.Now().UTC()

	deliveryRepo.EXPECT().
		UserSummary(ctx, caller.UserID, tenantID, from, to).
		Return([]repository.ChannelCount{
			{Channel: entity.ChannelPush, Status: entity.DeliveryDelivered, Count: 8},
			{Channel: entity.ChannelPush, Status: entity.DeliveryFailed, Count: 2},
		}, nil)

	summary, err := svc.UserSummary(ctx, caller, caller.UserID, tenantID, from, to)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, int64(8), summary[0].Delivered)
	assert.Equal(t, int64(2), summary[0].Failed)
	assert.InDelta(t, 1.0, summary[0].DeliveryRate, 1e-9)
}
