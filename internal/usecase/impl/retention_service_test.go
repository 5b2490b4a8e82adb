package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"backlot/internal/domain/entity"
	mockRepo "backlot/internal/mocks/repository"
	"backlot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRetentionService(t *testing.T) (
	usecase.RetentionUsecase,
	*mockRepo.MockNotificationRepository,
	*mockRepo.MockDeliveryRepository,
	*mockRepo.MockArchiveRepository,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	archiveRepo := mockRepo.NewMockArchiveRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewRetentionService(logger, notificationRepo, deliveryRepo, archiveRepo, 0), notificationRepo, deliveryRepo, archiveRepo
}

func agedNotification(tenantID uuid.UUID, createdAt time.Time) *entity.Notification {
	userID := uuid.New()

	return &entity.Notification{
		ID:        uuid.New(),
		UserID:    &userID,
		TenantID:  tenantID,
		Module:    entity.ModuleSales,
		Event:     "order_created",
		Title:     "Order created",
		Read:      true,
		CreatedAt: createdAt,
	}
}

func TestRetentionService_ArchiveNotifications_CopiesBeforeDeleting(t *testing.T) {
	svc, notificationRepo, _, archiveRepo := createTestRetentionService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	old := agedNotification(tenantID, time.Now().UTC().AddDate(0, 0, -200))

	var copied, deleted bool
	notificationRepo.EXPECT().
		FindArchivable(ctx, mock.Anything, 500).
		Return([]*entity.Notification{old}, nil)
	archiveRepo.EXPECT().
		ArchiveNotifications(ctx, []*entity.Notification{old}, mock.Anything).
		RunAndReturn(func(context.Context, []*entity.Notification, time.Time) error {
			assert.False(t, deleted, "cold copy must land before the hot delete")
			copied = true

			return nil
		})
	notificationRepo.EXPECT().
		DeleteNotifications(ctx, []uuid.UUID{old.ID}).
		RunAndReturn(func(context.Context, []uuid.UUID) error {
			assert.True(t, copied)
			deleted = true

			return nil
		})

	report, err := svc.ArchiveNotifications(ctx, 180, 500)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Archived)
	assert.Equal(t, 1, report.Batches)
	assert.True(t, deleted)
}

func TestRetentionService_ArchiveNotifications_EmptyRunIsIdempotent(t *testing.T) {
	svc, notificationRepo, _, _ := createTestRetentionService(t)

	ctx := context.Background()
	notificationRepo.EXPECT().
		FindArchivable(ctx, mock.Anything, 500).
		Return([]*entity.Notification{}, nil)

	report, err := svc.ArchiveNotifications(ctx, 180, 500)
	require.NoError(t, err)
	assert.Zero(t, report.Archived)
	assert.Zero(t, report.Batches)
}

func TestRetentionService_ArchiveNotifications_FullBatchFetchesNext(t *testing.T) {
	svc, notificationRepo, _, archiveRepo := createTestRetentionService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	first := agedNotification(tenantID, time.Now().UTC().AddDate(0, 0, -300))
	second := agedNotification(tenantID, time.Now().UTC().AddDate(0, 0, -250))

	notificationRepo.EXPECT().
		FindArchivable(ctx, mock.Anything, 1).
		Return([]*entity.Notification{first}, nil).Once()
	notificationRepo.EXPECT().
		FindArchivable(ctx, mock.Anything, 1).
		Return([]*entity.Notification{second}, nil).Once()
	notificationRepo.EXPECT().
		FindArchivable(ctx, mock.Anything, 1).
		Return([]*entity.Notification{}, nil).Once()
	archiveRepo.EXPECT().
		ArchiveNotifications(ctx, mock.Anything, mock.Anything).
		Return(nil)
	notificationRepo.EXPECT().
		DeleteNotifications(ctx, mock.Anything).
		Return(nil)

	report, err := svc.ArchiveNotifications(ctx, 180, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Archived)
	assert.Equal(t, 2, report.Batches)
}

func TestRetentionService_ArchiveNotifications_CopyFailureLeavesHotRows(t *testing.T) {
	svc, notificationRepo, _, archiveRepo := createTestRetentionService(t)

	ctx := context.Background()
	old := agedNotification(uuid.New(), time.Now().UTC().AddDate(0, 0, -200))

	notificationRepo.EXPECT().
		FindArchivable(ctx, mock.Anything, 500).
		Return([]*entity.Notification{old}, nil)
	archiveRepo.EXPECT().
		ArchiveNotifications(ctx, mock.Anything, mock.Anything).
		Return(errors.New("cold storage unavailable"))

	report, err := svc.ArchiveNotifications(ctx, 180, 500)
	require.Error(t, err)
	assert.Zero(t, report.Archived)
}

func TestRetentionService_ArchiveDeliveryLogs(t *testing.T) {
	svc, _, deliveryRepo, archiveRepo := createTestRetentionService(t)

	ctx := context.Background()
	attempt := entity.NewDeliveryAttempt(uuid.New(), uuid.New(), uuid.New(), entity.ChannelEmail, time.Now().UTC().AddDate(0, 0, -120))

	deliveryRepo.EXPECT().
		FindArchivable(ctx, mock.Anything, 500).
		Return([]*entity.DeliveryAttempt{attempt}, nil)
	archiveRepo.EXPECT().
		ArchiveDeliveryAttempts(ctx, []*entity.DeliveryAttempt{attempt}, mock.Anything).
		Return(nil)
	deliveryRepo.EXPECT().
		DeleteAttempts(ctx, []uuid.UUID{attempt.ID}).
		Return(nil)

	report, err := svc.ArchiveDeliveryLogs(ctx, 90, 500)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Archived)
}

func TestRetentionService_CombinedHistory_HotCopyWinsDuplicates(t *testing.T) {
	svc, notificationRepo, _, archiveRepo := createTestRetentionService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	caller := memberCaller(tenantID)
	userID := caller.UserID
	from := time.Now().UTC().AddDate(0, -6, 0)
	to := time.Now().UTC()

	recent := agedNotification(tenantID, to.Add(-time.Hour))
	recent.UserID = &userID
	limbo := agedNotification(tenantID, to.Add(-48*time.Hour))
	limbo.UserID = &userID
	archivedOnly := agedNotification(tenantID, to.Add(-96*time.Hour))
	archivedOnly.UserID = &userID

	notificationRepo.EXPECT().
		FindByDateRange(ctx, userID, tenantID, from, to).
		Return([]*entity.Notification{recent, limbo}, nil)
	archiveRepo.EXPECT().
		FindNotificationsByDateRange(ctx, userID, tenantID, from, to).
		Return([]*entity.ArchivedNotification{
			{Notification: *limbo, ArchivedAt: to.Add(-time.Hour)},
			{Notification: *archivedOnly, ArchivedAt: to.Add(-time.Hour)},
		}, nil)

	history, err := svc.CombinedHistory(ctx, caller, userID, tenantID, from, to)
	require.NoError(t, err)
	require.Len(t, history, 3)

	// Newest first, and the row caught mid-archive appears once, from hot
	// storage.
	assert.Equal(t, recent.ID, history[0].ID)
	assert.Equal(t, limbo.ID, history[1].ID)
	assert.Equal(t, entity.OriginHot, history[1].Origin)
	assert.Equal(t, archivedOnly.ID, history[2].ID)
	assert.Equal(t, entity.OriginCold, history[2].Origin)
}

func TestRetentionService_CombinedHistory_ChecksAccess(t *testing.T) {
	svc, _, _, _ := createTestRetentionService(t)

	tenantID := uuid.New()
	caller := memberCaller(tenantID)

	_, err := svc.CombinedHistory(context.Background(), caller, uuid.New(), tenantID, time.Now().Add(-time.Hour), time.Now())
	require.Error(t, err)
}
