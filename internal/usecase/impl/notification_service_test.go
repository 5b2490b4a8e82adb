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

func createTestNotificationService(t *testing.T) (usecase.NotificationUsecase, *mockRepo.MockNotificationRepository) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewNotificationService(logger, notificationRepo), notificationRepo
}

func ownedNotification(userID, tenantID uuid.UUID) *entity.Notification {
	return &entity.Notification{
		ID:        uuid.New(),
		UserID:    &userID,
		TenantID:  tenantID,
		Module:    entity.ModuleSales,
		Event:     "order_assigned",
		Title:     "Order assigned",
		CreatedAt: time.Now().UTC().Add(-time.Hour),
	}
}

func TestNotificationService_List_DelegatesFilter(t *testing.T) {
	svc, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	caller := memberCaller(tenantID)
	filter := repository.NotificationFilter{UnreadOnly: true}

	notificationRepo.EXPECT().
		ListNotifications(ctx, caller.UserID, tenantID, filter, 50, 0).
		Return([]*entity.Notification{ownedNotification(caller.UserID, tenantID)}, nil)

	notifications, err := svc.List(ctx, caller, caller.UserID, tenantID, filter, 50, 0)
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestNotificationService_List_RejectsOtherUsersInbox(t *testing.T) {
	svc, _ := createTestNotificationService(t)

	tenantID := uuid.New()
	caller := memberCaller(tenantID)

	_, err := svc.List(context.Background(), caller, uuid.New(), tenantID, repository.NotificationFilter{}, 50, 0)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrPermission.ErrorCode(), appErr.ErrorCode())
}

func TestNotificationService_UnreadCount(t *testing.T) {
	svc, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	caller := memberCaller(tenantID)

	notificationRepo.EXPECT().
		CountUnread(ctx, caller.UserID, tenantID).
		Return(int64(7), nil)

	count, err := svc.UnreadCount(ctx, caller, caller.UserID, tenantID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestNotificationService_MarkRead_SetsTimestamp(t *testing.T) {
	svc, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	caller := memberCaller(tenantID)
	notification := ownedNotification(caller.UserID, tenantID)

	notificationRepo.EXPECT().
		FindNotificationByID(ctx, notification.ID).
		Return(notification, nil)
	notificationRepo.EXPECT().SaveNotification(ctx, notification).Return(nil)

	require.NoError(t, svc.MarkRead(ctx, caller, notification.ID))

	assert.True(t, notification.Read)
	require.NotNil(t, notification.ReadAt)
}

func TestNotificationService_MarkRead_AlreadyReadIsNoOp(t *testing.T) {
	svc, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	caller := memberCaller(tenantID)

	readAt := time.Now().UTC().Add(-time.Minute)
	notification := ownedNotification(caller.UserID, tenantID)
	notification.Read = true
	notification.ReadAt = &readAt

	notificationRepo.EXPECT().
		FindNotificationByID(ctx, notification.ID).
		Return(notification, nil)

	// No save expected: the mutation is skipped entirely.
	require.NoError(t, svc.MarkRead(ctx, caller, notification.ID))
	assert.Equal(t, readAt, *notification.ReadAt)
}

func TestNotificationService_MarkRead_RejectsForeignNotification(t *testing.T) {
	svc, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	caller := memberCaller(tenantID)
	notification := ownedNotification(uuid.New(), tenantID)

	notificationRepo.EXPECT().
		FindNotificationByID(ctx, notification.ID).
		Return(notification, nil)

	err := svc.MarkRead(ctx, caller, notification.ID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrPermission.ErrorCode(), appErr.ErrorCode())
}

func TestNotificationService_MarkRead_BroadcastReadableByAnyMember(t *testing.T) {
	svc, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	caller := memberCaller(tenantID)

	broadcast := ownedNotification(caller.UserID, tenantID)
	broadcast.UserID = nil

	notificationRepo.EXPECT().
		FindNotificationByID(ctx, broadcast.ID).
		Return(broadcast, nil)
	notificationRepo.EXPECT().SaveNotification(ctx, broadcast).Return(nil)

	require.NoError(t, svc.MarkRead(ctx, caller, broadcast.ID))
	assert.True(t, broadcast.Read)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	svc, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	id := uuid.New()

	notificationRepo.EXPECT().
		FindNotificationByID(ctx, id).
		Return(nil, repository.ErrNotificationNotFound)

	err := svc.MarkRead(ctx, memberCaller(uuid.New()), id)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestNotificationService_MarkReadBatch_ForeignRowAbortsBatch(t *testing.T) {
	svc, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	caller := memberCaller(tenantID)

	mine := ownedNotification(caller.UserID, tenantID)
	theirs := ownedNotification(uuid.New(), tenantID)
	ids := []uuid.UUID{mine.ID, theirs.ID}

	notificationRepo.EXPECT().
		FindNotificationsByIDs(ctx, ids).
		Return([]*entity.Notification{theirs, mine}, nil)

	err := svc.MarkReadBatch(ctx, caller, ids)
	require.Error(t, err)
	assert.False(t, mine.Read)
}

func TestNotificationService_MarkReadBatch_MarksAllUnread(t *testing.T) {
	svc, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	caller := memberCaller(tenantID)

	first := ownedNotification(caller.UserID, tenantID)
	second := ownedNotification(caller.UserID, tenantID)
	second.Read = true
	ids := []uuid.UUID{first.ID, second.ID}

	notificationRepo.EXPECT().
		FindNotificationsByIDs(ctx, ids).
		Return([]*entity.Notification{first, second}, nil)
	notificationRepo.EXPECT().SaveNotification(ctx, first).Return(nil)

	require.NoError(t, svc.MarkReadBatch(ctx, caller, ids))
	assert.True(t, first.Read)
}

func TestNotificationService_Dismiss_Idempotent(t *testing.T) {
	svc, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	caller := memberCaller(tenantID)

	notification := ownedNotification(caller.UserID, tenantID)
	notification.Dismissed = true

	notificationRepo.EXPECT().
		FindNotificationByID(ctx, notification.ID).
		Return(notification, nil)

	require.NoError(t, svc.Dismiss(ctx, caller, notification.ID))
}
