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

func createTestDeliveryService(t *testing.T) (
	usecase.DeliveryUsecase,
	*mockRepo.MockDeliveryRepository,
	*mockRepo.MockNotificationRepository,
) {
	deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewDeliveryService(logger, deliveryRepo, notificationRepo), deliveryRepo, notificationRepo
}

func sentAttempt(provider, externalID string) *entity.DeliveryAttempt {
	attempt := entity.NewDeliveryAttempt(uuid.New(), uuid.New(), uuid.New(), entity.ChannelEmail, time.Now().UTC().Add(-time.Minute))
	attempt.Provider = provider
	attempt.ExternalMessageID = externalID
	attempt.Transition(entity.DeliverySent, time.Now().UTC().Add(-30*time.Second))

	return attempt
}

func TestDeliveryService_OnDeliveryStatus_AdvancesAttempt(t *testing.T) {
	svc, deliveryRepo, _ := createTestDeliveryService(t)

	ctx := context.Background()
	attempt := sentAttempt("mailgateway", "msg-123")
	ts := time.Now().UTC()

	deliveryRepo.EXPECT().
		FindAttemptByExternalID(ctx, "mailgateway", "msg-123").
		Return(attempt, nil)
	deliveryRepo.EXPECT().SaveAttempt(ctx, attempt).Return(nil)

	err := svc.OnDeliveryStatus(ctx, "mailgateway", "msg-123", entity.DeliveryDelivered, ts, "", "")
	require.NoError(t, err)

	assert.Equal(t, entity.DeliveryDelivered, attempt.Status)
	require.NotNil(t, attempt.DeliveredAt)
	assert.Equal(t, ts, *attempt.DeliveredAt)
}

func TestDeliveryService_OnDeliveryStatus_BounceRecordsError(t *testing.T) {
	svc, deliveryRepo, _ := createTestDeliveryService(t)

	ctx := context.Background()
	attempt := sentAttempt("mailgateway", "msg-456")

	deliveryRepo.EXPECT().
		FindAttemptByExternalID(ctx, "mailgateway", "msg-456").
		Return(attempt, nil)
	deliveryRepo.EXPECT().SaveAttempt(ctx, attempt).Return(nil)

	err := svc.OnDeliveryStatus(ctx, "mailgateway", "msg-456", entity.DeliveryBounced, time.Now().UTC(), "550", "mailbox unavailable")
	require.NoError(t, err)

	assert.Equal(t, entity.DeliveryBounced, attempt.Status)
	assert.Equal(t, "550", attempt.ErrorCode)
	assert.Equal(t, "mailbox unavailable", attempt.ErrorMessage)
}

func TestDeliveryService_OnDeliveryStatus_UnknownCorrelationID(t *testing.T) {
	svc, deliveryRepo, _ := createTestDeliveryService(t)

	ctx := context.Background()
	deliveryRepo.EXPECT().
		FindAttemptByExternalID(ctx, "smsgateway", "nope").
		Return(nil, repository.ErrDeliveryNotFound)

	err := svc.OnDeliveryStatus(ctx, "smsgateway", "nope", entity.DeliveryDelivered, time.Now().UTC(), "", "")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidation.ErrorCode(), appErr.ErrorCode())
}

func TestDeliveryService_OnDeliveryStatus_ForbiddenTransition(t *testing.T) {
	svc, deliveryRepo, _ := createTestDeliveryService(t)

	ctx := context.Background()
	attempt := sentAttempt("mailgateway", "msg-789")

	deliveryRepo.EXPECT().
		FindAttemptByExternalID(ctx, "mailgateway", "msg-789").
		Return(attempt, nil)

	// sent -> opened skips the delivered milestone.
	err := svc.OnDeliveryStatus(ctx, "mailgateway", "msg-789", entity.DeliveryOpened, time.Now().UTC(), "", "")
	require.Error(t, err)
	assert.Equal(t, entity.DeliverySent, attempt.Status)
}

func TestDeliveryService_OnDeliveryStatus_RequiresCorrelation(t *testing.T) {
	svc, _, _ := createTestDeliveryService(t)

	err := svc.OnDeliveryStatus(context.Background(), "", "msg-1", entity.DeliveryDelivered, time.Now().UTC(), "", "")
	require.Error(t, err)

	err = svc.OnDeliveryStatus(context.Background(), "mailgateway", "msg-1", "shipped", time.Now().UTC(), "", "")
	require.Error(t, err)
}

func TestDeliveryService_AttemptsForNotification_ChecksTenant(t *testing.T) {
	svc, _, notificationRepo := createTestDeliveryService(t)

	ctx := context.Background()
	notificationID := uuid.New()

	notificationRepo.EXPECT().
		FindNotificationByID(ctx, notificationID).
		Return(&entity.Notification{ID: notificationID, TenantID: uuid.New()}, nil)

	_, err := svc.AttemptsForNotification(ctx, memberCaller(uuid.New()), notificationID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrPermission.ErrorCode(), appErr.ErrorCode())
}

func TestDeliveryService_AttemptsForNotification_ReturnsAttempts(t *testing.T) {
	svc, deliveryRepo, notificationRepo := createTestDeliveryService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	notificationID := uuid.New()
	attempt := entity.NewDeliveryAttempt(notificationID, uuid.New(), tenantID, entity.ChannelPush, time.Now().UTC())

	notificationRepo.EXPECT().
		FindNotificationByID(ctx, notificationID).
		Return(&entity.Notification{ID: notificationID, TenantID: tenantID}, nil)
	deliveryRepo.EXPECT().
		FindAttemptsByNotification(ctx, notificationID).
		Return([]*entity.DeliveryAttempt{attempt}, nil)

	attempts, err := svc.AttemptsForNotification(ctx, memberCaller(tenantID), notificationID)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, attempt.ID, attempts[0].ID)
}
