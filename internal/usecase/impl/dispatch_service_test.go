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
	"backlot/internal/domain/service"
	mockRepo "backlot/internal/mocks/repository"
	mockSvc "backlot/internal/mocks/service"
	"backlot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatchTestMocks struct {
	txManager        *mockRepo.MockTransactionManager
	notificationRepo *mockRepo.MockNotificationRepository
	deliveryRepo     *mockRepo.MockDeliveryRepository
	prefRepo         *mockRepo.MockPreferenceRepository
	ruleRepo         *mockRepo.MockRuleRepository
	roleDir          *mockSvc.MockRoleDirectory
	provider         *mockSvc.MockChannelProvider
	publisher        *mockSvc.MockEventPublisher
}

func createTestDispatchService(t *testing.T) (usecase.DispatchUsecase, *dispatchTestMocks) {
	m := &dispatchTestMocks{
		txManager:        mockRepo.NewMockTransactionManager(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		deliveryRepo:     mockRepo.NewMockDeliveryRepository(t),
		prefRepo:         mockRepo.NewMockPreferenceRepository(t),
		ruleRepo:         mockRepo.NewMockRuleRepository(t),
		roleDir:          mockSvc.NewMockRoleDirectory(t),
		provider:         mockSvc.NewMockChannelProvider(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m.provider.EXPECT().Channel().Return(entity.ChannelInApp)

	svc := NewDispatchService(
		logger,
		m.txManager,
		m.notificationRepo,
		m.deliveryRepo,
		m.prefRepo,
		NewResolver(m.ruleRepo, m.prefRepo, m.roleDir, logger),
		NewQuietHoursGate(logger),
		NewRateLimiter(m.deliveryRepo, logger),
		m.roleDir,
		[]service.ChannelProvider{m.provider},
		m.publisher,
		time.Second,
	)

	return svc, m
}

func (m *dispatchTestMocks) expectTransaction(ctx context.Context, t *testing.T, withAttempts bool) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewNotificationRepository().Return(m.notificationRepo)
	if withAttempts {
		factory.EXPECT().NewDeliveryRepository().Return(m.deliveryRepo)
	}

	m.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func testDescriptor(tenantID uuid.UUID) *entity.EventDescriptor {
	return &entity.EventDescriptor{
		TenantID: tenantID,
		Module:   entity.ModuleSales,
		Event:    "order_assigned",
		Title:    "Order assigned",
		Message:  "Stock #4821 was assigned to you",
	}
}

func memberCaller(tenantID uuid.UUID) entity.Caller {
	return entity.Caller{UserID: uuid.New(), TenantIDs: []uuid.UUID{tenantID}}
}

func TestDispatchService_Notify_RejectsInvalidDescriptor(t *testing.T) {
	svc, _ := createTestDispatchService(t)

	tenantID := uuid.New()
	desc := testDescriptor(tenantID)
	desc.Title = ""

	_, err := svc.Notify(context.Background(), memberCaller(tenantID), desc)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidation.ErrorCode(), appErr.ErrorCode())
}

func TestDispatchService_Notify_RejectsForeignTenant(t *testing.T) {
	svc, _ := createTestDispatchService(t)

	desc := testDescriptor(uuid.New())
	caller := memberCaller(uuid.New())

	_, err := svc.Notify(context.Background(), caller, desc)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrPermission.ErrorCode(), appErr.ErrorCode())
}

func TestDispatchService_Notify_NoRecipientsIsNoOp(t *testing.T) {
	svc, m := createTestDispatchService(t)

	ctx := context.Background()
	tenantID := uuid.New()

	m.ruleRepo.EXPECT().
		FindEnabledRules(ctx, tenantID, entity.ModuleSales, "order_assigned").
		Return([]*entity.TenantRule{}, nil)

	receipt, err := svc.Notify(ctx, memberCaller(tenantID), testDescriptor(tenantID))
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, receipt.NotificationID)
	assert.Zero(t, receipt.Recipients)
	assert.Zero(t, receipt.Attempts)
}

func TestDispatchService_Notify_SingleRecipientOwnsNotification(t *testing.T) {
	svc, m := createTestDispatchService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()

	rule := testRule(tenantID, "notify assignee", 5,
		[]entity.Channel{entity.ChannelInApp},
		entity.RecipientSpec{UserIDs: []uuid.UUID{userID}})

	m.ruleRepo.EXPECT().
		FindEnabledRules(ctx, tenantID, entity.ModuleSales, "order_assigned").
		Return([]*entity.TenantRule{rule}, nil)
	m.prefRepo.EXPECT().
		FindPreference(ctx, userID, tenantID, entity.ModuleSales).
		Return(openPreference(userID, tenantID, entity.ModuleSales), nil)

	var created *entity.Notification
	m.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, n *entity.Notification) error {
			created = n

			return nil
		})
	m.deliveryRepo.EXPECT().CreateAttempts(ctx, mock.Anything).Return(nil)
	m.expectTransaction(ctx, t, true)

	m.publisher.EXPECT().PublishDispatchEvent(ctx, mock.Anything).Return(nil)

	m.roleDir.EXPECT().
		ContactFor(ctx, tenantID, userID).
		Return(&service.Contact{Email: "dealer@example.com"}, nil)
	m.provider.EXPECT().Name().Return("inapp")
	m.provider.EXPECT().
		Send(mock.Anything, mock.Anything).
		Return(&service.SendResult{ExternalMessageID: "ext-1", Delivered: true}, nil)

	var saved *entity.DeliveryAttempt
	m.deliveryRepo.EXPECT().
		SaveAttempt(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, a *entity.DeliveryAttempt) error {
			saved = a

			return nil
		})

	receipt, err := svc.Notify(ctx, memberCaller(tenantID), testDescriptor(tenantID))
	require.NoError(t, err)

	assert.Equal(t, 1, receipt.Recipients)
	assert.Equal(t, 1, receipt.Attempts)
	assert.Zero(t, receipt.SuppressedQuietHours)
	assert.Zero(t, receipt.SuppressedRateLimit)

	require.NotNil(t, created)
	require.NotNil(t, created.UserID)
	assert.Equal(t, userID, *created.UserID)
	assert.Equal(t, receipt.NotificationID, created.ID)

	require.NotNil(t, saved)
	assert.Equal(t, entity.DeliveryDelivered, saved.Status)
	assert.Equal(t, "inapp", saved.Provider)
	assert.Equal(t, "ext-1", saved.ExternalMessageID)
}

func TestDispatchService_Notify_FanOutBecomesBroadcast(t *testing.T) {
	svc, m := createTestDispatchService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userA := uuid.New()
	userB := uuid.New()

	rule := testRule(tenantID, "notify team", 5,
		[]entity.Channel{entity.ChannelInApp},
		entity.RecipientSpec{UserIDs: []uuid.UUID{userA, userB}})

	m.ruleRepo.EXPECT().
		FindEnabledRules(ctx, tenantID, entity.ModuleSales, "order_assigned").
		Return([]*entity.TenantRule{rule}, nil)
	for _, id := range []uuid.UUID{userA, userB} {
		m.prefRepo.EXPECT().
			FindPreference(ctx, id, tenantID, entity.ModuleSales).
			Return(openPreference(id, tenantID, entity.ModuleSales), nil)
		m.roleDir.EXPECT().
			ContactFor(ctx, tenantID, id).
			Return(&service.Contact{}, nil)
	}

	var created *entity.Notification
	m.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, n *entity.Notification) error {
			created = n

			return nil
		})
	m.deliveryRepo.EXPECT().CreateAttempts(ctx, mock.Anything).Return(nil)
	m.expectTransaction(ctx, t, true)

	m.publisher.EXPECT().PublishDispatchEvent(ctx, mock.Anything).Return(nil)
	m.provider.EXPECT().Name().Return("inapp")
	m.provider.EXPECT().
		Send(mock.Anything, mock.Anything).
		Return(&service.SendResult{ExternalMessageID: "ext", Delivered: true}, nil)
	m.deliveryRepo.EXPECT().SaveAttempt(ctx, mock.Anything).Return(nil)

	receipt, err := svc.Notify(ctx, memberCaller(tenantID), testDescriptor(tenantID))
	require.NoError(t, err)

	assert.Equal(t, 2, receipt.Recipients)
	assert.Equal(t, 2, receipt.Attempts)
	require.NotNil(t, created)
	assert.Nil(t, created.UserID)
	assert.True(t, created.Broadcast())
}

func TestDispatchService_Notify_QuietHoursSuppressAllChannels(t *testing.T) {
	svc, m := createTestDispatchService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()

	rule := testRule(tenantID, "notify", 5,
		[]entity.Channel{entity.ChannelInApp},
		entity.RecipientSpec{UserIDs: []uuid.UUID{userID}})

	pref := openPreference(userID, tenantID, entity.ModuleSales)
	// A window covering the full day keeps the test clock-independent.
	pref.QuietHours = entity.QuietHours{Enabled: true, Start: "00:00", End: "23:59", Timezone: "UTC"}

	m.ruleRepo.EXPECT().
		FindEnabledRules(ctx, tenantID, entity.ModuleSales, "order_assigned").
		Return([]*entity.TenantRule{rule}, nil)
	m.prefRepo.EXPECT().
		FindPreference(ctx, userID, tenantID, entity.ModuleSales).
		Return(pref, nil)

	m.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	m.expectTransaction(ctx, t, false)
	m.publisher.EXPECT().PublishDispatchEvent(ctx, mock.Anything).Return(nil)

	receipt, err := svc.Notify(ctx, memberCaller(tenantID), testDescriptor(tenantID))
	require.NoError(t, err)

	assert.Equal(t, 1, receipt.Recipients)
	assert.Zero(t, receipt.Attempts)
	assert.Equal(t, 1, receipt.SuppressedQuietHours)
}

func TestDispatchService_Notify_RateLimitSuppressesChannel(t *testing.T) {
	svc, m := createTestDispatchService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()

	rule := testRule(tenantID, "notify", 5,
		[]entity.Channel{entity.ChannelInApp},
		entity.RecipientSpec{UserIDs: []uuid.UUID{userID}})

	pref := openPreference(userID, tenantID, entity.ModuleSales)
	pref.RateLimits = map[entity.Channel]entity.RateLimit{
		entity.ChannelInApp: {MaxPerHour: 2},
	}

	m.ruleRepo.EXPECT().
		FindEnabledRules(ctx, tenantID, entity.ModuleSales, "order_assigned").
		Return([]*entity.TenantRule{rule}, nil)
	m.prefRepo.EXPECT().
		FindPreference(ctx, userID, tenantID, entity.ModuleSales).
		Return(pref, nil)
	m.deliveryRepo.EXPECT().
		CountSentSince(ctx, userID, tenantID, entity.ChannelInApp, mock.Anything).
		Return(int64(2), nil)

	m.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	m.expectTransaction(ctx, t, false)
	m.publisher.EXPECT().PublishDispatchEvent(ctx, mock.Anything).Return(nil)

	receipt, err := svc.Notify(ctx, memberCaller(tenantID), testDescriptor(tenantID))
	require.NoError(t, err)

	assert.Equal(t, 1, receipt.Recipients)
	assert.Zero(t, receipt.Attempts)
	assert.Equal(t, 1, receipt.SuppressedRateLimit)
}

func TestDispatchService_Notify_ProviderFailureMarksAttemptFailed(t *testing.T) {
	svc, m := createTestDispatchService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()

	rule := testRule(tenantID, "notify", 5,
		[]entity.Channel{entity.ChannelInApp},
		entity.RecipientSpec{UserIDs: []uuid.UUID{userID}})

	m.ruleRepo.EXPECT().
		FindEnabledRules(ctx, tenantID, entity.ModuleSales, "order_assigned").
		Return([]*entity.TenantRule{rule}, nil)
	m.prefRepo.EXPECT().
		FindPreference(ctx, userID, tenantID, entity.ModuleSales).
		Return(openPreference(userID, tenantID, entity.ModuleSales), nil)

	m.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	m.deliveryRepo.EXPECT().CreateAttempts(ctx, mock.Anything).Return(nil)
	m.expectTransaction(ctx, t, true)
	m.publisher.EXPECT().PublishDispatchEvent(ctx, mock.Anything).Return(nil)

	m.roleDir.EXPECT().
		ContactFor(ctx, tenantID, userID).
		Return(&service.Contact{}, nil)
	m.provider.EXPECT().
		Send(mock.Anything, mock.Anything).
		Return(nil, errors.New("gateway unavailable"))

	var saved *entity.DeliveryAttempt
	m.deliveryRepo.EXPECT().
		SaveAttempt(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, a *entity.DeliveryAttempt) error {
			saved = a

			return nil
		})

	receipt, err := svc.Notify(ctx, memberCaller(tenantID), testDescriptor(tenantID))
	require.NoError(t, err, "provider failures must not surface to the producer")

	assert.Equal(t, 1, receipt.Attempts)
	require.NotNil(t, saved)
	assert.Equal(t, entity.DeliveryFailed, saved.Status)
	assert.Equal(t, "PROVIDER_ERROR", saved.ErrorCode)
	assert.Contains(t, saved.ErrorMessage, "gateway unavailable")
}

func TestDispatchService_RetrySweep_RequeuesUnderCap(t *testing.T) {
	svc, m := createTestDispatchService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()
	notificationID := uuid.New()

	failed := entity.NewDeliveryAttempt(notificationID, userID, tenantID, entity.ChannelInApp, time.Now().UTC().Add(-time.Hour))
	failed.Fail("PROVIDER_ERROR", "gateway unavailable", time.Now().UTC().Add(-30*time.Minute))

	m.provider.EXPECT().MaxRetries().Return(3)
	m.deliveryRepo.EXPECT().
		FindRetryableByChannel(ctx, entity.ChannelInApp, 3, 50).
		Return([]*entity.DeliveryAttempt{failed}, nil)
	m.notificationRepo.EXPECT().
		FindNotificationByID(ctx, notificationID).
		Return(&entity.Notification{ID: notificationID, TenantID: tenantID, Module: entity.ModuleSales, Event: "order_assigned"}, nil)
	m.prefRepo.EXPECT().
		FindPreference(ctx, userID, tenantID, entity.ModuleSales).
		Return(openPreference(userID, tenantID, entity.ModuleSales), nil)
	m.roleDir.EXPECT().
		ContactFor(ctx, tenantID, userID).
		Return(&service.Contact{}, nil)
	m.provider.EXPECT().Name().Return("inapp")
	m.provider.EXPECT().
		Send(mock.Anything, mock.Anything).
		Return(&service.SendResult{ExternalMessageID: "ext-2", Delivered: true}, nil)
	m.deliveryRepo.EXPECT().SaveAttempt(ctx, mock.Anything).Return(nil)

	retried, err := svc.RetrySweep(ctx, 50)
	require.NoError(t, err)

	assert.Equal(t, 1, retried)
	assert.Equal(t, 1, failed.RetryCount)
	assert.Equal(t, entity.DeliveryDelivered, failed.Status)
}
