package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"backlot/internal/domain/entity"
	domainerrors "backlot/internal/domain/errors"
	"backlot/internal/domain/repository"
	mockRepo "backlot/internal/mocks/repository"
	"backlot/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPreferenceService(t *testing.T) (
	usecase.PreferenceUsecase,
	*mockRepo.MockPreferenceRepository,
	*mockRepo.MockTransactionManager,
) {
	prefRepo := mockRepo.NewMockPreferenceRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewPreferenceService(logger, prefRepo, txManager), prefRepo, txManager
}

func expectPreferenceTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, prefRepo *mockRepo.MockPreferenceRepository) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPreferenceRepository().Return(prefRepo)

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestPreferenceService_GetPreference_ReturnsStoredRow(t *testing.T) {
	svc, prefRepo, _ := createTestPreferenceService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	caller := memberCaller(tenantID)
	stored := openPreference(caller.UserID, tenantID, entity.ModuleRecon)

	prefRepo.EXPECT().
		FindPreference(ctx, caller.UserID, tenantID, entity.ModuleRecon).
		Return(stored, nil)

	pref, err := svc.GetPreference(ctx, caller, caller.UserID, tenantID, entity.ModuleRecon)
	require.NoError(t, err)
	assert.Same(t, stored, pref)
}

func TestPreferenceService_GetPreference_LazilyPersistsDefaults(t *testing.T) {
	svc, prefRepo, _ := createTestPreferenceService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	caller := memberCaller(tenantID)

	prefRepo.EXPECT().
		FindPreference(ctx, caller.UserID, tenantID, entity.ModuleSales).
		Return(nil, repository.ErrPreferenceNotFound)
	prefRepo.EXPECT().
		CreatePreference(ctx, mock.Anything).
		Return(nil)

	pref, err := svc.GetPreference(ctx, caller, caller.UserID, tenantID, entity.ModuleSales)
	require.NoError(t, err)

	assert.Equal(t, caller.UserID, pref.UserID)
	assert.Equal(t, entity.ModuleSales, pref.Module)
	assert.True(t, pref.InAppEnabled)
	assert.False(t, pref.SMSEnabled)
	assert.Contains(t, pref.Events, "order_assigned")
	assert.Equal(t, 30, pref.AutoDismissRead)
	assert.Equal(t, 90, pref.AutoDismissUnread)
}

func TestPreferenceService_GetPreference_ConcurrentInsertLosesGracefully(t *testing.T) {
	svc, prefRepo, _ := createTestPreferenceService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	caller := memberCaller(tenantID)
	winner := openPreference(caller.UserID, tenantID, entity.ModuleSales)

	prefRepo.EXPECT().
		FindPreference(ctx, caller.UserID, tenantID, entity.ModuleSales).
		Return(nil, repository.ErrPreferenceNotFound).Once()
	prefRepo.EXPECT().
		CreatePreference(ctx, mock.Anything).
		Return(domainerrors.ErrConflict)
	prefRepo.EXPECT().
		FindPreference(ctx, caller.UserID, tenantID, entity.ModuleSales).
		Return(winner, nil).Once()

	pref, err := svc.GetPreference(ctx, caller, caller.UserID, tenantID, entity.ModuleSales)
	require.NoError(t, err)
	assert.Same(t, winner, pref)
}

func TestPreferenceService_GetPreference_RejectsUnknownModule(t *testing.T) {
	svc, _, _ := createTestPreferenceService(t)

	tenantID := uuid.New()
	caller := memberCaller(tenantID)

	_, err := svc.GetPreference(context.Background(), caller, caller.UserID, tenantID, "parking")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidation.ErrorCode(), appErr.ErrorCode())
}

func TestPreferenceService_UpdateEventPreference_TogglesSingleChannel(t *testing.T) {
	svc, prefRepo, txManager := createTestPreferenceService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	caller := memberCaller(tenantID)
	stored := openPreference(caller.UserID, tenantID, entity.ModuleSales)
	stored.Events["order_assigned"] = entity.EventPreference{
		Enabled:  true,
		Channels: []entity.Channel{entity.ChannelInApp},
	}

	expectPreferenceTransaction(t, txManager, prefRepo)
	prefRepo.EXPECT().
		FindPreferenceForUpdate(ctx, caller.UserID, tenantID, entity.ModuleSales).
		Return(stored, nil)
	prefRepo.EXPECT().SavePreference(ctx, stored).Return(nil)

	pref, err := svc.UpdateEventPreference(ctx, caller, caller.UserID, tenantID, entity.ModuleSales, "order_assigned", entity.ChannelEmail, true)
	require.NoError(t, err)

	ep := pref.Events["order_assigned"]
	assert.True(t, ep.Enabled)
	assert.ElementsMatch(t, []entity.Channel{entity.ChannelInApp, entity.ChannelEmail}, ep.Channels)
}

func TestPreferenceService_UpdateEventPreference_AllChannelWildcard(t *testing.T) {
	svc, prefRepo, txManager := createTestPreferenceService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	caller := memberCaller(tenantID)
	stored := openPreference(caller.UserID, tenantID, entity.ModuleSales)

	expectPreferenceTransaction(t, txManager, prefRepo)
	prefRepo.EXPECT().
		FindPreferenceForUpdate(ctx, caller.UserID, tenantID, entity.ModuleSales).
		Return(stored, nil)
	prefRepo.EXPECT().SavePreference(ctx, stored).Return(nil)

	pref, err := svc.UpdateEventPreference(ctx, caller, caller.UserID, tenantID, entity.ModuleSales, "deal_at_risk", entity.ChannelAll, false)
	require.NoError(t, err)

	ep := pref.Events["deal_at_risk"]
	assert.False(t, ep.Enabled)
	assert.Empty(t, ep.Channels)
}

func TestPreferenceService_UpdateEventPreference_UnknownEventInitialized(t *testing.T) {
	svc, prefRepo, txManager := createTestPreferenceService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	caller := memberCaller(tenantID)
	stored := openPreference(caller.UserID, tenantID, entity.ModuleSales)

	expectPreferenceTransaction(t, txManager, prefRepo)
	prefRepo.EXPECT().
		FindPreferenceForUpdate(ctx, caller.UserID, tenantID, entity.ModuleSales).
		Return(stored, nil)
	prefRepo.EXPECT().SavePreference(ctx, stored).Return(nil)

	pref, err := svc.UpdateEventPreference(ctx, caller, caller.UserID, tenantID, entity.ModuleSales, "custom_bulletin", entity.ChannelPush, true)
	require.NoError(t, err)

	ep, ok := pref.Events["custom_bulletin"]
	require.True(t, ok)
	assert.True(t, ep.Enabled)
	assert.Equal(t, []entity.Channel{entity.ChannelPush}, ep.Channels)
}

func TestPreferenceService_UpdateEventPreference_CreatesRowWhenMissing(t *testing.T) {
	svc, prefRepo, txManager := createTestPreferenceService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	caller := memberCaller(tenantID)

	expectPreferenceTransaction(t, txManager, prefRepo)
	prefRepo.EXPECT().
		FindPreferenceForUpdate(ctx, caller.UserID, tenantID, entity.ModuleSales).
		Return(nil, repository.ErrPreferenceNotFound)
	prefRepo.EXPECT().CreatePreference(ctx, mock.Anything).Return(nil)
	prefRepo.EXPECT().SavePreference(ctx, mock.Anything).Return(nil)

	pref, err := svc.UpdateEventPreference(ctx, caller, caller.UserID, tenantID, entity.ModuleSales, "order_created", entity.ChannelSMS, true)
	require.NoError(t, err)
	assert.Contains(t, pref.Events["order_created"].Channels, entity.ChannelSMS)
}

func TestPreferenceService_UpdateChannels_ReplacesToggles(t *testing.T) {
	svc, prefRepo, txManager := createTestPreferenceService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	caller := memberCaller(tenantID)
	stored := openPreference(caller.UserID, tenantID, entity.ModuleSales)

	expectPreferenceTransaction(t, txManager, prefRepo)
	prefRepo.EXPECT().
		FindPreferenceForUpdate(ctx, caller.UserID, tenantID, entity.ModuleSales).
		Return(stored, nil)
	prefRepo.EXPECT().SavePreference(ctx, stored).Return(nil)

	pref, err := svc.UpdateChannels(ctx, caller, caller.UserID, tenantID, entity.ModuleSales, map[entity.Channel]bool{
		entity.ChannelEmail: false,
		entity.ChannelSMS:   true,
	})
	require.NoError(t, err)
	assert.False(t, pref.EmailEnabled)
	assert.True(t, pref.SMSEnabled)
	// Channels absent from the map keep their current setting.
	assert.True(t, pref.InAppEnabled)
}

func TestPreferenceService_UpdateChannels_RejectsUnknownChannel(t *testing.T) {
	svc, _, _ := createTestPreferenceService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	caller := memberCaller(tenantID)

	_, err := svc.UpdateChannels(ctx, caller, caller.UserID, tenantID, entity.ModuleSales, map[entity.Channel]bool{
		entity.Channel("fax"): true,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidation.ErrorCode(), appErr.ErrorCode())
}

func TestPreferenceService_UpdateQuietHours_ValidatesWindow(t *testing.T) {
	svc, _, _ := createTestPreferenceService(t)

	tenantID := uuid.New()
	caller := memberCaller(tenantID)

	tests := []struct {
		name string
		qh   entity.QuietHours
	}{
		{"unknown timezone", entity.QuietHours{Enabled: true, Start: "22:00", End: "08:00", Timezone: "Mars/Olympus"}},
		{"malformed start", entity.QuietHours{Enabled: true, Start: "25:00", End: "08:00", Timezone: "UTC"}},
		{"malformed end", entity.QuietHours{Enabled: true, Start: "22:00", End: "8pm", Timezone: "UTC"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateQuietHours(context.Background(), caller, caller.UserID, tenantID, entity.ModuleSales, tt.qh)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.ErrValidation.ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestPreferenceService_UpdateQuietHours_ReplacesWindow(t *testing.T) {
	svc, prefRepo, txManager := createTestPreferenceService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	caller := memberCaller(tenantID)
	stored := openPreference(caller.UserID, tenantID, entity.ModuleSales)

	expectPreferenceTransaction(t, txManager, prefRepo)
	prefRepo.EXPECT().
		FindPreferenceForUpdate(ctx, caller.UserID, tenantID, entity.ModuleSales).
		Return(stored, nil)
	prefRepo.EXPECT().SavePreference(ctx, stored).Return(nil)

	window := entity.QuietHours{Enabled: true, Start: "21:00", End: "06:30", Timezone: "America/Denver"}
	pref, err := svc.UpdateQuietHours(ctx, caller, caller.UserID, tenantID, entity.ModuleSales, window)
	require.NoError(t, err)
	assert.Equal(t, window, pref.QuietHours)
}

func TestPreferenceService_UpdateRateLimits_RejectsNegativeCaps(t *testing.T) {
	svc, _, _ := createTestPreferenceService(t)

	tenantID := uuid.New()
	caller := memberCaller(tenantID)
	limits := map[entity.Channel]entity.RateLimit{
		entity.ChannelSMS: {MaxPerHour: -1},
	}

	_, err := svc.UpdateRateLimits(context.Background(), caller, caller.UserID, tenantID, entity.ModuleSales, limits)
	require.Error(t, err)
}

func TestPreferenceService_UpdateRateLimits_ReplacesCaps(t *testing.T) {
	svc, prefRepo, txManager := createTestPreferenceService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	caller := memberCaller(tenantID)
	stored := openPreference(caller.UserID, tenantID, entity.ModuleSales)

	expectPreferenceTransaction(t, txManager, prefRepo)
	prefRepo.EXPECT().
		FindPreferenceForUpdate(ctx, caller.UserID, tenantID, entity.ModuleSales).
		Return(stored, nil)
	prefRepo.EXPECT().SavePreference(ctx, stored).Return(nil)

	limits := map[entity.Channel]entity.RateLimit{
		entity.ChannelSMS:  {MaxPerHour: 3, MaxPerDay: 20},
		entity.ChannelPush: {MaxPerDay: 50},
	}
	pref, err := svc.UpdateRateLimits(ctx, caller, caller.UserID, tenantID, entity.ModuleSales, limits)
	require.NoError(t, err)
	assert.Equal(t, limits, pref.RateLimits)
}

func TestPreferenceService_Mutate_RejectsOtherUsersSettings(t *testing.T) {
	svc, _, _ := createTestPreferenceService(t)

	tenantID := uuid.New()
	caller := memberCaller(tenantID)

	_, err := svc.UpdateQuietHours(context.Background(), caller, uuid.New(), tenantID, entity.ModuleSales, entity.QuietHours{})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrPermission.ErrorCode(), appErr.ErrorCode())
}
