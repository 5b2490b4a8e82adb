package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"backlot/internal/domain/entity"
	"backlot/internal/domain/repository"
	mockRepo "backlot/internal/mocks/repository"
	mockSvc "backlot/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestResolver(t *testing.T) (
	*Resolver,
	*mockRepo.MockRuleRepository,
	*mockRepo.MockPreferenceRepository,
	*mockSvc.MockRoleDirectory,
) {
	ruleRepo := mockRepo.NewMockRuleRepository(t)
	prefRepo := mockRepo.NewMockPreferenceRepository(t)
	roleDir := mockSvc.NewMockRoleDirectory(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewResolver(ruleRepo, prefRepo, roleDir, logger), ruleRepo, prefRepo, roleDir
}

// openPreference accepts every channel and every event so resolver tests can
// focus on rule mechanics.
func openPreference(userID, tenantID uuid.UUID, module entity.Module) *entity.Preference {
	pref := entity.DefaultPreference(userID, tenantID, module, time.Now().UTC())
	pref.SMSEnabled = true
	pref.Events = map[string]entity.EventPreference{}

	return pref
}

func testRule(tenantID uuid.UUID, name string, priority int, channels []entity.Channel, recipients entity.RecipientSpec) *entity.TenantRule {
	return &entity.TenantRule{
		ID:         uuid.New(),
		TenantID:   tenantID,
		Module:     entity.ModuleSales,
		Event:      "order_assigned",
		Name:       name,
		Recipients: recipients,
		Channels:   channels,
		Priority:   priority,
		Enabled:    true,
	}
}

func TestResolver_NoRulesResolvesNobody(t *testing.T) {
	resolver, ruleRepo, _, _ := createTestResolver(t)

	ctx := context.Background()
	tenantID := uuid.New()

	ruleRepo.EXPECT().
		FindEnabledRules(ctx, tenantID, entity.ModuleSales, "order_assigned").
		Return([]*entity.TenantRule{}, nil)

	resolutions, err := resolver.Resolve(ctx, tenantID, entity.ModuleSales, "order_assigned", entity.EventMetadata{})
	require.NoError(t, err)
	assert.Empty(t, resolutions)
}

func TestResolver_HigherPriorityRuleOwnsOverlappingUser(t *testing.T) {
	resolver, ruleRepo, prefRepo, roleDir := createTestResolver(t)

	ctx := context.Background()
	tenantID := uuid.New()
	managerID := uuid.New()

	ruleA := testRule(tenantID, "escalate to managers", 10,
		[]entity.Channel{entity.ChannelInApp, entity.ChannelSMS},
		entity.RecipientSpec{Roles: []string{"manager"}})
	ruleB := testRule(tenantID, "notify watchers", 5,
		[]entity.Channel{entity.ChannelInApp},
		entity.RecipientSpec{UserIDs: []uuid.UUID{managerID}})

	ruleRepo.EXPECT().
		FindEnabledRules(ctx, tenantID, entity.ModuleSales, "order_assigned").
		Return([]*entity.TenantRule{ruleA, ruleB}, nil)
	roleDir.EXPECT().
		UsersInRoles(ctx, tenantID, []string{"manager"}).
		Return([]uuid.UUID{managerID}, nil)
	prefRepo.EXPECT().
		FindPreference(ctx, managerID, tenantID, entity.ModuleSales).
		Return(openPreference(managerID, tenantID, entity.ModuleSales), nil)

	resolutions, err := resolver.Resolve(ctx, tenantID, entity.ModuleSales, "order_assigned", entity.EventMetadata{})
	require.NoError(t, err)
	require.Len(t, resolutions, 1)

	res := resolutions[0]
	assert.Equal(t, managerID, res.UserID)
	assert.Equal(t, "escalate to managers", res.RuleName)
	assert.True(t, res.Channels.Contains(entity.ChannelInApp))
	assert.True(t, res.Channels.Contains(entity.ChannelSMS))
	assert.Len(t, res.Channels, 2)
}

func TestResolver_EqualPriorityRulesUnionChannels(t *testing.T) {
	resolver, ruleRepo, prefRepo, _ := createTestResolver(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()

	ruleA := testRule(tenantID, "rule a", 5,
		[]entity.Channel{entity.ChannelInApp},
		entity.RecipientSpec{UserIDs: []uuid.UUID{userID}})
	ruleB := testRule(tenantID, "rule b", 5,
		[]entity.Channel{entity.ChannelEmail},
		entity.RecipientSpec{UserIDs: []uuid.UUID{userID}})

	ruleRepo.EXPECT().
		FindEnabledRules(ctx, tenantID, entity.ModuleSales, "order_assigned").
		Return([]*entity.TenantRule{ruleA, ruleB}, nil)
	prefRepo.EXPECT().
		FindPreference(ctx, userID, tenantID, entity.ModuleSales).
		Return(openPreference(userID, tenantID, entity.ModuleSales), nil)

	resolutions, err := resolver.Resolve(ctx, tenantID, entity.ModuleSales, "order_assigned", entity.EventMetadata{})
	require.NoError(t, err)
	require.Len(t, resolutions, 1)

	assert.True(t, resolutions[0].Channels.Contains(entity.ChannelInApp))
	assert.True(t, resolutions[0].Channels.Contains(entity.ChannelEmail))
}

func TestResolver_MetadataRecipientsExpand(t *testing.T) {
	resolver, ruleRepo, prefRepo, _ := createTestResolver(t)

	ctx := context.Background()
	tenantID := uuid.New()
	assignedID := uuid.New()
	creatorID := uuid.New()

	rule := testRule(tenantID, "involve the deal team", 5,
		[]entity.Channel{entity.ChannelInApp},
		entity.RecipientSpec{IncludeAssignedUser: true, IncludeCreator: true})

	ruleRepo.EXPECT().
		FindEnabledRules(ctx, tenantID, entity.ModuleSales, "order_assigned").
		Return([]*entity.TenantRule{rule}, nil)
	prefRepo.EXPECT().
		FindPreference(ctx, assignedID, tenantID, entity.ModuleSales).
		Return(openPreference(assignedID, tenantID, entity.ModuleSales), nil)
	prefRepo.EXPECT().
		FindPreference(ctx, creatorID, tenantID, entity.ModuleSales).
		Return(openPreference(creatorID, tenantID, entity.ModuleSales), nil)

	metadata := entity.EventMetadata{AssignedUserID: &assignedID, CreatedBy: &creatorID}
	resolutions, err := resolver.Resolve(ctx, tenantID, entity.ModuleSales, "order_assigned", metadata)
	require.NoError(t, err)
	require.Len(t, resolutions, 2)
	assert.Equal(t, assignedID, resolutions[0].UserID)
	assert.Equal(t, creatorID, resolutions[1].UserID)
}

func TestResolver_ConditionFiltersRules(t *testing.T) {
	resolver, ruleRepo, prefRepo, _ := createTestResolver(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()

	urgentOnly := testRule(tenantID, "urgent only", 10,
		[]entity.Channel{entity.ChannelSMS},
		entity.RecipientSpec{UserIDs: []uuid.UUID{userID}})
	urgentOnly.Condition = `metadata.priority in ["urgent", "high"]`

	always := testRule(tenantID, "always", 5,
		[]entity.Channel{entity.ChannelInApp},
		entity.RecipientSpec{UserIDs: []uuid.UUID{userID}})

	ruleRepo.EXPECT().
		FindEnabledRules(ctx, tenantID, entity.ModuleSales, "order_assigned").
		Return([]*entity.TenantRule{urgentOnly, always}, nil)
	prefRepo.EXPECT().
		FindPreference(ctx, userID, tenantID, entity.ModuleSales).
		Return(openPreference(userID, tenantID, entity.ModuleSales), nil)

	metadata := entity.EventMetadata{Priority: entity.PriorityNormal}
	resolutions, err := resolver.Resolve(ctx, tenantID, entity.ModuleSales, "order_assigned", metadata)
	require.NoError(t, err)
	require.Len(t, resolutions, 1)

	assert.Equal(t, "always", resolutions[0].RuleName)
	assert.False(t, resolutions[0].Channels.Contains(entity.ChannelSMS))
}

func TestResolver_InvalidConditionSkipsRuleNotDispatch(t *testing.T) {
	resolver, ruleRepo, prefRepo, _ := createTestResolver(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()

	broken := testRule(tenantID, "broken", 10,
		[]entity.Channel{entity.ChannelSMS},
		entity.RecipientSpec{UserIDs: []uuid.UUID{userID}})
	broken.Condition = "metadata.priority in ["

	healthy := testRule(tenantID, "healthy", 5,
		[]entity.Channel{entity.ChannelInApp},
		entity.RecipientSpec{UserIDs: []uuid.UUID{userID}})

	ruleRepo.EXPECT().
		FindEnabledRules(ctx, tenantID, entity.ModuleSales, "order_assigned").
		Return([]*entity.TenantRule{broken, healthy}, nil)
	prefRepo.EXPECT().
		FindPreference(ctx, userID, tenantID, entity.ModuleSales).
		Return(openPreference(userID, tenantID, entity.ModuleSales), nil)

	resolutions, err := resolver.Resolve(ctx, tenantID, entity.ModuleSales, "order_assigned", entity.EventMetadata{})
	require.NoError(t, err)
	require.Len(t, resolutions, 1)
	assert.Equal(t, "healthy", resolutions[0].RuleName)
}

func TestResolver_PreferenceDisablingEventDropsUser(t *testing.T) {
	resolver, ruleRepo, prefRepo, _ := createTestResolver(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()

	rule := testRule(tenantID, "notify", 5,
		[]entity.Channel{entity.ChannelInApp},
		entity.RecipientSpec{UserIDs: []uuid.UUID{userID}})

	pref := openPreference(userID, tenantID, entity.ModuleSales)
	pref.Events["order_assigned"] = entity.EventPreference{Enabled: false}

	ruleRepo.EXPECT().
		FindEnabledRules(ctx, tenantID, entity.ModuleSales, "order_assigned").
		Return([]*entity.TenantRule{rule}, nil)
	prefRepo.EXPECT().
		FindPreference(ctx, userID, tenantID, entity.ModuleSales).
		Return(pref, nil)

	resolutions, err := resolver.Resolve(ctx, tenantID, entity.ModuleSales, "order_assigned", entity.EventMetadata{})
	require.NoError(t, err)
	assert.Empty(t, resolutions)
}

func TestResolver_PreferenceChannelsIntersectRuleChannels(t *testing.T) {
	resolver, ruleRepo, prefRepo, _ := createTestResolver(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()

	rule := testRule(tenantID, "notify", 5,
		[]entity.Channel{entity.ChannelInApp, entity.ChannelSMS, entity.ChannelEmail},
		entity.RecipientSpec{UserIDs: []uuid.UUID{userID}})

	pref := openPreference(userID, tenantID, entity.ModuleSales)
	pref.Events["order_assigned"] = entity.EventPreference{
		Enabled:  true,
		Channels: []entity.Channel{entity.ChannelInApp},
	}

	ruleRepo.EXPECT().
		FindEnabledRules(ctx, tenantID, entity.ModuleSales, "order_assigned").
		Return([]*entity.TenantRule{rule}, nil)
	prefRepo.EXPECT().
		FindPreference(ctx, userID, tenantID, entity.ModuleSales).
		Return(pref, nil)

	resolutions, err := resolver.Resolve(ctx, tenantID, entity.ModuleSales, "order_assigned", entity.EventMetadata{})
	require.NoError(t, err)
	require.Len(t, resolutions, 1)
	assert.Equal(t, []entity.Channel{entity.ChannelInApp}, resolutions[0].Channels.Slice())
}

func TestResolver_MissingPreferenceFallsBackToModuleDefaults(t *testing.T) {
	resolver, ruleRepo, prefRepo, _ := createTestResolver(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()

	// SMS is disabled in the module defaults, so only in-app survives.
	rule := testRule(tenantID, "notify", 5,
		[]entity.Channel{entity.ChannelInApp, entity.ChannelSMS},
		entity.RecipientSpec{UserIDs: []uuid.UUID{userID}})

	ruleRepo.EXPECT().
		FindEnabledRules(ctx, tenantID, entity.ModuleSales, "order_assigned").
		Return([]*entity.TenantRule{rule}, nil)
	prefRepo.EXPECT().
		FindPreference(ctx, userID, tenantID, entity.ModuleSales).
		Return(nil, repository.ErrPreferenceNotFound)

	resolutions, err := resolver.Resolve(ctx, tenantID, entity.ModuleSales, "order_assigned", entity.EventMetadata{})
	require.NoError(t, err)
	require.Len(t, resolutions, 1)
	assert.Equal(t, []entity.Channel{entity.ChannelInApp}, resolutions[0].Channels.Slice())
}
