package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreference_EventChannelsFallsBackToGlobalToggles(t *testing.T) {
	pref := DefaultPreference(uuid.New(), uuid.New(), ModuleSales, time.Now().UTC())
	pref.Events = map[string]EventPreference{}

	// SMS is off in the defaults.
	channels := pref.EventChannels("anything")
	assert.True(t, channels.Contains(ChannelInApp))
	assert.True(t, channels.Contains(ChannelEmail))
	assert.True(t, channels.Contains(ChannelPush))
	assert.False(t, channels.Contains(ChannelSMS))
}

func TestPreference_EventOverrideFilteredByGlobalToggles(t *testing.T) {
	pref := DefaultPreference(uuid.New(), uuid.New(), ModuleSales, time.Now().UTC())
	pref.Events = map[string]EventPreference{
		"deal_at_risk": {Enabled: true, Channels: []Channel{ChannelInApp, ChannelSMS}},
	}

	channels := pref.EventChannels("deal_at_risk")
	assert.True(t, channels.Contains(ChannelInApp))
	assert.False(t, channels.Contains(ChannelSMS), "globally disabled channels are filtered from overrides")
}

func TestPreference_DisabledEventHasNoChannels(t *testing.T) {
	pref := DefaultPreference(uuid.New(), uuid.New(), ModuleSales, time.Now().UTC())
	pref.Events["order_created"] = EventPreference{Enabled: false}

	assert.False(t, pref.EventEnabled("order_created"))
	assert.Empty(t, pref.EventChannels("order_created"))
}

func TestPreference_UnlistedEventIsEnabled(t *testing.T) {
	pref := DefaultPreference(uuid.New(), uuid.New(), ModuleRecon, time.Now().UTC())

	assert.True(t, pref.EventEnabled("brand_new_event"))
}

func TestDefaultPreference_SeedsModuleEvents(t *testing.T) {
	pref := DefaultPreference(uuid.New(), uuid.New(), ModuleRecon, time.Now().UTC())

	require.Contains(t, pref.Events, "sla_breached")
	assert.Equal(t, BatchImmediate, pref.BatchFrequency)
	assert.False(t, pref.QuietHours.Enabled)
}

func TestChannelSet_UnionIntersectSlice(t *testing.T) {
	a := NewChannelSet(ChannelInApp, ChannelSMS)
	b := NewChannelSet(ChannelSMS, ChannelEmail)

	union := a.Union(b)
	assert.Len(t, union, 3)

	both := a.Intersect(b)
	assert.Equal(t, []Channel{ChannelSMS}, both.Slice())

	// Invalid names are dropped on construction.
	assert.Empty(t, NewChannelSet("fax"))
}
