package entity

import (
	"time"

	"github.com/google/uuid"
)

// Canonical default event maps, one per module. These seed the Preference row
// created on a user's first lookup; unknown events added later are
// initialized on first update instead of being rejected.
var moduleDefaultEvents = map[Module]map[string]EventPreference{
	ModuleSales: {
		"order_created":        {Enabled: true, Channels: []Channel{ChannelInApp, ChannelEmail}},
		"order_assigned":       {Enabled: true, Channels: []Channel{ChannelInApp, ChannelPush, ChannelSMS}},
		"order_status_changed": {Enabled: true, Channels: []Channel{ChannelInApp}},
		"deal_at_risk":         {Enabled: true, Channels: []Channel{ChannelInApp, ChannelPush, ChannelSMS}},
	},
	ModuleRecon: {
		"work_item_assigned":  {Enabled: true, Channels: []Channel{ChannelInApp, ChannelPush}},
		"work_item_completed": {Enabled: true, Channels: []Channel{ChannelInApp}},
		"approval_needed":     {Enabled: true, Channels: []Channel{ChannelInApp, ChannelEmail, ChannelSMS}},
		"vehicle_ready":       {Enabled: true, Channels: []Channel{ChannelInApp, ChannelPush}},
		"sla_breached":        {Enabled: true, Channels: []Channel{ChannelInApp, ChannelEmail, ChannelSMS}},
	},
	ModuleTimeClock: {
		"missed_punch":      {Enabled: true, Channels: []Channel{ChannelInApp, ChannelPush}},
		"overtime_alert":    {Enabled: true, Channels: []Channel{ChannelInApp, ChannelEmail}},
		"timesheet_pending": {Enabled: true, Channels: []Channel{ChannelInApp}},
	},
	ModuleInvoicing: {
		"invoice_created":  {Enabled: true, Channels: []Channel{ChannelInApp}},
		"invoice_overdue":  {Enabled: true, Channels: []Channel{ChannelInApp, ChannelEmail}},
		"payment_received": {Enabled: true, Channels: []Channel{ChannelInApp, ChannelEmail}},
	},
}

// DefaultPreference builds the module-specific default Preference for a user.
// The caller is responsible for persisting it.
func DefaultPreference(userID, tenantID uuid.UUID, module Module, now time.Time) *Preference {
	events := make(map[string]EventPreference, len(moduleDefaultEvents[module]))
	for name, ep := range moduleDefaultEvents[module] {
		channels := make([]Channel, len(ep.Channels))
		copy(channels, ep.Channels)
		events[name] = EventPreference{Enabled: ep.Enabled, Channels: channels}
	}

	return &Preference{
		ID:           uuid.New(),
		UserID:       userID,
		TenantID:     tenantID,
		Module:       module,
		InAppEnabled: true,
		EmailEnabled: true,
		SMSEnabled:   false,
		PushEnabled:  true,
		Events:       events,
		QuietHours: QuietHours{
			Enabled:  false,
			Start:    "22:00",
			End:      "07:00",
			Timezone: "UTC",
		},
		RateLimits:        map[Channel]RateLimit{},
		BatchFrequency:    BatchImmediate,
		AutoDismissRead:   30,
		AutoDismissUnread: 90,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
