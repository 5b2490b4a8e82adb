package entity

import (
	"time"

	"github.com/google/uuid"
)

// BatchFrequency controls how often non-immediate notifications are grouped.
type BatchFrequency string

const (
	BatchImmediate BatchFrequency = "immediate"
	BatchHourly    BatchFrequency = "hourly"
	BatchDaily     BatchFrequency = "daily"
	BatchWeekly    BatchFrequency = "weekly"
)

// Valid reports whether f is a known batching frequency.
func (f BatchFrequency) Valid() bool {
	switch f {
	case BatchImmediate, BatchHourly, BatchDaily, BatchWeekly:
		return true
	}

	return false
}

// EventPreference is a per-event override inside a Preference.
type EventPreference struct {
	Enabled  bool      `json:"enabled"`
	Channels []Channel `json:"channels"`
}

// ChannelSet converts the stored channel list into a set.
func (p EventPreference) ChannelSet() ChannelSet {
	return NewChannelSet(p.Channels...)
}

// QuietHours is a per-user do-not-disturb window, potentially spanning
// midnight. Start and End are "HH:MM" in the user's Timezone.
type QuietHours struct {
	Enabled  bool   `json:"enabled"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Timezone string `json:"timezone"` // IANA name, e.g. "America/Chicago"
}

// RateLimit caps notification volume on one channel. A zero value for either
// dimension means that dimension is not enforced.
type RateLimit struct {
	MaxPerHour int `json:"max_per_hour"`
	MaxPerDay  int `json:"max_per_day"`
}

// Preference holds one user's notification settings for one module of one
// tenant. Rows are created lazily with module defaults on first lookup and
// are never hard-deleted, only superseded by updates.
type Preference struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	TenantID uuid.UUID `json:"tenant_id"`
	Module   Module    `json:"module"`

	InAppEnabled bool `json:"in_app_enabled"`
	EmailEnabled bool `json:"email_enabled"`
	SMSEnabled   bool `json:"sms_enabled"`
	PushEnabled  bool `json:"push_enabled"`

	Events     map[string]EventPreference `json:"events"`
	QuietHours QuietHours                 `json:"quiet_hours"`
	RateLimits map[Channel]RateLimit      `json:"rate_limits"`

	BatchFrequency    BatchFrequency `json:"batch_frequency"`
	AutoDismissRead   int            `json:"auto_dismiss_read_days"`
	AutoDismissUnread int            `json:"auto_dismiss_unread_days"`
	PhoneOverride     string         `json:"phone_override,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChannelEnabled reports whether the user has the channel globally enabled
// for this module.
func (p *Preference) ChannelEnabled(c Channel) bool {
	switch c {
	case ChannelInApp:
		return p.InAppEnabled
	case ChannelEmail:
		return p.EmailEnabled
	case ChannelSMS:
		return p.SMSEnabled
	case ChannelPush:
		return p.PushEnabled
	}

	return false
}

// SetChannelEnabled flips the module-wide toggle for the channel. Unknown
// channels are ignored.
func (p *Preference) SetChannelEnabled(c Channel, enabled bool) {
	switch c {
	case ChannelInApp:
		p.InAppEnabled = enabled
	case ChannelEmail:
		p.EmailEnabled = enabled
	case ChannelSMS:
		p.SMSEnabled = enabled
	case ChannelPush:
		p.PushEnabled = enabled
	}
}

// EventEnabled reports whether the named event is enabled. Events absent from
// the map fall back to enabled on every globally-enabled channel.
func (p *Preference) EventEnabled(event string) bool {
	ep, ok := p.Events[event]
	if !ok {
		return true
	}

	return ep.Enabled
}

// EventChannels returns the channels the user accepts for the named event:
// the per-event channel list when an override exists, otherwise every
// globally-enabled channel.
func (p *Preference) EventChannels(event string) ChannelSet {
	if ep, ok := p.Events[event]; ok {
		if !ep.Enabled {
			return NewChannelSet()
		}

		set := NewChannelSet()
		for _, c := range ep.Channels {
			if p.ChannelEnabled(c) {
				set.Add(c)
			}
		}

		return set
	}

	set := NewChannelSet()
	for _, c := range AllChannels {
		if p.ChannelEnabled(c) {
			set.Add(c)
		}
	}

	return set
}

// RateLimitFor returns the caps configured for the channel; ok is false when
// no limit is configured at all.
func (p *Preference) RateLimitFor(c Channel) (RateLimit, bool) {
	rl, ok := p.RateLimits[c]

	return rl, ok
}
