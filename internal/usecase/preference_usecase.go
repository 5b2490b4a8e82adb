package usecase

import (
	"context"

	"backlot/internal/domain/entity"

	"github.com/google/uuid"
)

// PreferenceUsecase manages per-user notification preferences.
type PreferenceUsecase interface {
	// GetPreference returns the user's preference for the module, lazily
	// creating and persisting the module defaults on first lookup.
	GetPreference(ctx context.Context, caller entity.Caller, userID, tenantID uuid.UUID, module entity.Module) (*entity.Preference, error)

	// UpdateEventPreference toggles one event's enabled flag and adds or
	// removes a channel from its channel list (every channel when
	// entity.ChannelAll is given). Unknown event names are initialized on
	// first use. The read-modify-write runs under a row lock.
	UpdateEventPreference(ctx context.Context, caller entity.Caller, userID, tenantID uuid.UUID, module entity.Module, event string, channel entity.Channel, enabled bool) (*entity.Preference, error)

	// UpdateChannels replaces the module-wide channel toggles. Channels
	// absent from the map keep their current setting.
	UpdateChannels(ctx context.Context, caller entity.Caller, userID, tenantID uuid.UUID, module entity.Module, channels map[entity.Channel]bool) (*entity.Preference, error)

	// UpdateQuietHours replaces the quiet-hours window.
	UpdateQuietHours(ctx context.Context, caller entity.Caller, userID, tenantID uuid.UUID, module entity.Module, quietHours entity.QuietHours) (*entity.Preference, error)

	// UpdateRateLimits replaces the per-channel rate-limit caps.
	UpdateRateLimits(ctx context.Context, caller entity.Caller, userID, tenantID uuid.UUID, module entity.Module, limits map[entity.Channel]entity.RateLimit) (*entity.Preference, error)
}
