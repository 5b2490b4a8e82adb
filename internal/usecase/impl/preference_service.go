package impl

import (
	"context"
	"log/slog"
	"time"

	"backlot/internal/domain/entity"
	domainerrors "backlot/internal/domain/errors"
	"backlot/internal/domain/repository"
	"backlot/internal/errors"
	"backlot/internal/usecase"

	"github.com/google/uuid"
)

type preferenceService struct {
	logger    *slog.Logger
	prefRepo  repository.PreferenceRepository
	txManager repository.TransactionManager
}

// NewPreferenceService creates the preference store service.
func NewPreferenceService(
	logger *slog.Logger,
	prefRepo repository.PreferenceRepository,
	txManager repository.TransactionManager,
) usecase.PreferenceUsecase {
	return &preferenceService{
		logger:    logger,
		prefRepo:  prefRepo,
		txManager: txManager,
	}
}

// GetPreference returns the stored preference, synthesizing and persisting
// the module defaults when the user has none yet.
func (s *preferenceService) GetPreference(ctx context.Context, caller entity.Caller, userID, tenantID uuid.UUID, module entity.Module) (*entity.Preference, error) {
	if err := checkPreferenceAccess(caller, userID, tenantID); err != nil {
		return nil, err
	}
	if !module.Valid() {
		return nil, domainerrors.ErrValidation.WithDetails("unknown module: " + string(module))
	}

	pref, err := s.prefRepo.FindPreference(ctx, userID, tenantID, module)
	if err == nil {
		return pref, nil
	}
	if !errors.Is(err, repository.ErrPreferenceNotFound) {
		return nil, errors.Wrap(err, "failed to load preference")
	}

	pref = entity.DefaultPreference(userID, tenantID, module, time.Now().UTC())
	if err := s.prefRepo.CreatePreference(ctx, pref); err != nil {
		// A concurrent first lookup may have won the insert.
		existing, findErr := s.prefRepo.FindPreference(ctx, userID, tenantID, module)
		if findErr == nil {
			return existing, nil
		}

		return nil, errors.Wrap(err, "failed to persist default preference")
	}

	return pref, nil
}

// UpdateEventPreference toggles one event's enabled flag and channel list.
// The read-modify-write runs under a row lock so concurrent updates to the
// same row cannot silently drop an event-map entry.
func (s *preferenceService) UpdateEventPreference(ctx context.Context, caller entity.Caller, userID, tenantID uuid.UUID, module entity.Module, event string, channel entity.Channel, enabled bool) (*entity.Preference, error) {
	if event == "" {
		return nil, domainerrors.ErrValidation.WithDetails("event name is required")
	}
	if channel != entity.ChannelAll && !channel.Valid() {
		return nil, domainerrors.ErrValidation.WithDetails("unknown channel: " + string(channel))
	}

	return s.mutate(ctx, caller, userID, tenantID, module, func(pref *entity.Preference) error {
		ep, ok := pref.Events[event]
		if !ok {
			// Unknown event names are initialized on first use, not rejected.
			ep = entity.EventPreference{Enabled: true, Channels: nil}
		}

		ep.Enabled = enabled

		if channel == entity.ChannelAll {
			if enabled {
				ep.Channels = append([]entity.Channel(nil), entity.AllChannels...)
			} else {
				ep.Channels = nil
			}
		} else {
			set := entity.NewChannelSet(ep.Channels...)
			if enabled {
				set.Add(channel)
			} else {
				set.Remove(channel)
			}
			ep.Channels = set.Slice()
		}

		pref.Events[event] = ep

		return nil
	})
}

// UpdateChannels replaces the module-wide channel toggles. Channels absent
// from the map keep their current setting.
func (s *preferenceService) UpdateChannels(ctx context.Context, caller entity.Caller, userID, tenantID uuid.UUID, module entity.Module, channels map[entity.Channel]bool) (*entity.Preference, error) {
	for channel := range channels {
		if !channel.Valid() {
			return nil, domainerrors.ErrValidation.WithDetails("unknown channel: " + string(channel))
		}
	}

	return s.mutate(ctx, caller, userID, tenantID, module, func(pref *entity.Preference) error {
		for channel, enabled := range channels {
			pref.SetChannelEnabled(channel, enabled)
		}

		return nil
	})
}

// UpdateQuietHours replaces the quiet-hours window.
func (s *preferenceService) UpdateQuietHours(ctx context.Context, caller entity.Caller, userID, tenantID uuid.UUID, module entity.Module, quietHours entity.QuietHours) (*entity.Preference, error) {
	if quietHours.Enabled {
		if _, err := time.LoadLocation(quietHours.Timezone); err != nil {
			return nil, domainerrors.ErrValidation.WithDetails("unknown timezone: " + quietHours.Timezone)
		}
		if _, ok := parseClock(quietHours.Start); !ok {
			return nil, domainerrors.ErrValidation.WithDetails("malformed start time: " + quietHours.Start)
		}
		if _, ok := parseClock(quietHours.End); !ok {
			return nil, domainerrors.ErrValidation.WithDetails("malformed end time: " + quietHours.End)
		}
	}

	return s.mutate(ctx, caller, userID, tenantID, module, func(pref *entity.Preference) error {
		pref.QuietHours = quietHours

		return nil
	})
}

// UpdateRateLimits replaces the per-channel rate-limit caps.
func (s *preferenceService) UpdateRateLimits(ctx context.Context, caller entity.Caller, userID, tenantID uuid.UUID, module entity.Module, limits map[entity.Channel]entity.RateLimit) (*entity.Preference, error) {
	for channel, limit := range limits {
		if !channel.Valid() {
			return nil, domainerrors.ErrValidation.WithDetails("unknown channel: " + string(channel))
		}
		if limit.MaxPerHour < 0 || limit.MaxPerDay < 0 {
			return nil, domainerrors.ErrValidation.WithDetails("rate limit caps must not be negative")
		}
	}

	return s.mutate(ctx, caller, userID, tenantID, module, func(pref *entity.Preference) error {
		pref.RateLimits = limits

		return nil
	})
}

// mutate runs fn against the locked preference row inside a transaction,
// creating the module defaults first when the row does not exist yet.
func (s *preferenceService) mutate(ctx context.Context, caller entity.Caller, userID, tenantID uuid.UUID, module entity.Module, fn func(*entity.Preference) error) (*entity.Preference, error) {
	if err := checkPreferenceAccess(caller, userID, tenantID); err != nil {
		return nil, err
	}
	if !module.Valid() {
		return nil, domainerrors.ErrValidation.WithDetails("unknown module: " + string(module))
	}

	var updated *entity.Preference
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.NewPreferenceRepository()

		pref, err := repo.FindPreferenceForUpdate(ctx, userID, tenantID, module)
		if err != nil {
			if !errors.Is(err, repository.ErrPreferenceNotFound) {
				return errors.Wrap(err, "failed to lock preference")
			}

			pref = entity.DefaultPreference(userID, tenantID, module, time.Now().UTC())
			if err := repo.CreatePreference(ctx, pref); err != nil {
				return errors.Wrap(err, "failed to create preference")
			}
		}

		if err := fn(pref); err != nil {
			return err
		}

		pref.UpdatedAt = time.Now().UTC()
		if err := repo.SavePreference(ctx, pref); err != nil {
			return errors.Wrap(err, "failed to save preference")
		}

		updated = pref

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// checkPreferenceAccess is the capability check at the top of every
// preference operation: the caller must be a member of the tenant, and only
// the user themselves (or a system caller) may touch their settings.
func checkPreferenceAccess(caller entity.Caller, userID, tenantID uuid.UUID) error {
	if !caller.CanAccessTenant(tenantID) {
		return domainerrors.ErrPermission.WithDetails("caller has no access to tenant " + tenantID.String())
	}
	if !caller.System && caller.UserID != userID {
		return domainerrors.ErrPermission.WithDetails("preferences belong to another user")
	}

	return nil
}
