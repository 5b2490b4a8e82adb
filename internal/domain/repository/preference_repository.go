// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"backlot/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for preference persistence.
var (
	// ErrPreferenceNotFound is returned when no preference row exists for the
	// (user, tenant, module) key.
	ErrPreferenceNotFound = errors.New("preference not found")
)

// PreferenceRepository persists per-user notification preferences.
type PreferenceRepository interface {
	// FindPreference retrieves the preference for a (user, tenant, module) key.
	FindPreference(ctx context.Context, userID, tenantID uuid.UUID, module entity.Module) (*entity.Preference, error)

	// FindPreferenceForUpdate retrieves the preference under a row-level lock
	// so a read-modify-write cannot lose a concurrent writer's change. Only
	// valid inside a transaction.
	FindPreferenceForUpdate(ctx context.Context, userID, tenantID uuid.UUID, module entity.Module) (*entity.Preference, error)

	// CreatePreference persists a new preference row.
	CreatePreference(ctx context.Context, pref *entity.Preference) error

	// SavePreference writes back a mutated preference row.
	SavePreference(ctx context.Context, pref *entity.Preference) error
}
