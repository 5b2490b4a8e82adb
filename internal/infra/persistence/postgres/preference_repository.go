// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"backlot/internal/domain/entity"
	domainerrors "backlot/internal/domain/errors"
	"backlot/internal/domain/repository"
	"backlot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// preferenceRepository implements the repository.PreferenceRepository interface.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

// FindPreference retrieves the preference row for a (user, tenant, module) triple.
func (repo *preferenceRepository) FindPreference(ctx context.Context, userID, tenantID uuid.UUID, module entity.Module) (*entity.Preference, error) {
	var prefM model.PreferenceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND tenant_id = ? AND module = ?", userID, tenantID, string(module)).
		First(&prefM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find preference")
	}

	return toPreferenceDomain(&prefM)
}

// FindPreferenceForUpdate retrieves the preference row with a row-level lock.
// It must be called inside a transaction.
func (repo *preferenceRepository) FindPreferenceForUpdate(ctx context.Context, userID, tenantID uuid.UUID, module entity.Module) (*entity.Preference, error) {
	var prefM model.PreferenceModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND tenant_id = ? AND module = ?", userID, tenantID, string(module)).
		First(&prefM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find preference for update")
	}

	return toPreferenceDomain(&prefM)
}

// CreatePreference persists a new preference row.
func (repo *preferenceRepository) CreatePreference(ctx context.Context, pref *entity.Preference) error {
	prefM, err := fromPreferenceDomain(pref)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(prefM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("preference already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create preference")
	}

	pref.ID = prefM.ID
	pref.CreatedAt = prefM.CreatedAt
	pref.UpdatedAt = prefM.UpdatedAt

	return nil
}

// SavePreference writes back a modified preference row.
func (repo *preferenceRepository) SavePreference(ctx context.Context, pref *entity.Preference) error {
	prefM, err := fromPreferenceDomain(pref)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PreferenceModel{}).
		Where("id = ?", pref.ID).
		Updates(map[string]interface{}{
			"in_app_enabled":      prefM.InAppEnabled,
			"email_enabled":       prefM.EmailEnabled,
			"sms_enabled":         prefM.SMSEnabled,
			"push_enabled":        prefM.PushEnabled,
			"events":              prefM.Events,
			"quiet_hours":         prefM.QuietHours,
			"rate_limits":         prefM.RateLimits,
			"batch_frequency":     prefM.BatchFrequency,
			"auto_dismiss_read":   prefM.AutoDismissRead,
			"auto_dismiss_unread": prefM.AutoDismissUnread,
			"phone_override":      prefM.PhoneOverride,
			"updated_at":          pref.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to save preference")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPreferenceNotFound
	}

	return nil
}

func toPreferenceDomain(data *model.PreferenceModel) (*entity.Preference, error) {
	pref := &entity.Preference{
		ID:                data.ID,
		UserID:            data.UserID,
		TenantID:          data.TenantID,
		Module:            entity.Module(data.Module),
		InAppEnabled:      data.InAppEnabled,
		EmailEnabled:      data.EmailEnabled,
		SMSEnabled:        data.SMSEnabled,
		PushEnabled:       data.PushEnabled,
		BatchFrequency:    entity.BatchFrequency(data.BatchFrequency),
		AutoDismissRead:   data.AutoDismissRead,
		AutoDismissUnread: data.AutoDismissUnread,
		PhoneOverride:     data.PhoneOverride,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}

	if len(data.Events) > 0 {
		if err := json.Unmarshal(data.Events, &pref.Events); err != nil {
			return nil, errors.Wrap(err, "failed to decode event preferences")
		}
	}
	if pref.Events == nil {
		pref.Events = map[string]entity.EventPreference{}
	}

	if len(data.QuietHours) > 0 {
		if err := json.Unmarshal(data.QuietHours, &pref.QuietHours); err != nil {
			return nil, errors.Wrap(err, "failed to decode quiet hours")
		}
	}

	if len(data.RateLimits) > 0 {
		if err := json.Unmarshal(data.RateLimits, &pref.RateLimits); err != nil {
			return nil, errors.Wrap(err, "failed to decode rate limits")
		}
	}
	if pref.RateLimits == nil {
		pref.RateLimits = map[entity.Channel]entity.RateLimit{}
	}

	return pref, nil
}

func fromPreferenceDomain(pref *entity.Preference) (*model.PreferenceModel, error) {
	events, err := json.Marshal(pref.Events)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode event preferences")
	}

	quietHours, err := json.Marshal(pref.QuietHours)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode quiet hours")
	}

	rateLimits, err := json.Marshal(pref.RateLimits)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode rate limits")
	}

	return &model.PreferenceModel{
		ID:                pref.ID,
		UserID:            pref.UserID,
		TenantID:          pref.TenantID,
		Module:            string(pref.Module),
		InAppEnabled:      pref.InAppEnabled,
		EmailEnabled:      pref.EmailEnabled,
		SMSEnabled:        pref.SMSEnabled,
		PushEnabled:       pref.PushEnabled,
		Events:            events,
		QuietHours:        quietHours,
		RateLimits:        rateLimits,
		BatchFrequency:    string(pref.BatchFrequency),
		AutoDismissRead:   pref.AutoDismissRead,
		AutoDismissUnread: pref.AutoDismissUnread,
		PhoneOverride:     pref.PhoneOverride,
		CreatedAt:         pref.CreatedAt,
		UpdatedAt:         pref.UpdatedAt,
	}, nil
}
