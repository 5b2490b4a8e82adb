// Package model contains the GORM-specific structs for the persistence layer.
// Flexible per-event and per-channel configuration is stored as JSONB and
// (un)marshaled by the repository mappers.
package model

import (
	"time"

	"github.com/google/uuid"
)

// PreferenceModel is the GORM struct for the 'notification_preferences'
// table. One row per (user, tenant, module).
type PreferenceModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_pref_user_tenant_module,priority:1"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_pref_user_tenant_module,priority:2"`
	Module   string    `gorm:"type:text;not null;uniqueIndex:ux_pref_user_tenant_module,priority:3"`

	InAppEnabled bool `gorm:"not null;default:true"`
	EmailEnabled bool `gorm:"not null;default:true"`
	SMSEnabled   bool `gorm:"not null;default:false"`
	PushEnabled  bool `gorm:"not null;default:true"`

	Events     []byte `gorm:"type:jsonb;not null;default:'{}'"`
	QuietHours []byte `gorm:"type:jsonb;not null;default:'{}'"`
	RateLimits []byte `gorm:"type:jsonb;not null;default:'{}'"`

	BatchFrequency    string `gorm:"type:text;not null;default:'immediate'"`
	AutoDismissRead   int    `gorm:"not null;default:30"`
	AutoDismissUnread int    `gorm:"not null;default:90"`
	PhoneOverride     string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PreferenceModel) TableName() string {
	return "notification_preferences"
}
