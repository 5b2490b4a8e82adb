package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM struct for the 'notifications' table.
// A NULL user_id marks a tenant-wide broadcast row.
type NotificationModel struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID   *uuid.UUID `gorm:"type:uuid;index:idx_notifications_user_created,priority:1"`
	TenantID uuid.UUID  `gorm:"type:uuid;not null;index"`

	Module   string `gorm:"type:text;not null"`
	Event    string `gorm:"type:text;not null"`
	Priority string `gorm:"type:text;not null;default:'normal'"`

	EntityType string     `gorm:"type:text"`
	EntityID   *uuid.UUID `gorm:"type:uuid"`
	ThreadID   string     `gorm:"type:text;index"`

	Title     string `gorm:"type:text;not null"`
	Message   string `gorm:"type:text;not null"`
	ActionURL string `gorm:"type:text"`

	Read        bool `gorm:"not null;default:false"`
	ReadAt      *time.Time
	Dismissed   bool `gorm:"not null;default:false"`
	DismissedAt *time.Time

	CreatedAt time.Time `gorm:"index:idx_notifications_user_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
