package model

import (
	"time"

	"github.com/google/uuid"
)

// ArchivedNotificationModel is the GORM struct for the cold-storage copy of
// notifications. Rows keep their original primary key so re-archiving after
// a crash overwrites in place instead of duplicating.
type ArchivedNotificationModel struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key"`
	UserID   *uuid.UUID `gorm:"type:uuid;index"`
	TenantID uuid.UUID  `gorm:"type:uuid;not null;index:idx_archived_notifications_tenant_created,priority:1"`

	Module   string `gorm:"type:text;not null"`
	Event    string `gorm:"type:text;not null"`
	Priority string `gorm:"type:text;not null"`

	EntityType string     `gorm:"type:text"`
	EntityID   *uuid.UUID `gorm:"type:uuid"`
	ThreadID   string     `gorm:"type:text"`

	Title     string `gorm:"type:text;not null"`
	Message   string `gorm:"type:text;not null"`
	ActionURL string `gorm:"type:text"`

	Read        bool
	ReadAt      *time.Time
	Dismissed   bool
	DismissedAt *time.Time

	CreatedAt  time.Time `gorm:"index:idx_archived_notifications_tenant_created,priority:2,sort:desc"`
	ArchivedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ArchivedNotificationModel) TableName() string {
	return "archived_notifications"
}

// ArchivedDeliveryAttemptModel is the cold-storage copy of delivery attempts.
type ArchivedDeliveryAttemptModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	NotificationID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID `gorm:"type:uuid;not null"`
	TenantID       uuid.UUID `gorm:"type:uuid;not null;index"`

	Channel string `gorm:"type:text;not null"`
	Status  string `gorm:"type:text;not null"`

	Provider          string `gorm:"type:text"`
	ExternalMessageID string `gorm:"type:text"`

	QueuedAt    time.Time `gorm:"not null"`
	SentAt      *time.Time
	DeliveredAt *time.Time
	OpenedAt    *time.Time
	ClickedAt   *time.Time
	FailedAt    *time.Time

	LatencyMS  int64
	RetryCount int

	ErrorCode    string `gorm:"type:text"`
	ErrorMessage string `gorm:"type:text"`

	CreatedAt  time.Time
	ArchivedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ArchivedDeliveryAttemptModel) TableName() string {
	return "archived_delivery_attempts"
}
