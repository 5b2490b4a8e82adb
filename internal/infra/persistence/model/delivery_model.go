package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryAttemptModel is the GORM struct for the 'delivery_attempts' table.
// One row per (notification, recipient, channel) delivery.
type DeliveryAttemptModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	NotificationID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_attempts_user_channel_sent,priority:1"`
	TenantID       uuid.UUID `gorm:"type:uuid;not null;index"`

	Channel string `gorm:"type:text;not null;index:idx_attempts_user_channel_sent,priority:2"`
	Status  string `gorm:"type:text;not null;default:'queued';index"`

	Provider          string `gorm:"type:text"`
	ExternalMessageID string `gorm:"type:text;index:idx_attempts_provider_external"`

	QueuedAt    time.Time `gorm:"not null"`
	SentAt      *time.Time `gorm:"index:idx_attempts_user_channel_sent,priority:3"`
	DeliveredAt *time.Time
	OpenedAt    *time.Time
	ClickedAt   *time.Time
	FailedAt    *time.Time

	LatencyMS  int64 `gorm:"not null;default:0"`
	RetryCount int   `gorm:"not null;default:0"`

	ErrorCode    string `gorm:"type:text"`
	ErrorMessage string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryAttemptModel) TableName() string {
	return "delivery_attempts"
}
