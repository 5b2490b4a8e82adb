package model

import (
	"time"

	"github.com/google/uuid"
)

// RuleModel is the GORM struct for the 'tenant_notification_rules' table.
// Recipients and channels are JSONB documents.
type RuleModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index:idx_rules_tenant_event,priority:1"`
	Module   string    `gorm:"type:text;not null;index:idx_rules_tenant_event,priority:2"`
	Event    string    `gorm:"type:text;not null;index:idx_rules_tenant_event,priority:3"`
	Name     string    `gorm:"type:text;not null"`

	Condition  string `gorm:"type:text"`
	Recipients []byte `gorm:"type:jsonb;not null;default:'{}'"`
	Channels   []byte `gorm:"type:jsonb;not null;default:'[]'"`

	Priority int  `gorm:"not null;default:0"`
	Enabled  bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RuleModel) TableName() string {
	return "tenant_notification_rules"
}
