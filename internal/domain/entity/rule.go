package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecipientSpec describes who a tenant rule targets, in the abstract. The
// Recipient Resolver expands it into concrete user ids at dispatch time.
type RecipientSpec struct {
	Roles               []string    `json:"roles,omitempty"`
	UserIDs             []uuid.UUID `json:"user_ids,omitempty"`
	IncludeAssignedUser bool        `json:"include_assigned_user"`
	IncludeCreator      bool        `json:"include_creator"`
	IncludeFollowers    bool        `json:"include_followers"`
}

// TenantRule is an administrator-defined routing rule for one event of one
// module. Rules are read-only to the engine at dispatch time.
type TenantRule struct {
	ID       uuid.UUID `json:"id"`
	TenantID uuid.UUID `json:"tenant_id"`
	Module   Module    `json:"module"`
	Event    string    `json:"event"`
	Name     string    `json:"name"`

	Recipients RecipientSpec `json:"recipients"`

	// Condition is an attribute-matching expression evaluated against the
	// event metadata, e.g. `metadata.priority in ["urgent", "high"]`.
	// Empty means the rule always applies.
	Condition string `json:"condition,omitempty"`

	Channels []Channel `json:"channels"`
	Priority int       `json:"priority"` // 0-100, higher wins on recipient overlap
	Enabled  bool      `json:"enabled"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChannelSet converts the rule's channel list into a set.
func (r *TenantRule) ChannelSet() ChannelSet {
	return NewChannelSet(r.Channels...)
}
