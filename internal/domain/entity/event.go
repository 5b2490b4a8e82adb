package entity

import (
	"github.com/google/uuid"
)

// EventMetadata carries the condition-relevant attributes a producer attaches
// to an event. Well-known references are typed fields; anything else rides in
// the Attributes bag.
type EventMetadata struct {
	AssignedUserID *uuid.UUID  `json:"assigned_user_id,omitempty"`
	CreatedBy      *uuid.UUID  `json:"created_by,omitempty"`
	FollowerIDs    []uuid.UUID `json:"follower_ids,omitempty"`

	EntityType string     `json:"entity_type,omitempty"`
	EntityID   *uuid.UUID `json:"entity_id,omitempty"`
	ThreadID   string     `json:"thread_id,omitempty"`

	Priority Priority `json:"priority,omitempty"`

	Attributes map[string]any `json:"attributes,omitempty"`
}

// ConditionEnv flattens the metadata into the environment a rule condition is
// evaluated against. Typed fields shadow identically-named bag entries.
func (m EventMetadata) ConditionEnv() map[string]any {
	env := make(map[string]any, len(m.Attributes)+6)
	for k, v := range m.Attributes {
		env[k] = v
	}

	env["priority"] = string(m.Priority)
	env["entity_type"] = m.EntityType
	env["thread_id"] = m.ThreadID
	if m.AssignedUserID != nil {
		env["assigned_user_id"] = m.AssignedUserID.String()
	}
	if m.CreatedBy != nil {
		env["created_by"] = m.CreatedBy.String()
	}
	if m.EntityID != nil {
		env["entity_id"] = m.EntityID.String()
	}

	return env
}

// EventDescriptor is what a producer hands to the engine: the scoped event
// name, the human-readable content, and routing metadata. Producers' business
// semantics are not validated here.
type EventDescriptor struct {
	TenantID  uuid.UUID     `json:"tenant_id"`
	Module    Module        `json:"module"`
	Event     string        `json:"event"`
	Title     string        `json:"title"`
	Message   string        `json:"message"`
	ActionURL string        `json:"action_url,omitempty"`
	Metadata  EventMetadata `json:"metadata"`
}
