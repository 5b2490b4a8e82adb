package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is one logical alert. Exactly one row exists per event
// occurrence even when it fans out to many recipients and channels; the
// per-recipient tracking lives on DeliveryAttempt rows. A nil UserID marks a
// broadcast notification visible to every tenant member the rule resolved at
// send time. TenantID is always present, broadcast or not.
type Notification struct {
	ID       uuid.UUID  `json:"id"`
	UserID   *uuid.UUID `json:"user_id,omitempty"`
	TenantID uuid.UUID  `json:"tenant_id"`
	Module   Module     `json:"module"`
	Event    string     `json:"event"`

	EntityType string     `json:"entity_type,omitempty"`
	EntityID   *uuid.UUID `json:"entity_id,omitempty"`
	ThreadID   string     `json:"thread_id,omitempty"`

	Title     string   `json:"title"`
	Message   string   `json:"message"`
	ActionURL string   `json:"action_url,omitempty"`
	Priority  Priority `json:"priority"`

	Read        bool       `json:"read"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	Dismissed   bool       `json:"dismissed"`
	DismissedAt *time.Time `json:"dismissed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Broadcast reports whether the notification has no single owning user.
func (n *Notification) Broadcast() bool {
	return n.UserID == nil
}

// OwnedBy reports whether userID owns the notification. Broadcast
// notifications are owned by every tenant member.
func (n *Notification) OwnedBy(userID uuid.UUID) bool {
	if n.UserID == nil {
		return true
	}

	return *n.UserID == userID
}

// MarkRead flips the read flag; calling it again is a no-op.
func (n *Notification) MarkRead(now time.Time) {
	if n.Read {
		return
	}
	n.Read = true
	n.ReadAt = &now
}

// Dismiss flips the dismissed flag; calling it again is a no-op.
func (n *Notification) Dismiss(now time.Time) {
	if n.Dismissed {
		return
	}
	n.Dismissed = true
	n.DismissedAt = &now
}
