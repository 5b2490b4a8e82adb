package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus is the lifecycle state of one channel delivery.
type DeliveryStatus string

const (
	DeliveryQueued    DeliveryStatus = "queued"
	DeliverySent      DeliveryStatus = "sent"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryOpened    DeliveryStatus = "opened"
	DeliveryClicked   DeliveryStatus = "clicked"
	DeliveryFailed    DeliveryStatus = "failed"
	DeliveryBounced   DeliveryStatus = "bounced"
	DeliveryRejected  DeliveryStatus = "rejected"
)

// Valid reports whether s is a known delivery status.
func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryQueued, DeliverySent, DeliveryDelivered, DeliveryOpened,
		DeliveryClicked, DeliveryFailed, DeliveryBounced, DeliveryRejected:
		return true
	}

	return false
}

// Terminal reports whether no further transition may leave s.
func (s DeliveryStatus) Terminal() bool {
	switch s {
	case DeliveryClicked, DeliveryFailed, DeliveryBounced, DeliveryRejected:
		return true
	}

	return false
}

// The engagement chain advances strictly queued -> sent -> delivered ->
// opened -> clicked. failed/bounced/rejected are reachable from any
// pre-delivered state.
var deliveryTransitions = map[DeliveryStatus][]DeliveryStatus{
	DeliveryQueued:    {DeliverySent, DeliveryFailed, DeliveryBounced, DeliveryRejected},
	DeliverySent:      {DeliveryDelivered, DeliveryFailed, DeliveryBounced, DeliveryRejected},
	DeliveryDelivered: {DeliveryOpened},
	DeliveryOpened:    {DeliveryClicked},
}

// CanTransition reports whether s may move to next.
func (s DeliveryStatus) CanTransition(next DeliveryStatus) bool {
	for _, allowed := range deliveryTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// DeliveryAttempt tracks one (notification, recipient, channel) delivery
// through its provider-correlated state machine. Created queued by the
// dispatcher, advanced by provider callbacks and retry sweeps, archived
// alongside its parent notification.
type DeliveryAttempt struct {
	ID             uuid.UUID `json:"id"`
	NotificationID uuid.UUID `json:"notification_id"`
	UserID         uuid.UUID `json:"user_id"`
	TenantID       uuid.UUID `json:"tenant_id"`
	Channel        Channel   `json:"channel"`

	Status            DeliveryStatus `json:"status"`
	Provider          string         `json:"provider,omitempty"`
	ExternalMessageID string         `json:"external_message_id,omitempty"`

	QueuedAt    time.Time  `json:"queued_at"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	OpenedAt    *time.Time `json:"opened_at,omitempty"`
	ClickedAt   *time.Time `json:"clicked_at,omitempty"`
	FailedAt    *time.Time `json:"failed_at,omitempty"`

	// LatencyMS is the elapsed time between the two most recent milestones,
	// recomputed on every transition.
	LatencyMS int64 `json:"latency_ms"`

	RetryCount   int    `json:"retry_count"`
	ErrorCode    string `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// NewDeliveryAttempt creates a queued attempt for one recipient and channel.
func NewDeliveryAttempt(notificationID, userID, tenantID uuid.UUID, channel Channel, now time.Time) *DeliveryAttempt {
	return &DeliveryAttempt{
		ID:             uuid.New(),
		NotificationID: notificationID,
		UserID:         userID,
		TenantID:       tenantID,
		Channel:        channel,
		Status:         DeliveryQueued,
		QueuedAt:       now,
	}
}

// lastMilestone returns the timestamp of the most recent recorded milestone.
func (d *DeliveryAttempt) lastMilestone() time.Time {
	switch {
	case d.ClickedAt != nil:
		return *d.ClickedAt
	case d.OpenedAt != nil:
		return *d.OpenedAt
	case d.DeliveredAt != nil:
		return *d.DeliveredAt
	case d.SentAt != nil:
		return *d.SentAt
	default:
		return d.QueuedAt
	}
}

// Transition moves the attempt to next at ts, stamping the milestone and
// recomputing latency. Returns false when the state machine forbids the move;
// the attempt is left untouched in that case.
func (d *DeliveryAttempt) Transition(next DeliveryStatus, ts time.Time) bool {
	if !d.Status.CanTransition(next) {
		return false
	}

	d.LatencyMS = ts.Sub(d.lastMilestone()).Milliseconds()

	switch next {
	case DeliverySent:
		d.SentAt = &ts
	case DeliveryDelivered:
		d.DeliveredAt = &ts
	case DeliveryOpened:
		d.OpenedAt = &ts
	case DeliveryClicked:
		d.ClickedAt = &ts
	case DeliveryFailed, DeliveryBounced, DeliveryRejected:
		d.FailedAt = &ts
	}

	d.Status = next

	return true
}

// Fail records a failure with its error detail.
func (d *DeliveryAttempt) Fail(code, message string, ts time.Time) bool {
	if !d.Transition(DeliveryFailed, ts) {
		return false
	}
	d.ErrorCode = code
	d.ErrorMessage = message

	return true
}

// Requeue resets a failed attempt for another dispatch pass, incrementing the
// retry counter. The last error is preserved until the retry succeeds.
func (d *DeliveryAttempt) Requeue(now time.Time) {
	d.Status = DeliveryQueued
	d.QueuedAt = now
	d.FailedAt = nil
	d.RetryCount++
}
