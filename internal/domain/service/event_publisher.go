package service

import (
	"context"
)

// DispatchEvent is the audit event published after a notification write
// commits. It replaces the storage layer's implicit change-reaction hooks
// with one explicit publish step at the same boundary as the originating
// write.
type DispatchEvent struct {
	RequestID      string   `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string   `json:"notification_id"`
	TenantID       string   `json:"tenant_id"`
	Module         string   `json:"module"`
	Event          string   `json:"event"`
	RecipientIDs   []string `json:"recipient_ids"`
	AttemptCount   int      `json:"attempt_count"`
	SuppressedQuiet int     `json:"suppressed_quiet"`
	SuppressedRate  int     `json:"suppressed_rate"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDispatchEvent publishes a dispatch audit event for downstream consumers
	PublishDispatchEvent(ctx context.Context, event *DispatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
