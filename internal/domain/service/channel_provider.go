// Package service defines the interfaces to external collaborators the
// engine depends on: channel providers, the role directory, and the event
// publisher.
package service

import (
	"context"

	"backlot/internal/domain/entity"
)

// Message is the channel-agnostic payload handed to a provider.
type Message struct {
	Notification *entity.Notification
	Attempt      *entity.DeliveryAttempt

	// Recipient addressing, resolved from the user's preference before
	// dispatch. Only the field relevant to the channel is populated.
	Email string
	Phone string
	// PushTokens carries the recipient's registered device tokens.
	PushTokens []string
}

// SendResult is what a provider reports after a handoff.
type SendResult struct {
	// ExternalMessageID correlates later provider callbacks to the attempt.
	ExternalMessageID string
	// Delivered is set by channels that complete synchronously (in-app).
	Delivered bool
}

// ChannelProvider is a gateway to one delivery channel (email, SMS, push,
// in-app). Providers are external collaborators; calls are bounded by the
// dispatch timeout and a timeout counts as a retryable failure.
type ChannelProvider interface {
	// Channel names the channel this provider serves.
	Channel() entity.Channel

	// Name identifies the concrete provider for correlation and analytics.
	Name() string

	// MaxRetries is the provider-specific retry cap for failed attempts.
	MaxRetries() int

	// Send hands the message to the channel gateway.
	Send(ctx context.Context, msg *Message) (*SendResult, error)
}
